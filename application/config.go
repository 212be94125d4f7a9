package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/hand-analyzer/domain/deck"
	"github.com/luca-patrignani/hand-analyzer/domain/poker"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the parameters of an analysis run.
type Config struct {
	HandCount   int
	HandSize    int
	ColumnWidth int
	Logger      *slog.Logger
}

type configOption func(Config) Config

// DefaultConfig deals six hands of five cards and renders a 20 column card
// field. Logging is discarded.
func DefaultConfig() Config {
	return Config{
		HandCount:   deck.DefaultHandCount,
		HandSize:    deck.DefaultHandSize,
		ColumnWidth: poker.DefaultColumnWidth,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func NewConfig(opts ...configOption) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		c = opt(c)
	}
	return c
}

func WithHandCount(n int) configOption {
	return func(c Config) Config {
		c.HandCount = n
		return c
	}
}

func WithHandSize(n int) configOption {
	return func(c Config) Config {
		c.HandSize = n
		return c
	}
}

func WithColumnWidth(w int) configOption {
	return func(c Config) Config {
		c.ColumnWidth = w
		return c
	}
}

// WithLogger sets the logger used for stage records. A nil logger keeps the
// current one.
func WithLogger(l *slog.Logger) configOption {
	return func(c Config) Config {
		if l != nil {
			c.Logger = l
		}
		return c
	}
}

// Validate reports a configuration that cannot be dealt from a full deck.
func (c Config) Validate() error {
	if c.HandSize != poker.HandSize {
		return fmt.Errorf("%w: hand size must be %d, got %d", ErrInvalidConfig, poker.HandSize, c.HandSize)
	}
	if c.HandCount < 0 || c.HandCount > deck.Size/c.HandSize {
		return fmt.Errorf("%w: cannot deal %d hands of %d cards from %d cards", ErrInvalidConfig, c.HandCount, c.HandSize, deck.Size)
	}
	if c.ColumnWidth < 0 {
		return fmt.Errorf("%w: negative column width %d", ErrInvalidConfig, c.ColumnWidth)
	}
	if c.Logger == nil {
		return fmt.Errorf("%w: missing logger", ErrInvalidConfig)
	}
	return nil
}
