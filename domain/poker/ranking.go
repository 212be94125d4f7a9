package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// DefaultColumnWidth is the width of the card column in FormatHand.
const DefaultColumnWidth = 20

var ErrInvalidHand = errors.New("invalid hand")

// RankOrder returns the hands sorted from the strongest category to the
// weakest. Hands of the same category keep their relative order. The input
// slice is left untouched.
func RankOrder(hands []Hand) []Hand {
	ranked := slices.Clone(hands)
	slices.SortStableFunc(ranked, func(a, b Hand) int {
		return int(a.handType) - int(b.handType)
	})
	return ranked
}

// FormatCards joins the card tokens with single spaces.
func FormatCards(cards []Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

// FormatHand renders a hand as its cards, padded or truncated to width
// columns, followed by " - " and the category name.
func FormatHand(h Hand, width int) string {
	cards := FormatCards(h.cards[:])
	if width > 0 {
		cards = fmt.Sprintf("%-*.*s", width, width, cards)
	}
	return cards + " - " + h.handType.String()
}

// ParseHand reads five card tokens separated by commas and/or spaces,
// e.g. "10H, JH, QH, KH, AH".
func ParseHand(line string) ([HandSize]Card, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != HandSize {
		return [HandSize]Card{}, fmt.Errorf("%w: expected %d cards, got %d in %q", ErrInvalidHand, HandSize, len(fields), line)
	}
	var cards [HandSize]Card
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return [HandSize]Card{}, fmt.Errorf("%w: %w", ErrInvalidHand, err)
		}
		if slices.Contains(cards[:i], c) {
			return [HandSize]Card{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, c)
		}
		cards[i] = c
	}
	return cards, nil
}
