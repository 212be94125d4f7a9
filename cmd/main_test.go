package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hand-analyzer/application"
	"github.com/luca-patrignani/hand-analyzer/domain/poker"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadHands(t *testing.T) {
	path := writeDeck(t, "10H, JH, QH, KH, AH\n\n2D, 2C, 5H, 9S, KD\n")
	hands, err := readHands(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(hands) != 2 {
		t.Fatalf("expected 2 hands, got %d", len(hands))
	}
	if poker.Classify(hands[0]) != poker.RoyalFlush {
		t.Fatalf("expected RoyalFlush, got %s", poker.Classify(hands[0]))
	}
}

func TestReadHandsInvalidLine(t *testing.T) {
	path := writeDeck(t, "10H, JH, QH, KH, AH\n10H, JH\n")
	_, err := readHands(path)
	if !errors.Is(err, poker.ErrInvalidHand) {
		t.Fatalf("expected ErrInvalidHand, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected the line number in %q", err.Error())
	}
}

func TestReadHandsMissingFile(t *testing.T) {
	if _, err := readHands(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for a missing file, got nil")
	}
}

func TestRenderHands(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	a, err := application.NewAnalyzer(application.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	report, err := a.Run()
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dealt := strings.Split(strings.TrimSuffix(renderHands(a, logger, report.Dealt, false), "\n"), "\n")
	if len(dealt) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(dealt))
	}
	if dealt[0] != "AS 2D KS 3D QS       - HighCard" {
		t.Fatalf("unexpected first line %q", dealt[0])
	}

	ranked := strings.Split(strings.TrimSuffix(renderHands(a, logger, report.Ranked, true), "\n"), "\n")
	if len(ranked) != 12 {
		t.Fatalf("expected a hand line and a description line per hand, got %d lines", len(ranked))
	}
	if ranked[0] != "9S 7D 8S 8D 7S       - TwoPair" {
		t.Fatalf("the hand line must end with the category, got %q", ranked[0])
	}
	if !strings.HasPrefix(ranked[1], "    ") || strings.TrimSpace(ranked[1]) == "" {
		t.Fatalf("expected an indented description, got %q", ranked[1])
	}
}

func TestColorSuits(t *testing.T) {
	pterm.EnableColor()

	cards, err := poker.ParseHand("9S, 7D, 8S, 8H, 7C")
	if err != nil {
		t.Fatal(err)
	}
	h := poker.NewHand(cards)
	line := poker.FormatHand(h, poker.DefaultColumnWidth)
	colored := colorSuits(line, h)

	if pterm.RemoveColorFromString(colored) != line {
		t.Fatalf("expected %q once colours are removed, got %q", line, pterm.RemoveColorFromString(colored))
	}
	for _, red := range []string{"7D", "8H"} {
		if !strings.Contains(colored, pterm.LightRed(red)) {
			t.Fatalf("expected %s to be red in %q", red, colored)
		}
	}
	if !strings.HasPrefix(colored, "9S ") || !strings.Contains(colored, " 8S ") {
		t.Fatalf("black suits must stay plain, got %q", colored)
	}
	if !strings.HasSuffix(colored, " - TwoPair") {
		t.Fatalf("the category must stay plain, got %q", colored)
	}
}

func TestColorSuitsTruncatedColumn(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	cards, err := poker.ParseHand("10H, JH, QH, KH, AH")
	if err != nil {
		t.Fatal(err)
	}
	h := poker.NewHand(cards)
	line := poker.FormatHand(h, 6)
	if got := colorSuits(line, h); got != line {
		t.Fatalf("expected %q, got %q", line, got)
	}
}
