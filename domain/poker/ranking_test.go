package poker

import (
	"errors"
	"strings"
	"testing"
)

func TestRankOrderReproducesCategoryOrder(t *testing.T) {
	var hands []Hand
	// feed the examples weakest first so the sort has work to do
	for i := len(categoryExamples) - 1; i >= 0; i-- {
		hands = append(hands, NewHand(mustHand(t, categoryExamples[i].cards)))
	}
	ranked := RankOrder(hands)
	if len(ranked) != len(hands) {
		t.Fatalf("expected %d hands, got %d", len(hands), len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Type().Stronger(ranked[i-1].Type()) {
			t.Fatalf("%s ranked after %s", ranked[i].Type(), ranked[i-1].Type())
		}
	}
	for i, tc := range categoryExamples {
		if ranked[i].Type() != tc.expected {
			t.Fatalf("position %d: expected %s, got %s", i, tc.expected, ranked[i].Type())
		}
	}
}

func TestRankOrderIsStable(t *testing.T) {
	wheel := NewHand(mustHand(t, "AD, 2C, 3H, 4S, 5D"))
	high := NewHand(mustHand(t, "10D, JC, QH, KS, AH"))
	pair := NewHand(mustHand(t, "2D, 2C, 5H, 9S, KD"))
	flush := NewHand(mustHand(t, "2D, 7D, 9D, JD, KD"))

	// the wheel comes first among the straights even though it is the lower one
	ranked := RankOrder([]Hand{pair, wheel, high, flush})
	expected := []Hand{flush, wheel, high, pair}
	for i := range expected {
		if ranked[i] != expected[i] {
			t.Fatalf("position %d: expected %v, got %v", i, expected[i], ranked[i])
		}
	}

	ranked = RankOrder([]Hand{high, wheel})
	if ranked[0] != high || ranked[1] != wheel {
		t.Fatalf("equal categories must keep their order, got %v", ranked)
	}
}

func TestRankOrderDoesNotMutateInput(t *testing.T) {
	pair := NewHand(mustHand(t, "2D, 2C, 5H, 9S, KD"))
	royal := NewHand(mustHand(t, "10H, JH, QH, KH, AH"))
	hands := []Hand{pair, royal}
	RankOrder(hands)
	if hands[0] != pair || hands[1] != royal {
		t.Fatal("input slice was reordered")
	}
	if len(RankOrder(nil)) != 0 {
		t.Fatal("expected no hands")
	}
}

func TestFormatHand(t *testing.T) {
	h := NewHand(mustHand(t, "10H, JH, QH, KH, AH"))
	got := FormatHand(h, DefaultColumnWidth)
	expected := "10H JH QH KH AH      - RoyalFlush"
	if got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
	got = FormatHand(h, 6)
	if got != "10H JH - RoyalFlush" {
		t.Fatalf("expected a truncated column, got %q", got)
	}
	got = FormatHand(h, 0)
	if got != "10H JH QH KH AH - RoyalFlush" {
		t.Fatalf("expected no padding, got %q", got)
	}
}

func TestParseHandErrors(t *testing.T) {
	cases := []string{
		"",
		"10H, JH, QH, KH",
		"10H, JH, QH, KH, AH, 2D",
		"10H, JH, QH, KH, XX",
		"10H, 10H, QH, KH, AH",
	}
	for _, line := range cases {
		_, err := ParseHand(line)
		if !errors.Is(err, ErrInvalidHand) {
			t.Fatalf("expected ErrInvalidHand for %q, got %v", line, err)
		}
	}
	_, err := ParseHand("10H, JH, QH, KH, XX")
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected the card error to be wrapped, got %v", err)
	}
}

func TestParseHandSeparators(t *testing.T) {
	a := mustHand(t, "10H JH QH KH AH")
	b := mustHand(t, "10H,JH,QH,KH,AH")
	if a != b {
		t.Fatalf("expected %v, got %v", a, b)
	}
	if !strings.HasPrefix(FormatCards(a[:]), "10H JH") {
		t.Fatalf("unexpected order %v", a)
	}
}
