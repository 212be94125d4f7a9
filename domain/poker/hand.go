package poker

import (
	"fmt"
	"slices"
)

// HandSize is the number of cards in a Hand.
const HandSize = 5

// HandType is the category of a five-card hand. Lower values are stronger:
// RoyalFlush is the strongest category and HighCard the weakest.
type HandType uint8

const (
	RoyalFlush HandType = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// HandTypes lists every category from strongest to weakest.
var HandTypes = [...]HandType{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
}

func (t HandType) String() string {
	switch t {
	case RoyalFlush:
		return "RoyalFlush"
	case StraightFlush:
		return "StraightFlush"
	case FourOfAKind:
		return "FourOfAKind"
	case FullHouse:
		return "FullHouse"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case TwoPair:
		return "TwoPair"
	case OnePair:
		return "OnePair"
	case HighCard:
		return "HighCard"
	}
	return fmt.Sprintf("HandType(%d)", uint8(t))
}

// Stronger reports whether t beats o.
func (t HandType) Stronger(o HandType) bool {
	return t < o
}

// Hand is five cards together with their category. The category is computed
// once by NewHand and never recomputed; the fields cannot be changed
// afterwards, so the two always agree.
type Hand struct {
	cards    [HandSize]Card
	handType HandType
}

// NewHand classifies cards and returns the resulting Hand.
func NewHand(cards [HandSize]Card) Hand {
	return Hand{
		cards:    cards,
		handType: Classify(cards),
	}
}

// Cards returns a copy of the five cards in the order they were dealt.
func (h Hand) Cards() [HandSize]Card {
	return h.cards
}

// Type returns the category stored at construction.
func (h Hand) Type() HandType {
	return h.handType
}

func (h Hand) String() string {
	return FormatCards(h.cards[:]) + " - " + h.handType.String()
}

// Classify returns the category of five cards. It is defined for every
// combination of cards and the checks run in strict priority order, because
// a straight flush also satisfies the flush and straight predicates.
func Classify(cards [HandSize]Card) HandType {
	var values [HandSize]int
	for i, c := range cards {
		values[i] = c.Value()
	}
	slices.Sort(values[:])

	counts := make(map[int]int, HandSize)
	for _, v := range values {
		counts[v]++
	}

	flush := isFlush(cards)
	straight := isStraight(values)

	switch {
	case straight && flush && values[0] == Ten.Value():
		return RoyalFlush
	case straight && flush:
		return StraightFlush
	case hasCount(counts, 4):
		return FourOfAKind
	case hasCount(counts, 3) && hasCount(counts, 2):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case hasCount(counts, 3):
		return ThreeOfAKind
	case numCount(counts, 2) == 2:
		return TwoPair
	case hasCount(counts, 2):
		return OnePair
	}
	return HighCard
}

func isFlush(cards [HandSize]Card) bool {
	for _, c := range cards[1:] {
		if c.Suit() != cards[0].Suit() {
			return false
		}
	}
	return true
}

// isStraight expects values sorted ascending. The Ace only plays low in the
// wheel, 2-3-4-5-A, where it is the last value after sorting.
func isStraight(values [HandSize]int) bool {
	if values == [HandSize]int{2, 3, 4, 5, 14} {
		return true
	}
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

func hasCount(counts map[int]int, n int) bool {
	return numCount(counts, n) > 0
}

// numCount returns how many distinct ranks occur exactly n times.
func numCount(counts map[int]int, n int) int {
	k := 0
	for _, c := range counts {
		if c == n {
			k++
		}
	}
	return k
}
