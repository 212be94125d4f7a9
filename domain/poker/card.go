package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Suit of a card. The declared order (Diamonds, Clubs, Hearts, Spades) only
// exists to make sorting and deck construction deterministic.
type Suit uint8

const (
	Diamonds Suit = iota // D
	Clubs                // C
	Hearts               // H
	Spades               // S
)

// Suits lists every suit in declared order.
var Suits = [...]Suit{Diamonds, Clubs, Hearts, Spades}

// Rank of a card, Two through Ace in declared order.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in declared order.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var ErrInvalidCard = errors.New("invalid card")

// Char returns the single-letter code of the suit.
func (s Suit) Char() byte {
	switch s {
	case Diamonds:
		return 'D'
	case Clubs:
		return 'C'
	case Hearts:
		return 'H'
	case Spades:
		return 'S'
	}
	return '?'
}

func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Value returns the numeric value of the rank, 2 through 14 with the Ace high.
func (r Rank) Value() int {
	switch r {
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten:
		return 10
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	}
	return 0
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if v := r.Value(); v != 0 {
		return fmt.Sprintf("%d", v)
	}
	return "?"
}

// Card represents a playing card with rank and suit.
// Cards are values: two cards are equal when rank and suit are equal.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: Two..Ace
//   - suit: Diamonds, Clubs, Hearts or Spades
//
// Returns the Card or an error if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank > Ace || suit > Spades {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is NewCard for literals known to be valid. It panics otherwise.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Value returns the numeric rank value of the Card (2-14).
func (c Card) Value() int {
	return c.rank.Value()
}

// Compare orders cards by rank, then by suit. It returns -1, 0 or +1.
func (c Card) Compare(o Card) int {
	switch {
	case c.rank < o.rank:
		return -1
	case c.rank > o.rank:
		return 1
	case c.suit < o.suit:
		return -1
	case c.suit > o.suit:
		return 1
	}
	return 0
}

// String returns the compact token of the card, e.g. "10H" or "AS".
func (c Card) String() string {
	return c.rank.String() + string(c.suit.Char())
}

// ParseCard is the inverse of Card.String. Lower case input is accepted.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rankStr, suitChar := s[:len(s)-1], s[len(s)-1]

	var suit Suit
	found := false
	for _, candidate := range Suits {
		if candidate.Char() == suitChar {
			suit, found = candidate, true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	for _, rank := range Ranks {
		if rank.String() == rankStr {
			return NewCard(rank, suit)
		}
	}
	return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
}
