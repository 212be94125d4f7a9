package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Score evaluates the hand with the full poker evaluator, which also breaks
// ties inside a category. Higher scores are better hands. The analyzer ranks
// by category only; Score is used to describe hands and to cross-check
// the classifier.
func (h Hand) Score() (int16, error) {
	lib, err := toLibHand(h.cards)
	if err != nil {
		return 0, err
	}
	return poker.Eval5(&lib), nil
}

// Describe returns a human readable description of the hand.
func (h Hand) Describe() (string, error) {
	lib, err := toLibHand(h.cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(lib[:])
}

func toLibHand(cards [HandSize]Card) ([HandSize]poker.Card, error) {
	var lib [HandSize]poker.Card
	for i, c := range cards {
		card, err := toLibCard(c)
		if err != nil {
			return [HandSize]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		lib[i] = card
	}
	return lib, nil
}

// toLibCard converts a Card to the evaluator representation, where ranks run
// 1-13 with the Ace as 1.
func toLibCard(c Card) (poker.Card, error) {
	var (
		s    poker.Suit
		zero poker.Card
	)
	switch c.Suit() {
	case Diamonds:
		s = poker.Diamond
	case Clubs:
		s = poker.Club
	case Hearts:
		s = poker.Heart
	case Spades:
		s = poker.Spade
	default:
		return zero, fmt.Errorf("%w: suit %d", ErrInvalidCard, c.Suit())
	}
	r := c.Value()
	if c.Rank() == Ace {
		r = 1
	}
	return poker.MakeCard(s, poker.Rank(r))
}
