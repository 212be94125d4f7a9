package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/hand-analyzer/domain/poker"
)

const (
	DefaultHandCount = 6
	DefaultHandSize  = poker.HandSize
)

var (
	ErrNotEnoughCards  = errors.New("not enough cards in deck")
	ErrInvalidHandSize = errors.New("invalid hand configuration")
)

// Deal splits cards into handCount hands of handSize cards. Hand i takes the
// cards at positions [i*handSize, (i+1)*handSize); each hand is copied out of
// the deck and classified immediately. Cards past the last hand are not dealt.
//
// It returns ErrInvalidHandSize when handSize is not poker.HandSize or
// handCount is negative, and ErrNotEnoughCards when the deck is too short.
func Deal(cards []poker.Card, handCount, handSize int) ([]poker.Hand, error) {
	if err := checkDeal(len(cards), handCount, handSize); err != nil {
		return nil, err
	}
	hands := make([]poker.Hand, 0, handCount)
	for i := 0; i < handCount; i++ {
		var hand [poker.HandSize]poker.Card
		copy(hand[:], cards[i*handSize:(i+1)*handSize])
		hands = append(hands, poker.NewHand(hand))
	}
	return hands, nil
}

// Remaining returns a copy of the cards left in the deck after Deal.
func Remaining(cards []poker.Card, handCount, handSize int) ([]poker.Card, error) {
	if err := checkDeal(len(cards), handCount, handSize); err != nil {
		return nil, err
	}
	rest := cards[handCount*handSize:]
	out := make([]poker.Card, len(rest))
	copy(out, rest)
	return out, nil
}

func checkDeal(deckSize, handCount, handSize int) error {
	if handSize != poker.HandSize || handCount < 0 {
		return fmt.Errorf("%w: %d hands of %d cards, hands hold exactly %d cards", ErrInvalidHandSize, handCount, handSize, poker.HandSize)
	}
	// handSize is fixed at this point; dividing avoids overflowing the product.
	if handCount > deckSize/handSize {
		return fmt.Errorf("%w: dealing %d hands of %d cards, deck has %d", ErrNotEnoughCards, handCount, handSize, deckSize)
	}
	return nil
}
