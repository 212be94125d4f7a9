// Package deck builds the standard 52-card deck, reorders it with a fixed
// interleave and deals it into hands.
package deck

import "github.com/luca-patrignani/hand-analyzer/domain/poker"

// Size is the number of cards in a standard deck.
const Size = len(poker.Suits) * len(poker.Ranks)

// Build returns the 52 cards in canonical order: suits in declared order
// (Diamonds, Clubs, Hearts, Spades), and within each suit the ranks from
// Two to Ace. Every later stage depends on this order.
func Build() []poker.Card {
	cards := make([]poker.Card, 0, Size)
	for _, suit := range poker.Suits {
		for _, rank := range poker.Ranks {
			cards = append(cards, poker.MustCard(rank, suit))
		}
	}
	return cards
}

// Tokens returns the text form of every card, in order.
func Tokens(cards []poker.Card) []string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return tokens
}
