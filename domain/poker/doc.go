// Package poker implements the card model and the five-card hand analysis:
// classification of a hand into its category and ordering of hands from the
// strongest category to the weakest.
//
// # Core Types
//
// Card: An immutable playing card with a Rank (Two..Ace) and a Suit
// (Diamonds, Clubs, Hearts, Spades). Its text form is "<rank><suit>", e.g. "10H".
//
// HandType: The category of a hand, from RoyalFlush down to HighCard.
//
// Hand: Five cards together with their HandType, computed once at construction.
//
// # Hand Evaluation
//
// Classify inspects rank frequencies, flushes and straights (the wheel
// A-2-3-4-5 included) and picks the first matching category in priority order.
// RankOrder sorts hands by category only, keeping ties in their input order.
// Score and Describe delegate to a complete poker evaluator for descriptions.
package poker
