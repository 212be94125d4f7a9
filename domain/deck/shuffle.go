package deck

import "slices"

// Shuffle reorders cards with a fixed rule: the sequence is reversed, then
// the front and the back element are taken alternately until at most one is
// left, which comes last. The result is a permutation of the input and the
// input itself is not modified.
//
// For example [1 2 3 4 5] becomes [5 1 4 2 3].
func Shuffle[T any](cards []T) []T {
	work := slices.Clone(cards)
	slices.Reverse(work)

	shuffled := make([]T, 0, len(work))
	front, back := 0, len(work)-1
	for back-front >= 1 {
		shuffled = append(shuffled, work[front], work[back])
		front++
		back--
	}
	if front == back {
		shuffled = append(shuffled, work[front])
	}
	return shuffled
}
