// Package ledger implements an append-only journal recording the stages of a
// hand analysis run: deck construction, shuffle, deal and ranking.
//
// # Core Components
//
// Journal: A hash-chained log of blocks, one per pipeline stage, starting
// from a genesis block.
//
// Block: The output of one stage (card tokens or formatted hands), a curve
// point commitment derived from it, and the link to the previous block.
//
// # Properties
//
// The journal provides:
//   - Determinism: no timestamps are hashed, equal runs give equal head hashes
//   - Tamper detection: any modification breaks the hash chain
//
// Verify can be called at any time to check the whole chain.
package ledger
