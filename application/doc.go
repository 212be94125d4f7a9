// Package application wires the deck and poker packages into the analysis
// pipeline and records each stage in a ledger journal.
package application
