package ledger

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

var (
	ErrEmptyJournal = errors.New("journal is empty")
	ErrInvalidBlock = errors.New("invalid block")
)

// Journal is an append-only, hash-chained record of the stages of one
// analysis run. Blocks carry no timestamps, so the same run always ends with
// the same head hash.
type Journal struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewJournal creates a journal holding only the genesis block.
// The genesis block has index 0, previous hash "0" and no entries.
func NewJournal() *Journal {
	j := &Journal{
		blocks: make([]Block, 0, 8),
	}
	genesis := Block{
		Index:    0,
		Stage:    StageGenesis,
		Entries:  []string{},
		PrevHash: "0",
	}
	genesis.Commitment = commit(genesis.Entries)
	genesis.Hash = calculateHash(genesis)
	j.blocks = append(j.blocks, genesis)
	return j
}

// Append records the entries produced by a stage and returns the new block.
func (j *Journal) Append(stage Stage, entries []string) (Block, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.blocks) == 0 {
		return Block{}, ErrEmptyJournal
	}
	latest := j.blocks[len(j.blocks)-1]

	newBlock := Block{
		Index:    latest.Index + 1,
		Stage:    stage,
		Entries:  slices.Clone(entries),
		PrevHash: latest.Hash,
	}
	if newBlock.Entries == nil {
		newBlock.Entries = []string{}
	}
	newBlock.Commitment = commit(newBlock.Entries)
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return Block{}, err
	}
	j.blocks = append(j.blocks, newBlock)
	return newBlock, nil
}

// Head returns the most recently added block.
func (j *Journal) Head() (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return Block{}, ErrEmptyJournal
	}
	return j.blocks[len(j.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (j *Journal) GetByIndex(index int) (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return j.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.blocks)
}

// Verify checks the genesis block, then every block's index continuity,
// previous hash linkage, commitment and hash.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return ErrEmptyJournal
	}
	if j.blocks[0].PrevHash != "0" || j.blocks[0].Stage != StageGenesis {
		return fmt.Errorf("%w: bad genesis block", ErrInvalidBlock)
	}
	if j.blocks[0].Hash != calculateHash(j.blocks[0]) {
		return fmt.Errorf("%w: genesis hash mismatch", ErrInvalidBlock)
	}
	for i := 1; i < len(j.blocks); i++ {
		if err := validateBlock(j.blocks[i], j.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: expected index %d, got %d", ErrInvalidBlock, previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: expected prev hash %s, got %s", ErrInvalidBlock, previous.Hash, current.PrevHash)
	}
	if expected := commit(current.Entries); current.Commitment != expected {
		return fmt.Errorf("%w: commitment does not match entries", ErrInvalidBlock)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("%w: expected hash %s, got %s", ErrInvalidBlock, expected, current.Hash)
	}
	return nil
}

// calculateHash hashes the index, stage, entries, commitment and previous
// hash of a block with the suite hash function.
func calculateHash(b Block) string {
	entries, _ := json.Marshal(b.Entries)
	data := fmt.Sprintf("%d%s%s%s%s", b.Index, b.Stage, entries, b.Commitment, b.PrevHash)

	h := suite.Hash()
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// commit maps the entries to a curve point picked from an XOF seeded with
// them. Equal entries always give the same point.
func commit(entries []string) string {
	seed, _ := json.Marshal(entries)
	p := suite.Point().Pick(suite.XOF(seed))
	buf, err := p.MarshalBinary()
	if err != nil {
		return ""
	}
	return hex.EncodeToString(buf)
}
