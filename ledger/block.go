package ledger

// Stage names the pipeline step recorded by a Block.
type Stage string

const (
	StageGenesis  Stage = "genesis"
	StageBuild    Stage = "build"
	StageShuffle  Stage = "shuffle"
	StageDeal     Stage = "deal"
	StageClassify Stage = "classify"
	StageRank     Stage = "rank"
)

// Block records the output of one pipeline stage.
type Block struct {
	Index      int      `json:"index"`
	Stage      Stage    `json:"stage"`
	Entries    []string `json:"entries"`    // card tokens or formatted hands
	Commitment string   `json:"commitment"` // curve point derived from the entries
	PrevHash   string   `json:"prev_hash"`
	Hash       string   `json:"hash"`
}
