package application

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luca-patrignani/hand-analyzer/domain/deck"
	"github.com/luca-patrignani/hand-analyzer/domain/poker"
	"github.com/luca-patrignani/hand-analyzer/ledger"
)

// Report is the outcome of one analysis run.
type Report struct {
	RunID     uuid.UUID
	Shuffled  []poker.Card // empty when the hands were supplied by the caller
	Dealt     []poker.Hand // deal order
	Ranked    []poker.Hand // strongest category first
	Remaining []poker.Card
	Journal   *ledger.Journal
}

// Analyzer runs the pipeline Build -> Shuffle -> Deal -> RankOrder and
// records every stage in a journal.
type Analyzer struct {
	config Config
}

func NewAnalyzer(config Config) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{config: config}, nil
}

// Run builds, shuffles and deals a fresh deck, then ranks the hands.
func (a *Analyzer) Run() (Report, error) {
	r := a.newReport()
	log := a.config.Logger.With("run", r.RunID.String())

	cards := deck.Build()
	if err := a.record(r.Journal, log, ledger.StageBuild, deck.Tokens(cards)); err != nil {
		return Report{}, err
	}

	r.Shuffled = deck.Shuffle(cards)
	if err := a.record(r.Journal, log, ledger.StageShuffle, deck.Tokens(r.Shuffled)); err != nil {
		return Report{}, err
	}

	dealt, err := deck.Deal(r.Shuffled, a.config.HandCount, a.config.HandSize)
	if err != nil {
		return Report{}, fmt.Errorf("deal: %w", err)
	}
	r.Dealt = dealt
	r.Remaining, err = deck.Remaining(r.Shuffled, a.config.HandCount, a.config.HandSize)
	if err != nil {
		return Report{}, fmt.Errorf("deal: %w", err)
	}
	if err := a.record(r.Journal, log, ledger.StageDeal, a.FormatHands(r.Dealt)); err != nil {
		return Report{}, err
	}

	return a.rank(r, log)
}

// AnalyzeHands classifies hands supplied by the caller instead of dealing
// them, then ranks them.
func (a *Analyzer) AnalyzeHands(hands [][poker.HandSize]poker.Card) (Report, error) {
	r := a.newReport()
	log := a.config.Logger.With("run", r.RunID.String())

	r.Dealt = make([]poker.Hand, len(hands))
	for i, cards := range hands {
		r.Dealt[i] = poker.NewHand(cards)
	}
	if err := a.record(r.Journal, log, ledger.StageClassify, a.FormatHands(r.Dealt)); err != nil {
		return Report{}, err
	}
	return a.rank(r, log)
}

// FormatHands renders each hand with the configured column width.
func (a *Analyzer) FormatHands(hands []poker.Hand) []string {
	lines := make([]string, len(hands))
	for i, h := range hands {
		lines[i] = poker.FormatHand(h, a.config.ColumnWidth)
	}
	return lines
}

func (a *Analyzer) rank(r Report, log *slog.Logger) (Report, error) {
	r.Ranked = poker.RankOrder(r.Dealt)
	if err := a.record(r.Journal, log, ledger.StageRank, a.FormatHands(r.Ranked)); err != nil {
		return Report{}, err
	}
	if err := r.Journal.Verify(); err != nil {
		return Report{}, fmt.Errorf("journal: %w", err)
	}
	head, err := r.Journal.Head()
	if err != nil {
		return Report{}, fmt.Errorf("journal: %w", err)
	}
	log.Info("analysis complete", "hands", len(r.Ranked), "head", head.Hash)
	return r, nil
}

func (a *Analyzer) newReport() Report {
	return Report{
		RunID:   uuid.New(),
		Journal: ledger.NewJournal(),
	}
}

func (a *Analyzer) record(j *ledger.Journal, log *slog.Logger, stage ledger.Stage, entries []string) error {
	b, err := j.Append(stage, entries)
	if err != nil {
		return fmt.Errorf("record %s: %w", stage, err)
	}
	log.Debug("stage recorded", "stage", string(stage), "entries", len(entries), "block", b.Index, "hash", b.Hash)
	return nil
}
