package study

import (
	"context"

	"github.com/aldwyck/titansim/internal/model"
)

// Variation is one concrete hero/team configuration a study evaluates.
// Heroes hold raw, unresolved configurations; the runner resolves a private
// copy per tier, so variations are never mutated.
type Variation struct {
	Identifier string
	Heroes     []model.Hero
}

// Encounter describes one tier in the ordered difficulty sequence a study
// cascades through.
type Encounter struct {
	Name string
	Tier int

	// Power is the encounter's abstract strength, interpreted by the trial
	// executor.
	Power float64
}

// TrialExecutor produces one stochastic trial outcome for a resolved team
// against an encounter. Implementations must be safe for concurrent use;
// the runner invokes it from parallel workers.
type TrialExecutor interface {
	ExecuteTrial(ctx context.Context, team []model.TrialHero, enc Encounter) (success bool, err error)
}

// VariationScore is the aggregate outcome of one variation's trial batch on
// a single tier.
type VariationScore struct {
	Variation Variation
	Successes int
	Trials    int
}

// Rate returns the success rate in [0, 1].
func (v VariationScore) Rate() float64 {
	if v.Trials == 0 {
		return 0
	}
	return float64(v.Successes) / float64(v.Trials)
}

// TierResult holds the ranked scores for one encounter tier and how many of
// them were retained for the next.
type TierResult struct {
	Encounter Encounter
	Scores    []VariationScore
	Retained  int
}

// Result is the outcome of a completed study run: every tier's ranked
// scores, the surviving variations, and the index of the last tier reached.
type Result struct {
	Tiers     []TierResult
	Survivors []VariationScore
	FinalTier int
}
