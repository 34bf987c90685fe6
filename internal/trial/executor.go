// Package trial provides a reference trial executor. It is a collaborator
// stand-in for a full combat simulator: a trial's outcome is drawn from a
// win probability derived from the team's aggregate combat power against the
// encounter's power rating.
package trial

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/aldwyck/titansim/internal/model"
	"github.com/aldwyck/titansim/internal/study"
)

// Relative weight of each stat in a hero's power score.
const (
	atkWeight = 1.0
	defWeight = 0.5
	hpWeight  = 0.2
)

// PowerExecutor scores trials from resolved stats. Safe for concurrent use.
type PowerExecutor struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPowerExecutor seeds the executor's random source. The same seed and
// call sequence reproduce the same outcomes.
func NewPowerExecutor(seed uint64) *PowerExecutor {
	return &PowerExecutor{rng: rand.New(rand.NewPCG(seed, seed))}
}

// ExecuteTrial draws one win/loss outcome: the team wins with probability
// power / (power + encounter power).
func (e *PowerExecutor) ExecuteTrial(ctx context.Context, team []model.TrialHero, enc study.Encounter) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	power := TeamPower(team)
	if power <= 0 {
		return false, nil
	}
	p := power / (power + enc.Power)

	e.mu.Lock()
	roll := e.rng.Float64()
	e.mu.Unlock()
	return roll < p, nil
}

// TeamPower sums each hero's power score: expected attack (crit-adjusted)
// plus weighted defense and HP.
func TeamPower(team []model.TrialHero) float64 {
	var power float64
	for _, h := range team {
		expectedATK := h.ATK * (1 + h.CritChance*(h.CritMult-1))
		power += expectedATK*atkWeight + h.DEF*defWeight + h.HP*hpWeight
	}
	return power
}
