package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aldwyck/titansim/internal/model"
)

// DefaultWorkers bounds the number of variations resolved and trialled
// concurrently when the caller does not set Runner.Workers.
const DefaultWorkers = 8

// Runner drives a study through the runoff protocol. Trials within a tier
// run in parallel across variations; tiers are strictly sequential, with
// ranking acting as the barrier between them.
type Runner struct {
	Study    *Study
	Executor TrialExecutor

	// Workers limits concurrent variations per tier; 0 means DefaultWorkers.
	Workers int
}

// Run executes the study across the ordered encounter tiers and returns the
// final ranking state. A resolution failure in any variation fails the whole
// run: the variation generator is trusted to produce valid configurations,
// so a bad one is a defect, not a retryable condition.
func (r *Runner) Run(ctx context.Context, variations []Variation, encounters []Encounter) (*Result, error) {
	if r.Executor == nil {
		return nil, errors.New("runner requires a trial executor")
	}
	if len(variations) == 0 {
		return nil, errors.New("runner requires at least one variation")
	}
	if len(encounters) == 0 {
		return nil, errors.New("runner requires at least one encounter tier")
	}
	if err := r.Study.transition(StatusRunning); err != nil {
		return nil, err
	}

	slog.Info("study started",
		"study", r.Study.Identifier,
		"variations", len(variations),
		"tiers", len(encounters),
		"simulation_qty", r.Study.SimulationQty,
	)

	res := &Result{}
	candidates := variations
	for i, enc := range encounters {
		scores, err := r.runTier(ctx, candidates, enc)
		if err != nil {
			return nil, fmt.Errorf("tier %d (%s): %w", i, enc.Name, err)
		}

		rankScores(scores)
		retained := retainTopScores(scores, r.Study.RunoffScoringThreshold)
		res.Tiers = append(res.Tiers, TierResult{
			Encounter: enc,
			Scores:    scores,
			Retained:  len(retained),
		})
		res.FinalTier = i
		res.Survivors = retained

		slog.Info("tier complete",
			"study", r.Study.Identifier,
			"tier", i,
			"encounter", enc.Name,
			"candidates", len(scores),
			"retained", len(retained),
		)

		if len(retained) == 0 {
			break
		}
		candidates = make([]Variation, len(retained))
		for j, sc := range retained {
			candidates[j] = sc.Variation
		}
	}

	if err := r.Study.transition(StatusFinished); err != nil {
		return nil, err
	}
	slog.Info("study finished", "study", r.Study.Identifier, "final_tier", res.FinalTier, "survivors", len(res.Survivors))
	return res, nil
}

// runTier resolves every candidate and runs the trial batch for one
// encounter, in parallel across variations.
func (r *Runner) runTier(ctx context.Context, candidates []Variation, enc Encounter) ([]VariationScore, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	scores := make([]VariationScore, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, v := range candidates {
		g.Go(func() error {
			team, err := r.resolveTeam(v)
			if err != nil {
				return err
			}
			successes := 0
			for trial := 0; trial < r.Study.SimulationQty; trial++ {
				ok, err := r.Executor.ExecuteTrial(gctx, team, enc)
				if err != nil {
					return fmt.Errorf("variation %s trial %d: %w", v.Identifier, trial, err)
				}
				if ok {
					successes++
				}
			}
			scores[i] = VariationScore{
				Variation: v,
				Successes: successes,
				Trials:    r.Study.SimulationQty,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// resolveTeam resolves private copies of a variation's heroes and builds the
// trial payloads. Variations are re-resolved from their raw configuration at
// every tier so resolution never runs twice on the same instance.
func (r *Runner) resolveTeam(v Variation) ([]model.TrialHero, error) {
	team := make([]model.TrialHero, 0, len(v.Heroes))
	for _, hero := range v.Heroes {
		h := hero
		if _, err := h.Resolve(r.Study.Tables); err != nil {
			return nil, fmt.Errorf("variation %s: resolving hero %s: %w", v.Identifier, hero.Identifier, err)
		}
		th, err := h.TrialHero()
		if err != nil {
			return nil, fmt.Errorf("variation %s: hero %s: %w", v.Identifier, hero.Identifier, err)
		}
		team = append(team, th)
	}
	return team, nil
}
