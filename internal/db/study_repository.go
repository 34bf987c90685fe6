package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aldwyck/titansim/internal/study"
)

// SaveStudy inserts a study definition row.
func (d *DB) SaveStudy(ctx context.Context, s *study.Study) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO studies (id, identifier, description, simulation_qty, runoff_scoring_threshold, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Identifier, s.Description, s.SimulationQty, s.RunoffScoringThreshold, s.Status().String(), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving study %q: %w", s.Identifier, err)
	}
	return nil
}

// UpdateStudyStatus records a lifecycle transition.
func (d *DB) UpdateStudyStatus(ctx context.Context, id uuid.UUID, status study.Status) error {
	_, err := d.pool.Exec(ctx,
		`UPDATE studies SET status = $1 WHERE id = $2`, status.String(), id,
	)
	if err != nil {
		return fmt.Errorf("updating study %s status: %w", id, err)
	}
	return nil
}

// SaveResult stores every tier's ranked variation scores for a completed
// study run.
func (d *DB) SaveResult(ctx context.Context, studyID uuid.UUID, res *study.Result) error {
	for tierIdx, tier := range res.Tiers {
		for rank, sc := range tier.Scores {
			_, err := d.pool.Exec(ctx,
				`INSERT INTO study_results (study_id, tier, encounter, rank, variation, successes, trials, retained)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				studyID, tierIdx, tier.Encounter.Name, rank, sc.Variation.Identifier,
				sc.Successes, sc.Trials, rank < tier.Retained,
			)
			if err != nil {
				return fmt.Errorf("saving result for study %s tier %d variation %q: %w",
					studyID, tierIdx, sc.Variation.Identifier, err)
			}
		}
	}
	return nil
}
