// Package output renders study results: a plain-text ranking summary and an
// xlsx workbook with one sheet per encounter tier.
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aldwyck/titansim/internal/model"
	"github.com/aldwyck/titansim/internal/study"
)

// WriteSummary prints the per-tier rankings as aligned text.
func WriteSummary(w io.Writer, s *study.Study, res *study.Result) error {
	fmt.Fprintf(w, "Study %s: %s\n", s.Identifier, s.Description)
	fmt.Fprintf(w, "Trials per variation: %d, runoff threshold: %.1f%%\n\n", s.SimulationQty, s.RunoffScoringThreshold)

	for i, tier := range res.Tiers {
		fmt.Fprintf(w, "Tier %d — %s (retained %d of %d)\n", i+1, tier.Encounter.Name, tier.Retained, len(tier.Scores))
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "rank\tvariation\tsuccesses\ttrials\trate")
		for rank, sc := range tier.Scores {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.2f%%\n",
				rank+1, sc.Variation.Identifier, sc.Successes, sc.Trials, model.RoundTo2(sc.Rate()*100))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("flushing tier %d table: %w", i, err)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Final tier reached: %d, survivors: %d\n", res.FinalTier+1, len(res.Survivors))
	return nil
}
