package study

import "sort"

// rankScores orders scores by success rate, descending. Ties break on the
// variation identifier so rankings are deterministic across runs.
func rankScores(scores []VariationScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		ri, rj := scores[i].Rate(), scores[j].Rate()
		if ri != rj {
			return ri > rj
		}
		return scores[i].Variation.Identifier < scores[j].Variation.Identifier
	})
}

// retainTopScores returns the slice of ranked scores that advances to the
// next tier. A threshold of 100 (or more) retains everything unchanged.
// Below 100, the top floor(n*threshold/100) entries are kept and variations
// with zero successes are dropped: a variation that never beat this tier has
// no business being retried on a harder one.
func retainTopScores(ranked []VariationScore, threshold float64) []VariationScore {
	if threshold >= 100 {
		return ranked
	}

	keep := int(float64(len(ranked)) * threshold / 100)
	if keep > len(ranked) {
		keep = len(ranked)
	}

	retained := make([]VariationScore, 0, keep)
	for _, sc := range ranked[:keep] {
		if sc.Successes == 0 {
			// Ranked descending, so everything after this is zero too.
			break
		}
		retained = append(retained, sc)
	}
	return retained
}
