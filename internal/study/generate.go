package study

import (
	"fmt"
	"strings"

	"github.com/aldwyck/titansim/internal/data"
	"github.com/aldwyck/titansim/internal/model"
)

// SkillSetVariations enumerates every 4-skill combination from pool over the
// base hero: one variation per combination, each carrying a copy of base
// with its skill slots replaced. The pool must offer at least 4 skills.
func SkillSetVariations(base model.Hero, pool []string) ([]Variation, error) {
	if len(pool) < data.SkillSlots {
		return nil, fmt.Errorf("skill pool has %d skills, need at least %d", len(pool), data.SkillSlots)
	}

	var variations []Variation
	n := len(pool)
	for a := 0; a < n-3; a++ {
		for b := a + 1; b < n-2; b++ {
			for c := b + 1; c < n-1; c++ {
				for d := c + 1; d < n; d++ {
					h := base
					h.Skills = [data.SkillSlots]string{pool[a], pool[b], pool[c], pool[d]}
					h.Identifier = fmt.Sprintf("%s [%s]", base.Identifier, strings.Join(h.Skills[:], ", "))
					variations = append(variations, Variation{
						Identifier: h.Identifier,
						Heroes:     []model.Hero{h},
					})
				}
			}
		}
	}
	return variations, nil
}
