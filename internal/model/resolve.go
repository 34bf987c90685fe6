package model

import (
	"fmt"
	"math"

	"github.com/aldwyck/titansim/internal/data"
)

// Each investment seed adds 4 flat points to the seeded base stat.
const seedBonus = 4

// StatBreakdown exposes the intermediate totals of a resolution for
// downstream consumers (trial payloads, reports, tests). Gear totals are the
// summed per-item results; skill and spirit fields are the hero-wide
// aggregates that fed the final composition.
type StatBreakdown struct {
	GearATK               float64
	GearDEF               float64
	GearHP                float64
	GearEvasionPercent    float64
	GearCritChancePercent float64

	SkillATKPercent               float64
	SkillATKValue                 float64
	SkillHPPercent                float64
	SkillHPValue                  float64
	SkillDefensePercent           float64
	SkillEvasionPercent           float64
	SkillCritChancePercent        float64
	SkillCritDamagePercent        float64
	SkillRestTimePercent          float64
	SkillXPPercent                float64
	SkillSurviveFatalBlowPercent  float64

	SpiritATKValue          float64
	SpiritATKPercent        float64
	SpiritDEFValue          float64
	SpiritDEFPercent        float64
	SpiritHPValue           float64
	SpiritHPPercent         float64
	SpiritEvasionPercent    float64
	SpiritCritChancePercent float64
	SpiritCritDamagePercent float64

	ClassBonusPercent float64
}

// Resolve runs the full resolution pipeline in order: equipment validation,
// class scaling, innate tier selection, then gear and skill stat
// improvements. The hero's stat fields are final on return.
func (h *Hero) Resolve(t *data.Tables) (*StatBreakdown, error) {
	if err := h.ValidateEquipment(t); err != nil {
		return nil, err
	}
	if err := h.ScaleByClass(t); err != nil {
		return nil, err
	}
	if err := h.CalculateInnateTier(t); err != nil {
		return nil, err
	}
	return h.CalculateStatImprovements(t)
}

// CalculateStatImprovements computes gear, skill, spirit, and class bonuses
// and composes the hero's final Attack and Defense. Per-item, for Attack and
// Defense:
//
//	final = (base × quality + capped_element + capped_spirit) × (1 + item_skill% + all_equipment%)
//
// HP uses the same form without the item-specific percent; evasion and crit
// chance take only the all-equipment percent. Flat element and spirit
// bonuses are individually capped at the item's own base stat.
func (h *Hero) CalculateStatImprovements(t *data.Tables) (*StatBreakdown, error) {
	skills := make([]data.HeroSkill, 0, len(h.Skills))
	for _, name := range h.Skills {
		sk, err := t.HeroSkill(name)
		if err != nil {
			return nil, fmt.Errorf("hero %s: %w", h.Identifier, err)
		}
		skills = append(skills, sk)
	}

	bd := &StatBreakdown{}
	var spirits spiritBonuses

	for slot, equipment := range h.EquipmentEquipped {
		bp, err := t.Blueprint(equipment)
		if err != nil {
			return nil, fmt.Errorf("hero %s slot %d: %w", h.Identifier, slot, err)
		}

		// Skill-granted item bonuses for this slot.
		var itemAllStatsPercent, itemATKPercent, itemDEFPercent float64
		for _, sk := range skills {
			itemAllStatsPercent += sk.BonusStatsFromAllEquipmentPercent
			for _, itype := range sk.ItemTypes {
				if bp.Type == itype {
					itemATKPercent += sk.AttackWithItemPercent
					itemDEFPercent += sk.DefenseWithItemPercent
				}
			}
		}

		quality, err := ParseQuality(h.EquipmentQuality[slot])
		if err != nil {
			return nil, fmt.Errorf("hero %s slot %d: %w", h.Identifier, slot, err)
		}
		qualityMult := quality.Multiplier()

		element, err := ParseSocketedElement(h.ElementsSocketed[slot])
		if err != nil {
			return nil, fmt.Errorf("hero %s slot %d: %w", h.Identifier, slot, err)
		}
		elementBonus := element.Bonus()
		if bp.ElementalAffinity == element.Type {
			elementBonus = elementBonus.Scale(1.5)
		}

		spirit, err := ParseSocketedSpirit(h.SpiritsSocketed[slot])
		if err != nil {
			return nil, fmt.Errorf("hero %s slot %d: %w", h.Identifier, slot, err)
		}
		spiritBonus, err := spirit.Bonus()
		if err != nil {
			return nil, fmt.Errorf("hero %s slot %d: %w", h.Identifier, slot, err)
		}
		spiritMatch := bp.SpiritAffinity == spirit.Name
		spirit.apply(&spirits, spiritMatch)
		if spiritMatch {
			spiritBonus = spiritBonus.Scale(1.5)
		}

		// Flat socket bonuses never exceed the item's own base stat.
		itemATK := (bp.ATK*qualityMult +
			math.Min(elementBonus.ATK, bp.ATK) +
			math.Min(spiritBonus.ATK, bp.ATK)) *
			(1 + itemATKPercent + itemAllStatsPercent)
		itemDEF := (bp.DEF*qualityMult +
			math.Min(elementBonus.DEF, bp.DEF) +
			math.Min(spiritBonus.DEF, bp.DEF)) *
			(1 + itemDEFPercent + itemAllStatsPercent)
		itemHP := (bp.HP*qualityMult +
			math.Min(elementBonus.HP, bp.HP) +
			math.Min(spiritBonus.HP, bp.HP)) *
			(1 + itemAllStatsPercent)

		bd.GearATK += itemATK
		bd.GearDEF += itemDEF
		bd.GearHP += itemHP
		bd.GearEvasionPercent += bp.Evasion * (1 + itemAllStatsPercent)
		bd.GearCritChancePercent += bp.CritChance * (1 + itemAllStatsPercent)
	}

	// Hero-wide skill aggregation, independent of equipped items.
	for _, sk := range skills {
		bd.SkillATKPercent += sk.AttackPercent
		bd.SkillATKValue += sk.AttackValue
		bd.SkillHPPercent += sk.HPPercent
		bd.SkillHPValue += sk.HPValue
		bd.SkillDefensePercent += sk.DefensePercent
		bd.SkillEvasionPercent += sk.EvasionPercent
		bd.SkillCritChancePercent += sk.CritChancePercent
		bd.SkillCritDamagePercent += sk.CritDamagePercent
		bd.SkillRestTimePercent += sk.RestTimePercent
		bd.SkillXPPercent += sk.XPPercent
		bd.SkillSurviveFatalBlowPercent += sk.SurviveFatalBlowChancePercent
	}

	bd.SpiritATKValue = spirits.ATKValue
	bd.SpiritATKPercent = spirits.ATKPercent
	bd.SpiritDEFValue = spirits.DEFValue
	bd.SpiritDEFPercent = spirits.DEFPercent
	bd.SpiritHPValue = spirits.HPValue
	bd.SpiritHPPercent = spirits.HPPercent
	bd.SpiritEvasionPercent = spirits.EvasionPercent
	bd.SpiritCritChancePercent = spirits.CritChancePercent
	bd.SpiritCritDamagePercent = spirits.CritDamagePercent

	classBonus, err := h.classConditionalBonus()
	if err != nil {
		return nil, err
	}
	bd.ClassBonusPercent = classBonus

	// Final Attack composition. The seeded base is keyed off the HP seed
	// counter, not the attack seed counter.
	seededATK := h.ATK + float64(h.HPSeeds)*seedBonus
	coreATK := seededATK + spirits.ATKValue + bd.SkillATKValue
	atkPercent := 1 + bd.SkillATKPercent + classBonus + spirits.ATKPercent
	h.ATK = coreATK*atkPercent + bd.GearATK*atkPercent
	h.ATKModifier = atkPercent - 1

	// Defense composed symmetrically, seeded from the defense seed counter.
	seededDEF := h.DEF + float64(h.DEFSeeds)*seedBonus
	coreDEF := seededDEF + spirits.DEFValue
	defPercent := 1 + bd.SkillDefensePercent + spirits.DEFPercent
	h.DEF = coreDEF*defPercent + bd.GearDEF*defPercent
	h.DEFModifier = defPercent - 1

	return bd, nil
}

// classConditionalBonus returns the attack-percent pool contribution keyed
// by class: Geomancer and Astramancer convert elemental investment points to
// percent, Chieftain converts 40% of threat rating; all other classes
// contribute zero.
func (h *Hero) classConditionalBonus() (float64, error) {
	switch h.Class {
	case "Geomancer", "Astramancer":
		qty, err := h.ElementQty()
		if err != nil {
			return 0, err
		}
		return float64(qty) / 100, nil
	case "Chieftain":
		return 0.4 * float64(h.ThreatRating) / 100, nil
	default:
		return 0, nil
	}
}
