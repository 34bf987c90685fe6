package model

import (
	"fmt"
	"math"
	"slices"

	"github.com/aldwyck/titansim/internal/data"
)

// Hero is a single hero configuration: identity, class, investment seeds,
// learned skills, and the equipped loadout. Stat fields are populated by the
// resolution pipeline, never hand-set.
//
// The four slot arrays (equipment, quality, element, spirit) are parallel:
// index i in each refers to the same equipment slot.
type Hero struct {
	Identifier string
	Class      string
	Level      uint8
	Rank       uint8
	InnateTier uint8

	HP           float64
	ATK          float64
	DEF          float64
	Evasion      float64
	CritChance   float64
	CritMult     float64
	ThreatRating uint16
	ElementType  string

	ATKModifier float64
	DEFModifier float64

	HPSeeds  uint8
	ATKSeeds uint8
	DEFSeeds uint8

	Skills [data.SkillSlots]string

	EquipmentEquipped [data.EquipmentSlots]string
	EquipmentQuality  [data.EquipmentSlots]string
	ElementsSocketed  [data.EquipmentSlots]string
	SpiritsSocketed   [data.EquipmentSlots]string
}

// ValidateEquipment confirms the hero's class exists and that every equipped
// item exists and is of a category allowed for its slot on that class.
// A violation is a data-authoring defect, not a runtime condition.
func (h *Hero) ValidateEquipment(t *data.Tables) error {
	class, err := t.Class(h.Class)
	if err != nil {
		return fmt.Errorf("hero %s: %w", h.Identifier, err)
	}

	for i, equipment := range h.EquipmentEquipped {
		bp, err := t.Blueprint(equipment)
		if err != nil {
			return fmt.Errorf("hero %s slot %d: %w", h.Identifier, i, err)
		}
		if !slices.Contains(class.EquipmentAllowed[i], bp.Type) {
			return fmt.Errorf("hero %s: equipment %q of type %q is not allowed in slot %d (valid: %v)",
				h.Identifier, equipment, bp.Type, i, class.EquipmentAllowed[i])
		}
	}
	return nil
}

// ScaleByClass sets base HP/ATK/DEF from the class's per-level curves at
// level-1 and copies evasion, crit chance, crit multiplier, and elemental
// alignment verbatim from the class definition.
func (h *Hero) ScaleByClass(t *data.Tables) error {
	class, err := t.Class(h.Class)
	if err != nil {
		return fmt.Errorf("hero %s: %w", h.Identifier, err)
	}
	if h.Level < 1 || int(h.Level) > class.MaxLevel() {
		return fmt.Errorf("hero %s: level %d outside class %q curve (1-%d)",
			h.Identifier, h.Level, h.Class, class.MaxLevel())
	}

	idx := int(h.Level) - 1
	h.HP = class.BaseHP[idx]
	h.ATK = class.BaseATK[idx]
	h.DEF = class.BaseDEF[idx]
	h.Evasion = class.BaseEvasion
	h.CritChance = class.BaseCritChance
	h.CritMult = class.BaseCritMult
	h.ElementType = class.ElementType
	return nil
}

// ElementQty sums the elemental investment from socketed elements matching
// the hero's alignment. Every descriptor is validated even when its element
// does not match; points: grade 1->5, 2->10, 3->15, 4->25.
func (h *Hero) ElementQty() (int, error) {
	qty := 0
	for _, descriptor := range h.ElementsSocketed {
		el, err := ParseSocketedElement(descriptor)
		if err != nil {
			return 0, fmt.Errorf("hero %s: %w", h.Identifier, err)
		}
		if el.Type == h.ElementType {
			qty += el.InvestmentPoints()
		}
	}
	return qty, nil
}

// SpiritQty counts socketed spirits whose full descriptor equals name.
// A count outside the uint8 range degrades to zero rather than failing.
func (h *Hero) SpiritQty(name string) uint8 {
	n := 0
	for _, s := range h.SpiritsSocketed {
		if s == name {
			n++
		}
	}
	if n > math.MaxUint8 {
		return 0
	}
	return uint8(n)
}

// innateSkillName returns the tier-1 name of the hero's class innate ladder.
func (h *Hero) innateSkillName(t *data.Tables) (string, error) {
	family, err := t.InnateFamily(h.Class)
	if err != nil {
		return "", fmt.Errorf("hero %s: %w", h.Identifier, err)
	}
	return family, nil
}

// CalculateInnateTier selects the highest innate ladder rung whose required
// investment is strictly below the hero's elemental investment and assigns
// its tier. No qualifying rung means the ladder is missing its floor, which
// is a game-data defect.
func (h *Hero) CalculateInnateTier(t *data.Tables) error {
	qty, err := h.ElementQty()
	if err != nil {
		return err
	}
	family, err := h.innateSkillName(t)
	if err != nil {
		return err
	}

	best := data.InnateSkill{}
	found := false
	for _, is := range t.InnateSkills {
		if is.Tier1Name != family || is.ElementQtyReq >= qty {
			continue
		}
		if !found || is.SkillTier > best.SkillTier {
			best = is
			found = true
		}
	}
	if !found {
		return fmt.Errorf("hero %s: no innate skill in family %q qualifies at element qty %d",
			h.Identifier, family, qty)
	}

	h.InnateTier = best.SkillTier
	return nil
}
