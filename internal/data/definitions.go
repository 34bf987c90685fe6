package data

// Slot and skill counts are fixed by the game: every hero carries exactly
// six equipment slots and four learned skills. Slot index is meaningful
// (slot 0 is the weapon slot, etc.) so slot-indexed arrays are never reordered.
const (
	EquipmentSlots = 6
	SkillSlots     = 4
	InnateFamilies = 4
)

// ClassDefinition holds the static archetype data for a hero class:
// per-level base stat curves, fixed secondary stats, elemental alignment,
// the equipment categories allowed in each slot, and the innate ability
// families the class can unlock.
type ClassDefinition struct {
	Class        string `yaml:"class"`
	Prerequisite string `yaml:"prerequisite"`
	GoldHireCost uint32 `yaml:"gold_hire_cost"`
	GemHireCost  uint32 `yaml:"gem_hire_cost"`

	// Base stat curves, one entry per level (index = level - 1).
	BaseHP  []float64 `yaml:"base_hp"`
	BaseATK []float64 `yaml:"base_atk"`
	BaseDEF []float64 `yaml:"base_def"`

	BaseEvasion      float64 `yaml:"base_eva"`
	BaseCritChance   float64 `yaml:"base_crit_chance"`
	BaseCritMult     float64 `yaml:"base_crit_mult"`
	BaseThreatRating uint16  `yaml:"base_threat_rating"`

	ElementType string `yaml:"element_type"`

	// EquipmentAllowed lists the item categories permitted in each slot,
	// indexed by slot.
	EquipmentAllowed [EquipmentSlots][]string `yaml:"equipment_allowed"`

	InnateSkills [InnateFamilies]string `yaml:"innate_skills"`
}

// MaxLevel returns the highest level the class curves cover.
func (c ClassDefinition) MaxLevel() int {
	return len(c.BaseHP)
}

// Blueprint is the static definition of an equippable item: its category,
// base stat contributions, and the element/spirit affinities that amplify
// socketed bonuses.
type Blueprint struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	ATK        float64 `yaml:"atk"`
	DEF        float64 `yaml:"def"`
	HP         float64 `yaml:"hp"`
	Evasion    float64 `yaml:"eva"`
	CritChance float64 `yaml:"crit_chance"`

	ElementalAffinity string `yaml:"elemental_affinity"`
	SpiritAffinity    string `yaml:"spirit_affinity"`
}

// HeroSkill is the static definition of a learned skill. All percent fields
// are fractions (0.05 = 5%). Item-conditional bonuses apply only to slots
// holding an item whose category is listed in ItemTypes; the all-equipment
// percent applies to every slot's contribution.
type HeroSkill struct {
	Name string `yaml:"name"`

	AttackPercent                 float64 `yaml:"attack_percent"`
	AttackValue                   float64 `yaml:"attack_value"`
	HPPercent                     float64 `yaml:"hp_percent"`
	HPValue                       float64 `yaml:"hp_value"`
	DefensePercent                float64 `yaml:"defense_percent"`
	EvasionPercent                float64 `yaml:"evasion_percent"`
	CritChancePercent             float64 `yaml:"crit_chance_percent"`
	CritDamagePercent             float64 `yaml:"crit_damage_percent"`
	RestTimePercent               float64 `yaml:"rest_time_percent"`
	XPPercent                     float64 `yaml:"xp_percent"`
	SurviveFatalBlowChancePercent float64 `yaml:"survive_fatal_blow_chance_percent"`

	ItemTypes                         []string `yaml:"item_types"`
	AttackWithItemPercent             float64  `yaml:"attack_with_item_percent"`
	DefenseWithItemPercent            float64  `yaml:"defense_with_item_percent"`
	BonusStatsFromAllEquipmentPercent float64  `yaml:"bonus_stats_from_all_equipment_percent"`
}

// InnateSkill is one rung of a class's innate ability ladder. Rungs sharing
// a Tier1Name form the ladder; a rung qualifies once the hero's elemental
// investment strictly exceeds ElementQtyReq. A ladder's floor rung is
// authored with ElementQtyReq -1 so it qualifies at zero investment.
type InnateSkill struct {
	Name          string `yaml:"name"`
	Tier1Name     string `yaml:"tier_1_name"`
	ElementQtyReq int    `yaml:"element_qty_req"`
	SkillTier     uint8  `yaml:"skill_tier"`
}
