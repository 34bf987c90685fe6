package model

import (
	"github.com/aldwyck/titansim/internal/data"
)

// testTables builds a small static data bundle shared by the model tests.
// The Sentinel class has a level-1 base attack of 50 so the no-bonus
// identity path is easy to assert.
func testTables() *data.Tables {
	anySlot := [data.EquipmentSlots][]string{
		{"Sword", "Trinket"},
		{"Trinket"},
		{"Trinket"},
		{"Trinket"},
		{"Trinket"},
		{"Trinket"},
	}

	return &data.Tables{
		Classes: map[string]data.ClassDefinition{
			"Sentinel": {
				Class:            "Sentinel",
				BaseHP:           []float64{100, 120, 140},
				BaseATK:          []float64{50, 60, 70},
				BaseDEF:          []float64{30, 36, 42},
				BaseEvasion:      0.05,
				BaseCritChance:   0.1,
				BaseCritMult:     1.5,
				BaseThreatRating: 10,
				ElementType:      "Fire",
				EquipmentAllowed: anySlot,
				InnateSkills:     [data.InnateFamilies]string{"Vigilance", "", "", ""},
			},
			"Geomancer": {
				Class:            "Geomancer",
				BaseHP:           []float64{100},
				BaseATK:          []float64{50},
				BaseDEF:          []float64{30},
				ElementType:      "Fire",
				EquipmentAllowed: anySlot,
				InnateSkills:     [data.InnateFamilies]string{"Vigilance", "", "", ""},
			},
			"Chieftain": {
				Class:            "Chieftain",
				BaseHP:           []float64{100},
				BaseATK:          []float64{50},
				BaseDEF:          []float64{30},
				ElementType:      "Fire",
				EquipmentAllowed: anySlot,
				InnateSkills:     [data.InnateFamilies]string{"Vigilance", "", "", ""},
			},
		},
		Blueprints: map[string]data.Blueprint{
			"Bare Trinket": {
				Name: "Bare Trinket",
				Type: "Trinket",
			},
			"Training Sword": {
				Name:              "Training Sword",
				Type:              "Sword",
				ATK:               100,
				DEF:               50,
				HP:                20,
				Evasion:           0.02,
				CritChance:        0.01,
				ElementalAffinity: "Fire",
				SpiritAffinity:    "Wolf",
			},
		},
		HeroSkills: map[string]data.HeroSkill{
			"Blank": {Name: "Blank"},
			"Sword Mastery": {
				Name:                              "Sword Mastery",
				AttackPercent:                     0.1,
				ItemTypes:                         []string{"Sword"},
				AttackWithItemPercent:             0.05,
				BonusStatsFromAllEquipmentPercent: 0.02,
			},
		},
		InnateSkills: map[string]data.InnateSkill{
			"Vigilance": {
				Name:          "Vigilance",
				Tier1Name:     "Vigilance",
				ElementQtyReq: -1,
				SkillTier:     1,
			},
			"Vigilance II": {
				Name:          "Vigilance II",
				Tier1Name:     "Vigilance",
				ElementQtyReq: 10,
				SkillTier:     2,
			},
			"Vigilance III": {
				Name:          "Vigilance III",
				Tier1Name:     "Vigilance",
				ElementQtyReq: 30,
				SkillTier:     3,
			},
		},
		ClassInnateNames: map[string]string{
			"Sentinel":  "Vigilance",
			"Geomancer": "Vigilance",
			"Chieftain": "Vigilance",
		},
	}
}

// blankHero returns a Sentinel with zero-stat equipment, blank skills, and
// sockets that contribute nothing: elements off-alignment, spirits outside
// the effect set. Resolving it applies no modifiers.
func blankHero() Hero {
	return Hero{
		Identifier: "test-hero",
		Class:      "Sentinel",
		Level:      1,
		Skills:     [data.SkillSlots]string{"Blank", "Blank", "Blank", "Blank"},
		EquipmentEquipped: [data.EquipmentSlots]string{
			"Bare Trinket", "Bare Trinket", "Bare Trinket", "Bare Trinket", "Bare Trinket", "Bare Trinket",
		},
		EquipmentQuality: [data.EquipmentSlots]string{
			"Normal", "Normal", "Normal", "Normal", "Normal", "Normal",
		},
		ElementsSocketed: [data.EquipmentSlots]string{
			"Water 1", "Water 1", "Water 1", "Water 1", "Water 1", "Water 1",
		},
		SpiritsSocketed: [data.EquipmentSlots]string{
			"Armadillo T7", "Armadillo T7", "Armadillo T7", "Armadillo T7", "Armadillo T7", "Armadillo T7",
		},
	}
}
