package study

import (
	"context"
	"fmt"
	"sync"

	"github.com/aldwyck/titansim/internal/data"
	"github.com/aldwyck/titansim/internal/model"
)

// testTables is a minimal static data bundle for runner tests.
func testTables() *data.Tables {
	anySlot := [data.EquipmentSlots][]string{
		{"Trinket"}, {"Trinket"}, {"Trinket"}, {"Trinket"}, {"Trinket"}, {"Trinket"},
	}
	return &data.Tables{
		Classes: map[string]data.ClassDefinition{
			"Sentinel": {
				Class:            "Sentinel",
				BaseHP:           []float64{100},
				BaseATK:          []float64{50},
				BaseDEF:          []float64{30},
				ElementType:      "Fire",
				EquipmentAllowed: anySlot,
			},
		},
		Blueprints: map[string]data.Blueprint{
			"Bare Trinket": {Name: "Bare Trinket", Type: "Trinket"},
		},
		HeroSkills: map[string]data.HeroSkill{
			"Blank":  {Name: "Blank"},
			"Blank2": {Name: "Blank2"},
			"Blank3": {Name: "Blank3"},
			"Blank4": {Name: "Blank4"},
			"Blank5": {Name: "Blank5"},
			"Blank6": {Name: "Blank6"},
		},
		InnateSkills: map[string]data.InnateSkill{
			"Vigilance": {Name: "Vigilance", Tier1Name: "Vigilance", ElementQtyReq: -1, SkillTier: 1},
		},
		ClassInnateNames: map[string]string{"Sentinel": "Vigilance"},
	}
}

func testHero(id string) model.Hero {
	return model.Hero{
		Identifier: id,
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

func testVariations(n int) []Variation {
	vs := make([]Variation, n)
	for i := range vs {
		id := fmt.Sprintf("var-%02d", i)
		vs[i] = Variation{Identifier: id, Heroes: []model.Hero{testHero(id)}}
	}
	return vs
}

// scriptedExecutor returns a fixed outcome per variation identifier and
// encounter name, and counts calls. Unlisted pairs lose every trial.
type scriptedExecutor struct {
	mu    sync.Mutex
	wins  map[string]bool // key: "<hero identifier>|<encounter name>"
	calls int
}

func (e *scriptedExecutor) ExecuteTrial(_ context.Context, team []model.TrialHero, enc Encounter) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return e.wins[team[0].Identifier+"|"+enc.Name], nil
}
