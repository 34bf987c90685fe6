package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldwyck/titansim/internal/data"
)

func TestHero_ValidateEquipment(t *testing.T) {
	t.Parallel()
	tables := testTables()

	t.Run("valid loadout", func(t *testing.T) {
		h := blankHero()
		require.NoError(t, h.ValidateEquipment(tables))
	})

	t.Run("unknown class", func(t *testing.T) {
		h := blankHero()
		h.Class = "Necromancer"
		err := h.ValidateEquipment(tables)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown class")
	})

	t.Run("unknown equipment", func(t *testing.T) {
		h := blankHero()
		h.EquipmentEquipped[2] = "Phantom Blade"
		err := h.ValidateEquipment(tables)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown equipment")
	})

	t.Run("category not allowed in slot", func(t *testing.T) {
		h := blankHero()
		// Training Sword is a Sword, only allowed in slot 0.
		h.EquipmentEquipped[1] = "Training Sword"
		err := h.ValidateEquipment(tables)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed in slot 1")
	})
}

func TestHero_ScaleByClass(t *testing.T) {
	t.Parallel()
	tables := testTables()

	t.Run("level 2 reads the curve at index 1", func(t *testing.T) {
		h := blankHero()
		h.Level = 2
		require.NoError(t, h.ScaleByClass(tables))

		assert.Equal(t, 120.0, h.HP)
		assert.Equal(t, 60.0, h.ATK)
		assert.Equal(t, 36.0, h.DEF)
		assert.Equal(t, 0.05, h.Evasion)
		assert.Equal(t, 0.1, h.CritChance)
		assert.Equal(t, 1.5, h.CritMult)
		assert.Equal(t, "Fire", h.ElementType)
	})

	t.Run("level above curve fails", func(t *testing.T) {
		h := blankHero()
		h.Level = 4
		require.Error(t, h.ScaleByClass(tables))
	})

	t.Run("level zero fails", func(t *testing.T) {
		h := blankHero()
		h.Level = 0
		require.Error(t, h.ScaleByClass(tables))
	})
}

func TestHero_ElementQty(t *testing.T) {
	t.Parallel()
	tables := testTables()

	tests := []struct {
		name     string
		elements [data.EquipmentSlots]string
		want     int
		wantErr  bool
	}{
		{
			name:     "matching Fire 2 contributes 10",
			elements: [data.EquipmentSlots]string{"Fire 2", "Water 1", "Water 1", "Water 1", "Water 1", "Water 1"},
			want:     10,
		},
		{
			name:     "non-matching alignment contributes 0",
			elements: [data.EquipmentSlots]string{"Water 2", "Water 2", "Water 2", "Water 2", "Water 2", "Water 2"},
			want:     0,
		},
		{
			name:     "all grades summed",
			elements: [data.EquipmentSlots]string{"Fire 1", "Fire 2", "Fire 3", "Fire 4", "Water 1", "Water 1"},
			want:     55,
		},
		{
			name:     "malformed descriptor fails even off-alignment",
			elements: [data.EquipmentSlots]string{"Water", "Water 1", "Water 1", "Water 1", "Water 1", "Water 1"},
			wantErr:  true,
		},
		{
			name:     "out-of-range grade fails",
			elements: [data.EquipmentSlots]string{"Fire 7", "Water 1", "Water 1", "Water 1", "Water 1", "Water 1"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := blankHero()
			require.NoError(t, h.ScaleByClass(tables)) // sets ElementType=Fire
			h.ElementsSocketed = tt.elements

			qty, err := h.ElementQty()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, qty)
		})
	}
}

func TestHero_SpiritQty(t *testing.T) {
	t.Parallel()

	h := blankHero()
	h.SpiritsSocketed = [data.EquipmentSlots]string{
		"Shark T9", "Shark T9", "Armadillo T7", "Shark T9", "Mundra T10", "Lizard T7",
	}

	assert.Equal(t, uint8(3), h.SpiritQty("Shark T9"))
	assert.Equal(t, uint8(1), h.SpiritQty("Mundra T10"))
	assert.Equal(t, uint8(0), h.SpiritQty("Dinosaur T9"))
	// Partial name does not match a full descriptor.
	assert.Equal(t, uint8(0), h.SpiritQty("Shark"))
}

func TestHero_CalculateInnateTier(t *testing.T) {
	t.Parallel()
	tables := testTables()

	tests := []struct {
		name     string
		elements [data.EquipmentSlots]string
		wantTier uint8
	}{
		{
			name:     "zero investment selects the floor rung",
			elements: [data.EquipmentSlots]string{"Water 1", "Water 1", "Water 1", "Water 1", "Water 1", "Water 1"},
			wantTier: 1,
		},
		{
			name:     "threshold not strictly exceeded keeps lower tier",
			elements: [data.EquipmentSlots]string{"Fire 2", "Water 1", "Water 1", "Water 1", "Water 1", "Water 1"}, // qty 10
			wantTier: 1,
		},
		{
			name:     "investment above threshold unlocks tier 2",
			elements: [data.EquipmentSlots]string{"Fire 2", "Fire 1", "Water 1", "Water 1", "Water 1", "Water 1"}, // qty 15
			wantTier: 2,
		},
		{
			name:     "high investment selects the highest qualifying rung",
			elements: [data.EquipmentSlots]string{"Fire 4", "Fire 4", "Water 1", "Water 1", "Water 1", "Water 1"}, // qty 50
			wantTier: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := blankHero()
			require.NoError(t, h.ScaleByClass(tables))
			h.ElementsSocketed = tt.elements
			require.NoError(t, h.CalculateInnateTier(tables))
			assert.Equal(t, tt.wantTier, h.InnateTier)
		})
	}

	t.Run("no qualifying rung is a data defect", func(t *testing.T) {
		t.Parallel()

		// A ladder with no floor: every rung requires investment.
		noFloor := testTables()
		noFloor.InnateSkills = map[string]data.InnateSkill{
			"Vigilance II": {Name: "Vigilance II", Tier1Name: "Vigilance", ElementQtyReq: 10, SkillTier: 2},
		}

		h := blankHero()
		require.NoError(t, h.ScaleByClass(noFloor))
		err := h.CalculateInnateTier(noFloor)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no innate skill")
	})
}

// Increasing elemental investment never decreases the selected tier.
func TestInnateTierMonotonicInInvestment(t *testing.T) {
	t.Parallel()
	tables := testTables()

	ladders := [][data.EquipmentSlots]string{
		{"Water 1", "Water 1", "Water 1", "Water 1", "Water 1", "Water 1"}, // 0
		{"Fire 1", "Water 1", "Water 1", "Water 1", "Water 1", "Water 1"},  // 5
		{"Fire 3", "Water 1", "Water 1", "Water 1", "Water 1", "Water 1"},  // 15
		{"Fire 4", "Fire 1", "Water 1", "Water 1", "Water 1", "Water 1"},   // 30
		{"Fire 4", "Fire 4", "Water 1", "Water 1", "Water 1", "Water 1"},   // 50
		{"Fire 4", "Fire 4", "Fire 4", "Fire 4", "Fire 4", "Fire 4"},       // 150
	}

	prev := uint8(0)
	for i, elements := range ladders {
		h := blankHero()
		require.NoError(t, h.ScaleByClass(tables))
		h.ElementsSocketed = elements
		require.NoError(t, h.CalculateInnateTier(tables))
		assert.GreaterOrEqual(t, h.InnateTier, prev, "step %d decreased the tier", i)
		prev = h.InnateTier
	}
}
