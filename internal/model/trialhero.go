package model

// Spirit descriptors the combat model tracks per-hero counts for.
const (
	SpiritArmadilloT7 = "Armadillo T7"
	SpiritLizardT7    = "Lizard T7"
	SpiritSharkT9     = "Shark T9"
	SpiritDinosaurT9  = "Dinosaur T9"
	SpiritMundraT10   = "Mundra T10"
)

// TrialHero is the resolved snapshot handed to a trial executor: final
// combat stats plus the census fields the combat model consumes.
type TrialHero struct {
	Identifier string
	Class      string
	Level      uint8
	Rank       uint8
	InnateTier uint8

	HP           float64
	ATK          float64
	DEF          float64
	ThreatRating uint16
	CritChance   float64
	CritMult     float64
	Evasion      float64

	ElementQty  int
	ElementType string

	ArmadilloQty uint8
	LizardQty    uint8
	SharkQty     uint8
	DinosaurQty  uint8
	MundraQty    uint8

	ATKModifier float64
	DEFModifier float64
}

// TrialHero snapshots a resolved hero for trial execution. Call after
// Resolve; an unresolved hero yields zeroed stats.
func (h *Hero) TrialHero() (TrialHero, error) {
	qty, err := h.ElementQty()
	if err != nil {
		return TrialHero{}, err
	}
	return TrialHero{
		Identifier:   h.Identifier,
		Class:        h.Class,
		Level:        h.Level,
		Rank:         h.Rank,
		InnateTier:   h.InnateTier,
		HP:           h.HP,
		ATK:          h.ATK,
		DEF:          h.DEF,
		ThreatRating: h.ThreatRating,
		CritChance:   h.CritChance,
		CritMult:     h.CritMult,
		Evasion:      h.Evasion,
		ElementQty:   qty,
		ElementType:  h.ElementType,
		ArmadilloQty: h.SpiritQty(SpiritArmadilloT7),
		LizardQty:    h.SpiritQty(SpiritLizardT7),
		SharkQty:     h.SpiritQty(SpiritSharkT9),
		DinosaurQty:  h.SpiritQty(SpiritDinosaurT9),
		MundraQty:    h.SpiritQty(SpiritMundraT10),
		ATKModifier:  h.ATKModifier,
		DEFModifier:  h.DEFModifier,
	}, nil
}
