package model

import (
	"fmt"
	"strings"
)

// SocketedSpirit is a parsed spirit descriptor of the form
// "<name> <tier-code>", e.g. "Wolf T4" or "Mundra TM".
type SocketedSpirit struct {
	Name string
	Tier string
}

// ParseSocketedSpirit parses a spirit descriptor. A malformed descriptor is
// a data-authoring error; the tier code is validated when the flat bonus is
// resolved.
func ParseSocketedSpirit(s string) (SocketedSpirit, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return SocketedSpirit{}, fmt.Errorf("spirit %q must conform to format [name] [tier]", s)
	}
	return SocketedSpirit{Name: parts[0], Tier: parts[1]}, nil
}

// Flat bonus triples per spirit tier code. TM is Mundra's dedicated tier.
var spiritTierBonus = map[string]StatTriple{
	"T4":  {ATK: 16, DEF: 11, HP: 3},  // low-tier spirits
	"T5":  {ATK: 26, DEF: 18, HP: 5},  // Xolotl
	"T7":  {ATK: 41, DEF: 27, HP: 8},  // mid-tier spirits
	"T9":  {ATK: 48, DEF: 32, HP: 10}, // high-tier spirits
	"TM":  {ATK: 50, DEF: 33, HP: 10}, // Mundra
	"T11": {ATK: 63, DEF: 42, HP: 13}, // Quetzalcoatl
	"T12": {ATK: 89, DEF: 59, HP: 18}, // max-tier spirits
}

// Bonus returns the flat stat triple for the spirit's tier code, before the
// affinity multiplier and before min-capping. An unrecognized tier code is a
// data-authoring error.
func (s SocketedSpirit) Bonus() (StatTriple, error) {
	t, ok := spiritTierBonus[s.Tier]
	if !ok {
		return StatTriple{}, fmt.Errorf("unknown spirit tier %q in %q %q", s.Tier, s.Name, s.Tier)
	}
	return t, nil
}

// spiritBonuses collects the name-specific special effects of socketed
// spirits. Each recognized spirit sets its fields outright rather than
// stacking, so across slots the last socket of a given effect wins.
type spiritBonuses struct {
	ATKValue          float64
	ATKPercent        float64
	DEFValue          float64
	DEFPercent        float64
	HPValue           float64
	HPPercent         float64
	EvasionPercent    float64
	CritChancePercent float64
	CritDamagePercent float64
}

// pick selects the on-affinity or off-affinity magnitude.
func pick(match bool, on, off float64) float64 {
	if match {
		return on
	}
	return off
}

// apply writes the spirit's special effect into dst. match reports whether
// the item's spirit affinity equals the spirit name; a match grants the
// higher magnitude. Spirits outside the recognized set contribute nothing.
func (s SocketedSpirit) apply(dst *spiritBonuses, match bool) {
	switch s.Name {
	case "Wolf":
		dst.ATKPercent = pick(match, 0.1, 0.05)
	case "Ram":
		dst.DEFPercent = pick(match, 0.1, 0.05)
	case "Eagle":
		dst.CritChancePercent = pick(match, 0.03, 0.02)
	case "Ox":
		dst.HPPercent = pick(match, 0.05, 0.03)
	case "Viper":
		dst.CritDamagePercent = pick(match, 0.2, 0.15)
	case "Cat":
		dst.EvasionPercent = pick(match, 0.03, 0.02)
	case "Bear":
		dst.ATKPercent = pick(match, 0.07, 0.05)
		dst.HPValue = pick(match, 20, 15)
	case "Walrus":
		dst.HPPercent = pick(match, 0.08, 0.05)
	case "Mammoth":
		dst.DEFPercent = pick(match, 0.13, 0.1)
	case "Lion":
		dst.ATKPercent = pick(match, 0.07, 0.05)
		dst.EvasionPercent = pick(match, 0.02, 0.01)
	case "Tiger":
		dst.DEFPercent = pick(match, 0.07, 0.05)
		dst.EvasionPercent = pick(match, 0.02, 0.01)
	case "Phoenix":
		dst.HPPercent = pick(match, 0.05, 0.04)
	case "Hydra":
		dst.DEFValue = pick(match, 125, 100)
		dst.HPValue = pick(match, 35, 25)
	case "Tarrasque":
		dst.DEFPercent = pick(match, 0.25, 0.2)
	case "Carbuncle":
		dst.CritChancePercent = pick(match, 0.03, 0.02)
		dst.EvasionPercent = pick(match, 0.03, 0.02)
	case "Chimera":
		dst.ATKPercent = pick(match, 0.15, 0.1)
		dst.CritDamagePercent = pick(match, 0.15, 0.1)
	case "Kraken":
		dst.ATKValue = pick(match, 125, 100)
		dst.ATKPercent = pick(match, 0.15, 0.1)
	}
}
