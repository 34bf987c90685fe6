package model

import "math"

// RoundTo2 rounds to two decimal places for display output.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundedForDisplay returns a copy of the hero with display-facing float
// stats rounded to two decimals. The receiver is not modified.
func (h Hero) RoundedForDisplay() Hero {
	h.HP = RoundTo2(h.HP)
	h.ATK = RoundTo2(h.ATK)
	h.DEF = RoundTo2(h.DEF)
	h.Evasion = RoundTo2(h.Evasion)
	h.CritChance = RoundTo2(h.CritChance)
	h.CritMult = RoundTo2(h.CritMult)
	return h
}
