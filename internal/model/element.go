package model

import (
	"fmt"
	"strconv"
	"strings"
)

// StatTriple is a flat Attack/Defense/HP bonus granted by a socketed
// element or spirit.
type StatTriple struct {
	ATK float64
	DEF float64
	HP  float64
}

// Scale returns the triple with every component multiplied by f.
func (t StatTriple) Scale(f float64) StatTriple {
	return StatTriple{ATK: t.ATK * f, DEF: t.DEF * f, HP: t.HP * f}
}

// SocketedElement is a parsed element descriptor of the form
// "<element> <grade>", e.g. "Fire 2". Grade runs 1-4.
type SocketedElement struct {
	Type  string
	Grade int
}

// ParseSocketedElement parses an element descriptor. Any shape other than
// "<element> <grade>" with grade 1-4 is a data-authoring error.
func ParseSocketedElement(s string) (SocketedElement, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return SocketedElement{}, fmt.Errorf("element %q must conform to format [type] [grade: 1-4]", s)
	}
	grade, err := strconv.Atoi(parts[1])
	if err != nil || grade < 1 || grade > 4 {
		return SocketedElement{}, fmt.Errorf("unknown element grade %q in %q", parts[1], s)
	}
	return SocketedElement{Type: parts[0], Grade: grade}, nil
}

// InvestmentPoints returns the elemental investment this socket grants when
// its element matches the hero's alignment.
func (e SocketedElement) InvestmentPoints() int {
	switch e.Grade {
	case 1:
		return 5
	case 2:
		return 10
	case 3:
		return 15
	case 4:
		return 25
	default:
		return 0
	}
}

// Flat bonus triples per element grade. Two element names are exceptional:
// Luxurious at grade 1 and Opulent at grade 3 grant higher triples than
// their grade peers.
var (
	elementGradeBonus = map[int]StatTriple{
		1: {ATK: 14, DEF: 10, HP: 3},
		2: {ATK: 38, DEF: 25, HP: 8},
		3: {ATK: 48, DEF: 32, HP: 10},
		4: {ATK: 89, DEF: 59, HP: 18},
	}
	luxuriousBonus = StatTriple{ATK: 26, DEF: 18, HP: 5}
	opulentBonus   = StatTriple{ATK: 63, DEF: 42, HP: 13}
)

// Bonus returns the flat stat triple for this socket, before the affinity
// multiplier and before min-capping against the item's base stats.
func (e SocketedElement) Bonus() StatTriple {
	if e.Grade == 1 && e.Type == "Luxurious" {
		return luxuriousBonus
	}
	if e.Grade == 3 && e.Type == "Opulent" {
		return opulentBonus
	}
	return elementGradeBonus[e.Grade]
}
