package model

import "fmt"

// Quality is an item's crafted quality tier. The multiplier table is closed:
// an unrecognized quality string is a data-authoring error and never maps to
// a default.
type Quality uint8

const (
	QualityNormal Quality = iota
	QualitySuperior
	QualityFlawless
	QualityEpic
	QualityLegendary
)

// ParseQuality maps a quality string from hero input to its tier.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "Normal":
		return QualityNormal, nil
	case "Superior":
		return QualitySuperior, nil
	case "Flawless":
		return QualityFlawless, nil
	case "Epic":
		return QualityEpic, nil
	case "Legendary":
		return QualityLegendary, nil
	default:
		return 0, fmt.Errorf("unknown gear quality %q", s)
	}
}

// Multiplier returns the factor applied to an item's base stats.
func (q Quality) Multiplier() float64 {
	switch q {
	case QualityNormal:
		return 1.0
	case QualitySuperior:
		return 1.25
	case QualityFlawless:
		return 1.5
	case QualityEpic:
		return 2.0
	case QualityLegendary:
		return 3.0
	default:
		return 0
	}
}

// String returns the canonical quality name.
func (q Quality) String() string {
	switch q {
	case QualityNormal:
		return "Normal"
	case QualitySuperior:
		return "Superior"
	case QualityFlawless:
		return "Flawless"
	case QualityEpic:
		return "Epic"
	case QualityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}
