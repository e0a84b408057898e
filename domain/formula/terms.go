package formula

import "math"

// Accuracy bases per phase.
const (
	ShellingAccuracyBase = 90.0
	TorpedoAccuracyBase  = 85.0
	NightAccuracyBase    = 69.0
	AswAccuracyBase      = 80.0
)

// AccuracyTermParams are the contributions to an attacker's accuracy term.
type AccuracyTermParams struct {
	Base          float64
	Level         int
	Luck          int
	EquipAccuracy float64
	FormationMod  float64
	StyleMod      float64
}

// AccuracyTerm returns floor((base + 2√lv + 1.5√luck + equip) · formation · style).
func AccuracyTerm(p AccuracyTermParams) int {
	formationMod := orOne(p.FormationMod)
	styleMod := orOne(p.StyleMod)
	raw := p.Base + 2*math.Sqrt(float64(p.Level)) + 1.5*math.Sqrt(float64(p.Luck)) + p.EquipAccuracy
	return int(math.Floor(raw * formationMod * styleMod))
}

// EvasionTerm applies the formation modifier and the diminishing-returns curve.
func EvasionTerm(evasion int, formationMod float64) int {
	base := math.Floor(float64(evasion) * orOne(formationMod))
	switch {
	case base >= 65:
		return int(math.Floor(55 + 2*math.Sqrt(base-65)))
	case base >= 40:
		return int(math.Floor(40 + 3*math.Sqrt(base-40)))
	default:
		return int(base)
	}
}

// MoraleMod maps a morale value to its accuracy multiplier.
func MoraleMod(morale int) float64 {
	switch {
	case morale >= 53:
		return 1.2
	case morale >= 30:
		return 1.0
	case morale >= 20:
		return 0.8
	default:
		return 0.5
	}
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
