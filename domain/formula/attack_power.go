package formula

import "math"

// Power caps per phase.
const (
	ShellingCap = 220.0
	TorpedoCap  = 180.0
	NightCap    = 360.0
	AswCap      = 170.0

	criticalMod = 1.5
)

// AttackPower is the resolved attack power of one attack.
type AttackPower struct {
	Normal   float64 `json:"normal"`
	Critical float64 `json:"critical"`
	IsCapped bool    `json:"is_capped"`
}

// ForHit returns the power used for the given hit type; zero for a miss.
func (p AttackPower) ForHit(critical bool) float64 {
	if critical {
		return p.Critical
	}
	return p.Normal
}

// AttackPowerParams are the terms attack power is computed from.
type AttackPowerParams struct {
	Basic                  float64  `json:"basic"`
	Cap                    float64  `json:"cap"`
	Precap                 Modifier `json:"precap"`
	Postcap                Modifier `json:"postcap"`
	ProficiencyCriticalMod float64  `json:"proficiency_critical_mod,omitempty"`
}

// NewAttackPowerParams builds params from a pipeline.
func NewAttackPowerParams(basic, cap float64, pipeline *Pipeline) AttackPowerParams {
	return AttackPowerParams{
		Basic:   basic,
		Cap:     cap,
		Precap:  pipeline.Precap(),
		Postcap: pipeline.Postcap(),
	}
}

// SoftCap compresses values above cap to cap + sqrt(excess).
func SoftCap(v, cap float64) float64 {
	if v <= cap {
		return v
	}
	return cap + math.Sqrt(v-cap)
}

// Calc evaluates the precap modifier, the soft cap and the postcap modifier.
func (p AttackPowerParams) Calc() AttackPower {
	precap := p.Precap.Apply(p.Basic)
	capped := SoftCap(precap, p.Cap)
	postcap := p.Postcap.Apply(capped)

	profMod := p.ProficiencyCriticalMod
	if profMod == 0 {
		profMod = 1
	}

	return AttackPower{
		Normal:   math.Max(math.Floor(postcap), 0),
		Critical: math.Max(math.Floor(postcap*criticalMod*profMod), 0),
		IsCapped: precap > p.Cap,
	}
}
