package formula

import "math"

// Hit rate basis bounds.
const (
	minHitBasis = 10.0
	maxHitBasis = 96.0
)

// Critical rate multipliers per phase.
const (
	ShellingCriticalMul = 1.3
	TorpedoCriticalMul  = 1.5
	NightCriticalMul    = 1.5
	AswCriticalMul      = 1.1
)

// HitRateParams are the terms of the hit rate formula.
type HitRateParams struct {
	AccuracyTerm           int     `json:"accuracy_term"`
	EvasionTerm            int     `json:"evasion_term"`
	MoraleMod              float64 `json:"morale_mod"`
	HitRateBonus           float64 `json:"hit_rate_bonus"`
	CriticalRateMultiplier float64 `json:"critical_rate_multiplier"`
	CriticalRateBonus      float64 `json:"critical_rate_bonus"`
}

// HitRate splits the probability that an attack connects into normal and
// critical hits. The miss probability is 1 - Total.
type HitRate struct {
	Total    float64 `json:"total"`
	Normal   float64 `json:"normal"`
	Critical float64 `json:"critical"`
}

// Miss returns the probability that the attack misses.
func (r HitRate) Miss() float64 {
	return 1 - r.Total
}

// Weights returns the normal and critical shares of Total. Critical is capped
// at Total so the shares and the miss rate always sum to one.
func (r HitRate) Weights() (normal, critical float64) {
	critical = math.Min(math.Max(r.Critical, 0), r.Total)
	return r.Total - critical, critical
}

// Calc evaluates the hit rate formula. Total and critical are floored and
// capped independently; Normal never goes below zero.
func (p HitRateParams) Calc() HitRate {
	basis := float64(p.AccuracyTerm-p.EvasionTerm) * p.MoraleMod
	basis = math.Min(math.Max(basis, minHitBasis), maxHitBasis)

	hitPercent := math.Floor(basis + 1 + p.HitRateBonus)
	critPercent := math.Floor(math.Sqrt(basis)*p.CriticalRateMultiplier + 1 + p.CriticalRateBonus*100)

	total := math.Min(hitPercent/100, 1)
	critical := math.Min(critPercent/100, 1)

	return HitRate{
		Total:    total,
		Normal:   math.Max(total-critical, 0),
		Critical: critical,
	}
}
