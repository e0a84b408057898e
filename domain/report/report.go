// Package report merges per-style results into one outcome distribution per
// combat event.
package report

import (
	"fmt"

	"fleetcalc/domain/core"
	"fleetcalc/domain/damage"
	"fleetcalc/domain/distribution"
	"fleetcalc/domain/formula"
)

// AttackReport is one attack style's resolved attack, hit rate and damage.
// Optional fields stay nil when the upstream term could not be resolved.
type AttackReport[K comparable] struct {
	Style       K                    `json:"style"`
	ProcRate    *float64             `json:"proc_rate,omitempty"`
	AttackPower *formula.AttackPower `json:"attack_power,omitempty"`
	Hits        int                  `json:"hits"`
	HitRate     *formula.HitRate     `json:"hit_rate,omitempty"`
	Damage      *damage.Result       `json:"damage,omitempty"`
	Approximate bool                 `json:"approximate,omitempty"`
}

// ActionReport collects every style competing in one combat event.
type ActionReport[K comparable] struct {
	Data               map[K]AttackReport[K]                `json:"data"`
	DamageStateDensity distribution.Histogram[damage.State] `json:"damage_state_density,omitempty"`
	IsActive           bool                                 `json:"is_active"`

	order []K
}

// InactiveActionReport is the report of an event that cannot occur.
func InactiveActionReport[K comparable]() ActionReport[K] {
	return ActionReport[K]{Data: map[K]AttackReport[K]{}}
}

// NewActionReport keys reports by style and accumulates the proc-rate
// weighted damage state histogram. Reports lacking a proc rate or damage are
// kept but do not contribute. A repeated style is a programming error.
func NewActionReport[K comparable](reports []AttackReport[K]) ActionReport[K] {
	if len(reports) == 0 {
		return InactiveActionReport[K]()
	}

	out := ActionReport[K]{
		Data:     make(map[K]AttackReport[K], len(reports)),
		IsActive: true,
		order:    make([]K, 0, len(reports)),
	}

	var density distribution.Histogram[damage.State]
	for _, r := range reports {
		if _, exists := out.Data[r.Style]; exists {
			panic(fmt.Errorf("%w: %v", core.ErrDuplicateStyle, r.Style))
		}
		out.Data[r.Style] = r
		out.order = append(out.order, r.Style)

		if r.ProcRate == nil || r.Damage == nil {
			continue
		}
		if density == nil {
			density = distribution.New[damage.State]()
		}
		density.AddScaled(r.Damage.States, *r.ProcRate)
	}
	out.DamageStateDensity = density
	return out
}

// Styles returns the styles in the order they were supplied.
func (a ActionReport[K]) Styles() []K {
	return append([]K(nil), a.order...)
}

// Get returns the report for style.
func (a ActionReport[K]) Get(style K) (AttackReport[K], bool) {
	r, ok := a.Data[style]
	return r, ok
}

// TotalProcRate sums the resolved proc rates. The residual up to one is the
// chance that no attack occurs.
func (a ActionReport[K]) TotalProcRate() float64 {
	total := 0.0
	for _, r := range a.Data {
		if r.ProcRate != nil {
			total += *r.ProcRate
		}
	}
	return total
}

// SinkRate is the aggregate probability that the event sinks the target.
func (a ActionReport[K]) SinkRate() float64 {
	return a.DamageStateDensity.Get(damage.Sunk)
}

// IsApproximate reports whether any style carries approximate inputs.
func (a ActionReport[K]) IsApproximate() bool {
	for _, r := range a.Data {
		if r.Approximate {
			return true
		}
	}
	return false
}

// Rate is a helper for building optional proc rates.
func Rate(v float64) *float64 {
	return &v
}
