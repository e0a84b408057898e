package analyzer

import (
	"cmp"
	"math"
	"slices"

	"fleetcalc/domain/fleet"
	"fleetcalc/domain/probability"
	"fleetcalc/domain/warfare"
)

// PlaneContact is one plane's chance to be the contact plane.
type PlaneContact struct {
	Plane    fleet.ReconPlane `json:"plane"`
	Rate     float64          `json:"rate"`
	PowerMod float64          `json:"power_mod"`
}

// Contact is the aerial contact outcome of a fleet.
type Contact struct {
	TriggerRate float64        `json:"trigger_rate"`
	Planes      []PlaneContact `json:"planes,omitempty"`
	Total       float64        `json:"total"`
}

// ContactPowerMod is the day shelling multiplier granted by a contact plane.
func ContactPowerMod(accuracy int) float64 {
	switch {
	case accuracy >= 3:
		return 1.2
	case accuracy == 2:
		return 1.17
	default:
		return 1.12
	}
}

// ContactChance computes the trigger chance and the per-plane selection
// chance. Planes are tried from the most accurate down.
func ContactChance(planes []fleet.ReconPlane, air warfare.AirState) Contact {
	c := air.ContactLevel()
	if c == 0 || len(planes) == 0 {
		return Contact{}
	}

	sum := 0.0
	for _, p := range planes {
		sum += math.Floor(math.Sqrt(float64(p.Slots)) * float64(p.Los))
	}
	trigger := math.Min((sum+1)/float64(70-15*c), 1)

	ordered := slices.Clone(planes)
	slices.SortStableFunc(ordered, func(a, b fleet.ReconPlane) int {
		return cmp.Compare(b.Accuracy, a.Accuracy)
	})

	ps := make([]float64, len(ordered))
	for i, p := range ordered {
		ps[i] = math.Min(float64(p.Los)/float64(20-2*c), 1)
	}
	sel := probability.Sequential(ps)

	out := Contact{TriggerRate: trigger, Total: trigger * sel.Total}
	for i, p := range ordered {
		out.Planes = append(out.Planes, PlaneContact{
			Plane:    p,
			Rate:     trigger * sel.Rates[i],
			PowerMod: ContactPowerMod(p.Accuracy),
		})
	}
	return out
}

// FleetPlanes gathers the recon planes of every ship in fleet order.
func FleetPlanes(f fleet.Fleet) []fleet.ReconPlane {
	var out []fleet.ReconPlane
	for _, s := range f.Ships {
		out = append(out, s.ReconPlanes...)
	}
	return out
}
