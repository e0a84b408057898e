package analyzer

import (
	"fleetcalc/domain/attack"
	"fleetcalc/domain/distribution"
	"fleetcalc/domain/fleet"
	"fleetcalc/domain/probability"
	"fleetcalc/domain/report"
)

// AntiAirCutin is the trigger distribution over anti-air cutin kinds.
type AntiAirCutin struct {
	Rates distribution.Histogram[attack.AntiAirKind] `json:"rates"`
	Total float64                                    `json:"total"`
}

// AntiAirCutinChance returns the chance that each of the ship's cutins is
// the one triggered, trying them in check order.
func AntiAirCutinChance(ship fleet.ShipSnapshot) AntiAirCutin {
	cutins := attack.AntiAirCutins(ship.AntiAirCutins)
	ps := make([]float64, len(cutins))
	for i, c := range cutins {
		ps[i] = c.Rate
	}
	sel := probability.Sequential(ps)

	out := AntiAirCutin{Rates: distribution.New[attack.AntiAirKind](), Total: sel.Total}
	for i, c := range cutins {
		out.Rates.Add(c.Kind, sel.Rates[i])
	}
	return out
}

// FleetAntiAirCutinChance returns the fleet-wide cutin distribution. One
// cutin fires per fleet; ships are checked in fleet order.
func FleetAntiAirCutinChance(f fleet.Fleet) AntiAirCutin {
	out := AntiAirCutin{Rates: distribution.New[attack.AntiAirKind]()}
	totals := make([]float64, 0, len(f.Ships))
	none := 1.0
	for _, s := range f.Ships {
		ship := AntiAirCutinChance(s)
		out.Rates.AddScaled(ship.Rates, none)
		none *= 1 - ship.Total
		totals = append(totals, ship.Total)
	}
	out.Total = probability.AtLeastNOf(totals, 1)
	return out
}

// AntiAirDefense reports the ship's anti-air cutins as an event with proc
// rates only.
func AntiAirDefense(ship fleet.ShipSnapshot) report.ActionReport[attack.AntiAirKind] {
	chance := AntiAirCutinChance(ship)
	reports := make([]report.AttackReport[attack.AntiAirKind], 0, chance.Rates.Len())
	for _, c := range attack.AntiAirCutins(ship.AntiAirCutins) {
		reports = append(reports, report.AttackReport[attack.AntiAirKind]{
			Style:    c.Kind,
			ProcRate: report.Rate(chance.Rates.Get(c.Kind)),
			Hits:     1,
		})
	}
	return report.NewActionReport(reports)
}
