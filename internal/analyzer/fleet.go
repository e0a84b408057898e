package analyzer

import (
	"fleetcalc/domain/attack"
	"fleetcalc/domain/damage"
	"fleetcalc/domain/distribution"
	"fleetcalc/domain/fleet"
	"fleetcalc/domain/report"
	"fleetcalc/domain/warfare"
)

// FleetCutinRate is the chance the flagship leads a fleet cutin.
type FleetCutinRate struct {
	Style attack.Style `json:"style"`
	Rate  float64      `json:"rate"`
}

// FleetAnalyzer resolves fleet-wide events.
type FleetAnalyzer struct {
	ships *ShipAnalyzer
}

// NewFleetAnalyzer returns a fleet analyzer resolving ships with ships.
func NewFleetAnalyzer(ships *ShipAnalyzer) *FleetAnalyzer {
	return &FleetAnalyzer{ships: ships}
}

// FleetCutinChance returns the fleet cutin the flagship can lead, or nil.
func (a *FleetAnalyzer) FleetCutinChance(f fleet.Fleet) *FleetCutinRate {
	if len(f.Ships) == 0 || f.OrgType.IsCombined() {
		return nil
	}
	flagship := f.Ships[0]
	def, ok := attack.LookupFleetCutin(flagship.FleetCutin)
	if !ok || !def.Allows(f.Formation, len(f.Ships)) {
		return nil
	}
	if a.ships.StateOf(flagship) >= damage.Moderate {
		return nil
	}
	return &FleetCutinRate{Style: def.Style, Rate: def.Rate(flagship.Level, flagship.Luck)}
}

// FlagshipShelling is the flagship's shelling event with the fleet cutin
// merged in. The individual styles keep the remaining mass.
func (a *FleetAnalyzer) FlagshipShelling(ctx warfare.Context, f fleet.Fleet, target fleet.TargetSnapshot) ActionReport {
	flagship := f.Ships[0]
	reports := a.ships.shellingReports(ctx, flagship, target)

	fc := a.FleetCutinChance(f)
	if fc == nil || len(reports) == 0 || fc.Rate == 0 {
		return report.NewActionReport(reports)
	}

	def, _ := attack.LookupFleetCutin(fc.Style)
	for i := range reports {
		if p := reports[i].ProcRate; p != nil {
			reports[i].ProcRate = report.Rate(*p * (1 - fc.Rate))
		}
	}

	special := a.ships.resolve(ctx, flagship, target, a.ships.StateOf(flagship), attack.Definition{
		Style:       def.Style,
		Phase:       warfare.PhaseShelling,
		PowerMod:    def.PowerMod,
		AccuracyMod: 1,
		Hits:        def.Hits,
	}, distribution.Just(fc.Rate))

	return report.NewActionReport(append([]AttackReport{special}, reports...))
}

// yieldToFleetCutin scales the flagship's day cutin rates by the mass left
// after the fleet cutin, matching the merged shelling report.
func (a *FleetAnalyzer) yieldToFleetCutin(f fleet.Fleet, shelling ActionReport, rates []StyleRate) []StyleRate {
	fc := a.FleetCutinChance(f)
	if fc == nil {
		return rates
	}
	if _, merged := shelling.Get(fc.Style); !merged {
		return rates
	}
	out := make([]StyleRate, len(rates))
	for i, r := range rates {
		out[i] = StyleRate{Style: r.Style, Rate: r.Rate.Map(func(v float64) float64 { return v * (1 - fc.Rate) })}
	}
	return out
}
