package analyzer

import (
	"math"

	"fleetcalc/domain/attack"
	"fleetcalc/domain/damage"
	"fleetcalc/domain/distribution"
	"fleetcalc/domain/fleet"
	"fleetcalc/domain/probability"
	"fleetcalc/domain/warfare"
)

// StyleRate is the chance that a style is the one selected in an event.
type StyleRate struct {
	Style attack.Style                     `json:"style"`
	Rate  distribution.Estimation[float64] `json:"rate"`
}

const flagshipObservationBonus = 15

// DayObservationTerm is the artillery spotting term. It is approximate when
// the fleet LoS contribution is unknown.
func DayObservationTerm(ctx warfare.Context, ship fleet.ShipSnapshot) distribution.Estimation[float64] {
	luck := math.Floor(math.Sqrt(float64(ship.Luck)) + 10)
	los := ctx.Attacker.FleetLos().
		Add(distribution.Just(1.6 * float64(ship.Los))).
		Mul(distribution.Just(0.7)).
		Add(distribution.Just(10.0)).
		Map(math.Floor)

	term := los.Add(distribution.Just(luck))
	if ctx.AirState == warfare.AirSuperiority {
		term = term.Mul(distribution.Just(0.6)).Map(math.Floor)
	}
	if ctx.Attacker.IsFlagship() {
		term = term.Add(distribution.Just(float64(flagshipObservationBonus)))
	}
	return term
}

// DayCutinRates returns the selection rate of every eligible day shelling
// style, cutins in priority order followed by the plain attack.
func DayCutinRates(ctx warfare.Context, ship fleet.ShipSnapshot, state damage.State) []StyleRate {
	var cutins []attack.Definition
	spotting := ctx.AirState == warfare.AirSupremacy || ctx.AirState == warfare.AirSuperiority
	if spotting && ship.Loadout.Seaplanes > 0 && state < damage.Heavy {
		cutins = attack.Cutins(warfare.PhaseShelling, ship.Loadout)
	}
	residual := attack.Residual(warfare.PhaseShelling, ship.Loadout)
	if len(cutins) == 0 {
		return []StyleRate{{Style: residual.Style, Rate: distribution.Just(1.0)}}
	}
	return selectStyles(DayObservationTerm(ctx, ship), cutins, residual)
}

// NightCutinTerm is the night cutin term from luck, level and position.
func NightCutinTerm(ctx warfare.Context, ship fleet.ShipSnapshot) float64 {
	level := math.Sqrt(float64(ship.Level))
	var term float64
	if ship.Luck < 50 {
		term = 15 + float64(ship.Luck) + 0.75*level
	} else {
		term = 65 + math.Floor(math.Sqrt(float64(ship.Luck-50))) + 0.8*level
	}
	term = math.Floor(term)
	if ctx.Attacker.IsFlagship() {
		term += flagshipObservationBonus
	}
	return term
}

// NightCutinRates returns the selection rate of every eligible night style.
func NightCutinRates(ctx warfare.Context, ship fleet.ShipSnapshot) []StyleRate {
	cutins := attack.Cutins(warfare.PhaseNight, ship.Loadout)
	residual := attack.Residual(warfare.PhaseNight, ship.Loadout)
	if len(cutins) == 0 {
		return []StyleRate{{Style: residual.Style, Rate: distribution.Just(1.0)}}
	}
	return selectStyles(distribution.Just(NightCutinTerm(ctx, ship)), cutins, residual)
}

// selectStyles rolls each cutin in order at term/type_factor; the residual
// style takes whatever mass is left.
func selectStyles(term distribution.Estimation[float64], cutins []attack.Definition, residual attack.Definition) []StyleRate {
	t := term.ValueOr(0)
	ps := make([]float64, len(cutins))
	for i, c := range cutins {
		ps[i] = math.Min(t/c.TypeFactor, 1)
	}
	sel := probability.Sequential(ps)

	wrap := distribution.Just[float64]
	if !term.IsExact() {
		wrap = distribution.Rough[float64]
	}

	out := make([]StyleRate, 0, len(cutins)+1)
	for i, c := range cutins {
		out = append(out, StyleRate{Style: c.Style, Rate: wrap(sel.Rates[i])})
	}
	if rest := sel.Residual(); rest > 0 {
		out = append(out, StyleRate{Style: residual.Style, Rate: wrap(rest)})
	}
	return out
}
