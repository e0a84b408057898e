// Package analyzer enumerates the eligible attack styles of ships and
// fleets, resolves each through the formulas and the damage engine, and
// merges them into per-event reports.
package analyzer

import (
	"math"

	"fleetcalc/domain/attack"
	"fleetcalc/domain/damage"
	"fleetcalc/domain/distribution"
	"fleetcalc/domain/fleet"
	"fleetcalc/domain/formula"
	"fleetcalc/domain/report"
	"fleetcalc/domain/warfare"
)

// ActionReport is the per-event report keyed by attack style.
type ActionReport = report.ActionReport[attack.Style]

// AttackReport is one style's entry in an ActionReport.
type AttackReport = report.AttackReport[attack.Style]

// ShipAnalyzer resolves the combat events of a single ship.
type ShipAnalyzer struct {
	engine    *damage.Engine
	stateFunc damage.StateFunc
}

// NewShipAnalyzer returns an analyzer bucketing HP with stateFunc; nil
// selects damage.DefaultStateFunc.
func NewShipAnalyzer(stateFunc damage.StateFunc) *ShipAnalyzer {
	if stateFunc == nil {
		stateFunc = damage.DefaultStateFunc
	}
	return &ShipAnalyzer{
		engine:    damage.NewEngine(stateFunc),
		stateFunc: stateFunc,
	}
}

// StateOf buckets the ship's current HP.
func (a *ShipAnalyzer) StateOf(ship fleet.ShipSnapshot) damage.State {
	return a.stateFunc(ship.MaxHP, ship.HP, ship.MaxHP, true)
}

// Shelling resolves the day shelling event.
func (a *ShipAnalyzer) Shelling(ctx warfare.Context, ship fleet.ShipSnapshot, target fleet.TargetSnapshot) ActionReport {
	return report.NewActionReport(a.shellingReports(ctx, ship, target))
}

func (a *ShipAnalyzer) shellingReports(ctx warfare.Context, ship fleet.ShipSnapshot, target fleet.TargetSnapshot) []AttackReport {
	if target.Submarine || ship.HP <= 0 {
		return nil
	}
	state := a.StateOf(ship)
	rates := DayCutinRates(ctx, ship, state)

	out := make([]AttackReport, 0, len(rates))
	for _, r := range rates {
		def, _ := attack.Lookup(r.Style)
		out = append(out, a.resolve(ctx, ship, target, state, def, r.Rate))
	}
	return out
}

// Torpedo resolves the closing torpedo event.
func (a *ShipAnalyzer) Torpedo(ctx warfare.Context, ship fleet.ShipSnapshot, target fleet.TargetSnapshot) ActionReport {
	state := a.StateOf(ship)
	if !ship.CanTorpedo || target.Submarine || ship.Torpedo <= 0 || state >= damage.Heavy {
		return report.InactiveActionReport[attack.Style]()
	}
	def, _ := attack.Lookup(attack.Torpedo)
	return report.NewActionReport([]AttackReport{
		a.resolve(ctx, ship, target, state, def, distribution.Just(1.0)),
	})
}

// Night resolves the night battle event.
func (a *ShipAnalyzer) Night(ctx warfare.Context, ship fleet.ShipSnapshot, target fleet.TargetSnapshot) ActionReport {
	state := a.StateOf(ship)
	if target.Submarine || ship.HP <= 0 || state >= damage.Heavy {
		return report.InactiveActionReport[attack.Style]()
	}

	rates := NightCutinRates(ctx, ship)
	reports := make([]AttackReport, 0, len(rates))
	for _, r := range rates {
		def, _ := attack.Lookup(r.Style)
		reports = append(reports, a.resolve(ctx, ship, target, state, def, r.Rate))
	}
	return report.NewActionReport(reports)
}

// Asw resolves the anti-submarine event.
func (a *ShipAnalyzer) Asw(ctx warfare.Context, ship fleet.ShipSnapshot, target fleet.TargetSnapshot) ActionReport {
	if !target.Submarine || !ship.CanAsw || ship.HP <= 0 {
		return report.InactiveActionReport[attack.Style]()
	}
	def, _ := attack.Lookup(attack.Asw)
	return report.NewActionReport([]AttackReport{
		a.resolve(ctx, ship, target, a.StateOf(ship), def, distribution.Just(1.0)),
	})
}

type phaseRules struct {
	accuracyBase float64
	cap          float64
	criticalMul  float64
}

var rules = map[warfare.Phase]phaseRules{
	warfare.PhaseShelling: {formula.ShellingAccuracyBase, formula.ShellingCap, formula.ShellingCriticalMul},
	warfare.PhaseTorpedo:  {formula.TorpedoAccuracyBase, formula.TorpedoCap, formula.TorpedoCriticalMul},
	warfare.PhaseNight:    {formula.NightAccuracyBase, formula.NightCap, formula.NightCriticalMul},
	warfare.PhaseAsw:      {formula.AswAccuracyBase, formula.AswCap, formula.AswCriticalMul},
}

func basicPower(phase warfare.Phase, env warfare.ShipEnv, ship fleet.ShipSnapshot) distribution.Estimation[float64] {
	bonus := distribution.Maybe(ship.FirepowerBonus)
	switch phase {
	case warfare.PhaseTorpedo:
		return distribution.Just(ship.Torpedo + env.BasicPowerOffset(phase))
	case warfare.PhaseNight:
		return distribution.Just(ship.Firepower + ship.Torpedo).Add(bonus)
	case warfare.PhaseAsw:
		return distribution.Just(2*math.Sqrt(float64(ship.NakedAsw)) + 1.5*ship.EquipAsw + ship.AswConstant)
	default:
		return distribution.Just(ship.Firepower).Add(bonus).Add(distribution.Just(env.BasicPowerOffset(phase)))
	}
}

func damageStateMod(phase warfare.Phase, state damage.State) float64 {
	switch state {
	case damage.Moderate:
		if phase == warfare.PhaseTorpedo {
			return 0.8
		}
		return 0.7
	case damage.Heavy:
		if phase == warfare.PhaseTorpedo {
			return 0
		}
		return 0.4
	case damage.Sunk:
		return 0
	default:
		return 1
	}
}

func (a *ShipAnalyzer) resolve(
	ctx warfare.Context,
	ship fleet.ShipSnapshot,
	target fleet.TargetSnapshot,
	state damage.State,
	def attack.Definition,
	rate distribution.Estimation[float64],
) AttackReport {
	phase := def.Phase
	r := rules[phase]
	mods := ctx.Attacker.Mods(phase)

	pipeline := formula.NewPipeline().
		Set(formula.StageFormation, formula.Mult(mods.Power)).
		Set(formula.StageEngagement, formula.Mult(ctx.Engagement.PowerMod(phase))).
		Set(formula.StageDamageState, formula.Mult(damageStateMod(phase, state)))
	ship.Modifiers.Apply(pipeline)
	if def.PowerMod != 1 {
		pipeline.Set(formula.StageCutin, formula.Mult(def.PowerMod))
	}

	basic := basicPower(phase, ctx.Attacker, ship)
	params := formula.NewAttackPowerParams(basic.ValueOr(0), r.cap, pipeline)
	params.ProficiencyCriticalMod = ship.ProficiencyCriticalMod
	power := params.Calc()

	hitRate := formula.HitRateParams{
		AccuracyTerm: formula.AccuracyTerm(formula.AccuracyTermParams{
			Base:          r.accuracyBase,
			Level:         ship.Level,
			Luck:          ship.Luck,
			EquipAccuracy: ship.EquipAccuracy,
			FormationMod:  mods.Accuracy,
			StyleMod:      def.AccuracyMod,
		}),
		EvasionTerm:            formula.EvasionTerm(target.Evasion, ctx.Target.Mods(phase).Evasion),
		MoraleMod:              formula.MoraleMod(ship.EffectiveMorale()),
		HitRateBonus:           ship.HitRateBonus,
		CriticalRateMultiplier: r.criticalMul,
		CriticalRateBonus:      ship.CriticalRateBonus,
	}.Calc()

	defense := formula.NewDefensePower(target.Armor)
	hits := def.Hits
	if hits < 1 {
		hits = 1
	}

	return AttackReport{
		Style:       def.Style,
		ProcRate:    rate.Ptr(),
		AttackPower: &power,
		Hits:        hits,
		HitRate:     &hitRate,
		Damage: a.engine.Calc(damage.Params{
			AttackPower:  &power,
			HitRate:      &hitRate,
			DefensePower: &defense,
			Hits:         hits,
			HP:           target.HP,
			MaxHP:        target.MaxHP,
			Sinkable:     target.Sinkable,
			Protected:    target.Protected,
		}),
		Approximate: rate.IsApproximate() || basic.IsApproximate(),
	}
}
