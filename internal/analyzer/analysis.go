package analyzer

import (
	"fleetcalc/domain/attack"
	"fleetcalc/domain/core"
	"fleetcalc/domain/damage"
	"fleetcalc/domain/fleet"
	"fleetcalc/domain/report"
)

// ShipAnalysis holds every event of one ship against the scenario target.
type ShipAnalysis struct {
	Fleet      int                                     `json:"fleet"`
	Index      int                                     `json:"index"`
	Name       string                                  `json:"name"`
	State      damage.State                            `json:"state"`
	Shelling   ActionReport                            `json:"shelling"`
	Torpedo    ActionReport                            `json:"torpedo"`
	Night      ActionReport                            `json:"night"`
	Asw        ActionReport                            `json:"asw"`
	AntiAir    report.ActionReport[attack.AntiAirKind] `json:"anti_air"`
	DayCutin   []StyleRate                             `json:"day_cutin"`
	NightCutin []StyleRate                             `json:"night_cutin"`
}

// FleetSummary holds the fleet-wide events of one fleet.
type FleetSummary struct {
	Fleet        int             `json:"fleet"`
	Contact      Contact         `json:"contact"`
	AntiAirCutin AntiAirCutin    `json:"anti_air_cutin"`
	FleetCutin   *FleetCutinRate `json:"fleet_cutin,omitempty"`
}

// Analyzer evaluates scenarios ship by ship and fleet by fleet. It holds no
// mutable state and is safe for concurrent use.
type Analyzer struct {
	ships  *ShipAnalyzer
	fleets *FleetAnalyzer
}

// New returns an analyzer bucketing HP with stateFunc.
func New(stateFunc damage.StateFunc) *Analyzer {
	ships := NewShipAnalyzer(stateFunc)
	return &Analyzer{ships: ships, fleets: NewFleetAnalyzer(ships)}
}

// Ship analyzes ship si of fleet fi.
func (a *Analyzer) Ship(s *fleet.Scenario, fi, si int) ShipAnalysis {
	f := s.Fleets[fi]
	ship := f.Ships[si]
	ctx := s.Context(fi, si)
	target := s.Enemy.Target

	var shelling ActionReport
	if si == 0 {
		shelling = a.fleets.FlagshipShelling(ctx, f, target)
	} else {
		shelling = a.ships.Shelling(ctx, ship, target)
	}

	state := a.ships.StateOf(ship)
	dayCutin := DayCutinRates(ctx, ship, state)
	if si == 0 {
		dayCutin = a.fleets.yieldToFleetCutin(f, shelling, dayCutin)
	}
	return ShipAnalysis{
		Fleet:      fi,
		Index:      si,
		Name:       ship.Name,
		State:      state,
		Shelling:   shelling,
		Torpedo:    a.ships.Torpedo(ctx, ship, target),
		Night:      a.ships.Night(ctx, ship, target),
		Asw:        a.ships.Asw(ctx, ship, target),
		AntiAir:    AntiAirDefense(ship),
		DayCutin:   dayCutin,
		NightCutin: NightCutinRates(ctx, ship),
	}
}

// Fleet summarizes the fleet-wide events of fleet fi.
func (a *Analyzer) Fleet(s *fleet.Scenario, fi int) FleetSummary {
	f := s.Fleets[fi]
	return FleetSummary{
		Fleet:        fi,
		Contact:      ContactChance(FleetPlanes(f), s.AirState),
		AntiAirCutin: FleetAntiAirCutinChance(f),
		FleetCutin:   a.fleets.FleetCutinChance(f),
	}
}

// FleetAnalysis is the complete result of analyzing one scenario.
type FleetAnalysis struct {
	ID           core.AnalysisID `json:"id"`
	ScenarioID   core.ScenarioID `json:"scenario_id,omitempty"`
	ScenarioName string          `json:"scenario_name,omitempty"`
	Fingerprint  core.Hash       `json:"fingerprint"`
	CreatedAt    core.Timestamp  `json:"created_at"`
	Target       string          `json:"target"`
	Ships        []ShipAnalysis  `json:"ships"`
	Fleets       []FleetSummary  `json:"fleets"`
}
