package attack

import (
	"math"
	"slices"

	"fleetcalc/domain/warfare"
)

// FleetCutin is a multi-ship special attack led by the flagship.
type FleetCutin struct {
	Style      Style
	Formations []warfare.Formation
	MinShips   int
	Base       float64
	LevelCoef  float64
	LuckCoef   float64
	PowerMod   float64
	Hits       int
}

var fleetCutins = []FleetCutin{
	{Style: NelsonTouch, Formations: []warfare.Formation{warfare.DoubleLine}, MinShips: 6,
		Base: 25, LevelCoef: 2, LuckCoef: 1.5, PowerMod: 2.0, Hits: 3},
	{Style: NagatoCutin, Formations: []warfare.Formation{warfare.Echelon}, MinShips: 6,
		Base: 30, LevelCoef: 1.1, LuckCoef: 1.4, PowerMod: 2.27, Hits: 3},
	{Style: MutsuCutin, Formations: []warfare.Formation{warfare.Echelon}, MinShips: 6,
		Base: 30, LevelCoef: 1.1, LuckCoef: 1.4, PowerMod: 2.2, Hits: 3},
	{Style: ColoradoCutin, Formations: []warfare.Formation{warfare.Echelon}, MinShips: 6,
		Base: 30, LevelCoef: 1.1, LuckCoef: 1.4, PowerMod: 2.3, Hits: 3},
}

// LookupFleetCutin returns the fleet cutin for style.
func LookupFleetCutin(s Style) (FleetCutin, bool) {
	for _, c := range fleetCutins {
		if c.Style == s {
			return c, true
		}
	}
	return FleetCutin{}, false
}

// Allows reports whether the formation and fleet size permit the cutin.
func (c FleetCutin) Allows(formation warfare.Formation, ships int) bool {
	return ships >= c.MinShips && slices.Contains(c.Formations, formation)
}

// Rate is the flagship's trigger chance from its level and luck.
func (c FleetCutin) Rate(level, luck int) float64 {
	r := (c.Base + c.LevelCoef*math.Sqrt(float64(level)) + c.LuckCoef*math.Sqrt(float64(luck))) / 100
	return math.Min(math.Max(r, 0), 1)
}
