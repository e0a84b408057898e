package attack

import "math"

// AntiAirKind identifies an anti-air cutin by its numeric kind.
type AntiAirKind int

// AntiAirCutin is one anti-air cutin's trigger rate and shot-down bonus.
type AntiAirCutin struct {
	Kind       AntiAirKind `json:"kind"`
	Rate       float64     `json:"rate"`
	Fixed      int         `json:"fixed"`
	Multiplier float64     `json:"multiplier"`
}

// antiAirCutins are listed in the order they are checked.
var antiAirCutins = []AntiAirCutin{
	{Kind: 1, Rate: 0.65, Fixed: 7, Multiplier: 1.7},
	{Kind: 2, Rate: 0.58, Fixed: 6, Multiplier: 1.7},
	{Kind: 3, Rate: 0.50, Fixed: 4, Multiplier: 1.6},
	{Kind: 4, Rate: 0.52, Fixed: 6, Multiplier: 1.5},
	{Kind: 5, Rate: 0.55, Fixed: 4, Multiplier: 1.5},
	{Kind: 6, Rate: 0.40, Fixed: 4, Multiplier: 1.45},
	{Kind: 7, Rate: 0.45, Fixed: 3, Multiplier: 1.35},
	{Kind: 8, Rate: 0.50, Fixed: 4, Multiplier: 1.4},
	{Kind: 9, Rate: 0.40, Fixed: 2, Multiplier: 1.3},
	{Kind: 10, Rate: 0.60, Fixed: 8, Multiplier: 1.65},
	{Kind: 11, Rate: 0.55, Fixed: 6, Multiplier: 1.5},
	{Kind: 12, Rate: 0.45, Fixed: 3, Multiplier: 1.25},
}

// LookupAntiAir returns the cutin for kind.
func LookupAntiAir(kind AntiAirKind) (AntiAirCutin, bool) {
	for _, c := range antiAirCutins {
		if c.Kind == kind {
			return c, true
		}
	}
	return AntiAirCutin{}, false
}

// AntiAirCutins returns the known cutins among kinds in check order.
// Unknown and repeated kinds are dropped.
func AntiAirCutins(kinds []AntiAirKind) []AntiAirCutin {
	want := make(map[AntiAirKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []AntiAirCutin
	for _, c := range antiAirCutins {
		if want[c.Kind] {
			out = append(out, c)
		}
	}
	return out
}

// ShotDown returns the extra planes the cutin removes from a slot.
func (c AntiAirCutin) ShotDown(base int) int {
	return int(math.Floor(float64(base)*c.Multiplier)) + c.Fixed
}
