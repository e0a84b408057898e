// Package attack holds the closed set of attack styles and the per-style
// coefficients the analyzers resolve them with.
package attack

import (
	"fmt"
	"slices"

	"fleetcalc/domain/warfare"
)

// Style tags one attack procedure competing to fire in a combat event.
type Style string

const (
	Normal        Style = "normal"
	DoubleAttack  Style = "double_attack"
	MainSecondary Style = "main_secondary"
	MainRadar     Style = "main_radar"
	MainAP        Style = "main_ap"
	MainMain      Style = "main_main"

	NightNormal            Style = "night_normal"
	NightDoubleAttack      Style = "night_double_attack"
	TorpedoCutin           Style = "torpedo_cutin"
	MainTorpedoCutin       Style = "main_torpedo_cutin"
	MainMainSecondaryCutin Style = "main_main_secondary_cutin"
	MainMainMainCutin      Style = "main_main_main_cutin"

	Torpedo Style = "torpedo"
	Asw     Style = "asw"

	NelsonTouch   Style = "nelson_touch"
	NagatoCutin   Style = "nagato_cutin"
	MutsuCutin    Style = "mutsu_cutin"
	ColoradoCutin Style = "colorado_cutin"
)

// Loadout counts the equipment categories style eligibility depends on.
type Loadout struct {
	MainGuns      int `json:"main_guns"`
	SecondaryGuns int `json:"secondary_guns"`
	Torpedoes     int `json:"torpedoes"`
	Radars        int `json:"radars"`
	APShells      int `json:"ap_shells"`
	Seaplanes     int `json:"seaplanes"`
}

// Definition is one style's coefficients. A zero TypeFactor marks a style
// that takes the residual selection mass instead of rolling on its own.
type Definition struct {
	Style       Style
	Phase       warfare.Phase
	PowerMod    float64
	AccuracyMod float64
	Hits        int
	TypeFactor  float64
	Eligible    func(Loadout) bool
}

// IsCutin reports whether the style rolls its own trigger chance.
func (d Definition) IsCutin() bool {
	return d.TypeFactor > 0
}

func always(Loadout) bool { return true }

// definitions are listed per phase from the highest priority cutin down to
// the residual styles.
var definitions = []Definition{
	{Style: MainMain, Phase: warfare.PhaseShelling, PowerMod: 1.5, AccuracyMod: 1.2, Hits: 1, TypeFactor: 150,
		Eligible: func(l Loadout) bool { return l.MainGuns >= 2 && l.APShells >= 1 }},
	{Style: MainAP, Phase: warfare.PhaseShelling, PowerMod: 1.3, AccuracyMod: 1.3, Hits: 1, TypeFactor: 140,
		Eligible: func(l Loadout) bool { return l.MainGuns >= 1 && l.SecondaryGuns >= 1 && l.APShells >= 1 }},
	{Style: MainRadar, Phase: warfare.PhaseShelling, PowerMod: 1.2, AccuracyMod: 1.5, Hits: 1, TypeFactor: 130,
		Eligible: func(l Loadout) bool { return l.MainGuns >= 1 && l.SecondaryGuns >= 1 && l.Radars >= 1 }},
	{Style: MainSecondary, Phase: warfare.PhaseShelling, PowerMod: 1.1, AccuracyMod: 1.3, Hits: 1, TypeFactor: 120,
		Eligible: func(l Loadout) bool { return l.MainGuns >= 1 && l.SecondaryGuns >= 1 }},
	{Style: DoubleAttack, Phase: warfare.PhaseShelling, PowerMod: 1.2, AccuracyMod: 1.1, Hits: 2, TypeFactor: 130,
		Eligible: func(l Loadout) bool { return l.MainGuns >= 2 }},
	{Style: Normal, Phase: warfare.PhaseShelling, PowerMod: 1, AccuracyMod: 1, Hits: 1, Eligible: always},

	{Style: MainMainMainCutin, Phase: warfare.PhaseNight, PowerMod: 2.0, AccuracyMod: 2.0, Hits: 1, TypeFactor: 140,
		Eligible: func(l Loadout) bool { return l.MainGuns >= 3 }},
	{Style: MainMainSecondaryCutin, Phase: warfare.PhaseNight, PowerMod: 1.75, AccuracyMod: 1.75, Hits: 1, TypeFactor: 130,
		Eligible: func(l Loadout) bool { return l.MainGuns >= 2 && l.SecondaryGuns >= 1 }},
	{Style: TorpedoCutin, Phase: warfare.PhaseNight, PowerMod: 1.5, AccuracyMod: 1.65, Hits: 2, TypeFactor: 122,
		Eligible: func(l Loadout) bool { return l.Torpedoes >= 2 }},
	{Style: MainTorpedoCutin, Phase: warfare.PhaseNight, PowerMod: 1.3, AccuracyMod: 1.5, Hits: 2, TypeFactor: 115,
		Eligible: func(l Loadout) bool { return l.MainGuns >= 1 && l.Torpedoes >= 1 }},
	{Style: NightDoubleAttack, Phase: warfare.PhaseNight, PowerMod: 1.2, AccuracyMod: 1.1, Hits: 2,
		Eligible: func(l Loadout) bool { return l.MainGuns+l.SecondaryGuns >= 2 }},
	{Style: NightNormal, Phase: warfare.PhaseNight, PowerMod: 1, AccuracyMod: 1, Hits: 1, Eligible: always},

	{Style: Torpedo, Phase: warfare.PhaseTorpedo, PowerMod: 1, AccuracyMod: 1, Hits: 1, Eligible: always},
	{Style: Asw, Phase: warfare.PhaseAsw, PowerMod: 1, AccuracyMod: 1, Hits: 1, Eligible: always},
}

var byStyle = func() map[Style]Definition {
	m := make(map[Style]Definition, len(definitions))
	for _, d := range definitions {
		if _, dup := m[d.Style]; dup {
			panic(fmt.Sprintf("attack style %q defined twice", d.Style))
		}
		m[d.Style] = d
	}
	return m
}()

// Lookup returns the definition of a single-ship style.
func Lookup(s Style) (Definition, bool) {
	d, ok := byStyle[s]
	return d, ok
}

// Styles returns the definitions of phase in priority order.
func Styles(phase warfare.Phase) []Definition {
	var out []Definition
	for _, d := range definitions {
		if d.Phase == phase {
			out = append(out, d)
		}
	}
	return out
}

// Cutins returns the eligible cutin definitions of phase in priority order.
func Cutins(phase warfare.Phase, l Loadout) []Definition {
	return slices.DeleteFunc(Styles(phase), func(d Definition) bool {
		return !d.IsCutin() || !d.Eligible(l)
	})
}

// Residual returns the highest priority eligible style of phase that does
// not roll its own trigger.
func Residual(phase warfare.Phase, l Loadout) Definition {
	for _, d := range Styles(phase) {
		if !d.IsCutin() && d.Eligible(l) {
			return d
		}
	}
	return Definition{}
}
