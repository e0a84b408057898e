// Package fleet holds the immutable ship, fleet and target snapshots an
// analysis is computed from. Stats arrive already aggregated from equipment.
package fleet

import (
	"fleetcalc/domain/attack"
	"fleetcalc/domain/formula"
)

// DefaultMorale is assumed when a snapshot omits morale.
const DefaultMorale = 49

// ReconPlane is an aircraft able to initiate contact.
type ReconPlane struct {
	Name     string `json:"name,omitempty"`
	Los      int    `json:"los"`
	Accuracy int    `json:"accuracy"`
	Slots    int    `json:"slots"`
}

// Modifiers are attack power modifiers evaluated by the rules collaborator.
// A nil entry means the modifier could not be resolved and is skipped.
type Modifiers struct {
	SpecialEnemyPrecap  *formula.Modifier `json:"special_enemy_precap,omitempty"`
	Synergy             *formula.Modifier `json:"synergy,omitempty"`
	SpecialEnemyPostcap *formula.Modifier `json:"special_enemy_postcap,omitempty"`
	Historical          *formula.Modifier `json:"historical,omitempty"`
}

// Apply chains every resolved modifier onto its pipeline stage.
func (m Modifiers) Apply(p *formula.Pipeline) *formula.Pipeline {
	stages := []struct {
		stage formula.Stage
		mod   *formula.Modifier
	}{
		{formula.StageSpecialEnemyPrecap, m.SpecialEnemyPrecap},
		{formula.StageSynergy, m.Synergy},
		{formula.StageSpecialEnemyPostcap, m.SpecialEnemyPostcap},
		{formula.StageHistorical, m.Historical},
	}
	for _, s := range stages {
		if s.mod != nil {
			p.Chain(s.stage, *s.mod)
		}
	}
	return p
}

// ShipSnapshot is one attacking ship.
type ShipSnapshot struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Luck   int    `json:"luck"`
	Los    int    `json:"los"`
	Morale int    `json:"morale,omitempty"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"max_hp"`

	Firepower      float64  `json:"firepower"`
	FirepowerBonus *float64 `json:"firepower_bonus,omitempty"`
	Torpedo        float64  `json:"torpedo"`
	NakedAsw       int      `json:"naked_asw"`
	EquipAsw       float64  `json:"equip_asw"`
	AswConstant    float64  `json:"asw_constant"`
	CanAsw         bool     `json:"can_asw"`
	CanTorpedo     bool     `json:"can_torpedo"`

	EquipAccuracy          float64 `json:"equip_accuracy"`
	HitRateBonus           float64 `json:"hit_rate_bonus"`
	CriticalRateBonus      float64 `json:"critical_rate_bonus"`
	ProficiencyCriticalMod float64 `json:"proficiency_critical_mod,omitempty"`

	Loadout       attack.Loadout       `json:"loadout"`
	ReconPlanes   []ReconPlane         `json:"recon_planes,omitempty"`
	AntiAirCutins []attack.AntiAirKind `json:"anti_air_cutins,omitempty"`
	FleetCutin    attack.Style         `json:"fleet_cutin,omitempty"`
	Modifiers     Modifiers            `json:"modifiers"`
}

// EffectiveMorale returns the morale, defaulting an unset value.
func (s ShipSnapshot) EffectiveMorale() int {
	if s.Morale == 0 {
		return DefaultMorale
	}
	return s.Morale
}

// TargetSnapshot is the defending ship.
type TargetSnapshot struct {
	Name      string  `json:"name"`
	HP        int     `json:"hp"`
	MaxHP     int     `json:"max_hp"`
	Armor     float64 `json:"armor"`
	Evasion   int     `json:"evasion"`
	Submarine bool    `json:"submarine"`
	Sinkable  bool    `json:"sinkable"`
	Protected bool    `json:"protected"`
}
