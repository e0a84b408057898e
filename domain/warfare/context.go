package warfare

import "fleetcalc/domain/distribution"

// ShipEnv is one side's position within its fleet.
type ShipEnv struct {
	OrgType     OrgType   `json:"org_type"`
	Role        Role      `json:"role"`
	ShipIndex   int       `json:"ship_index"`
	FleetLen    int       `json:"fleet_len"`
	Formation   Formation `json:"formation"`
	FleetLosMod *float64  `json:"fleet_los_mod,omitempty"`
}

// IsFlagship reports whether the ship leads its fleet.
func (e ShipEnv) IsFlagship() bool {
	return e.ShipIndex == 0
}

// InVanguardTop reports whether the ship sits in the front half of a
// vanguard formation.
func (e ShipEnv) InVanguardTop() bool {
	return e.ShipIndex < e.FleetLen/2
}

// FleetLos returns the fleet LoS term as an estimation.
func (e ShipEnv) FleetLos() distribution.Estimation[float64] {
	return distribution.Maybe(e.FleetLosMod)
}

// Context is the environment an attack is resolved in.
type Context struct {
	Attacker   ShipEnv    `json:"attacker_env"`
	Target     ShipEnv    `json:"target_env"`
	Engagement Engagement `json:"engagement"`
	AirState   AirState   `json:"air_state"`
}
