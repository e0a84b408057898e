package fleet

import (
	"fmt"

	"fleetcalc/domain/attack"
	"fleetcalc/domain/core"
	"fleetcalc/domain/warfare"
)

// MaxShips is the largest fleet size accepted.
const MaxShips = 7

// Fleet is one fleet of a scenario.
type Fleet struct {
	Name        string            `json:"name,omitempty"`
	OrgType     warfare.OrgType   `json:"org_type"`
	Role        warfare.Role      `json:"role"`
	Formation   warfare.Formation `json:"formation"`
	FleetLosMod *float64          `json:"fleet_los_mod,omitempty"`
	Ships       []ShipSnapshot    `json:"ships"`
}

// Env returns the environment of the ship at index.
func (f Fleet) Env(index int) warfare.ShipEnv {
	return warfare.ShipEnv{
		OrgType:     f.OrgType,
		Role:        f.Role,
		ShipIndex:   index,
		FleetLen:    len(f.Ships),
		Formation:   f.Formation,
		FleetLosMod: f.FleetLosMod,
	}
}

// Enemy places the target in its own fleet.
type Enemy struct {
	Formation warfare.Formation `json:"formation"`
	ShipIndex int               `json:"ship_index"`
	FleetLen  int               `json:"fleet_len"`
	Target    TargetSnapshot    `json:"target"`
}

// Env returns the target's environment.
func (e Enemy) Env() warfare.ShipEnv {
	return warfare.ShipEnv{
		OrgType:   warfare.SingleFleet,
		Role:      warfare.RoleMain,
		ShipIndex: e.ShipIndex,
		FleetLen:  e.FleetLen,
		Formation: e.Formation,
	}
}

// Scenario is a complete analysis input.
type Scenario struct {
	ID         core.ScenarioID    `json:"id,omitempty"`
	Name       string             `json:"name,omitempty"`
	Engagement warfare.Engagement `json:"engagement"`
	AirState   warfare.AirState   `json:"air_state"`
	Fleets     []Fleet            `json:"fleets"`
	Enemy      Enemy              `json:"enemy"`
}

// Context returns the warfare context for a ship of fleet fi.
func (s *Scenario) Context(fi, ship int) warfare.Context {
	return warfare.Context{
		Attacker:   s.Fleets[fi].Env(ship),
		Target:     s.Enemy.Env(),
		Engagement: s.Engagement,
		AirState:   s.AirState,
	}
}

// Validate checks the scenario is internally consistent.
func (s *Scenario) Validate() error {
	if !s.Engagement.Valid() {
		return core.NewEnumError("engagement", string(s.Engagement))
	}
	if !s.AirState.Valid() {
		return core.NewEnumError("air state", string(s.AirState))
	}
	if len(s.Fleets) == 0 {
		return core.ErrEmptyFleet
	}
	if len(s.Fleets) > 2 {
		return core.NewFieldError("fleets", fmt.Sprintf("at most 2 fleets, got %d", len(s.Fleets)))
	}

	for i, f := range s.Fleets {
		if err := f.validate(); err != nil {
			return fmt.Errorf("fleet %d: %w", i, err)
		}
	}

	if !s.Enemy.Formation.Valid() {
		return core.NewEnumError("formation", string(s.Enemy.Formation))
	}
	t := s.Enemy.Target
	if err := validateHP(t.HP, t.MaxHP); err != nil {
		return fmt.Errorf("target %s: %w", t.Name, err)
	}
	if t.Armor < 0 {
		return core.NewFieldError("target.armor", "must not be negative")
	}
	return nil
}

func (f Fleet) validate() error {
	if len(f.Ships) == 0 {
		return core.ErrEmptyFleet
	}
	if len(f.Ships) > MaxShips {
		return fmt.Errorf("%w: %d ships", core.ErrFleetTooLarge, len(f.Ships))
	}
	if !f.OrgType.Valid() {
		return core.NewEnumError("org type", string(f.OrgType))
	}
	if !f.Role.Valid() {
		return core.NewEnumError("role", string(f.Role))
	}
	if !f.Formation.Valid() {
		return core.NewEnumError("formation", string(f.Formation))
	}

	for _, ship := range f.Ships {
		if err := validateHP(ship.HP, ship.MaxHP); err != nil {
			return fmt.Errorf("ship %s: %w", ship.Name, err)
		}
		if ship.FleetCutin != "" {
			if _, ok := attack.LookupFleetCutin(ship.FleetCutin); !ok {
				return core.NewEnumError("fleet cutin", string(ship.FleetCutin))
			}
		}
	}
	return nil
}

func validateHP(hp, maxHP int) error {
	if maxHP <= 0 || hp < 0 || hp > maxHP {
		return fmt.Errorf("%w: %d/%d", core.ErrInvalidHP, hp, maxHP)
	}
	return nil
}
