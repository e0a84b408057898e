// Package testkit provides seeded randomness, scenario fixtures and a
// Monte-Carlo sampler that cross-checks the exact damage distributions.
package testkit

import (
	"context"
	"math/rand"

	"fleetcalc/domain/attack"
	"fleetcalc/domain/fleet"
	"fleetcalc/domain/warfare"
	"fleetcalc/ports"
)

// RNGAdapter implements the RNGPort interface for testing
type RNGAdapter struct{}

var _ ports.RNGPort = (*RNGAdapter)(nil)

// SeededStream creates a deterministic random number generator for a named operation
func (r *RNGAdapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if name != "" {
		seed += int64(hashString(name))
	}
	return rand.New(rand.NewSource(seed)), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}

// Battleship is a healthy single-fleet battleship with a day cutin setup.
func Battleship(name string) fleet.ShipSnapshot {
	return fleet.ShipSnapshot{
		Name: name, Level: 99, Luck: 25, Los: 40,
		HP: 89, MaxHP: 89, Firepower: 150,
		EquipAccuracy: 8,
		Loadout:       attack.Loadout{MainGuns: 2, SecondaryGuns: 1, APShells: 1, Seaplanes: 1},
		ReconPlanes:   []fleet.ReconPlane{{Name: "seaplane", Los: 9, Accuracy: 2, Slots: 3}},
	}
}

// Destroyer is a healthy torpedo destroyer able to attack submarines.
func Destroyer(name string) fleet.ShipSnapshot {
	return fleet.ShipSnapshot{
		Name: name, Level: 90, Luck: 45, Los: 20,
		HP: 33, MaxHP: 33, Firepower: 55, Torpedo: 90,
		NakedAsw: 72, EquipAsw: 20, AswConstant: 13,
		CanTorpedo: true, CanAsw: true,
		Loadout:       attack.Loadout{MainGuns: 1, Torpedoes: 2},
		AntiAirCutins: []attack.AntiAirKind{5, 7},
	}
}

// Scenario returns a valid two-battleship, four-destroyer sortie.
func Scenario() *fleet.Scenario {
	los := 45.0
	return &fleet.Scenario{
		ID:         "fixture",
		Name:       "fixture sortie",
		Engagement: warfare.Parallel,
		AirState:   warfare.AirSuperiority,
		Fleets: []fleet.Fleet{{
			Name:        "main",
			OrgType:     warfare.SingleFleet,
			Role:        warfare.RoleMain,
			Formation:   warfare.LineAhead,
			FleetLosMod: &los,
			Ships: []fleet.ShipSnapshot{
				Battleship("bb1"), Battleship("bb2"),
				Destroyer("dd1"), Destroyer("dd2"), Destroyer("dd3"), Destroyer("dd4"),
			},
		}},
		Enemy: fleet.Enemy{
			Formation: warfare.LineAhead,
			FleetLen:  6,
			Target: fleet.TargetSnapshot{
				Name: "cruiser", HP: 57, MaxHP: 57, Armor: 50.5, Evasion: 45, Sinkable: true,
			},
		},
	}
}
