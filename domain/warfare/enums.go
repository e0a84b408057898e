// Package warfare describes the combat context an attack is resolved in:
// engagement, air state and each side's position within its fleet.
package warfare

import (
	"slices"
	"strings"

	"fleetcalc/domain/core"
)

// Phase is a combat event an attack style belongs to.
type Phase string

const (
	PhaseShelling Phase = "shelling"
	PhaseTorpedo  Phase = "torpedo"
	PhaseNight    Phase = "night"
	PhaseAsw      Phase = "asw"
)

// Engagement is the relative heading at the start of battle.
type Engagement string

const (
	GreenT   Engagement = "green_t"
	Parallel Engagement = "parallel"
	HeadOn   Engagement = "head_on"
	RedT     Engagement = "red_t"
)

// AirState is the air control result of the aerial phase.
type AirState string

const (
	AirSupremacy    AirState = "air_supremacy"
	AirSuperiority  AirState = "air_superiority"
	AirParity       AirState = "air_parity"
	AirDenial       AirState = "air_denial"
	AirIncapability AirState = "air_incapability"
)

// Formation is a fleet's battle formation.
type Formation string

const (
	LineAhead   Formation = "line_ahead"
	DoubleLine  Formation = "double_line"
	Diamond     Formation = "diamond"
	Echelon     Formation = "echelon"
	LineAbreast Formation = "line_abreast"
	Vanguard    Formation = "vanguard"
)

// OrgType is the fleet organization.
type OrgType string

const (
	SingleFleet      OrgType = "single"
	CarrierTaskForce OrgType = "carrier_task_force"
	SurfaceTaskForce OrgType = "surface_task_force"
	TransportEscort  OrgType = "transport_escort"
)

// Role is a fleet's role inside a combined fleet.
type Role string

const (
	RoleMain   Role = "main"
	RoleEscort Role = "escort"
)

var (
	engagements = []Engagement{GreenT, Parallel, HeadOn, RedT}
	airStates   = []AirState{AirSupremacy, AirSuperiority, AirParity, AirDenial, AirIncapability}
	formations  = []Formation{LineAhead, DoubleLine, Diamond, Echelon, LineAbreast, Vanguard}
	orgTypes    = []OrgType{SingleFleet, CarrierTaskForce, SurfaceTaskForce, TransportEscort}
	roles       = []Role{RoleMain, RoleEscort}
)

func parse[T ~string](kind, value string, known []T) (T, error) {
	want := T(strings.ToLower(strings.TrimSpace(value)))
	for _, k := range known {
		if k == want {
			return k, nil
		}
	}
	var zero T
	return zero, core.NewEnumError(kind, value)
}

func ParseEngagement(s string) (Engagement, error) { return parse("engagement", s, engagements) }
func ParseAirState(s string) (AirState, error)     { return parse("air state", s, airStates) }
func ParseFormation(s string) (Formation, error)   { return parse("formation", s, formations) }
func ParseOrgType(s string) (OrgType, error)       { return parse("org type", s, orgTypes) }
func ParseRole(s string) (Role, error)             { return parse("role", s, roles) }

func (e Engagement) Valid() bool { return slices.Contains(engagements, e) }
func (a AirState) Valid() bool   { return slices.Contains(airStates, a) }
func (f Formation) Valid() bool  { return slices.Contains(formations, f) }
func (o OrgType) Valid() bool    { return slices.Contains(orgTypes, o) }
func (r Role) Valid() bool       { return slices.Contains(roles, r) }

// IsCombined reports whether o is a combined fleet.
func (o OrgType) IsCombined() bool {
	return o != SingleFleet && o != ""
}

// ContactLevel is the air control level used by the contact trigger
// formula. Zero means no contact is possible.
func (a AirState) ContactLevel() int {
	switch a {
	case AirSupremacy:
		return 3
	case AirSuperiority:
		return 2
	case AirDenial:
		return 1
	default:
		return 0
	}
}
