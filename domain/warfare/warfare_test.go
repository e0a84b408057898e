package warfare

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetcalc/domain/core"
)

func TestParseEnums(t *testing.T) {
	e, err := ParseEngagement(" Green_T ")
	require.NoError(t, err)
	assert.Equal(t, GreenT, e)

	_, err = ParseAirState("air_control")
	assert.True(t, errors.Is(err, core.ErrUnknownEnum))
	assert.True(t, core.IsScenarioError(err))

	assert.True(t, Vanguard.Valid())
	assert.False(t, Formation("wedge").Valid())
	assert.True(t, SurfaceTaskForce.IsCombined())
	assert.False(t, SingleFleet.IsCombined())
}

func TestContext_JSON(t *testing.T) {
	los := 1.25
	ctx := Context{
		Attacker:   ShipEnv{OrgType: SingleFleet, Role: RoleMain, ShipIndex: 0, FleetLen: 6, Formation: LineAhead, FleetLosMod: &los},
		Target:     ShipEnv{OrgType: SingleFleet, Role: RoleMain, ShipIndex: 2, FleetLen: 6, Formation: Diamond},
		Engagement: HeadOn,
		AirState:   AirSuperiority,
	}

	data, err := json.Marshal(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"engagement":"head_on"`)
	assert.Contains(t, string(data), `"air_state":"air_superiority"`)

	var decoded Context
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ctx, decoded)
}

func TestShipEnv_FleetLos(t *testing.T) {
	assert.False(t, ShipEnv{}.FleetLos().IsKnown())

	los := 3.0
	v, ok := ShipEnv{FleetLosMod: &los}.FleetLos().Value()
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestShipEnv_Mods(t *testing.T) {
	tests := []struct {
		name  string
		env   ShipEnv
		phase Phase
		want  FormationMods
	}{
		{"line ahead shelling", ShipEnv{Formation: LineAhead}, PhaseShelling, FormationMods{1, 1, 1}},
		{"double line shelling", ShipEnv{Formation: DoubleLine}, PhaseShelling, FormationMods{0.8, 1.2, 1}},
		{"line abreast asw", ShipEnv{Formation: LineAbreast}, PhaseAsw, FormationMods{1.3, 1.3, 1.3}},
		{"vanguard top", ShipEnv{Formation: Vanguard, ShipIndex: 1, FleetLen: 6}, PhaseShelling, FormationMods{0.5, 0.8, 1.1}},
		{"vanguard bottom", ShipEnv{Formation: Vanguard, ShipIndex: 3, FleetLen: 6}, PhaseShelling, FormationMods{1.0, 1.2, 1.2}},
		{"unset formation", ShipEnv{}, PhaseTorpedo, FormationMods{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.Mods(tt.phase))
		})
	}
}

func TestEngagement_PowerMod(t *testing.T) {
	assert.Equal(t, 1.2, GreenT.PowerMod(PhaseShelling))
	assert.Equal(t, 1.0, Parallel.PowerMod(PhaseTorpedo))
	assert.Equal(t, 0.8, HeadOn.PowerMod(PhaseAsw))
	assert.Equal(t, 0.6, RedT.PowerMod(PhaseShelling))
	assert.Equal(t, 1.0, RedT.PowerMod(PhaseNight))
}

func TestShipEnv_BasicPowerOffset(t *testing.T) {
	assert.Equal(t, 5.0, ShipEnv{OrgType: SingleFleet}.BasicPowerOffset(PhaseShelling))
	assert.Equal(t, 10.0, ShipEnv{OrgType: SurfaceTaskForce, Role: RoleMain}.BasicPowerOffset(PhaseShelling))
	assert.Equal(t, -5.0, ShipEnv{OrgType: SurfaceTaskForce, Role: RoleEscort}.BasicPowerOffset(PhaseShelling))
	assert.Equal(t, 5.0, ShipEnv{OrgType: SingleFleet}.BasicPowerOffset(PhaseTorpedo))
	assert.Equal(t, 0.0, ShipEnv{OrgType: CarrierTaskForce}.BasicPowerOffset(PhaseTorpedo))
	assert.Equal(t, 0.0, ShipEnv{}.BasicPowerOffset(PhaseNight))
}

func TestAirState_ContactLevel(t *testing.T) {
	assert.Equal(t, 3, AirSupremacy.ContactLevel())
	assert.Equal(t, 2, AirSuperiority.ContactLevel())
	assert.Equal(t, 0, AirParity.ContactLevel())
	assert.Equal(t, 1, AirDenial.ContactLevel())
	assert.Equal(t, 0, AirIncapability.ContactLevel())
}
