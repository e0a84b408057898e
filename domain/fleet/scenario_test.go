package fleet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"fleetcalc/domain/attack"
	"fleetcalc/domain/core"
	"fleetcalc/domain/formula"
	"fleetcalc/domain/warfare"
)

func validScenario() *Scenario {
	return &Scenario{
		Name:       "sortie",
		Engagement: warfare.Parallel,
		AirState:   warfare.AirSuperiority,
		Fleets: []Fleet{{
			OrgType:   warfare.SingleFleet,
			Role:      warfare.RoleMain,
			Formation: warfare.LineAhead,
			Ships:     []ShipSnapshot{{Name: "a", HP: 40, MaxHP: 40}, {Name: "b", HP: 10, MaxHP: 32}},
		}},
		Enemy: Enemy{
			Formation: warfare.LineAhead,
			FleetLen:  6,
			Target:    TargetSnapshot{Name: "t", HP: 50, MaxHP: 50, Armor: 40},
		},
	}
}

func TestScenario_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Scenario)
		want   error
	}{
		{"valid", func(s *Scenario) {}, nil},
		{"bad engagement", func(s *Scenario) { s.Engagement = "sideways" }, core.ErrUnknownEnum},
		{"bad air state", func(s *Scenario) { s.AirState = "" }, core.ErrUnknownEnum},
		{"no fleets", func(s *Scenario) { s.Fleets = nil }, core.ErrEmptyFleet},
		{"empty fleet", func(s *Scenario) { s.Fleets[0].Ships = nil }, core.ErrEmptyFleet},
		{"too many ships", func(s *Scenario) {
			s.Fleets[0].Ships = make([]ShipSnapshot, MaxShips+1)
			for i := range s.Fleets[0].Ships {
				s.Fleets[0].Ships[i] = ShipSnapshot{HP: 1, MaxHP: 1}
			}
		}, core.ErrFleetTooLarge},
		{"hp above max", func(s *Scenario) { s.Fleets[0].Ships[1].HP = 33 }, core.ErrInvalidHP},
		{"target without max hp", func(s *Scenario) { s.Enemy.Target.MaxHP = 0 }, core.ErrInvalidHP},
		{"unknown fleet cutin", func(s *Scenario) { s.Fleets[0].Ships[0].FleetCutin = attack.Normal }, core.ErrUnknownEnum},
		{"negative armor", func(s *Scenario) { s.Enemy.Target.Armor = -1 }, core.ErrInvalidScenario},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScenario()
			tt.mutate(s)
			err := s.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, core.IsScenarioError(err))
		})
	}
}

func TestScenario_Context(t *testing.T) {
	s := validScenario()
	ctx := s.Context(0, 1)

	assert.Equal(t, 1, ctx.Attacker.ShipIndex)
	assert.Equal(t, 2, ctx.Attacker.FleetLen)
	assert.Equal(t, warfare.LineAhead, ctx.Target.Formation)
	assert.Equal(t, warfare.AirSuperiority, ctx.AirState)
}

func TestModifiers_Apply(t *testing.T) {
	synergy := formula.Offset(4)
	historical := formula.Mult(1.2)
	p := Modifiers{Synergy: &synergy, Historical: &historical}.Apply(formula.NewPipeline())

	assert.Equal(t, []formula.Stage{formula.StageSynergy, formula.StageHistorical}, p.Stages())
	assert.Equal(t, formula.Modifier{A: 1, B: 4}, p.Precap())
	assert.Equal(t, formula.Modifier{A: 1.2, B: 0}, p.Postcap())
}

func TestShipSnapshot_EffectiveMorale(t *testing.T) {
	assert.Equal(t, DefaultMorale, ShipSnapshot{}.EffectiveMorale())
	assert.Equal(t, 85, ShipSnapshot{Morale: 85}.EffectiveMorale())
}
