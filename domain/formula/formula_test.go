package formula

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitRate_Scenario(t *testing.T) {
	rate := HitRateParams{
		AccuracyTerm:           60,
		EvasionTerm:            10,
		MoraleMod:              1.2,
		HitRateBonus:           9,
		CriticalRateMultiplier: 1.3,
		CriticalRateBonus:      0.12,
	}.Calc()

	assert.InDelta(t, 0.7, rate.Total, 1e-12)
	assert.InDelta(t, 0.23, rate.Critical, 1e-12)
	assert.InDelta(t, 0.47, rate.Normal, 1e-12)
	assert.InDelta(t, 0.3, rate.Miss(), 1e-12)
}

func TestHitRate_CriticalBonusAboveTotal(t *testing.T) {
	rate := HitRateParams{
		AccuracyTerm:           0,
		EvasionTerm:            100,
		MoraleMod:              1,
		CriticalRateMultiplier: 1.5,
		CriticalRateBonus:      0.12,
	}.Calc()

	assert.InDelta(t, 0.11, rate.Total, 1e-9)
	assert.InDelta(t, 0.17, rate.Critical, 1e-9)
	assert.Equal(t, 0.0, rate.Normal)

	normal, critical := rate.Weights()
	assert.Equal(t, 0.0, normal)
	assert.InDelta(t, rate.Total, critical, 1e-12)
	assert.InDelta(t, 1.0, normal+critical+rate.Miss(), 1e-12)
}

func TestHitRate_Weights(t *testing.T) {
	normal, critical := HitRate{Total: 0.7, Normal: 0.5, Critical: 0.2}.Weights()
	assert.InDelta(t, 0.5, normal, 1e-12)
	assert.InDelta(t, 0.2, critical, 1e-12)
}

// TestHitRate_Bounds checks 0 <= critical <= total <= 1 for bonus pairs whose
// critical bonus does not outgrow the hit bonus.
func TestHitRate_Bounds(t *testing.T) {
	bonuses := []struct {
		hit, critical float64
	}{
		{0, 0},
		{9, 0.05},
		{9, 0.09},
		{40, 0.12},
		{40, 0.4},
	}

	for acc := -50; acc <= 300; acc += 7 {
		for _, bonus := range bonuses {
			for _, mul := range []float64{AswCriticalMul, ShellingCriticalMul, NightCriticalMul} {
				rate := HitRateParams{
					AccuracyTerm:           acc,
					EvasionTerm:            30,
					MoraleMod:              1.0,
					HitRateBonus:           bonus.hit,
					CriticalRateMultiplier: mul,
					CriticalRateBonus:      bonus.critical,
				}.Calc()

				assert.GreaterOrEqual(t, rate.Critical, 0.0)
				assert.LessOrEqual(t, rate.Critical, rate.Total+1e-12, "acc=%d bonus=%+v", acc, bonus)
				assert.LessOrEqual(t, rate.Total, 1.0)
			}
		}
	}
}

func TestHitRate_MonotoneInAccuracy(t *testing.T) {
	prev := -1.0
	for acc := 0; acc <= 200; acc++ {
		rate := HitRateParams{
			AccuracyTerm:           acc,
			EvasionTerm:            45,
			MoraleMod:              0.8,
			HitRateBonus:           3,
			CriticalRateMultiplier: NightCriticalMul,
		}.Calc()
		require.GreaterOrEqual(t, rate.Total, prev, "acc=%d", acc)
		prev = rate.Total
	}
	assert.InDelta(t, 1.0, prev, 1e-12, "total saturates once accuracy dominates")
}

func TestHitRate_ClampsLowBasis(t *testing.T) {
	rate := HitRateParams{AccuracyTerm: 0, EvasionTerm: 200, MoraleMod: 1, CriticalRateMultiplier: 1.3}.Calc()
	assert.InDelta(t, 0.11, rate.Total, 1e-12)
	// floor(sqrt(10)*1.3 + 1) = 5
	assert.InDelta(t, 0.05, rate.Critical, 1e-12)
}

func TestDefensePower_Scenario(t *testing.T) {
	want := []float64{7.0, 7.6, 8.2, 8.8, 9.4, 10.0, 10.6, 11.2, 11.8, 12.4}
	got := NewDefensePower(10.0).Rolls()

	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "roll %d", i)
	}
}

func TestDefensePower_Shape(t *testing.T) {
	for _, basic := range []float64{1, 1.5, 7.3, 10, 58.9, 240} {
		d := NewDefensePower(basic)
		n := int(basic)

		assert.Equal(t, n, d.Len())
		assert.InDelta(t, 0.7*basic, d.Min(), 1e-9)
		assert.InDelta(t, d.Min()+float64(n-1)*0.6, d.Max(), 1e-9)

		rolls := d.Rolls()
		for i := 1; i < len(rolls); i++ {
			assert.Greater(t, rolls[i], rolls[i-1])
		}
	}
	assert.Equal(t, 1, NewDefensePower(0.2).Len(), "basic is clamped to 1")
}

func TestDefensePower_ChooseStaysInRange(t *testing.T) {
	d := NewDefensePower(33.3)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		roll := d.Choose(rng)
		assert.GreaterOrEqual(t, roll, d.Min())
		assert.LessOrEqual(t, roll, d.Max()+1e-9)
	}
}

func TestModifier_Compose(t *testing.T) {
	x := Modifier{A: 1.5, B: 2}
	y := Modifier{A: 0.8, B: -1}
	c := Compose(x, y)

	assert.InDelta(t, 1.2, c.A, 1e-12)
	assert.InDelta(t, 1, c.B, 1e-12)
	assert.Equal(t, x, Compose(x, Identity))
	assert.Equal(t, x, Identity.Then(x))
	assert.True(t, Identity.IsIdentity())
	assert.InDelta(t, 13, Modifier{A: 2, B: 3}.Apply(5), 1e-12)
}

func TestPipeline_SplitsAtCap(t *testing.T) {
	p := NewPipeline().
		Set(StageFormation, Mult(0.8)).
		Set(StageEngagement, Mult(1.2)).
		Set(StageCutin, Mult(1.5)).
		Chain(StageHistorical, Mult(1.1)).
		Chain(StageHistorical, Offset(3))

	assert.InDelta(t, 0.96, p.Precap().A, 1e-12)
	assert.InDelta(t, 1.65, p.Postcap().A, 1e-12)
	assert.InDelta(t, 3, p.Postcap().B, 1e-12)
	assert.Equal(t, []Stage{StageFormation, StageEngagement, StageCutin, StageHistorical}, p.Stages())
	assert.Equal(t, "special_enemy_postcap", StageSpecialEnemyPostcap.String())

	clone := p.Clone().Set(StageFormation, Identity)
	assert.InDelta(t, 0.8, p.Get(StageFormation).A, 1e-12, "clone is independent")
	assert.InDelta(t, 1.2, clone.Precap().A, 1e-12)
}

func TestAttackPower_Calc(t *testing.T) {
	tests := []struct {
		name     string
		params   AttackPowerParams
		normal   float64
		critical float64
		capped   bool
	}{
		{
			name:     "below cap",
			params:   AttackPowerParams{Basic: 100, Cap: ShellingCap, Precap: Identity, Postcap: Identity},
			normal:   100,
			critical: 150,
		},
		{
			name:     "soft capped",
			params:   AttackPowerParams{Basic: 236, Cap: ShellingCap, Precap: Identity, Postcap: Identity},
			normal:   224,
			critical: 336,
			capped:   true,
		},
		{
			name:     "postcap cutin",
			params:   AttackPowerParams{Basic: 120, Cap: ShellingCap, Precap: Mult(0.8), Postcap: Mult(1.5)},
			normal:   144,
			critical: 216,
		},
		{
			name:     "proficiency critical",
			params:   AttackPowerParams{Basic: 90, Cap: ShellingCap, Precap: Identity, Postcap: Identity, ProficiencyCriticalMod: 1.2},
			normal:   90,
			critical: 162,
		},
		{
			name:     "negative clamps to zero",
			params:   AttackPowerParams{Basic: 10, Cap: ShellingCap, Precap: Offset(-40), Postcap: Identity},
			normal:   0,
			critical: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			power := tt.params.Calc()
			assert.InDelta(t, tt.normal, power.Normal, 1e-9)
			assert.InDelta(t, tt.critical, power.Critical, 1e-9)
			assert.Equal(t, tt.capped, power.IsCapped)
		})
	}
}

func TestTerms(t *testing.T) {
	// 90 + 2*sqrt(99) + 1.5*sqrt(16) + 10 = 125.899...
	assert.Equal(t, 125, AccuracyTerm(AccuracyTermParams{Base: ShellingAccuracyBase, Level: 99, Luck: 16, EquipAccuracy: 10}))
	assert.Equal(t, 151, AccuracyTerm(AccuracyTermParams{Base: ShellingAccuracyBase, Level: 99, Luck: 16, EquipAccuracy: 10, FormationMod: 1.2}))

	assert.Equal(t, 30, EvasionTerm(30, 1))
	assert.Equal(t, 49, EvasionTerm(50, 1))
	assert.Equal(t, 61, EvasionTerm(74, 1))
	assert.Equal(t, 44, EvasionTerm(39, 1.1))

	assert.InDelta(t, 1.2, MoraleMod(53), 0)
	assert.InDelta(t, 1.0, MoraleMod(49), 0)
	assert.InDelta(t, 0.8, MoraleMod(25), 0)
	assert.InDelta(t, 0.5, MoraleMod(10), 0)
}
