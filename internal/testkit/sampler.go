package testkit

import (
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"

	"fleetcalc/domain/damage"
	"fleetcalc/domain/distribution"
)

// Sampler resolves attacks by drawing random numbers, the way a battle
// simulator would.
type Sampler struct {
	rng       *rand.Rand
	stateFunc damage.StateFunc
}

// NewSampler returns a sampler; a nil stateFunc selects the default buckets.
func NewSampler(rng *rand.Rand, stateFunc damage.StateFunc) *Sampler {
	if stateFunc == nil {
		stateFunc = damage.DefaultStateFunc
	}
	return &Sampler{rng: rng, stateFunc: stateFunc}
}

// Sample is the tally of repeated trials.
type Sample struct {
	States distribution.Histogram[damage.State]
	Damage []float64
}

// MeanDamage is the average damage dealt per trial.
func (s Sample) MeanDamage() float64 {
	mean, err := stats.Mean(s.Damage)
	if err != nil {
		return 0
	}
	return mean
}

// Run performs trials independent volleys and returns the state density.
func (s *Sampler) Run(p damage.Params, trials int) Sample {
	counts := distribution.New[damage.State]()
	dealt := make([]float64, 0, trials)
	hits := p.Hits
	if hits < 1 {
		hits = 1
	}

	for i := 0; i < trials; i++ {
		hp := p.HP
		for h := 0; h < hits; h++ {
			hp = s.hit(p, hp)
		}
		counts.Add(s.stateFunc(p.HP, hp, p.MaxHP, p.Sinkable), 1)
		dealt = append(dealt, float64(p.HP-hp))
	}

	return Sample{States: counts.Density(), Damage: dealt}
}

func (s *Sampler) hit(p damage.Params, hp int) int {
	u := s.rng.Float64()
	_, critical := p.HitRate.Weights()
	var power float64
	switch {
	case u < critical:
		power = p.AttackPower.Critical
	case u < p.HitRate.Total:
		power = p.AttackPower.Normal
	default:
		return hp
	}
	if hp <= 0 {
		return hp
	}

	dmg := int(math.Floor(math.Max(power-p.DefensePower.Choose(s.rng), 0)))
	if dmg < 1 {
		r := s.rng.Intn(hp)
		dmg = int(math.Floor(0.06*float64(hp) + 0.08*float64(r)))
		if dmg < 1 {
			dmg = 1
		}
	}

	after := hp - dmg
	if after <= 0 && p.Protected && !p.Sinkable {
		return 1
	}
	if after < 0 {
		return 0
	}
	return after
}
