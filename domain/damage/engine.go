package damage

import (
	"fmt"
	"math"
	"strings"

	"fleetcalc/domain/distribution"
	"fleetcalc/domain/formula"
)

// HitType classifies one attack. Ordering runs from miss to critical so the
// best hit of a volley is the maximum.
type HitType int

const (
	Miss HitType = iota
	NormalHit
	CriticalHit
)

func (h HitType) String() string {
	switch h {
	case CriticalHit:
		return "critical"
	case NormalHit:
		return "normal"
	default:
		return "miss"
	}
}

// Outcome pairs the best hit type of a volley with the resulting condition.
type Outcome struct {
	HitType HitType `json:"hit_type"`
	State   State   `json:"state"`
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.HitType.String() + ":" + o.State.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("malformed outcome %q", string(text))
	}
	switch parts[0] {
	case "critical":
		o.HitType = CriticalHit
	case "normal":
		o.HitType = NormalHit
	case "miss":
		o.HitType = Miss
	default:
		return fmt.Errorf("unknown hit type %q", parts[0])
	}
	return o.State.UnmarshalText([]byte(parts[1]))
}

// Params describes one attack style against one target.
type Params struct {
	AttackPower  *formula.AttackPower
	HitRate      *formula.HitRate
	DefensePower *formula.DefensePower
	Hits         int

	HP        int
	MaxHP     int
	Sinkable  bool
	Protected bool
}

// Result is the exact distribution produced by one attack style.
type Result struct {
	Outcomes       distribution.Histogram[Outcome] `json:"outcomes"`
	States         distribution.Histogram[State]   `json:"states"`
	RemainingHP    distribution.Histogram[int]     `json:"remaining_hp"`
	ExpectedDamage float64                         `json:"expected_damage"`
	SinkRate       float64                         `json:"sink_rate"`
}

// Engine evaluates damage distributions with an injected bucket function.
type Engine struct {
	stateFunc StateFunc
}

// NewEngine returns an engine; a nil stateFunc selects DefaultStateFunc.
func NewEngine(stateFunc StateFunc) *Engine {
	if stateFunc == nil {
		stateFunc = DefaultStateFunc
	}
	return &Engine{stateFunc: stateFunc}
}

// Scratch damage coefficients for connecting hits that fail to beat armor.
const (
	scratchBase = 0.06
	scratchStep = 0.08
)

type volleyState struct {
	hp   int
	best HitType
}

type hpStep struct {
	hp      int
	hitType HitType
}

// Calc returns nil when power, hit rate or defense is unresolved, so a style
// that cannot be analyzed is distinguishable from one that deals no damage.
func (e *Engine) Calc(p Params) *Result {
	if p.AttackPower == nil || p.HitRate == nil || p.DefensePower == nil {
		return nil
	}
	hits := p.Hits
	if hits < 1 {
		hits = 1
	}

	raw := rawDamage(*p.AttackPower, *p.HitRate, *p.DefensePower)
	memo := make(map[int]distribution.Histogram[hpStep])
	step := func(hp int) distribution.Histogram[hpStep] {
		if cached, ok := memo[hp]; ok {
			return cached
		}
		next := e.transition(p, raw, *p.HitRate, hp)
		memo[hp] = next
		return next
	}

	current := distribution.New[volleyState]()
	current.Add(volleyState{hp: p.HP, best: Miss}, 1)
	for i := 0; i < hits; i++ {
		next := distribution.New[volleyState]()
		for state, w := range current {
			for s, w2 := range step(state.hp) {
				best := state.best
				if s.hitType > best {
					best = s.hitType
				}
				next.Add(volleyState{hp: s.hp, best: best}, w*w2)
			}
		}
		current = next
	}

	result := &Result{
		Outcomes:    distribution.New[Outcome](),
		States:      distribution.New[State](),
		RemainingHP: distribution.New[int](),
	}
	damageDealt := distribution.New[int]()
	for state, w := range current {
		bucket := e.stateFunc(p.HP, state.hp, p.MaxHP, p.Sinkable)
		result.Outcomes.Add(Outcome{HitType: state.best, State: bucket}, w)
		result.States.Add(bucket, w)
		result.RemainingHP.Add(state.hp, w)
		damageDealt.Add(p.HP-state.hp, w)
	}
	result.ExpectedDamage = distribution.Mean(damageDealt)
	result.SinkRate = result.States.Get(Sunk)
	return result
}

// rawDamage groups the defense rolls by the damage they allow per hit type.
// Key 0 marks rolls that need scratch damage.
func rawDamage(power formula.AttackPower, rate formula.HitRate, defense formula.DefensePower) map[HitType]distribution.Histogram[int] {
	out := make(map[HitType]distribution.Histogram[int], 2)
	rolls := defense.Rolls()
	normal, critical := rate.Weights()
	weights := map[HitType]float64{CriticalHit: critical, NormalHit: normal}
	for hitType, p := range weights {
		if p <= 0 {
			continue
		}
		h := distribution.New[int]()
		perRoll := p / float64(len(rolls))
		for _, roll := range rolls {
			dmg := int(math.Floor(math.Max(power.ForHit(hitType == CriticalHit)-roll, 0)))
			h.Add(dmg, perRoll)
		}
		out[hitType] = h
	}
	return out
}

// transition is the single-hit distribution of (hp after, hit type) from hp.
func (e *Engine) transition(p Params, raw map[HitType]distribution.Histogram[int], rate formula.HitRate, hp int) distribution.Histogram[hpStep] {
	out := distribution.New[hpStep]()
	if miss := rate.Miss(); miss > 0 {
		out.Add(hpStep{hp: hp, hitType: Miss}, miss)
	}

	for hitType, damages := range raw {
		if hp <= 0 {
			out.Add(hpStep{hp: hp, hitType: hitType}, damages.Total())
			continue
		}
		for dmg, w := range damages {
			if dmg >= 1 {
				out.Add(hpStep{hp: p.applyDamage(hp, dmg), hitType: hitType}, w)
				continue
			}
			perRoll := w / float64(hp)
			for r := 0; r < hp; r++ {
				scratch := int(math.Floor(scratchBase*float64(hp) + scratchStep*float64(r)))
				if scratch < 1 {
					scratch = 1
				}
				out.Add(hpStep{hp: p.applyDamage(hp, scratch), hitType: hitType}, perRoll)
			}
		}
	}
	return out
}

// applyDamage enforces overkill protection and floors HP at zero.
func (p Params) applyDamage(hp, dmg int) int {
	after := hp - dmg
	if after <= 0 && p.Protected && !p.Sinkable {
		return 1
	}
	if after < 0 {
		return 0
	}
	return after
}
