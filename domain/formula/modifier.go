// Package formula evaluates attack power, hit rate and defense power from
// already-resolved numeric terms.
package formula

import "fmt"

// Modifier is the affine transform v ↦ A·v + B.
type Modifier struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Identity leaves values unchanged.
var Identity = Modifier{A: 1, B: 0}

// Mult returns a purely multiplicative modifier.
func Mult(a float64) Modifier { return Modifier{A: a} }

// Offset returns a purely additive modifier.
func Offset(b float64) Modifier { return Modifier{A: 1, B: b} }

// Compose returns the modifier equivalent to chaining x then y in a pipeline.
func Compose(x, y Modifier) Modifier {
	return Modifier{A: x.A * y.A, B: x.B + y.B}
}

// Then chains m with next.
func (m Modifier) Then(next Modifier) Modifier {
	return Compose(m, next)
}

// Apply transforms v.
func (m Modifier) Apply(v float64) float64 {
	return m.A*v + m.B
}

// IsIdentity reports whether m is (1, 0).
func (m Modifier) IsIdentity() bool {
	return m == Identity
}

func (m Modifier) String() string {
	return fmt.Sprintf("x%.3g%+.3g", m.A, m.B)
}

// Stage names one slot of the attack power pipeline. The order of the
// constants is the order in which stages are applied.
type Stage int

const (
	StageFormation Stage = iota
	StageEngagement
	StageDamageState
	StageSpecialEnemyPrecap
	StageSynergy
	StageCutin
	StageSpecialEnemyPostcap
	StageHistorical
	stageCount
)

var stageNames = [...]string{
	StageFormation:           "formation",
	StageEngagement:          "engagement",
	StageDamageState:         "damage_state",
	StageSpecialEnemyPrecap:  "special_enemy_precap",
	StageSynergy:             "synergy",
	StageCutin:               "cutin",
	StageSpecialEnemyPostcap: "special_enemy_postcap",
	StageHistorical:          "historical",
}

func (s Stage) String() string {
	if s < 0 || s >= stageCount {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Postcap reports whether the stage applies after the soft cap.
func (s Stage) Postcap() bool {
	return s >= StageCutin
}

// Pipeline holds one modifier per stage. Unset stages are the identity.
type Pipeline struct {
	stages [stageCount]Modifier
	set    [stageCount]bool
}

// NewPipeline returns a pipeline with every stage at identity.
func NewPipeline() *Pipeline {
	p := &Pipeline{}
	for i := range p.stages {
		p.stages[i] = Identity
	}
	return p
}

// Set replaces the modifier for stage.
func (p *Pipeline) Set(stage Stage, m Modifier) *Pipeline {
	p.stages[stage] = m
	p.set[stage] = true
	return p
}

// Chain composes m onto whatever stage already holds.
func (p *Pipeline) Chain(stage Stage, m Modifier) *Pipeline {
	return p.Set(stage, Compose(p.stages[stage], m))
}

// Get returns the modifier for stage.
func (p *Pipeline) Get(stage Stage) Modifier {
	return p.stages[stage]
}

// Clone returns an independent copy.
func (p *Pipeline) Clone() *Pipeline {
	c := *p
	return &c
}

// Precap composes every pre-cap stage in pipeline order.
func (p *Pipeline) Precap() Modifier {
	return p.compose(func(s Stage) bool { return !s.Postcap() })
}

// Postcap composes every post-cap stage in pipeline order.
func (p *Pipeline) Postcap() Modifier {
	return p.compose(Stage.Postcap)
}

// Stages lists the stages that were explicitly set, in order.
func (p *Pipeline) Stages() []Stage {
	var out []Stage
	for s := Stage(0); s < stageCount; s++ {
		if p.set[s] {
			out = append(out, s)
		}
	}
	return out
}

func (p *Pipeline) compose(include func(Stage) bool) Modifier {
	m := Identity
	for s := Stage(0); s < stageCount; s++ {
		if include(s) {
			m = Compose(m, p.stages[s])
		}
	}
	return m
}
