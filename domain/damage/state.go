// Package damage turns one attack style's resolved power, hit rate and
// defense rolls into the exact distribution of the target's resulting
// condition.
package damage

import (
	"fmt"
	"strings"
)

// State is a ship condition bucket ordered from healthy to sunk.
type State int

const (
	Healthy State = iota
	Minor
	Moderate
	Heavy
	Sunk
)

var stateNames = map[State]string{
	Healthy:  "healthy",
	Minor:    "minor",
	Moderate: "moderate",
	Heavy:    "heavy",
	Sunk:     "sunk",
}

// States lists every bucket in severity order.
func States() []State {
	return []State{Healthy, Minor, Moderate, Heavy, Sunk}
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	if _, ok := stateNames[s]; !ok {
		return nil, fmt.Errorf("unknown damage state %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for state, name := range stateNames {
		if name == want {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown damage state %q", string(text))
}

// StateFunc maps a hit's before/after HP to a condition bucket. The
// thresholds belong to the game rules table, so callers inject it.
type StateFunc func(hpBefore, hpAfter, maxHP int, sinkable bool) State

// DefaultStateFunc buckets by remaining HP ratio: above 3/4 healthy, above
// 1/2 minor, above 1/4 moderate, above zero heavy, otherwise sunk.
func DefaultStateFunc(hpBefore, hpAfter, maxHP int, sinkable bool) State {
	if hpAfter <= 0 {
		return Sunk
	}
	if maxHP <= 0 {
		return Healthy
	}
	ratio := float64(hpAfter) / float64(maxHP)
	switch {
	case ratio > 0.75:
		return Healthy
	case ratio > 0.5:
		return Minor
	case ratio > 0.25:
		return Moderate
	default:
		return Heavy
	}
}
