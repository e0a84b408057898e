package distribution

import (
	"encoding/json"
	"fmt"
)

// Precision grades how much of an Estimation is resolved.
type Precision int

const (
	PrecisionUnknown Precision = iota
	PrecisionApproximate
	PrecisionExact
)

func (p Precision) String() string {
	switch p {
	case PrecisionExact:
		return "exact"
	case PrecisionApproximate:
		return "approximate"
	default:
		return "unknown"
	}
}

// Estimation is a numeric value that is exact, approximate or unknown.
// Arithmetic degrades precision instead of failing: an unknown left operand
// yields an approximate copy of the right operand, and an unknown right
// operand leaves the left operand untouched.
type Estimation[T Number] struct {
	value     T
	precision Precision
}

// Just wraps an exactly resolved value.
func Just[T Number](v T) Estimation[T] {
	return Estimation[T]{value: v, precision: PrecisionExact}
}

// Rough wraps a value computed from partially resolved inputs.
func Rough[T Number](v T) Estimation[T] {
	return Estimation[T]{value: v, precision: PrecisionApproximate}
}

// Unknown returns the unresolved estimation.
func Unknown[T Number]() Estimation[T] {
	return Estimation[T]{}
}

// Maybe returns Just(*v), or Unknown when v is nil.
func Maybe[T Number](v *T) Estimation[T] {
	if v == nil {
		return Unknown[T]()
	}
	return Just(*v)
}

// Value returns the carried value and whether one is present.
func (e Estimation[T]) Value() (T, bool) {
	return e.value, e.precision != PrecisionUnknown
}

// ValueOr returns the carried value or fallback when unknown.
func (e Estimation[T]) ValueOr(fallback T) T {
	if e.precision == PrecisionUnknown {
		return fallback
	}
	return e.value
}

// Ptr returns a pointer to the value, nil when unknown.
func (e Estimation[T]) Ptr() *T {
	if e.precision == PrecisionUnknown {
		return nil
	}
	v := e.value
	return &v
}

func (e Estimation[T]) Precision() Precision { return e.precision }
func (e Estimation[T]) IsExact() bool         { return e.precision == PrecisionExact }
func (e Estimation[T]) IsKnown() bool         { return e.precision != PrecisionUnknown }
func (e Estimation[T]) IsApproximate() bool   { return e.precision == PrecisionApproximate }

// Map applies f to the carried value, keeping the precision.
func (e Estimation[T]) Map(f func(T) T) Estimation[T] {
	if e.precision == PrecisionUnknown {
		return e
	}
	return Estimation[T]{value: f(e.value), precision: e.precision}
}

// combine is the single rule table behind every binary operator.
func combine[T Number](x, y Estimation[T], op func(a, b T) T) Estimation[T] {
	switch {
	case y.precision == PrecisionUnknown:
		return x
	case x.precision == PrecisionUnknown:
		return Rough(y.value)
	case x.precision == PrecisionExact && y.precision == PrecisionExact:
		return Just(op(x.value, y.value))
	default:
		return Rough(op(x.value, y.value))
	}
}

func (e Estimation[T]) Add(o Estimation[T]) Estimation[T] {
	return combine(e, o, func(a, b T) T { return a + b })
}

func (e Estimation[T]) Sub(o Estimation[T]) Estimation[T] {
	return combine(e, o, func(a, b T) T { return a - b })
}

func (e Estimation[T]) Mul(o Estimation[T]) Estimation[T] {
	return combine(e, o, func(a, b T) T { return a * b })
}

// Div divides by o. A known dividend over a known zero divisor is unknown;
// an unknown dividend follows the usual rules.
func (e Estimation[T]) Div(o Estimation[T]) Estimation[T] {
	if e.precision != PrecisionUnknown && o.precision != PrecisionUnknown && o.value == 0 {
		return Unknown[T]()
	}
	return combine(e, o, func(a, b T) T { return a / b })
}

func (e Estimation[T]) String() string {
	switch e.precision {
	case PrecisionExact:
		return fmt.Sprint(e.value)
	case PrecisionApproximate:
		return fmt.Sprintf("~%v", e.value)
	default:
		return "?"
	}
}

type estimationJSON[T Number] struct {
	Value     *T     `json:"value,omitempty"`
	Precision string `json:"precision"`
}

func (e Estimation[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(estimationJSON[T]{Value: e.Ptr(), Precision: e.precision.String()})
}

func (e *Estimation[T]) UnmarshalJSON(data []byte) error {
	var raw estimationJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Value == nil:
		*e = Unknown[T]()
	case raw.Precision == "approximate":
		*e = Rough(*raw.Value)
	default:
		*e = Just(*raw.Value)
	}
	return nil
}
