package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Scenario validation errors
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrEmptyFleet      = fmt.Errorf("%w: fleet has no ships", ErrInvalidScenario)
	ErrFleetTooLarge   = fmt.Errorf("%w: fleet has too many ships", ErrInvalidScenario)
	ErrInvalidHP       = fmt.Errorf("%w: hp out of range", ErrInvalidScenario)
	ErrUnknownEnum     = fmt.Errorf("%w: unknown enumeration value", ErrInvalidScenario)

	// Report contract violations
	ErrDuplicateStyle = errors.New("duplicate attack style in action report")
)

// NewFieldError reports an invalid scenario field
func NewFieldError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidScenario, field, reason)
}

// NewEnumError reports an unrecognized enumeration literal
func NewEnumError(kind, value string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownEnum, kind, value)
}

// IsScenarioError reports whether err stems from scenario validation
func IsScenarioError(err error) bool {
	return errors.Is(err, ErrInvalidScenario)
}
