package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrTargetNotFound is returned when a requested target is not in the
	// current enumeration.
	ErrTargetNotFound = errors.New("target not found")

	// ErrZeroLogicalWidth is returned when the OS reports a display mode with
	// a logical width of zero.
	ErrZeroLogicalWidth = errors.New("display mode has zero logical width")
)

// EnvironmentFault reports a broken host invariant: the OS version cannot be
// read, or the primary display is missing from the enumeration. Retrying
// cannot fix it and capture must not proceed.
type EnvironmentFault struct {
	Op  string
	Err error
}

func (e *EnvironmentFault) Error() string {
	return fmt.Sprintf("environment fault: %s: %v", e.Op, e.Err)
}

func (e *EnvironmentFault) Unwrap() error { return e.Err }

// IsEnvironmentFault reports whether any error in err's chain is an EnvironmentFault.
func IsEnvironmentFault(err error) bool {
	var fault *EnvironmentFault
	return errors.As(err, &fault)
}

func fault(op string, err error) error {
	return &EnvironmentFault{Op: op, Err: err}
}
