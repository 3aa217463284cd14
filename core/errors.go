package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateMethod indicates a method object appeared twice during
	// callee registration — upstream elaboration is corrupt.
	ErrDuplicateMethod = errors.New("core: duplicate method registration")

	// ErrSchedulingInvariant indicates an internal invariant of the
	// scheduling core broke (condensed-graph cycle, vertex missing from
	// the SCC map). It implies a bug in this core, not in the design.
	ErrSchedulingInvariant = errors.New("core: scheduling invariant violated")
)

// PassOrderError reports that a product of a prerequisite pass is missing
// from the DAG handed to the scheduler.
type PassOrderError struct {
	// Attr names the missing upstream attribute.
	Attr string
}

// Error implements error.
func (e *PassOrderError) Error() string {
	return fmt.Sprintf("core: please first apply other passes to generate %s", e.Attr)
}
