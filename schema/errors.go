package schema

import (
	"fmt"
	"strings"
)

// MissingColumnsError is returned when a column list lacks the required
// x, y, z coordinate columns.
type MissingColumnsError struct {
	Kind    string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("schema: %s columns must include %s", e.Kind, strings.Join(e.Missing, ", "))
}

// DuplicateColumnError is returned when a column is declared more than once.
type DuplicateColumnError struct {
	Kind   string
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("schema: %s columns declare %q more than once", e.Kind, e.Column)
}

// DensityNotListedError is returned when the designated density property is
// absent from the declared columns.
type DensityNotListedError struct {
	Density string
}

func (e *DensityNotListedError) Error() string {
	return fmt.Sprintf("schema: density property %q is not in the declared columns", e.Density)
}

// CutoffOrderError is returned when the density clamp bounds are not in
// ascending order.
type CutoffOrderError struct {
	Low, Up float64
}

func (e *CutoffOrderError) Error() string {
	return fmt.Sprintf("schema: density cutoff low %g must be below up %g", e.Low, e.Up)
}
