package plot

import (
	"errors"
	"fmt"
)

// ErrNoViews is returned when a programmatic plot builds its configuration
// with no views added.
var ErrNoViews = errors.New("plot: no views added")

// InvalidOperationError is returned for operations that contradict the
// plot's construction mode, such as adding a view to a plot built from a
// configuration file.
type InvalidOperationError struct {
	Op     string
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("plot: %s: %s", e.Op, e.Reason)
}

// FrameColumnError is returned when the framed schema's column is not
// declared by one of the plot's property schemas.
type FrameColumnError struct {
	Column string
	Schema string
}

func (e *FrameColumnError) Error() string {
	return fmt.Sprintf("plot: frame column %q is not declared in the %s schema columns", e.Column, e.Schema)
}
