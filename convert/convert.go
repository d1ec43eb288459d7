// Package convert turns simulation inputs into configuration fragments.
//
// Inputs come in four shapes: a single structure snapshot, a trajectory, a
// raw 2D numeric array, or the path of a pre-existing data file. A converter
// pairs one input with a property schema, validates the combination, and
// produces an immutable Fragment holding the derived geometry, the per-row
// data (inline or spilled to a CSV side-car file) and the schema's plotSetup
// contribution.
//
// Dispatch is a fixed table keyed by (input kind, target format); unmapped
// combinations are rejected up front rather than failing mid-conversion.
package convert

import (
	"io"
	"log/slog"
	"os"

	"github.com/electrolens/electrolens/schema"
	"github.com/electrolens/electrolens/structure"
)

// Options carries the schema and side inputs of one conversion.
type Options struct {
	// Properties declares the columns of the produced rows. Required for
	// every input kind except file paths.
	Properties schema.Properties

	// Framed, when set, tags every row with its frame index under the frame
	// column. Only trajectory inputs support it.
	Framed *schema.Framed

	// Species and Lattice supply the side data an array input cannot carry
	// itself: one species label per row and the cell matrix.
	Species []string
	Lattice *structure.Lattice

	// Output, when non-nil, receives the rows as a delimited file instead of
	// inlining them; the fragment then records the file's path under
	// dataFilename. The converter never closes a caller-supplied handle.
	Output *os.File

	// Logger receives conversion warnings. Nil discards them.
	Logger *slog.Logger
}

func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Converter maps one input plus a schema onto a Fragment.
type Converter interface {
	Convert(opts Options) (*Fragment, error)
}

// KindOf resolves the runtime shape of an input.
func KindOf(data any) (Kind, error) {
	switch data.(type) {
	case string:
		return KindFile, nil
	case *structure.Snapshot:
		return KindSnapshot, nil
	case [][]float64:
		return KindArray, nil
	case structure.Trajectory:
		return KindTrajectory, nil
	}
	return "", &UnsupportedConversionError{Source: "unknown", Reason: "input must be a snapshot, trajectory, [][]float64 or file path"}
}

type convKey struct {
	source Kind
	target Format
}

// converters is the dispatch table. Array inputs only convert to molecular
// data; spatially resolved data comes from files.
var converters = map[convKey]func(data any) Converter{
	{KindSnapshot, FormatMolecular}:     func(d any) Converter { return &snapshotConverter{snap: d.(*structure.Snapshot)} },
	{KindTrajectory, FormatMolecular}:   func(d any) Converter { return &trajectoryConverter{traj: d.(structure.Trajectory)} },
	{KindArray, FormatMolecular}:        func(d any) Converter { return &arrayConverter{rows: d.([][]float64)} },
	{KindFile, FormatMolecular}:         func(d any) Converter { return &fileConverter{path: d.(string), target: FormatMolecular} },
	{KindFile, FormatSpatiallyResolved}: func(d any) Converter { return &fileConverter{path: d.(string), target: FormatSpatiallyResolved} },
}

// New selects the converter for a data/target combination.
func New(data any, target Format) (Converter, error) {
	kind, err := KindOf(data)
	if err != nil {
		return nil, err
	}
	build, ok := converters[convKey{kind, target}]
	if !ok {
		return nil, &UnsupportedConversionError{Source: kind, Target: target}
	}
	return build(data), nil
}

// applySetup collects the plotSetup fragment of the schemas involved in a
// conversion.
func applySetup(frag *Fragment, opts Options) {
	if opts.Properties != nil {
		opts.Properties.AddPlotSetup(&frag.Setup)
	}
	if opts.Framed != nil {
		opts.Framed.AddPlotSetup(&frag.Setup)
	}
}
