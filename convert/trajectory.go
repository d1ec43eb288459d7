package convert

import (
	"fmt"

	"github.com/electrolens/electrolens/structure"
)

// trajectoryConverter expands a trajectory into one row per atom per frame.
// Geometry is derived from frame 0 only; later frames are assumed
// geometrically consistent.
type trajectoryConverter struct {
	traj structure.Trajectory
}

func (c *trajectoryConverter) Convert(opts Options) (*Fragment, error) {
	opts.defaults()
	if opts.Properties == nil {
		return nil, &UnsupportedConversionError{Source: KindTrajectory, Target: FormatMolecular, Reason: "a molecular property schema is required"}
	}
	if c.traj.Frames() == 0 {
		return nil, &UnsupportedConversionError{Source: KindTrajectory, Target: FormatMolecular, Reason: "trajectory has no frames"}
	}

	first, err := c.traj.Frame(0)
	if err != nil {
		return nil, fmt.Errorf("convert: read trajectory frame 0: %w", err)
	}

	frag := &Fragment{Target: FormatMolecular}
	frag.SystemDimension, frag.SystemLatticeVectors = geometry(first.Cell)

	columns := columnsFor(opts.Properties)
	sink, err := newRowSink(opts, columns)
	if err != nil {
		return nil, err
	}
	for i := 0; i < c.traj.Frames(); i++ {
		snap, err := c.traj.Frame(i)
		if err != nil {
			return nil, fmt.Errorf("convert: read trajectory frame %d: %w", i, err)
		}
		for _, atom := range snap.Atoms {
			row := atomRow(columns, atom)
			if opts.Framed != nil {
				row[opts.Framed.Column()] = i
			}
			if err := sink.emit(row); err != nil {
				return nil, err
			}
		}
	}
	frag.Data, err = sink.finish()
	if err != nil {
		return nil, err
	}
	applySetup(frag, opts)
	return frag, nil
}
