package convert

import (
	"github.com/electrolens/electrolens/schema"
	"github.com/electrolens/electrolens/structure"
)

// snapshotConverter emits one row per atom of a single structure snapshot.
type snapshotConverter struct {
	snap *structure.Snapshot
}

func (c *snapshotConverter) Convert(opts Options) (*Fragment, error) {
	opts.defaults()
	if opts.Properties == nil {
		return nil, &UnsupportedConversionError{Source: KindSnapshot, Target: FormatMolecular, Reason: "a molecular property schema is required"}
	}
	if opts.Framed != nil {
		return nil, &UnsupportedConversionError{Source: KindSnapshot, Target: FormatMolecular, Reason: "a single snapshot has no frames"}
	}

	frag := &Fragment{Target: FormatMolecular}
	frag.SystemDimension, frag.SystemLatticeVectors = geometry(c.snap.Cell)

	columns := columnsFor(opts.Properties)
	sink, err := newRowSink(opts, columns)
	if err != nil {
		return nil, err
	}
	for _, atom := range c.snap.Atoms {
		if err := sink.emit(atomRow(columns, atom)); err != nil {
			return nil, err
		}
	}
	frag.Data, err = sink.finish()
	if err != nil {
		return nil, err
	}
	applySetup(frag, opts)
	return frag, nil
}

func atomRow(columns []string, atom structure.Atom) Row {
	r := baseRow(columns)
	r["x"] = atom.Position[0]
	r["y"] = atom.Position[1]
	r["z"] = atom.Position[2]
	r[schema.SpeciesColumn] = atom.Species
	return r
}
