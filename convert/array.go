package convert

import (
	"fmt"
	"slices"

	"github.com/electrolens/electrolens/schema"
)

// arrayConverter emits one row per line of a raw 2D numeric array. Arrays
// carry no embedded geometry or species labels, so both must be supplied
// out of band through the options. A species list is not needed when the
// species column is itself one of the declared (numeric) columns.
type arrayConverter struct {
	rows [][]float64
}

func (c *arrayConverter) Convert(opts Options) (*Fragment, error) {
	opts.defaults()
	if opts.Properties == nil {
		return nil, &UnsupportedConversionError{Source: KindArray, Target: FormatMolecular, Reason: "a molecular property schema is required"}
	}

	declared := opts.Properties.Columns()
	hasSpecies := slices.Contains(declared, schema.SpeciesColumn)
	if !hasSpecies && opts.Species == nil {
		return nil, &MissingAuxiliaryDataError{Field: "species labels", Reason: "the schema does not declare an atom column and no species list was supplied"}
	}
	if !hasSpecies && len(opts.Species) != len(c.rows) {
		return nil, &MissingAuxiliaryDataError{Field: "species labels", Reason: fmt.Sprintf("%d labels for %d rows", len(opts.Species), len(c.rows))}
	}
	if opts.Lattice == nil {
		return nil, &MissingAuxiliaryDataError{Field: "lattice", Reason: "raw arrays carry no cell geometry"}
	}
	for i, values := range c.rows {
		if len(values) < len(declared) {
			return nil, &MissingAuxiliaryDataError{Field: "columns", Reason: fmt.Sprintf("row %d has %d values but the schema declares %d columns", i, len(values), len(declared))}
		}
	}

	frag := &Fragment{Target: FormatMolecular}
	frag.SystemDimension, frag.SystemLatticeVectors = geometry(*opts.Lattice)

	columns := columnsFor(opts.Properties)
	sink, err := newRowSink(opts, columns)
	if err != nil {
		return nil, err
	}
	for i, values := range c.rows {
		row := baseRow(columns)
		// Values are looked up positionally: schema column j reads array
		// column j.
		for j, col := range declared {
			row[col] = values[j]
		}
		if !hasSpecies {
			row[schema.SpeciesColumn] = opts.Species[i]
		}
		if err := sink.emit(row); err != nil {
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
