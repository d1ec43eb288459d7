// Package schema declares, per data kind, the ordered list of named
// properties a plot exposes, and validates those declarations before any
// conversion runs.
//
// Three kinds exist: Molecular for per-atom data, SpatiallyResolved for
// volumetric/grid data with a designated density column, and Framed for
// trajectory data with a frame-index column. Schemas are immutable once
// constructed; each contributes its fragment of the document's plotSetup
// node.
package schema

import "slices"

// SpeciesColumn is the column that carries the species label. It is appended
// to property lists and data rows automatically when not declared.
const SpeciesColumn = "atom"

// DefaultDensityProperty and the default clamp bounds mirror the visualizer's
// point cloud defaults.
const (
	DefaultDensityProperty = "rho"
	DefaultDensityLow      = 1e-3
	DefaultDensityUp       = 1e6
)

var requiredColumns = []string{"x", "y", "z"}

// Properties is the common surface of Molecular and SpatiallyResolved
// schemas: an ordered column list plus a plotSetup contribution.
type Properties interface {
	// Columns returns a copy of the declared column list.
	Columns() []string

	// AddPlotSetup writes this schema's plotSetup fragment into setup.
	// Merging is additive by key; the last applied schema wins on
	// collisions.
	AddPlotSetup(setup *PlotSetup)
}

// Molecular declares the columns of per-atom molecular data.
type Molecular struct {
	columns []string
}

// NewMolecular validates the column list and builds a molecular schema.
// A nil list synthesizes the default {x, y, z}. The list must be unique and
// contain x, y and z.
func NewMolecular(columns []string) (*Molecular, error) {
	cols, err := validateColumns("molecular", columns, "")
	if err != nil {
		return nil, err
	}
	return &Molecular{columns: cols}, nil
}

func (m *Molecular) Columns() []string { return slices.Clone(m.columns) }

func (m *Molecular) AddPlotSetup(setup *PlotSetup) {
	setup.MoleculePropertyList = withSpecies(m.columns)
}

// SpatiallyResolved declares the columns of volumetric data plus the density
// column the point cloud is built from and its clamp bounds.
type SpatiallyResolved struct {
	columns []string
	density string
	low, up float64
}

// NewSpatiallyResolved validates the column list and builds a spatially
// resolved schema. A nil list synthesizes {x, y, z, density}. An empty
// density falls back to DefaultDensityProperty; zero bounds fall back to the
// defaults. The density column must be declared and low must be below up.
func NewSpatiallyResolved(columns []string, density string, low, up float64) (*SpatiallyResolved, error) {
	if density == "" {
		density = DefaultDensityProperty
	}
	if low == 0 && up == 0 {
		low, up = DefaultDensityLow, DefaultDensityUp
	}
	if low >= up {
		return nil, &CutoffOrderError{Low: low, Up: up}
	}
	cols, err := validateColumns("spatially resolved", columns, density)
	if err != nil {
		return nil, err
	}
	return &SpatiallyResolved{columns: cols, density: density, low: low, up: up}, nil
}

func (s *SpatiallyResolved) Columns() []string { return slices.Clone(s.columns) }

// Density returns the density column name and its clamp bounds.
func (s *SpatiallyResolved) Density() (property string, low, up float64) {
	return s.density, s.low, s.up
}

func (s *SpatiallyResolved) AddPlotSetup(setup *PlotSetup) {
	setup.SpatiallyResolvedPropertyList = withSpecies(s.columns)
	setup.PointcloudDensity = s.density
	low, up := s.low, s.up
	setup.DensityCutoffLow = &low
	setup.DensityCutoffUp = &up
}

// Framed declares the column that carries the frame index of trajectory
// rows.
type Framed struct {
	column string
}

// NewFramed builds a framed schema. An empty column name defaults to
// "frame".
func NewFramed(column string) *Framed {
	if column == "" {
		column = "frame"
	}
	return &Framed{column: column}
}

// Column returns the frame column name.
func (f *Framed) Column() string { return f.column }

func (f *Framed) AddPlotSetup(setup *PlotSetup) {
	setup.FrameProperty = f.column
}

// validateColumns applies the shared rules: nil synthesizes the default
// list, columns must be unique, {x,y,z} must be present, and for spatially
// resolved schemas the density column must be listed.
func validateColumns(kind string, columns []string, density string) ([]string, error) {
	if columns == nil {
		cols := slices.Clone(requiredColumns)
		if density != "" {
			cols = append(cols, density)
		}
		return cols, nil
	}
	cols := slices.Clone(columns)
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c] {
			return nil, &DuplicateColumnError{Kind: kind, Column: c}
		}
		seen[c] = true
	}
	var missing []string
	for _, c := range requiredColumns {
		if !seen[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Kind: kind, Missing: missing}
	}
	if density != "" && !seen[density] {
		return nil, &DensityNotListedError{Density: density}
	}
	return cols, nil
}

// withSpecies returns a copy of columns with the species column appended
// exactly once.
func withSpecies(columns []string) []string {
	out := slices.Clone(columns)
	if !slices.Contains(out, SpeciesColumn) {
		out = append(out, SpeciesColumn)
	}
	return out
}
