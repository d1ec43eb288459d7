package convert

import "github.com/electrolens/electrolens/schema"

// Format identifies the target node a conversion feeds in the view
// configuration.
type Format string

const (
	FormatMolecular         Format = "molecular"
	FormatSpatiallyResolved Format = "spatiallyResolved"
)

// Kind identifies the runtime shape of an input.
type Kind string

const (
	KindFile       Kind = "file"
	KindSnapshot   Kind = "snapshot"
	KindTrajectory Kind = "trajectory"
	KindArray      Kind = "array"
)

// Vec3 is an {x,y,z} triple as the visualizer expects it.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Mat3 is a 3x3 matrix keyed u11..u33, used for the systemLatticeVectors
// block.
type Mat3 struct {
	U11 float64 `json:"u11"`
	U12 float64 `json:"u12"`
	U13 float64 `json:"u13"`
	U21 float64 `json:"u21"`
	U22 float64 `json:"u22"`
	U23 float64 `json:"u23"`
	U31 float64 `json:"u31"`
	U32 float64 `json:"u32"`
	U33 float64 `json:"u33"`
}

// Row is one per-entity data record, keyed by column name. Values are
// float64, int (frame index) or string (species label, or "" for a declared
// column the input carries no value for).
type Row map[string]any

// DataBlock is the payload of the moleculeData or spatiallyResolvedData
// node. Data and DataFilename are mutually exclusive: rows are either
// inlined or externalized to a delimited file, never both. The grid fields
// only apply to spatially resolved blocks and are filled by the view layer.
type DataBlock struct {
	Data          []Row  `json:"data,omitempty"`
	DataFilename  string `json:"dataFilename,omitempty"`
	NumGridPoints *Vec3  `json:"numGridPoints,omitempty"`
	GridSpacing   *Vec3  `json:"gridSpacing,omitempty"`
}

// Fragment is the unit produced by one conversion: the view-side pieces plus
// the schema's plotSetup contribution. Fragments are immutable values; the
// caller merges them upward into a view and then a plot.
type Fragment struct {
	// Target selects whether Data belongs under moleculeData or
	// spatiallyResolvedData.
	Target Format

	// SystemDimension and SystemLatticeVectors are derived from the input's
	// lattice. Nil when the input carries no geometry (file inputs).
	SystemDimension      *Vec3
	SystemLatticeVectors *Mat3

	Data *DataBlock

	// Setup is the plotSetup fragment contributed by the schemas used for
	// this conversion.
	Setup schema.PlotSetup
}
