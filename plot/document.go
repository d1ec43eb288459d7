package plot

import (
	"github.com/electrolens/electrolens/convert"
	"github.com/electrolens/electrolens/schema"
)

// ViewConfig is one entry of the document's views list. 3D views fill the
// geometry and data fields; 2D heatmaps fill the plot axis fields.
type ViewConfig struct {
	ViewType     string `json:"viewType"`
	MoleculeName string `json:"moleculeName,omitempty"`

	SystemDimension      *convert.Vec3 `json:"systemDimension,omitempty"`
	SystemLatticeVectors *convert.Mat3 `json:"systemLatticeVectors,omitempty"`

	MoleculeData          *convert.DataBlock `json:"moleculeData,omitempty"`
	SpatiallyResolvedData *convert.DataBlock `json:"spatiallyResolvedData,omitempty"`

	PlotX          string `json:"plotX,omitempty"`
	PlotY          string `json:"plotY,omitempty"`
	PlotXTransform string `json:"plotXTransform,omitempty"`
	PlotYTransform string `json:"plotYTransform,omitempty"`
}

// Document is the configuration handed to the render shell or written to
// disk. Views is non-empty for programmatically built documents; documents
// replayed from a configuration file bypass this type entirely and are kept
// verbatim.
type Document struct {
	Views     []ViewConfig     `json:"views"`
	PlotSetup schema.PlotSetup `json:"plotSetup"`
}
