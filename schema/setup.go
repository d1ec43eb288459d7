package schema

import "slices"

// PlotSetup is the plotSetup node of the configuration document. Each schema
// contributes its fields through AddPlotSetup; fragments from several views
// are combined with Merge.
type PlotSetup struct {
	MoleculePropertyList          []string `json:"moleculePropertyList,omitempty"`
	FrameProperty                 string   `json:"frameProperty,omitempty"`
	SpatiallyResolvedPropertyList []string `json:"spatiallyResolvedPropertyList,omitempty"`
	PointcloudDensity             string   `json:"pointcloudDensity,omitempty"`
	DensityCutoffLow              *float64 `json:"densityCutoffLow,omitempty"`
	DensityCutoffUp               *float64 `json:"densityCutoffUp,omitempty"`
}

// Merge overlays other onto s and returns the result. Fields set in other
// win; unset fields keep s's value.
func (s PlotSetup) Merge(other PlotSetup) PlotSetup {
	out := s
	if other.MoleculePropertyList != nil {
		out.MoleculePropertyList = slices.Clone(other.MoleculePropertyList)
	}
	if other.FrameProperty != "" {
		out.FrameProperty = other.FrameProperty
	}
	if other.SpatiallyResolvedPropertyList != nil {
		out.SpatiallyResolvedPropertyList = slices.Clone(other.SpatiallyResolvedPropertyList)
	}
	if other.PointcloudDensity != "" {
		out.PointcloudDensity = other.PointcloudDensity
	}
	if other.DensityCutoffLow != nil {
		v := *other.DensityCutoffLow
		out.DensityCutoffLow = &v
	}
	if other.DensityCutoffUp != nil {
		v := *other.DensityCutoffUp
		out.DensityCutoffUp = &v
	}
	return out
}
