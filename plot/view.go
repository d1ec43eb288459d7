package plot

import (
	"fmt"
	"os"

	"github.com/electrolens/electrolens/convert"
	"github.com/electrolens/electrolens/schema"
	"github.com/electrolens/electrolens/structure"
)

// View produces one entry of the document's views list plus its plotSetup
// contribution. Implementations live in this package: ThreeDView and
// TwoDHeatmap.
type View interface {
	configuration(p *Plot) (ViewConfig, schema.PlotSetup, error)
}

// MolecularData is one per-atom data source for a 3D view. Data is a
// *structure.Snapshot, a structure.Trajectory, a [][]float64 array or a
// file path.
type MolecularData struct {
	Data any

	// Species and Lattice supply the side data an array input cannot carry
	// itself.
	Species []string
	Lattice *structure.Lattice

	// OutputFile externalizes the rows to this CSV path instead of inlining
	// them. There is no automatic spill threshold: callers whose row counts
	// exceed their memory budget opt in here.
	OutputFile string
}

// SpatiallyResolvedData is one volumetric data source for a 3D view. Data is
// a file path. Grid metadata is optional and the two fields are independent.
type SpatiallyResolvedData struct {
	Data any

	GridPoints  *[3]int
	GridSpacing *[3]float64

	OutputFile string
}

// ThreeDView aggregates at most one molecular and one spatially resolved
// data source under shared spatial metadata.
type ThreeDView struct {
	name      string
	dimension *convert.Vec3
	vectors   *convert.Mat3
	molecular *MolecularData
	spatial   *SpatiallyResolvedData
}

// ThreeDViewOption configures a ThreeDView at construction.
type ThreeDViewOption func(*ThreeDView)

// WithSystemDimension fixes the view's systemDimension block. It wins over
// any geometry derived from the data.
func WithSystemDimension(x, y, z float64) ThreeDViewOption {
	return func(v *ThreeDView) {
		v.dimension = &convert.Vec3{X: x, Y: y, Z: z}
	}
}

// WithSystemLatticeVectors fixes the view's systemLatticeVectors block from
// a 3x3 matrix of row vectors. It wins over any geometry derived from the
// data.
func WithSystemLatticeVectors(m [3][3]float64) ThreeDViewOption {
	return func(v *ThreeDView) {
		v.vectors = &convert.Mat3{
			U11: m[0][0], U12: m[0][1], U13: m[0][2],
			U21: m[1][0], U22: m[1][1], U23: m[1][2],
			U31: m[2][0], U32: m[2][1], U33: m[2][2],
		}
	}
}

// NewThreeDView builds a 3D view for the named molecule/system.
func NewThreeDView(name string, opts ...ThreeDViewOption) *ThreeDView {
	v := &ThreeDView{name: name}
	for _, o := range opts {
		o(v)
	}
	return v
}

// SetMolecularData attaches the view's molecular data source.
func (v *ThreeDView) SetMolecularData(d MolecularData) error {
	if err := checkOutputFile(d.Data, d.OutputFile); err != nil {
		return err
	}
	v.molecular = &d
	return nil
}

// SetSpatiallyResolvedData attaches the view's spatially resolved data
// source.
func (v *ThreeDView) SetSpatiallyResolvedData(d SpatiallyResolvedData) error {
	if err := checkOutputFile(d.Data, d.OutputFile); err != nil {
		return err
	}
	v.spatial = &d
	return nil
}

func checkOutputFile(data any, outputFile string) error {
	if _, isPath := data.(string); isPath && outputFile != "" {
		return &InvalidOperationError{Op: "set data", Reason: "an output file is not supported when the input is already a file"}
	}
	return nil
}

// configuration builds the view's ViewConfig by converting each attached
// source and merging the fragments. It never mutates the view, so repeated
// calls are safe and deterministic.
func (v *ThreeDView) configuration(p *Plot) (ViewConfig, schema.PlotSetup, error) {
	cfg := ViewConfig{
		ViewType:             "3DView",
		MoleculeName:         v.name,
		SystemDimension:      v.dimension,
		SystemLatticeVectors: v.vectors,
	}
	var setup schema.PlotSetup

	if p.spatial != nil {
		if v.spatial == nil {
			return cfg, setup, &InvalidOperationError{Op: "build view " + v.name, Reason: "the plot declares a spatially resolved schema but the view has no spatially resolved data"}
		}
		frag, err := convertSource(v.spatial.Data, convert.FormatSpatiallyResolved, convert.Options{
			Properties: p.spatial,
			Framed:     p.framed,
			Logger:     p.logger,
		}, v.spatial.OutputFile)
		if err != nil {
			return cfg, setup, err
		}
		block := *frag.Data
		if gp := v.spatial.GridPoints; gp != nil {
			block.NumGridPoints = &convert.Vec3{X: float64(gp[0]), Y: float64(gp[1]), Z: float64(gp[2])}
		}
		if gs := v.spatial.GridSpacing; gs != nil {
			block.GridSpacing = &convert.Vec3{X: gs[0], Y: gs[1], Z: gs[2]}
		}
		cfg.SpatiallyResolvedData = &block
		v.mergeGeometry(&cfg, frag, p)
		setup = setup.Merge(frag.Setup)
	}

	if p.molecular != nil {
		if v.molecular == nil {
			return cfg, setup, &InvalidOperationError{Op: "build view " + v.name, Reason: "the plot declares a molecular schema but the view has no molecular data"}
		}
		frag, err := convertSource(v.molecular.Data, convert.FormatMolecular, convert.Options{
			Properties: p.molecular,
			Framed:     p.framed,
			Species:    v.molecular.Species,
			Lattice:    v.molecular.Lattice,
			Logger:     p.logger,
		}, v.molecular.OutputFile)
		if err != nil {
			return cfg, setup, err
		}
		cfg.MoleculeData = frag.Data
		v.mergeGeometry(&cfg, frag, p)
		setup = setup.Merge(frag.Setup)
	}

	// Default geometry only when neither the caller nor a converter
	// supplied one.
	if cfg.SystemDimension == nil {
		cfg.SystemDimension = &convert.Vec3{X: 10, Y: 10, Z: 10}
	}
	if cfg.SystemLatticeVectors == nil {
		cfg.SystemLatticeVectors = &convert.Mat3{U11: 1, U22: 1, U33: 1}
	}

	return cfg, setup, nil
}

// mergeGeometry applies a fragment's derived geometry to the view config.
// Geometry already present wins and the fragment's is discarded with a
// warning, so explicit user overrides always beat computed defaults.
func (v *ThreeDView) mergeGeometry(cfg *ViewConfig, frag *convert.Fragment, p *Plot) {
	if frag.SystemDimension != nil {
		if cfg.SystemDimension != nil {
			p.logger.Warn("system dimensions are overridden by earlier values", "view", v.name)
		} else {
			cfg.SystemDimension = frag.SystemDimension
		}
	}
	if frag.SystemLatticeVectors != nil {
		if cfg.SystemLatticeVectors != nil {
			p.logger.Warn("system lattice vectors are overridden by earlier values", "view", v.name)
		} else {
			cfg.SystemLatticeVectors = frag.SystemLatticeVectors
		}
	}
}

// convertSource runs one conversion, opening and closing the externalization
// file around it when one was requested. The file is closed on every exit
// path before control returns.
func convertSource(data any, target convert.Format, opts convert.Options, outputFile string) (*convert.Fragment, error) {
	conv, err := convert.New(data, target)
	if err != nil {
		return nil, err
	}
	if outputFile == "" {
		return conv.Convert(opts)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("plot: create data file %s: %w", outputFile, err)
	}
	opts.Output = f
	frag, err := conv.Convert(opts)
	if cerr := f.Close(); cerr != nil && err == nil {
		return nil, fmt.Errorf("plot: close data file %s: %w", outputFile, cerr)
	}
	if err != nil {
		return nil, err
	}
	return frag, nil
}

// TwoDHeatmap is a 2D heatmap view over two plotted properties. It carries
// no data sources of its own.
type TwoDHeatmap struct {
	plotX, plotY                   string
	plotXTransform, plotYTransform string
}

// NewTwoDHeatmap builds a 2D heatmap view. Transforms are visualizer-side
// axis transforms such as "linear" or "log".
func NewTwoDHeatmap(plotX, plotY, plotXTransform, plotYTransform string) *TwoDHeatmap {
	return &TwoDHeatmap{plotX: plotX, plotY: plotY, plotXTransform: plotXTransform, plotYTransform: plotYTransform}
}

func (v *TwoDHeatmap) configuration(*Plot) (ViewConfig, schema.PlotSetup, error) {
	return ViewConfig{
		ViewType:       "2DHeatmap",
		PlotX:          v.plotX,
		PlotY:          v.plotY,
		PlotXTransform: v.plotXTransform,
		PlotYTransform: v.plotYTransform,
	}, schema.PlotSetup{}, nil
}
