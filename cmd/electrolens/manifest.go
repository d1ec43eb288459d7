package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/electrolens/electrolens/plot"
	"github.com/electrolens/electrolens/schema"
	"github.com/electrolens/electrolens/structure"
)

// Manifest is the YAML description of a plot: the property schemas, the
// views and their data sources, or a pre-built configuration file to replay.
type Manifest struct {
	Properties struct {
		Molecular *struct {
			Columns []string `yaml:"columns"`
		} `yaml:"molecular"`
		SpatiallyResolved *struct {
			Columns    []string `yaml:"columns"`
			Density    string   `yaml:"density"`
			CutoffLow  float64  `yaml:"cutoff_low"`
			CutoffHigh float64  `yaml:"cutoff_high"`
		} `yaml:"spatially_resolved"`
		Frame string `yaml:"frame"`
	} `yaml:"properties"`

	// ConfigFile replays a pre-built document; views and properties must be
	// absent in that case.
	ConfigFile string `yaml:"config_file"`

	Views []ViewManifest `yaml:"views"`
}

// ViewManifest describes one view.
type ViewManifest struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // "3DView" (default) or "2DHeatmap"

	Dimensions     *[3]float64    `yaml:"dimensions"`
	LatticeVectors *[3][3]float64 `yaml:"lattice_vectors"`

	Molecular         *MolecularSource `yaml:"molecular"`
	SpatiallyResolved *SpatialSource   `yaml:"spatially_resolved"`

	PlotX          string `yaml:"plot_x"`
	PlotY          string `yaml:"plot_y"`
	PlotXTransform string `yaml:"plot_x_transform"`
	PlotYTransform string `yaml:"plot_y_transform"`
}

// MolecularSource describes a molecular data input: an XYZ file to parse or
// a ready-made data file to reference.
type MolecularSource struct {
	XYZ        string `yaml:"xyz"`
	File       string `yaml:"file"`
	Trajectory bool   `yaml:"trajectory"` // all XYZ frames instead of frame 0
	Output     string `yaml:"output"`     // externalize rows to this CSV path
}

// SpatialSource describes a spatially resolved data input.
type SpatialSource struct {
	File        string      `yaml:"file"`
	GridPoints  *[3]int     `yaml:"grid_points"`
	GridSpacing *[3]float64 `yaml:"grid_spacing"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// BuildPlot turns the manifest into a fully wired Plot.
func (m *Manifest) BuildPlot(logger *slog.Logger) (*plot.Plot, error) {
	cfg := plot.Config{ConfigFile: m.ConfigFile, Logger: logger}

	if m.Properties.Molecular != nil {
		s, err := schema.NewMolecular(m.Properties.Molecular.Columns)
		if err != nil {
			return nil, err
		}
		cfg.Molecular = s
	}
	if sr := m.Properties.SpatiallyResolved; sr != nil {
		s, err := schema.NewSpatiallyResolved(sr.Columns, sr.Density, sr.CutoffLow, sr.CutoffHigh)
		if err != nil {
			return nil, err
		}
		cfg.SpatiallyResolved = s
	}
	if m.Properties.Frame != "" {
		cfg.Framed = schema.NewFramed(m.Properties.Frame)
	}

	p, err := plot.New(cfg)
	if err != nil {
		return nil, err
	}
	for i := range m.Views {
		v, err := m.Views[i].build()
		if err != nil {
			return nil, fmt.Errorf("view %d: %w", i, err)
		}
		if err := p.AddView(v); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (vm *ViewManifest) build() (plot.View, error) {
	if vm.Type == "2DHeatmap" {
		return plot.NewTwoDHeatmap(vm.PlotX, vm.PlotY, vm.PlotXTransform, vm.PlotYTransform), nil
	}

	var opts []plot.ThreeDViewOption
	if d := vm.Dimensions; d != nil {
		opts = append(opts, plot.WithSystemDimension(d[0], d[1], d[2]))
	}
	if lv := vm.LatticeVectors; lv != nil {
		opts = append(opts, plot.WithSystemLatticeVectors(*lv))
	}
	view := plot.NewThreeDView(vm.Name, opts...)

	if src := vm.Molecular; src != nil {
		data, err := src.data()
		if err != nil {
			return nil, err
		}
		if err := view.SetMolecularData(plot.MolecularData{Data: data, OutputFile: src.Output}); err != nil {
			return nil, err
		}
	}
	if src := vm.SpatiallyResolved; src != nil {
		if src.File == "" {
			return nil, fmt.Errorf("spatially resolved source needs a file")
		}
		if err := view.SetSpatiallyResolvedData(plot.SpatiallyResolvedData{
			Data:        src.File,
			GridPoints:  src.GridPoints,
			GridSpacing: src.GridSpacing,
		}); err != nil {
			return nil, err
		}
	}
	return view, nil
}

func (src *MolecularSource) data() (any, error) {
	switch {
	case src.XYZ != "":
		traj, err := structure.ReadXYZ(src.XYZ)
		if err != nil {
			return nil, err
		}
		if src.Trajectory {
			return traj, nil
		}
		return traj[0], nil
	case src.File != "":
		return src.File, nil
	}
	return nil, fmt.Errorf("molecular source needs an xyz or file entry")
}
