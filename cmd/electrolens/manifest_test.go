package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/electrolens/electrolens/plot"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildPlotFromManifest(t *testing.T) {
	dir := t.TempDir()
	xyz := writeFile(t, dir, "system.xyz", `2
Lattice="2 0 0 0 2 0 0 0 2"
Fe 0 0 0
Cu 1 1 1
`)
	manifest := writeFile(t, dir, "plot.yaml", `
properties:
  molecular:
    columns: [x, y, z, atom]
views:
  - name: mysystem
    molecular:
      xyz: `+xyz+`
  - type: 2DHeatmap
    plot_x: x
    plot_y: y
    plot_x_transform: linear
    plot_y_transform: linear
`)

	m, err := LoadManifest(manifest)
	if err != nil {
		t.Fatal(err)
	}
	p, err := m.BuildPlot(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}

	doc, err := p.Configuration()
	if err != nil {
		t.Fatal(err)
	}
	d := doc.(*plot.Document)
	if len(d.Views) != 2 {
		t.Fatalf("got %d views, want 2", len(d.Views))
	}
	if d.Views[0].MoleculeName != "mysystem" || len(d.Views[0].MoleculeData.Data) != 2 {
		t.Errorf("view 0 = %+v", d.Views[0])
	}
	if d.Views[0].SystemDimension.X != 2 {
		t.Errorf("systemDimension = %+v", d.Views[0].SystemDimension)
	}
	if d.Views[1].ViewType != "2DHeatmap" {
		t.Errorf("view 1 type = %q", d.Views[1].ViewType)
	}
}

func TestBuildPlotTrajectoryManifest(t *testing.T) {
	dir := t.TempDir()
	xyz := writeFile(t, dir, "traj.xyz", `1
Lattice="1 0 0 0 1 0 0 0 1"
H 0 0 0
1
Lattice="1 0 0 0 1 0 0 0 1"
H 0 0 1
`)
	manifest := writeFile(t, dir, "plot.yaml", `
properties:
  molecular:
    columns: [x, y, z, frame]
  frame: frame
views:
  - name: md
    molecular:
      xyz: `+xyz+`
      trajectory: true
`)

	m, err := LoadManifest(manifest)
	if err != nil {
		t.Fatal(err)
	}
	p, err := m.BuildPlot(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := p.Configuration()
	if err != nil {
		t.Fatal(err)
	}
	d := doc.(*plot.Document)
	rows := d.Views[0].MoleculeData.Data
	if len(rows) != 2 || rows[1]["frame"] != 1 {
		t.Errorf("rows = %v", rows)
	}
	if d.PlotSetup.FrameProperty != "frame" {
		t.Errorf("frameProperty = %q", d.PlotSetup.FrameProperty)
	}
}

func TestBuildPlotReplayManifest(t *testing.T) {
	dir := t.TempDir()
	docPath := writeFile(t, dir, "doc.json", `{"views": [{"viewType": "3DView"}], "plotSetup": {}}`)
	manifest := writeFile(t, dir, "plot.yaml", "config_file: "+docPath+"\n")

	m, err := LoadManifest(manifest)
	if err != nil {
		t.Fatal(err)
	}
	p, err := m.BuildPlot(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := p.Configuration()
	if err != nil {
		t.Fatal(err)
	}
	views := doc.(map[string]any)["views"].([]any)
	if len(views) != 1 {
		t.Errorf("replayed views = %v", views)
	}
}

func TestBuildPlotManifestErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"no schema", "views:\n  - name: a\n"},
		{"molecular source empty", `
properties:
  molecular: {}
views:
  - name: a
    molecular: {}
`},
		{"bad spatial schema", `
properties:
  spatially_resolved:
    columns: [x, y, z]
    density: rho
`},
	}
	for _, tt := range tests {
		path := writeFile(t, dir, "m.yaml", tt.content)
		m, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if _, err := m.BuildPlot(slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
