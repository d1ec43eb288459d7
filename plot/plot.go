// Package plot assembles configuration documents for the browser-based
// visualizer.
//
// A Plot is built in one of two terminal modes, fixed at construction.
// Programmatic mode takes property schemas and accumulates views; each call
// to Configuration freshly converts every view's data and merges the results
// into a document. File-replay mode takes the path of a pre-built document
// and returns it verbatim; adding views is then forbidden.
//
// Plots are not safe for concurrent use: the model is single-owner,
// single-threaded, and no internal locking is performed.
package plot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/electrolens/electrolens/schema"
)

// Config configures a Plot.
type Config struct {
	// Molecular and SpatiallyResolved declare the properties of the data the
	// plot's views carry. At least one is required in programmatic mode.
	Molecular         *schema.Molecular
	SpatiallyResolved *schema.SpatiallyResolved

	// Framed, when set, declares the frame column for trajectory data. The
	// column must be listed by every supplied property schema.
	Framed *schema.Framed

	// ConfigFile switches the plot to file-replay mode: the document is
	// loaded from this path and the schema fields must be left nil.
	ConfigFile string

	// Logger receives conversion and merge warnings. Nil discards them.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Plot is the top-level aggregate: an ordered list of views plus the global
// plot setup, or a replayed configuration file.
type Plot struct {
	molecular  *schema.Molecular
	spatial    *schema.SpatiallyResolved
	framed     *schema.Framed
	configFile string
	logger     *slog.Logger

	views []View
}

// New validates the configuration and builds a Plot.
func New(cfg Config) (*Plot, error) {
	cfg.defaults()

	if cfg.ConfigFile != "" {
		if cfg.Molecular != nil || cfg.SpatiallyResolved != nil || cfg.Framed != nil {
			return nil, &InvalidOperationError{Op: "new", Reason: "property schemas cannot be combined with a configuration file"}
		}
		return &Plot{configFile: cfg.ConfigFile, logger: cfg.Logger}, nil
	}

	if cfg.Molecular == nil && cfg.SpatiallyResolved == nil {
		return nil, &InvalidOperationError{Op: "new", Reason: "either a molecular or a spatially resolved schema is required"}
	}
	if cfg.Framed != nil {
		if cfg.Molecular != nil && !slices.Contains(cfg.Molecular.Columns(), cfg.Framed.Column()) {
			return nil, &FrameColumnError{Column: cfg.Framed.Column(), Schema: "molecular"}
		}
		if cfg.SpatiallyResolved != nil && !slices.Contains(cfg.SpatiallyResolved.Columns(), cfg.Framed.Column()) {
			return nil, &FrameColumnError{Column: cfg.Framed.Column(), Schema: "spatially resolved"}
		}
	}

	return &Plot{
		molecular: cfg.Molecular,
		spatial:   cfg.SpatiallyResolved,
		framed:    cfg.Framed,
		logger:    cfg.Logger,
	}, nil
}

// AddView appends a view. Views are rendered in insertion order.
func (p *Plot) AddView(v View) error {
	if p.configFile != "" {
		return &InvalidOperationError{Op: "add view", Reason: "the plot was constructed from a configuration file"}
	}
	p.views = append(p.views, v)
	return nil
}

// RemoveView removes a previously added view.
func (p *Plot) RemoveView(v View) {
	p.views = slices.DeleteFunc(p.views, func(x View) bool { return x == v })
}

// Configuration builds the document. In programmatic mode the document is
// freshly re-merged from the current views on every call; in file-replay
// mode the configuration file is parsed and returned verbatim.
func (p *Plot) Configuration() (any, error) {
	if p.configFile != "" {
		raw, err := os.ReadFile(p.configFile)
		if err != nil {
			return nil, fmt.Errorf("plot: read configuration file: %w", err)
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("plot: parse configuration file %s: %w", p.configFile, err)
		}
		return doc, nil
	}

	if len(p.views) == 0 {
		return nil, ErrNoViews
	}

	doc := &Document{Views: make([]ViewConfig, 0, len(p.views))}
	for _, v := range p.views {
		cfg, setup, err := v.configuration(p)
		if err != nil {
			return nil, err
		}
		doc.Views = append(doc.Views, cfg)
		doc.PlotSetup = doc.PlotSetup.Merge(setup)
	}
	return doc, nil
}

// Save serializes the document as pretty-printed JSON to path.
func (p *Plot) Save(path string) error {
	doc, err := p.Configuration()
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("plot: encode document: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("plot: write %s: %w", path, err)
	}
	return nil
}

// Renderer displays a finished configuration document. The call blocks
// until the display is closed.
type Renderer interface {
	Render(ctx context.Context, document any) error
}

// Show builds the document and hands it to the renderer.
func (p *Plot) Show(ctx context.Context, r Renderer) error {
	doc, err := p.Configuration()
	if err != nil {
		return err
	}
	return r.Render(ctx, doc)
}
