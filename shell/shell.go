// Package shell drives the embedded browser window that displays a
// configuration document.
//
// Render serves the static visualizer page over a loopback HTTP listener,
// launches Chromium through rod, injects the document via the page's
// defineData entry point once loading finishes, and blocks until the user
// closes the window. The core only depends on this single call; everything
// browser-side is behind it.
package shell

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

//go:embed static
var staticFS embed.FS

// Config configures the render shell.
type Config struct {
	// Title is the window/page title. Default: "ElectroLens".
	Title string

	// DevTools opens the developer inspector panel alongside the window.
	DevTools bool

	// Addr is the loopback listen address for the asset server.
	// Default: "127.0.0.1:0" (ephemeral port).
	Addr string

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Title == "" {
		c.Title = "ElectroLens"
	}
	if c.Addr == "" {
		c.Addr = "127.0.0.1:0"
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Shell renders configuration documents in an embedded Chromium window.
type Shell struct {
	cfg Config
}

// New creates a Shell.
func New(cfg Config) *Shell {
	cfg.defaults()
	return &Shell{cfg: cfg}
}

// Render displays the document and blocks until the window is closed or ctx
// is done. The asset server, browser and launcher are released on every
// exit path.
func (s *Shell) Render(ctx context.Context, document any) error {
	raw, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("shell: encode document: %w", err)
	}

	srv, baseURL, err := s.serve(raw)
	if err != nil {
		return err
	}
	defer srv.Close()

	l := launcher.New().Headless(false).Devtools(s.cfg.DevTools)
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("shell: launch browser: %w", err)
	}
	defer l.Cleanup()

	b := rod.New().ControlURL(u).Context(ctx)
	if err := b.Connect(); err != nil {
		return fmt.Errorf("shell: connect browser: %w", err)
	}
	defer b.Close()

	page, err := b.Page(proto.TargetCreateTarget{URL: baseURL})
	if err != nil {
		return fmt.Errorf("shell: open page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("shell: wait load: %w", err)
	}

	// DOM is ready: hand the document to the page.
	if _, err := page.Eval(`t => { document.title = t }`, s.cfg.Title); err != nil {
		s.cfg.Logger.Warn("shell: set title failed", "error", err)
	}
	if _, err := page.Eval(`cfg => window.defineData(cfg)`, document); err != nil {
		return fmt.Errorf("shell: inject document: %w", err)
	}

	s.cfg.Logger.Info("shell: window open", "url", baseURL)

	// Block until the user closes the window.
	targetID := page.TargetID
	wait := b.EachEvent(func(e *proto.TargetTargetDestroyed) bool {
		return e.TargetID == targetID
	})
	wait()

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// serve starts the loopback asset server: the embedded static page at the
// root and the marshaled document at /config.json. Callers close the
// returned server.
func (s *Shell) serve(config []byte) (*http.Server, string, error) {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, "", fmt.Errorf("shell: static assets: %w", err)
	}

	r := chi.NewRouter()
	r.Get("/config.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(config)
	})
	r.Handle("/*", http.FileServer(http.FS(static)))

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return nil, "", fmt.Errorf("shell: listen %s: %w", s.cfg.Addr, err)
	}
	srv := &http.Server{Handler: r}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.cfg.Logger.Error("shell: asset server", "error", err)
		}
	}()
	return srv, fmt.Sprintf("http://%s/", ln.Addr().String()), nil
}
