// Command electrolens builds visualizer configuration documents from a YAML
// manifest and either renders them in the embedded browser window or saves
// them as JSON.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/electrolens/electrolens/plot"
	"github.com/electrolens/electrolens/shell"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("electrolens", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	var devtools bool

	root := &cobra.Command{
		Use:           "electrolens",
		Short:         "Convert simulation data into visualizer configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			var lvl slog.Level
			switch logLevel {
			case "debug":
				lvl = slog.LevelDebug
			case "warn":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			default:
				lvl = slog.LevelInfo
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&devtools, "devtools", false, "open the developer inspector panel")

	show := &cobra.Command{
		Use:   "show <manifest.yaml>",
		Short: "Build the plot and render it in the embedded browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPlot(args[0])
			if err != nil {
				return err
			}
			sh := shell.New(shell.Config{DevTools: devtools, Logger: slog.Default()})
			return p.Show(cmd.Context(), sh)
		},
	}

	var output string
	save := &cobra.Command{
		Use:   "save <manifest.yaml>",
		Short: "Build the plot and save the configuration document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPlot(args[0])
			if err != nil {
				return err
			}
			return p.Save(output)
		},
	}
	save.Flags().StringVarP(&output, "output", "o", "configuration.json", "output JSON path")

	root.AddCommand(show, save)
	return root
}

func buildPlot(manifestPath string) (*plot.Plot, error) {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	return m.BuildPlot(slog.Default())
}
