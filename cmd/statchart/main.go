package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spektr-org/statchart/setting"
)

// ============================================================================
// STATCHART CLI — render charts, export the gallery, run the browser server
// ============================================================================

const version = "0.3.0"

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "statchart",
		Short: "Statistical chart rendering and graph browser",
		Long: `statchart renders bar, line, grouped and histogram charts to SVG or PNG,
and serves the graph browser pages that embed them.

Examples:
  statchart render population.csv --kind SINGLE_BAR --out pop.svg
  statchart render series.csv --kind auto --format png --out series.png
  statchart render chart.json --out chart.svg
  statchart gallery --dir ./gallery
  statchart serve --config app.ini`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to app.ini (optional)")

	root.AddCommand(newRenderCmd(), newGalleryCmd(), newServeCmd(), newVersionCmd())
	return root
}

// loadSettings reads the config and applies [log].
func loadSettings() (*setting.Settings, error) {
	s, err := setting.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := setting.ConfigureLogging(s.Log, os.Stderr); err != nil {
		return nil, err
	}
	return s, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statchart v%s\n", version)
		},
	}
}
