package main

import (
	"github.com/spf13/cobra"

	"github.com/spektr-org/statchart/gallery"
	"github.com/spektr-org/statchart/server"
)

func newGalleryCmd() *cobra.Command {
	var dir, format string
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Write every sample chart and an index.html to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			return gallery.Export(dir, format, server.ChartOptions(s.Chart, nil)...)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "gallery", "Output directory")
	cmd.Flags().StringVarP(&format, "format", "f", gallery.FormatSVG, "Chart format: svg or png")
	return cmd
}
