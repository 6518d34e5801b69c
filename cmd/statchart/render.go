package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/statchart/chart"
	"github.com/spektr-org/statchart/gallery"
	"github.com/spektr-org/statchart/helpers"
	"github.com/spektr-org/statchart/server"
	"github.com/spektr-org/statchart/setting"
	"github.com/spektr-org/statchart/surface"
)

type renderOptions struct {
	kind   string
	unit   string
	width  float64
	height float64
	format string
	out    string
	props  bool
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render [input.csv|props.json|-]",
		Short: "Render a CSV table or a chart props document",
		Long: `Render reads CSV (one table per chart) or a JSON props document and writes
the chart as SVG or PNG.

CSV layouts by kind:
  SINGLE_BAR, HISTOGRAM        label,value rows
  LINE, GROUP_BAR, STACK_BAR   header of x labels, one series per row
  GROUP_LINE                   entity,variable,x labels...; one row per pair

--kind auto picks LINE when the header looks like dates or years and
GROUP_BAR otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				o.width = s.Chart.DefaultWidth
			}
			if !cmd.Flags().Changed("height") {
				o.height = s.Chart.DefaultHeight
			}
			if !cmd.Flags().Changed("props") {
				o.props = strings.EqualFold(filepath.Ext(args[0]), ".json")
			}

			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			scene, err := renderInput(data, inputID(args[0]), o, s)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := gallery.Encode(&buf, scene, o.format); err != nil {
				return err
			}
			if o.out == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(o.out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.kind, "kind", "auto", "Chart kind: auto, LINE, SINGLE_BAR, GROUP_BAR, STACK_BAR, GROUP_LINE, HISTOGRAM")
	f.StringVar(&o.unit, "unit", "", `Value unit: "", "%" or "$"`)
	f.Float64Var(&o.width, "width", 350, "Chart width in pixels")
	f.Float64Var(&o.height, "height", 300, "Chart height in pixels")
	f.StringVarP(&o.format, "format", "f", gallery.FormatSVG, "Output format: svg or png")
	f.StringVarP(&o.out, "out", "o", "", "Output file (default: stdout)")
	f.BoolVar(&o.props, "props", false, "Treat the input as a JSON props document (default: by .json extension)")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return data, nil
}

func inputID(path string) string {
	if path == "-" {
		return "stdin"
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// renderInput parses data and mounts it into a fresh container.
func renderInput(data []byte, id string, o renderOptions, s *setting.Settings) (surface.Scene, error) {
	opts := server.ChartOptions(s.Chart, nil)
	c := surface.NewContainer(id, 0)

	if o.props {
		props, err := chart.ParseProps(data)
		if err != nil {
			return surface.Scene{}, err
		}
		if props.ID == "" {
			props.ID = id
		}
		if props.Width == 0 {
			props.Width = o.width
		}
		if props.Height == 0 {
			props.Height = o.height
		}
		if err := chart.MountProps(c, props, opts...); err != nil {
			return surface.Scene{}, err
		}
		return c.Scene(), nil
	}

	unit, err := chart.ParseUnit(o.unit)
	if err != nil {
		return surface.Scene{}, err
	}
	payload, err := csvPayload(data, o.kind)
	if err != nil {
		return surface.Scene{}, err
	}
	spec := chart.Spec{ID: id, Width: o.width, Height: o.height, Unit: unit, Payload: payload}
	if err := chart.Mount(c, spec, opts...); err != nil {
		return surface.Scene{}, err
	}
	return c.Scene(), nil
}

func csvPayload(data []byte, kindFlag string) (chart.Payload, error) {
	var kind chart.Kind
	if strings.EqualFold(kindFlag, "auto") {
		labels, err := helpers.XLabels(data)
		if err != nil {
			return nil, err
		}
		kind = helpers.SuggestKind(labels)
	} else {
		var err error
		if kind, err = chart.ParseKind(strings.ToUpper(kindFlag)); err != nil {
			return nil, err
		}
	}

	switch kind {
	case chart.KindSingleBar, chart.KindHistogram:
		points, err := helpers.ParsePoints(data)
		if err != nil {
			return nil, err
		}
		if kind == chart.KindHistogram {
			return chart.HistogramData{Points: points}, nil
		}
		return chart.SingleBarData{Points: points}, nil
	case chart.KindGroupLine:
		groups, err := helpers.ParseGroupsByEntity(data)
		if err != nil {
			return nil, err
		}
		return chart.GroupLineData{Groups: groups}, nil
	default:
		groups, err := helpers.ParseGroups(data)
		if err != nil {
			return nil, err
		}
		switch kind {
		case chart.KindLine:
			return chart.LineData{Groups: groups}, nil
		case chart.KindStackBar:
			return chart.StackBarData{Groups: groups}, nil
		default:
			return chart.GroupBarData{Groups: groups}, nil
		}
	}
}
