package chart

import (
	"fmt"
	"math"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// PANEL LAYOUT — Margins, scales and axes for one plot area
// ============================================================================
// Layout order matters: the left margin depends on the widest y tick label,
// the x step depends on the left margin, label wrapping depends on the step,
// and the bottom margin depends on the wrapped line count.
// ============================================================================

const (
	tickPad     = 6
	marginTop   = 10
	marginRight = 10
	shortPlot   = 100

	gridColor     = "#e6e6e6"
	axisColor     = "#999999"
	tickTextColor = "#666666"
)

type box struct {
	x, y, w, h float64
}

type axisMode int

const (
	bandAxis axisMode = iota
	pointAxis
)

// panel is a laid-out plot area with its scales.
type panel struct {
	left, right float64
	top, bottom float64
	y           linearScale
	yTicks      []float64
	tickLabels  []string
	x           bandScale
	labels      [][]string
	unit        Unit
}

func checkSize(width, height float64) error {
	if !(width > 0) || math.IsInf(width, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidWidth, width)
	}
	if !(height > 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidHeight, height)
	}
	return nil
}

// tickCount picks the y tick target for a plot of the given height.
func (c *config) tickCount(boxHeight float64) int {
	if c.TickCount > 0 {
		return c.TickCount
	}
	// assume one line of x labels until the real layout is known
	plot := boxHeight - marginTop - tickPad - c.lineHeight()
	if plot < shortPlot {
		return 3
	}
	return 5
}

// layoutPanel fits a plot into b. minLines reserves room for at least that
// many x label lines so neighbouring panels can share one y scale.
func layoutPanel(cfg *config, b box, labels []string, d0, d1 float64, yTicks []float64, unit Unit, mode axisMode, minLines int) panel {
	tickLabels := FormatTicks(yTicks, unit)

	p := panel{yTicks: yTicks, tickLabels: tickLabels, unit: unit}
	p.left = b.x + widest(tickLabels, cfg.FontSize) + tickPad + 4
	p.right = b.x + b.w - marginRight
	if p.right-p.left < 1 {
		p.right = p.left + 1
	}

	if mode == pointAxis {
		p.x = newPoint(len(labels), p.left, p.right)
	} else {
		p.x = newBand(len(labels), p.left, p.right, 0.2, 0.1)
	}

	labelWidth := math.Max(p.x.step-4, cfg.FontSize)
	p.labels = make([][]string, len(labels))
	for i, l := range labels {
		p.labels[i] = wrapLabel(l, labelWidth, cfg.FontSize)
	}
	lines := maxLines(p.labels)
	if minLines > lines {
		lines = minLines
	}

	p.top = b.y + marginTop
	p.bottom = b.y + b.h - (tickPad + float64(lines)*cfg.lineHeight() + 2)
	if p.bottom < p.top+1 {
		p.bottom = p.top + 1
	}
	p.y = newLinear(d0, d1, p.bottom, p.top)
	return p
}

// labelLines is the wrapped line count layoutPanel would reserve.
func (p panel) labelLines() int {
	return maxLines(p.labels)
}

func (p panel) drawYAxis(s *surface.Scene, cfg *config) {
	for i, t := range p.yTicks {
		y := p.y.At(t)
		s.Add(
			surface.Line{
				Meta:  surface.Meta{Class: "grid"},
				Style: surface.Style{Stroke: gridColor},
				X1:    p.left, Y1: y, X2: p.right, Y2: y,
			},
			surface.Text{
				Meta:     surface.Meta{Class: "y-tick"},
				X:        p.left - tickPad,
				Y:        y + cfg.FontSize/3,
				Lines:    []string{p.tickLabels[i]},
				FontSize: cfg.FontSize,
				Anchor:   surface.AnchorEnd,
				Fill:     tickTextColor,
			},
		)
	}
}

func (p panel) drawXLabels(s *surface.Scene, cfg *config) {
	for i, lines := range p.labels {
		s.Add(surface.Text{
			Meta:       surface.Meta{Class: "x-tick"},
			X:          p.x.Center(i),
			Y:          p.bottom + tickPad + cfg.FontSize*0.8,
			Lines:      lines,
			FontSize:   cfg.FontSize,
			LineHeight: cfg.lineHeight(),
			Anchor:     surface.AnchorMiddle,
		})
	}
}

// drawBaseline marks y = 0, the shared origin of every bar.
func (p panel) drawBaseline(s *surface.Scene) {
	y := p.y.At(0)
	if y < p.top-0.5 || y > p.bottom+0.5 {
		return
	}
	s.Add(surface.Line{
		Meta:  surface.Meta{Class: "baseline"},
		Style: surface.Style{Stroke: axisColor},
		X1:    p.left, Y1: y, X2: p.right, Y2: y,
	})
}

func (p panel) drawXAxis(s *surface.Scene) {
	s.Add(surface.Line{
		Meta:  surface.Meta{Class: "x-axis"},
		Style: surface.Style{Stroke: axisColor},
		X1:    p.left, Y1: p.bottom, X2: p.right, Y2: p.bottom,
	})
}

// bar builds a rect between two data values within horizontal slot [x, x+w].
func (p panel) bar(meta surface.Meta, color string, x, w, from, to float64) surface.Rect {
	y0, y1 := p.y.At(from), p.y.At(to)
	return surface.Rect{
		Meta:  meta,
		Style: surface.Style{Fill: color},
		X:     x,
		Y:     math.Min(y0, y1),
		W:     w,
		H:     math.Abs(y1 - y0),
	}
}
