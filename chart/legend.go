package chart

import (
	"math"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// LEGEND — Flow layout under the plot
// ============================================================================

const (
	legendSwatch = 14
	legendGap    = 12
	legendPad    = 6
)

type legendItem struct {
	label  string
	series string
	style  Style
}

type legendSlot struct {
	item  legendItem
	x, y  float64
	lines []string
}

// layoutLegend places items left to right, wrapping rows at width. It
// returns slot positions relative to the legend origin and the total height
// to reserve, including the gap above the legend.
func layoutLegend(items []legendItem, width float64, cfg *config) ([]legendSlot, float64) {
	if len(items) == 0 {
		return nil, 0
	}
	lh := cfg.lineHeight()
	textMax := math.Max(width-legendSwatch-4, cfg.FontSize)

	var slots []legendSlot
	var x, y float64
	rowH := lh
	for _, it := range items {
		lines := wrapLabel(it.label, textMax, cfg.FontSize)
		w := legendSwatch + 4 + widest(lines, cfg.FontSize)
		if x > 0 && x+w > width {
			y += rowH + 4
			x = 0
			rowH = lh
		}
		slots = append(slots, legendSlot{item: it, x: x, y: y, lines: lines})
		x += w + legendGap
		rowH = math.Max(rowH, float64(len(lines))*lh)
	}
	return slots, legendPad + y + rowH + legendPad
}

// drawLegend renders slots at origin (x0, y0). Line legends use a stroked
// swatch so dash patterns show.
func drawLegend(s *surface.Scene, slots []legendSlot, x0, y0 float64, asLine bool, cfg *config) {
	for _, sl := range slots {
		x := x0 + sl.x
		y := y0 + legendPad + sl.y
		mid := y + cfg.FontSize/2
		meta := surface.Meta{Class: "legend-swatch", Series: sl.item.series}
		if asLine {
			s.Add(surface.Line{
				Meta:  meta,
				Style: surface.Style{Stroke: sl.item.style.Color, StrokeWidth: 2, Dash: sl.item.style.Dash},
				X1:    x, Y1: mid, X2: x + legendSwatch, Y2: mid,
			})
		} else {
			s.Add(surface.Rect{
				Meta:  meta,
				Style: surface.Style{Fill: sl.item.style.Color},
				X:     x + 2, Y: mid - 5, W: 10, H: 10,
			})
		}
		s.Add(surface.Text{
			Meta:       surface.Meta{Class: "legend", Series: sl.item.series},
			X:          x + legendSwatch + 4,
			Y:          y + cfg.FontSize*0.85,
			Lines:      sl.lines,
			FontSize:   cfg.FontSize,
			LineHeight: cfg.lineHeight(),
		})
	}
}
