package chart

import (
	"math"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// LINE CHARTS — Single panel and per-entity grid
// ============================================================================
// Lines never force zero into the domain: the signal is the shape of change.
// A null splits a series into runs; no segment crosses it, but its position
// keeps its x tick so series with different gaps stay aligned.
// ============================================================================

// subChartMinWidth is the narrowest grid cell a group line chart will use.
const subChartMinWidth = 160

// DrawLineChart draws one line per group on a shared x axis.
func DrawLineChart(s *surface.Scene, width, height float64, groups []DataGroup, unit Unit, opts ...Option) error {
	cfg := applyOptions(opts)
	if err := checkSize(width, height); err != nil {
		return err
	}
	s.Reset(width, height)

	var slots []legendSlot
	var legendH float64
	if len(groups) > 1 {
		items := make([]legendItem, len(groups))
		for i, g := range groups {
			items[i] = legendItem{label: g.Label, series: g.Label, style: Style{Color: cfg.color(i)}}
		}
		slots, legendH = layoutLegend(items, width-2*marginRight, cfg)
	}
	plot := box{w: width, h: height - legendH}

	lo, hi, ok := groupsExtent(groups)
	d0, d1, yt := valueDomain(lo, hi, ok, false, cfg.tickCount(plot.h))
	p := layoutPanel(cfg, plot, axisLabels(groups), d0, d1, yt, unit, pointAxis, 0)

	p.drawYAxis(s, cfg)
	p.drawXAxis(s)
	for i, g := range groups {
		p.drawSeries(s, g.Label, g.Value, Style{Color: cfg.color(i)})
	}
	p.drawXLabels(s, cfg)
	drawLegend(s, slots, marginRight, plot.h, true, cfg)

	cfg.Log.Debugf("📊 line: %d series, domain [%g, %g]", len(groups), d0, d1)
	return nil
}

// DrawGroupLineChart draws one line sub-chart per entity in a grid. Every
// sub-chart shares one y domain and takes line styles from params, so a
// variable looks the same in each. A nil params is computed from the entity
// order and the first-appearance order of variables.
func DrawGroupLineChart(s *surface.Scene, width, height float64, data GroupsByEntity, titles map[string]string, params *PlotParams, unit Unit, opts ...Option) error {
	cfg := applyOptions(opts)
	if err := checkSize(width, height); err != nil {
		return err
	}
	s.Reset(width, height)

	variables := data.Variables()
	pp := params
	if pp == nil {
		computed := ComputePlotParams(data.Entities(), variables)
		pp = &computed
	}

	var slots []legendSlot
	var legendH float64
	if len(variables) > 1 {
		items := make([]legendItem, len(variables))
		for i, v := range variables {
			st := pp.Style(firstEntityWith(data, v), v)
			label := v
			if t, ok := titles[v]; ok && t != "" {
				label = t
			}
			items[i] = legendItem{label: label, series: v, style: Style{Color: st.Color}}
		}
		slots, legendH = layoutLegend(items, width-2*marginRight, cfg)
	}

	n := len(data)
	if n == 0 {
		plot := box{w: width, h: height - legendH}
		d0, d1, yt := valueDomain(0, 0, false, false, cfg.tickCount(plot.h))
		p := layoutPanel(cfg, plot, nil, d0, d1, yt, unit, pointAxis, 0)
		p.drawYAxis(s, cfg)
		p.drawXAxis(s)
		return nil
	}

	cols := int(math.Min(float64(n), math.Max(1, math.Floor(width/subChartMinWidth))))
	rows := (n + cols - 1) / cols
	cellW := width / float64(cols)
	cellH := (height - legendH) / float64(rows)

	entityTitles := make([][]string, n)
	for i, es := range data {
		entityTitles[i] = wrapLabel(es.Entity, cellW-2*marginRight, cfg.FontSize)
	}
	titleH := float64(maxLines(entityTitles))*cfg.lineHeight() + 4

	lo, hi := math.Inf(1), math.Inf(-1)
	ok := false
	for _, es := range data {
		if l, h, present := groupsExtent(es.Groups); present {
			lo, hi, ok = math.Min(lo, l), math.Max(hi, h), true
		}
	}
	d0, d1, yt := valueDomain(lo, hi, ok, false, cfg.tickCount(cellH-titleH))

	cells := make([]box, n)
	panels := make([]panel, n)
	lines := 0
	for i, es := range data {
		col, row := i%cols, i/cols
		cells[i] = box{x: float64(col) * cellW, y: float64(row) * cellH, w: cellW, h: cellH}
		plot := box{x: cells[i].x, y: cells[i].y + titleH, w: cellW, h: cellH - titleH}
		panels[i] = layoutPanel(cfg, plot, axisLabels(es.Groups), d0, d1, yt, unit, pointAxis, 0)
		if l := panels[i].labelLines(); l > lines {
			lines = l
		}
	}

	for i, es := range data {
		c := cells[i]
		p := panels[i]
		if p.labelLines() < lines {
			plot := box{x: c.x, y: c.y + titleH, w: cellW, h: cellH - titleH}
			p = layoutPanel(cfg, plot, axisLabels(es.Groups), d0, d1, yt, unit, pointAxis, lines)
		}

		s.Add(surface.Text{
			Meta:       surface.Meta{Class: "subchart-title", Series: es.Entity},
			X:          c.x + c.w/2,
			Y:          c.y + cfg.FontSize,
			Lines:      entityTitles[i],
			FontSize:   cfg.FontSize,
			LineHeight: cfg.lineHeight(),
			Anchor:     surface.AnchorMiddle,
		})
		p.drawYAxis(s, cfg)
		p.drawXAxis(s)
		for _, g := range es.Groups {
			p.drawSeries(s, PairKey(es.Entity, g.Label), g.Value, pp.Style(es.Entity, g.Label))
		}
		p.drawXLabels(s, cfg)
	}
	drawLegend(s, slots, marginRight, height-legendH, true, cfg)

	cfg.Log.Debugf("📊 group line: %d entities in %dx%d grid, domain [%g, %g]", n, cols, rows, d0, d1)
	return nil
}

// drawSeries draws the runs of a series as polylines, then a dot on every
// present point so isolated points stay visible.
func (p panel) drawSeries(s *surface.Scene, series string, points []DataPoint, st Style) {
	stroke := surface.Style{Stroke: st.Color, StrokeWidth: 2, Dash: st.Dash}

	var run []surface.Point
	flush := func() {
		if len(run) >= 2 {
			s.Add(surface.Polyline{
				Meta:   surface.Meta{Class: "line", Series: series},
				Style:  stroke,
				Points: run,
			})
		}
		run = nil
	}
	for i, pt := range points {
		v, present := pt.Value.Get()
		if !present {
			flush()
			continue
		}
		run = append(run, surface.Point{X: p.x.At(i), Y: p.y.At(v)})
	}
	flush()

	for i, pt := range points {
		v, present := pt.Value.Get()
		if !present {
			continue
		}
		s.Add(surface.Circle{
			Meta:  surface.Meta{Class: "dot", Series: series, Title: pt.Label + ": " + FormatValue(v, p.unit)},
			Style: surface.Style{Fill: st.Color},
			X:     p.x.At(i),
			Y:     p.y.At(v),
			R:     2.5,
		})
	}
}

func firstEntityWith(data GroupsByEntity, variable string) string {
	for _, es := range data {
		for _, g := range es.Groups {
			if g.Label == variable {
				return es.Entity
			}
		}
	}
	return ""
}
