package surface

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
)

// ============================================================================
// PNG ENCODER — Scene → raster via gg
// ============================================================================
// gg ships with basicfont as its face, so glyphs outside ASCII are skipped in
// raster output. Layout is unaffected: it was computed before encoding.
// ============================================================================

// WritePNG rasterizes the scene on a white background.
func WritePNG(w io.Writer, s Scene) error {
	width, height := px(s.Width), px(s.Height)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dc := gg.NewContext(width, height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	for _, el := range s.Elements {
		switch e := el.(type) {
		case Rect:
			dc.DrawRectangle(e.X, e.Y, e.W, e.H)
			fillAndStroke(dc, e.Style)
		case Line:
			dc.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
			fillAndStroke(dc, Style{Stroke: e.Stroke, StrokeWidth: e.StrokeWidth, Dash: e.Dash})
		case Polyline:
			if len(e.Points) < 2 {
				continue
			}
			dc.NewSubPath()
			dc.MoveTo(e.Points[0].X, e.Points[0].Y)
			for _, p := range e.Points[1:] {
				dc.LineTo(p.X, p.Y)
			}
			fillAndStroke(dc, Style{Stroke: e.Stroke, StrokeWidth: e.StrokeWidth, Dash: e.Dash})
		case Circle:
			dc.DrawCircle(e.X, e.Y, e.R)
			fillAndStroke(dc, e.Style)
		case Text:
			fill := e.Fill
			if fill == "" {
				fill = "#333333"
			}
			dc.SetHexColor(fill)
			ax := 0.0
			switch e.Anchor {
			case AnchorMiddle:
				ax = 0.5
			case AnchorEnd:
				ax = 1
			}
			for i, line := range e.Lines {
				dc.DrawStringAnchored(line, e.X, e.Y+float64(i)*e.Step(), ax, 0)
			}
		}
	}
	return dc.EncodePNG(w)
}

func fillAndStroke(dc *gg.Context, st Style) {
	if st.Fill != "" {
		dc.SetHexColor(st.Fill)
		if st.Stroke != "" {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if st.Stroke == "" {
		dc.ClearPath()
		return
	}
	dc.SetHexColor(st.Stroke)
	lw := st.StrokeWidth
	if lw <= 0 {
		lw = 1
	}
	dc.SetLineWidth(lw)
	dc.SetDash(parseDash(st.Dash)...)
	dc.Stroke()
	dc.SetDash()
}

// parseDash turns an SVG dash array ("5, 5") into gg dash lengths.
func parseDash(s string) []float64 {
	if s == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 || math.IsNaN(v) {
			return nil
		}
		out = append(out, v)
	}
	return out
}
