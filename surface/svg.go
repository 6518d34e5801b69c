package surface

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// ============================================================================
// SVG ENCODER — Scene → SVG document via svgo
// ============================================================================

const defaultFontFamily = "Roboto, Helvetica, Arial, sans-serif"

// WriteSVG encodes the scene as a standalone SVG document.
func WriteSVG(w io.Writer, s Scene) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(px(s.Width), px(s.Height), `class="chart-svg"`)
	canvas.Gstyle("font-family:" + defaultFontFamily)
	for _, el := range s.Elements {
		writeElement(canvas, el)
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

// SVGString encodes the scene without the XML prolog, for inline embedding
// in an HTML page.
func SVGString(s Scene) (string, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, s); err != nil {
		return "", err
	}
	out := buf.String()
	if i := strings.Index(out, "<svg"); i > 0 {
		out = out[i:]
	}
	return out, nil
}

func writeElement(canvas *svg.SVG, el Element) {
	m := el.meta()
	titled := m.Title != ""
	if titled {
		fmt.Fprintf(canvas.Writer, "<g class=\"%s-wrap\">\n", html.EscapeString(m.Class))
		canvas.Title(m.Title)
	}

	attrs := metaAttrs(m)
	switch e := el.(type) {
	case Rect:
		x, y, w, h := e.X, e.Y, e.W, e.H
		if h < 0 {
			y, h = y+h, -h
		}
		if w < 0 {
			x, w = x+w, -w
		}
		canvas.Rect(px(x), px(y), px(w), px(h), append(attrs, styleAttr(styleString(e.Style)))...)
	case Line:
		canvas.Line(px(e.X1), px(e.Y1), px(e.X2), px(e.Y2), append(attrs, styleAttr(styleString(e.Style)))...)
	case Polyline:
		xs := make([]int, len(e.Points))
		ys := make([]int, len(e.Points))
		for i, p := range e.Points {
			xs[i], ys[i] = px(p.X), px(p.Y)
		}
		st := e.Style
		st.Fill = ""
		canvas.Polyline(xs, ys, append(attrs, styleAttr(styleString(st)))...)
	case Circle:
		canvas.Circle(px(e.X), px(e.Y), px(e.R), append(attrs, styleAttr(styleString(e.Style)))...)
	case Text:
		ts := textStyle(e)
		for i, line := range e.Lines {
			y := e.Y + float64(i)*e.Step()
			canvas.Text(px(e.X), px(y), line, append(attrs, styleAttr(ts))...)
		}
	}

	if titled {
		canvas.Gend()
	}
}

func metaAttrs(m Meta) []string {
	var attrs []string
	if m.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, html.EscapeString(m.Class)))
	}
	if m.Series != "" {
		attrs = append(attrs, fmt.Sprintf(`data-series="%s"`, html.EscapeString(m.Series)))
	}
	return attrs
}

// styleAttr renders a complete style attribute. svgo passes any argument
// containing '=' through as raw attributes, so the value is always quoted
// and escaped here.
func styleAttr(style string) string {
	return `style="` + html.EscapeString(style) + `"`
}

func styleString(st Style) string {
	parts := make([]string, 0, 4)
	if st.Fill != "" {
		parts = append(parts, "fill:"+st.Fill)
	} else {
		parts = append(parts, "fill:none")
	}
	if st.Stroke != "" {
		parts = append(parts, "stroke:"+st.Stroke)
		sw := st.StrokeWidth
		if sw <= 0 {
			sw = 1
		}
		parts = append(parts, fmt.Sprintf("stroke-width:%g", sw))
		if st.Dash != "" {
			parts = append(parts, "stroke-dasharray:"+st.Dash)
		}
	}
	return strings.Join(parts, ";")
}

func textStyle(t Text) string {
	anchor := "start"
	switch t.Anchor {
	case AnchorMiddle:
		anchor = "middle"
	case AnchorEnd:
		anchor = "end"
	}
	fill := t.Fill
	if fill == "" {
		fill = "#333333"
	}
	return fmt.Sprintf("text-anchor:%s;font-size:%gpx;fill:%s", anchor, t.FontSize, fill)
}

func px(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}
