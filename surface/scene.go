package surface

// ============================================================================
// SCENE — Retained drawing model for one chart container
// ============================================================================
// Drawing routines append primitives to a Scene; encoders (SVG, PNG) read it.
// Keeping the scene retained lets the same drawing be encoded twice and lets
// tests assert on geometry without parsing markup.
// ============================================================================

// Point is a position in scene pixels, origin top-left.
type Point struct {
	X float64
	Y float64
}

// Anchor is horizontal text alignment relative to the text position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Style describes fill and stroke of a primitive. Empty colors mean "none".
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Dash        string // SVG dash array, e.g. "5, 5"
}

// Meta tags an element so encoders can emit classes and tests can find it.
type Meta struct {
	Class  string // "bar", "line", "dot", "grid", "y-tick", "x-tick", ...
	Series string // series label the element belongs to, if any
	Title  string // hover text
}

// Element is one drawable primitive.
type Element interface {
	meta() Meta
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Meta
	Style
	X, Y, W, H float64
}

// Line is a single straight segment.
type Line struct {
	Meta
	Style
	X1, Y1, X2, Y2 float64
}

// Polyline is a connected run of points. It never bridges a gap.
type Polyline struct {
	Meta
	Style
	Points []Point
}

// Circle is a dot marker.
type Circle struct {
	Meta
	Style
	X, Y, R float64
}

// Text is a possibly multi-line label. Lines are stacked downward from Y.
type Text struct {
	Meta
	X, Y       float64
	Lines      []string
	FontSize   float64
	LineHeight float64 // in pixels; 0 means 1.1 × FontSize
	Anchor     Anchor
	Fill       string
}

func (e Rect) meta() Meta     { return e.Meta }
func (e Line) meta() Meta     { return e.Meta }
func (e Polyline) meta() Meta { return e.Meta }
func (e Circle) meta() Meta   { return e.Meta }
func (e Text) meta() Meta     { return e.Meta }

// Step returns the vertical distance between consecutive text lines.
func (t Text) Step() float64 {
	if t.LineHeight > 0 {
		return t.LineHeight
	}
	return t.FontSize * 1.1
}

// Scene holds everything drawn into a container.
type Scene struct {
	Width    float64
	Height   float64
	Elements []Element
}

// Reset empties the scene and sets its size.
func (s *Scene) Reset(width, height float64) {
	s.Width = width
	s.Height = height
	s.Elements = nil
}

// Add appends elements in paint order.
func (s *Scene) Add(els ...Element) {
	s.Elements = append(s.Elements, els...)
}

// Len returns the element count.
func (s Scene) Len() int { return len(s.Elements) }

// ByClass returns elements whose Meta.Class equals class, in paint order.
func (s Scene) ByClass(class string) []Element {
	var out []Element
	for _, el := range s.Elements {
		if el.meta().Class == class {
			out = append(out, el)
		}
	}
	return out
}

// BySeries returns elements of a class that belong to one series.
func (s Scene) BySeries(class, series string) []Element {
	var out []Element
	for _, el := range s.Elements {
		m := el.meta()
		if m.Class == class && m.Series == series {
			out = append(out, el)
		}
	}
	return out
}

// Clone returns a deep copy that shares no slices with s.
func (s Scene) Clone() Scene {
	out := Scene{Width: s.Width, Height: s.Height}
	out.Elements = make([]Element, 0, len(s.Elements))
	for _, el := range s.Elements {
		switch e := el.(type) {
		case Polyline:
			pts := make([]Point, len(e.Points))
			copy(pts, e.Points)
			e.Points = pts
			out.Elements = append(out.Elements, e)
		case Text:
			lines := make([]string, len(e.Lines))
			copy(lines, e.Lines)
			e.Lines = lines
			out.Elements = append(out.Elements, e)
		default:
			out.Elements = append(out.Elements, el)
		}
	}
	return out
}

// MetaOf returns the tags of any element.
func MetaOf(el Element) Meta { return el.meta() }
