package gallery

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/spektr-org/statchart/chart"
	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// GALLERY RENDERING — every sample on one HTML page, or one file per chart
// ============================================================================

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

var pageTmpl = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Chart gallery</title>
<style>
  body { font-family: sans-serif; }
  .chart { display: inline-block; vertical-align: top; margin: 12px; }
  .chart h3 { font-size: 13px; font-weight: normal; }
</style>
</head>
<body>
{{- range .}}
<div class="chart" id="{{.ID}}">
  <h3>{{.Title}}</h3>
  {{.Body}}
</div>
{{- end}}
</body>
</html>
`))

type renderedSample struct {
	ID    string
	Title string
	Body  template.HTML
}

// Mount draws one sample into a fresh container.
func Mount(s Sample, opts ...chart.Option) (surface.Scene, error) {
	c := surface.NewContainer(s.Props.ID, 0)
	if err := chart.MountProps(c, s.Props, opts...); err != nil {
		return surface.Scene{}, err
	}
	return c.Scene(), nil
}

// Encode writes scene in format.
func Encode(w io.Writer, scene surface.Scene, format string) error {
	switch format {
	case FormatSVG:
		return surface.WriteSVG(w, scene)
	case FormatPNG:
		return surface.WritePNG(w, scene)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// Render writes the HTML gallery. Charts are inline SVG, or PNG data URIs.
func Render(w io.Writer, format string, opts ...chart.Option) error {
	samples := Samples()
	out := make([]renderedSample, 0, len(samples))
	for _, s := range samples {
		scene, err := Mount(s, opts...)
		if err != nil {
			return fmt.Errorf("sample %q: %w", s.Title, err)
		}
		body, err := embed(scene, format)
		if err != nil {
			return fmt.Errorf("sample %q: %w", s.Title, err)
		}
		out = append(out, renderedSample{ID: s.Props.ID, Title: s.Title, Body: body})
	}
	return pageTmpl.Execute(w, out)
}

func embed(scene surface.Scene, format string) (template.HTML, error) {
	switch format {
	case FormatSVG:
		svg, err := surface.SVGString(scene)
		return template.HTML(svg), err
	case FormatPNG:
		var buf bytes.Buffer
		if err := surface.WritePNG(&buf, scene); err != nil {
			return "", err
		}
		src := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
		return template.HTML(fmt.Sprintf(`<img src="%s" width="%g" height="%g">`, src, scene.Width, scene.Height)), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// Export writes every sample to dir as <id>.<format>, plus index.html.
func Export(dir, format string, opts ...chart.Option) error {
	if format != FormatSVG && format != FormatPNG {
		return fmt.Errorf("unknown format: %s", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	log := logrus.WithField("component", "gallery")
	for _, s := range Samples() {
		scene, err := Mount(s, opts...)
		if err != nil {
			return fmt.Errorf("sample %q: %w", s.Title, err)
		}
		var buf bytes.Buffer
		if err := Encode(&buf, scene, format); err != nil {
			return err
		}
		name := filepath.Join(dir, s.Props.ID+"."+format)
		if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
			return err
		}
		log.Debugf("📊 wrote %s (%s)", name, s.Title)
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Render(f, format, opts...); err != nil {
		return err
	}
	log.Infof("📊 gallery written to %s", dir)
	return f.Close()
}
