package browser

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/spektr-org/statchart/chart"
	"github.com/spektr-org/statchart/surface"
)

// Section is one chart on a node page.
type Section struct {
	Title string
	Spec  chart.Spec
}

// SectionsFunc picks the charts for a page. It may return none.
type SectionsFunc func(ctx context.Context, props PageProps) ([]Section, error)

// PageMounter renders the node page body and its chart sections inline.
type PageMounter struct {
	Sections SectionsFunc
	// MaxWidth bounds every chart container; zero leaves them unconstrained.
	MaxWidth float64
	Options  []chart.Option
	Log      *logrus.Entry
}

var pageTmpl = template.Must(template.New("node").Parse(`
<div class="browser-page" data-display="{{.Props.DisplayType}}">
  <h1 class="node-name">{{.Props.NodeName}}</h1>
  <p class="node-dcid">dcid: <code>{{.Props.Dcid}}</code></p>
  {{- if .Props.StatVarID}}
  <p class="stat-var">Statistical variable: <code>{{.Props.StatVarID}}</code></p>
  {{- end}}
  {{- range .Charts}}
  <section class="chart" id="{{.ID}}">
    {{- if .Title}}<h2>{{.Title}}</h2>{{end}}
    {{.SVG}}
  </section>
  {{- end}}
</div>
`))

type renderedChart struct {
	ID    string
	Title string
	SVG   template.HTML
}

// Mount implements Mounter.
func (m *PageMounter) Mount(ctx context.Context, root *goquery.Selection, props PageProps) error {
	log := m.Log
	if log == nil {
		log = logrus.WithField("component", "browser")
	}

	var sections []Section
	if m.Sections != nil {
		var err error
		if sections, err = m.Sections(ctx, props); err != nil {
			return fmt.Errorf("sections for %s: %w", props.Dcid, err)
		}
	}

	charts := make([]renderedChart, 0, len(sections))
	for _, sec := range sections {
		svg, err := RenderSVG(sec.Spec, m.MaxWidth, m.Options...)
		if err != nil {
			return err
		}
		charts = append(charts, renderedChart{ID: sec.Spec.ID, Title: sec.Title, SVG: template.HTML(svg)})
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, struct {
		Props  PageProps
		Charts []renderedChart
	}{props, charts}); err != nil {
		return fmt.Errorf("render node page: %w", err)
	}
	root.SetHtml(buf.String())
	RemoveLoadingMessage(root)

	log.Debugf("📊 mounted %s with %d charts", props.Dcid, len(charts))
	return nil
}

// RenderSVG mounts spec into a fresh container and returns its markup.
func RenderSVG(spec chart.Spec, maxWidth float64, opts ...chart.Option) (string, error) {
	c := surface.NewContainer(spec.ID, maxWidth)
	if err := chart.Mount(c, spec, opts...); err != nil {
		return "", err
	}
	return surface.SVGString(c.Scene())
}
