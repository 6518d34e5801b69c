package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/spektr-org/statchart/chart"
	"github.com/spektr-org/statchart/gallery"
	"github.com/spektr-org/statchart/surface"
)

const maxPropsBytes = 4 << 20

// renderChart mounts a props body and returns the encoded chart.
// Caller faults are 400s.
func (s *Server) renderChart(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = gallery.FormatSVG
	}
	if format != gallery.FormatSVG && format != gallery.FormatPNG {
		http.Error(w, "unknown format: "+format, http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPropsBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	props, err := chart.ParseProps(data)
	if err != nil {
		s.metrics.ChartErrors.WithLabelValues(chart.KindUnknown.String()).Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := surface.NewContainer(props.ID, 0)
	if err := chart.MountProps(c, props, s.chartOpts...); err != nil {
		kind := chart.KindUnknown
		var me *chart.MountError
		if errors.As(err, &me) {
			kind = me.Kind
		}
		s.metrics.ChartErrors.WithLabelValues(kind.String()).Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := gallery.Encode(&buf, c.Scene(), format); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if format == gallery.FormatPNG {
		w.Header().Set("Content-Type", "image/png")
	} else {
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	s.metrics.ChartsRendered.WithLabelValues(props.Type).Inc()
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) devGallery(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = gallery.FormatSVG
	}
	var buf bytes.Buffer
	if err := gallery.Render(&buf, format, s.chartOpts...); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
