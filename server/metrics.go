package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the server's Prometheus collectors.
type Metrics struct {
	ChartsRendered *prometheus.CounterVec
	ChartErrors    *prometheus.CounterVec
	PropValsCache  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChartsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "statchart",
			Name:      "charts_rendered_total",
			Help:      "Charts mounted and encoded, by kind.",
		}, []string{"kind"}),
		ChartErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "statchart",
			Name:      "chart_errors_total",
			Help:      "Chart requests rejected as caller faults, by kind.",
		}, []string{"kind"}),
		PropValsCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "statchart",
			Name:      "propvals_cache_total",
			Help:      "Property-value lookups by cache result (hit, miss, error).",
		}, []string{"result"}),
	}
	reg.MustRegister(m.ChartsRendered, m.ChartErrors, m.PropValsCache)
	return m
}
