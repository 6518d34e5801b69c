package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/spektr-org/statchart/browser"
	"github.com/spektr-org/statchart/cache"
	"github.com/spektr-org/statchart/chart"
	"github.com/spektr-org/statchart/setting"
)

// ============================================================================
// SERVER — graph browser pages, property-value proxy, chart rendering
// ============================================================================

// Upstream fetches raw property values.
type Upstream interface {
	PropVals(ctx context.Context, prop, dcid string) ([]byte, error)
}

// Server holds the HTTP dependencies.
type Server struct {
	Settings *setting.Settings
	Cache    cache.Cache
	Upstream Upstream
	// Sections adds chart sections to node pages. Nil mounts the page
	// without charts; the serve command leaves it nil.
	Sections browser.SectionsFunc

	registry  *prometheus.Registry
	metrics   *Metrics
	group     singleflight.Group
	chartOpts []chart.Option
	log       *logrus.Entry
}

// New builds a server. A nil upstream talks to Settings.Upstream.URL.
func New(s *setting.Settings, c cache.Cache, upstream Upstream) *Server {
	if upstream == nil {
		upstream = browser.NewClient(s.Upstream.URL, s.Upstream.Timeout)
	}
	reg := prometheus.NewRegistry()
	log := logrus.WithField("component", "server")
	return &Server{
		Settings:  s,
		Cache:     c,
		Upstream:  upstream,
		registry:  reg,
		metrics:   NewMetrics(reg),
		chartOpts: ChartOptions(s.Chart, log),
		log:       log,
	}
}

// ChartOptions turns [chart] settings into drawing options.
func ChartOptions(c setting.Chart, log *logrus.Entry) []chart.Option {
	opts := []chart.Option{chart.WithFontSize(c.FontSize)}
	if len(c.Palette) > 0 {
		opts = append(opts, chart.WithPalette(c.Palette))
	}
	if c.TickCount > 0 {
		opts = append(opts, chart.WithTickCount(c.TickCount))
	}
	if log != nil {
		opts = append(opts, chart.WithLogger(log.WithField("component", "chart")))
	}
	return opts
}

// Routes returns the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/browser/", s.landing)
	r.Get("/browser/*", s.nodePage)
	r.Get("/api/browser/propvals/{prop}/*", s.propVals)
	r.Post("/api/chart", s.renderChart)
	r.Get("/dev", s.devGallery)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.Settings.Server.HTTPAddr,
		Handler:      s.Routes(),
		ReadTimeout:  s.Settings.Server.ReadTimeout,
		WriteTimeout: s.Settings.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("🔧 Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
