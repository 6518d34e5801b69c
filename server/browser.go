package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"

	"github.com/spektr-org/statchart/browser"
	"github.com/spektr-org/statchart/cache"
)

func (s *Server) landing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := landingTmpl.Execute(w, landingLinks); err != nil {
		s.log.Warnf("⚠️ landing page: %v", err)
	}
}

// nodePage renders the shell and runs the loader on it in-process.
func (s *Server) nodePage(w http.ResponseWriter, r *http.Request) {
	dcid := chi.URLParam(r, "*")
	if dcid == "" {
		s.landing(w, r)
		return
	}
	ctx := r.Context()

	var shell bytes.Buffer
	if err := nodeShellTmpl.Execute(&shell, landingLink{Dcid: dcid, Name: s.nodeName(ctx, dcid)}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	doc, err := goquery.NewDocumentFromReader(&shell)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	loader := &browser.Loader{
		Types: typeFetcher{s},
		Mounter: &browser.PageMounter{
			Sections: s.Sections,
			MaxWidth: s.Settings.Chart.DefaultWidth * 2,
			Options:  s.chartOpts,
			Log:      s.log,
		},
		Log: s.log,
	}
	if err := loader.Load(ctx, doc, r.URL.Query()); err != nil {
		s.log.Warnf("⚠️ node page %s: %v", dcid, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

// nodeName is the first name value of dcid, or dcid itself.
func (s *Server) nodeName(ctx context.Context, dcid string) string {
	body, err := s.fetchPropVals(ctx, "name", dcid)
	if err != nil {
		s.log.Debugf("name of %s: %v", dcid, err)
		return dcid
	}
	values, err := browser.DecodeValues(body)
	if err != nil || len(values) == 0 || values[0].Value == "" {
		return dcid
	}
	return values[0].Value
}

type typeFetcher struct{ s *Server }

func (t typeFetcher) TypeOf(ctx context.Context, dcid string) ([]string, error) {
	body, err := t.s.fetchPropVals(ctx, "typeOf", dcid)
	if err != nil {
		return nil, err
	}
	return browser.DecodeTypes(body)
}

func (s *Server) propVals(w http.ResponseWriter, r *http.Request) {
	prop, dcid := chi.URLParam(r, "prop"), chi.URLParam(r, "*")
	body, err := s.fetchPropVals(r.Context(), prop, dcid)
	if err != nil {
		code := http.StatusBadGateway
		var se *browser.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			code = http.StatusNotFound
		}
		http.Error(w, err.Error(), code)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

type cached struct {
	body []byte
	hit  bool
}

// fetchPropVals reads through the cache. Concurrent misses on one key share
// a single upstream request.
func (s *Server) fetchPropVals(ctx context.Context, prop, dcid string) ([]byte, error) {
	key := "propvals:" + prop + ":" + dcid
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		fetchCtx := context.WithoutCancel(ctx)
		body, hit, err := cache.Remember(fetchCtx, s.Cache, key, s.Settings.Cache.TTL, func() ([]byte, error) {
			return s.Upstream.PropVals(fetchCtx, prop, dcid)
		})
		return cached{body: body, hit: hit}, err
	})
	if err != nil {
		s.metrics.PropValsCache.WithLabelValues("error").Inc()
		return nil, err
	}
	c := v.(cached)
	if c.hit {
		s.metrics.PropValsCache.WithLabelValues("hit").Inc()
	} else {
		s.metrics.PropValsCache.WithLabelValues("miss").Inc()
	}
	return c.body, nil
}
