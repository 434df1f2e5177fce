package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fyyur/internal/artist"
	"fyyur/internal/httpx"
	"fyyur/internal/show"
	"fyyur/internal/store"
	"fyyur/internal/venue"
	"fyyur/internal/web"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// backend bundles the repositories of one store.
type backend struct {
	venues  venue.Repository
	artists artist.Repository
	shows   show.Repository
	ping    func(context.Context) error
	close   func()
}

func openBackend(ctx context.Context, cfg Config) (*backend, error) {
	switch cfg.DBDriver {
	case driverSQLite:
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = ":memory:"
		}
		db, err := store.OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		if err := store.MigrateSQLite(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &backend{
			venues:  venue.NewSQLiteRepo(db),
			artists: artist.NewSQLiteRepo(db),
			shows:   show.NewSQLiteRepo(db),
			ping:    db.PingContext,
			close:   func() { db.Close() },
		}, nil
	default:
		pool, err := store.OpenPostgres(ctx, cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return &backend{
			venues:  venue.NewPostgresRepo(pool, cfg.DBTimeout),
			artists: artist.NewPostgresRepo(pool, cfg.DBTimeout),
			shows:   show.NewPostgresRepo(pool, cfg.DBTimeout),
			ping:    pool.Ping,
			close:   pool.Close,
		}, nil
	}
}

// newHandler wires services, routes and middleware. The rate limiter's
// janitor stops when ctx is cancelled.
func newHandler(ctx context.Context, cfg Config, logger *logrus.Logger, be *backend, reg *prometheus.Registry) (http.Handler, error) {
	views, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	showService := show.NewService(be.shows).WithLocation(cfg.Location)
	venueHandler := venue.NewHTTPHandler(venue.NewService(be.venues, showService), views)
	artistHandler := artist.NewHTTPHandler(artist.NewService(be.artists, showService), views)
	showHandler := show.NewHTTPHandler(showService, views)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		pingCtx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := be.ping(pingCtx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	router.Handle("GET /static/", web.Static())

	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, http.StatusOK, "pages/home.html", nil)
	})
	router.HandleFunc("/", views.NotFound)

	router.HandleFunc("GET /venues", venueHandler.List)
	router.HandleFunc("POST /venues/search", venueHandler.Search)
	router.HandleFunc("GET /venues/create", venueHandler.CreateForm)
	router.HandleFunc("POST /venues/create", venueHandler.Create)
	router.HandleFunc("GET /venues/{id}", venueHandler.Detail)
	router.HandleFunc("DELETE /venues/{id}", venueHandler.Delete)
	router.HandleFunc("GET /venues/{id}/edit", venueHandler.EditForm)
	router.HandleFunc("POST /venues/{id}/edit", venueHandler.Edit)

	router.HandleFunc("GET /artists", artistHandler.List)
	router.HandleFunc("POST /artists/search", artistHandler.Search)
	router.HandleFunc("GET /artists/create", artistHandler.CreateForm)
	router.HandleFunc("POST /artists/create", artistHandler.Create)
	router.HandleFunc("GET /artists/{id}", artistHandler.Detail)
	router.HandleFunc("GET /artists/{id}/edit", artistHandler.EditForm)
	router.HandleFunc("POST /artists/{id}/edit", artistHandler.Edit)

	router.HandleFunc("GET /shows", showHandler.List)
	router.HandleFunc("GET /shows/create", showHandler.CreateForm)
	router.HandleFunc("POST /shows/create", showHandler.Create)

	metrics := httpx.NewMetrics(reg)
	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware(logger),
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware(func(w http.ResponseWriter, r *http.Request, err error) {
			views.ServerError(w, r, err)
		}),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		limiter.Middleware,
		metrics.Middleware,
	), nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
