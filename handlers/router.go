package handlers

import (
	"net/http"

	"viukon-cms/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	SiteData *SiteDataHandler
	Health   *HealthHandler
	// Auth is nil when authentication is disabled.
	Auth           *AuthHandler
	RequireAuth    func(http.Handler) http.Handler
	LoginRateLimit func(http.Handler) http.Handler
	Secure         func(http.Handler) http.Handler
	CORSOrigin     string
	Metrics        bool
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/api/sitedata", cfg.SiteData.GetSiteData).Methods(http.MethodGet)

	var update http.Handler = http.HandlerFunc(cfg.SiteData.UpdateSiteData)
	if cfg.RequireAuth != nil {
		update = cfg.RequireAuth(update)
	}
	r.Handle("/api/sitedata", update).Methods(http.MethodPut)

	if cfg.Auth != nil {
		var login http.Handler = http.HandlerFunc(cfg.Auth.Login)
		if cfg.LoginRateLimit != nil {
			login = cfg.LoginRateLimit(login)
		}
		r.Handle("/api/auth/login", login).Methods(http.MethodPost)
	}

	if cfg.Health != nil {
		r.Handle("/health", cfg.Health).Methods(http.MethodGet)
	}

	var handler http.Handler = r
	if cfg.CORSOrigin != "" {
		handler = middleware.EnableCORS(cfg.CORSOrigin)(handler)
	}
	if cfg.Secure != nil {
		handler = cfg.Secure(handler)
	}
	return handler
}
