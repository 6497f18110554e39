package main

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/config"
	"taskflow/internal/logger"
)

// main runs the TaskFlow host server: it serves the wasm shell and proxies
// /api/ to the REST backend so the browser client talks same-origin.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(logger.New(os.Stdout, level)))

	backend, err := url.Parse(cfg.BackendURL)
	if err != nil {
		slog.Error("invalid backend URL", "url", cfg.BackendURL, "error", err)
		os.Exit(1)
	}
	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(backend)
			pr.SetXForwarded()
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(corsHandler(cfg.CORSOrigins))

	r.Handle("/api/*", http.StripPrefix("/api", proxy))
	r.Handle("/*", &app.Handler{
		Name:        "TaskFlow",
		Title:       "TaskFlow",
		Description: "Role-based project and task management dashboard",
		Styles:      []string{"/web/dashboard.css"},
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("taskflow running", "addr", cfg.Addr, "backend", cfg.BackendURL)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
