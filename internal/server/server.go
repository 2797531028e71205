// Package server exposes the sparkline pipeline over HTTP.
//
// Routes:
//
//	GET /sparkline.{svg,png,json}?type=dual&heights=1,-2,3&width=120&height=30
//	GET /healthz
//
// Query parameters override the server defaults: type, heights (comma list
// or JSON array), width, height, minBarWidth, barGap, minus, zero, plus and
// background. Validation failures answer 400 with a JSON body carrying the
// error code.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/sparkbar/pkg/buildinfo"
	"github.com/matzehuels/sparkbar/pkg/cache"
	"github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/pipeline"
)

// Limits applied when Config leaves them unset.
const (
	DefaultAddr       = ":8080"
	DefaultMaxHeights = 1000
	DefaultMaxWidth   = 4096.0
	DefaultMaxHeight  = 1024.0

	shutdownTimeout = 5 * time.Second
)

// Config configures the server.
type Config struct {
	Addr       string
	MaxHeights int
	MaxWidth   float64
	MaxHeight  float64

	// Defaults supplies every chart field a request does not set.
	Defaults pipeline.Options
}

// Server serves rendered sparklines.
type Server struct {
	runner *pipeline.Runner
	cfg    Config
	logger *log.Logger
	router chi.Router
	server *http.Server
}

// New creates a server rendering through runner.
func New(runner *pipeline.Runner, cfg Config, logger *log.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxHeights <= 0 {
		cfg.MaxHeights = DefaultMaxHeights
	}
	if cfg.MaxWidth <= 0 {
		cfg.MaxWidth = DefaultMaxWidth
	}
	if cfg.MaxHeight <= 0 {
		cfg.MaxHeight = DefaultMaxHeight
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{runner: runner, cfg: cfg, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/healthz", s.healthz)
	r.Get("/sparkline.{format}", s.sparkline)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusNotFound, errors.New(errors.ErrCodeInvalidPath, "no route for %s", r.URL.Path))
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- s.server.ListenAndServe() }()
	s.logger.Info("listening", "addr", s.cfg.Addr)

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return s.server.Shutdown(shutdownCtx)
	}
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) sparkline(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	opts, err := s.options(r.URL.Query(), format)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, statusFor(err), err)
		return
	}

	cacheState := "miss"
	if res.CacheInfo.RenderHit {
		cacheState = "hit"
	}
	data := res.Artifacts[format]
	etag := `"` + cache.Hash(data)[:16] + `"`
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("ETag", etag)
	w.Header().Set("X-Sparkbar-Cache", cacheState)
	w.Header().Set("X-Sparkbar-Run", res.ID)
	if etagMatch(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// etagMatch reports whether an If-None-Match header names etag. Weak
// validators compare equal to their strong form and "*" matches anything.
func etagMatch(header, etag string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}
	return false
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case "", errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
		msg = "internal error"
	}
	s.writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: code, Message: msg},
		RequestID: RequestID(r.Context()),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("write response", "err", err)
	}
}
