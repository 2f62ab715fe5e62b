// Package chi exposes the HTTP API: the aggregated search endpoint, the
// per-kind browse endpoints, health and metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lumenwork/contentdex/internal/domain"
	"github.com/lumenwork/contentdex/internal/domain/content"
	"github.com/lumenwork/contentdex/internal/domain/search/filterspec"
	"github.com/lumenwork/contentdex/internal/domain/search/query"
	logpkg "github.com/lumenwork/contentdex/internal/logger"
	"github.com/lumenwork/contentdex/internal/metrics"
	healthuc "github.com/lumenwork/contentdex/internal/usecase/health"
	searchuc "github.com/lumenwork/contentdex/internal/usecase/search"
)

// ErrorCode identifies an API error category.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeValidationFailed  ErrorCode = "validation_failed"
	CodeUnknownEntityType ErrorCode = "unknown_entity_type"
	CodeNotFound          ErrorCode = "not_found"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the use case services behind the HTTP handlers.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrUnknownEntityKind, http.StatusBadRequest, CodeUnknownEntityType),
		sentinelHandler(domain.ErrInvalidFilter, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
	}
	return s
}

// Routes registers every handler on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.Search)
		r.Get("/pages", s.ListPages)
		r.Get("/templates", s.ListTemplates)
		r.Get("/media", s.ListMedia)
		r.Get("/sections", s.ListSections)
	})
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	params := flattenQuery(r.URL.Query())
	f := filterspec.Parse(params)

	p := searchuc.Params{
		Query:   f.Search,
		Kinds:   parseKinds(params["entityTypes"]),
		Filters: f,
		Limit:   f.Limit,
		Offset:  intParam(params, "offset", 0),
	}

	start := time.Now()
	resp, err := s.search.Search(r.Context(), p)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, r, err)
		return
	}

	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchResultsCount.Observe(float64(len(resp.Results)))
	if len(resp.Suggestions) > 0 {
		metrics.SearchSuggestionsTotal.Inc()
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListPages handles GET /api/v1/pages.
func (s *Server) ListPages(w http.ResponseWriter, r *http.Request) {
	f := filterspec.Parse(flattenQuery(r.URL.Query()))

	pages, err := s.search.ListPages(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]pageJSON, len(pages))
	for i := range pages {
		items[i] = pageToJSON(&pages[i])
	}
	writeJSON(w, http.StatusOK, listResponse[pageJSON]{Items: items, Page: f.Page, Limit: query.ClampLimit(f.Limit), Applied: f.Summary()})
}

// ListTemplates handles GET /api/v1/templates.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	f := filterspec.Parse(flattenQuery(r.URL.Query()))

	templates, err := s.search.ListTemplates(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]templateJSON, len(templates))
	for i := range templates {
		items[i] = templateToJSON(&templates[i])
	}
	writeJSON(w, http.StatusOK, listResponse[templateJSON]{Items: items, Page: f.Page, Limit: query.ClampLimit(f.Limit), Applied: f.Summary()})
}

// ListMedia handles GET /api/v1/media.
func (s *Server) ListMedia(w http.ResponseWriter, r *http.Request) {
	f := filterspec.Parse(flattenQuery(r.URL.Query()))

	assets, err := s.search.ListMedia(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]mediaJSON, len(assets))
	for i := range assets {
		items[i] = mediaToJSON(&assets[i])
	}
	writeJSON(w, http.StatusOK, listResponse[mediaJSON]{Items: items, Page: f.Page, Limit: query.ClampLimit(f.Limit), Applied: f.Summary()})
}

// ListSections handles GET /api/v1/sections.
func (s *Server) ListSections(w http.ResponseWriter, r *http.Request) {
	f := filterspec.Parse(flattenQuery(r.URL.Query()))

	sections, err := s.search.ListSections(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]sectionJSON, len(sections))
	for i := range sections {
		items[i] = sectionToJSON(&sections[i])
	}
	writeJSON(w, http.StatusOK, listResponse[sectionJSON]{Items: items, Page: f.Page, Limit: query.ClampLimit(f.Limit), Applied: f.Summary()})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": string(report.Status),
		"checks": checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// flattenQuery keeps the first value of each query parameter.
func flattenQuery(values map[string][]string) map[string]string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// parseKinds splits the entityTypes parameter. Unknown kinds are kept: the
// search service rejects them with a typed error.
func parseKinds(raw string) []content.Kind {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	kinds := make([]content.Kind, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kinds = append(kinds, content.Kind(p))
		}
	}
	return kinds
}

func intParam(params map[string]string, key string, fallback int) int {
	v, ok := params[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrUnknownEntityKind,
		domain.ErrInvalidFilter,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := s.requestLogger(r)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

// requestLogger prefers the per-request logger installed by the wide-event
// middleware, so error lines carry the request_id field. Outside that
// middleware the context holds no logger and the server logger is used.
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	return logpkg.FromContextOr(r.Context(), s.logger)
}
