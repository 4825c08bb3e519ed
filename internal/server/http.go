package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/digilit/internal/config"
	"github.com/gokatarajesh/digilit/internal/content"
	"github.com/gokatarajesh/digilit/internal/logging"
	httperrors "github.com/gokatarajesh/digilit/pkg/http/errors"
)

// ContentService is the read side consumed by the API handlers.
type ContentService interface {
	Statistics(ctx context.Context) ([]content.Statistic, error)
	Glossary(ctx context.Context) ([]content.GlossaryTerm, error)
	Quiz(ctx context.Context) ([]content.QuizQuestion, error)
}

// Pinger checks backing dependencies for /api/ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHTTPServer wires the content API, health and metrics routes.
// pinger can be nil, in which case /api/ping always succeeds.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, svc ContentService, pinger Pinger) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewHandler(cfg, logger, svc, pinger),
	}
}

// NewHandler builds the routed and middleware-wrapped handler.
func NewHandler(cfg *config.App, logger zerolog.Logger, svc ContentService, pinger Pinger) http.Handler {
	h := &handlers{svc: svc, pinger: pinger}
	mux := http.NewServeMux()

	routes := []struct {
		path    string
		handler http.Handler
	}{
		{"/healthz", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})},
		{"/metrics", promhttp.Handler()},
		{"/api/ping", http.HandlerFunc(h.ping)},
		{"/api/statistics", http.HandlerFunc(h.statistics)},
		{"/api/glossary", http.HandlerFunc(h.glossary)},
		{"/api/quiz", http.HandlerFunc(h.quiz)},
	}
	for _, rt := range routes {
		mux.Handle("GET "+rt.path, rt.handler)
		// Any other method on a known path.
		mux.HandleFunc(rt.path, methodNotAllowed)
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w, "route not found")
	})

	var handler http.Handler = mux
	handler = withMetrics(handler)
	handler = withCORS(cfg.CORS, handler)
	handler = withAccessLog(handler)
	handler = withRequestID(logger, handler)
	return handler
}

type handlers struct {
	svc    ContentService
	pinger Pinger
}

func (h *handlers) ping(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			logger := logging.FromContext(r.Context())
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondError(w, http.StatusBadGateway, httperrors.ErrCodeUpstreamError, "dependency ping failed")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"pong": true})
}

// statistics serves every statistic. ?category= narrows to one category.
func (h *handlers) statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		respondFetchError(w, r, content.CollectionStatistics, err)
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		stats = content.StatisticsInCategory(stats, category)
	}
	writeJSON(w, http.StatusOK, stats)
}

// glossary serves every term. ?q= applies the glossary search.
func (h *handlers) glossary(w http.ResponseWriter, r *http.Request) {
	terms, err := h.svc.Glossary(r.Context())
	if err != nil {
		respondFetchError(w, r, content.CollectionGlossary, err)
		return
	}
	writeJSON(w, http.StatusOK, content.SearchGlossary(terms, r.URL.Query().Get("q")))
}

func (h *handlers) quiz(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.Quiz(r.Context())
	if err != nil {
		respondFetchError(w, r, content.CollectionQuiz, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeMethodNotAllowed, r.Method+" is not allowed on "+r.URL.Path)
}

func respondFetchError(w http.ResponseWriter, r *http.Request, collection string, err error) {
	logger := logging.FromContext(r.Context())
	logger.Error().Err(err).Str("collection", collection).Msg("content fetch failed")
	httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeContentFetchFailed, "failed to fetch "+collection)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
