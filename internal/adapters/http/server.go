// Package http exposes the stemmer over a small JSON API.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skroutz/turkish-stemmer/pkg/ports"
)

// Stemmer is the engine surface the server needs.
type Stemmer interface {
	Stem(word string) string
	StemAll(words []string) []string
	Candidates(word string) ([]string, error)
}

// Server handles stemming requests, consulting an optional cache before the
// engine.
type Server struct {
	stemmer Stemmer
	cache   ports.Cache
	logger  *slog.Logger
	metrics *metrics
}

// Option configures the Server.
type Option func(*Server)

// WithCache sets a stem cache consulted before the engine.
func WithCache(cache ports.Cache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the HTTP handler for the stemming API.
//
//	GET  /stem/{word}   stem a single word
//	POST /stem          stem a batch of words
//	GET  /candidates/{word}
//	GET  /healthz
//	GET  /metrics
func NewHandler(stemmer Stemmer, opts ...Option) http.Handler {
	s := &Server{stemmer: stemmer}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.metrics = newMetrics()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/stem/{word}", s.stemWord)
	r.Post("/stem", s.stemBatch)
	r.Get("/candidates/{word}", s.candidates)
	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

type stemResponse struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

type batchRequest struct {
	Words []string `json:"words"`
}

type batchResponse struct {
	Stems map[string]string `json:"stems"`
}

type candidatesResponse struct {
	Word       string   `json:"word"`
	Candidates []string `json:"candidates"`
}

// stemWord handles GET /stem/{word}.
func (s *Server) stemWord(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	start := time.Now()

	stem, hit := s.lookup(r, word)
	if !hit {
		stem = s.stemmer.Stem(word)
		s.store(r, word, stem)
	}

	s.metrics.observe(hit, time.Since(start))
	s.logger.Debug("stem request", "word", word, "stem", stem, "cache_hit", hit)
	writeJSON(w, s.logger, stemResponse{Word: word, Stem: stem})
}

// stemBatch handles POST /stem.
func (s *Server) stemBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	stems := make(map[string]string, len(req.Words))
	for _, word := range req.Words {
		stem, hit := s.lookup(r, word)
		if !hit {
			stem = s.stemmer.Stem(word)
			s.store(r, word, stem)
		}
		s.metrics.observe(hit, 0)
		stems[word] = stem
	}
	s.metrics.observeBatch(time.Since(start))

	writeJSON(w, s.logger, batchResponse{Stems: stems})
}

// candidates handles GET /candidates/{word}.
func (s *Server) candidates(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")

	cands, err := s.stemmer.Candidates(word)
	if err != nil {
		s.logger.Error("candidates failed", "word", word, "err", err)
		http.Error(w, "stemming failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, s.logger, candidatesResponse{Word: word, Candidates: cands})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// lookup consults the cache; a cache error counts as a miss.
func (s *Server) lookup(r *http.Request, word string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	stem, ok, err := s.cache.Get(r.Context(), word)
	if err != nil {
		s.logger.Warn("cache get failed", "word", word, "err", err)
		return "", false
	}
	return stem, ok
}

func (s *Server) store(r *http.Request, word, stem string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(r.Context(), word, stem); err != nil {
		s.logger.Warn("cache set failed", "word", word, "err", err)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}
