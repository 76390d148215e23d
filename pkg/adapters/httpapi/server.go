package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/malhotra1432/rasa-1/internal/logging"
	"github.com/malhotra1432/rasa-1/pkg/ports"
	"github.com/malhotra1432/rasa-1/pkg/training"
)

// Server exposes the composed importer chain and a tracker store over HTTP.
type Server struct {
	importer ports.TrainingDataImporter
	trackers ports.TrackerStore
	logger   *slog.Logger
}

type Option func(*Server)

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewHandler builds the HTTP handler for the API.
func NewHandler(importer ports.TrainingDataImporter, trackers ports.TrackerStore, opts ...Option) http.Handler {
	s := &Server{
		importer: importer,
		trackers: trackers,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/domain", s.handleDomain)
		r.Get("/config", s.handleConfig)
		r.Get("/nlu", s.handleNLUData)
		r.Get("/stories", s.handleStories)

		r.Get("/trackers", s.handleListTrackers)
		r.Get("/trackers/{senderID}", s.handleGetTracker)
		r.Post("/trackers/{senderID}", s.handleAppendEvents)
		r.Delete("/trackers/{senderID}", s.handleDeleteTracker)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDomain(w http.ResponseWriter, r *http.Request) {
	domain, err := s.importer.GetDomain(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, domain)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	config, err := s.importer.GetConfig(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, config)
}

func (s *Server) handleNLUData(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	data, err := s.importer.GetNLUData(r.Context(), language)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleStories(w http.ResponseWriter, r *http.Request) {
	opts := []ports.StoryOption{}
	if raw := r.URL.Query().Get("exclusion"); raw != "" {
		percentage, err := strconv.Atoi(raw)
		if err != nil || percentage < 0 || percentage > 100 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("exclusion must be an integer 0-100"))
			return
		}
		opts = append(opts, ports.WithExclusionPercentage(percentage))
	}
	if r.URL.Query().Get("e2e") == "true" {
		opts = append(opts, ports.WithE2E())
	}

	stories, err := s.importer.GetStories(r.Context(), opts...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

func (s *Server) handleListTrackers(w http.ResponseWriter, r *http.Request) {
	keys, err := s.trackers.Keys(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"senders": keys})
}

func (s *Server) handleGetTracker(w http.ResponseWriter, r *http.Request) {
	senderID := chi.URLParam(r, "senderID")
	tracker, err := s.trackers.Retrieve(r.Context(), senderID)
	if errors.Is(err, training.ErrTrackerNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, tracker)
}

// handleAppendEvents appends posted events to a sender's tracker, creating
// the tracker on first contact.
func (s *Server) handleAppendEvents(w http.ResponseWriter, r *http.Request) {
	senderID := chi.URLParam(r, "senderID")

	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	events, err := training.UnmarshalEvents(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tracker, err := s.trackers.Retrieve(r.Context(), senderID)
	if errors.Is(err, training.ErrTrackerNotFound) {
		tracker = training.NewTracker(senderID)
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	for _, ev := range events {
		tracker.Update(ev)
	}
	if err := s.trackers.Save(r.Context(), tracker); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, tracker)
}

func (s *Server) handleDeleteTracker(w http.ResponseWriter, r *http.Request) {
	senderID := chi.URLParam(r, "senderID")
	if err := s.trackers.Delete(r.Context(), senderID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers already sent; nothing useful left to do.
		return
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
