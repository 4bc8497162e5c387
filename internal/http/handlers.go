package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"doctorai/internal/core"
	"doctorai/pkg"
)

// ChatEngine processes one inbound turn.
type ChatEngine interface {
	Respond(ctx context.Context, in core.TurnInput) (*core.TurnResult, error)
}

// TranscriptReader serves the session listing and stored transcripts.
type TranscriptReader interface {
	Read(ctx context.Context, sessionID string) ([]pkg.StoredMessage, error)
	ListSessions(ctx context.Context) ([]pkg.SessionInfo, error)
}

// UpdateSource publishes and subscribes to per-session transcript updates.
type UpdateSource interface {
	Notify(ctx context.Context, sessionID string) error
	Listen(ctx context.Context) (<-chan string, error)
}

// Server bundles the dependencies required by the HTTP handlers.
type Server struct {
	Engine  ChatEngine
	Reader  TranscriptReader
	Updates UpdateSource
	Logger  *slog.Logger
}

// NewServer constructs a Server. updates may be nil; the stream endpoint
// then reports itself unavailable.
func NewServer(engine ChatEngine, reader TranscriptReader, updates UpdateSource, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{Engine: engine, Reader: reader, Updates: updates, Logger: logger}
}

// Router builds the route table.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(s.Logger))

	r.Post("/api/chat", s.handleChat)
	r.Get("/api/sessions", s.handleSessions)
	r.Get("/api/loadchat", s.handleLoadChat)
	r.Get("/api/sessions/{sessionID}/stream", s.handleStream)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req pkg.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lat := coerceCoordinate(req.Latitude)
	lng := coerceCoordinate(req.Longitude)
	if lat == nil || lng == nil {
		// Distance ranking needs both; a lone coordinate is useless.
		lat, lng = nil, nil
	}

	result, err := s.Engine.Respond(r.Context(), core.TurnInput{
		SessionID:    req.SessionID,
		Message:      req.Message,
		Conversation: req.Conversation,
		Latitude:     lat,
		Longitude:    lng,
	})
	if err != nil {
		if errors.Is(err, core.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, "Message is required")
			return
		}
		s.Logger.Error("turn failed", "session_id", req.SessionID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.Updates != nil {
		if err := s.Updates.Notify(r.Context(), req.SessionID); err != nil {
			s.Logger.Warn("notify failed", "session_id", req.SessionID, "error", err)
		}
	}

	s.Logger.Info("turn processed", "session_id", req.SessionID, "mode", result.Mode)
	writeJSON(w, http.StatusOK, pkg.ChatResponse{
		Response:     result.Response,
		Conversation: result.Conversation,
	})
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.Reader.ListSessions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
}

func (s *Server) handleLoadChat(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "Session ID is required")
		return
	}
	msgs, err := s.Reader.Read(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

// handleStream pushes the stored transcript over SSE: one snapshot on
// connect, then a fresh snapshot whenever the session is appended to.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	if s.Updates == nil {
		writeError(w, http.StatusServiceUnavailable, "updates unavailable")
		return
	}

	ctx := r.Context()
	updates, err := s.Updates.Listen(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	if err := s.sendTranscript(ctx, w, sessionID); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case id, open := <-updates:
			if !open {
				return
			}
			if id != sessionID {
				continue
			}
			if err := s.sendTranscript(ctx, w, sessionID); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (s *Server) sendTranscript(ctx context.Context, w http.ResponseWriter, sessionID string) error {
	msgs, err := s.Reader.Read(ctx, sessionID)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(map[string]any{
		"type":      "transcript",
		"sessionId": sessionID,
		"messages":  msgs,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}

// coerceCoordinate turns a loosely-typed JSON value into a coordinate.
// Absent values stay absent; present but unparseable values become 0 — a
// lenient policy kept for wire compatibility, so a garbage coordinate
// skews ranking instead of failing the turn.
func coerceCoordinate(v any) *float64 {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		return &val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			f = 0
		}
		return &f
	default:
		zero := 0.0
		return &zero
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
