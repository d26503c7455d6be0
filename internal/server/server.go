package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/amps-tools/ampswizard/internal/paramfile"
	"github.com/amps-tools/ampswizard/internal/run"
	"github.com/amps-tools/ampswizard/internal/species"
)

// Server is the wizard backend. The HTTP API operates on one long-lived
// session configuration; each socket.io connection gets its own.
type Server struct {
	logger   *slog.Logger
	hydrator *paramfile.Hydrator

	mu  sync.Mutex
	cfg *run.Config
}

// New creates a Server with a default session configuration.
func New(logger *slog.Logger, reg *species.Registry) *Server {
	return &Server{
		logger:   logger,
		hydrator: paramfile.NewHydrator(reg),
		cfg:      run.NewConfig(),
	}
}

// Handler builds the full route table, including the socket.io endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/check", s.handleCheck)
	mux.HandleFunc("/api/load", s.handleLoad)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.Handle("/socket.io/", s.socketHandler())
	return mux
}

// ListenAndServe runs the service until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{Addr: addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info("Shutting down wizard service.")
		_ = httpServer.Shutdown(context.Background())
	}()

	s.logger.Info("🧙 Wizard service starting", "address", fmt.Sprintf("http://localhost%s", addr))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("wizard service failed: %w", err)
	}
	return nil
}

// checkResult is the JSON shape of a sanity-gate outcome.
type checkResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// handleCheck runs only the sanity gate over the posted text.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readBody(w, r)
	if !ok {
		return
	}
	if err := paramfile.SanityCheck(text); err != nil {
		writeJSON(w, http.StatusOK, checkResult{OK: false, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, checkResult{OK: true})
}

// handleLoad gates, parses, and hydrates the posted text into the session
// configuration. Gate rejection leaves the configuration untouched.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readBody(w, r)
	if !ok {
		return
	}
	if err := paramfile.SanityCheck(text); err != nil {
		s.logger.Info("Load rejected by sanity gate.", "remote_addr", r.RemoteAddr)
		writeJSON(w, http.StatusUnprocessableEntity, checkResult{OK: false, Message: err.Error()})
		return
	}

	s.mu.Lock()
	m := s.hydrator.Hydrate(paramfile.Parse(text), s.cfg)
	cfg := s.cfg.Clone()
	s.mu.Unlock()

	s.logger.Info("Session configuration loaded.", "keywords", m.Len(), "species", cfg.Species)
	writeJSON(w, http.StatusOK, cfg)
}

// handleConfig reads (GET) or merges (POST) the session configuration. A
// POST body is a flat JSON object of keyword/value strings written through
// the same grammar the file uses, so coercion and forgiveness match exactly.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.Lock()
		cfg := s.cfg.Clone()
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, cfg)

	case http.MethodPost:
		var kv map[string]string
		if err := json.NewDecoder(r.Body).Decode(&kv); err != nil {
			writeJSON(w, http.StatusBadRequest, checkResult{OK: false, Message: "body must be a JSON object of keyword/value strings"})
			return
		}
		s.mu.Lock()
		s.hydrator.Hydrate(keywordLines(kv), s.cfg)
		cfg := s.cfg.Clone()
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, cfg)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleExport serializes the session configuration to canonical text.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	text := paramfile.Serialize(s.cfg)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="AMPS_PARAM.in"`)
	fmt.Fprint(w, text)
}

// keywordLines renders keyword/value pairs as parameter lines and parses
// them, so form writes go through the exact file grammar.
func keywordLines(kv map[string]string) *paramfile.KeywordMap {
	var text string
	for k, v := range kv {
		text += fmt.Sprintf("%s %s\n", k, v)
	}
	return paramfile.Parse(text)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return "", false
	}
	return string(data), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
