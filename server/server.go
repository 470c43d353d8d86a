// Package server exposes the newsletter generator as a small JSON API
// with an embedded single-page UI.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"

	"github.com/Kaura007/Ai-news-later-Agent-2/export"
	"github.com/Kaura007/Ai-news-later-Agent-2/generator"
)

//go:embed web
var embeddedStatic embed.FS

// generateTimeout bounds one full research-and-write run.
const generateTimeout = 3 * time.Minute

const sessionCookie = "newsletter_session"

const errorPrefix = "Error generating newsletter: "

// Generator runs the research-then-write pipeline. *generator.Pipeline
// implements it; tests substitute stubs.
type Generator interface {
	Generate(ctx context.Context, topic string, c generator.Customization) generator.Result
}

// QuickExample is a one-click topic suggestion on the landing page.
type QuickExample struct {
	Label string `json:"label"`
	Topic string `json:"topic"`
}

var defaultExamples = []QuickExample{
	{Label: "🤖 AI & Technology", Topic: "Latest developments in AI and machine learning"},
	{Label: "🌍 Climate & Sustainability", Topic: "Recent climate tech innovations and green energy"},
	{Label: "💼 Business & Startups", Topic: "Startup funding trends and unicorn companies"},
}

// Options tunes a Server beyond its pipeline.
type Options struct {
	// Credentialed marks the pipeline as able to reach its backends.
	// When false, generation requests are rejected before any call.
	Credentialed bool

	// SessionTTL is how long idle sessions keep their history. Zero
	// means one hour.
	SessionTTL time.Duration
}

type Server struct {
	pipeline     Generator
	store        *sessionStore
	staticFS     http.Handler
	credentialed bool
	pruner       *cron.Cron
}

func New(pipeline Generator, opts Options) (*Server, error) {
	if pipeline == nil {
		return nil, errors.New("pipeline is required")
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	sub, err := fs.Sub(embeddedStatic, "web")
	if err != nil {
		return nil, err
	}

	s := &Server{
		pipeline:     pipeline,
		store:        newStore(ttl),
		staticFS:     http.FileServer(http.FS(sub)),
		credentialed: opts.Credentialed,
		pruner:       cron.New(),
	}
	if _, err := s.pruner.AddFunc("@every 10m", func() {
		if n := s.store.prune(); n > 0 {
			log.Printf("[server] pruned %d idle sessions", n)
		}
	}); err != nil {
		return nil, err
	}
	s.pruner.Start()
	return s, nil
}

// Close stops the background session pruning.
func (s *Server) Close() {
	if s.pruner != nil {
		s.pruner.Stop()
	}
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	// Registered flat rather than under a PathPrefix subrouter: a later
	// subroute's inherited prefix matcher clears mux's recorded method
	// mismatch, and wrong-method requests would 404.
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/config", s.handleConfig).Methods(http.MethodGet)
	r.HandleFunc("/api/generate", s.handleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/api/history", s.handleHistory).Methods(http.MethodGet)
	r.HandleFunc("/api/history/{id}", s.handleHistoryEntry).Methods(http.MethodGet)
	r.HandleFunc("/api/newsletters/{id}/download/{format}", s.handleDownload).Methods(http.MethodGet)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	// Paths the API does not claim fall through to the embedded UI.
	r.NotFoundHandler = s.staticHandler()
	return loggingMiddleware(r)
}

func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		// FileServer already serves index.html for "/"; rewriting the path
		// to /index.html would hit its canonical redirect and loop.
		s.staticFS.ServeHTTP(w, r)
	})
}

// session resolves the browser session from the request cookie, creating
// one (and setting the cookie) when needed.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	var current string
	if c, err := r.Cookie(sessionCookie); err == nil {
		current = c.Value
	}
	id := s.store.touch(current)
	if id != current {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return id
}

// --- Handlers ---

type generateRequest struct {
	Topic         string                  `json:"topic"`
	Customization generator.Customization `json:"customization"`
}

type newsletterResponse struct {
	Status     string            `json:"status"`
	Newsletter HistoryEntry      `json:"newsletter"`
	Preview    string            `json:"preview"`
	Analytics  export.Analytics  `json:"analytics"`
	Downloads  map[string]string `json:"downloads"`
}

type historySummary struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
}

type configResponse struct {
	CredentialsConfigured bool           `json:"credentials_configured"`
	QuickExamples         []QuickExample `json:"quick_examples"`
	Tones                 []string       `json:"tones"`
	Lengths               []string       `json:"lengths"`
	Focuses               []string       `json:"focuses"`
	Templates             []string       `json:"templates"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, configResponse{
		CredentialsConfigured: s.credentialed,
		QuickExamples:         defaultExamples,
		Tones:                 generator.ToneOptions,
		Lengths:               generator.LengthOptions,
		Focuses:               generator.FocusOptions,
		Templates:             generator.TemplateOptions,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sessionID := s.session(w, r)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		writeError(w, http.StatusBadRequest, "please enter a topic for your newsletter")
		return
	}
	if !s.credentialed {
		writeError(w, http.StatusBadRequest, "API keys are not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()
	res := s.pipeline.Generate(ctx, topic, req.Customization)
	if res.Status != generator.StatusSuccess {
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Status: "error",
			Error:  res.Content,
			Debug:  strings.TrimPrefix(res.Content, errorPrefix),
		})
		return
	}

	entry := HistoryEntry{
		ID:            uuid.NewString(),
		Topic:         topic,
		Content:       res.Content,
		Timestamp:     time.Now(),
		Customization: res.Customization,
	}
	s.store.append(sessionID, entry)

	writeJSON(w, http.StatusOK, s.newsletterResponse(entry))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := s.session(w, r)
	entries := s.store.recent(sessionID)
	out := make([]historySummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, historySummary{ID: e.ID, Topic: e.Topic, Timestamp: e.Timestamp})
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

func (s *Server) handleHistoryEntry(w http.ResponseWriter, r *http.Request) {
	sessionID := s.session(w, r)
	entry, ok := s.store.find(sessionID, mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "newsletter not found")
		return
	}
	writeJSON(w, http.StatusOK, s.newsletterResponse(entry))
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sessionID := s.session(w, r)
	vars := mux.Vars(r)
	entry, ok := s.store.find(sessionID, vars["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "newsletter not found")
		return
	}

	var body, contentType, ext string
	switch vars["format"] {
	case "md":
		body, contentType, ext = entry.Content, "text/markdown", "md"
	case "html":
		body, contentType, ext = export.HTMLDocument(entry.Content), "text/html", "html"
	case "txt":
		body, contentType, ext = export.PlainText(entry.Content), "text/plain", "txt"
	default:
		writeError(w, http.StatusBadRequest, "unknown download format")
		return
	}

	w.Header().Set("Content-Type", contentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": export.Filename(entry.Topic, ext),
	}))
	_, _ = w.Write([]byte(body))
}

func (s *Server) newsletterResponse(entry HistoryEntry) newsletterResponse {
	preview, err := export.RenderPreview(entry.Content)
	if err != nil {
		log.Printf("[server] preview render failed: %v", err)
	}
	base := "/api/newsletters/" + entry.ID + "/download/"
	return newsletterResponse{
		Status:     "success",
		Newsletter: entry,
		Preview:    preview,
		Analytics:  export.Analyze(entry.Content),
		Downloads: map[string]string{
			"markdown": base + "md",
			"html":     base + "html",
			"text":     base + "txt",
		},
	}
}

// --- Helpers ---

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Debug  string `json:"debug,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Status: "error", Error: msg})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		log.Printf("[server] %s %s %d %v", r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
	})
}
