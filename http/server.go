package http

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/unfurlkit/unfurl"
)

// Server exposes the extraction pipeline as a JSON API with a minimal HTML
// form for interactive use.
type Server struct {
	service unfurl.Service
	limiter *HostLimiter
	logger  *slog.Logger
	mux     *http.ServeMux
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLimiter sets a per-host politeness limiter for outbound fetches.
func WithLimiter(limiter *HostLimiter) ServerOption {
	return func(s *Server) {
		s.limiter = limiter
	}
}

// NewServer wires handlers onto an HTTP mux.
func NewServer(service unfurl.Service, opts ...ServerOption) *Server {
	s := &Server{
		service: service,
		logger:  slog.Default(),
		mux:     http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// ServeHTTP satisfies the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/api/extract", s.handleExtract)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// extractRequest is the POST body for /api/extract.
type extractRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	begin := time.Now()
	requestID := uuid.NewString()

	var rawURL string
	switch r.Method {
	case http.MethodGet:
		rawURL = r.URL.Query().Get("url")
	case http.MethodPost:
		var req extractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, requestID, unfurl.Errorf(unfurl.EINVALID, "invalid JSON body: %v", err))
			return
		}
		rawURL = req.URL
	default:
		s.methodNotAllowed(w, http.MethodGet, http.MethodPost)
		return
	}

	if err := unfurl.ValidateURL(rawURL); err != nil {
		s.writeError(w, requestID, err)
		return
	}

	if s.limiter != nil {
		target, _ := url.Parse(rawURL)
		if err := s.limiter.Wait(r.Context(), target.Host); err != nil {
			s.writeError(w, requestID, unfurl.Errorf(unfurl.EUNAVAILABLE, "rate limit wait: %v", err))
			return
		}
	}

	result, err := s.service.Unfurl(r.Context(), rawURL)
	if err != nil {
		s.logger.Info("extract",
			"request_id", requestID,
			"url", rawURL,
			"duration", time.Since(begin),
			"err", unfurl.ErrorMessage(err),
		)
		s.writeError(w, requestID, err)
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		s.writeError(w, requestID, unfurl.Errorf(unfurl.EINTERNAL, "encode result: %v", err))
		return
	}

	s.logger.Info("extract",
		"request_id", requestID,
		"url", rawURL,
		"fields", len(result.Fields),
		"duration", time.Since(begin),
	)

	etag := fmt.Sprintf("%q", fmt.Sprintf("%x", xxhash.Sum64(body)))
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
}

// writeError maps application error codes onto HTTP status codes. Fetch
// failures are user-correctable (target not reachable), so they surface as
// 400 rather than 500.
func (s *Server) writeError(w http.ResponseWriter, requestID string, err error) {
	code := unfurl.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case unfurl.EINVALID, unfurl.EUNAVAILABLE:
		status = http.StatusBadRequest
	case unfurl.ENOTFOUND:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("internal error", "request_id", requestID, "err", err)
	}

	writeJSON(w, status, map[string]any{"error": unfurl.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>unfurl</title>
</head>
<body>
	<h1>unfurl</h1>
	<p>Extract structured metadata from any web page.</p>
	<form action="/api/extract" method="get">
		<input type="url" name="url" placeholder="https://example.com/" size="60" required>
		<button type="submit">Extract</button>
	</form>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
		return
	}
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, http.MethodGet)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, nil)
}
