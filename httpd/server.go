// Package httpd provides the HTTP boundary for the askweb core: scraping,
// reindexing, and question answering endpoints.
package httpd

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/askweb/askweb"
	"github.com/askweb/askweb/rag"
	"github.com/askweb/askweb/scrape"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server exposes the core over HTTP. Each request runs on its own
// goroutine, so a blocking generation never stalls other requests.
type Server struct {
	Addr      string
	Pipeline  *scrape.Pipeline
	Documents askweb.DocumentService
	Cache     *rag.Cache
	Asker     askweb.Asker
	Logger    *slog.Logger // optional

	// AllowedOrigins configures CORS for browser dashboards. Empty
	// disables cross-origin access.
	AllowedOrigins []string

	srv *http.Server
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if len(s.AllowedOrigins) > 0 {
		r.Use(corsMiddleware(s.AllowedOrigins))
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/stats", s.handleStats)
	r.Post("/scrape", s.handleScrape)
	r.Post("/reindex", s.handleReindex)
	r.Post("/query", s.handleQuery)
	r.Post("/query/stream", s.handleQueryStream)

	return r
}

// ListenAndServe starts the server and blocks until ctx is canceled or the
// listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	n, err := s.Documents.CountDocuments(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"documents": n})
}

type scrapeRequest struct {
	URLs []string `json:"urls"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, askweb.Errorf(askweb.EINVALID, "invalid JSON body"))
		return
	}
	if len(req.URLs) == 0 {
		s.writeError(w, r, askweb.Errorf(askweb.EINVALID, "missing 'urls' in request body"))
		return
	}

	inserted, err := s.Pipeline.Run(r.Context(), req.URLs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"inserted": inserted})
}

func (s *Server) handleReindex(w http.ResponseWriter, r *http.Request) {
	idx, err := s.Cache.Rebuild(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"indexed": idx.Len()})
}

type queryRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, askweb.Errorf(askweb.EINVALID, "invalid JSON body"))
		return
	}
	if req.Query == "" {
		s.writeError(w, r, askweb.Errorf(askweb.EINVALID, "missing 'query' in request body"))
		return
	}

	answer, err := s.Asker.Ask(r.Context(), req.Query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// handleQueryStream emits the answer as server-sent events, one data event
// per generated chunk, terminated by an event named "done".
func (s *Server) handleQueryStream(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, askweb.Errorf(askweb.EINVALID, "invalid JSON body"))
		return
	}
	if req.Query == "" {
		s.writeError(w, r, askweb.Errorf(askweb.EINVALID, "missing 'query' in request body"))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, r, askweb.Errorf(askweb.EINTERNAL, "streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")

	started := false
	err := s.Asker.AskStream(r.Context(), req.Query, func(chunk string) error {
		started = true
		payload, err := json.Marshal(map[string]string{"text": chunk})
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		// Headers are gone once the stream started; report in-band then.
		if !started {
			s.writeError(w, r, err)
			return
		}
		s.logger().Error("stream aborted", "error", err)
		w.Write([]byte("event: error\ndata: " + askweb.ErrorMessage(err) + "\n\n"))
		flusher.Flush()
		return
	}

	w.Write([]byte("event: done\ndata: {}\n\n"))
	flusher.Flush()
}

// writeError maps domain error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := askweb.ErrorCode(err)
	status := statusFromCode(code)
	if status >= 500 {
		s.logger().Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": askweb.ErrorMessage(err), "code": code})
}

func statusFromCode(code string) int {
	switch code {
	case askweb.EINVALID:
		return http.StatusBadRequest
	case askweb.ENOTFOUND:
		return http.StatusNotFound
	case askweb.EEMPTYCORPUS:
		return http.StatusConflict
	case askweb.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	case askweb.EGENERATION:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// corsMiddleware allows the configured browser origins to call the API.
func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
