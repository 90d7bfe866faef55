package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/pagekit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server exposes import, persistence and generation over a JSON API.
// Dependencies are read at request time, so they may be assigned after
// NewServer returns but must be set before Open.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the bind address, e.g. ":8080".
	Addr string

	Importer  pagekit.Importer
	Pages     pagekit.PageService
	Generator pagekit.Generator
	Logger    *slog.Logger
}

// NewServer returns a new Server with all routes registered.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		router: chi.NewRouter(),
		Logger: slog.New(slog.DiscardHandler),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/style.css", s.handleStylesheet)
	s.router.Route("/pages", func(r chi.Router) {
		r.Get("/", s.handlePageList)
		r.Post("/import", s.handlePageImport)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handlePageView)
			r.Patch("/", s.handlePageUpdate)
			r.Delete("/", s.handlePageDelete)
			r.Get("/html", s.handlePageHTML)
			r.Get("/style.css", s.handleStylesheet)
		})
	})

	s.server.Handler = s.router
	return s
}

// ServeHTTP routes a request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open begins listening on Addr and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("serve", "error", err)
		}
	}()
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type importRequest struct {
	URL string `json:"url"`
}

type pageListResponse struct {
	Pages []*pagekit.Page `json:"pages"`
}

// handlePageImport imports the posted URL. The Importer's fetcher reaches
// whatever host the caller names; a server exposed beyond localhost should
// be given a fetcher built with WithDenyPrivateHosts.
func (s *Server) handlePageImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Error(w, r, pagekit.Errorf(pagekit.EINVALID, "invalid JSON body"))
		return
	}
	if req.URL == "" {
		s.Error(w, r, pagekit.Errorf(pagekit.EINVALID, "url required"))
		return
	}

	page := s.Importer.Import(r.Context(), req.URL)
	if err := s.Pages.CreatePage(r.Context(), page); err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, page)
}

func (s *Server) handlePageList(w http.ResponseWriter, r *http.Request) {
	var filter pagekit.PageFilter
	q := r.URL.Query()
	if v := q.Get("status"); v != "" {
		status := pagekit.Status(v)
		filter.Status = &status
	}
	if v := q.Get("sourceUrl"); v != "" {
		filter.SourceURL = &v
	}
	for key, dst := range map[string]*int{"offset": &filter.Offset, "limit": &filter.Limit} {
		if v := q.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				s.Error(w, r, pagekit.Errorf(pagekit.EINVALID, "invalid %s %q", key, v))
				return
			}
			*dst = n
		}
	}

	pages, err := s.Pages.FindPages(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if pages == nil {
		pages = []*pagekit.Page{}
	}

	s.writeJSON(w, http.StatusOK, pageListResponse{Pages: pages})
}

func (s *Server) handlePageView(w http.ResponseWriter, r *http.Request) {
	page, err := s.Pages.FindPageByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handlePageUpdate(w http.ResponseWriter, r *http.Request) {
	var upd pagekit.PageUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		s.Error(w, r, pagekit.Errorf(pagekit.EINVALID, "invalid JSON body"))
		return
	}

	page, err := s.Pages.UpdatePage(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handlePageDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Pages.DeletePage(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePageHTML(w http.ResponseWriter, r *http.Request) {
	page, err := s.Pages.FindPageByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	html, err := s.Generator.Generate(page)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	_, _ = w.Write([]byte(s.Generator.Stylesheet()))
}

// Error writes err as a JSON error response. Internal errors are logged and
// their details hidden from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := pagekit.ErrorCode(err), pagekit.ErrorMessage(err)
	if code == pagekit.EINTERNAL {
		s.Logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	s.writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorStatusCode maps an application error code to an HTTP status.
func ErrorStatusCode(code string) int {
	switch code {
	case pagekit.EINVALID:
		return http.StatusBadRequest
	case pagekit.ENOTFOUND:
		return http.StatusNotFound
	case pagekit.ECONFLICT:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "error", err)
	}
}
