package catalog

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// DocumentPath is the path a catalog document is served under.
const DocumentPath = "/data.json"

// Server serves a single validated catalog document over HTTP, giving the
// loader a live source interchangeable with the embedded one.
type Server struct {
	doc     []byte
	catalog Catalog
	logger  *log.Logger
}

// NewServer validates doc and returns a Server for it.
func NewServer(doc []byte, logger *log.Logger) (*Server, error) {
	c, err := Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("serve catalog: %w", err)
	}
	return &Server{doc: doc, catalog: c, logger: logger}, nil
}

// Catalog returns the catalog being served.
func (s *Server) Catalog() Catalog {
	return s.catalog
}

// Handler returns the router for the catalog endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if s.logger != nil {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}))

	r.Get(DocumentPath, s.serveDocument)
	r.Head(DocumentPath, s.serveDocument)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func (s *Server) serveDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(s.doc)
}
