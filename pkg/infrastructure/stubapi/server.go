// Package stubapi is an in-memory stand-in for the hosted inventory API,
// implementing the same REST contract so the dashboard can be run and
// tested without the real backend. Records are stored as raw JSON objects
// and handed back with Mongo-style "_id" keys, which also exercises the
// client's identifier normalization.
package stubapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var collections = map[string]bool{
	"products":  true,
	"customers": true,
	"sales":     true,
}

type collection struct {
	order   []string
	records map[string]map[string]any
}

func newCollection() *collection {
	return &collection{records: make(map[string]map[string]any)}
}

// Server holds the three collections behind one lock
type Server struct {
	mu     sync.RWMutex
	data   map[string]*collection
	logger zerolog.Logger
}

// New creates an empty stub server
func New(logger zerolog.Logger) *Server {
	data := make(map[string]*collection, len(collections))
	for name := range collections {
		data[name] = newCollection()
	}
	return &Server{data: data, logger: logger}
}

// Handler returns the chi router serving the API contract
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api/{collection}", func(r chi.Router) {
		r.Use(s.requireCollection)
		r.Get("/", s.list)
		r.Post("/", s.create)
		r.Put("/{id}", s.update)
		r.Delete("/{id}", s.remove)
	})
	return r
}

// Seed inserts records directly, assigning ids to any without one.
// Intended for tests and dev bootstrap.
func (s *Server) Seed(name string, records []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.data[name]
	if col == nil {
		return
	}
	for _, rec := range records {
		id, _ := rec["_id"].(string)
		if id == "" {
			id = uuid.NewString()
			rec["_id"] = id
		}
		if _, exists := col.records[id]; !exists {
			col.order = append(col.order, id)
		}
		col.records[id] = rec
	}
}

// Count returns the number of records in a collection
func (s *Server) Count(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col := s.data[name]
	if col == nil {
		return 0
	}
	return len(col.order)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("stub api request")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireCollection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !collections[chi.URLParam(r, "collection")] {
			writeError(w, http.StatusNotFound, "unknown collection")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	col := s.data[chi.URLParam(r, "collection")]
	out := make([]map[string]any, 0, len(col.order))
	for _, id := range col.order {
		out = append(out, col.records[id])
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}

	id := uuid.NewString()
	delete(rec, "id")
	rec["_id"] = id

	s.mu.Lock()
	col := s.data[chi.URLParam(r, "collection")]
	col.order = append(col.order, id)
	col.records[id] = rec
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	rec, ok := decodeRecord(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	col := s.data[chi.URLParam(r, "collection")]
	_, exists := col.records[id]
	if exists {
		delete(rec, "id")
		rec["_id"] = id
		col.records[id] = rec
	}
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	col := s.data[chi.URLParam(r, "collection")]
	_, exists := col.records[id]
	if exists {
		delete(col.records, id)
		for i, existing := range col.order {
			if existing == id {
				col.order = append(col.order[:i], col.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var rec map[string]any
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return rec, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
