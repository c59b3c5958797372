// Package server serves the web build of quackshot and stores player profiles.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"quackshot/game"
	"quackshot/save"
)

// maxProfileBytes caps a profile upload
const maxProfileBytes = 64 << 10

// Server is the static file and profile API handler
type Server struct {
	staticDir  string
	profileDir string
	log        *slog.Logger

	mu     sync.Mutex
	stores map[string]*save.FileStore

	router *mux.Router
}

// New creates a server. staticDir holds the web build; profileDir holds one YAML file per profile.
func New(staticDir, profileDir string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		staticDir:  staticDir,
		profileDir: profileDir,
		log:        log,
		stores:     make(map[string]*save.FileStore),
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/profiles", s.createProfile).Methods(http.MethodPost)
	api.HandleFunc("/profiles/{id}", s.getProfile).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{id}", s.putProfile).Methods(http.MethodPut)
	api.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	r.Use(s.logRequests)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// store returns the cached file store for a profile id, or an uncached handle
func (s *Server) store(id string) *save.FileStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.stores[id]; ok {
		return st
	}
	return save.NewFileStore(filepath.Join(s.profileDir, id+".yaml"))
}

// remember caches a store once its profile exists on disk
func (s *Server) remember(id string, st *save.FileStore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stores[id]; !ok {
		s.stores[id] = st
	}
}

// profileID extracts and validates the id route variable
func profileID(r *http.Request) (string, error) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid profile id %q: %w", raw, err)
	}
	return id.String(), nil
}

func (s *Server) createProfile(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	st := s.store(id)
	if err := st.Save(game.DefaultSnapshot()); err != nil {
		s.log.Error("failed to create profile", "error", err)
		http.Error(w, "failed to create profile", http.StatusInternalServerError)
		return
	}
	s.remember(id, st)
	s.log.Info("profile created", "id", id)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st := s.store(id)
	snap, err := st.Load()
	switch {
	case errors.Is(err, game.ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	case err != nil:
		s.log.Warn("corrupt profile, serving defaults", "id", id, "error", err)
	}
	s.remember(id, st)
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) putProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var snap game.Snapshot
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProfileBytes))
	if err := dec.Decode(&snap); err != nil {
		http.Error(w, "invalid profile: "+err.Error(), http.StatusBadRequest)
		return
	}

	snap = snap.Normalize()
	st := s.store(id)
	if err := st.Save(snap); err != nil {
		s.log.Error("failed to save profile", "id", id, "error", err)
		http.Error(w, "failed to save profile", http.StatusInternalServerError)
		return
	}
	s.remember(id, st)
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("failed to write response", "error", err)
	}
}
