package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radioconsole/persist/pkg/store"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleGetSettings returns the full decoded settings record.
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	settings := s.store.Settings()
	s.mu.Unlock()

	sendSuccess(w, settings)
}

// handleGetField returns one scalar field, after the store's read repair.
func (s *Server) handleGetField(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "field")
	accessor, ok := fieldTable[name]
	if !ok {
		sendError(w, store.ErrUnknownField.Error()+": "+name, http.StatusNotFound)
		return
	}

	s.mu.Lock()
	value := accessor.get(s.store)
	s.mu.Unlock()

	s.metrics.RecordFieldRead(name)
	sendSuccess(w, FieldValue{Field: name, Value: value})
}

// handlePutField writes one scalar field. The store clamps; the response
// carries the value actually stored.
func (s *Server) handlePutField(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "field")
	accessor, ok := fieldTable[name]
	if !ok {
		sendError(w, store.ErrUnknownField.Error()+": "+name, http.StatusNotFound)
		return
	}

	var req SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	accessor.set(s.store, req.Value)
	stored := accessor.get(s.store)
	s.mu.Unlock()

	s.metrics.RecordFieldWrite(name)
	sendSuccess(w, FieldValue{Field: name, Value: stored})
}

// handleGetFlags returns every UI flag by name.
func (s *Server) handleGetFlags(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	flags := map[string]bool{}
	for _, fi := range store.Flags() {
		flags[fi.Name] = s.store.Flag(fi.Flag)
	}
	s.mu.Unlock()

	sendSuccess(w, flags)
}

// handleGetFlag returns one UI flag.
func (s *Server) handleGetFlag(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "flag")
	flag, ok := store.FlagByName(name)
	if !ok {
		sendError(w, store.ErrUnknownFlag.Error()+": "+name, http.StatusNotFound)
		return
	}

	s.mu.Lock()
	value := s.store.Flag(flag)
	s.mu.Unlock()

	sendSuccess(w, FlagValue{Flag: name, Value: value})
}

// handlePutFlag sets one UI flag bit, leaving the rest of the register alone.
func (s *Server) handlePutFlag(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "flag")
	flag, ok := store.FlagByName(name)
	if !ok {
		sendError(w, store.ErrUnknownFlag.Error()+": "+name, http.StatusNotFound)
		return
	}

	var req SetFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.store.SetFlag(flag, req.Value)
	s.mu.Unlock()

	sendSuccess(w, FlagValue{Flag: name, Value: req.Value})
}

// handleCommit persists the cache to the backing device.
func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.store.Persist()
	stats := s.store.Stats()
	s.mu.Unlock()

	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.UpdateStoreStats(stats.Repairs, stats.Persists, stats.IntegrityFailures)
	sendSuccess(w, map[string]string{"status": "persisted"})
}

// handleReset loads factory defaults into the cache. Durable only after a
// subsequent commit.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.store.Defaults()
	s.mu.Unlock()

	sendSuccess(w, map[string]string{"status": "defaults loaded, commit to persist"})
}

// handleStats reports the store's activity counters.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stats := s.store.Stats()
	s.mu.Unlock()

	s.metrics.UpdateStoreStats(stats.Repairs, stats.Persists, stats.IntegrityFailures)
	sendSuccess(w, StatsResponse{
		Repairs:           stats.Repairs,
		Persists:          stats.Persists,
		IntegrityFailures: stats.IntegrityFailures,
	})
}

// handleCreateSnapshot archives the current sealed cache image.
func (s *Server) handleCreateSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		sendError(w, "snapshot archive not configured", http.StatusServiceUnavailable)
		return
	}

	s.mu.Lock()
	im := s.store.Image()
	s.mu.Unlock()

	id, err := s.archive.Append(&im)
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, SnapshotResponse{ID: id})
}

// handleListSnapshots lists archived snapshots, newest first.
func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		sendError(w, "snapshot archive not configured", http.StatusServiceUnavailable)
		return
	}

	infos, err := s.archive.List()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, infos)
}

// handleRestoreSnapshot loads an archived image into the cache. The image
// passes the checksum gate before adoption; commit makes it durable.
func (s *Server) handleRestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		sendError(w, "snapshot archive not configured", http.StatusServiceUnavailable)
		return
	}

	id := chi.URLParam(r, "id")
	im, err := s.archive.Get(id)
	if err != nil {
		sendError(w, err.Error(), http.StatusNotFound)
		return
	}

	s.mu.Lock()
	err = s.store.LoadImage(*im)
	s.mu.Unlock()

	if err != nil {
		sendError(w, err.Error(), http.StatusConflict)
		return
	}
	sendSuccess(w, map[string]string{"status": "restored, commit to persist"})
}
