package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/regsnap-cli/internal/logger"
)

// Handler wires snapshot endpoints to the snapshot service.
type Handler struct {
	service driving.SnapshotService
}

// NewHandler constructs a handler with its dependencies.
func NewHandler(service driving.SnapshotService) *Handler {
	return &Handler{service: service}
}

// Register mounts the snapshot endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/documents", h.HandleDocuments)
	r.Get("/api/statistics", h.HandleStatistics)
	r.Get("/api/historical", h.HandleHistorical)
	r.Post("/api/refresh", h.HandleRefresh)
	r.Post("/api/historical/cleanup", h.HandleCleanup)
}

// HandleDocuments handles GET /api/documents.
func (h *Handler) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if snapshot == nil {
		writeJSON(w, http.StatusOK, []domain.Document{})
		return
	}
	writeJSON(w, http.StatusOK, snapshot.Documents)
}

// HandleStatistics handles GET /api/statistics.
func (h *Handler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandleHistorical handles GET /api/historical.
func (h *Handler) HandleHistorical(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Historical(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleRefresh handles POST /api/refresh. An optional per_page query
// parameter overrides the configured page size.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	perPage := 0
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "per_page must be a positive integer"})
			return
		}
		perPage = n
	}

	snapshot, err := h.service.Refresh(r.Context(), perPage)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         snapshot.ID,
		"fetched_at": snapshot.FetchedAt,
		"documents":  len(snapshot.Documents),
		"agencies":   len(snapshot.Statistics),
	})
}

// HandleCleanup handles POST /api/historical/cleanup.
func (h *Handler) HandleCleanup(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Cleanup(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger.Warn("request failed: %v", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
