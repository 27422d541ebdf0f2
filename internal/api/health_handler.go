package api

import (
	"net/http"

	"github.com/o-magnata69/back-end-api/internal/api/shared"
	"github.com/o-magnata69/back-end-api/internal/config"
	"github.com/o-magnata69/back-end-api/internal/service"
)

// HealthHandler handles GET /. It always answers 200; a database failure is
// reported in dbStatus.
type HealthHandler struct {
	healthService service.HealthService
	message       string
	author        string
}

// NewHealthHandler creates a HealthHandler reporting the configured banner.
func NewHealthHandler(healthService service.HealthService, cfg config.APIConfig) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		message:       cfg.Message,
		author:        cfg.Author,
	}
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	status := h.healthService.Check(r.Context())

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Message:  h.message,
		Author:   h.author,
		DBStatus: status.DBStatus,
	})
}

// Liveness handles GET /health. It does not touch the database.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
