package handler

import (
	"net/http"

	"github.com/binderapp/binder/internal/catalog"
)

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	catalogSvc catalog.Service
}

// NewAdminCacheHandler creates a new admin cache handler
func NewAdminCacheHandler(catalogSvc catalog.Service) *AdminCacheHandler {
	return &AdminCacheHandler{
		catalogSvc: catalogSvc,
	}
}

// HandleGetCacheStats returns current catalog cache statistics
// GET /api/v1/admin/cache/stats
// @Summary Get catalog cache stats
// @Description Returns cache hit/miss statistics for monitoring (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} catalog.CacheStats
// @Router /admin/cache/stats [get]
func (h *AdminCacheHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.catalogSvc.CacheStats()
	respondJSON(w, http.StatusOK, stats)
}
