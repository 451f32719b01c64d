package handler

import (
	"net/http"
	"strings"

	"github.com/binderapp/binder/internal/catalog"
	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/prefs"
	"github.com/binderapp/binder/internal/snapshot"
)

// AdminHandler handles the operational admin endpoints
type AdminHandler struct {
	snapshotJob *snapshot.Job
	catalogSvc  catalog.Service
	prefsSvc    prefs.Service
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(snapshotJob *snapshot.Job, catalogSvc catalog.Service, prefsSvc prefs.Service) *AdminHandler {
	return &AdminHandler{
		snapshotJob: snapshotJob,
		catalogSvc:  catalogSvc,
		prefsSvc:    prefsSvc,
	}
}

// SnapshotResponse reports the snapshot an admin trigger recorded
type SnapshotResponse struct {
	Message  string               `json:"message"`
	Snapshot domain.ValueSnapshot `json:"snapshot"`
}

// refreshRequest validates the set code of a catalog refresh
type refreshRequest struct {
	Set string `validate:"required,setcode"`
}

// CatalogRefreshResponse reports the outcome of a catalog refresh
type CatalogRefreshResponse struct {
	Message string `json:"message"`
	Set     string `json:"set"`
	Variant string `json:"variant"`
	Cards   int    `json:"cards"`
}

// HandleTriggerSnapshot records a value snapshot right now
// POST /api/v1/admin/snapshot
// @Summary Trigger value snapshot
// @Description Records a value snapshot for the configured set immediately, replacing an earlier one from the same day
// @Tags admin
// @Produce json
// @Success 200 {object} SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/snapshot [post]
func (h *AdminHandler) HandleTriggerSnapshot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Info("Manual snapshot triggered")

	snap, err := h.snapshotJob.Run(r.Context())
	if err != nil {
		respondServiceError(w, r, "Trigger snapshot", err)
		return
	}

	respondJSON(w, http.StatusOK, SnapshotResponse{
		Message:  MsgSnapshotRecorded,
		Snapshot: snap,
	})
}

// HandleRefreshCatalog drops the cached card list for a set and reloads it
// POST /api/v1/admin/catalog/refresh?set=
// @Summary Refresh catalog cache
// @Description Invalidates the cached card list for a set and fetches it again from the provider
// @Tags admin
// @Produce json
// @Param set query string true "Set code"
// @Success 200 {object} CatalogRefreshResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/catalog/refresh [post]
func (h *AdminHandler) HandleRefreshCatalog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	setCode, ok := GetQueryParam(r, w, "set")
	if !ok {
		return
	}
	setCode = strings.ToLower(strings.TrimSpace(setCode))

	if err := GetValidator().ValidateStruct(refreshRequest{Set: setCode}); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return
	}

	preferences, err := h.prefsSvc.Get(r.Context())
	if err != nil {
		respondServiceError(w, r, "Refresh catalog", err)
		return
	}

	// Drop both variants; a stale extras list is as wrong as a stale cards list
	h.catalogSvc.Invalidate(r.Context(), setCode, domain.VariantCards)
	h.catalogSvc.Invalidate(r.Context(), setCode, domain.VariantExtras)

	cards, err := h.catalogSvc.Cards(r.Context(), setCode, preferences.CatalogVariant)
	if err != nil {
		respondServiceError(w, r, "Refresh catalog", err)
		return
	}

	log.Info("Catalog refreshed", "set", setCode, "variant", preferences.CatalogVariant, "cards", len(cards))

	respondJSON(w, http.StatusOK, CatalogRefreshResponse{
		Message: MsgCatalogRefreshed,
		Set:     setCode,
		Variant: string(preferences.CatalogVariant),
		Cards:   len(cards),
	})
}
