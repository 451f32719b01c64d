package handler

import (
	"net/http"

	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/snapshot"
)

// SnapshotListResponse lists the recorded value snapshots in date order
type SnapshotListResponse struct {
	Snapshots []domain.ValueSnapshot `json:"snapshots"`
	Count     int                    `json:"count"`
}

// HandleGetSnapshots returns the value history
// @Summary List value snapshots
// @Description Returns the recorded collection value snapshots, oldest first
// @Tags snapshots
// @Produce json
// @Success 200 {object} SnapshotListResponse
// @Failure 500 {object} ErrorResponse
// @Router /snapshots [get]
func HandleGetSnapshots(snapshotSvc snapshot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		snaps, err := snapshotSvc.List(r.Context())
		if err != nil {
			log.Error("Failed to list snapshots", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListSnapshotsFailed)
			return
		}

		respondJSON(w, http.StatusOK, SnapshotListResponse{
			Snapshots: snaps,
			Count:     len(snaps),
		})
	}
}
