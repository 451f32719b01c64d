package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/logger"
)

// HandleExportCollection serves the ledger as a downloadable JSON document
// @Summary Export collection
// @Description Downloads the whole ledger as pretty-printed interchange JSON
// @Tags collection
// @Produce json
// @Success 200 {array} domain.CollectionEntry
// @Failure 500 {object} ErrorResponse
// @Router /collection/export [get]
func HandleExportCollection(collectionSvc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		payload, err := collectionSvc.Export(r.Context())
		if err != nil {
			log.Error("Export failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
			return
		}

		filename := fmt.Sprintf("collection-%s.json", time.Now().UTC().Format("2006-01-02"))

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			log.Error("Failed to write export response", "error", err)
		}
	}
}

// HandleImportCollection replaces the ledger with an uploaded document
// @Summary Import collection
// @Description Replaces the whole ledger with the uploaded JSON array. Unusable elements are dropped; a non-array payload is rejected and the existing ledger is kept.
// @Tags collection
// @Accept json
// @Produce json
// @Success 200 {object} collection.ImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /collection/import [post]
func HandleImportCollection(collectionSvc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			// MaxBytesReader trips here when the body exceeds the size limit
			log.Warn("Failed to read import payload", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgImportBodyTooLarge)
			return
		}

		result, err := collectionSvc.Import(r.Context(), payload)
		if err != nil {
			respondServiceError(w, r, "Import collection", err)
			return
		}

		log.Info("Collection imported", "kept", result.Kept, "dropped", result.Dropped)

		respondJSON(w, http.StatusOK, result)
	}
}
