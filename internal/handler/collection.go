package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
)

// CollectionResponse lists every ledger entry
type CollectionResponse struct {
	Entries []domain.CollectionEntry `json:"entries"`
	Count   int                      `json:"count"`
}

// EntryResponse carries the state of one entry after a mutation. A pruned
// entry has no remaining state, so the entry field is omitted.
type EntryResponse struct {
	Entry  *domain.CollectionEntry `json:"entry,omitempty"`
	Pruned bool                    `json:"pruned,omitempty"`
}

// SetQuantitiesRequest sets the owned copy counts for a card. Negative
// quantities are clamped to zero rather than rejected.
type SetQuantitiesRequest struct {
	NormalQty int `json:"normal_qty"`
	FoilQty   int `json:"foil_qty"`
}

// HandleGetCollection returns every collection entry
// @Summary List collection
// @Description Returns all ledger entries, sorted by card ID
// @Tags collection
// @Produce json
// @Success 200 {object} CollectionResponse
// @Router /collection [get]
func HandleGetCollection(collectionSvc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := collectionSvc.GetAll(r.Context())
		respondJSON(w, http.StatusOK, CollectionResponse{
			Entries: entries,
			Count:   len(entries),
		})
	}
}

// HandleGetCollectionCard returns the entry for one card
// @Summary Get collection entry
// @Description Returns the ledger entry for a card, 404 when the card has none
// @Tags collection
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} domain.CollectionEntry
// @Failure 404 {object} ErrorResponse
// @Router /collection/{cardID} [get]
func HandleGetCollectionCard(collectionSvc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID := chi.URLParam(r, "cardID")
		if cardID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgCardIDRequired)
			return
		}

		entry, ok := collectionSvc.Get(r.Context(), cardID)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgCardNotFoundHTTP)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleSetQuantities sets the owned copy counts for a card
// @Summary Set quantities
// @Description Sets the normal and foil copy counts for a card. Setting both to zero on a card without a wishlist flag prunes the entry.
// @Tags collection
// @Accept json
// @Produce json
// @Param cardID path string true "Card ID"
// @Param request body SetQuantitiesRequest true "Copy counts"
// @Success 200 {object} EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /collection/{cardID} [put]
func HandleSetQuantities(collectionSvc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		cardID := chi.URLParam(r, "cardID")
		if cardID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgCardIDRequired)
			return
		}

		var req SetQuantitiesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set quantities"); err != nil {
			return
		}

		entry, err := collectionSvc.SetQuantities(r.Context(), cardID, req.NormalQty, req.FoilQty)
		if err != nil {
			respondServiceError(w, r, "Set quantities", err)
			return
		}

		log.Info("Quantities set",
			"card_id", cardID,
			"normal_qty", entry.NormalQty,
			"foil_qty", entry.FoilQty,
			"pruned", entry.Empty())

		respondJSON(w, http.StatusOK, entryResponse(entry))
	}
}

// HandleToggleWanted flips the wishlist flag for a card
// @Summary Toggle wishlist
// @Description Flips the wishlist flag, creating the entry when missing and pruning it when the flip empties it
// @Tags collection
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /collection/{cardID}/wishlist [post]
func HandleToggleWanted(collectionSvc collection.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		cardID := chi.URLParam(r, "cardID")
		if cardID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgCardIDRequired)
			return
		}

		entry, err := collectionSvc.ToggleWanted(r.Context(), cardID)
		if err != nil {
			respondServiceError(w, r, "Toggle wishlist", err)
			return
		}

		log.Info("Wishlist toggled", "card_id", cardID, "wanted", entry.Wanted)

		respondJSON(w, http.StatusOK, entryResponse(entry))
	}
}

func entryResponse(entry domain.CollectionEntry) EntryResponse {
	if entry.Empty() {
		return EntryResponse{Pruned: true}
	}
	return EntryResponse{Entry: &entry}
}
