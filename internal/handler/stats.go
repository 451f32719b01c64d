package handler

import (
	"net/http"

	"github.com/binderapp/binder/internal/catalog"
	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/prefs"
	"github.com/binderapp/binder/internal/query"
	"github.com/binderapp/binder/internal/stats"
)

// HandleGetStats returns the collection summary for a whole set
// @Summary Collection statistics
// @Description Returns ownership counts, completion and collection value for a set, with a per-rarity breakdown
// @Tags stats
// @Produce json
// @Param set query string true "Set code"
// @Success 200 {object} stats.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /stats [get]
func HandleGetStats(catalogSvc catalog.Service, collectionSvc collection.Service, prefsSvc prefs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		setCode, ok := GetQueryParam(r, w, "set")
		if !ok {
			return
		}

		preferences, err := prefsSvc.Get(r.Context())
		if err != nil {
			respondServiceError(w, r, "Collection stats", err)
			return
		}

		cards, err := catalogSvc.Cards(r.Context(), setCode, preferences.CatalogVariant)
		if err != nil {
			respondServiceError(w, r, "Collection stats", err)
			return
		}

		summary := stats.Compute(cards, entryLookup(r, collectionSvc))

		log.Debug("Stats computed",
			"set", setCode,
			"total", summary.TotalCards,
			"owned", summary.OwnedCards)

		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleGetFilteredStats returns the summary for the subset a filter selects
// @Summary Filtered collection statistics
// @Description Returns the summary over the cards matching the given filters. For the missing, foilOwned and wanted ownership filters the value is the acquisition estimate of the subset instead of the owned value.
// @Tags stats
// @Produce json
// @Param set query string true "Set code"
// @Param search query string false "Name substring filter"
// @Param rarity query string false "Rarity filter"
// @Param ownership query string false "Ownership filter"
// @Param printing query string false "Printing filter"
// @Success 200 {object} stats.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /stats/filtered [get]
func HandleGetFilteredStats(catalogSvc catalog.Service, collectionSvc collection.Service, prefsSvc prefs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		setCode, ok := GetQueryParam(r, w, "set")
		if !ok {
			return
		}

		params := r.URL.Query()
		criteria, err := query.ParseCriteria(
			params.Get("search"),
			params.Get("rarity"),
			params.Get("ownership"),
			params.Get("printing"),
		)
		if err != nil {
			respondServiceError(w, r, "Filtered stats", err)
			return
		}

		preferences, err := prefsSvc.Get(r.Context())
		if err != nil {
			respondServiceError(w, r, "Filtered stats", err)
			return
		}

		cards, err := catalogSvc.Cards(r.Context(), setCode, preferences.CatalogVariant)
		if err != nil {
			respondServiceError(w, r, "Filtered stats", err)
			return
		}

		statusLookup := func(cardID string) domain.OwnershipStatus {
			return collectionSvc.Status(r.Context(), cardID)
		}
		filtered := query.Apply(cards, statusLookup, criteria)

		summary := stats.ComputeFiltered(filtered, entryLookup(r, collectionSvc), criteria.Ownership)

		log.Debug("Filtered stats computed",
			"set", setCode,
			"ownership", criteria.Ownership,
			"matched", summary.TotalCards)

		respondJSON(w, http.StatusOK, summary)
	}
}

// entryLookup adapts the collection service to the stats lookup contract
func entryLookup(r *http.Request, collectionSvc collection.Service) stats.EntryLookup {
	return func(cardID string) (domain.CollectionEntry, bool) {
		return collectionSvc.Get(r.Context(), cardID)
	}
}
