package handler

import (
	"net/http"

	"github.com/binderapp/binder/internal/catalog"
	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/prefs"
	"github.com/binderapp/binder/internal/query"
)

// CardView joins a catalog card with the collector's ownership state
type CardView struct {
	domain.Card
	NormalQty int  `json:"normal_qty"`
	FoilQty   int  `json:"foil_qty"`
	Owned     bool `json:"owned"`
	FoilOwned bool `json:"foil_owned"`
	Wanted    bool `json:"wanted"`
}

// CardListResponse is the response for the card browsing endpoint
type CardListResponse struct {
	Set     string     `json:"set"`
	Variant string     `json:"variant"`
	Total   int        `json:"total"`
	Cards   []CardView `json:"cards"`
}

// HandleGetCards returns the filtered, sorted card views for a set
// @Summary Browse cards
// @Description Returns the cards of a set joined with ownership state, filtered and sorted
// @Tags cards
// @Produce json
// @Param set query string true "Set code"
// @Param search query string false "Name substring filter"
// @Param rarity query string false "Rarity filter (common, uncommon, rare, mythic, all)"
// @Param ownership query string false "Ownership filter (owned, missing, foilOwned, wanted, all)"
// @Param printing query string false "Printing filter (hasFoil, hasNonFoil, all)"
// @Param sort query string false "Sort key (collector, name, price)"
// @Param dir query string false "Sort direction (asc, desc)"
// @Success 200 {object} CardListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cards [get]
func HandleGetCards(catalogSvc catalog.Service, collectionSvc collection.Service, prefsSvc prefs.Service) http.HandlerFunc {
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
			respondServiceError(w, r, "Browse cards", err)
			return
		}

		sortKey, sortDir, err := query.ParseSort(params.Get("sort"), params.Get("dir"))
		if err != nil {
			respondServiceError(w, r, "Browse cards", err)
			return
		}

		preferences, err := prefsSvc.Get(r.Context())
		if err != nil {
			respondServiceError(w, r, "Browse cards", err)
			return
		}

		cards, err := catalogSvc.Cards(r.Context(), setCode, preferences.CatalogVariant)
		if err != nil {
			respondServiceError(w, r, "Browse cards", err)
			return
		}

		lookup := func(cardID string) domain.OwnershipStatus {
			return collectionSvc.Status(r.Context(), cardID)
		}
		filtered := query.Apply(cards, lookup, criteria)
		sorted := query.SortCards(filtered, sortKey, sortDir, preferences.Language)

		views := make([]CardView, 0, len(sorted))
		for _, card := range sorted {
			entry, _ := collectionSvc.Get(r.Context(), card.ID)
			status := entry.Status()
			views = append(views, CardView{
				Card:      card,
				NormalQty: entry.NormalQty,
				FoilQty:   entry.FoilQty,
				Owned:     status.Owned,
				FoilOwned: status.FoilOwned,
				Wanted:    status.Wanted,
			})
		}

		log.Debug("Cards browsed",
			"set", setCode,
			"variant", preferences.CatalogVariant,
			"matched", len(views),
			"of", len(cards))

		respondJSON(w, http.StatusOK, CardListResponse{
			Set:     setCode,
			Variant: string(preferences.CatalogVariant),
			Total:   len(views),
			Cards:   views,
		})
	}
}
