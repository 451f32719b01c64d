package handler

import (
	"net/http"

	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/prefs"
)

// UpdatePreferencesRequest carries the preference slots to change. Omitted
// fields keep their current value.
type UpdatePreferencesRequest struct {
	Language       string `json:"language" validate:"omitempty,max=10"`
	CatalogVariant string `json:"catalog_variant" validate:"omitempty,max=10"`
}

// HandleGetPreferences returns the collector preferences
// @Summary Get preferences
// @Description Returns the stored preferences, defaults for unset slots
// @Tags preferences
// @Produce json
// @Success 200 {object} domain.Preferences
// @Failure 500 {object} ErrorResponse
// @Router /preferences [get]
func HandleGetPreferences(prefsSvc prefs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		preferences, err := prefsSvc.Get(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get preferences", err)
			return
		}

		respondJSON(w, http.StatusOK, preferences)
	}
}

// HandleUpdatePreferences updates the preference slots present in the body
// @Summary Update preferences
// @Description Sets the language and/or catalog variant preference. Unknown values are rejected.
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body UpdatePreferencesRequest true "Preference values"
// @Success 200 {object} domain.Preferences
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /preferences [put]
func HandleUpdatePreferences(prefsSvc prefs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UpdatePreferencesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update preferences"); err != nil {
			return
		}

		if req.Language != "" {
			if _, err := prefsSvc.SetLanguage(r.Context(), req.Language); err != nil {
				respondServiceError(w, r, "Update preferences", err)
				return
			}
		}

		if req.CatalogVariant != "" {
			if _, err := prefsSvc.SetCatalogVariant(r.Context(), req.CatalogVariant); err != nil {
				respondServiceError(w, r, "Update preferences", err)
				return
			}
		}

		preferences, err := prefsSvc.Get(r.Context())
		if err != nil {
			respondServiceError(w, r, "Update preferences", err)
			return
		}

		log.Info("Preferences updated",
			"language", preferences.Language,
			"catalog_variant", preferences.CatalogVariant)

		respondJSON(w, http.StatusOK, preferences)
	}
}
