package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
	"github.com/binderapp/binder/internal/validation"
)

// SchemaCatalogFile names the schema a local catalog file must satisfy
const SchemaCatalogFile = "catalog-file"

// catalogFileSchema pins the local file format: the same list shape the API
// serves, minus pagination. Extras are marked per card instead of being
// scoped by the search query.
const catalogFileSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["data"],
	"properties": {
		"data": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "name", "set", "collector_number", "rarity"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string", "minLength": 1},
					"set": {"type": "string", "minLength": 1},
					"collector_number": {"type": "string", "minLength": 1},
					"rarity": {"type": "string", "enum": ["common", "uncommon", "rare", "mythic"]},
					"nonfoil": {"type": "boolean"},
					"foil": {"type": "boolean"},
					"extra": {"type": "boolean"},
					"prices": {
						"type": "object",
						"properties": {
							"usd": {"type": ["string", "null"]},
							"usd_foil": {"type": ["string", "null"]}
						}
					}
				}
			}
		}
	}
}`

// FileProvider serves the catalog from a local JSON file instead of the API.
// Used for offline development and air-gapped deployments.
type FileProvider struct {
	path      string
	validator validation.SchemaValidator
}

// NewFileProvider creates a provider reading from path
func NewFileProvider(path string) (*FileProvider, error) {
	v, err := validation.NewSchemaValidator(map[string]string{
		SchemaCatalogFile: catalogFileSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog file validator: %w", err)
	}
	return &FileProvider{path: path, validator: v}, nil
}

// SearchSet filters the file's cards down to one set and variant. The whole
// file is validated before anything is decoded, so a malformed file fails
// loudly instead of producing a half-empty catalog.
func (f *FileProvider) SearchSet(ctx context.Context, setCode string, variant domain.CatalogVariant) ([]domain.Card, int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	if err := f.validator.Validate(data, SchemaCatalogFile); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var payload struct {
		Data []cardPayload `json:"data"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var cards []domain.Card
	for _, p := range payload.Data {
		if p.Set != setCode {
			continue
		}
		if p.Extra && variant != domain.VariantExtras {
			continue
		}
		cards = append(cards, p.toDomain())
	}

	logger.FromContext(ctx).Debug(LogMsgFileLoaded, "path", f.path, "set", setCode, "cards", len(cards))
	return cards, 1, nil
}
