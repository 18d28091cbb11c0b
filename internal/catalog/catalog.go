// Package catalog holds the curated micro-adventure collection for the
// Düsseldorf Volksgarten and Südpark area, plus the loader that admits
// external catalog overrides.
package catalog

import (
	"encoding/json"
	"fmt"

	"duesseldorf-family-adventures/internal/models"
)

// Load returns the validated built-in catalog. Every entry must pass
// model validation and slugs must be unique; a broken catalog is a
// build-time defect, so the error is meant to be fatal at startup.
func Load() ([]models.MicroAdventure, error) {
	return validated(builtinAdventures)
}

// Parse decodes and validates an external catalog document, used for
// S3-hosted catalog overrides.
func Parse(data []byte) ([]models.MicroAdventure, error) {
	var adventures []models.MicroAdventure
	if err := json.Unmarshal(data, &adventures); err != nil {
		return nil, fmt.Errorf("failed to decode catalog document: %w", err)
	}
	return validated(adventures)
}

func validated(adventures []models.MicroAdventure) ([]models.MicroAdventure, error) {
	if len(adventures) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	if err := models.EnsureUniqueSlugs(adventures); err != nil {
		return nil, err
	}
	for i := range adventures {
		if err := adventures[i].Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	out := make([]models.MicroAdventure, len(adventures))
	copy(out, adventures)
	return out, nil
}
