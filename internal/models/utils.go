package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PlanHash returns the SHA-256 hex digest of the plan's canonical JSON
// form. Reported plans are persisted only as this hash.
func PlanHash(plan *ActivityPlan) (string, error) {
	canonical, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan for hashing: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// GenerateReportID creates a unique ID for a plan report
func GenerateReportID() string {
	return "rep_" + uuid.NewString()
}

// GenerateAdventureSlug derives a stable slug from title and area, for
// catalog entries that come without one.
func GenerateAdventureSlug(title, area string) string {
	normalizedTitle := strings.ToLower(strings.TrimSpace(title))
	normalizedArea := strings.ToLower(strings.TrimSpace(area))

	input := fmt.Sprintf("%s|%s", normalizedTitle, normalizedArea)
	hash := sha256.Sum256([]byte(input))
	return "adv_" + hex.EncodeToString(hash[:])[:8]
}
