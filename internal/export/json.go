package export

import (
	"encoding/json"
	"fmt"

	"duesseldorf-family-adventures/internal/models"
)

// DailyArtifact is the JSON document published for each daily pick.
type DailyArtifact struct {
	Criteria  *models.SearchCriteria `json:"criteria"`
	Weather   *models.WeatherSummary `json:"weather,omitempty"`
	Adventure *models.MicroAdventure `json:"adventure"`
	Plan      *models.ActivityPlan   `json:"plan"`
	Markdown  string                 `json:"markdown"`
	Notices   []string               `json:"notices,omitempty"`
}

// MarshalDailyArtifact serializes the artifact with indentation, matching
// the downloadable document format.
func MarshalDailyArtifact(artifact *DailyArtifact) ([]byte, error) {
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal daily artifact: %w", err)
	}
	return data, nil
}

// ArtifactFileName names the per-day artifact after its date.
func ArtifactFileName(criteria *models.SearchCriteria) string {
	return fmt.Sprintf("mikroabenteuer-%s.json", criteria.Date.Format("2006-01-02"))
}
