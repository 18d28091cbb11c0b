package recommend

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"duesseldorf-family-adventures/internal/models"
)

// Top-N window for the seeded pick: wide enough to vary day to day,
// narrow enough to stay relevant.
const (
	minTopCandidates = 3
	maxTopCandidates = 8
)

// SeedFromCriteria derives the 64-bit selector seed from the criteria
// fields that define a request day. SHA-256 keeps the pick reproducible
// across processes and runs; the first 16 hex digits become the integer.
func SeedFromCriteria(criteria *models.SearchCriteria) int64 {
	parts := []string{
		criteria.Date.Format("2006-01-02"),
		criteria.PostalCode,
		strconv.FormatFloat(criteria.RadiusKm, 'f', 1, 64),
		string(criteria.Effort),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	seed, _ := strconv.ParseUint(hex.EncodeToString(sum[:])[:16], 16, 64)
	return int64(seed)
}

// PickDailyAdventure deterministically selects today's adventure: filter,
// score, take the top N, then a seeded pseudo-random choice. The same
// criteria, catalog and weather tags always yield the same pick. Returns
// the pick and the filtered candidate list for "also matched" display.
func PickDailyAdventure(adventures []models.MicroAdventure, criteria *models.SearchCriteria, weather *models.WeatherSummary) (models.MicroAdventure, []models.MicroAdventure) {
	candidates := FilterAdventures(adventures, criteria)
	if len(candidates) == 0 {
		// Daily-pick guarantee: never block the day on an empty filter.
		candidates = append([]models.MicroAdventure(nil), adventures...)
	}

	type scored struct {
		adventure models.MicroAdventure
		score     float64
	}
	ranked := make([]scored, 0, len(candidates))
	for i := range candidates {
		ranked = append(ranked, scored{
			adventure: candidates[i],
			score:     ScoreAdventure(&candidates[i], criteria, weather),
		})
	}

	// Stable sort keeps catalog order as the tie-breaker.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	// clamp(len, 3, 8), capped at the number of candidates
	topN := maxTopCandidates
	if len(ranked) < maxTopCandidates {
		topN = len(ranked)
	}
	if topN < minTopCandidates && len(ranked) >= minTopCandidates {
		topN = minTopCandidates
	}

	rng := rand.New(rand.NewSource(SeedFromCriteria(criteria)))
	picked := ranked[rng.Intn(topN)].adventure

	return picked, candidates
}
