// Package safety gates every generated or offline activity plan against
// hazard and age-appropriateness rules. A false verdict is a hard stop:
// the caller must substitute the safe fallback plan and must never show
// the rejected plan.
//
// Matching is deliberate substring lookup over a small curated DE/EN
// vocabulary, not tokenized text processing.
package safety

import (
	"strings"

	"duesseldorf-family-adventures/internal/models"
)

// Age thresholds in months
const (
	chokingHazardMinMonths     = 36
	scissorsGenericMinMonths   = 72
	scissorsChildSafeMinMonths = 48
)

// alwaysBlockedKeywords reject a plan at any age: weapons and cutting
// tools (other than the supervised-scissors case below), fire and heat
// sources, caustic chemicals. German and English.
var alwaysBlockedKeywords = []string{
	"messer", "knife",
	"klinge", "blade",
	"cutter", "teppichmesser",
	"kerze", "candle",
	"lagerfeuer", "campfire", "bonfire",
	"offenes feuer", "open fire", "open flame",
	"feuerzeug", "lighter",
	"streichholz", "streichhölzer",
	"grill", "herdplatte", "stove",
	"bleichmittel", "bleach",
	"lösungsmittel", "loesungsmittel", "solvent",
	"chemikalie", "chemical cleaner",
	"säure", "acid",
	"ammoniak", "ammonia",
}

// chokingHazardKeywords are rejected for children under 36 months
var chokingHazardKeywords = []string{
	"perle", "bead",
	"murmel", "marble",
	"münze", "muenze", "coin",
	"knopfzelle", "knopfbatterie", "button batter",
	"kleinteil", "small part",
}

// Scissors handling: a mention is acceptable only with supervision
// context. Child-safe scissors are admitted from 48 months, generic
// scissors from 72 months.
var (
	scissorsKeywords = []string{"schere", "scissors"}

	childSafeScissorsMarkers = []string{
		"kinderschere", "kinder-schere", "sicherheitsschere",
		"child-safe scissors", "safety scissors",
	}

	supervisionMarkers = []string{
		"aufsicht", "beaufsichtigt", "begleitet",
		"supervis", "together with an adult", "gemeinsam mit einem erwachsenen",
	}
)

// ValidateActivityPlan reports whether the plan is safe to show for the
// given request. Any single triggered rule rejects the whole plan.
func ValidateActivityPlan(plan *models.ActivityPlan, request *models.ActivityRequest) bool {
	text := strings.ToLower(plan.AllText())
	ageMonths := request.AgeInMonths()

	if containsAny(text, alwaysBlockedKeywords) {
		return false
	}

	if containsAny(text, scissorsKeywords) {
		if !containsAny(text, supervisionMarkers) {
			return false
		}
		if containsAny(text, childSafeScissorsMarkers) {
			if ageMonths < scissorsChildSafeMinMonths {
				return false
			}
		} else if ageMonths < scissorsGenericMinMonths {
			return false
		}
	}

	if ageMonths < chokingHazardMinMonths && containsAny(text, chokingHazardKeywords) {
		return false
	}

	return true
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
