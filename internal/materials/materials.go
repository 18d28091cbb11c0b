// Package materials post-processes an already-validated plan so it never
// references household materials the user marked unavailable. Matching is
// alias-list substring containment over a fixed, small vocabulary.
package materials

import (
	"regexp"
	"strings"

	"duesseldorf-family-adventures/internal/models"
)

// CommonHouseholdMaterials is the fixed canonical material list, in the
// order substitution suggestions are emitted.
var CommonHouseholdMaterials = []string{
	"paper",
	"pens",
	"tape",
	"scissors",
	"bowls",
	"rice",
	"flashlight",
}

// MaterialLabels are the bilingual display names per canonical key
var MaterialLabels = map[string]string{
	"paper":      "Papier / Paper",
	"pens":       "Stifte / Pens",
	"tape":       "Klebeband / Tape",
	"scissors":   "Kinderschere / Safety scissors",
	"bowls":      "Schüsseln / Bowls",
	"rice":       "Reis / Rice",
	"flashlight": "Taschenlampe / Flashlight",
}

// materialAliases lists the substrings that count as a mention of each
// canonical material, in German and English.
var materialAliases = map[string][]string{
	"paper":      {"papier", "paper", "zettel", "blatt", "vorlage", "notizbuch"},
	"pens":       {"stift", "stifte", "marker", "kreide", "pens", "pen"},
	"tape":       {"klebeband", "tape"},
	"scissors":   {"schere", "scissors"},
	"bowls":      {"schüssel", "schuessel", "bowls", "bowl"},
	"rice":       {"reis", "rice"},
	"flashlight": {"taschenlampe", "flashlight", "lampe"},
}

// substitutions holds one canned replacement suggestion per material
var substitutions = map[string]string{
	"paper":      "Nutze abwischbare Fläche (Fenster/Tafel) statt Papier. / Use a wipeable surface instead of paper.",
	"pens":       "Nutze Fingerzeigen oder Gegenstände statt Stifte. / Use pointing or objects instead of pens.",
	"tape":       "Nutze vorhandene Kanten/Linien statt Klebeband. / Use existing edges/lines instead of tape.",
	"scissors":   "Kein Schneiden nötig; stattdessen reißen oder sortieren. / Skip cutting; tear or sort instead.",
	"bowls":      "Nutze Becher oder kleine Dosen statt Schüsseln. / Use cups or small containers instead of bowls.",
	"rice":       "Nutze trockene Bohnen/Nudeln oder Naturmaterialien statt Reis. / Use dry beans/pasta or natural items instead of rice.",
	"flashlight": "Nutze Tageslicht und Schatten statt Taschenlampe. / Use daylight and shadows instead of a flashlight.",
}

// AdjustedSummary replaces a summary that itself references a blocked
// material.
const AdjustedSummary = "Materialangepasste Version dieser Aktivität. / Material-adjusted version of this activity."

// AdjustedStep stands in when every original step referenced an
// unavailable material, so the delivered plan keeps at least one step.
const AdjustedStep = "Führt die Aktivität frei mit dem durch, was da ist; Ersatzideen stehen in den Sicherheitshinweisen. / Run the activity freely with what you have; swap ideas are in the safety notes."

// adjustedPrompt stands in when stripping removed every prompt
var adjustedPrompt = models.ParentChildPrompt{
	Say: "Was können wir stattdessen nehmen?",
	Do:  "Sammelt gemeinsam Ersatzmaterialien aus dem Haushalt.",
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// NormalizeToken lowercases and collapses whitespace for alias matching
func NormalizeToken(value string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), " ")
}

// BlockedMaterials computes the canonical materials NOT covered by the
// user's available list. An empty available list blocks nothing (the user
// made no statement about their household).
func BlockedMaterials(availableMaterials []string) map[string]bool {
	if len(availableMaterials) == 0 {
		return nil
	}

	available := make(map[string]bool, len(availableMaterials))
	for _, item := range availableMaterials {
		token := NormalizeToken(item)
		if token == "" {
			continue
		}
		available[token] = true
		// A material named by one of its aliases also counts as available.
		// Containment, not equality: "Kinderschere" covers "schere".
		for key, aliases := range materialAliases {
			for _, alias := range aliases {
				if strings.Contains(token, alias) {
					available[key] = true
				}
			}
		}
	}

	blocked := make(map[string]bool)
	for _, key := range CommonHouseholdMaterials {
		if !available[key] {
			blocked[key] = true
		}
	}
	return blocked
}

// MatchBlocklist returns the blocked materials whose alias list matches
// the text.
func MatchBlocklist(text string, blocked map[string]bool) map[string]bool {
	normalized := NormalizeToken(text)
	hits := make(map[string]bool)
	for key := range blocked {
		for _, alias := range materialAliases[key] {
			if strings.Contains(normalized, alias) {
				hits[key] = true
				break
			}
		}
	}
	return hits
}

// SubstitutionsFor returns the canned suggestion per blocked material, in
// canonical list order.
func SubstitutionsFor(blocked map[string]bool) []string {
	var out []string
	for _, key := range CommonHouseholdMaterials {
		if blocked[key] {
			out = append(out, substitutions[key])
		}
	}
	return out
}

// EnforceConstraints strips references to unavailable materials from an
// accepted plan: matching step/variant/prompt lines are dropped, a
// matching summary is replaced, and one substitution suggestion per
// affected material is appended to the safety notes. Runs strictly after
// safety validation; it only removes or replaces with canned safe text.
func EnforceConstraints(plan *models.ActivityPlan, criteria *models.SearchCriteria) *models.ActivityPlan {
	blocked := BlockedMaterials(criteria.AvailableMaterials)
	if len(blocked) == 0 {
		return plan
	}

	out := plan.Clone()
	affected := make(map[string]bool)

	var steps []string
	for _, step := range out.Steps {
		hits := MatchBlocklist(step, blocked)
		if len(hits) > 0 {
			merge(affected, hits)
			continue
		}
		steps = append(steps, step)
	}
	out.Steps = steps

	var variants []string
	for _, variant := range out.Variants {
		hits := MatchBlocklist(variant, blocked)
		if len(hits) > 0 {
			merge(affected, hits)
			continue
		}
		variants = append(variants, variant)
	}
	out.Variants = variants

	var prompts []models.ParentChildPrompt
	for _, prompt := range out.Prompts {
		hits := MatchBlocklist(prompt.Text(), blocked)
		if len(hits) > 0 {
			merge(affected, hits)
			continue
		}
		prompts = append(prompts, prompt)
	}
	out.Prompts = prompts

	if len(out.Steps) == 0 {
		out.Steps = []string{AdjustedStep}
	}
	if len(out.Prompts) == 0 {
		out.Prompts = []models.ParentChildPrompt{adjustedPrompt}
	}

	if hits := MatchBlocklist(out.Summary, blocked); len(hits) > 0 {
		merge(affected, hits)
		out.Summary = AdjustedSummary
	}

	for _, key := range CommonHouseholdMaterials {
		if affected[key] {
			out.SafetyNotes = append(out.SafetyNotes, substitutions[key])
		}
	}

	return out
}

func merge(dst, src map[string]bool) {
	for key := range src {
		dst[key] = true
	}
}
