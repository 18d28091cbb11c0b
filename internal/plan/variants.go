package plan

import (
	"strings"

	"duesseldorf-family-adventures/internal/models"
)

// planBCategory pairs detection keywords with a canned bilingual variant
// appended when no existing variant covers the category.
type planBCategory struct {
	keywords []string
	fallback string
}

var planBCategories = []planBCategory{
	{
		keywords: []string{"weniger energie", "lower energy", "lower-energy", "ruhiger"},
		fallback: "Weniger Energie: ruhige Beobachtungsrunde im Sitzen oder im Wagen. / Lower energy: calm seated observation round.",
	},
	{
		keywords: []string{"mehr energie", "higher energy", "higher-energy", "aktiver"},
		fallback: "Mehr Energie: kurze Lauf- und Hüpfstrecken zwischen den Stationen einbauen. / Higher energy: add short running and hopping stretches.",
	},
	{
		keywords: []string{"indoor", "drinnen", "innen"},
		fallback: "Indoor-Variante: dieselbe Idee am Fenster oder im Flur umsetzen. / Indoor swap: do the same idea at the window or in the hallway.",
	},
	{
		keywords: []string{"ohne material", "no materials", "no-materials", "materialfrei"},
		fallback: "Ohne Material: nur schauen, zeigen und erzählen. / No materials: just look, point and tell.",
	},
}

// EnsurePlanBVariants guarantees the variant list covers all four plan-B
// categories, appending canned entries for the ones that are missing.
// Detection is case-insensitive over the existing variant texts.
func EnsurePlanBVariants(plan *models.ActivityPlan) {
	joined := strings.ToLower(strings.Join(plan.Variants, " "))
	for _, category := range planBCategories {
		if containsAnyKeyword(joined, category.keywords) {
			continue
		}
		plan.Variants = append(plan.Variants, category.fallback)
	}
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
