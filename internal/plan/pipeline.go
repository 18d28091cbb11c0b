package plan

import (
	"context"
	"log"

	"duesseldorf-family-adventures/internal/materials"
	"duesseldorf-family-adventures/internal/models"
	"duesseldorf-family-adventures/internal/safety"
)

// Generator produces an ActivityPlan for the given adventure and criteria.
// Implementations may call external services; the pipeline falls back to
// the template builder when a generator fails or returns an invalid plan.
type Generator interface {
	GeneratePlan(ctx context.Context, adventure *models.MicroAdventure, criteria *models.SearchCriteria, weather *models.WeatherSummary, request *models.ActivityRequest) (*models.ActivityPlan, error)
}

// Degradation notices surfaced alongside a composed plan.
const (
	NoticeTemplateFallback = "Plan aus Vorlage erstellt (Generator nicht verfügbar). / Plan built from template (generator unavailable)."
	NoticeSafeFallback     = "Sicherheitsprüfung nicht bestanden, sicherer Ersatzplan geliefert. / Safety check failed, safe fallback plan served."
)

// Compose runs the full plan pipeline: generate (or build from template),
// complete the plan-B variants, gate through the safety validator with a
// safe-fallback substitution, apply the parent-script transform when
// requested, and finally enforce the material constraints. The returned
// notices report any degraded path taken.
func Compose(ctx context.Context, gen Generator, adventure *models.MicroAdventure, criteria *models.SearchCriteria, weather *models.WeatherSummary, mode models.PlanMode) (*models.ActivityPlan, []string) {
	request := models.NewActivityRequest(adventure, criteria)

	var notices []string
	activityPlan := generateOrFallback(ctx, gen, adventure, criteria, weather, request, &notices)

	EnsurePlanBVariants(activityPlan)

	if !safety.ValidateActivityPlan(activityPlan, request) {
		log.Printf("Safety gate rejected plan for %s, serving safe fallback", adventure.Slug)
		notices = append(notices, NoticeSafeFallback)
		activityPlan = SafeFallbackPlan(criteria)
	}

	if mode == models.PlanModeParentScript {
		ApplyParentScript(activityPlan, criteria.AvailableMinutes())
	}

	// Material enforcement runs last so it also covers fallback and
	// script output.
	return materials.EnforceConstraints(activityPlan, criteria), notices
}

func generateOrFallback(ctx context.Context, gen Generator, adventure *models.MicroAdventure, criteria *models.SearchCriteria, weather *models.WeatherSummary, request *models.ActivityRequest, notices *[]string) *models.ActivityPlan {
	if gen == nil {
		*notices = append(*notices, NoticeTemplateFallback)
		return BuildFallbackPlan(adventure, criteria, weather)
	}

	generated, err := gen.GeneratePlan(ctx, adventure, criteria, weather, request)
	if err != nil {
		log.Printf("Plan generator failed for %s: %v", adventure.Slug, err)
		*notices = append(*notices, NoticeTemplateFallback)
		return BuildFallbackPlan(adventure, criteria, weather)
	}
	if err := generated.Validate(); err != nil {
		log.Printf("Generator returned invalid plan for %s: %v", adventure.Slug, err)
		*notices = append(*notices, NoticeTemplateFallback)
		return BuildFallbackPlan(adventure, criteria, weather)
	}
	return generated
}
