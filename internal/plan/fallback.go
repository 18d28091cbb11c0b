package plan

import (
	"duesseldorf-family-adventures/internal/models"
)

// SafeFallbackPlan is the plan of last resort: an indoor observation game
// that needs no materials and passes the safety gate at every age. It is
// served whenever both the generated plan and the template fallback fail
// validation.
func SafeFallbackPlan(criteria *models.SearchCriteria) *models.ActivityPlan {
	plan := &models.ActivityPlan{
		Title:   "Sicherer Ersatzplan: Fenster-Entdecker / Safe fallback plan: window explorers",
		Summary: "Ein ruhiges Beobachtungsspiel am Fenster oder auf einer Decke, ganz ohne Material. / A calm observation game at the window or on a blanket, with no materials.",
		Steps: []string{
			"Sucht euch gemeinsam ein Fenster oder legt eine Decke auf den Boden.",
			"Benennt abwechselnd, was ihr draußen oder im Raum seht.",
			"Macht die Bewegungen nach, die ihr beobachtet: Vögel, Autos, Blätter im Wind.",
			"Beendet das Spiel mit einer gemeinsamen Lieblingsentdeckung.",
		},
		SafetyNotes: []string{
			"Kind bleibt immer in Sichtweite. / Keep your child in sight at all times.",
			"Fenster nur gemeinsam und gesichert öffnen. / Open windows only together and secured.",
		},
		Prompts: []models.ParentChildPrompt{
			{
				Say: "Was siehst du da draußen?",
				Do:  "Warte ab und benenne gemeinsam, was das Kind entdeckt.",
			},
			{
				Say: "Kannst du das nachmachen?",
				Do:  "Macht die beobachtete Bewegung zusammen nach.",
			},
			{
				Say: "Was war deine Lieblingsentdeckung?",
				Do:  "Wiederhole die Antwort in einem ganzen Satz.",
			},
		},
		Supports: append([]models.DevelopmentDomain(nil), criteria.Goals...),
	}
	if len(plan.Supports) == 0 {
		plan.Supports = []models.DevelopmentDomain{models.DomainLanguage, models.DomainCognitive}
	}
	EnsurePlanBVariants(plan)
	return plan
}
