package safety

import (
	"testing"

	"duesseldorf-family-adventures/internal/models"
)

func requestWithAge(value float64, unit models.AgeUnit) *models.ActivityRequest {
	return &models.ActivityRequest{
		AgeValue:        value,
		AgeUnit:         unit,
		DurationMinutes: 20,
		IndoorOutdoor:   models.LocationIndoor,
		Materials:       []string{"Papier"},
		Goals:           []models.DevelopmentDomain{models.DomainSensory},
	}
}

func baselinePlan() *models.ActivityPlan {
	return &models.ActivityPlan{
		Title:       "Farbspiel",
		Summary:     "Wir sortieren sichere, große Gegenstände.",
		Steps:       []string{"Lege große Bausteine nach Farben."},
		SafetyNotes: []string{"Nur kindgerechte Materialien verwenden."},
		Prompts: []models.ParentChildPrompt{
			{Say: "Welche Farbe gefällt dir?", Do: "Benenne die Farbe gemeinsam."},
		},
		Variants: []string{"Kurzversion mit zwei Farben."},
	}
}

func planWithTrigger(trigger string) *models.ActivityPlan {
	plan := baselinePlan()
	plan.Summary += " Trigger: " + trigger + "."
	plan.Steps = append(plan.Steps, "Nutze: "+trigger+".")
	return plan
}

func TestValidatorBlocksCoreHazardsAcrossAgeBands(t *testing.T) {
	underThree := requestWithAge(30, models.AgeUnitMonths)
	preschool := requestWithAge(5, models.AgeUnitYears)

	triggers := []string{
		"knife", "candles", "campfire", "bleach",
		"Messer", "Kerze", "Lagerfeuer", "Bleichmittel",
	}
	for _, trigger := range triggers {
		plan := planWithTrigger(trigger)
		if ValidateActivityPlan(plan, underThree) {
			t.Errorf("Expected %q to be blocked for under-three", trigger)
		}
		if ValidateActivityPlan(plan, preschool) {
			t.Errorf("Expected %q to be blocked for preschool age", trigger)
		}
	}
}

func TestValidatorAcceptsBaselinePlan(t *testing.T) {
	if !ValidateActivityPlan(baselinePlan(), requestWithAge(30, models.AgeUnitMonths)) {
		t.Error("Expected harmless baseline plan to pass for under-three")
	}
	if !ValidateActivityPlan(baselinePlan(), requestWithAge(5, models.AgeUnitYears)) {
		t.Error("Expected harmless baseline plan to pass for preschool age")
	}
}

func TestValidatorBlocksScissorsWithoutSafetyContext(t *testing.T) {
	underThree := requestWithAge(30, models.AgeUnitMonths)
	preschool := requestWithAge(5, models.AgeUnitYears)

	for _, trigger := range []string{"scissors", "Schere"} {
		plan := planWithTrigger(trigger)
		if ValidateActivityPlan(plan, underThree) {
			t.Errorf("Expected bare %q mention to be blocked for under-three", trigger)
		}
		if ValidateActivityPlan(plan, preschool) {
			t.Errorf("Expected bare %q mention to be blocked for preschool age", trigger)
		}
	}
}

func kinderscherePlan() *models.ActivityPlan {
	return &models.ActivityPlan{
		Title:       "Schneide-Spiel",
		Summary:     "Nutze eine Kinderschere unter Aufsicht.",
		Steps:       []string{"Schneide Papierstreifen mit Kinderschere unter Aufsicht."},
		SafetyNotes: []string{"Nur mit Kinderschere und unter Aufsicht schneiden."},
		Prompts: []models.ParentChildPrompt{
			{Say: "Zeig mir, wie du sicher schneidest.", Do: "Führe die Schneidebewegung einmal gemeinsam aus."},
		},
		Variants: []string{"Stattdessen reißen, wenn Schneiden zu schwierig ist."},
	}
}

func TestValidatorAllowsKinderschereWithSupervisionForPreschool(t *testing.T) {
	request := requestWithAge(5, models.AgeUnitYears)
	if !ValidateActivityPlan(kinderscherePlan(), request) {
		t.Error("Expected child-safe scissors with supervision to pass at 5 years")
	}
}

func TestValidatorAllowsKinderschereForUnderSixWithSupervision(t *testing.T) {
	request := requestWithAge(4, models.AgeUnitYears)
	if !ValidateActivityPlan(kinderscherePlan(), request) {
		t.Error("Expected child-safe scissors with supervision to pass at 4 years")
	}
}

func TestValidatorBlocksKinderschereBelowFourYears(t *testing.T) {
	request := requestWithAge(40, models.AgeUnitMonths)
	if ValidateActivityPlan(kinderscherePlan(), request) {
		t.Error("Expected child-safe scissors to be blocked below 48 months")
	}
}

func TestValidatorGenericScissorsRequireSixYearsEvenSupervised(t *testing.T) {
	plan := baselinePlan()
	plan.Steps = append(plan.Steps, "Schneide die Form mit der Schere unter Aufsicht aus.")

	if ValidateActivityPlan(plan, requestWithAge(5, models.AgeUnitYears)) {
		t.Error("Expected supervised generic scissors to be blocked below 72 months")
	}
	if !ValidateActivityPlan(plan, requestWithAge(6, models.AgeUnitYears)) {
		t.Error("Expected supervised generic scissors to pass at 72 months")
	}
}

func TestValidatorBlocksChokingTriggersUnderThree(t *testing.T) {
	underThree := requestWithAge(30, models.AgeUnitMonths)

	triggers := []string{"small beads", "tiny bead", "Perlen", "Murmel", "Knopfzelle"}
	for _, trigger := range triggers {
		if ValidateActivityPlan(planWithTrigger(trigger), underThree) {
			t.Errorf("Expected %q to be blocked under 36 months", trigger)
		}
	}
}

func TestValidatorAllowsChokingTriggersForOlderChildren(t *testing.T) {
	preschool := requestWithAge(48, models.AgeUnitMonths)
	if !ValidateActivityPlan(planWithTrigger("small beads"), preschool) {
		t.Error("Expected small beads to pass at 48 months")
	}
	if !ValidateActivityPlan(planWithTrigger("Perlen sortieren"), preschool) {
		t.Error("Expected Perlen to pass at 48 months")
	}
}

func TestValidatorConcreteScenarios(t *testing.T) {
	firePlan := planWithTrigger("Lagerfeuer und Kerze")
	if ValidateActivityPlan(firePlan, requestWithAge(30, models.AgeUnitMonths)) ||
		ValidateActivityPlan(firePlan, requestWithAge(8, models.AgeUnitYears)) {
		t.Error("Expected Lagerfeuer und Kerze to be blocked at any age")
	}

	beadPlan := planWithTrigger("Perlen sortieren")
	if ValidateActivityPlan(beadPlan, requestWithAge(30, models.AgeUnitMonths)) {
		t.Error("Expected Perlen sortieren to be blocked at 30 months")
	}
	if !ValidateActivityPlan(beadPlan, requestWithAge(48, models.AgeUnitMonths)) {
		t.Error("Expected Perlen sortieren to pass at 48 months")
	}
}
