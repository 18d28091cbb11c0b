package plan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"duesseldorf-family-adventures/internal/models"
)

func testCriteria(t *testing.T, mutate func(*models.CriteriaInput)) *models.SearchCriteria {
	t.Helper()
	in := models.CriteriaInput{
		PostalCode:   "40215",
		RadiusKm:     5.0,
		Date:         time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		StartTime:    time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:      time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC),
		Effort:       models.EffortMedium,
		BudgetEurMax: 20.0,
	}
	if mutate != nil {
		mutate(&in)
	}
	criteria, err := models.NewSearchCriteria(in)
	if err != nil {
		t.Fatalf("criteria: %v", err)
	}
	return criteria
}

func testAdventure(mutate func(*models.MicroAdventure)) *models.MicroAdventure {
	a := &models.MicroAdventure{
		Slug:            "volksgarten-runde",
		Title:           "Volksgarten-Runde",
		Area:            "Volksgarten",
		Short:           "Eine kleine Runde durch den Park.",
		DurationMinutes: 45,
		DistanceKm:      1.2,
		BestTime:        "vormittags",
		StrollerOK:      true,
		StartPoint:      "Eingang Volksgartenstraße",
		RouteSteps:      []string{"Am Teich entlang gehen.", "Auf der Wiese Blätter sammeln."},
		Preparation:     []string{"Wetter prüfen"},
		PackingList:     []string{"Wasser"},
		ExecutionTips:   []string{"Pausen einplanen"},
		Variations:      []string{"Mit dem Laufrad fahren."},
		ToddlerBenefits: []string{"Motorik"},
		ParentTip:       "Zeit lassen",
		Risks:           []string{"Rutschige Wege"},
		Mitigations:     []string{"Langsam gehen und an der Hand führen."},
		Tags:            []string{"Natur"},
		EnergyLevel:     models.EnergyMedium,
		Difficulty:      models.DifficultyEasy,
		AgeMin:          2.0,
		AgeMax:          6.0,
		SafetyLevel:     models.SafetyLow,
	}
	if mutate != nil {
		mutate(a)
	}
	return a
}

type stubGenerator struct {
	plan *models.ActivityPlan
	err  error
}

func (s *stubGenerator) GeneratePlan(_ context.Context, _ *models.MicroAdventure, _ *models.SearchCriteria, _ *models.WeatherSummary, _ *models.ActivityRequest) (*models.ActivityPlan, error) {
	return s.plan, s.err
}

func TestBuildFallbackPlanUsesAdventureFields(t *testing.T) {
	adventure := testAdventure(nil)
	criteria := testCriteria(t, func(in *models.CriteriaInput) {
		in.Goals = []models.DevelopmentDomain{models.DomainLanguage}
	})

	plan := BuildFallbackPlan(adventure, criteria, nil)

	if plan.Title != adventure.Title {
		t.Errorf("Expected title %q, got %q", adventure.Title, plan.Title)
	}
	if len(plan.Steps) != 3 || !strings.HasPrefix(plan.Steps[0], "Startpunkt:") {
		t.Errorf("Expected start point plus route steps, got %v", plan.Steps)
	}
	if len(plan.SafetyNotes) == 0 || plan.SafetyNotes[0] != adventure.Mitigations[0] {
		t.Errorf("Expected safety notes from mitigations, got %v", plan.SafetyNotes)
	}
	if n := len(plan.Prompts); n < 3 || n > 6 {
		t.Errorf("Expected 3-6 prompts, got %d", n)
	}
	foundShort := false
	for _, v := range plan.Variants {
		if strings.Contains(v, "Kurzversion für 45 Minuten") {
			foundShort = true
		}
	}
	if !foundShort {
		t.Errorf("Expected synthesized short version variant, got %v", plan.Variants)
	}
	if len(plan.Supports) != 1 || plan.Supports[0] != models.DomainLanguage {
		t.Errorf("Expected requested goal in supports, got %v", plan.Supports)
	}
}

func TestBuildFallbackShortVersionRespectsWindow(t *testing.T) {
	adventure := testAdventure(func(a *models.MicroAdventure) { a.DurationMinutes = 120 })
	criteria := testCriteria(t, nil) // 90 minute window

	plan := BuildFallbackPlan(adventure, criteria, nil)
	joined := strings.Join(plan.Variants, " ")
	if !strings.Contains(joined, "Kurzversion für 90 Minuten") {
		t.Errorf("Expected short version capped at window, got %v", plan.Variants)
	}
}

func TestBuildFallbackInfersSupportsFromTags(t *testing.T) {
	adventure := testAdventure(func(a *models.MicroAdventure) {
		a.ToddlerBenefits = []string{"Motorik", "Sprache"}
	})
	criteria := testCriteria(t, nil)

	plan := BuildFallbackPlan(adventure, criteria, nil)
	if len(plan.Supports) == 0 {
		t.Errorf("Expected supports inferred from adventure signals, got none")
	}
}

func TestEnsurePlanBVariantsCompletesAllFourCategories(t *testing.T) {
	plan := &models.ActivityPlan{Variants: nil}
	EnsurePlanBVariants(plan)

	joined := strings.ToLower(strings.Join(plan.Variants, " "))
	for _, want := range []string{"lower energy", "higher energy", "indoor", "no materials"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected variant list to cover %q, got %v", want, plan.Variants)
		}
	}
}

func TestEnsurePlanBVariantsKeepsExistingCoverage(t *testing.T) {
	plan := &models.ActivityPlan{
		Variants: []string{"Ruhige Pause: Variante mit weniger Energie auf der Bank."},
	}
	EnsurePlanBVariants(plan)

	count := 0
	for _, v := range plan.Variants {
		if strings.Contains(strings.ToLower(v), "weniger energie") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected no duplicate lower-energy variant, got %v", plan.Variants)
	}
	if len(plan.Variants) != 4 {
		t.Errorf("Expected 4 variants total, got %d", len(plan.Variants))
	}
}

func TestApplyParentScriptTimeBoxes(t *testing.T) {
	plan := &models.ActivityPlan{Title: "Volksgarten-Runde"}
	ApplyParentScript(plan, 90)

	if len(plan.Steps) != 5 {
		t.Fatalf("Expected 5 script phases, got %d", len(plan.Steps))
	}
	for i, name := range []string{"Describe", "Imitate", "Praise", "Active listening", "Child-led"} {
		if !strings.HasPrefix(plan.Steps[i], name) {
			t.Errorf("Expected phase %d to start with %q, got %q", i, name, plan.Steps[i])
		}
		if !strings.Contains(plan.Steps[i], "min)") {
			t.Errorf("Expected phase %d to carry a minute allotment, got %q", i, plan.Steps[i])
		}
	}
	// 90 minutes clamps to 20: four 4-minute phases plus a 4-minute repeat.
	if !strings.Contains(plan.Steps[0], "(4 min)") || !strings.Contains(plan.Steps[4], "(4 min)") {
		t.Errorf("Expected 4-minute phases at the 20-minute cap, got %v", plan.Steps)
	}
}

func TestApplyParentScriptLowerBound(t *testing.T) {
	plan := &models.ActivityPlan{Title: "Kurz"}
	ApplyParentScript(plan, 3)

	if !strings.Contains(plan.Steps[0], "(1 min)") {
		t.Errorf("Expected 1-minute phases at the 6-minute floor, got %q", plan.Steps[0])
	}
	if !strings.Contains(plan.Steps[4], "(2 min)") {
		t.Errorf("Expected remainder on the child-led phase, got %q", plan.Steps[4])
	}
}

func TestComposeFallsBackWhenGeneratorFails(t *testing.T) {
	adventure := testAdventure(nil)
	criteria := testCriteria(t, nil)
	gen := &stubGenerator{err: errors.New("upstream timeout")}

	plan, notices := Compose(context.Background(), gen, adventure, criteria, nil, models.PlanModeStandard)

	if plan.Title != adventure.Title {
		t.Errorf("Expected template fallback plan, got title %q", plan.Title)
	}
	if !containsNotice(notices, NoticeTemplateFallback) {
		t.Errorf("Expected template fallback notice, got %v", notices)
	}
}

func TestComposeUsesGeneratorOutput(t *testing.T) {
	adventure := testAdventure(nil)
	criteria := testCriteria(t, nil)
	gen := &stubGenerator{plan: &models.ActivityPlan{
		Title:       "Generierter Plan",
		Summary:     "Ein ruhiger Parkbesuch.",
		Steps:       []string{"Zum Teich gehen.", "Enten beobachten."},
		SafetyNotes: []string{"An der Hand bleiben."},
		Prompts: []models.ParentChildPrompt{
			{Say: "Was siehst du?", Do: "Warte ab."},
			{Say: "Wie klingt das?", Do: "Lauscht zusammen."},
			{Say: "Was war schön?", Do: "Wiederhole die Antwort."},
		},
	}}

	plan, notices := Compose(context.Background(), gen, adventure, criteria, nil, models.PlanModeStandard)

	if plan.Title != "Generierter Plan" {
		t.Errorf("Expected generator output, got %q", plan.Title)
	}
	if len(notices) != 0 {
		t.Errorf("Expected no degradation notices, got %v", notices)
	}
	joined := strings.ToLower(strings.Join(plan.Variants, " "))
	for _, want := range []string{"lower energy", "higher energy", "indoor", "no materials"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected generator plan completed with %q variant", want)
		}
	}
}

func TestComposeServesSafeFallbackForUnsafeTemplate(t *testing.T) {
	adventure := testAdventure(func(a *models.MicroAdventure) {
		a.RouteSteps = []string{"Mit kleinen Perlen ein Muster legen."}
	})
	// No child age set: planning assumes a toddler, so the choking-hazard
	// gate applies.
	criteria := testCriteria(t, nil)

	plan, notices := Compose(context.Background(), nil, adventure, criteria, nil, models.PlanModeStandard)

	if !strings.Contains(plan.Title, "Safe fallback plan") {
		t.Fatalf("Expected safe fallback plan, got title %q", plan.Title)
	}
	if !containsNotice(notices, NoticeSafeFallback) {
		t.Errorf("Expected safe fallback notice, got %v", notices)
	}
	if strings.Contains(strings.ToLower(plan.AllText()), "perlen") {
		t.Error("Expected safe fallback to drop the hazardous content")
	}
	if n := len(plan.Prompts); n < 3 {
		t.Errorf("Expected at least 3 prompts in safe fallback, got %d", n)
	}
	joined := strings.ToLower(strings.Join(plan.Variants, " "))
	for _, want := range []string{"lower energy", "higher energy", "indoor", "no materials"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected safe fallback to cover %q variant", want)
		}
	}
}

func TestComposeAllowsHazardForOlderChild(t *testing.T) {
	adventure := testAdventure(func(a *models.MicroAdventure) {
		a.RouteSteps = []string{"Mit kleinen Perlen ein Muster legen."}
		a.AgeMax = 8.0
	})
	age := 5.0
	criteria := testCriteria(t, func(in *models.CriteriaInput) { in.ChildAgeYears = &age })

	plan, _ := Compose(context.Background(), nil, adventure, criteria, nil, models.PlanModeStandard)
	if strings.Contains(plan.Title, "Safe fallback plan") {
		t.Error("Expected template plan to pass the safety gate at five years")
	}
}

func TestComposeParentScriptMode(t *testing.T) {
	adventure := testAdventure(nil)
	criteria := testCriteria(t, nil)

	plan, _ := Compose(context.Background(), nil, adventure, criteria, nil, models.PlanModeParentScript)

	if len(plan.Steps) != 5 {
		t.Fatalf("Expected scripted steps, got %v", plan.Steps)
	}
	if !strings.HasPrefix(plan.Steps[0], "Describe") || !strings.HasPrefix(plan.Steps[4], "Child-led") {
		t.Errorf("Expected parent-script phases, got %v", plan.Steps)
	}
}

func TestComposeEnforcesMaterialConstraints(t *testing.T) {
	adventure := testAdventure(func(a *models.MicroAdventure) {
		a.RouteSteps = []string{"Auf Papier die Fundstücke malen.", "Am Teich entlang gehen."}
	})
	criteria := testCriteria(t, func(in *models.CriteriaInput) {
		in.AvailableMaterials = []string{"Stifte"}
	})

	plan, _ := Compose(context.Background(), nil, adventure, criteria, nil, models.PlanModeStandard)

	for _, step := range plan.Steps {
		if strings.Contains(strings.ToLower(step), "papier") {
			t.Errorf("Expected paper step stripped, got %q", step)
		}
	}
	found := false
	for _, note := range plan.SafetyNotes {
		if strings.Contains(strings.ToLower(note), "papier") {
			found = true
		}
	}
	if !found {
		t.Error("Expected a substitution note for the missing paper")
	}
}

func containsNotice(notices []string, want string) bool {
	for _, n := range notices {
		if n == want {
			return true
		}
	}
	return false
}

func TestComposeFallsBackWhenGeneratorReturnsTooFewPrompts(t *testing.T) {
	adventure := testAdventure(nil)
	criteria := testCriteria(t, nil)
	gen := &stubGenerator{plan: &models.ActivityPlan{
		Title:       "Knapper Plan",
		Summary:     "Ein ruhiger Parkbesuch.",
		Steps:       []string{"Zum Teich gehen."},
		SafetyNotes: []string{"An der Hand bleiben."},
		Prompts: []models.ParentChildPrompt{
			{Say: "Was siehst du?", Do: "Warte ab."},
		},
	}}

	plan, notices := Compose(context.Background(), gen, adventure, criteria, nil, models.PlanModeStandard)

	if plan.Title == "Knapper Plan" {
		t.Fatalf("Expected the under-prompted plan to be rejected, got %q", plan.Title)
	}
	if plan.Title != adventure.Title {
		t.Errorf("Expected template fallback plan, got title %q", plan.Title)
	}
	if !containsNotice(notices, NoticeTemplateFallback) {
		t.Errorf("Expected template fallback notice, got %v", notices)
	}
	if n := len(plan.Prompts); n < models.MinPlanPrompts || n > models.MaxPlanPrompts {
		t.Errorf("Expected %d-%d prompts in delivered plan, got %d",
			models.MinPlanPrompts, models.MaxPlanPrompts, n)
	}
}
