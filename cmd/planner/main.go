package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"duesseldorf-family-adventures/internal/catalog"
	"duesseldorf-family-adventures/internal/export"
	"duesseldorf-family-adventures/internal/library"
	"duesseldorf-family-adventures/internal/models"
	"duesseldorf-family-adventures/internal/plan"
	"duesseldorf-family-adventures/internal/recommend"
	"duesseldorf-family-adventures/internal/services"
)

func main() {
	var (
		dateFlag     = flag.String("date", "", "Target date (YYYY-MM-DD), defaults to today")
		plzFlag      = flag.String("plz", "40215", "German postal code")
		radiusFlag   = flag.Float64("radius", 5.0, "Search radius in km")
		effortFlag   = flag.String("effort", "mittel", "Effort level: niedrig, mittel, hoch")
		budgetFlag   = flag.Float64("budget", 20.0, "Budget ceiling in EUR")
		startFlag    = flag.String("start", "09:00", "Window start (HH:MM)")
		endFlag      = flag.String("end", "10:30", "Window end (HH:MM)")
		topicsFlag   = flag.String("topics", "nature,movement", "Comma-separated topics")
		goalsFlag    = flag.String("goals", "", "Comma-separated developmental goals (max 2)")
		ageFlag      = flag.Float64("age", 0, "Child age in years (0 = unset)")
		locationFlag = flag.String("location", "mixed", "Location preference: indoor, outdoor, mixed")
		materials    = flag.String("materials", "", "Comma-separated available materials")
		scriptFlag   = flag.Bool("parent-script", false, "Render the plan as a timed parent-child script")
		offlineFlag  = flag.Bool("offline", false, "Suggest from the offline library instead of planning")
		noLLMFlag    = flag.Bool("no-llm", false, "Skip the generator and use the template plan")
		markdownOut  = flag.String("out", "", "Write the markdown document to this file")
		icsOut       = flag.String("ics", "", "Write a calendar event (.ics) to this file")
		jsonOut      = flag.String("json", "", "Write the full plan artifact (.json) to this file")
	)
	flag.Parse()

	criteria, err := buildCriteria(*dateFlag, *plzFlag, *radiusFlag, *effortFlag, *budgetFlag,
		*startFlag, *endFlag, *topicsFlag, *goalsFlag, *ageFlag, *locationFlag, *materials)
	if err != nil {
		log.Fatalf("Invalid criteria: %v", err)
	}

	if *offlineFlag {
		runOffline(criteria)
		return
	}

	runPlanner(criteria, *scriptFlag, *noLLMFlag, *markdownOut, *icsOut, *jsonOut)
}

func runOffline(criteria *models.SearchCriteria) {
	suggestions, warnings := library.Suggest(criteria)
	for _, warning := range warnings {
		fmt.Fprintln(os.Stderr, warning)
	}
	for i, s := range suggestions {
		fmt.Printf("%d. %s (%s, %.0f EUR)\n   %s\n", i+1, s.Title, s.IndoorOutdoor, s.ExpectedCostEur, s.Description)
	}
}

func runPlanner(criteria *models.SearchCriteria, parentScript, noLLM bool, markdownOut, icsOut, jsonOut string) {
	ctx := context.Background()

	adventures, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	weatherClient := services.NewWeatherClient()
	weather, err := weatherClient.GetWeatherSummary(ctx, criteria)
	if err != nil {
		log.Printf("Weather unavailable, planning neutrally: %v", err)
		weather = services.NeutralSummary(criteria.Date)
	}

	picked, candidates := recommend.PickDailyAdventure(adventures, criteria, weather)
	log.Printf("Picked %s out of %d candidates", picked.Slug, len(candidates))

	var generator plan.Generator
	if !noLLM {
		if gen, err := services.NewPlanGenerator(); err != nil {
			log.Printf("Generator unavailable, using template plan: %v", err)
		} else {
			generator = gen
		}
	}

	mode := models.PlanModeStandard
	if parentScript {
		mode = models.PlanModeParentScript
	}

	activityPlan, notices := plan.Compose(ctx, generator, &picked, criteria, weather, mode)
	for _, notice := range notices {
		fmt.Fprintln(os.Stderr, notice)
	}

	markdown := export.RenderDailyMarkdown(&picked, activityPlan, weather)

	if icsOut != "" {
		startTime := criteria.TimeWindow.Start
		ics := export.BuildICSEvent(export.ICSEvent{
			Day:             criteria.Date,
			Summary:         "Mikroabenteuer: " + picked.Title,
			Description:     markdown,
			Location:        picked.Area,
			StartTime:       &startTime,
			DurationMinutes: picked.DurationMinutes,
		})
		writeOutput(icsOut, ics)
	}

	if jsonOut != "" {
		artifact := &export.DailyArtifact{
			Criteria:  criteria,
			Weather:   weather,
			Adventure: &picked,
			Plan:      activityPlan,
			Markdown:  markdown,
			Notices:   notices,
		}
		data, err := export.MarshalDailyArtifact(artifact)
		if err != nil {
			log.Fatalf("Failed to serialize artifact: %v", err)
		}
		writeOutput(jsonOut, data)
	}

	if markdownOut != "" {
		writeOutput(markdownOut, []byte(markdown))
		return
	}
	fmt.Print(markdown)
}

func writeOutput(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	log.Printf("Wrote %s", path)
}

func buildCriteria(date, plz string, radius float64, effort string, budget float64,
	start, end, topics, goals string, age float64, location, materials string) (*models.SearchCriteria, error) {
	day := time.Now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
		day = parsed
	}

	startClock, err := time.Parse("15:04", start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	endClock, err := time.Parse("15:04", end)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q: %w", end, err)
	}

	var goalList []models.DevelopmentDomain
	for _, g := range splitList(goals) {
		goalList = append(goalList, models.DevelopmentDomain(g))
	}

	input := models.CriteriaInput{
		PostalCode:         plz,
		RadiusKm:           radius,
		Date:               day,
		StartTime:          startClock,
		EndTime:            endClock,
		Effort:             models.Effort(effort),
		BudgetEurMax:       budget,
		Topics:             splitList(topics),
		LocationPreference: models.IndoorOutdoor(location),
		Goals:              goalList,
		AvailableMaterials: splitList(materials),
		MaxSuggestions:     5,
	}
	if age > 0 {
		input.ChildAgeYears = &age
	}
	return models.NewSearchCriteria(input)
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
