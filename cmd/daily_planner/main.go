package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"duesseldorf-family-adventures/internal/export"
	"duesseldorf-family-adventures/internal/models"
	"duesseldorf-family-adventures/internal/plan"
	"duesseldorf-family-adventures/internal/recommend"
	"duesseldorf-family-adventures/internal/services"
)

// DailyPlannerEvent is the EventBridge trigger event. All fields are
// optional; unset fields fall back to the configured defaults.
type DailyPlannerEvent struct {
	Source      string `json:"source"`
	DetailType  string `json:"detail-type"`
	Date        string `json:"date,omitempty"`
	PostalCode  string `json:"plz,omitempty"`
	Effort      string `json:"effort,omitempty"`
	ParentMode  bool   `json:"parent_script,omitempty"`
	TriggerType string `json:"trigger-type,omitempty"` // manual, scheduled
}

// DailyPlannerResponse summarizes a completed run.
type DailyPlannerResponse struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	Date           string   `json:"date"`
	AdventureSlug  string   `json:"adventure_slug"`
	PlanTitle      string   `json:"plan_title"`
	Candidates     int      `json:"candidates"`
	UploadedFiles  []string `json:"uploaded_files"`
	Notices        []string `json:"notices,omitempty"`
	ProcessingTime int64    `json:"processing_time_ms"`
}

func handleRequest(ctx context.Context, event DailyPlannerEvent) (DailyPlannerResponse, error) {
	start := time.Now()
	log.Printf("Daily planner triggered: source=%s type=%s", event.Source, event.TriggerType)

	criteria, err := buildCriteria(event)
	if err != nil {
		return DailyPlannerResponse{Success: false, Message: err.Error()}, err
	}

	store, err := services.NewArtifactStore(ctx)
	if err != nil {
		return DailyPlannerResponse{Success: false, Message: err.Error()}, err
	}

	adventures, err := store.LoadCatalog(ctx)
	if err != nil {
		return DailyPlannerResponse{Success: false, Message: err.Error()}, err
	}

	var notices []string
	weatherClient := services.NewWeatherClient()
	weather, err := weatherClient.GetWeatherSummary(ctx, criteria)
	if err != nil {
		log.Printf("Weather fetch failed, planning with neutral weather: %v", err)
		weather = services.NeutralSummary(criteria.Date)
		notices = append(notices, "Wetterdaten nicht verfügbar, neutral geplant. / Weather unavailable, planned neutrally.")
	}

	picked, candidates := recommend.PickDailyAdventure(adventures, criteria, weather)

	mode := models.PlanModeStandard
	if event.ParentMode {
		mode = models.PlanModeParentScript
	}

	var generator plan.Generator
	if gen, err := services.NewPlanGenerator(); err != nil {
		log.Printf("Plan generator unavailable: %v", err)
	} else {
		generator = gen
	}

	activityPlan, planNotices := plan.Compose(ctx, generator, &picked, criteria, weather, mode)
	notices = append(notices, planNotices...)

	markdown := export.RenderDailyMarkdown(&picked, activityPlan, weather)
	artifact := &export.DailyArtifact{
		Criteria:  criteria,
		Weather:   weather,
		Adventure: &picked,
		Plan:      activityPlan,
		Markdown:  markdown,
		Notices:   notices,
	}
	artifactJSON, err := export.MarshalDailyArtifact(artifact)
	if err != nil {
		return DailyPlannerResponse{Success: false, Message: err.Error()}, err
	}

	startTime := criteria.TimeWindow.Start
	ics := export.BuildICSEvent(export.ICSEvent{
		Day:             criteria.Date,
		Summary:         "Mikroabenteuer: " + picked.Title,
		Description:     markdown,
		Location:        picked.Area,
		StartTime:       &startTime,
		DurationMinutes: picked.DurationMinutes,
	})

	var uploaded []string
	for _, upload := range []struct {
		publish func() (*services.UploadResult, error)
	}{
		{func() (*services.UploadResult, error) { return store.PublishDailyArtifact(ctx, criteria.Date, artifactJSON) }},
		{func() (*services.UploadResult, error) { return store.PublishDailyMarkdown(ctx, criteria.Date, markdown) }},
		{func() (*services.UploadResult, error) { return store.PublishDailyICS(ctx, criteria.Date, ics) }},
	} {
		result, err := upload.publish()
		if err != nil {
			return DailyPlannerResponse{Success: false, Message: err.Error()}, err
		}
		uploaded = append(uploaded, result.Key)
	}

	log.Printf("Daily plan published: %s (%s) in %v", picked.Slug, activityPlan.Title, time.Since(start))
	return DailyPlannerResponse{
		Success:        true,
		Message:        fmt.Sprintf("Published daily plan for %s", criteria.Date.Format("2006-01-02")),
		Date:           criteria.Date.Format("2006-01-02"),
		AdventureSlug:  picked.Slug,
		PlanTitle:      activityPlan.Title,
		Candidates:     len(candidates),
		UploadedFiles:  uploaded,
		Notices:        notices,
		ProcessingTime: time.Since(start).Milliseconds(),
	}, nil
}

func buildCriteria(event DailyPlannerEvent) (*models.SearchCriteria, error) {
	day := time.Now()
	if event.Date != "" {
		parsed, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", event.Date, err)
		}
		day = parsed
	}

	plz := event.PostalCode
	if plz == "" {
		plz = envOr("DEFAULT_PLZ", "40215")
	}
	effort := models.Effort(event.Effort)
	if effort == "" {
		effort = models.Effort(envOr("DEFAULT_EFFORT", string(models.EffortMedium)))
	}

	criteria, err := models.NewSearchCriteria(models.CriteriaInput{
		PostalCode:         plz,
		RadiusKm:           5.0,
		Date:               day,
		StartTime:          time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:            time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC),
		Effort:             effort,
		BudgetEurMax:       20.0,
		Topics:             []string{"nature", "movement"},
		LocationPreference: models.LocationMixed,
		MaxSuggestions:     5,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid planner configuration: %w", err)
	}
	return criteria, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	lambda.Start(handleRequest)
}
