package models

import (
	"fmt"
	"strings"
)

// PlanMode selects how the plan steps are framed
type PlanMode string

const (
	PlanModeStandard     PlanMode = "standard"
	PlanModeParentScript PlanMode = "parent_script"
)

// AgeUnit qualifies ActivityRequest.AgeValue
type AgeUnit string

const (
	AgeUnitMonths AgeUnit = "months"
	AgeUnitYears  AgeUnit = "years"
)

// MonthsPerYear is the fixed conversion used by every age gate
const MonthsPerYear = 12

// Bounds on parent-child prompts per delivered plan
const (
	MinPlanPrompts = 3
	MaxPlanPrompts = 6
)

// ParentChildPrompt pairs a thing to say with a thing to do
type ParentChildPrompt struct {
	Say string `json:"say"`
	Do  string `json:"do"`
}

// Text joins both cues for keyword scanning and rendering
func (p ParentChildPrompt) Text() string {
	return p.Say + " " + p.Do
}

// ActivityPlan is the structured, user-facing output for a chosen
// activity. It is produced fresh per request and never persisted; only an
// anonymized hash of reported plans is stored for moderation review.
type ActivityPlan struct {
	Title       string              `json:"title"`
	Summary     string              `json:"summary"`
	Steps       []string            `json:"steps"`
	SafetyNotes []string            `json:"safety_notes"`
	Prompts     []ParentChildPrompt `json:"parent_child_prompts"`
	Variants    []string            `json:"variants"`
	Supports    []DevelopmentDomain `json:"supports,omitempty"`
}

// AllText concatenates every text field of the plan. The safety validator
// scans this blob; keep it in sync with the struct fields.
func (p *ActivityPlan) AllText() string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString("\n")
	b.WriteString(p.Summary)
	for _, s := range p.Steps {
		b.WriteString("\n")
		b.WriteString(s)
	}
	for _, s := range p.SafetyNotes {
		b.WriteString("\n")
		b.WriteString(s)
	}
	for _, prompt := range p.Prompts {
		b.WriteString("\n")
		b.WriteString(prompt.Text())
	}
	for _, v := range p.Variants {
		b.WriteString("\n")
		b.WriteString(v)
	}
	return b.String()
}

// Clone returns a deep copy so post-processing never mutates a plan the
// caller still holds.
func (p *ActivityPlan) Clone() *ActivityPlan {
	out := &ActivityPlan{
		Title:   p.Title,
		Summary: p.Summary,
	}
	out.Steps = append([]string(nil), p.Steps...)
	out.SafetyNotes = append([]string(nil), p.SafetyNotes...)
	out.Prompts = append([]ParentChildPrompt(nil), p.Prompts...)
	out.Variants = append([]string(nil), p.Variants...)
	out.Supports = append([]DevelopmentDomain(nil), p.Supports...)
	return out
}

// ActivityRequest is the contract object handed to plan generators and to
// the safety validator. It is derived from an adventure + criteria pairing.
type ActivityRequest struct {
	AgeValue        float64             `json:"age_value"`
	AgeUnit         AgeUnit             `json:"age_unit"`
	DurationMinutes int                 `json:"duration_minutes"`
	IndoorOutdoor   IndoorOutdoor       `json:"indoor_outdoor"`
	Materials       []string            `json:"materials"`
	Goals           []DevelopmentDomain `json:"goals"`
	Constraints     []string            `json:"constraints,omitempty"`
}

// AgeInMonths converts the request age via the fixed 12x rule
func (r *ActivityRequest) AgeInMonths() float64 {
	if r.AgeUnit == AgeUnitYears {
		return r.AgeValue * MonthsPerYear
	}
	return r.AgeValue
}

// DefaultChildAgeYears is assumed when criteria carry no explicit age;
// the planner targets toddlers.
const DefaultChildAgeYears = 2.5

// NewActivityRequest derives the generator/validator contract object from
// a chosen adventure and the criteria that selected it.
func NewActivityRequest(adventure *MicroAdventure, criteria *SearchCriteria) *ActivityRequest {
	age := DefaultChildAgeYears
	if criteria.ChildAgeYears != nil {
		age = *criteria.ChildAgeYears
	}

	duration := adventure.DurationMinutes
	if available := criteria.AvailableMinutes(); available < duration {
		duration = available
	}

	return &ActivityRequest{
		AgeValue:        age,
		AgeUnit:         AgeUnitYears,
		DurationMinutes: duration,
		IndoorOutdoor:   criteria.LocationPreference,
		Materials:       append([]string(nil), criteria.AvailableMaterials...),
		Goals:           append([]DevelopmentDomain(nil), criteria.Goals...),
		Constraints:     append([]string(nil), criteria.Constraints...),
	}
}

// Validate checks the generator-contract invariants on a returned plan
// shape before it enters the pipeline.
func (p *ActivityPlan) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("plan title must not be empty")
	}
	if len(p.Steps) == 0 {
		return fmt.Errorf("plan %q: steps must not be empty", p.Title)
	}
	if len(p.SafetyNotes) == 0 {
		return fmt.Errorf("plan %q: safety_notes must not be empty", p.Title)
	}
	if n := len(p.Prompts); n < MinPlanPrompts || n > MaxPlanPrompts {
		return fmt.Errorf("plan %q: expected %d-%d parent_child_prompts, got %d",
			p.Title, MinPlanPrompts, MaxPlanPrompts, n)
	}
	return nil
}
