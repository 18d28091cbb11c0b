package models

import (
	"fmt"
	"strings"
	"time"
)

// ReportReasons is the fixed bilingual set of reasons a user can pick when
// flagging a delivered plan.
var ReportReasons = []string{
	"Unsicher / Unsafe",
	"Unpassend / Not relevant",
	"Faktisch falsch / Factually wrong",
	"Sonstiges / Other",
}

// PlanReport is the anonymized moderation record for a flagged plan. Only
// the content hash is stored, never the plan text.
type PlanReport struct {
	ReportID     string    `json:"report_id" dynamodbav:"report_id"`
	PlanHash     string    `json:"plan_hash" dynamodbav:"plan_hash"`
	Reason       string    `json:"reason" dynamodbav:"reason"`
	TimestampUTC time.Time `json:"timestamp_utc" dynamodbav:"timestamp_utc"`
}

// NewPlanReport builds a report for a plan; the reason must be non-empty
func NewPlanReport(plan *ActivityPlan, reason string) (*PlanReport, error) {
	normalized := strings.TrimSpace(reason)
	if normalized == "" {
		return nil, fmt.Errorf("report reason must not be empty")
	}
	hash, err := PlanHash(plan)
	if err != nil {
		return nil, err
	}
	return &PlanReport{
		ReportID:     GenerateReportID(),
		PlanHash:     hash,
		Reason:       normalized,
		TimestampUTC: time.Now().UTC(),
	}, nil
}
