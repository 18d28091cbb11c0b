package main

import (
	"fmt"
	"testing"
	"time"

	"duesseldorf-family-adventures/internal/models"
)

func TestNewestFirstSortsAndCapsListing(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var reports []models.PlanReport
	for i := 0; i < maxReportListing+10; i++ {
		reports = append(reports, models.PlanReport{
			ReportID:     fmt.Sprintf("rep_%03d", i),
			TimestampUTC: base.Add(time.Duration(i) * time.Minute),
		})
	}

	limited := newestFirst(reports, maxReportListing)

	if len(limited) != maxReportListing {
		t.Errorf("Expected listing capped at %d, got %d", maxReportListing, len(limited))
	}
	if limited[0].ReportID != fmt.Sprintf("rep_%03d", maxReportListing+9) {
		t.Errorf("Expected the newest report first, got %s", limited[0].ReportID)
	}
	for i := 1; i < len(limited); i++ {
		if limited[i].TimestampUTC.After(limited[i-1].TimestampUTC) {
			t.Fatalf("Expected descending timestamps at index %d", i)
		}
	}
}

func TestNewestFirstKeepsShortListings(t *testing.T) {
	reports := []models.PlanReport{
		{ReportID: "rep_a", TimestampUTC: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)},
		{ReportID: "rep_b", TimestampUTC: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)},
	}

	limited := newestFirst(reports, maxReportListing)

	if len(limited) != 2 || limited[0].ReportID != "rep_b" {
		t.Errorf("Expected both reports newest-first, got %v", limited)
	}
}
