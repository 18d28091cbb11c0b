package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"duesseldorf-family-adventures/internal/models"
)

func samplePlan() *models.ActivityPlan {
	return &models.ActivityPlan{
		Title:       "Entenrunde am Weiher",
		Summary:     "Eine ruhige Runde mit Entenbeobachtung.",
		Steps:       []string{"Losgehen", "Enten beobachten"},
		SafetyNotes: []string{"Am Ufer an der Hand führen."},
		Prompts: []models.ParentChildPrompt{
			{Say: "Was siehst du?", Do: "Warte ab und benenne die Antwort."},
		},
		Variants: []string{"Kurzversion für 30 Minuten."},
		Supports: []models.DevelopmentDomain{models.DomainLanguage},
	}
}

func TestRenderActivityPlanMarkdownContainsRequiredSections(t *testing.T) {
	markdown := RenderActivityPlanMarkdown(samplePlan())

	for _, section := range []string{"## Plan", "## Sicherheit", "## Eltern-Kind-Impulse", "## Varianten"} {
		if !strings.Contains(markdown, section) {
			t.Errorf("Expected section %q in markdown", section)
		}
	}
	if !strings.Contains(markdown, "# Entenrunde am Weiher") {
		t.Error("Expected plan title as top heading")
	}
	if !strings.Contains(markdown, "Fördert: Sprache") {
		t.Error("Expected supported goals line")
	}
}

func TestRenderDailyMarkdownIncludesAdventureFacts(t *testing.T) {
	adventure := &models.MicroAdventure{
		Title:           "Entenrunde",
		Area:            "Volksgarten",
		DurationMinutes: 45,
		DistanceKm:      1.4,
		StartPoint:      "Eingang Volksgartenstraße",
	}
	temp := 21.0
	wind := 12.0
	weather := &models.WeatherSummary{
		TemperatureMaxC: &temp,
		WindSpeedMaxKmh: &wind,
	}

	markdown := RenderDailyMarkdown(adventure, samplePlan(), weather)

	if !strings.Contains(markdown, "# Mikroabenteuer des Tages") {
		t.Error("Expected daily heading")
	}
	if !strings.Contains(markdown, "*Ort:* Volksgarten · *Dauer:* 45 min · *Distanz:* 1.4 km") {
		t.Error("Expected the adventure fact line")
	}
	if !strings.Contains(markdown, "Wetter: max 21°C, Wind 12 km/h") {
		t.Errorf("Expected weather line, got:\n%s", markdown)
	}
	if !strings.Contains(markdown, "**Startpunkt:** Eingang Volksgartenstraße") {
		t.Error("Expected start point line")
	}
}

func TestRenderDailyMarkdownWithoutWeather(t *testing.T) {
	adventure := &models.MicroAdventure{Title: "Runde", Area: "Südpark"}
	markdown := RenderDailyMarkdown(adventure, samplePlan(), nil)
	if !strings.Contains(markdown, "Wetter: (nicht geladen)") {
		t.Error("Expected the missing-weather placeholder")
	}
}

func TestBuildICSEventEscapesAndTerminates(t *testing.T) {
	payload := BuildICSEvent(ICSEvent{
		Day:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Summary:     "Wald, Spaß",
		Description: "Zeile 1\nZeile 2",
		Location:    "Volksgarten",
	})
	text := string(payload)

	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "END:VEVENT", "END:VCALENDAR"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in ICS output", want)
		}
	}
	if !strings.Contains(text, "SUMMARY:Wald\\, Spaß") {
		t.Error("Expected comma escaping in summary")
	}
	if !strings.Contains(text, "DESCRIPTION:Zeile 1\\nZeile 2") {
		t.Error("Expected newline escaping in description")
	}
	if !strings.HasSuffix(text, "\r\n") {
		t.Error("Expected CRLF-terminated document")
	}
}

func TestBuildICSEventAllDayWithoutStartTime(t *testing.T) {
	payload := BuildICSEvent(ICSEvent{
		Day:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Summary: "Tagesabenteuer",
	})
	text := string(payload)

	if !strings.Contains(text, "DTSTART;VALUE=DATE:20260101") {
		t.Error("Expected all-day DTSTART")
	}
	if !strings.Contains(text, "DTEND;VALUE=DATE:20260102") {
		t.Error("Expected all-day DTEND on the following day")
	}
}

func TestBuildICSEventTimedWithMinimumDuration(t *testing.T) {
	start := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
	payload := BuildICSEvent(ICSEvent{
		Day:             time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Summary:         "Kurzbesuch",
		StartTime:       &start,
		DurationMinutes: 5,
	})
	text := string(payload)

	if !strings.Contains(text, "DTSTART;TZID=Europe/Berlin:20260101T090000") {
		t.Errorf("Expected timed DTSTART, got:\n%s", text)
	}
	if !strings.Contains(text, "DTEND;TZID=Europe/Berlin:20260101T091500") {
		t.Error("Expected the event stretched to the 15-minute minimum")
	}
}

func TestBuildICSEventUIDsAreUnique(t *testing.T) {
	event := ICSEvent{Day: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Summary: "X"}
	first := string(BuildICSEvent(event))
	second := string(BuildICSEvent(event))

	if uidLine(first) == "" || uidLine(first) == uidLine(second) {
		t.Error("Expected distinct UIDs per event")
	}
}

func uidLine(doc string) string {
	for _, line := range strings.Split(doc, "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			return line
		}
	}
	return ""
}

func TestMarshalDailyArtifactRoundTrips(t *testing.T) {
	artifact := &DailyArtifact{
		Adventure: &models.MicroAdventure{Slug: "entenrunde", Title: "Entenrunde"},
		Plan:      samplePlan(),
		Markdown:  "# Titel",
		Notices:   []string{"Hinweis"},
	}

	data, err := MarshalDailyArtifact(artifact)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded DailyArtifact
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Adventure.Slug != "entenrunde" || decoded.Plan.Title != artifact.Plan.Title {
		t.Error("Expected artifact to round-trip")
	}
}
