package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultTimezoneID  = "Europe/Berlin"
	minEventMinutes    = 15
	icsProductID       = "-//Duesseldorf Family Adventures//DE"
	icsUIDDomainSuffix = "@mikroabenteuer.local"
)

// ICSEvent describes a single calendar event to render. A nil StartTime
// produces an all-day event.
type ICSEvent struct {
	Day             time.Time
	Summary         string
	Description     string
	Location        string
	TimezoneID      string
	StartTime       *time.Time
	DurationMinutes int
}

// BuildICSEvent renders a one-event VCALENDAR document with CRLF line
// endings. Timed events run for at least 15 minutes.
func BuildICSEvent(event ICSEvent) []byte {
	tzid := event.TimezoneID
	if tzid == "" {
		tzid = defaultTimezoneID
	}
	uid := uuid.New().String() + icsUIDDomainSuffix
	dtstamp := time.Now().UTC().Format("20060102T150405Z")

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + icsProductID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + dtstamp,
		"SUMMARY:" + escapeICSText(event.Summary),
		"DESCRIPTION:" + escapeICSText(event.Description),
		"LOCATION:" + escapeICSText(event.Location),
	}

	if event.StartTime == nil {
		lines = append(lines,
			"DTSTART;VALUE=DATE:"+event.Day.Format("20060102"),
			"DTEND;VALUE=DATE:"+event.Day.AddDate(0, 0, 1).Format("20060102"))
	} else {
		start := time.Date(event.Day.Year(), event.Day.Month(), event.Day.Day(),
			event.StartTime.Hour(), event.StartTime.Minute(), event.StartTime.Second(), 0, time.UTC)
		duration := event.DurationMinutes
		if duration < minEventMinutes {
			duration = minEventMinutes
		}
		end := start.Add(time.Duration(duration) * time.Minute)
		lines = append(lines,
			fmt.Sprintf("DTSTART;TZID=%s:%s", tzid, start.Format("20060102T150405")),
			fmt.Sprintf("DTEND;TZID=%s:%s", tzid, end.Format("20060102T150405")))
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR", "")
	return []byte(strings.Join(lines, "\r\n"))
}

// escapeICSText applies RFC 5545 text escaping.
func escapeICSText(text string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(text)
}
