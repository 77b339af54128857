// Package textmeta encodes optional date/time ranges into the free-text
// content of announcements and calendar events, and parses them back out.
//
// The old portal had no dedicated date columns on announcements, so the
// range was embedded as metadata lines at the top of the content field:
//
//	Announcement runs from 3/1/2025 to 3/3/2025
//	Time: 09:00 - 11:00
//
//	<body text>
//
// This backend stores the range in structured columns but keeps composing
// and parsing the block so stored text stays compatible with old clients
// and with historical rows.
package textmeta

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Codec composes and parses a metadata block. Label is the subject word used
// in the range line: "Announcement" for announcements, "Event" for events.
type Codec struct {
	Label string
}

var (
	AnnouncementCodec = Codec{Label: "Announcement"}
	EventCodec        = Codec{Label: "Event"}
)

// Meta is the result of parsing a content blob. Dates are normalized to
// YYYY-MM-DD; times are kept verbatim. Malformed is set when a metadata line
// matched but its date value could not be parsed; the raw line then stays in
// Body so nothing is lost.
type Meta struct {
	FromDate  string
	ToDate    string
	FromTime  string
	ToTime    string
	Body      string
	Malformed bool
}

// Matching is lazy and line-bounded: values run up to the next newline or
// end of string, never across lines.
var (
	rangeRe  = regexp.MustCompile(`(?i)(?:announcement|event) runs from (.+?) to (.+?)(\n|$)`)
	singleRe = regexp.MustCompile(`(?i)date: (.+?)(\n|$)`)
	timeRe   = regexp.MustCompile(`(?i)time: (.+?)(\n|$)`)
)

// Compose builds the stored content string. fromDate/toDate are YYYY-MM-DD
// (empty when absent), times are free-form strings such as "09:00". A toTime
// without a fromTime emits no time line. With no metadata at all, body is
// returned unchanged.
func (c Codec) Compose(fromDate, toDate, fromTime, toTime, body string) string {
	var lines []string

	if fromDate != "" && toDate != "" && toDate != fromDate {
		lines = append(lines, fmt.Sprintf("%s runs from %s to %s", c.Label, shortDate(fromDate), shortDate(toDate)))
	} else if fromDate != "" {
		lines = append(lines, "Date: "+shortDate(fromDate))
	}

	if fromTime != "" && toTime != "" && toTime != fromTime {
		lines = append(lines, fmt.Sprintf("Time: %s - %s", fromTime, toTime))
	} else if fromTime != "" {
		lines = append(lines, "Time: "+fromTime)
	}

	if len(lines) == 0 {
		return body
	}
	return strings.Join(lines, "\n") + "\n\n" + body
}

// Parse extracts metadata lines from content. It never fails: whatever does
// not parse stays in Body. The range pattern wins over the single-date
// pattern; if the range line matched but its dates do not parse, the line is
// left in place and the single-date pattern is tried against the unmodified
// content.
func (c Codec) Parse(content string) Meta {
	var meta Meta
	working := content
	removed := false

	if loc := rangeRe.FindStringSubmatchIndex(working); loc != nil {
		from, okFrom := parseLooseDate(working[loc[2]:loc[3]])
		to, okTo := parseLooseDate(working[loc[4]:loc[5]])
		if okFrom && okTo {
			meta.FromDate = from.Format("2006-01-02")
			meta.ToDate = to.Format("2006-01-02")
			working = working[:loc[0]] + working[loc[1]:]
			removed = true
		} else {
			meta.Malformed = true
		}
	}

	if meta.FromDate == "" {
		if loc := singleRe.FindStringSubmatchIndex(working); loc != nil {
			if d, ok := parseLooseDate(working[loc[2]:loc[3]]); ok {
				meta.FromDate = d.Format("2006-01-02")
				working = working[:loc[0]] + working[loc[1]:]
				removed = true
			} else {
				meta.Malformed = true
			}
		}
	}

	if loc := timeRe.FindStringSubmatchIndex(working); loc != nil {
		value := strings.TrimSpace(working[loc[2]:loc[3]])
		if from, to, found := strings.Cut(value, " - "); found {
			meta.FromTime = strings.TrimSpace(from)
			meta.ToTime = strings.TrimSpace(to)
		} else {
			meta.FromTime = value
		}
		working = working[:loc[0]] + working[loc[1]:]
		removed = true
	}

	if removed {
		working = strings.TrimLeft(working, "\n")
	}
	meta.Body = working
	return meta
}

// shortDate renders a YYYY-MM-DD input as the en-US short form the old
// portal stored (3/1/2025). Anything unparsable passes through untouched.
func shortDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(isoDate))
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

var looseLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

func parseLooseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
