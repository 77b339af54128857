package textmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDateRange(t *testing.T) {
	got := AnnouncementCodec.Compose("2025-03-01", "2025-03-03", "", "", "Kickoff week")
	assert.Equal(t, "Announcement runs from 3/1/2025 to 3/3/2025\n\nKickoff week", got)
}

func TestComposeEventLabel(t *testing.T) {
	got := EventCodec.Compose("2025-06-10", "2025-06-12", "", "", "Hack night")
	assert.Equal(t, "Event runs from 6/10/2025 to 6/12/2025\n\nHack night", got)
}

func TestComposeSingleDate(t *testing.T) {
	got := AnnouncementCodec.Compose("2025-03-01", "", "", "", "One day only")
	assert.Equal(t, "Date: 3/1/2025\n\nOne day only", got)
}

func TestComposeEqualDatesCollapseToSingle(t *testing.T) {
	got := AnnouncementCodec.Compose("2025-03-01", "2025-03-01", "", "", "Same day")
	assert.Equal(t, "Date: 3/1/2025\n\nSame day", got)
}

func TestComposeTimeRange(t *testing.T) {
	got := AnnouncementCodec.Compose("", "", "09:00", "11:00", "Workshop")
	assert.Equal(t, "Time: 09:00 - 11:00\n\nWorkshop", got)
}

func TestComposeFromTimeOnly(t *testing.T) {
	got := AnnouncementCodec.Compose("", "", "09:00", "", "Workshop")
	assert.Equal(t, "Time: 09:00\n\nWorkshop", got)
}

func TestComposeToTimeWithoutFromTimeEmitsNothing(t *testing.T) {
	got := AnnouncementCodec.Compose("", "", "", "11:00", "Workshop")
	assert.Equal(t, "Workshop", got)
}

func TestComposeNoMetadataReturnsBodyUnchanged(t *testing.T) {
	body := "Plain text.\n\nWith paragraphs."
	assert.Equal(t, body, AnnouncementCodec.Compose("", "", "", "", body))
}

func TestParseRecoversDateRange(t *testing.T) {
	encoded := AnnouncementCodec.Compose("2025-03-01", "2025-03-03", "", "", "Kickoff week")
	meta := AnnouncementCodec.Parse(encoded)

	assert.Equal(t, "2025-03-01", meta.FromDate)
	assert.Equal(t, "2025-03-03", meta.ToDate)
	assert.Equal(t, "Kickoff week", meta.Body)
	assert.False(t, meta.Malformed)
}

func TestParseRecoversSingleDateWithoutToDate(t *testing.T) {
	encoded := AnnouncementCodec.Compose("2025-03-01", "", "", "", "One day only")
	meta := AnnouncementCodec.Parse(encoded)

	assert.Equal(t, "2025-03-01", meta.FromDate)
	assert.Empty(t, meta.ToDate)
	assert.Equal(t, "One day only", meta.Body)
}

func TestParseRecoversTimeRange(t *testing.T) {
	meta := AnnouncementCodec.Parse("Time: 09:00 - 11:00\n\nWorkshop")

	assert.Equal(t, "09:00", meta.FromTime)
	assert.Equal(t, "11:00", meta.ToTime)
	assert.Equal(t, "Workshop", meta.Body)
}

func TestParseFromTimeOnly(t *testing.T) {
	meta := AnnouncementCodec.Parse("Time: 09:00\n\nWorkshop")

	assert.Equal(t, "09:00", meta.FromTime)
	assert.Empty(t, meta.ToTime)
	assert.Equal(t, "Workshop", meta.Body)
}

func TestParseDateAndTimeTogether(t *testing.T) {
	encoded := AnnouncementCodec.Compose("2025-03-01", "2025-03-03", "09:00", "11:00", "Kickoff week")
	require.Equal(t, "Announcement runs from 3/1/2025 to 3/3/2025\nTime: 09:00 - 11:00\n\nKickoff week", encoded)

	meta := AnnouncementCodec.Parse(encoded)
	assert.Equal(t, "2025-03-01", meta.FromDate)
	assert.Equal(t, "2025-03-03", meta.ToDate)
	assert.Equal(t, "09:00", meta.FromTime)
	assert.Equal(t, "11:00", meta.ToTime)
	assert.Equal(t, "Kickoff week", meta.Body)
}

func TestParseIsCaseInsensitive(t *testing.T) {
	meta := EventCodec.Parse("event RUNS FROM 3/1/2025 TO 3/3/2025\ntime: 10:00\n\nbody")
	assert.Equal(t, "2025-03-01", meta.FromDate)
	assert.Equal(t, "2025-03-03", meta.ToDate)
	assert.Equal(t, "10:00", meta.FromTime)
	assert.Equal(t, "body", meta.Body)
}

func TestParseRangeWinsOverSingleDate(t *testing.T) {
	meta := AnnouncementCodec.Parse("Announcement runs from 3/1/2025 to 3/3/2025\nDate: 4/1/2025\n\nbody")
	assert.Equal(t, "2025-03-01", meta.FromDate)
	assert.Equal(t, "2025-03-03", meta.ToDate)
	// The stray Date: line is not consumed once the range matched.
	assert.Contains(t, meta.Body, "Date: 4/1/2025")
}

func TestParseMalformedRangeFallsBackToSingleDate(t *testing.T) {
	meta := AnnouncementCodec.Parse("Announcement runs from whenever to forever\nDate: 3/5/2025\n\nbody")

	assert.True(t, meta.Malformed)
	assert.Equal(t, "2025-03-05", meta.FromDate)
	assert.Empty(t, meta.ToDate)
	// The unparsable range line stays in the body.
	assert.Contains(t, meta.Body, "Announcement runs from whenever to forever")
}

func TestParseMalformedDateLeftInBody(t *testing.T) {
	meta := AnnouncementCodec.Parse("Date: not a date\n\nbody")

	assert.True(t, meta.Malformed)
	assert.Empty(t, meta.FromDate)
	assert.Contains(t, meta.Body, "Date: not a date")
}

func TestParseAcceptsIsoDates(t *testing.T) {
	meta := AnnouncementCodec.Parse("Announcement runs from 2025-03-01 to 2025-03-03\n\nbody")
	assert.Equal(t, "2025-03-01", meta.FromDate)
	assert.Equal(t, "2025-03-03", meta.ToDate)
}

func TestParsePlainBodyUntouched(t *testing.T) {
	body := "\nA plain body that starts with a newline.\nNothing to see here."
	meta := AnnouncementCodec.Parse(body)

	assert.Equal(t, body, meta.Body)
	assert.Empty(t, meta.FromDate)
	assert.Empty(t, meta.FromTime)
	assert.False(t, meta.Malformed)
}

func TestRoundTripBodyIdempotence(t *testing.T) {
	bodies := []string{
		"Kickoff week",
		"Multi\nline\nbody",
		"Body with trailing space ",
		"",
	}
	for _, body := range bodies {
		encoded := AnnouncementCodec.Compose("2025-03-01", "2025-03-03", "09:00", "11:00", body)
		assert.Equal(t, body, AnnouncementCodec.Parse(encoded).Body, "body %q", body)
	}
}
