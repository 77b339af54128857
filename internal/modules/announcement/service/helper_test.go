package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brik.community/portal/internal/entity"
)

func TestApplyDateColumns(t *testing.T) {
	var a entity.Announcement
	applyDateColumns(&a, "2025-03-10", "2025-03-12", "10:00 AM", "2:00 PM")

	require.NotNil(t, a.StartDate)
	require.NotNil(t, a.EndDate)
	assert.Equal(t, "2025-03-10", a.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-03-12", a.EndDate.Format("2006-01-02"))
	require.NotNil(t, a.StartTime)
	assert.Equal(t, "10:00 AM", *a.StartTime)
	require.NotNil(t, a.EndTime)
	assert.Equal(t, "2:00 PM", *a.EndTime)
}

func TestApplyDateColumnsSkipsEmptyFields(t *testing.T) {
	var a entity.Announcement
	applyDateColumns(&a, "2025-03-10", "", "", "")

	require.NotNil(t, a.StartDate)
	assert.Nil(t, a.EndDate)
	assert.Nil(t, a.StartTime)
	assert.Nil(t, a.EndTime)
}

func TestBuildResponsePrefersColumns(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	from := "10:00 AM"

	a := entity.Announcement{
		ID:        uuid.New(),
		Title:     "Hack Week",
		Content:   "Announcement runs from 3/10/2025 to 3/12/2025\nTime: 10:00 AM\n\nBring a laptop.",
		StartDate: &start,
		EndDate:   &end,
		StartTime: &from,
		CreatedBy: entity.User{ID: uuid.New(), Username: "alice"},
	}

	resp := buildResponse(&a)

	assert.Equal(t, "2025-03-10", resp.FromDate)
	assert.Equal(t, "2025-03-12", resp.ToDate)
	assert.Equal(t, "10:00 AM", resp.FromTime)
	assert.Equal(t, "Bring a laptop.", resp.Body)
	assert.False(t, resp.Legacy)
	assert.False(t, resp.Malformed)
	assert.Equal(t, "alice", resp.Author.Username)
}

func TestBuildResponseLegacyFallback(t *testing.T) {
	a := entity.Announcement{
		ID:        uuid.New(),
		Title:     "Old Post",
		Content:   "Date: 3/10/2025\nTime: 9:00 AM - 11:00 AM\n\nImported from the old site.",
		CreatedBy: entity.User{ID: uuid.New(), Username: "bob"},
	}

	resp := buildResponse(&a)

	assert.True(t, resp.Legacy)
	assert.Equal(t, "2025-03-10", resp.FromDate)
	assert.Equal(t, "", resp.ToDate)
	assert.Equal(t, "9:00 AM", resp.FromTime)
	assert.Equal(t, "11:00 AM", resp.ToTime)
	assert.Equal(t, "Imported from the old site.", resp.Body)
}

func TestBuildResponseSurfacesMalformedRange(t *testing.T) {
	a := entity.Announcement{
		ID:        uuid.New(),
		Title:     "Broken",
		Content:   "Announcement runs from 13/45/2025 to 3/12/2025\n\nBody text.",
		CreatedBy: entity.User{ID: uuid.New(), Username: "cara"},
	}

	resp := buildResponse(&a)

	assert.True(t, resp.Malformed)
	assert.Contains(t, resp.Content, "runs from")
}
