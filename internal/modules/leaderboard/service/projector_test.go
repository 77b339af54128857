package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func member(name, username string, xp int) Member {
	return Member{ID: uuid.New(), Username: username, FullName: name, XP: xp}
}

func TestProjectSortsByXPDescendingWithDenseRanks(t *testing.T) {
	members := []Member{
		member("Low Scorer", "low", 100),
		member("Top Scorer", "top", 300),
		member("Mid Scorer", "mid", 200),
	}

	entries := Project(members, Filter{Track: AllTracks, Cohort: AllCohorts}, uuid.Nil)

	require.Len(t, entries, 3)
	assert.Equal(t, "Top Scorer", entries[0].Name)
	assert.Equal(t, "Mid Scorer", entries[1].Name)
	assert.Equal(t, "Low Scorer", entries[2].Name)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestProjectTiesKeepInputOrder(t *testing.T) {
	first := member("First Tied", "first", 200)
	second := member("Second Tied", "second", 200)

	entries := Project([]Member{first, second}, Filter{}, uuid.Nil)

	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestProjectFiltersByTrack(t *testing.T) {
	members := []Member{
		{ID: uuid.New(), Username: "a", FullName: "A", Track: strp("Software"), XP: 10},
		{ID: uuid.New(), Username: "b", FullName: "B", Track: strp("Design"), XP: 20},
		{ID: uuid.New(), Username: "c", FullName: "C", Track: strp(" software "), XP: 30},
	}

	entries := Project(members, Filter{Track: "Software", Cohort: AllCohorts}, uuid.Nil)

	require.Len(t, entries, 2)
	// Trimmed, case-insensitive match; ranks re-assigned within the filtered view.
	assert.Equal(t, "C", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "A", entries[1].Name)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestProjectNilTrackNeverMatchesSpecificFilter(t *testing.T) {
	members := []Member{
		{ID: uuid.New(), Username: "untracked", FullName: "No Track", Track: nil, XP: 999},
	}

	assert.Empty(t, Project(members, Filter{Track: "Software"}, uuid.Nil))
	assert.Len(t, Project(members, Filter{Track: AllTracks}, uuid.Nil), 1)
	assert.Len(t, Project(members, Filter{}, uuid.Nil), 1)
}

func TestProjectCohortFilter(t *testing.T) {
	members := []Member{
		{ID: uuid.New(), Username: "a", FullName: "A", Cohort: strp("2024"), XP: 10},
		{ID: uuid.New(), Username: "b", FullName: "B", Cohort: nil, XP: 20},
	}

	entries := Project(members, Filter{Track: AllTracks, Cohort: "2024"}, uuid.Nil)
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].Name)
}

func TestProjectMarksCurrentUser(t *testing.T) {
	me := member("Current User", "me", 50)
	other := member("Someone Else", "other", 70)

	entries := Project([]Member{me, other}, Filter{}, me.ID)

	require.Len(t, entries, 2)
	assert.False(t, entries[0].IsCurrentUser)
	assert.True(t, entries[1].IsCurrentUser)
}

func TestInitialsFromFullName(t *testing.T) {
	assert.Equal(t, "AB", Initials("alice bobson", "ignored"))
	assert.Equal(t, "AB", Initials("Alice Bobson Carter", "ignored"))
	assert.Equal(t, "A", Initials("Alice", "ignored"))
}

func TestInitialsFallBackToUsername(t *testing.T) {
	assert.Equal(t, "JD", Initials("", "jdoe"))
	assert.Equal(t, "X", Initials("", "x"))
	assert.Equal(t, "", Initials("", ""))
}

func TestProjectUsesUsernameWhenFullNameMissing(t *testing.T) {
	m := Member{ID: uuid.New(), Username: "jdoe", XP: 10}

	entries := Project([]Member{m}, Filter{}, uuid.Nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "jdoe", entries[0].Name)
	assert.Equal(t, "JD", entries[0].Initials)
}
