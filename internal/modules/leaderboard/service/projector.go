package service

import (
	"sort"
	"strings"
	"unicode"

	leaderboardDto "brik.community/portal/internal/modules/leaderboard/dto"
	"github.com/google/uuid"
)

// Filter sentinels. An empty filter value behaves like the sentinel.
const (
	AllTracks  = "All Tracks"
	AllCohorts = "All Cohorts"
)

// Member is the raw projection input: one row per member with the profile
// fields the leaderboard needs.
type Member struct {
	ID        uuid.UUID
	Username  string
	FullName  string
	Track     *string
	Cohort    *string
	AvatarURL *string
	XP        int
	Badges    int
}

type Filter struct {
	Track  string
	Cohort string
}

// Project turns raw member rows into the ranked leaderboard view: filter by
// track/cohort, sort by XP descending (stable, ties keep input order), then
// assign dense 1-based ranks.
func Project(members []Member, filter Filter, viewerID uuid.UUID) []leaderboardDto.Entry {
	filtered := make([]Member, 0, len(members))
	for _, m := range members {
		if matchesFilter(m.Track, filter.Track, AllTracks) && matchesFilter(m.Cohort, filter.Cohort, AllCohorts) {
			filtered = append(filtered, m)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].XP > filtered[j].XP
	})

	entries := make([]leaderboardDto.Entry, 0, len(filtered))
	for i, m := range filtered {
		name := m.FullName
		if name == "" {
			name = m.Username
		}
		entries = append(entries, leaderboardDto.Entry{
			Rank:          i + 1,
			ID:            m.ID,
			Name:          name,
			Initials:      Initials(m.FullName, m.Username),
			XP:            m.XP,
			Badges:        m.Badges,
			Track:         m.Track,
			Cohort:        m.Cohort,
			AvatarURL:     m.AvatarURL,
			IsCurrentUser: m.ID == viewerID,
		})
	}
	return entries
}

// matchesFilter: the sentinel (or an empty filter) matches everyone; a
// specific value never matches a member without one.
func matchesFilter(value *string, want, sentinel string) bool {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, sentinel) {
		return true
	}
	if value == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(*value), want)
}

// Initials derives avatar initials: first letter of each of the first two
// space-separated name tokens, uppercased; without a full name, the first
// two characters of the username.
func Initials(fullName, username string) string {
	tokens := strings.Fields(fullName)
	if len(tokens) > 0 {
		var b strings.Builder
		for i, token := range tokens {
			if i == 2 {
				break
			}
			b.WriteRune(unicode.ToUpper([]rune(token)[0]))
		}
		return b.String()
	}

	runes := []rune(username)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
