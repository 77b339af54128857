package service

import (
	"context"
	"sync"
	"testing"

	"brik.community/portal/internal/entity"
	leaderboardRepo "brik.community/portal/internal/modules/leaderboard/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaderboardRepo struct {
	mu        sync.Mutex
	rows      []leaderboardRepo.MemberRow
	snapshots map[uuid.UUID]int
	saved     chan []entity.RankSnapshot
}

func newFakeLeaderboardRepo(rows []leaderboardRepo.MemberRow, snapshots map[uuid.UUID]int) *fakeLeaderboardRepo {
	return &fakeLeaderboardRepo{
		rows:      rows,
		snapshots: snapshots,
		saved:     make(chan []entity.RankSnapshot, 1),
	}
}

func (f *fakeLeaderboardRepo) ListMembers(ctx context.Context) ([]leaderboardRepo.MemberRow, error) {
	return f.rows, nil
}

func (f *fakeLeaderboardRepo) AddPoints(ctx context.Context, userID uuid.UUID, points int) error {
	return nil
}

func (f *fakeLeaderboardRepo) IncrementBadges(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (f *fakeLeaderboardRepo) GetStats(ctx context.Context, userID uuid.UUID) (*entity.MemberStats, error) {
	return &entity.MemberStats{UserID: userID}, nil
}

func (f *fakeLeaderboardRepo) GetSnapshots(ctx context.Context) (map[uuid.UUID]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshots, nil
}

func (f *fakeLeaderboardRepo) SaveSnapshots(ctx context.Context, snapshots []entity.RankSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case f.saved <- snapshots:
	default:
	}
	return nil
}

func memberRow(username string, xp int) leaderboardRepo.MemberRow {
	return leaderboardRepo.MemberRow{
		UserID:   uuid.New(),
		Username: username,
		FullName: username,
		XP:       xp,
	}
}

func TestGetAdminLeaderboardMovement(t *testing.T) {
	alice := memberRow("alice", 300)
	bob := memberRow("bob", 200)
	cara := memberRow("cara", 100)

	// Last published ranking had bob first and alice second; cara is new.
	previous := map[uuid.UUID]int{
		alice.UserID: 2,
		bob.UserID:   1,
	}
	repo := newFakeLeaderboardRepo([]leaderboardRepo.MemberRow{alice, bob, cara}, previous)
	svc := NewLeaderboardService(repo, nil)

	entries, err := svc.GetAdminLeaderboard(context.Background(), Filter{}, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "up", entries[0].Movement)
	assert.Equal(t, 2, entries[0].PreviousRank)
	assert.Equal(t, 1, entries[0].Delta)

	assert.Equal(t, "down", entries[1].Movement)
	assert.Equal(t, 1, entries[1].PreviousRank)
	assert.Equal(t, 1, entries[1].Delta)

	assert.Equal(t, "new", entries[2].Movement)
	assert.Equal(t, 3, entries[2].PreviousRank)
	assert.Equal(t, 0, entries[2].Delta)

	// The fresh ranking is republished as the next snapshot.
	saved := <-repo.saved
	require.Len(t, saved, 3)
	assert.Equal(t, alice.UserID, saved[0].UserID)
	assert.Equal(t, 1, saved[0].Rank)
	assert.Equal(t, 300, saved[0].XP)
}

func TestGetAdminLeaderboardMovementIgnoresFilter(t *testing.T) {
	web := "Web"
	data := "Data"

	alice := memberRow("alice", 300)
	alice.Track = &web
	bob := memberRow("bob", 200)
	bob.Track = &data
	cara := memberRow("cara", 100)
	cara.Track = &web

	// cara was second overall last time; filtering to Web must not make her
	// look like she climbed just because bob dropped out of the view.
	previous := map[uuid.UUID]int{
		alice.UserID: 1,
		bob.UserID:   3,
		cara.UserID:  2,
	}
	repo := newFakeLeaderboardRepo([]leaderboardRepo.MemberRow{alice, bob, cara}, previous)
	svc := NewLeaderboardService(repo, nil)

	entries, err := svc.GetAdminLeaderboard(context.Background(), Filter{Track: "Web"}, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "alice", entries[0].Name)
	assert.Equal(t, "same", entries[0].Movement)

	assert.Equal(t, "cara", entries[1].Name)
	assert.Equal(t, "down", entries[1].Movement)
	assert.Equal(t, 2, entries[1].PreviousRank)
	assert.Equal(t, 1, entries[1].Delta)
}

func TestGetLeaderboardProjectsRows(t *testing.T) {
	alice := memberRow("alice", 100)
	bob := memberRow("bob", 300)

	repo := newFakeLeaderboardRepo([]leaderboardRepo.MemberRow{alice, bob}, nil)
	svc := NewLeaderboardService(repo, nil)

	entries, err := svc.GetLeaderboard(context.Background(), Filter{}, alice.UserID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "bob", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "alice", entries[1].Name)
	assert.True(t, entries[1].IsCurrentUser)
}
