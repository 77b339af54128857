package repository

import (
	"context"

	"brik.community/portal/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRow struct {
	UserID    uuid.UUID
	Username  string
	FullName  string
	Track     *string
	Cohort    *string
	AvatarURL *string
	XP        int
	Badges    int
}

type LeaderboardRepository interface {
	ListMembers(ctx context.Context) ([]MemberRow, error)
	AddPoints(ctx context.Context, userID uuid.UUID, points int) error
	IncrementBadges(ctx context.Context, userID uuid.UUID) error
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.MemberStats, error)
	GetSnapshots(ctx context.Context) (map[uuid.UUID]int, error)
	SaveSnapshots(ctx context.Context, snapshots []entity.RankSnapshot) error
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// ListMembers returns one row per member, XP descending. Members without a
// stats row yet show up with zero XP.
func (r *leaderboardRepository) ListMembers(ctx context.Context) ([]MemberRow, error) {
	var rows []MemberRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select(`users.id AS user_id, users.username, users.avatar_url,
			COALESCE(profiles.full_name, '') AS full_name, profiles.track, profiles.cohort,
			COALESCE(member_stats.xp, 0) AS xp, COALESCE(member_stats.badges, 0) AS badges`).
		Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
		Joins("LEFT JOIN member_stats ON member_stats.user_id = users.id").
		Order("xp DESC, users.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *leaderboardRepository) AddPoints(ctx context.Context, userID uuid.UUID, points int) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"xp":              gorm.Expr("member_stats.xp + ?", points),
			"last_updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&entity.MemberStats{
		UserID: userID,
		XP:     points,
	}).Error
}

func (r *leaderboardRepository) IncrementBadges(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"badges":          gorm.Expr("member_stats.badges + 1"),
			"last_updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&entity.MemberStats{
		UserID: userID,
		Badges: 1,
	}).Error
}

func (r *leaderboardRepository) GetStats(ctx context.Context, userID uuid.UUID) (*entity.MemberStats, error) {
	var stats entity.MemberStats
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &entity.MemberStats{UserID: userID}, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (r *leaderboardRepository) GetSnapshots(ctx context.Context) (map[uuid.UUID]int, error) {
	var snapshots []entity.RankSnapshot
	if err := r.db.WithContext(ctx).Find(&snapshots).Error; err != nil {
		return nil, err
	}

	ranks := make(map[uuid.UUID]int, len(snapshots))
	for _, s := range snapshots {
		ranks[s.UserID] = s.Rank
	}
	return ranks, nil
}

func (r *leaderboardRepository) SaveSnapshots(ctx context.Context, snapshots []entity.RankSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rank", "xp", "captured_at"}),
	}).Create(&snapshots).Error
}
