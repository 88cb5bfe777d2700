package leaderboard

import (
	"context"
	"sort"

	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/model"
	userrepo "github.com/muhammadheryan/food-hero/repository/user"
	"github.com/muhammadheryan/food-hero/utils/errors"
	"github.com/muhammadheryan/food-hero/utils/logger"
	"go.uber.org/zap"
)

var sortAliases = map[string]model.LeaderboardSort{
	"":                model.LeaderboardSortPoints,
	"points":          model.LeaderboardSortPoints,
	"deliveries":      model.LeaderboardSortDeliveries,
	"totalDeliveries": model.LeaderboardSortDeliveries,
	"rating":          model.LeaderboardSortRating,
	"averageRating":   model.LeaderboardSortRating,
}

// ParseSort resolves a sort key; an empty key means points.
func ParseSort(s string) (model.LeaderboardSort, bool) {
	key, ok := sortAliases[s]
	return key, ok
}

// Rank keeps heroes only, orders them by sortBy descending and numbers them by
// position. Equal scores keep their input order and still get distinct ranks.
func Rank(users []model.UserEntity, sortBy model.LeaderboardSort) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		if !u.IsHero() {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			UserID:          u.ID,
			Name:            u.Name,
			Points:          u.Points,
			TotalDeliveries: u.TotalDeliveries,
			AverageRating:   u.AverageRating,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		switch sortBy {
		case model.LeaderboardSortDeliveries:
			return entries[i].TotalDeliveries > entries[j].TotalDeliveries
		case model.LeaderboardSortRating:
			return entries[i].AverageRating > entries[j].AverageRating
		default:
			return entries[i].Points > entries[j].Points
		}
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Top returns at most n entries; n <= 0 returns all of them.
func Top(entries []model.LeaderboardEntry, n int) []model.LeaderboardEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}

type LeaderboardApp interface {
	GetLeaderboard(ctx context.Context, sortBy string, limit int) ([]model.LeaderboardEntry, error)
}

type LeaderboardAppImpl struct {
	userRepo userrepo.UserRepository
}

func NewLeaderboardApp(userRepo userrepo.UserRepository) LeaderboardApp {
	return &LeaderboardAppImpl{userRepo: userRepo}
}

func (s *LeaderboardAppImpl) GetLeaderboard(ctx context.Context, sortBy string, limit int) ([]model.LeaderboardEntry, error) {
	key, ok := ParseSort(sortBy)
	if !ok || limit < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	heroes, err := s.userRepo.List(ctx, &model.UserFilter{Role: constant.UserRoleHero})
	if err != nil {
		logger.Error("[GetLeaderboard] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return Top(Rank(heroes, key), limit), nil
}
