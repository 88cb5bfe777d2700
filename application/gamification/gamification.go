package gamification

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-hero/cmd/config"
	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/model"
	requestrepo "github.com/muhammadheryan/food-hero/repository/request"
	txrepo "github.com/muhammadheryan/food-hero/repository/tx"
	userrepo "github.com/muhammadheryan/food-hero/repository/user"
	"github.com/muhammadheryan/food-hero/utils/errors"
	"github.com/muhammadheryan/food-hero/utils/logger"
	"github.com/muhammadheryan/food-hero/utils/metrics"
	"go.uber.org/zap"
)

type GamificationApp interface {
	RewardDelivery(ctx context.Context, requestID string) (*model.DeliveryReward, error)
	AwardPoints(ctx context.Context, heroID string, points int64) (*model.UserEntity, error)
	CheckAndAwardBadges(ctx context.Context, heroID string) ([]string, error)
	GetLevelInfo(ctx context.Context, heroID string) (*model.LevelInfo, error)
	GetAvailableCoupons(ctx context.Context, heroID string) ([]model.AvailableCoupon, error)
	ClaimCoupon(ctx context.Context, heroID, couponID string) (*model.ClaimedCoupon, error)
	UpdateHeroRating(ctx context.Context, heroID string) (*model.RatingStats, error)
}

type gamificationAppImpl struct {
	txRepo      txrepo.TxRepository
	userRepo    userrepo.UserRepository
	requestRepo requestrepo.RequestRepository
	loc         *time.Location
	now         func() time.Time
}

type Option func(*gamificationAppImpl)

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *gamificationAppImpl) { s.now = now }
}

func NewGamificationApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, requestRepo requestrepo.RequestRepository, opts ...Option) GamificationApp {
	s := &gamificationAppImpl{
		txRepo:      txRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		loc:         config.Location(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RewardDelivery credits the hero of a completed request: bonuses, points, level,
// badges and delivery stats are written in one transaction. A request is rewarded
// at most once; a repeat call returns ErrAlreadyRewarded.
func (s *gamificationAppImpl) RewardDelivery(ctx context.Context, requestID string) (*model.DeliveryReward, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		logger.Error("[RewardDelivery] requestRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if req.Status != constant.RequestStatusCompleted || req.HeroID == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	now := s.now()
	reward := &model.DeliveryReward{}
	hero, err := s.mutateHero(ctx, "RewardDelivery", *req.HeroID, func(tx *sqlx.Tx, hero *model.UserEntity) error {
		marked, err := s.requestRepo.MarkRewardedTx(ctx, tx, req.ID, now.UTC())
		if err != nil {
			logger.Error("[RewardDelivery] requestRepo.MarkRewardedTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if !marked {
			return errors.SetCustomError(constant.ErrAlreadyRewarded)
		}

		history, err := s.completedHistory(ctx, tx, hero.ID)
		if err != nil {
			logger.Error("[RewardDelivery] requestRepo.ListTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}

		reward.Bonuses = DetermineBonuses(hero, req, history, now, s.loc)
		reward.PointsEarned = CalculatePoints(reward.Bonuses)
		addPoints(hero, reward.PointsEarned)
		reward.NewBadges = addBadges(hero, history, s.loc)

		stats := HeroRatingStats(hero.ID, history)
		hero.TotalDeliveries = stats.TotalDeliveries
		hero.AverageRating = stats.AverageRating
		return nil
	})
	if err != nil {
		return nil, err
	}

	reward.TotalPoints = hero.Points
	reward.Level = constant.Levels[hero.Level]
	metrics.RecordPoints(reward.PointsEarned)
	for _, b := range reward.NewBadges {
		metrics.RecordBadge(b)
	}

	logger.Info("[RewardDelivery] hero rewarded",
		zap.String("request_id", requestID),
		zap.String("hero_id", hero.ID),
		zap.Int64("points", reward.PointsEarned),
		zap.Strings("new_badges", reward.NewBadges),
	)
	return reward, nil
}

// AwardPoints adds points to the hero and recomputes the level.
func (s *gamificationAppImpl) AwardPoints(ctx context.Context, heroID string, points int64) (*model.UserEntity, error) {
	if points < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	hero, err := s.mutateHero(ctx, "AwardPoints", heroID, func(_ *sqlx.Tx, hero *model.UserEntity) error {
		addPoints(hero, points)
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RecordPoints(points)
	return hero, nil
}

// CheckAndAwardBadges persists and returns badges newly earned from the full history.
func (s *gamificationAppImpl) CheckAndAwardBadges(ctx context.Context, heroID string) ([]string, error) {
	var newBadges []string
	_, err := s.mutateHero(ctx, "CheckAndAwardBadges", heroID, func(tx *sqlx.Tx, hero *model.UserEntity) error {
		history, err := s.completedHistory(ctx, tx, heroID)
		if err != nil {
			logger.Error("[CheckAndAwardBadges] requestRepo.ListTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		newBadges = addBadges(hero, history, s.loc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, b := range newBadges {
		metrics.RecordBadge(b)
	}
	return newBadges, nil
}

func (s *gamificationAppImpl) GetLevelInfo(ctx context.Context, heroID string) (*model.LevelInfo, error) {
	hero, err := s.getHero(ctx, "GetLevelInfo", heroID)
	if err != nil {
		return nil, err
	}
	info := LevelInfo(hero)
	return &info, nil
}

func (s *gamificationAppImpl) GetAvailableCoupons(ctx context.Context, heroID string) ([]model.AvailableCoupon, error) {
	hero, err := s.getHero(ctx, "GetAvailableCoupons", heroID)
	if err != nil {
		return nil, err
	}

	tiers := AvailableCoupons(hero.Points)
	out := make([]model.AvailableCoupon, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, model.AvailableCoupon{CouponTier: t, Claimed: hero.ClaimedCoupons.Contains(t.ID)})
	}
	return out, nil
}

// ClaimCoupon spends points on a coupon tier. Spending does not touch the level.
func (s *gamificationAppImpl) ClaimCoupon(ctx context.Context, heroID, couponID string) (*model.ClaimedCoupon, error) {
	tier, ok := constant.FindCouponTier(couponID)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	_, err := s.mutateHero(ctx, "ClaimCoupon", heroID, func(_ *sqlx.Tx, hero *model.UserEntity) error {
		if hero.Points < tier.PointsRequired {
			return errors.SetCustomError(constant.ErrInsufficientPoints)
		}
		if hero.ClaimedCoupons.Contains(tier.ID) {
			return errors.SetCustomError(constant.ErrAlreadyClaimed)
		}
		hero.Points -= tier.PointsRequired
		hero.ClaimedCoupons = append(hero.ClaimedCoupons, tier.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCoupon(tier.ID)
	return NewCoupon(tier, heroID, s.now()), nil
}

// UpdateHeroRating recomputes average rating and total deliveries.
func (s *gamificationAppImpl) UpdateHeroRating(ctx context.Context, heroID string) (*model.RatingStats, error) {
	var stats model.RatingStats
	_, err := s.mutateHero(ctx, "UpdateHeroRating", heroID, func(tx *sqlx.Tx, hero *model.UserEntity) error {
		history, err := s.completedHistory(ctx, tx, heroID)
		if err != nil {
			logger.Error("[UpdateHeroRating] requestRepo.ListTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		stats = HeroRatingStats(heroID, history)
		hero.AverageRating = stats.AverageRating
		hero.TotalDeliveries = stats.TotalDeliveries
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// completedHistory reads inside tx, after the hero row is locked, so concurrent
// rewards for the same hero see each other's completions in order.
func (s *gamificationAppImpl) completedHistory(ctx context.Context, tx *sqlx.Tx, heroID string) ([]model.FoodRequest, error) {
	return s.requestRepo.ListTx(ctx, tx, &model.RequestFilter{HeroID: heroID, Status: constant.RequestStatusCompleted})
}

func (s *gamificationAppImpl) getHero(ctx context.Context, op, heroID string) (*model.UserEntity, error) {
	hero, err := s.userRepo.Get(ctx, &model.UserFilter{ID: heroID})
	if err != nil {
		logger.Error("["+op+"] userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hero == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !hero.IsHero() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return hero, nil
}

// mutateHero locks the hero row, applies mutate and writes the reward fields back.
// A mutate error aborts the transaction and is returned unchanged.
func (s *gamificationAppImpl) mutateHero(ctx context.Context, op, heroID string, mutate func(tx *sqlx.Tx, hero *model.UserEntity) error) (*model.UserEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	hero, err := s.userRepo.GetForUpdateTx(ctx, tx, heroID)
	if err != nil {
		logger.Error("["+op+"] userRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hero == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !hero.IsHero() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	if err := mutate(tx, hero); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRewardsTx(ctx, tx, hero); err != nil {
		logger.Error("["+op+"] userRepo.UpdateRewardsTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return hero, nil
}

func addPoints(hero *model.UserEntity, points int64) {
	hero.Points += points
	hero.Level = LevelIndex(hero.Points)
}

func addBadges(hero *model.UserEntity, history []model.FoodRequest, loc *time.Location) []string {
	newBadges := EvaluateBadges(hero, history, loc)
	hero.Badges = append(hero.Badges, newBadges...)
	return newBadges
}
