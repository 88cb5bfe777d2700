package model

import (
	"time"

	"github.com/muhammadheryan/food-hero/constant"
)

// PointBonus flags the bonus conditions met by a single delivery.
type PointBonus struct {
	FirstOfDay     bool `json:"first_of_day"`
	OnTime         bool `json:"on_time"`
	FiveStarRating bool `json:"five_star_rating"`
	WeeklyStreak   bool `json:"weekly_streak"`
}

type LevelInfo struct {
	Current      constant.Level  `json:"current"`
	Next         *constant.Level `json:"next"`
	PointsToNext int64           `json:"points_to_next"`
	Progress     int             `json:"progress"`
}

type ClaimedCoupon struct {
	constant.CouponTier
	Code      string    `json:"code"`
	QRCode    string    `json:"qr_code"`
	ClaimedAt time.Time `json:"claimed_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AvailableCoupon is a tier the hero can afford, with its claim state.
type AvailableCoupon struct {
	constant.CouponTier
	Claimed bool `json:"claimed"`
}

// DeliveryReward summarises what a hero earned for one completed delivery.
type DeliveryReward struct {
	Bonuses      PointBonus     `json:"bonuses"`
	PointsEarned int64          `json:"points_earned"`
	TotalPoints  int64          `json:"total_points"`
	Level        constant.Level `json:"level"`
	NewBadges    []string       `json:"new_badges"`
}

// RatingStats holds the derived rating fields of a hero.
type RatingStats struct {
	AverageRating   float64 `json:"average_rating"`
	TotalDeliveries int     `json:"total_deliveries"`
}
