package constant

import (
	"math"
	"time"
)

const (
	PointsDeliveryBase      = 100
	PointsFirstOfDayBonus   = 25
	PointsOnTimeBonus       = 50
	PointsFiveStarBonus     = 25
	PointsWeeklyStreakBonus = 200
)

// StreakDays is the number of consecutive calendar days, ending today, needed for the streak bonus.
const StreakDays = 7

// MorningHourCutoff marks completions before this local hour as morning deliveries.
const MorningHourCutoff = 10

// CouponValidity is how long a claimed coupon stays redeemable.
const CouponValidity = 90 * 24 * time.Hour

type Level struct {
	Name      string `json:"name"`
	MinPoints int64  `json:"min_points"`
	MaxPoints int64  `json:"max_points"`
}

// Levels is ordered by MinPoints and covers [0, MaxInt64].
var Levels = []Level{
	{Name: "Beginner", MinPoints: 0, MaxPoints: 499},
	{Name: "Helper", MinPoints: 500, MaxPoints: 999},
	{Name: "Hero", MinPoints: 1000, MaxPoints: 2499},
	{Name: "Super Hero", MinPoints: 2500, MaxPoints: 4999},
	{Name: "Champion", MinPoints: 5000, MaxPoints: math.MaxInt64},
}

type BadgeCriteria string

const (
	BadgeCriteriaDeliveries             BadgeCriteria = "deliveries"
	BadgeCriteriaMorningDeliveries      BadgeCriteria = "morning_deliveries"
	BadgeCriteriaWeekendDeliveries      BadgeCriteria = "weekend_deliveries"
	BadgeCriteriaFamilyDeliveries       BadgeCriteria = "family_deliveries"
	BadgeCriteriaNeighborhoodDeliveries BadgeCriteria = "neighborhood_deliveries"
)

type Badge struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Criteria    BadgeCriteria `json:"criteria"`
	Requirement int           `json:"requirement"`
}

var Badges = []Badge{
	{ID: "first_delivery", Name: "First Delivery", Description: "Complete your first delivery", Icon: "🎉", Criteria: BadgeCriteriaDeliveries, Requirement: 1},
	{ID: "reliable", Name: "Reliable", Description: "Complete 5 deliveries", Icon: "⭐", Criteria: BadgeCriteriaDeliveries, Requirement: 5},
	{ID: "dedicated", Name: "Dedicated", Description: "Complete 10 deliveries", Icon: "💪", Criteria: BadgeCriteriaDeliveries, Requirement: 10},
	{ID: "champion", Name: "Community Champion", Description: "Complete 25 deliveries", Icon: "🏆", Criteria: BadgeCriteriaDeliveries, Requirement: 25},
	{ID: "early_bird", Name: "Early Bird", Description: "Complete 3 morning deliveries (before 10am)", Icon: "🌅", Criteria: BadgeCriteriaMorningDeliveries, Requirement: 3},
	{ID: "weekend_warrior", Name: "Weekend Warrior", Description: "Complete 5 weekend deliveries", Icon: "🎯", Criteria: BadgeCriteriaWeekendDeliveries, Requirement: 5},
	{ID: "full_cart", Name: "Full Cart", Description: "Deliver family-size orders 5 times", Icon: "🛒", Criteria: BadgeCriteriaFamilyDeliveries, Requirement: 5},
	{ID: "neighborhood_hero", Name: "Neighborhood Hero", Description: "Complete 10 deliveries in the same area", Icon: "🏘️", Criteria: BadgeCriteriaNeighborhoodDeliveries, Requirement: 10},
}

type CouponTier struct {
	ID             string `json:"id"`
	Value          int    `json:"value"`
	Business       string `json:"business"`
	Description    string `json:"description"`
	PointsRequired int64  `json:"points_required"`
}

var CouponTiers = []CouponTier{
	{ID: "coffee_5", Value: 5, Business: "Local Coffee Shop", Description: "$5 off your next purchase", PointsRequired: 500},
	{ID: "grocery_10", Value: 10, Business: "Community Grocery", Description: "$10 off groceries", PointsRequired: 1000},
	{ID: "restaurant_20", Value: 20, Business: "Halifax Restaurant", Description: "$20 dining credit", PointsRequired: 2500},
	{ID: "giftcard_50", Value: 50, Business: "Local Business Alliance", Description: "$50 gift card", PointsRequired: 5000},
}

// FindCouponTier returns the catalog entry for id.
func FindCouponTier(id string) (CouponTier, bool) {
	for _, c := range CouponTiers {
		if c.ID == id {
			return c, true
		}
	}
	return CouponTier{}, false
}
