package gamification

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/model"
)

// CalculatePoints returns the base delivery points plus every flagged bonus.
func CalculatePoints(bonuses model.PointBonus) int64 {
	points := int64(constant.PointsDeliveryBase)
	if bonuses.FirstOfDay {
		points += constant.PointsFirstOfDayBonus
	}
	if bonuses.OnTime {
		points += constant.PointsOnTimeBonus
	}
	if bonuses.FiveStarRating {
		points += constant.PointsFiveStarBonus
	}
	if bonuses.WeeklyStreak {
		points += constant.PointsWeeklyStreakBonus
	}
	return points
}

// DetermineBonuses evaluates the bonus flags of a completed request against the
// hero's completed history. history may contain other heroes' requests and the
// request itself; both are handled. FirstOfDay only looks at completions earlier the
// same day, so a late reward of an earlier delivery still gets it.
func DetermineBonuses(hero *model.UserEntity, request *model.FoodRequest, history []model.FoodRequest, now time.Time, loc *time.Location) model.PointBonus {
	completions := completedBy(hero.ID, history)

	completedAt := now
	if request.CompletedAt != nil {
		completedAt = *request.CompletedAt
	}

	var bonuses model.PointBonus

	bonuses.FirstOfDay = true
	for _, r := range completions {
		if r.ID != request.ID && sameDay(*r.CompletedAt, completedAt, loc) && completedBefore(&r, request.ID, completedAt) {
			bonuses.FirstOfDay = false
			break
		}
	}

	if request.CompletedAt != nil && !request.PreferredTimeEnd.IsZero() {
		bonuses.OnTime = !request.CompletedAt.After(request.PreferredTimeEnd)
	}

	bonuses.FiveStarRating = request.Rating != nil && request.Rating.Stars == 5
	bonuses.WeeklyStreak = hasDailyStreak(completions, now, loc)

	return bonuses
}

// completedBefore orders completions by time, then by id for equal timestamps.
func completedBefore(r *model.FoodRequest, id string, at time.Time) bool {
	if r.CompletedAt.Equal(at) {
		return r.ID < id
	}
	return r.CompletedAt.Before(at)
}

// hasDailyStreak reports whether every one of the StreakDays calendar days ending
// at now has at least one completion.
func hasDailyStreak(completions []model.FoodRequest, now time.Time, loc *time.Location) bool {
	for i := 0; i < constant.StreakDays; i++ {
		day := now.In(loc).AddDate(0, 0, -i)
		found := false
		for _, r := range completions {
			if sameDay(*r.CompletedAt, day, loc) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// CalculateLevel returns the highest tier whose minimum is covered by points.
func CalculateLevel(points int64) constant.Level {
	return constant.Levels[LevelIndex(points)]
}

// LevelIndex is the position of CalculateLevel(points) in constant.Levels.
func LevelIndex(points int64) int {
	idx := 0
	for i, lvl := range constant.Levels {
		if points >= lvl.MinPoints {
			idx = i
		}
	}
	return idx
}

// LevelInfo describes the hero's stored level and progress toward the next one.
func LevelInfo(hero *model.UserEntity) model.LevelInfo {
	idx := hero.Level
	if idx < 0 {
		idx = 0
	}
	if idx >= len(constant.Levels) {
		idx = len(constant.Levels) - 1
	}
	current := constant.Levels[idx]

	info := model.LevelInfo{Current: current, Progress: 100}
	if idx+1 >= len(constant.Levels) {
		return info
	}

	next := constant.Levels[idx+1]
	info.Next = &next
	info.PointsToNext = next.MinPoints - hero.Points
	if info.PointsToNext < 0 {
		info.PointsToNext = 0
	}

	span := float64(next.MinPoints - current.MinPoints)
	progress := int(math.Round(float64(hero.Points-current.MinPoints) / span * 100))
	info.Progress = clamp(progress, 0, 100)
	return info
}

// EvaluateBadges returns catalog badges the hero now qualifies for but does not hold yet.
func EvaluateBadges(hero *model.UserEntity, history []model.FoodRequest, loc *time.Location) []string {
	completions := completedBy(hero.ID, history)
	neighborhood := strings.ToLower(strings.TrimSpace(hero.Neighborhood))

	counts := map[constant.BadgeCriteria]int{
		constant.BadgeCriteriaDeliveries: len(completions),
	}
	for _, r := range completions {
		at := r.CompletedAt.In(loc)
		if at.Hour() < constant.MorningHourCutoff {
			counts[constant.BadgeCriteriaMorningDeliveries]++
		}
		if wd := at.Weekday(); wd == time.Saturday || wd == time.Sunday {
			counts[constant.BadgeCriteriaWeekendDeliveries]++
		}
		if r.Quantity.IsFamilySize() {
			counts[constant.BadgeCriteriaFamilyDeliveries]++
		}
		if neighborhood != "" && strings.Contains(strings.ToLower(r.DeliveryAddress), neighborhood) {
			counts[constant.BadgeCriteriaNeighborhoodDeliveries]++
		}
	}

	newBadges := make([]string, 0)
	for _, b := range constant.Badges {
		if counts[b.Criteria] >= b.Requirement && !hero.Badges.Contains(b.ID) {
			newBadges = append(newBadges, b.ID)
		}
	}
	return newBadges
}

// AvailableCoupons lists the tiers affordable with points, claimed or not.
func AvailableCoupons(points int64) []constant.CouponTier {
	out := make([]constant.CouponTier, 0, len(constant.CouponTiers))
	for _, c := range constant.CouponTiers {
		if points >= c.PointsRequired {
			out = append(out, c)
		}
	}
	return out
}

// HeroRatingStats averages stars over the hero's rated completions, rounded to one
// decimal. TotalDeliveries counts the same rated set.
func HeroRatingStats(heroID string, history []model.FoodRequest) model.RatingStats {
	var stats model.RatingStats
	var total int
	for _, r := range completedBy(heroID, history) {
		if r.Rating != nil {
			total += r.Rating.Stars
			stats.TotalDeliveries++
		}
	}
	if stats.TotalDeliveries > 0 {
		stats.AverageRating = math.Round(float64(total)/float64(stats.TotalDeliveries)*10) / 10
	}
	return stats
}

// NewCoupon builds the claimed instance of tier for heroID.
func NewCoupon(tier constant.CouponTier, heroID string, now time.Time) *model.ClaimedCoupon {
	heroPart := heroID
	if len(heroPart) > 8 {
		heroPart = heroPart[:8]
	}
	code := fmt.Sprintf("CFC-%s-%s-%s", strings.ToUpper(tier.ID), heroPart, strings.ToUpper(uuid.NewString()[:8]))

	return &model.ClaimedCoupon{
		CouponTier: tier,
		Code:       code,
		QRCode:     qrCode(code),
		ClaimedAt:  now,
		ExpiresAt:  now.Add(constant.CouponValidity),
	}
}

func qrCode(data string) string {
	return `data:image/svg+xml,<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text x="50" y="50" text-anchor="middle">` +
		url.PathEscape(data) + `</text></svg>`
}

func completedBy(heroID string, history []model.FoodRequest) []model.FoodRequest {
	out := make([]model.FoodRequest, 0, len(history))
	for _, r := range history {
		if r.Status == constant.RequestStatusCompleted && r.CompletedAt != nil && r.DeliveredBy(heroID) {
			out = append(out, r)
		}
	}
	return out
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
