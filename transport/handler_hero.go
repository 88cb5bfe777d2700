package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/utils/errors"
)

// GetLevel handler
// @Summary Hero level progress
// @Tags Heroes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.LevelInfo
// @Router /heroes/me/level [get]
func (s *RestHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.GamificationApp.GetLevelInfo(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCoupons handler
// @Summary Coupons the hero can afford
// @Tags Heroes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AvailableCoupon
// @Router /heroes/me/coupons [get]
func (s *RestHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.GamificationApp.GetAvailableCoupons(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ClaimCoupon handler
// @Summary Claim coupon
// @Description Spend points on a coupon; each tier can be claimed once
// @Tags Heroes
// @Produce json
// @Security BearerAuth
// @Param couponID path string true "Coupon tier ID"
// @Success 200 {object} model.ClaimedCoupon
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /heroes/me/coupons/{couponID}/claim [post]
func (s *RestHandler) ClaimCoupon(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.GamificationApp.ClaimCoupon(r.Context(), userID, mux.Vars(r)["couponID"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetLeaderboard handler
// @Summary Hero leaderboard
// @Tags Heroes
// @Produce json
// @Security BearerAuth
// @Param sort_by query string false "points (default), deliveries or rating"
// @Param limit query int false "top N, 0 for all"
// @Success 200 {array} model.LeaderboardEntry
// @Router /leaderboard [get]
func (s *RestHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		limit = n
	}

	res, err := s.LeaderboardApp.GetLeaderboard(r.Context(), q.Get("sort_by"), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
