package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/food-hero/cmd/config"
	"github.com/muhammadheryan/food-hero/constant"
	gamificationmocks "github.com/muhammadheryan/food-hero/mocks/application/gamification"
	leaderboardmocks "github.com/muhammadheryan/food-hero/mocks/application/leaderboard"
	requestmocks "github.com/muhammadheryan/food-hero/mocks/application/request"
	usermocks "github.com/muhammadheryan/food-hero/mocks/application/user"
	"github.com/muhammadheryan/food-hero/model"
	"github.com/muhammadheryan/food-hero/transport"
	cerr "github.com/muhammadheryan/food-hero/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validToken  = "valid-token"
	internalKey = "internal-key"
	userID      = "user-1"
)

type apps struct {
	ctx          context.Context
	user         *usermocks.UserApp
	request      *requestmocks.RequestApp
	gamification *gamificationmocks.GamificationApp
	leaderboard  *leaderboardmocks.LeaderboardApp
}

func newApps(t *testing.T) apps {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return apps{
		ctx:          ctx,
		user:         usermocks.NewUserApp(t),
		request:      requestmocks.NewRequestApp(t),
		gamification: gamificationmocks.NewGamificationApp(t),
		leaderboard:  leaderboardmocks.NewLeaderboardApp(t),
	}
}

func newHandler(a apps, cfg *config.Config) http.Handler {
	if cfg == nil {
		cfg = &config.Config{Auth: config.AuthConfig{InternalAPIKey: internalKey}}
	}
	return transport.NewTransport(a.ctx, cfg, &transport.RestHandler{
		UserApp:         a.user,
		RequestApp:      a.request,
		GamificationApp: a.gamification,
		LeaderboardApp:  a.leaderboard,
	})
}

func authed(a apps) {
	a.user.On("ValidateToken", mock.Anything, validToken).Return(userID, nil)
}

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) transport.Response {
	t.Helper()
	var res transport.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		mockCall func(a apps)
		want     int
	}{
		{name: "error: missing token", want: http.StatusUnauthorized},
		{
			name:  "error: rejected token",
			token: "stale",
			mockCall: func(a apps) {
				a.user.On("ValidateToken", mock.Anything, "stale").Return("", errors.New("invalid or expired session")).Once()
			},
			want: http.StatusUnauthorized,
		},
		{
			name:  "success: user id reaches the handler",
			token: validToken,
			mockCall: func(a apps) {
				authed(a)
				a.user.On("GetUser", mock.Anything, userID).Return(&model.UserEntity{ID: userID, PasswordHash: "hash"}, nil).Once()
			},
			want: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec := do(newHandler(a, nil), http.MethodGet, "/me", tt.token, "")
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			assert.NotContains(t, rec.Body.String(), "hash")
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("error: validation", func(t *testing.T) {
		rec := do(newHandler(newApps(t), nil), http.MethodPost, "/register", "", `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], decode(t, rec).Code)
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		a := newApps(t)
		a.user.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Return(nil, cerr.SetCustomError(constant.ErrDuplicateEmail)).Once()

		body := `{"name":"Sam","email":"sam@example.com","phone":"1","password":"secret1","neighborhood":"North End","role":"hero","transport_method":"bike"}`
		rec := do(newHandler(a, nil), http.MethodPost, "/register", "", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrDuplicateEmail], decode(t, rec).Code)
	})
}

func TestAcceptRequest(t *testing.T) {
	t.Run("error: capacity", func(t *testing.T) {
		a := newApps(t)
		authed(a)
		a.request.On("Accept", mock.Anything, "req-1", userID).Return(nil, cerr.SetCustomError(constant.ErrCapacityExceeded)).Once()

		rec := do(newHandler(a, nil), http.MethodPost, "/requests/req-1/accept", validToken, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrCapacityExceeded], decode(t, rec).Code)
	})

	t.Run("success", func(t *testing.T) {
		a := newApps(t)
		authed(a)
		a.request.On("Accept", mock.Anything, "req-1", userID).
			Return(&model.FoodRequest{ID: "req-1", Status: constant.RequestStatusAccepted}, nil).Once()

		rec := do(newHandler(a, nil), http.MethodPost, "/requests/req-1/accept", validToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequestRoutes(t *testing.T) {
	items := []model.FoodRequest{{ID: "req-1"}}

	tests := []struct {
		name     string
		path     string
		mockCall func(a apps)
	}{
		{
			name: "pending is not captured by {id}",
			path: "/requests/pending",
			mockCall: func(a apps) {
				a.request.On("ListPending", mock.Anything).Return(items, nil).Once()
			},
		},
		{
			name: "status filter",
			path: "/requests?status=completed",
			mockCall: func(a apps) {
				a.request.On("ListByStatus", mock.Anything, constant.RequestStatusCompleted).Return(items, nil).Once()
			},
		},
		{
			name: "all",
			path: "/requests",
			mockCall: func(a apps) {
				a.request.On("List", mock.Anything).Return(items, nil).Once()
			},
		},
		{
			name: "mine as hero",
			path: "/requests/mine?as=hero",
			mockCall: func(a apps) {
				a.request.On("ListByUser", mock.Anything, userID, false).Return(items, nil).Once()
			},
		},
		{
			name: "mine as requester",
			path: "/requests/mine",
			mockCall: func(a apps) {
				a.request.On("ListByUser", mock.Anything, userID, true).Return(items, nil).Once()
			},
		},
		{
			name: "active",
			path: "/requests/active",
			mockCall: func(a apps) {
				a.request.On("ListActiveForHero", mock.Anything, userID).Return(items, nil).Once()
			},
		},
		{
			name: "by id",
			path: "/requests/req-1",
			mockCall: func(a apps) {
				a.request.On("Get", mock.Anything, "req-1").Return(&items[0], nil).Once()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			authed(a)
			tt.mockCall(a)

			rec := do(newHandler(a, nil), http.MethodGet, tt.path, validToken, "")
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCompleteRequest(t *testing.T) {
	heroID := userID
	completed := &model.FoodRequest{ID: "req-1", HeroID: &heroID, Status: constant.RequestStatusCompleted}

	t.Run("success: reward attached", func(t *testing.T) {
		a := newApps(t)
		authed(a)
		a.request.On("Complete", mock.Anything, "req-1", userID, (*model.RatingRequest)(nil)).Return(completed, nil).Once()
		a.gamification.On("RewardDelivery", mock.Anything, "req-1").Return(&model.DeliveryReward{PointsEarned: 200}, nil).Once()

		rec := do(newHandler(a, nil), http.MethodPost, "/requests/req-1/complete", validToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"points_earned":200`)
	})

	t.Run("success: rating in hero body is not forwarded", func(t *testing.T) {
		a := newApps(t)
		authed(a)
		a.request.On("Complete", mock.Anything, "req-1", userID, (*model.RatingRequest)(nil)).Return(completed, nil).Once()
		a.gamification.On("RewardDelivery", mock.Anything, "req-1").Return(&model.DeliveryReward{PointsEarned: 175}, nil).Once()

		body := `{"rating":{"stars":5,"timeliness":"on_time","food_quality":"good"}}`
		rec := do(newHandler(a, nil), http.MethodPost, "/requests/req-1/complete", validToken, body)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"points_earned":175`)
	})

	t.Run("success: failed reward", func(t *testing.T) {
		a := newApps(t)
		authed(a)
		a.request.On("Complete", mock.Anything, "req-1", userID, (*model.RatingRequest)(nil)).Return(completed, nil).Once()
		a.gamification.On("RewardDelivery", mock.Anything, "req-1").Return(nil, cerr.SetCustomError(constant.ErrInternal)).Once()

		rec := do(newHandler(a, nil), http.MethodPost, "/requests/req-1/complete", validToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"reward"`)
	})
}

func TestRateRequest(t *testing.T) {
	a := newApps(t)
	authed(a)
	heroID := "hero-1"
	a.request.On("Rate", mock.Anything, "req-1", userID, mock.AnythingOfType("*model.RatingRequest")).
		Return(&model.FoodRequest{ID: "req-1", HeroID: &heroID}, nil).Once()
	a.gamification.On("UpdateHeroRating", mock.Anything, heroID).Return(&model.RatingStats{AverageRating: 4}, nil).Once()

	rec := do(newHandler(a, nil), http.MethodPost, "/requests/req-1/rate", validToken, `{"stars":4,"timeliness":"late","food_quality":"good"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelRequest_ReasonRequired(t *testing.T) {
	a := newApps(t)
	authed(a)

	h := newHandler(a, nil)
	for _, body := range []string{`{}`, `{"reason":"   "}`} {
		rec := do(h, http.MethodPost, "/requests/req-1/cancel", validToken, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHeroRoutes(t *testing.T) {
	t.Run("claim coupon", func(t *testing.T) {
		a := newApps(t)
		authed(a)
		a.gamification.On("ClaimCoupon", mock.Anything, userID, "coffee_5").
			Return(nil, cerr.SetCustomError(constant.ErrAlreadyClaimed)).Once()

		rec := do(newHandler(a, nil), http.MethodPost, "/heroes/me/coupons/coffee_5/claim", validToken, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("leaderboard", func(t *testing.T) {
		a := newApps(t)
		authed(a)
		a.leaderboard.On("GetLeaderboard", mock.Anything, "deliveries", 5).
			Return([]model.LeaderboardEntry{{UserID: "h1", Rank: 1}}, nil).Once()

		rec := do(newHandler(a, nil), http.MethodGet, "/leaderboard?sort_by=deliveries&limit=5", validToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("leaderboard bad limit", func(t *testing.T) {
		a := newApps(t)
		authed(a)

		rec := do(newHandler(a, nil), http.MethodGet, "/leaderboard?limit=ten", validToken, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInternalRoutes(t *testing.T) {
	t.Run("error: wrong key", func(t *testing.T) {
		rec := do(newHandler(newApps(t), nil), http.MethodPost, "/internal/v1/requests/req-1/expire", "nope", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("success: expire", func(t *testing.T) {
		a := newApps(t)
		a.request.On("Expire", mock.Anything, "req-1").Return(nil).Once()

		rec := do(newHandler(a, nil), http.MethodPost, "/internal/v1/requests/req-1/expire", internalKey, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("success: reward retry", func(t *testing.T) {
		a := newApps(t)
		a.gamification.On("RewardDelivery", mock.Anything, "req-1").
			Return(&model.DeliveryReward{PointsEarned: 100, TotalPoints: 100}, nil).Once()

		rec := do(newHandler(a, nil), http.MethodPost, "/internal/v1/requests/req-1/reward", internalKey, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("error: reward already credited", func(t *testing.T) {
		a := newApps(t)
		a.gamification.On("RewardDelivery", mock.Anything, "req-1").
			Return(nil, cerr.SetCustomError(constant.ErrAlreadyRewarded)).Once()

		rec := do(newHandler(a, nil), http.MethodPost, "/internal/v1/requests/req-1/reward", internalKey, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrAlreadyRewarded], decode(t, rec).Code)
	})

	t.Run("success: delete user", func(t *testing.T) {
		a := newApps(t)
		a.user.On("DeleteUser", mock.Anything, "u-9").Return(nil).Once()

		rec := do(newHandler(a, nil), http.MethodDelete, "/internal/v1/users/u-9", internalKey, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("success: export", func(t *testing.T) {
		a := newApps(t)
		a.user.On("Export", mock.Anything).Return(&model.ExportData{}, nil).Once()

		rec := do(newHandler(a, nil), http.MethodGet, "/internal/v1/export", internalKey, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMetricsEndpointIsPublic(t *testing.T) {
	rec := do(newHandler(newApps(t), nil), http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRateLimit(t *testing.T) {
	a := newApps(t)
	authed(a)
	a.request.On("ListPending", mock.Anything).Return([]model.FoodRequest{}, nil).Once()

	cfg := &config.Config{
		Auth:      config.AuthConfig{InternalAPIKey: internalKey},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
	}
	h := newHandler(a, cfg)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/requests/pending", validToken, "").Code)
	rec := do(h, http.MethodGet, "/requests/pending", validToken, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrTooManyRequests], decode(t, rec).Code)
}

func TestRateLimit_InternalRoutesExempt(t *testing.T) {
	a := newApps(t)
	a.request.On("Expire", mock.Anything, "req-1").Return(nil).Times(5)

	cfg := &config.Config{
		Auth:      config.AuthConfig{InternalAPIKey: internalKey},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
	}
	h := newHandler(a, cfg)

	for i := 0; i < 5; i++ {
		rec := do(h, http.MethodPost, "/internal/v1/requests/req-1/expire", internalKey, "")
		assert.Equal(t, http.StatusOK, rec.Code, "call %d", i+1)
	}
}
