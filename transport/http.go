package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	gamificationapp "github.com/muhammadheryan/food-hero/application/gamification"
	leaderboardapp "github.com/muhammadheryan/food-hero/application/leaderboard"
	requestapp "github.com/muhammadheryan/food-hero/application/request"
	userapp "github.com/muhammadheryan/food-hero/application/user"
	"github.com/muhammadheryan/food-hero/cmd/config"
	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/model"
	utilsContext "github.com/muhammadheryan/food-hero/utils/context"
	"github.com/muhammadheryan/food-hero/utils/errors"
	"github.com/muhammadheryan/food-hero/utils/logger"
	"github.com/muhammadheryan/food-hero/utils/metrics"
	validatorx "github.com/muhammadheryan/food-hero/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	UserApp         userapp.UserApp
	RequestApp      requestapp.RequestApp
	GamificationApp gamificationapp.GamificationApp
	LeaderboardApp  leaderboardapp.LeaderboardApp
}

// NewTransport builds the router. Background work started here, such as rate
// limiter cleanup, stops when ctx is done.
func NewTransport(ctx context.Context, cfg *config.Config, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/me", rh.Me).Methods(http.MethodGet)

	mux.HandleFunc("/requests", rh.CreateRequest).Methods(http.MethodPost)
	mux.HandleFunc("/requests", rh.ListRequests).Methods(http.MethodGet)
	mux.HandleFunc("/requests/pending", rh.ListPendingRequests).Methods(http.MethodGet)
	mux.HandleFunc("/requests/mine", rh.ListMyRequests).Methods(http.MethodGet)
	mux.HandleFunc("/requests/active", rh.ListActiveRequests).Methods(http.MethodGet)
	mux.HandleFunc("/requests/{id}", rh.GetRequest).Methods(http.MethodGet)
	mux.HandleFunc("/requests/{id}/accept", rh.AcceptRequest).Methods(http.MethodPost)
	mux.HandleFunc("/requests/{id}/start", rh.StartRequest).Methods(http.MethodPost)
	mux.HandleFunc("/requests/{id}/complete", rh.CompleteRequest).Methods(http.MethodPost)
	mux.HandleFunc("/requests/{id}/cancel", rh.CancelRequest).Methods(http.MethodPost)
	mux.HandleFunc("/requests/{id}/rate", rh.RateRequest).Methods(http.MethodPost)

	mux.HandleFunc("/heroes/me/level", rh.GetLevel).Methods(http.MethodGet)
	mux.HandleFunc("/heroes/me/coupons", rh.GetCoupons).Methods(http.MethodGet)
	mux.HandleFunc("/heroes/me/coupons/{couponID}/claim", rh.ClaimCoupon).Methods(http.MethodPost)
	mux.HandleFunc("/leaderboard", rh.GetLeaderboard).Methods(http.MethodGet)

	// internal routes, static API key
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))
	internal.HandleFunc("/requests/{id}/expire", rh.ExpireRequest).Methods(http.MethodPost)
	internal.HandleFunc("/requests/{id}/reward", rh.RewardRequest).Methods(http.MethodPost)
	internal.HandleFunc("/requests/{id}", rh.DeleteRequest).Methods(http.MethodDelete)
	internal.HandleFunc("/users/{id}", rh.DeleteUser).Methods(http.MethodDelete)
	internal.HandleFunc("/export", rh.Export).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(metrics.Middleware())
	mux.Use(AuthMiddleware(rh.UserApp))
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		limiter.StartCleanup(ctx, time.Minute)
		mux.Use(limiter.Middleware())
	}

	return mux
}

// decodeAndValidate reads a JSON body into dst and runs the struct validator.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		logger.FromContext(r.Context()).Info("invalid request body", zap.Strings("fields", validatorx.InvalidFields(err)))
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

func currentUserID(r *http.Request) (string, error) {
	id, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		return "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	return id, nil
}

// Register handler
// @Summary Register user
// @Description Register a new hero or requester
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Invalidate the current session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserEntity
// @Router /me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
