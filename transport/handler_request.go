package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/model"
	"github.com/muhammadheryan/food-hero/utils/logger"
	"go.uber.org/zap"
)

// CreateRequest handler
// @Summary Create food request
// @Description A requester asks for a food delivery
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateRequestRequest true "Food request"
// @Success 200 {object} model.FoodRequest
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /requests [post]
func (s *RestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateRequestRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Create(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListRequests handler
// @Summary List food requests
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, accepted, in_progress, completed or cancelled"
// @Success 200 {array} model.FoodRequest
// @Router /requests [get]
func (s *RestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	var (
		res []model.FoodRequest
		err error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		res, err = s.RequestApp.ListByStatus(r.Context(), constant.RequestStatus(status))
	} else {
		res, err = s.RequestApp.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListPendingRequests handler
// @Summary List requests waiting for a hero
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FoodRequest
// @Router /requests/pending [get]
func (s *RestHandler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	res, err := s.RequestApp.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListMyRequests handler
// @Summary List the caller's requests
// @Description Requests created by the caller, or delivered by the caller with as=hero
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param as query string false "requester (default) or hero"
// @Success 200 {array} model.FoodRequest
// @Router /requests/mine [get]
func (s *RestHandler) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	asRequester := r.URL.Query().Get("as") != string(constant.UserRoleHero)
	res, err := s.RequestApp.ListByUser(r.Context(), userID, asRequester)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListActiveRequests handler
// @Summary List the hero's active deliveries
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FoodRequest
// @Router /requests/active [get]
func (s *RestHandler) ListActiveRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.ListActiveForHero(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetRequest handler
// @Summary Get food request
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.FoodRequest
// @Failure 404 {object} Response
// @Router /requests/{id} [get]
func (s *RestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	res, err := s.RequestApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AcceptRequest handler
// @Summary Accept a pending request
// @Description A hero takes a pending request; at most 3 active requests per hero
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.FoodRequest
// @Failure 409 {object} Response
// @Router /requests/{id}/accept [post]
func (s *RestHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Accept(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// StartRequest handler
// @Summary Start delivery
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.FoodRequest
// @Failure 403 {object} Response
// @Failure 409 {object} Response
// @Router /requests/{id}/start [post]
func (s *RestHandler) StartRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.MarkInProgress(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompleteRequest handler
// @Summary Complete delivery
// @Description Completes the delivery and credits the hero's points, level and badges
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} model.CompleteResponse
// @Failure 409 {object} Response
// @Router /requests/{id}/complete [post]
func (s *RestHandler) CompleteRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// the requester rates separately through /rate, any body is ignored
	id := mux.Vars(r)["id"]
	completed, err := s.RequestApp.Complete(ctx, id, userID, nil)
	if err != nil {
		writeError(w, err)
		return
	}

	res := &model.CompleteResponse{Request: completed}
	reward, err := s.GamificationApp.RewardDelivery(ctx, id)
	if err != nil {
		// the delivery stands when the reward write fails; POST /internal/v1/requests/{id}/reward retries it
		logger.FromContext(r.Context()).Error("[CompleteRequest] err RewardDelivery", zap.String("request_id", id), zap.String("error", err.Error()))
	} else {
		res.Reward = reward
	}

	writeSuccess(w, res)
}

// CancelRequest handler
// @Summary Cancel request
// @Description The requester or the assigned hero cancels a non-terminal request
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body model.CancelRequestRequest true "Reason"
// @Success 200 {object} model.FoodRequest
// @Failure 403 {object} Response
// @Failure 409 {object} Response
// @Router /requests/{id}/cancel [post]
func (s *RestHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CancelRequestRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Cancel(r.Context(), mux.Vars(r)["id"], userID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RateRequest handler
// @Summary Rate a completed delivery
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body model.RatingRequest true "Rating"
// @Success 200 {object} model.FoodRequest
// @Failure 409 {object} Response
// @Router /requests/{id}/rate [post]
func (s *RestHandler) RateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.RatingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RequestApp.Rate(ctx, mux.Vars(r)["id"], userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	if res.HeroID != nil {
		if _, err := s.GamificationApp.UpdateHeroRating(ctx, *res.HeroID); err != nil {
			logger.FromContext(r.Context()).Error("[RateRequest] err UpdateHeroRating", zap.String("hero_id", *res.HeroID), zap.String("error", err.Error()))
		}
	}

	writeSuccess(w, res)
}
