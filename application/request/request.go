package request

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/food-hero/cmd/config"
	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/model"
	requestrepo "github.com/muhammadheryan/food-hero/repository/request"
	txrepo "github.com/muhammadheryan/food-hero/repository/tx"
	userrepo "github.com/muhammadheryan/food-hero/repository/user"
	"github.com/muhammadheryan/food-hero/thirdparty/rabbitmq"
	"github.com/muhammadheryan/food-hero/utils/errors"
	"github.com/muhammadheryan/food-hero/utils/logger"
	"github.com/muhammadheryan/food-hero/utils/metrics"
	"go.uber.org/zap"
)

type RequestApp interface {
	Create(ctx context.Context, requesterID string, req *model.CreateRequestRequest) (*model.FoodRequest, error)
	Accept(ctx context.Context, requestID, heroID string) (*model.FoodRequest, error)
	MarkInProgress(ctx context.Context, requestID, heroID string) (*model.FoodRequest, error)
	Complete(ctx context.Context, requestID, heroID string, rating *model.RatingRequest) (*model.FoodRequest, error)
	Rate(ctx context.Context, requestID, requesterID string, rating *model.RatingRequest) (*model.FoodRequest, error)
	Cancel(ctx context.Context, requestID, callerID, reason string) (*model.FoodRequest, error)
	Expire(ctx context.Context, requestID string) error
	Delete(ctx context.Context, requestID string) error

	Get(ctx context.Context, requestID string) (*model.FoodRequest, error)
	List(ctx context.Context) ([]model.FoodRequest, error)
	ListByStatus(ctx context.Context, status constant.RequestStatus) ([]model.FoodRequest, error)
	ListByUser(ctx context.Context, userID string, asRequester bool) ([]model.FoodRequest, error)
	ListPending(ctx context.Context) ([]model.FoodRequest, error)
	ListActiveForHero(ctx context.Context, heroID string) ([]model.FoodRequest, error)
}

// ExpirationPublisher schedules the expiry of a pending request.
type ExpirationPublisher interface {
	PublishRequestExpiration(msg rabbitmq.RequestExpirationMessage) error
}

type RequestAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	requestRepo requestrepo.RequestRepository
	userRepo    userrepo.UserRepository
	publisher   ExpirationPublisher
	now         func() time.Time
}

type Option func(*RequestAppImpl)

func WithClock(now func() time.Time) Option {
	return func(s *RequestAppImpl) { s.now = now }
}

// NewRequestApp builds the lifecycle service. publisher may be nil, in which
// case pending requests never expire on their own.
func NewRequestApp(config *config.Config, txRepo txrepo.TxRepository, requestRepo requestrepo.RequestRepository, userRepo userrepo.UserRepository, publisher ExpirationPublisher, opts ...Option) RequestApp {
	s := &RequestAppImpl{
		config:      config,
		txRepo:      txRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RequestAppImpl) Create(ctx context.Context, requesterID string, req *model.CreateRequestRequest) (*model.FoodRequest, error) {
	if req.PreferredTimeEnd.Before(req.PreferredTimeStart) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	requester, err := s.userRepo.Get(ctx, &model.UserFilter{ID: requesterID})
	if err != nil {
		logger.Error("[Create] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if requester == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !requester.IsRequester() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	entity := &model.FoodRequest{
		ID:                 uuid.NewString(),
		RequesterID:        requesterID,
		Status:             constant.RequestStatusPending,
		FoodType:           req.FoodType,
		Quantity:           req.Quantity,
		DeliveryAddress:    req.DeliveryAddress,
		DeliveryLat:        req.DeliveryLat,
		DeliveryLng:        req.DeliveryLng,
		PreferredTimeStart: req.PreferredTimeStart.UTC(),
		PreferredTimeEnd:   req.PreferredTimeEnd.UTC(),
		SpecialNotes:       req.SpecialNotes,
		ContactMethod:      req.ContactMethod,
		CreatedAt:          s.now().UTC(),
	}

	if err := s.requestRepo.Create(ctx, entity); err != nil {
		logger.Error("[Create] err requestRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// history is informational, the request itself is already stored
	if err := s.userRepo.AppendDeliveryHistory(ctx, requesterID, entity.ID); err != nil {
		logger.Warn("[Create] err userRepo.AppendDeliveryHistory", zap.String("request_id", entity.ID), zap.String("error", err.Error()))
	}

	if s.publisher != nil {
		msg := rabbitmq.RequestExpirationMessage{
			RequestID:   entity.ID,
			RequesterID: requesterID,
			ExpiresAt:   entity.PreferredTimeEnd,
		}
		if err := s.publisher.PublishRequestExpiration(msg); err != nil {
			logger.Error("[Create] err publisher.PublishRequestExpiration", zap.String("request_id", entity.ID), zap.String("error", err.Error()))
		}
	}

	metrics.RecordTransition(string(constant.RequestStatusPending))
	logger.Info("[Create] request created", zap.String("request_id", entity.ID), zap.String("requester_id", requesterID))
	return entity, nil
}

// Accept assigns a pending request to heroID. The hero row is locked while the
// active requests are counted so concurrent accepts cannot exceed the cap.
func (s *RequestAppImpl) Accept(ctx context.Context, requestID, heroID string) (*model.FoodRequest, error) {
	req, err := s.load(ctx, "Accept", requestID)
	if err != nil {
		return nil, err
	}
	if !constant.CanTransition(req.Status, constant.RequestStatusAccepted) {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Accept] err begin tx", zap.String("error", err.Error()))
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
		logger.Error("[Accept] err userRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if hero == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !hero.IsHero() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	active, err := s.requestRepo.CountActiveByHeroTx(ctx, tx, heroID)
	if err != nil {
		logger.Error("[Accept] err requestRepo.CountActiveByHeroTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if active >= constant.MaxActiveRequests {
		return nil, errors.SetCustomError(constant.ErrCapacityExceeded)
	}

	t := &model.StatusTransition{
		RequestID: requestID,
		From:      constant.RequestStatusPending,
		To:        constant.RequestStatusAccepted,
		At:        s.now().UTC(),
		HeroID:    &heroID,
	}
	ok, err := s.requestRepo.UpdateStatusTx(ctx, tx, t)
	if err != nil {
		logger.Error("[Accept] err requestRepo.UpdateStatusTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		// someone else moved the request first
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Accept] err commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	applyTransition(req, t)
	metrics.RecordTransition(string(t.To))
	logger.Info("[Accept] request accepted", zap.String("request_id", requestID), zap.String("hero_id", heroID))
	return req, nil
}

func (s *RequestAppImpl) MarkInProgress(ctx context.Context, requestID, heroID string) (*model.FoodRequest, error) {
	req, err := s.load(ctx, "MarkInProgress", requestID)
	if err != nil {
		return nil, err
	}
	if !constant.CanTransition(req.Status, constant.RequestStatusInProgress) {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if !req.DeliveredBy(heroID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	return s.transition(ctx, "MarkInProgress", req, &model.StatusTransition{
		RequestID: requestID,
		From:      req.Status,
		To:        constant.RequestStatusInProgress,
		At:        s.now().UTC(),
	})
}

// Complete finishes a delivery for the assigned hero. Ratings only come from the
// requester through Rate, so a rating passed here is rejected with Forbidden.
func (s *RequestAppImpl) Complete(ctx context.Context, requestID, heroID string, rating *model.RatingRequest) (*model.FoodRequest, error) {
	req, err := s.load(ctx, "Complete", requestID)
	if err != nil {
		return nil, err
	}
	if !constant.CanTransition(req.Status, constant.RequestStatusCompleted) {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if !req.DeliveredBy(heroID) || rating != nil {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	return s.transition(ctx, "Complete", req, &model.StatusTransition{
		RequestID: requestID,
		From:      req.Status,
		To:        constant.RequestStatusCompleted,
		At:        s.now().UTC(),
	})
}

// Rate attaches the requester's rating to a completed request, once.
func (s *RequestAppImpl) Rate(ctx context.Context, requestID, requesterID string, rating *model.RatingRequest) (*model.FoodRequest, error) {
	if rating == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	req, err := s.load(ctx, "Rate", requestID)
	if err != nil {
		return nil, err
	}
	if req.RequesterID != requesterID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if req.Status != constant.RequestStatusCompleted || req.Rating != nil {
		return nil, errors.SetCustomError(constant.ErrAlreadyRated)
	}

	r := newRating(rating, s.now().UTC())
	ok, err := s.requestRepo.SetRating(ctx, requestID, r)
	if err != nil {
		logger.Error("[Rate] err requestRepo.SetRating", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrAlreadyRated)
	}

	req.Rating = r
	return req, nil
}

// Cancel is allowed for the requester or the assigned hero while the request is not terminal.
func (s *RequestAppImpl) Cancel(ctx context.Context, requestID, callerID, reason string) (*model.FoodRequest, error) {
	req, err := s.load(ctx, "Cancel", requestID)
	if err != nil {
		return nil, err
	}
	if !constant.CanTransition(req.Status, constant.RequestStatusCancelled) {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if req.RequesterID != callerID && !req.DeliveredBy(callerID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	return s.transition(ctx, "Cancel", req, &model.StatusTransition{
		RequestID:    requestID,
		From:         req.Status,
		To:           constant.RequestStatusCancelled,
		At:           s.now().UTC(),
		CancelReason: &reason,
	})
}

// Expire cancels a request nobody accepted. Requests that already left pending
// are left untouched.
func (s *RequestAppImpl) Expire(ctx context.Context, requestID string) error {
	req, err := s.load(ctx, "Expire", requestID)
	if err != nil {
		return err
	}
	if req.Status != constant.RequestStatusPending {
		logger.Info("[Expire] request no longer pending", zap.String("request_id", requestID), zap.String("status", string(req.Status)))
		return nil
	}

	reason := constant.ExpiredCancelReason
	ok, err := s.requestRepo.UpdateStatus(ctx, &model.StatusTransition{
		RequestID:    requestID,
		From:         constant.RequestStatusPending,
		To:           constant.RequestStatusCancelled,
		At:           s.now().UTC(),
		CancelReason: &reason,
	})
	if err != nil {
		logger.Error("[Expire] err requestRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if ok {
		metrics.RecordTransition(string(constant.RequestStatusCancelled))
		logger.Info("[Expire] request expired", zap.String("request_id", requestID))
	}
	return nil
}

func (s *RequestAppImpl) Delete(ctx context.Context, requestID string) error {
	ok, err := s.requestRepo.Delete(ctx, requestID)
	if err != nil {
		logger.Error("[Delete] err requestRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *RequestAppImpl) Get(ctx context.Context, requestID string) (*model.FoodRequest, error) {
	return s.load(ctx, "Get", requestID)
}

func (s *RequestAppImpl) List(ctx context.Context) ([]model.FoodRequest, error) {
	return s.list(ctx, "List", &model.RequestFilter{})
}

func (s *RequestAppImpl) ListByStatus(ctx context.Context, status constant.RequestStatus) ([]model.FoodRequest, error) {
	if !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.list(ctx, "ListByStatus", &model.RequestFilter{Status: status})
}

func (s *RequestAppImpl) ListByUser(ctx context.Context, userID string, asRequester bool) ([]model.FoodRequest, error) {
	if asRequester {
		return s.list(ctx, "ListByUser", &model.RequestFilter{RequesterID: userID})
	}
	return s.list(ctx, "ListByUser", &model.RequestFilter{HeroID: userID})
}

func (s *RequestAppImpl) ListPending(ctx context.Context) ([]model.FoodRequest, error) {
	return s.list(ctx, "ListPending", &model.RequestFilter{Status: constant.RequestStatusPending})
}

func (s *RequestAppImpl) ListActiveForHero(ctx context.Context, heroID string) ([]model.FoodRequest, error) {
	return s.list(ctx, "ListActiveForHero", &model.RequestFilter{HeroID: heroID, ActiveOnly: true})
}

func (s *RequestAppImpl) list(ctx context.Context, op string, filter *model.RequestFilter) ([]model.FoodRequest, error) {
	items, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		logger.Error("["+op+"] err requestRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *RequestAppImpl) load(ctx context.Context, op, requestID string) (*model.FoodRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		logger.Error("["+op+"] err requestRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return req, nil
}

// transition applies t with a status compare-and-swap. A lost race surfaces as
// InvalidTransition.
func (s *RequestAppImpl) transition(ctx context.Context, op string, req *model.FoodRequest, t *model.StatusTransition) (*model.FoodRequest, error) {
	ok, err := s.requestRepo.UpdateStatus(ctx, t)
	if err != nil {
		logger.Error("["+op+"] err requestRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	applyTransition(req, t)
	metrics.RecordTransition(string(t.To))
	logger.Info("["+op+"] request updated", zap.String("request_id", req.ID), zap.String("status", string(t.To)))
	return req, nil
}

func applyTransition(req *model.FoodRequest, t *model.StatusTransition) {
	at := t.At
	req.Status = t.To
	switch t.To {
	case constant.RequestStatusAccepted:
		req.AcceptedAt = &at
	case constant.RequestStatusInProgress:
		req.InProgressAt = &at
	case constant.RequestStatusCompleted:
		req.CompletedAt = &at
	case constant.RequestStatusCancelled:
		req.CancelledAt = &at
	}
	if t.HeroID != nil {
		req.HeroID = t.HeroID
	}
	if t.Rating != nil {
		req.Rating = t.Rating
	}
	if t.CancelReason != nil {
		req.CancelReason = t.CancelReason
	}
}

func newRating(r *model.RatingRequest, now time.Time) *model.Rating {
	if r == nil {
		return nil
	}
	return &model.Rating{
		Stars:       r.Stars,
		Feedback:    r.Feedback,
		Timeliness:  r.Timeliness,
		FoodQuality: r.FoodQuality,
		CreatedAt:   now,
	}
}
