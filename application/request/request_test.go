package request_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apprequest "github.com/muhammadheryan/food-hero/application/request"
	"github.com/muhammadheryan/food-hero/cmd/config"
	"github.com/muhammadheryan/food-hero/constant"
	requestmocks "github.com/muhammadheryan/food-hero/mocks/repository/request"
	txmocks "github.com/muhammadheryan/food-hero/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/food-hero/mocks/repository/user"
	"github.com/muhammadheryan/food-hero/model"
	"github.com/muhammadheryan/food-hero/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/food-hero/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	requestID   = "req-1"
	heroID      = "hero-1"
	requesterID = "requester-1"
)

var fixedNow = time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)

type fields struct {
	txRepo      *txmocks.TxRepository
	requestRepo *requestmocks.RequestRepository
	userRepo    *usermocks.UserRepository
}

type fakePublisher struct {
	msgs []rabbitmq.RequestExpirationMessage
	err  error
}

func (p *fakePublisher) PublishRequestExpiration(msg rabbitmq.RequestExpirationMessage) error {
	p.msgs = append(p.msgs, msg)
	return p.err
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:      txmocks.NewTxRepository(t),
		requestRepo: requestmocks.NewRequestRepository(t),
		userRepo:    usermocks.NewUserRepository(t),
	}
}

func newApp(f fields, publisher apprequest.ExpirationPublisher) apprequest.RequestApp {
	return apprequest.NewRequestApp(&config.Config{}, f.txRepo, f.requestRepo, f.userRepo, publisher,
		apprequest.WithClock(func() time.Time { return fixedNow }))
}

func strPtr(s string) *string { return &s }

func foodRequest(status constant.RequestStatus, hero *string) *model.FoodRequest {
	return &model.FoodRequest{
		ID:          requestID,
		RequesterID: requesterID,
		HeroID:      hero,
		Status:      status,
		CreatedAt:   fixedNow.Add(-time.Hour),
	}
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, cerr.IsType(err, want), "error = %v, want %s", err, constant.ErrorTypeMessage[want])
}

func TestRequestApp_Create(t *testing.T) {
	validReq := func() *model.CreateRequestRequest {
		return &model.CreateRequestRequest{
			FoodType:           constant.FoodTypeProduce,
			Quantity:           constant.QuantitySingle,
			DeliveryAddress:    "12 Gottingen St",
			PreferredTimeStart: fixedNow.Add(time.Hour),
			PreferredTimeEnd:   fixedNow.Add(3 * time.Hour),
			ContactMethod:      "phone",
		}
	}

	tests := []struct {
		name      string
		req       *model.CreateRequestRequest
		mockCall  func(f fields)
		publisher *fakePublisher
		wantErr   bool
		errType   constant.ErrorType
	}{
		{
			name: "success: pending request with scheduled expiry",
			req:  validReq(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: requesterID}).
					Return(&model.UserEntity{ID: requesterID, Role: constant.UserRoleRequester}, nil).Once()
				f.requestRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.FoodRequest) bool {
					return r.Status == constant.RequestStatusPending && r.RequesterID == requesterID &&
						r.HeroID == nil && r.CreatedAt.Equal(fixedNow) && r.ID != ""
				})).Return(nil).Once()
				f.userRepo.On("AppendDeliveryHistory", mock.Anything, requesterID, mock.Anything).Return(nil).Once()
			},
			publisher: &fakePublisher{},
		},
		{
			name: "success: history and publish failures do not fail creation",
			req:  validReq(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.UserEntity{ID: requesterID, Role: constant.UserRoleRequester}, nil).Once()
				f.requestRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				f.userRepo.On("AppendDeliveryHistory", mock.Anything, requesterID, mock.Anything).Return(errors.New("db down")).Once()
			},
			publisher: &fakePublisher{err: errors.New("broker down")},
		},
		{
			name: "error: window ends before it starts",
			req: func() *model.CreateRequestRequest {
				r := validReq()
				r.PreferredTimeEnd = r.PreferredTimeStart.Add(-time.Minute)
				return r
			}(),
			wantErr: true,
			errType: constant.ErrInvalidRequest,
		},
		{
			name: "error: heroes cannot create requests",
			req:  validReq(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.UserEntity{ID: requesterID, Role: constant.UserRoleHero}, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrForbidden,
		},
		{
			name: "error: insert fails",
			req:  validReq(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.UserEntity{ID: requesterID, Role: constant.UserRoleRequester}, nil).Once()
				f.requestRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			var publisher apprequest.ExpirationPublisher
			if tt.publisher != nil {
				publisher = tt.publisher
			}

			got, err := newApp(f, publisher).Create(context.Background(), requesterID, tt.req)
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.RequestStatusPending, got.Status)
			require.Len(t, tt.publisher.msgs, 1)
			assert.Equal(t, got.ID, tt.publisher.msgs[0].RequestID)
			assert.Equal(t, got.PreferredTimeEnd, tt.publisher.msgs[0].ExpiresAt)
		})
	}
}

func TestRequestApp_Accept(t *testing.T) {
	hero := &model.UserEntity{ID: heroID, Role: constant.UserRoleHero}

	tests := []struct {
		name     string
		mockCall func(f fields, tx *sqlx.Tx)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: accept pending request",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusPending, nil), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, heroID).Return(hero, nil).Once()
				f.requestRepo.On("CountActiveByHeroTx", mock.Anything, tx, heroID).Return(2, nil).Once()
				f.requestRepo.On("UpdateStatusTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.StatusTransition) bool {
					return tr.From == constant.RequestStatusPending && tr.To == constant.RequestStatusAccepted &&
						tr.HeroID != nil && *tr.HeroID == heroID
				})).Return(true, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: fourth active request",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusPending, nil), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, heroID).Return(hero, nil).Once()
				f.requestRepo.On("CountActiveByHeroTx", mock.Anything, tx, heroID).Return(constant.MaxActiveRequests, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errType: constant.ErrCapacityExceeded,
		},
		{
			name: "error: lost race to another hero",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusPending, nil), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, heroID).Return(hero, nil).Once()
				f.requestRepo.On("CountActiveByHeroTx", mock.Anything, tx, heroID).Return(0, nil).Once()
				f.requestRepo.On("UpdateStatusTx", mock.Anything, tx, mock.Anything).Return(false, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errType: constant.ErrInvalidTransition,
		},
		{
			name: "error: request already accepted",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusAccepted, strPtr("hero-2")), nil).Once()
			},
			wantErr: true,
			errType: constant.ErrInvalidTransition,
		},
		{
			name: "error: requester cannot accept",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusPending, nil), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, heroID).
					Return(&model.UserEntity{ID: heroID, Role: constant.UserRoleRequester}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errType: constant.ErrForbidden,
		},
		{
			name: "error: request not found",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.requestRepo.On("GetByID", mock.Anything, requestID).Return(nil, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: begin tx fails",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusPending, nil), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f, &sqlx.Tx{})

			got, err := newApp(f, nil).Accept(context.Background(), requestID, heroID)
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.RequestStatusAccepted, got.Status)
			require.NotNil(t, got.HeroID)
			assert.Equal(t, heroID, *got.HeroID)
			require.NotNil(t, got.AcceptedAt)
			assert.Equal(t, fixedNow, *got.AcceptedAt)
		})
	}
}

func TestRequestApp_MarkInProgress(t *testing.T) {
	tests := []struct {
		name     string
		stored   *model.FoodRequest
		caller   string
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name:   "success: assigned hero starts delivery",
			stored: foodRequest(constant.RequestStatusAccepted, strPtr(heroID)),
			caller: heroID,
			mockCall: func(f fields) {
				f.requestRepo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(tr *model.StatusTransition) bool {
					return tr.From == constant.RequestStatusAccepted && tr.To == constant.RequestStatusInProgress
				})).Return(true, nil).Once()
			},
		},
		{
			name:    "error: another hero",
			stored:  foodRequest(constant.RequestStatusAccepted, strPtr(heroID)),
			caller:  "hero-2",
			wantErr: true,
			errType: constant.ErrForbidden,
		},
		{
			name:    "error: still pending",
			stored:  foodRequest(constant.RequestStatusPending, nil),
			caller:  heroID,
			wantErr: true,
			errType: constant.ErrInvalidTransition,
		},
		{
			name:   "error: status changed underneath",
			stored: foodRequest(constant.RequestStatusAccepted, strPtr(heroID)),
			caller: heroID,
			mockCall: func(f fields) {
				f.requestRepo.On("UpdateStatus", mock.Anything, mock.Anything).Return(false, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.requestRepo.On("GetByID", mock.Anything, requestID).Return(tt.stored, nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := newApp(f, nil).MarkInProgress(context.Background(), requestID, tt.caller)
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.RequestStatusInProgress, got.Status)
			require.NotNil(t, got.InProgressAt)
		})
	}
}

func TestRequestApp_Complete(t *testing.T) {
	rating := &model.RatingRequest{Stars: 5, Timeliness: constant.TimelinessOnTime, FoodQuality: constant.FoodQualityGood}

	t.Run("error: hero cannot rate own delivery", func(t *testing.T) {
		f := newFields(t)
		f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusInProgress, strPtr(heroID)), nil).Once()

		got, err := newApp(f, nil).Complete(context.Background(), requestID, heroID, rating)
		assertErrType(t, err, constant.ErrForbidden)
		assert.Nil(t, got)
		f.requestRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("success: completed unrated", func(t *testing.T) {
		f := newFields(t)
		f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusInProgress, strPtr(heroID)), nil).Once()
		f.requestRepo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(tr *model.StatusTransition) bool {
			return tr.To == constant.RequestStatusCompleted && tr.Rating == nil
		})).Return(true, nil).Once()

		got, err := newApp(f, nil).Complete(context.Background(), requestID, heroID, nil)
		require.NoError(t, err)
		assert.Equal(t, constant.RequestStatusCompleted, got.Status)
		require.NotNil(t, got.CompletedAt)
		assert.Nil(t, got.Rating)
		assert.Nil(t, got.CancelledAt)
	})

	t.Run("error: skipping in_progress", func(t *testing.T) {
		f := newFields(t)
		f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusAccepted, strPtr(heroID)), nil).Once()

		_, err := newApp(f, nil).Complete(context.Background(), requestID, heroID, nil)
		assertErrType(t, err, constant.ErrInvalidTransition)
	})
}

func TestRequestApp_Rate(t *testing.T) {
	rating := &model.RatingRequest{Stars: 4, Timeliness: constant.TimelinessLate, FoodQuality: constant.FoodQualityAcceptable}
	rated := foodRequest(constant.RequestStatusCompleted, strPtr(heroID))
	rated.Rating = &model.Rating{Stars: 3}

	tests := []struct {
		name     string
		stored   *model.FoodRequest
		caller   string
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name:   "success: first rating",
			stored: foodRequest(constant.RequestStatusCompleted, strPtr(heroID)),
			caller: requesterID,
			mockCall: func(f fields) {
				f.requestRepo.On("SetRating", mock.Anything, requestID, mock.MatchedBy(func(r *model.Rating) bool {
					return r.Stars == 4 && r.Timeliness == constant.TimelinessLate
				})).Return(true, nil).Once()
			},
		},
		{
			name:    "error: already rated",
			stored:  rated,
			caller:  requesterID,
			wantErr: true,
			errType: constant.ErrAlreadyRated,
		},
		{
			name:    "error: not completed",
			stored:  foodRequest(constant.RequestStatusInProgress, strPtr(heroID)),
			caller:  requesterID,
			wantErr: true,
			errType: constant.ErrAlreadyRated,
		},
		{
			name:    "error: only the requester rates",
			stored:  foodRequest(constant.RequestStatusCompleted, strPtr(heroID)),
			caller:  heroID,
			wantErr: true,
			errType: constant.ErrForbidden,
		},
		{
			name:   "error: concurrent rating won",
			stored: foodRequest(constant.RequestStatusCompleted, strPtr(heroID)),
			caller: requesterID,
			mockCall: func(f fields) {
				f.requestRepo.On("SetRating", mock.Anything, requestID, mock.Anything).Return(false, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrAlreadyRated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.requestRepo.On("GetByID", mock.Anything, requestID).Return(tt.stored, nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := newApp(f, nil).Rate(context.Background(), requestID, tt.caller, rating)
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.Rating)
			assert.Equal(t, 4, got.Rating.Stars)
		})
	}
}

func TestRequestApp_Cancel(t *testing.T) {
	tests := []struct {
		name     string
		stored   *model.FoodRequest
		caller   string
		mockCall func(f fields)
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name:   "success: requester cancels pending",
			stored: foodRequest(constant.RequestStatusPending, nil),
			caller: requesterID,
			mockCall: func(f fields) {
				f.requestRepo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(tr *model.StatusTransition) bool {
					return tr.From == constant.RequestStatusPending && tr.To == constant.RequestStatusCancelled &&
						tr.CancelReason != nil && *tr.CancelReason == "plans changed"
				})).Return(true, nil).Once()
			},
		},
		{
			name:   "success: hero cancels in progress",
			stored: foodRequest(constant.RequestStatusInProgress, strPtr(heroID)),
			caller: heroID,
			mockCall: func(f fields) {
				f.requestRepo.On("UpdateStatus", mock.Anything, mock.Anything).Return(true, nil).Once()
			},
		},
		{
			name:    "error: completed is terminal",
			stored:  foodRequest(constant.RequestStatusCompleted, strPtr(heroID)),
			caller:  requesterID,
			wantErr: true,
			errType: constant.ErrInvalidTransition,
		},
		{
			name:    "error: cancelled is terminal",
			stored:  foodRequest(constant.RequestStatusCancelled, nil),
			caller:  requesterID,
			wantErr: true,
			errType: constant.ErrInvalidTransition,
		},
		{
			name:    "error: stranger",
			stored:  foodRequest(constant.RequestStatusAccepted, strPtr(heroID)),
			caller:  "someone-else",
			wantErr: true,
			errType: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.requestRepo.On("GetByID", mock.Anything, requestID).Return(tt.stored, nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := newApp(f, nil).Cancel(context.Background(), requestID, tt.caller, "plans changed")
			if tt.wantErr {
				assertErrType(t, err, tt.errType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.RequestStatusCancelled, got.Status)
			require.NotNil(t, got.CancelledAt)
			assert.Nil(t, got.CompletedAt)
			require.NotNil(t, got.CancelReason)
		})
	}
}

func TestRequestApp_Expire(t *testing.T) {
	t.Run("success: pending request is cancelled", func(t *testing.T) {
		f := newFields(t)
		f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusPending, nil), nil).Once()
		f.requestRepo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(tr *model.StatusTransition) bool {
			return tr.From == constant.RequestStatusPending && tr.To == constant.RequestStatusCancelled &&
				*tr.CancelReason == constant.ExpiredCancelReason
		})).Return(true, nil).Once()

		require.NoError(t, newApp(f, nil).Expire(context.Background(), requestID))
	})

	t.Run("success: accepted request is left alone", func(t *testing.T) {
		f := newFields(t)
		f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusAccepted, strPtr(heroID)), nil).Once()

		require.NoError(t, newApp(f, nil).Expire(context.Background(), requestID))
	})

	t.Run("success: accepted between read and write", func(t *testing.T) {
		f := newFields(t)
		f.requestRepo.On("GetByID", mock.Anything, requestID).Return(foodRequest(constant.RequestStatusPending, nil), nil).Once()
		f.requestRepo.On("UpdateStatus", mock.Anything, mock.Anything).Return(false, nil).Once()

		require.NoError(t, newApp(f, nil).Expire(context.Background(), requestID))
	})

	t.Run("error: unknown request", func(t *testing.T) {
		f := newFields(t)
		f.requestRepo.On("GetByID", mock.Anything, requestID).Return(nil, nil).Once()

		assertErrType(t, newApp(f, nil).Expire(context.Background(), requestID), constant.ErrNotFound)
	})
}

func TestRequestApp_Delete(t *testing.T) {
	f := newFields(t)
	f.requestRepo.On("Delete", mock.Anything, requestID).Return(true, nil).Once()
	f.requestRepo.On("Delete", mock.Anything, "missing").Return(false, nil).Once()

	app := newApp(f, nil)
	require.NoError(t, app.Delete(context.Background(), requestID))
	assertErrType(t, app.Delete(context.Background(), "missing"), constant.ErrNotFound)
}

func TestRequestApp_Queries(t *testing.T) {
	items := []model.FoodRequest{*foodRequest(constant.RequestStatusPending, nil)}

	tests := []struct {
		name   string
		filter *model.RequestFilter
		call   func(app apprequest.RequestApp) ([]model.FoodRequest, error)
	}{
		{
			name:   "all",
			filter: &model.RequestFilter{},
			call:   func(app apprequest.RequestApp) ([]model.FoodRequest, error) { return app.List(context.Background()) },
		},
		{
			name:   "by status",
			filter: &model.RequestFilter{Status: constant.RequestStatusCompleted},
			call: func(app apprequest.RequestApp) ([]model.FoodRequest, error) {
				return app.ListByStatus(context.Background(), constant.RequestStatusCompleted)
			},
		},
		{
			name:   "by requester",
			filter: &model.RequestFilter{RequesterID: requesterID},
			call: func(app apprequest.RequestApp) ([]model.FoodRequest, error) {
				return app.ListByUser(context.Background(), requesterID, true)
			},
		},
		{
			name:   "by hero",
			filter: &model.RequestFilter{HeroID: heroID},
			call: func(app apprequest.RequestApp) ([]model.FoodRequest, error) {
				return app.ListByUser(context.Background(), heroID, false)
			},
		},
		{
			name:   "pending",
			filter: &model.RequestFilter{Status: constant.RequestStatusPending},
			call: func(app apprequest.RequestApp) ([]model.FoodRequest, error) {
				return app.ListPending(context.Background())
			},
		},
		{
			name:   "active for hero",
			filter: &model.RequestFilter{HeroID: heroID, ActiveOnly: true},
			call: func(app apprequest.RequestApp) ([]model.FoodRequest, error) {
				return app.ListActiveForHero(context.Background(), heroID)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.requestRepo.On("List", mock.Anything, tt.filter).Return(items, nil).Once()

			got, err := tt.call(newApp(f, nil))
			require.NoError(t, err)
			assert.Equal(t, items, got)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		_, err := newApp(newFields(t), nil).ListByStatus(context.Background(), "lost")
		assertErrType(t, err, constant.ErrInvalidRequest)
	})
}
