package request

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*SQL, *sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "mysql")
	return &SQL{conn: conn}, conn, mock
}

func requestRow(id string, status constant.RequestStatus) *sqlmock.Rows {
	cols := strings.Split(requestColumns, ", ")
	created := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(cols).AddRow(
		id, "req-1", nil, string(status), "bread", "single", "1 Main St", 40.7, -74.0,
		created, created.Add(time.Hour), "", "phone", nil, created, nil, nil, nil, nil, nil, nil,
	)
}

func TestGetByID(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(getRequestByID)).
		WithArgs("r-1").
		WillReturnRows(requestRow("r-1", constant.RequestStatusPending))

	got, err := repo.GetByID(ctx, "r-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r-1", got.ID)
	assert.Equal(t, constant.RequestStatusPending, got.Status)
	assert.Nil(t, got.HeroID)
	assert.Nil(t, got.Rating)

	mock.ExpectQuery(regexp.QuoteMeta(getRequestByID)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(strings.Split(requestColumns, ", ")))

	got, err = repo.GetByID(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Filters(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listRequestsBase+" AND hero_id = ? AND status IN (?, ?) ORDER BY created_at, id")).
		WithArgs("hero-1", constant.RequestStatusAccepted, constant.RequestStatusInProgress).
		WillReturnRows(requestRow("r-1", constant.RequestStatusAccepted))

	got, err := repo.List(context.Background(), &model.RequestFilter{HeroID: "hero-1", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, constant.RequestStatusAccepted, got[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTx_CompletedByHero(t *testing.T) {
	repo, conn, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(listRequestsBase+" AND status = ? AND hero_id = ? ORDER BY created_at, id")).
		WithArgs(constant.RequestStatusCompleted, "hero-1").
		WillReturnRows(requestRow("r-1", constant.RequestStatusCompleted))
	mock.ExpectRollback()

	tx, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)
	got, err := repo.ListTx(ctx, tx, &model.RequestFilter{HeroID: "hero-1", Status: constant.RequestStatusCompleted})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.Len(t, got, 1)
	assert.Nil(t, got[0].RewardedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountActiveByHeroTx(t *testing.T) {
	repo, conn, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(countActiveByHero)).
		WithArgs("hero-1", constant.RequestStatusAccepted, constant.RequestStatusInProgress).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectCommit()

	tx, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)
	n, err := repo.CountActiveByHeroTx(ctx, tx, "hero-1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	at := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	hero := "hero-1"
	reason := "changed plans"

	tests := []struct {
		name      string
		t         *model.StatusTransition
		query     string
		args      []driver.Value
		affected  int64
		execErr   error
		want      bool
		expectErr bool
	}{
		{
			name:     "accept assigns the hero",
			t:        &model.StatusTransition{RequestID: "r-1", From: constant.RequestStatusPending, To: constant.RequestStatusAccepted, At: at, HeroID: &hero},
			query:    "UPDATE food_requests SET status = ?, accepted_at = ?, hero_id = ? WHERE id = ? AND status = ?",
			args:     []driver.Value{constant.RequestStatusAccepted, at, hero, "r-1", constant.RequestStatusPending},
			affected: 1,
			want:     true,
		},
		{
			name:     "status already moved",
			t:        &model.StatusTransition{RequestID: "r-1", From: constant.RequestStatusPending, To: constant.RequestStatusCancelled, At: at, CancelReason: &reason},
			query:    "UPDATE food_requests SET status = ?, cancelled_at = ?, cancel_reason = ? WHERE id = ? AND status = ?",
			args:     []driver.Value{constant.RequestStatusCancelled, at, reason, "r-1", constant.RequestStatusPending},
			affected: 0,
			want:     false,
		},
		{
			name:      "exec failure",
			t:         &model.StatusTransition{RequestID: "r-1", From: constant.RequestStatusAccepted, To: constant.RequestStatusInProgress, At: at},
			query:     "UPDATE food_requests SET status = ?, in_progress_at = ? WHERE id = ? AND status = ?",
			args:      []driver.Value{constant.RequestStatusInProgress, at, "r-1", constant.RequestStatusAccepted},
			execErr:   errors.New("connection reset"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newMockRepo(t)

			exp := mock.ExpectExec(regexp.QuoteMeta(tt.query)).WithArgs(tt.args...)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			ok, err := repo.UpdateStatus(context.Background(), tt.t)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, ok)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateStatus_UnknownTarget(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	_, err := repo.UpdateStatus(context.Background(), &model.StatusTransition{
		RequestID: "r-1", From: constant.RequestStatusAccepted, To: constant.RequestStatusPending,
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetRating(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	rating := &model.Rating{Stars: 5, Timeliness: constant.TimelinessOnTime, FoodQuality: constant.FoodQualityGood}

	mock.ExpectExec(regexp.QuoteMeta(setRatingQuery)).
		WithArgs(sqlmock.AnyArg(), "r-1", constant.RequestStatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(setRatingQuery)).
		WithArgs(sqlmock.AnyArg(), "r-1", constant.RequestStatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.SetRating(context.Background(), "r-1", rating)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetRating(context.Background(), "r-1", rating)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRewardedTx(t *testing.T) {
	repo, conn, mock := newMockRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(markRewardedQuery)).
		WithArgs(at, "r-1", constant.RequestStatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(markRewardedQuery)).
		WithArgs(at, "r-1", constant.RequestStatusCompleted).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)

	ok, err := repo.MarkRewardedTx(ctx, tx, "r-1", at)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkRewardedTx(ctx, tx, "r-1", at)
	require.NoError(t, err)
	assert.False(t, ok, "second reward must not match")

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteRequestQuery)).WithArgs("r-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteRequestQuery)).WithArgs("r-2").WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), "r-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), "r-2")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
