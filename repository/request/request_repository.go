package request

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/model"
)

type SQL struct {
	conn *sqlx.DB
}

type RequestRepository interface {
	Create(ctx context.Context, data *model.FoodRequest) error
	GetByID(ctx context.Context, id string) (*model.FoodRequest, error)
	List(ctx context.Context, filter *model.RequestFilter) ([]model.FoodRequest, error)
	ListTx(ctx context.Context, tx *sqlx.Tx, filter *model.RequestFilter) ([]model.FoodRequest, error)
	CountActiveByHeroTx(ctx context.Context, tx *sqlx.Tx, heroID string) (int, error)
	UpdateStatus(ctx context.Context, t *model.StatusTransition) (bool, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, t *model.StatusTransition) (bool, error)
	SetRating(ctx context.Context, id string, rating *model.Rating) (bool, error)
	MarkRewardedTx(ctx context.Context, tx *sqlx.Tx, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

func NewRequestRepository(conn *sqlx.DB) RequestRepository {
	return &SQL{conn: conn}
}

const (
	requestColumns = `id, requester_id, hero_id, status, food_type, quantity, delivery_address, delivery_lat, delivery_lng, preferred_time_start, preferred_time_end, special_notes, contact_method, rating, created_at, accepted_at, in_progress_at, completed_at, cancelled_at, cancel_reason, rewarded_at`

	insertRequestQuery = `INSERT INTO food_requests (id, requester_id, status, food_type, quantity, delivery_address, delivery_lat, delivery_lng, preferred_time_start, preferred_time_end, special_notes, contact_method, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getRequestByID     = `SELECT ` + requestColumns + ` FROM food_requests WHERE id = ?`
	listRequestsBase   = `SELECT ` + requestColumns + ` FROM food_requests WHERE true`
	countActiveByHero  = `SELECT COUNT(*) FROM food_requests WHERE hero_id = ? AND status IN (?, ?)`
	setRatingQuery     = `UPDATE food_requests SET rating = ? WHERE id = ? AND status = ? AND rating IS NULL`
	markRewardedQuery  = `UPDATE food_requests SET rewarded_at = ? WHERE id = ? AND status = ? AND rewarded_at IS NULL`
	deleteRequestQuery = `DELETE FROM food_requests WHERE id = ?`
)

// timestamp column written by each transition target
var transitionColumns = map[constant.RequestStatus]string{
	constant.RequestStatusAccepted:   "accepted_at",
	constant.RequestStatusInProgress: "in_progress_at",
	constant.RequestStatusCompleted:  "completed_at",
	constant.RequestStatusCancelled:  "cancelled_at",
}

func (s *SQL) Create(ctx context.Context, data *model.FoodRequest) error {
	_, err := s.conn.ExecContext(ctx, insertRequestQuery,
		data.ID, data.RequesterID, data.Status, data.FoodType, data.Quantity, data.DeliveryAddress,
		data.DeliveryLat, data.DeliveryLng, data.PreferredTimeStart, data.PreferredTimeEnd,
		data.SpecialNotes, data.ContactMethod, data.CreatedAt,
	)
	return err
}

// GetByID returns nil when the request does not exist.
func (s *SQL) GetByID(ctx context.Context, id string) (*model.FoodRequest, error) {
	var req model.FoodRequest
	if err := s.conn.QueryRowxContext(ctx, getRequestByID, id).StructScan(&req); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (s *SQL) List(ctx context.Context, filter *model.RequestFilter) ([]model.FoodRequest, error) {
	return listRequests(ctx, s.conn, filter)
}

// ListTx reads through tx so the result is consistent with rows locked in it.
func (s *SQL) ListTx(ctx context.Context, tx *sqlx.Tx, filter *model.RequestFilter) ([]model.FoodRequest, error) {
	return listRequests(ctx, tx, filter)
}

func listRequests(ctx context.Context, q sqlx.QueryerContext, filter *model.RequestFilter) ([]model.FoodRequest, error) {
	query := listRequestsBase
	args := make([]any, 0, 4)
	if filter != nil {
		if filter.Status != "" {
			query += " AND status = ?"
			args = append(args, filter.Status)
		}
		if filter.RequesterID != "" {
			query += " AND requester_id = ?"
			args = append(args, filter.RequesterID)
		}
		if filter.HeroID != "" {
			query += " AND hero_id = ?"
			args = append(args, filter.HeroID)
		}
		if filter.ActiveOnly {
			query += " AND status IN (?, ?)"
			args = append(args, constant.RequestStatusAccepted, constant.RequestStatusInProgress)
		}
	}
	query += " ORDER BY created_at, id"

	rows, err := q.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FoodRequest, 0)
	for rows.Next() {
		var it model.FoodRequest
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) CountActiveByHeroTx(ctx context.Context, tx *sqlx.Tx, heroID string) (int, error) {
	var total int
	if err := tx.GetContext(ctx, &total, countActiveByHero, heroID, constant.RequestStatusAccepted, constant.RequestStatusInProgress); err != nil {
		return 0, err
	}
	return total, nil
}

// UpdateStatus applies t only if the stored status still equals t.From.
// It reports false when no row matched.
func (s *SQL) UpdateStatus(ctx context.Context, t *model.StatusTransition) (bool, error) {
	return updateStatus(ctx, s.conn, t)
}

func (s *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, t *model.StatusTransition) (bool, error) {
	return updateStatus(ctx, tx, t)
}

func updateStatus(ctx context.Context, exec sqlx.ExecerContext, t *model.StatusTransition) (bool, error) {
	query, args, err := buildTransitionQuery(t)
	if err != nil {
		return false, err
	}
	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func buildTransitionQuery(t *model.StatusTransition) (string, []any, error) {
	col, ok := transitionColumns[t.To]
	if !ok {
		return "", nil, fmt.Errorf("no transition into status %q", t.To)
	}

	set := []string{"status = ?", col + " = ?"}
	args := []any{t.To, t.At}
	if t.HeroID != nil {
		set = append(set, "hero_id = ?")
		args = append(args, *t.HeroID)
	}
	if t.Rating != nil {
		set = append(set, "rating = ?")
		args = append(args, t.Rating)
	}
	if t.CancelReason != nil {
		set = append(set, "cancel_reason = ?")
		args = append(args, *t.CancelReason)
	}
	args = append(args, t.RequestID, t.From)

	return "UPDATE food_requests SET " + strings.Join(set, ", ") + " WHERE id = ? AND status = ?", args, nil
}

// SetRating attaches a rating to a completed, unrated request. Reports false when nothing matched.
func (s *SQL) SetRating(ctx context.Context, id string, rating *model.Rating) (bool, error) {
	res, err := s.conn.ExecContext(ctx, setRatingQuery, rating, id, constant.RequestStatusCompleted)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkRewardedTx stamps a completed request as rewarded. It reports false when the
// request was already rewarded or is not completed.
func (s *SQL) MarkRewardedTx(ctx context.Context, tx *sqlx.Tx, id string, at time.Time) (bool, error) {
	res, err := tx.ExecContext(ctx, markRewardedQuery, at, id, constant.RequestStatusCompleted)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteRequestQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
