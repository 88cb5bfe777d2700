package user

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-hero/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.UserEntity, error)
	UpdateRewardsTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) error
	AppendDeliveryHistory(ctx context.Context, userID, requestID string) error
	Delete(ctx context.Context, id string) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns = `id, role, name, email, phone, neighborhood, password_hash, transport_method, points, level, badges, claimed_coupons, average_rating, total_deliveries, delivery_history, created_at, updated_at`

	insertUserQuery    = `INSERT INTO users (id, role, name, email, phone, neighborhood, password_hash, transport_method, points, level, badges, claimed_coupons, average_rating, total_deliveries, delivery_history, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getUserBase        = `SELECT ` + userColumns + ` FROM users WHERE true`
	getUserForUpdate   = `SELECT ` + userColumns + ` FROM users WHERE id = ? FOR UPDATE`
	updateRewardsQuery = `UPDATE users SET points = ?, level = ?, badges = ?, claimed_coupons = ?, average_rating = ?, total_deliveries = ?, updated_at = NOW(3) WHERE id = ?`
	appendHistoryQuery = `UPDATE users SET delivery_history = JSON_ARRAY_APPEND(delivery_history, '$', ?), updated_at = NOW(3) WHERE id = ?`
	deleteUserQuery    = `DELETE FROM users WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	_, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.ID, data.Role, data.Name, strings.ToLower(data.Email), data.Phone, data.Neighborhood, data.PasswordHash,
		data.TransportMethod, data.Points, data.Level, data.Badges, data.ClaimedCoupons, data.AverageRating,
		data.TotalDeliveries, data.DeliveryHistory, data.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func buildUserQuery(filter *model.UserFilter) (string, []any) {
	query := getUserBase
	args := make([]any, 0, 3)
	if filter == nil {
		return query, args
	}

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, strings.ToLower(filter.Email))
	}
	if filter.Role != "" {
		query += " AND role = ?"
		args = append(args, filter.Role)
	}
	return query, args
}

// Get returns the first matching user, or nil when none matches.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query, args := buildUserQuery(filter)

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List returns users in creation order.
func (s *SQL) List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error) {
	query, args := buildUserQuery(filter)
	query += " ORDER BY created_at, id"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var u model.UserEntity
		if err := rows.StructScan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetForUpdateTx locks the user row for the rest of tx. Returns nil when the user does not exist.
func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := tx.QueryRowxContext(ctx, getUserForUpdate, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// UpdateRewardsTx writes the hero reward fields.
func (s *SQL) UpdateRewardsTx(ctx context.Context, tx *sqlx.Tx, data *model.UserEntity) error {
	_, err := tx.ExecContext(ctx, updateRewardsQuery,
		data.Points, data.Level, data.Badges, data.ClaimedCoupons, data.AverageRating, data.TotalDeliveries, data.ID)
	return err
}

func (s *SQL) AppendDeliveryHistory(ctx context.Context, userID, requestID string) error {
	_, err := s.conn.ExecContext(ctx, appendHistoryQuery, requestID, userID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
