package model

import (
	"time"

	"github.com/muhammadheryan/food-hero/constant"
)

// UserEntity represents the users table entity. Hero and requester share one row shape;
// hero-only columns stay at their zero values for requesters and vice versa.
type UserEntity struct {
	ID              string                   `db:"id" json:"id"`
	Role            constant.UserRole        `db:"role" json:"role"`
	Name            string                   `db:"name" json:"name"`
	Email           string                   `db:"email" json:"email"`
	Phone           string                   `db:"phone" json:"phone"`
	Neighborhood    string                   `db:"neighborhood" json:"neighborhood"`
	PasswordHash    string                   `db:"password_hash" json:"-"`
	TransportMethod constant.TransportMethod `db:"transport_method" json:"transport_method,omitempty"`
	Points          int64                    `db:"points" json:"points"`
	Level           int                      `db:"level" json:"level"`
	Badges          StringList               `db:"badges" json:"badges"`
	ClaimedCoupons  StringList               `db:"claimed_coupons" json:"claimed_coupons"`
	AverageRating   float64                  `db:"average_rating" json:"average_rating"`
	TotalDeliveries int                      `db:"total_deliveries" json:"total_deliveries"`
	DeliveryHistory StringList               `db:"delivery_history" json:"delivery_history"`
	CreatedAt       time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time               `db:"updated_at" json:"updated_at,omitempty"`
}

func (u *UserEntity) IsHero() bool {
	return u != nil && u.Role == constant.UserRoleHero
}

func (u *UserEntity) IsRequester() bool {
	return u != nil && u.Role == constant.UserRoleRequester
}

// UserFilter for querying users
type UserFilter struct {
	ID    string
	Email string
	Role  constant.UserRole
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name            string                   `json:"name" validate:"required,nonblank"`
	Email           string                   `json:"email" validate:"required,email"`
	Phone           string                   `json:"phone" validate:"required"`
	Password        string                   `json:"password" validate:"required,min=6"`
	Neighborhood    string                   `json:"neighborhood" validate:"required,nonblank"`
	Role            constant.UserRole        `json:"role" validate:"required,oneof=hero requester"`
	TransportMethod constant.TransportMethod `json:"transport_method" validate:"omitempty,oneof=car bike walking transit"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Role  constant.UserRole `json:"role"`
	Token string            `json:"token"`
}

type RegisterResponse struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Email string            `json:"email"`
	Role  constant.UserRole `json:"role"`
}

// ExportData is a full dump of both collections.
type ExportData struct {
	Users    []UserEntity  `json:"users"`
	Requests []FoodRequest `json:"requests"`
}
