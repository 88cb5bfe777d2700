package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/food-hero/constant"
)

// FoodRequest represents the food_requests table entity
type FoodRequest struct {
	ID                 string                 `db:"id" json:"id"`
	RequesterID        string                 `db:"requester_id" json:"requester_id"`
	HeroID             *string                `db:"hero_id" json:"hero_id"`
	Status             constant.RequestStatus `db:"status" json:"status"`
	FoodType           constant.FoodType      `db:"food_type" json:"food_type"`
	Quantity           constant.Quantity      `db:"quantity" json:"quantity"`
	DeliveryAddress    string                 `db:"delivery_address" json:"delivery_address"`
	DeliveryLat        float64                `db:"delivery_lat" json:"delivery_lat"`
	DeliveryLng        float64                `db:"delivery_lng" json:"delivery_lng"`
	PreferredTimeStart time.Time              `db:"preferred_time_start" json:"preferred_time_start"`
	PreferredTimeEnd   time.Time              `db:"preferred_time_end" json:"preferred_time_end"`
	SpecialNotes       string                 `db:"special_notes" json:"special_notes"`
	ContactMethod      string                 `db:"contact_method" json:"contact_method"`
	Rating             *Rating                `db:"rating" json:"rating"`
	CreatedAt          time.Time              `db:"created_at" json:"created_at"`
	AcceptedAt         *time.Time             `db:"accepted_at" json:"accepted_at"`
	InProgressAt       *time.Time             `db:"in_progress_at" json:"in_progress_at"`
	CompletedAt        *time.Time             `db:"completed_at" json:"completed_at"`
	CancelledAt        *time.Time             `db:"cancelled_at" json:"cancelled_at"`
	CancelReason       *string                `db:"cancel_reason" json:"cancel_reason"`
	RewardedAt         *time.Time             `db:"rewarded_at" json:"rewarded_at,omitempty"`
}

// DeliveredBy reports whether heroID is the hero assigned to the request.
func (r *FoodRequest) DeliveredBy(heroID string) bool {
	return r.HeroID != nil && *r.HeroID == heroID
}

// Rating is left by the requester once per completed request.
type Rating struct {
	Stars       int                  `json:"stars"`
	Feedback    string               `json:"feedback"`
	Timeliness  constant.Timeliness  `json:"timeliness"`
	FoodQuality constant.FoodQuality `json:"food_quality"`
	CreatedAt   time.Time            `json:"created_at"`
}

func (r Rating) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *Rating) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported type %T for Rating", src)
	}
}

// RequestFilter for listing food requests; empty fields are ignored
type RequestFilter struct {
	Status      constant.RequestStatus
	RequesterID string
	HeroID      string
	ActiveOnly  bool
}

// StatusTransition describes a compare-and-swap status update: it only applies
// while the stored status still equals From.
type StatusTransition struct {
	RequestID    string
	From         constant.RequestStatus
	To           constant.RequestStatus
	At           time.Time
	HeroID       *string
	Rating       *Rating
	CancelReason *string
}

type CreateRequestRequest struct {
	FoodType           constant.FoodType `json:"food_type" validate:"required,oneof=produce canned_goods bread dairy mixed"`
	Quantity           constant.Quantity `json:"quantity" validate:"required,oneof=single family_2_4 family_5_plus"`
	DeliveryAddress    string            `json:"delivery_address" validate:"required,nonblank"`
	DeliveryLat        float64           `json:"delivery_lat" validate:"gte=-90,lte=90"`
	DeliveryLng        float64           `json:"delivery_lng" validate:"gte=-180,lte=180"`
	PreferredTimeStart time.Time         `json:"preferred_time_start" validate:"required"`
	PreferredTimeEnd   time.Time         `json:"preferred_time_end" validate:"required"`
	SpecialNotes       string            `json:"special_notes"`
	ContactMethod      string            `json:"contact_method" validate:"required,nonblank"`
}

type RatingRequest struct {
	Stars       int                  `json:"stars" validate:"required,min=1,max=5"`
	Feedback    string               `json:"feedback"`
	Timeliness  constant.Timeliness  `json:"timeliness" validate:"required,oneof=on_time slightly_late late"`
	FoodQuality constant.FoodQuality `json:"food_quality" validate:"required,oneof=good acceptable poor"`
}

type CancelRequestRequest struct {
	Reason string `json:"reason" validate:"required,nonblank"`
}

// CompleteResponse is returned when a hero completes a delivery.
type CompleteResponse struct {
	Request *FoodRequest    `json:"request"`
	Reward  *DeliveryReward `json:"reward,omitempty"`
}
