package constant

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAccepted   RequestStatus = "accepted"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// MaxActiveRequests caps how many accepted or in-progress requests a hero may hold.
const MaxActiveRequests = 3

// ExpiredCancelReason is recorded when a request is cancelled because nobody accepted it in time.
const ExpiredCancelReason = "expired: no hero accepted the request before the preferred window ended"

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:    {RequestStatusAccepted, RequestStatusCancelled},
	RequestStatusAccepted:   {RequestStatusInProgress, RequestStatusCancelled},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusCancelled},
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to RequestStatus) bool {
	for _, s := range requestTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// IsActive reports whether the status counts toward a hero's active cap.
func (s RequestStatus) IsActive() bool {
	return s == RequestStatusAccepted || s == RequestStatusInProgress
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

type FoodType string

const (
	FoodTypeProduce     FoodType = "produce"
	FoodTypeCannedGoods FoodType = "canned_goods"
	FoodTypeBread       FoodType = "bread"
	FoodTypeDairy       FoodType = "dairy"
	FoodTypeMixed       FoodType = "mixed"
)

type Quantity string

const (
	QuantitySingle      Quantity = "single"
	QuantityFamily2To4  Quantity = "family_2_4"
	QuantityFamily5Plus Quantity = "family_5_plus"
)

// IsFamilySize reports whether the quantity counts toward the full cart badge.
func (q Quantity) IsFamilySize() bool {
	return q == QuantityFamily2To4 || q == QuantityFamily5Plus
}

type Timeliness string

const (
	TimelinessOnTime       Timeliness = "on_time"
	TimelinessSlightlyLate Timeliness = "slightly_late"
	TimelinessLate         Timeliness = "late"
)

type FoodQuality string

const (
	FoodQualityGood       FoodQuality = "good"
	FoodQualityAcceptable FoodQuality = "acceptable"
	FoodQualityPoor       FoodQuality = "poor"
)
