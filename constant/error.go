package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrDuplicateEmail
	ErrInvalidPassword
	ErrForbidden
	ErrInvalidTransition
	ErrCapacityExceeded
	ErrAlreadyRated
	ErrAlreadyClaimed
	ErrInsufficientPoints
	ErrTooManyRequests
	ErrAlreadyRewarded
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrDuplicateEmail:     "email already registered",
	ErrInvalidPassword:    "invalid email or password",
	ErrForbidden:          "action not allowed for this user",
	ErrInvalidTransition:  "request status does not allow this action",
	ErrCapacityExceeded:   "maximum 3 active requests allowed",
	ErrAlreadyRated:       "request already rated or not completed",
	ErrAlreadyClaimed:     "coupon already claimed",
	ErrInsufficientPoints: "insufficient points",
	ErrTooManyRequests:    "too many requests",
	ErrAlreadyRewarded:    "delivery already rewarded",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrDuplicateEmail:     http.StatusConflict,
	ErrInvalidPassword:    http.StatusBadRequest,
	ErrForbidden:          http.StatusForbidden,
	ErrInvalidTransition:  http.StatusConflict,
	ErrCapacityExceeded:   http.StatusConflict,
	ErrAlreadyRated:       http.StatusConflict,
	ErrAlreadyClaimed:     http.StatusConflict,
	ErrInsufficientPoints: http.StatusBadRequest,
	ErrTooManyRequests:    http.StatusTooManyRequests,
	ErrAlreadyRewarded:    http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrDuplicateEmail:     "0005",
	ErrInvalidPassword:    "0006",
	ErrForbidden:          "0007",
	ErrInvalidTransition:  "0008",
	ErrCapacityExceeded:   "0009",
	ErrAlreadyRated:       "0010",
	ErrAlreadyClaimed:     "0011",
	ErrInsufficientPoints: "0012",
	ErrTooManyRequests:    "0013",
	ErrAlreadyRewarded:    "0014",
}
