package context

import (
	"context"

	"github.com/muhammadheryan/food-hero/constant"
)

func GetUserID(ctx context.Context) (string, bool) {
	return getString(ctx, constant.UserIDKey)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

// GetRequestID returns the X-Request-ID assigned by the logging middleware.
func GetRequestID(ctx context.Context) (string, bool) {
	return getString(ctx, constant.RequestIDKey)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

func getString(ctx context.Context, key interface{}) (string, bool) {
	v, ok := ctx.Value(key).(string)
	return v, ok && v != ""
}
