package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/food-hero/application/user"
	"github.com/muhammadheryan/food-hero/constant"
	utilsContext "github.com/muhammadheryan/food-hero/utils/context"
	"github.com/muhammadheryan/food-hero/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (like /login, /register, /swagger/) without token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required).
// Internal routes carry their own API key check.
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || isInternalPath(path) {
		return true
	}
	switch path {
	case "/login", "/register", "/metrics":
		return true
	}
	return false
}

// isInternalPath matches service-to-service routes guarded by InternalMiddleware.
func isInternalPath(path string) bool {
	return strings.HasPrefix(path, "/internal/")
}
