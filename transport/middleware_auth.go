package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/package-crud/application/user"
	"github.com/muhammadheryan/package-crud/constant"
	utilsContext "github.com/muhammadheryan/package-crud/utils/context"
	"github.com/muhammadheryan/package-crud/utils/errors"
)

// protectedPaths require a valid bearer session
var protectedPaths = map[string]bool{
	"/user/update": true,
	"/user/delete": true,
	"/user/logout": true,
}

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// Only protected paths are checked; every other endpoint is public.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtectedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Validate token via UserApp
			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID into context
			ctx := utilsContext.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isProtectedPath(path string) bool {
	return protectedPaths[path]
}
