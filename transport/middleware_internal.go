package transport

import (
	"net/http"

	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/utils/errors"
)

// InternalMiddleware checks for static API key in header. An empty key rejects every request.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if apiKey == "" || !ok || token != apiKey {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
