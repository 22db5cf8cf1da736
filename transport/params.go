package transport

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/utils/errors"
)

// queryString returns the named query parameter. A present but empty value is accepted.
func queryString(r *http.Request, key string) (string, error) {
	values, ok := r.URL.Query()[key]
	if !ok || len(values) == 0 {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return values[0], nil
}

func queryInt64(r *http.Request, key string) (int64, error) {
	raw, err := queryString(r, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return v, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	raw, err := queryString(r, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return v, nil
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(auth, "Bearer ")
	return token, token != ""
}
