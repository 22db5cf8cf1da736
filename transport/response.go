package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/model"
	"github.com/muhammadheryan/package-crud/utils/errors"
	"github.com/muhammadheryan/package-crud/utils/logger"
	"go.uber.org/zap"
)

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeError maps a CustomError to its HTTP status and code. Any other error is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), model.ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("[writeJSON] err encode response", zap.String("error", err.Error()))
	}
}
