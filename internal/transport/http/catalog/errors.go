package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shopease/catalog-service/internal/app/catalog/domain"
)

// jsonError is the error payload shape; Code is a stable machine-readable
// category, Detail a bounded human-readable message.
type jsonError struct {
	Code   string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, jsonError{Code: code, Detail: detail})
}

// respondError translates application errors into status codes.
// Every failure kind maps to a distinguishable response category.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.logger.Warn("request failed",
		zap.String("op", op),
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "timeout", err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", err.Error())
	case errors.Is(err, domain.ErrDataIntegrity):
		writeError(w, http.StatusInternalServerError, "data_integrity_error", err.Error())
	case errors.Is(err, domain.ErrStoreOperation):
		writeError(w, http.StatusInternalServerError, "store_operation_failed", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}
