package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"strhelpers/internal/domain"
	"strhelpers/pkg/strutil"
)

// HelperService defines the service interface.
// This allows testing handlers without real service implementation.
type HelperService interface {
	Capitalize(ctx context.Context, text any) (string, error)
	ExtractDigits(ctx context.Context, text any) (string, error)
	Truncate(ctx context.Context, text any, limit *int) (string, error)
	GroupDigits(ctx context.Context, digits any, format string) (string, error)
	ValidateExpiry(ctx context.Context, expiry any) strutil.ExpiryResult
	Usage(ctx context.Context, op domain.Operation) (*domain.UsageRecord, error)
	ListUsage(ctx context.Context) ([]*domain.UsageRecord, error)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	service HelperService
}

// New creates a new Handler with the given dependencies.
func New(service HelperService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// writeHelperError reports a helper failure. Input errors carry their kind
// as the error code; anything else is an internal error.
func (h *Handler) writeHelperError(w http.ResponseWriter, err error) {
	var helperErr *strutil.Error
	if errors.As(err, &helperErr) {
		h.writeError(w, http.StatusBadRequest, string(helperErr.Kind), helperErr.Error())
		return
	}
	h.writeError(w, http.StatusInternalServerError, "internal_error", "helper failed")
}

func (h *Handler) writeResult(w http.ResponseWriter, result string, err error) {
	if err != nil {
		h.writeHelperError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ResultResponse{Result: result})
}
