package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"strhelpers/internal/domain"
)

// Stats handles GET /v1/stats/{operation} requests.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	op, err := domain.ParseOperation(chi.URLParam(r, "operation"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, "not_found", "unknown operation")
		return
	}

	record, err := h.service.Usage(r.Context(), op)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "not_found", "operation has not been called")
			return
		}
		h.writeError(w, http.StatusInternalServerError, "internal_error", "failed to get stats")
		return
	}

	h.writeJSON(w, http.StatusOK, toUsageResponse(record))
}

// ListStats handles GET /v1/stats requests.
func (h *Handler) ListStats(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListUsage(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "internal_error", "failed to list stats")
		return
	}

	resp := UsageListResponse{Operations: make([]UsageResponse, 0, len(records))}
	for _, record := range records {
		resp.Operations = append(resp.Operations, toUsageResponse(record))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func toUsageResponse(record *domain.UsageRecord) UsageResponse {
	return UsageResponse{
		Operation:     string(record.Operation),
		Calls:         record.Calls,
		Failures:      record.Failures,
		FirstCalledAt: record.FirstCalledAt.UTC().Format(time.RFC3339),
		LastCalledAt:  record.LastCalledAt.UTC().Format(time.RFC3339),
	}
}
