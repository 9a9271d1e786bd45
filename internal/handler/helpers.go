package handler

import (
	"errors"
	"net/http"
)

// decodeRequest decodes the body and writes the error response itself.
// It returns false when the handler should stop.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", err.Error())
			return false
		}
		h.writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return false
	}
	return true
}

func (h *Handler) checkLength(w http.ResponseWriter, field string, v any) bool {
	if err := validateInputLength(field, v); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return false
	}
	return true
}

// Capitalize handles POST /v1/capitalize requests.
func (h *Handler) Capitalize(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !h.decodeRequest(w, r, &req) || !h.checkLength(w, "text", req.Text) {
		return
	}

	result, err := h.service.Capitalize(r.Context(), req.Text)
	h.writeResult(w, result, err)
}

// Digits handles POST /v1/digits requests.
func (h *Handler) Digits(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !h.decodeRequest(w, r, &req) || !h.checkLength(w, "text", req.Text) {
		return
	}

	result, err := h.service.ExtractDigits(r.Context(), req.Text)
	h.writeResult(w, result, err)
}

// Truncate handles POST /v1/truncate requests.
func (h *Handler) Truncate(w http.ResponseWriter, r *http.Request) {
	var req TruncateRequest
	if !h.decodeRequest(w, r, &req) || !h.checkLength(w, "text", req.Text) {
		return
	}

	result, err := h.service.Truncate(r.Context(), req.Text, req.Limit)
	h.writeResult(w, result, err)
}

// Group handles POST /v1/group requests.
func (h *Handler) Group(w http.ResponseWriter, r *http.Request) {
	var req GroupRequest
	if !h.decodeRequest(w, r, &req) || !h.checkLength(w, "digits", req.Digits) {
		return
	}

	result, err := h.service.GroupDigits(r.Context(), req.Digits, req.Format)
	h.writeResult(w, result, err)
}

// CardExpiry handles POST /v1/card-expiry requests.
// Invalid and expired inputs are normal results and still return 200.
func (h *Handler) CardExpiry(w http.ResponseWriter, r *http.Request) {
	var req ExpiryRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	result := h.service.ValidateExpiry(r.Context(), req.Expiry)

	resp := ExpiryResponse{Status: result.Status}
	if !result.Status {
		reason := result.Reason
		resp.Error = &reason
	}

	h.writeJSON(w, http.StatusOK, resp)
}
