package handler

// === Requests ===

// Text fields are decoded as any so that non-string JSON values reach the
// helpers' own type checks.

// TextRequest is the body of POST /v1/capitalize and POST /v1/digits.
type TextRequest struct {
	Text any `json:"text"`
}

// TruncateRequest is the body of POST /v1/truncate. A missing limit uses the configured default.
type TruncateRequest struct {
	Text  any  `json:"text"`
	Limit *int `json:"limit,omitempty"`
}

// GroupRequest is the body of POST /v1/group. Format is "indian" (default) or "international".
type GroupRequest struct {
	Digits any    `json:"digits"`
	Format string `json:"format,omitempty"`
}

// ExpiryRequest is the body of POST /v1/card-expiry.
type ExpiryRequest struct {
	Expiry any `json:"expiry"`
}

// === Responses ===

// ResultResponse carries the output of a string helper.
type ResultResponse struct {
	Result string `json:"result"`
}

// ExpiryResponse reports a card expiry check. Error is null when Status is true.
type ExpiryResponse struct {
	Status bool    `json:"status"`
	Error  *string `json:"error"`
}

// UsageResponse is the usage ledger entry of one operation.
type UsageResponse struct {
	Operation     string `json:"operation"`
	Calls         int64  `json:"calls"`
	Failures      int64  `json:"failures"`
	FirstCalledAt string `json:"first_called_at"`
	LastCalledAt  string `json:"last_called_at"`
}

// UsageListResponse lists the usage of every operation called so far.
type UsageListResponse struct {
	Operations []UsageResponse `json:"operations"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
