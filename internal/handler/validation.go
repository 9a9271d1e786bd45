package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

const (
	maxBodyBytes   = 1 << 20 // 1 MiB
	maxInputLength = 65536
)

var errBodyTooLarge = errors.New("request body too large")

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return err
	}
	return nil
}

// validateInputLength rejects string inputs longer than maxInputLength
// characters. Non-string values are left to the helpers.
func validateInputLength(field string, v any) error {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if utf8.RuneCountInString(s) > maxInputLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", field, maxInputLength)
	}
	return nil
}
