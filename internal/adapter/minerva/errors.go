package minerva

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/heartmarshall/minervactl/internal/domain"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status int
	// Detail is the server's "detail" (or "mensaje") message, else the
	// compacted JSON body. Empty when the body is not JSON.
	Detail string
	Body   string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("status %d", e.Status)
}

// UserMessage is the text shown to the operator after the failure label.
func (e *APIError) UserMessage() string { return e.Detail }

// Unwrap maps the status to a domain sentinel.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return domain.ErrValidation
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{
		Status: status,
		Detail: extractDetail(body),
		Body:   string(body),
	}
}

func extractDetail(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		return ""
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"detail", "mensaje"} {
			raw, ok := obj[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				return s
			}
			return compact(raw)
		}
	}
	return compact(body)
}

func compact(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
