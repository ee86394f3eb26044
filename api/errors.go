package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/go-aqua-client/internal/errors"
)

// StatusError is returned for every non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	// ErrorText is the "error" field of the JSON body, if any.
	ErrorText string
	// Message is the "message" field of the JSON body, if any.
	Message string
}

func newStatusError(method, path string, status int, body []byte) *StatusError {
	se := &StatusError{Method: method, Path: path, StatusCode: status}
	var fields struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &fields) == nil {
		se.ErrorText = fields.Error
		se.Message = fields.Message
	}
	return se
}

func (e *StatusError) Error() string {
	detail := e.ErrorText
	if detail == "" {
		detail = e.Message
	}
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, detail)
}

// Unwrap maps the status onto the shared error taxonomy.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return apperrors.ErrUnauthorized
	}
	return apperrors.ErrUnexpectedStatus
}

// IsUnauthorized reports whether err carries a 401 from the backend.
func IsUnauthorized(err error) bool {
	return apperrors.Is(err, apperrors.ErrUnauthorized)
}
