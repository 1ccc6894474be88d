package creem

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	go_json "github.com/goccy/go-json"
)

const (
	defaultErrorCategory = "Error"
	defaultErrorMessage  = "Unknown error"
)

// APIError is a non-2xx response from the Creem API. It is never retried
// when the response carried an error body.
type APIError struct {
	StatusCode int
	Category   string
	Messages   []string
	TraceID    string

	transient bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("creem api: %d %s: %s", e.StatusCode, e.Category, strings.Join(e.Messages, ", "))
}

func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// TransportError means no usable response was received after all attempts.
type TransportError struct {
	Method   string
	URL      string
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("creem transport: %s %s failed after %d attempt(s): %v", e.Method, e.URL, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Category:   defaultErrorCategory,
		Messages:   []string{defaultErrorMessage},
	}

	var fields map[string]go_json.RawMessage
	if err := go_json.Unmarshal(body, &fields); err != nil || fields == nil {
		apiErr.transient = isGatewayStatus(status)
		return apiErr
	}

	// Each field falls back on its own so one odd field never hides the others.
	if category := stringField(fields["error"]); category != "" {
		apiErr.Category = category
	}
	if msgs := messageField(fields["message"]); len(msgs) > 0 {
		apiErr.Messages = msgs
	}
	apiErr.TraceID = stringField(fields["trace_id"])

	return apiErr
}

// stringField reads a JSON string, or the literal text of a JSON number.
func stringField(raw go_json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := go_json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n go_json.Number
	if err := go_json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// messageField accepts "message": "x" and "message": ["x", "y"]. Non-string
// entries are skipped.
func messageField(raw go_json.RawMessage) []string {
	if s := stringField(raw); s != "" {
		return []string{s}
	}
	var list []go_json.RawMessage
	if err := go_json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	msgs := make([]string, 0, len(list))
	for _, item := range list {
		var s string
		if err := go_json.Unmarshal(item, &s); err == nil && s != "" {
			msgs = append(msgs, s)
		}
	}
	return msgs
}

func isGatewayStatus(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
