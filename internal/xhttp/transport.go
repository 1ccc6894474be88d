package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/creem/internal/version"
)

type creemTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*creemTransport)(nil)

func (t *creemTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(UserAgent, version.UserAgent())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport wraps base with the standard outbound headers.
// A nil base uses http.DefaultTransport.
func NewTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &creemTransport{base: base}
}
