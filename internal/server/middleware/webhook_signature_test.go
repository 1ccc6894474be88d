package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/xcontext"
)

type stubVerifier struct {
	err         error
	gotProfile  string
	gotBody     string
	gotSig      string
	invocations int
}

func (s *stubVerifier) Verify(profile string, body []byte, signature string) error {
	s.invocations++
	s.gotProfile = profile
	s.gotBody = string(body)
	s.gotSig = signature
	return s.err
}

func TestVerifyWebhookRestoresBody(t *testing.T) {
	t.Parallel()

	const body = `{"eventType":"checkout.completed"}`
	v := &stubVerifier{}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen = string(b)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/creem/webhook", strings.NewReader(body))
	req.Header.Set("creem-signature", "abc")

	rec := httptest.NewRecorder()
	VerifyWebhook(v, "creem-signature")(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if seen != body {
		t.Errorf("next handler saw body %q, want %q", seen, body)
	}
	if v.gotBody != body || v.gotSig != "abc" || v.gotProfile != "default" {
		t.Errorf("verifier got profile=%q body=%q sig=%q", v.gotProfile, v.gotBody, v.gotSig)
	}
}

func TestVerifyWebhookProfileFromRoute(t *testing.T) {
	t.Parallel()

	v := &stubVerifier{}
	var fromCtx string
	mux := http.NewServeMux()
	mux.Handle("POST /hooks/{profile}", VerifyWebhook(v, "creem-signature")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		fromCtx, _ = xcontext.GetProfile(r.Context())
	})))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hooks/eu", strings.NewReader(`{}`)))

	if v.gotProfile != "eu" {
		t.Errorf("verified profile = %q, want eu", v.gotProfile)
	}
	if fromCtx != "eu" {
		t.Errorf("context profile = %q, want eu", fromCtx)
	}
}

func TestVerifyWebhookStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "secret not configured", err: webhook.ErrSecretNotConfigured, wantStatus: http.StatusInternalServerError},
		{name: "missing signature", err: webhook.ErrMissingSignature, wantStatus: http.StatusUnauthorized},
		{name: "invalid signature", err: webhook.ErrInvalidSignature, wantStatus: http.StatusForbidden},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/creem/webhook", strings.NewReader(`{}`))
			VerifyWebhook(&stubVerifier{err: tt.err}, "creem-signature")(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called {
				t.Error("next handler ran for an unverified request")
			}
		})
	}
}
