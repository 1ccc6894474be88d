package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/creem/internal/config"
	"github.com/garrettladley/creem/internal/events"
	"github.com/garrettladley/creem/internal/profile"
	"github.com/garrettladley/creem/internal/server"
	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/xslog"
)

func TestSendTestWebhookAccepted(t *testing.T) {
	t.Parallel()

	const (
		secret = "whsec_cli"
		header = "X-Creem-Signature"
	)

	bus := events.New()
	p := webhook.NewProcessor(bus)
	var (
		mu    sync.Mutex
		kinds []webhook.Kind
	)
	if err := bus.SubscribeAll(func(_ context.Context, n webhook.Notification) error {
		mu.Lock()
		defer mu.Unlock()
		kinds = append(kinds, n.Type())
		return nil
	}); err != nil {
		t.Fatalf("SubscribeAll: %v", err)
	}

	h := server.NewHandler(server.Options{
		Logger:          xslog.Discard(),
		SignatureHeader: header,
		Verifier: webhook.NewVerifier(profile.NewResolver(map[string]profile.Credentials{
			profile.DefaultProfile: {APIKey: "k", WebhookSecret: secret},
		})),
		Service: p,
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	status, body, err := sendTestWebhook(t.Context(), srv.URL+server.DefaultWebhookPath, header, secret, testPayload("subscription.paid", time.Now()))
	if err != nil {
		t.Fatalf("sendTestWebhook: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []webhook.Kind{webhook.KindSubscriptionPaid, webhook.KindGrantAccess}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestSendTestWebhookWrongSecret(t *testing.T) {
	t.Parallel()

	h := server.NewHandler(server.Options{
		Logger: xslog.Discard(),
		Verifier: webhook.NewVerifier(profile.NewResolver(map[string]profile.Credentials{
			profile.DefaultProfile: {APIKey: "k", WebhookSecret: "right"},
		})),
		Service: webhook.NewProcessor(events.New()),
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	status, _, err := sendTestWebhook(t.Context(), srv.URL+server.DefaultWebhookPath, server.DefaultSignatureHeader, "wrong", testPayload("checkout.completed", time.Now()))
	if err != nil {
		t.Fatalf("sendTestWebhook: %v", err)
	}
	if status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", status)
	}
}

func TestTestPayloadShape(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1_700_000_000_123)
	p := testPayload("refund.created", now)

	if p["event"] != "refund.created" {
		t.Errorf("event = %v", p["event"])
	}
	if p["created_at"] != now.UnixMilli() {
		t.Errorf("created_at = %v", p["created_at"])
	}
	data, ok := p["data"].(map[string]any)
	if !ok || data["object"] != "test_object" {
		t.Errorf("data = %v", p["data"])
	}
}

func TestLocalWebhookURL(t *testing.T) {
	t.Parallel()

	cfg, err := config.ReadFrom(map[string]string{"PORT": "9000", "CREEM_WEBHOOK_PATH": "/hooks/creem/"})
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	tests := []struct {
		profile string
		want    string
	}{
		{profile: profile.DefaultProfile, want: "http://localhost:9000/hooks/creem"},
		{profile: "eu", want: "http://localhost:9000/hooks/creem/eu"},
	}
	for _, tt := range tests {
		if got := localWebhookURL(cfg, tt.profile); got != tt.want {
			t.Errorf("localWebhookURL(%q) = %q, want %q", tt.profile, got, tt.want)
		}
	}
}

func TestParseKinds(t *testing.T) {
	t.Parallel()

	kinds, err := parseKinds([]string{"grant_access", "checkout_completed"})
	if err != nil {
		t.Fatalf("parseKinds: %v", err)
	}
	if diff := cmp.Diff([]webhook.Kind{webhook.KindGrantAccess, webhook.KindCheckoutCompleted}, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	if _, err := parseKinds([]string{"checkout.completed"}); err == nil {
		t.Error("expected error for event type passed as kind")
	}
}
