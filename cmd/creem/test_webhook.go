package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/garrettladley/creem/internal/config"
	"github.com/garrettladley/creem/internal/profile"
	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/theme"
	"github.com/garrettladley/creem/internal/xhttp"
)

const defaultTestEvent = "checkout.completed"

func testWebhookCmd() *cobra.Command {
	var (
		profileName string
		targetURL   string
	)

	cmd := &cobra.Command{
		Use:   "test-webhook [event]",
		Short: "Send a signed test webhook to a running receiver",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := defaultTestEvent
			if len(args) == 1 {
				event = args[0]
			}

			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			secret := cfg.Resolver().WebhookSecret(profileName)
			if secret == "" {
				return fmt.Errorf("webhook secret not configured for profile: %s", profileName)
			}

			if targetURL == "" {
				targetURL = localWebhookURL(cfg, profileName)
			}

			t := theme.New()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, t.Field("Sending test webhook to", targetURL))
			_, _ = fmt.Fprintln(out, t.Field("Event type", event))

			status, body, err := sendTestWebhook(cmd.Context(), targetURL, cfg.Webhook.SignatureHeader, secret, testPayload(event, time.Now()))
			if err != nil {
				_, _ = fmt.Fprintln(out, t.Failure("Failed to send webhook: "+err.Error()))
				return err
			}
			if !xhttp.IsSuccess(status) {
				_, _ = fmt.Fprintln(out, t.Failure(fmt.Sprintf("Webhook failed with status: %d", status)))
				_, _ = fmt.Fprintln(out, t.Base().Render(body))
				return fmt.Errorf("webhook rejected with status %d", status)
			}

			_, _ = fmt.Fprintln(out, t.Success("Webhook processed successfully"))
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", profile.DefaultProfile, "configuration profile to sign with")
	cmd.Flags().StringVar(&targetURL, "url", "", "receiver URL (default: local server and configured webhook path)")

	return cmd
}

func localWebhookURL(cfg config.Config, profileName string) string {
	u := "http://localhost:" + cfg.Port + strings.TrimRight(cfg.Webhook.Path, "/")
	if profileName != profile.DefaultProfile {
		u += "/" + profileName
	}
	return u
}

// testPayload uses the legacy delivery shape so both envelope readers stay exercised.
func testPayload(event string, now time.Time) map[string]any {
	return map[string]any{
		"event":      event,
		"id":         "test_" + uuid.NewString(),
		"created_at": now.UnixMilli(),
		"data": map[string]any{
			"object": "test_object",
			"id":     "test_id_" + uuid.NewString(),
		},
	}
}

func sendTestWebhook(ctx context.Context, url string, header string, secret string, payload map[string]any) (int, string, error) {
	body, err := go_json.Marshal(payload)
	if err != nil {
		return 0, "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	xhttp.SetRequestHeadersJSON(req)
	req.Header.Set(header, webhook.Sign(body, secret))

	client := xhttp.NewHTTPClient(xhttp.WithTimeout(10 * time.Second))
	resp, err := client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, string(respBody), nil
}
