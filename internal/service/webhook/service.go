package webhook

import (
	"context"
	"errors"
)

var (
	ErrSecretNotConfigured = errors.New("webhook secret not configured")
	ErrMissingSignature    = errors.New("missing signature header")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrMissingEventType    = errors.New("event type missing")
	ErrInvalidPayload      = errors.New("invalid webhook payload")
)

// Publisher delivers notifications to subscribers. Implementations must not
// let a subscriber failure escape Publish.
type Publisher interface {
	Publish(ctx context.Context, n Notification)
}

type Result struct {
	EventType string
	Known     bool
	Published int
}

type Service interface {
	// ProcessWebhook normalizes a verified body and publishes its notifications.
	// Returns ErrInvalidPayload if body is not a JSON object.
	// Returns ErrMissingEventType if neither eventType nor event is set.
	// An unrecognized event type is not an error; Result.Known is false.
	ProcessWebhook(ctx context.Context, body []byte) (Result, error)
}
