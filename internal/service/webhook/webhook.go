package webhook

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/garrettladley/creem/internal/xslog"
	go_json "github.com/goccy/go-json"
)

type Processor struct {
	publisher Publisher
	now       func() time.Time
}

var _ Service = (*Processor)(nil)

type ProcessorOption func(*Processor)

// WithClock overrides the time source used for missing timestamps.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *Processor) { p.now = now }
}

func NewProcessor(publisher Publisher, opts ...ProcessorOption) *Processor {
	p := &Processor{
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Processor) ProcessWebhook(ctx context.Context, body []byte) (Result, error) {
	logger := xslog.FromContext(ctx)

	raw, err := decode(body)
	if err != nil {
		return Result{}, err
	}

	eventType := eventTypeOf(raw)
	if eventType == "" {
		logger.WarnContext(ctx, "creem webhook received without event type", xslog.Payload(raw))
		return Result{}, ErrMissingEventType
	}

	result := Result{EventType: eventType}

	kind, ok := Classify(eventType)
	if !ok {
		logger.InfoContext(ctx, "unhandled creem webhook event",
			xslog.EventType(eventType),
			xslog.Payload(raw),
		)
		return result, nil
	}
	result.Known = true

	envelope := normalize(raw, eventType, p.now())

	notifications := []Notification{EventNotification{Kind: kind, Envelope: envelope}}
	if GrantsAccess(eventType) {
		notifications = append(notifications, derive(KindGrantAccess, eventType, envelope.Object, raw))
	}
	if RevokesAccess(eventType) {
		notifications = append(notifications, derive(KindRevokeAccess, eventType, envelope.Object, raw))
	}

	for _, n := range notifications {
		p.publisher.Publish(ctx, n)
		result.Published++
	}

	logger.InfoContext(ctx, "processed webhook",
		xslog.WebhookGroup(eventType, envelope.ID, result.Published),
	)

	return result, nil
}

// decode requires body to be exactly one JSON object; trailing data is rejected.
func decode(body []byte) (map[string]any, error) {
	if !go_json.Valid(body) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidPayload)
	}

	dec := go_json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if raw == nil {
		return nil, ErrInvalidPayload
	}
	return raw, nil
}

// eventTypeOf prefers the current eventType field over the legacy event field.
func eventTypeOf(raw map[string]any) string {
	for _, key := range [...]string{"eventType", "event"} {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
