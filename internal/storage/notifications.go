package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/garrettladley/creem/internal/events"
	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/xcontext"
	"github.com/garrettladley/creem/internal/xslog"
	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix = "creem:notifications:"

	// publishTimeout bounds a single forward; the bus is blocked while it runs.
	publishTimeout = 2 * time.Second
)

// Channel is the pub/sub channel notifications of kind are forwarded to.
func Channel(kind webhook.Kind) string {
	return channelPrefix + kind.String()
}

// Message is the wire form of a forwarded notification. Event notifications
// fill ID, CreatedAt and Object; access notifications fill Customer,
// Metadata and Payload.
type Message struct {
	Kind        string         `json:"kind"`
	EventType   string         `json:"event_type"`
	Profile     string         `json:"profile,omitempty"`
	ID          string         `json:"id,omitempty"`
	CreatedAt   int64          `json:"created_at,omitempty"`
	Object      map[string]any `json:"object,omitempty"`
	Customer    map[string]any `json:"customer,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
	ForwardedAt time.Time      `json:"forwarded_at"`
}

func NewMessage(n webhook.Notification, now time.Time) Message {
	m := Message{Kind: n.Type().String(), ForwardedAt: now.UTC()}
	switch n := n.(type) {
	case webhook.EventNotification:
		m.EventType = n.Envelope.EventType
		m.ID = n.Envelope.ID
		m.CreatedAt = n.Envelope.CreatedAt
		m.Object = n.Envelope.Object
	case webhook.AccessNotification:
		m.EventType = n.EventType
		m.Customer = n.Customer
		m.Metadata = n.Metadata
		m.Payload = n.Payload
	}
	return m
}

type publishClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisPublisher forwards notifications to Redis pub/sub so processes other
// than the webhook server can react to them.
type RedisPublisher struct {
	client  publishClient
	now     func() time.Time
	timeout time.Duration
}

func NewRedisPublisher(client publishClient) *RedisPublisher {
	return &RedisPublisher{client: client, now: time.Now, timeout: publishTimeout}
}

// Publish forwards n, tagged with the profile it was received on.
func (p *RedisPublisher) Publish(ctx context.Context, n webhook.Notification) error {
	m := NewMessage(n, p.now())
	m.Profile, _ = xcontext.GetProfile(ctx)

	data, err := go_json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	channel := Channel(n.Type())
	receivers, err := p.client.Publish(publishCtx, channel, string(data)).Result()
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	xslog.FromContext(ctx).DebugContext(ctx, "forwarded notification",
		xslog.Channel(channel),
		xslog.Count(int(receivers)),
	)
	return nil
}

// Listener adapts p for registration on an events.Bus.
func (p *RedisPublisher) Listener() events.Listener {
	return p.Publish
}

// Subscribe streams forwarded messages for kinds, or for every kind when
// none are given. The returned function must be called to unsubscribe.
func Subscribe(ctx context.Context, client *redis.Client, kinds ...webhook.Kind) (<-chan Message, func(), error) {
	var pubsub *redis.PubSub
	if len(kinds) == 0 {
		pubsub = client.PSubscribe(ctx, channelPrefix+"*")
	} else {
		channels := make([]string, len(kinds))
		for i, k := range kinds {
			channels[i] = Channel(k)
		}
		pubsub = client.Subscribe(ctx, channels...)
	}

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	msgCh := make(chan Message)

	go func() {
		defer close(msgCh)
		ch := pubsub.Channel()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var m Message
				if err := go_json.Unmarshal([]byte(msg.Payload), &m); err != nil {
					continue
				}
				select {
				case msgCh <- m:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	unsubscribe := func() {
		_ = pubsub.Close()
	}

	return msgCh, unsubscribe, nil
}
