package events

import (
	"context"
	"errors"
	"log/slog"

	"github.com/asaskevich/EventBus"
	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/xslog"
)

// Listener handles one notification. A returned error or panic is logged
// and does not affect other listeners.
type Listener func(ctx context.Context, n webhook.Notification) error

// Bus delivers notifications synchronously to listeners in the order they
// subscribed. Listeners must not publish from within a delivery.
type Bus struct {
	bus EventBus.Bus
}

var _ webhook.Publisher = (*Bus)(nil)

func New() *Bus {
	return &Bus{bus: EventBus.New()}
}

func (b *Bus) Subscribe(kind webhook.Kind, l Listener) error {
	return b.bus.Subscribe(kind.String(), isolate(kind, l))
}

// SubscribeAll registers l for every kind.
func (b *Bus) SubscribeAll(l Listener) error {
	var errs []error
	for _, kind := range webhook.Kinds() {
		errs = append(errs, b.Subscribe(kind, l))
	}
	return errors.Join(errs...)
}

func (b *Bus) HasListeners(kind webhook.Kind) bool {
	return b.bus.HasCallback(kind.String())
}

func (b *Bus) Publish(ctx context.Context, n webhook.Notification) {
	if !b.HasListeners(n.Type()) {
		xslog.FromContext(ctx).DebugContext(ctx, "no listeners for notification", xslog.Kind(n.Type().String()))
		return
	}
	b.bus.Publish(n.Type().String(), ctx, n)
}

func isolate(kind webhook.Kind, l Listener) func(context.Context, webhook.Notification) {
	return func(ctx context.Context, n webhook.Notification) {
		logger := xslog.FromContext(ctx).With(xslog.Kind(kind.String()))

		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "notification listener panicked",
					xslog.ErrorGroupWithStack(r),
				)
			}
		}()

		if err := l(ctx, n); err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "notification listener failed", xslog.Error(err))
		}
	}
}
