package webhook

import (
	"maps"
	"slices"
	"strconv"
	"time"

	go_json "github.com/goccy/go-json"
)

// UnknownEventID is used when a delivery carries no identifier.
const UnknownEventID = "evt_unknown"

type Kind uint8

const (
	KindCheckoutCompleted Kind = iota + 1
	KindDisputeCreated
	KindRefundCreated
	KindSubscriptionCreated
	KindSubscriptionActive
	KindSubscriptionPaid
	KindSubscriptionCanceled
	KindSubscriptionExpired
	KindSubscriptionPastDue
	KindSubscriptionPaused
	KindSubscriptionTrialing
	KindSubscriptionScheduledCancel
	KindSubscriptionUpdate
	KindPaymentFailed
	KindGrantAccess
	KindRevokeAccess
)

var kindNames = map[Kind]string{
	KindCheckoutCompleted:           "checkout_completed",
	KindDisputeCreated:              "dispute_created",
	KindRefundCreated:               "refund_created",
	KindSubscriptionCreated:         "subscription_created",
	KindSubscriptionActive:          "subscription_active",
	KindSubscriptionPaid:            "subscription_paid",
	KindSubscriptionCanceled:        "subscription_canceled",
	KindSubscriptionExpired:         "subscription_expired",
	KindSubscriptionPastDue:         "subscription_past_due",
	KindSubscriptionPaused:          "subscription_paused",
	KindSubscriptionTrialing:        "subscription_trialing",
	KindSubscriptionScheduledCancel: "subscription_scheduled_cancel",
	KindSubscriptionUpdate:          "subscription_update",
	KindPaymentFailed:               "payment_failed",
	KindGrantAccess:                 "grant_access",
	KindRevokeAccess:                "revoke_access",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Kinds returns every notification kind in declaration order.
func Kinds() []Kind {
	kinds := slices.Collect(maps.Keys(kindNames))
	slices.Sort(kinds)
	return kinds
}

var eventKinds = map[string]Kind{
	"checkout.completed":            KindCheckoutCompleted,
	"dispute.created":               KindDisputeCreated,
	"refund.created":                KindRefundCreated,
	"subscription.created":          KindSubscriptionCreated,
	"subscription.active":           KindSubscriptionActive,
	"subscription.paid":             KindSubscriptionPaid,
	"subscription.canceled":         KindSubscriptionCanceled,
	"subscription.expired":          KindSubscriptionExpired,
	"subscription.past_due":         KindSubscriptionPastDue,
	"subscription.paused":           KindSubscriptionPaused,
	"subscription.trialing":         KindSubscriptionTrialing,
	"subscription.scheduled_cancel": KindSubscriptionScheduledCancel,
	"subscription.updated":          KindSubscriptionUpdate,
	"subscription.update":           KindSubscriptionUpdate,
	"payment.failed":                KindPaymentFailed,
}

// Classify maps an event type to its primary notification kind.
func Classify(eventType string) (Kind, bool) {
	k, ok := eventKinds[eventType]
	return k, ok
}

func GrantsAccess(eventType string) bool {
	return eventType == "checkout.completed" || eventType == "subscription.paid"
}

func RevokesAccess(eventType string) bool {
	return eventType == "subscription.canceled" || eventType == "subscription.expired"
}

// Envelope is the canonical form of a delivery. CreatedAt is epoch millis.
type Envelope struct {
	ID        string         `json:"id"`
	EventType string         `json:"event_type"`
	CreatedAt int64          `json:"created_at"`
	Object    map[string]any `json:"object"`
}

// Notification is implemented by EventNotification and AccessNotification only.
type Notification interface {
	Type() Kind
	isNotification()
}

// EventNotification is published once for every recognized event type.
type EventNotification struct {
	Kind     Kind
	Envelope Envelope
}

func (n EventNotification) Type() Kind    { return n.Kind }
func (EventNotification) isNotification() {}

// AccessNotification is derived from checkout, payment, cancellation and
// expiry events. Payload is the delivery as received, not the envelope.
type AccessNotification struct {
	Kind      Kind
	EventType string
	Customer  map[string]any
	Metadata  map[string]any
	Payload   map[string]any
}

func (n AccessNotification) Type() Kind    { return n.Kind }
func (AccessNotification) isNotification() {}

func normalize(raw map[string]any, eventType string, now time.Time) Envelope {
	data, _ := raw["data"].(map[string]any)
	if data == nil {
		data = map[string]any{}
	}

	id, ok := stringID(data["id"])
	if !ok {
		id, ok = stringID(raw["id"])
	}
	if !ok {
		id = UnknownEventID
	}

	createdAt, ok := millis(raw["created_at"])
	if !ok {
		createdAt = now.UnixMilli()
	}

	return Envelope{
		ID:        id,
		EventType: eventType,
		CreatedAt: createdAt,
		Object:    data,
	}
}

func derive(kind Kind, eventType string, object map[string]any, raw map[string]any) AccessNotification {
	return AccessNotification{
		Kind:      kind,
		EventType: eventType,
		Customer:  objectField(object, "customer"),
		Metadata:  objectField(object, "metadata"),
		Payload:   raw,
	}
}

func objectField(object map[string]any, key string) map[string]any {
	if m, ok := object[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func stringID(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case go_json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

func millis(v any) (int64, bool) {
	switch t := v.(type) {
	case go_json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		if f, err := t.Float64(); err == nil {
			return int64(f), true
		}
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
