package creem

import (
	"context"
	"net/url"
)

type UpdateBehavior string

const (
	ProrationChargeImmediately UpdateBehavior = "proration-charge-immediately"
	ProrationCharge            UpdateBehavior = "proration-charge"
	ProrationNone              UpdateBehavior = "proration-none"
)

type subscriptionService struct {
	client *Client
}

func subscriptionPath(subscriptionID string, action string) string {
	p := "/subscriptions/" + url.PathEscape(subscriptionID)
	if action != "" {
		p += "/" + action
	}
	return p
}

func (s *subscriptionService) List(ctx context.Context, page int, limit int) (Object, error) {
	const route = "/subscriptions"
	return s.client.get(ctx, route, pageValues("page", "limit", page, limit))
}

func (s *subscriptionService) Get(ctx context.Context, subscriptionID string) (Object, error) {
	const route = "/subscriptions"
	return s.client.get(ctx, route, url.Values{"subscription_id": {subscriptionID}})
}

func (s *subscriptionService) Cancel(ctx context.Context, subscriptionID string, atPeriodEnd bool) (Object, error) {
	return s.client.post(ctx, subscriptionPath(subscriptionID, "cancel"), Object{"at_period_end": atPeriodEnd})
}

func (s *subscriptionService) Pause(ctx context.Context, subscriptionID string) (Object, error) {
	return s.client.post(ctx, subscriptionPath(subscriptionID, "pause"), Object{})
}

func (s *subscriptionService) Resume(ctx context.Context, subscriptionID string) (Object, error) {
	return s.client.post(ctx, subscriptionPath(subscriptionID, "resume"), Object{})
}

// Upgrade moves a subscription to productID. An empty behavior means
// proration-charge-immediately.
func (s *subscriptionService) Upgrade(ctx context.Context, subscriptionID string, productID string, behavior UpdateBehavior) (Object, error) {
	if behavior == "" {
		behavior = ProrationChargeImmediately
	}
	return s.client.post(ctx, subscriptionPath(subscriptionID, "upgrade"), Object{
		"product_id":      productID,
		"update_behavior": string(behavior),
	})
}

func (s *subscriptionService) Update(ctx context.Context, subscriptionID string, body Object) (Object, error) {
	return s.client.post(ctx, subscriptionPath(subscriptionID, ""), body)
}
