package creem

import (
	"context"
	"net/url"
)

type checkoutService struct {
	client *Client
}

func (s *checkoutService) Create(ctx context.Context, body Object) (Object, error) {
	const route = "/checkouts"
	return s.client.post(ctx, route, body)
}

func (s *checkoutService) Get(ctx context.Context, checkoutID string) (Object, error) {
	const route = "/checkouts"
	return s.client.get(ctx, route, url.Values{"checkout_id": {checkoutID}})
}
