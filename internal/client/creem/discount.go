package creem

import (
	"context"
	"net/url"
)

type discountService struct {
	client *Client
}

func (s *discountService) Create(ctx context.Context, body Object) (Object, error) {
	const route = "/discounts"
	return s.client.post(ctx, route, body)
}

func (s *discountService) Get(ctx context.Context, discountID string) (Object, error) {
	const route = "/discounts"
	return s.client.get(ctx, route, url.Values{"discount_id": {discountID}})
}

func (s *discountService) GetByCode(ctx context.Context, code string) (Object, error) {
	const route = "/discounts"
	return s.client.get(ctx, route, url.Values{"discount_code": {code}})
}

func (s *discountService) Delete(ctx context.Context, discountID string) (Object, error) {
	return s.client.delete(ctx, "/discounts/"+url.PathEscape(discountID)+"/delete", nil)
}
