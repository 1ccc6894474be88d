package creem

import (
	"context"
	"net/url"
)

type productService struct {
	client *Client
}

func (s *productService) Create(ctx context.Context, body Object) (Object, error) {
	const route = "/products"
	return s.client.post(ctx, route, body)
}

func (s *productService) Get(ctx context.Context, productID string) (Object, error) {
	const route = "/products"
	return s.client.get(ctx, route, url.Values{"product_id": {productID}})
}

func (s *productService) List(ctx context.Context, page int, pageSize int) (Object, error) {
	const route = "/products/search"
	return s.client.get(ctx, route, pageValues(paramPageNumber, paramPageSize, page, pageSize))
}
