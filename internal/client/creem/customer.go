package creem

import (
	"context"
	"fmt"
	"net/url"
)

type customerService struct {
	client *Client
}

func (s *customerService) Get(ctx context.Context, customerID string) (Object, error) {
	const route = "/customers"
	return s.client.get(ctx, route, url.Values{"customer_id": {customerID}})
}

func (s *customerService) GetByEmail(ctx context.Context, email string) (Object, error) {
	const route = "/customers"
	return s.client.get(ctx, route, url.Values{"email": {email}})
}

func (s *customerService) List(ctx context.Context, page int, pageSize int) (Object, error) {
	const route = "/customers/list"
	return s.client.get(ctx, route, pageValues(paramPageNumber, paramPageSize, page, pageSize))
}

func (s *customerService) CreatePortalLink(ctx context.Context, customerID string) (string, error) {
	const (
		route   = "/customers/billing"
		linkKey = "customer_portal_link"
	)

	resp, err := s.client.post(ctx, route, Object{"customer_id": customerID})
	if err != nil {
		return "", err
	}

	link, ok := resp[linkKey].(string)
	if !ok {
		return "", fmt.Errorf("response missing %s", linkKey)
	}
	return link, nil
}
