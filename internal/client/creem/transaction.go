package creem

import (
	"context"
	"net/url"
)

// TransactionFilters are passed through as query parameters.
type TransactionFilters map[string]string

type transactionService struct {
	client *Client
}

func (s *transactionService) Get(ctx context.Context, transactionID string) (Object, error) {
	const route = "/transactions"
	return s.client.get(ctx, route, url.Values{"transaction_id": {transactionID}})
}

// List searches transactions. Paging parameters take precedence over filters
// with the same name.
func (s *transactionService) List(ctx context.Context, filters TransactionFilters, page int, pageSize int) (Object, error) {
	const route = "/transactions/search"

	q := make(url.Values, len(filters)+2)
	for k, v := range filters {
		q.Set(k, v)
	}
	for k, v := range pageValues(paramPageNumber, paramPageSize, page, pageSize) {
		q[k] = v
	}
	return s.client.get(ctx, route, q)
}

func (s *transactionService) ListByCustomer(ctx context.Context, customerID string, page int, pageSize int) (Object, error) {
	return s.List(ctx, TransactionFilters{"customer_id": customerID}, page, pageSize)
}

func (s *transactionService) ListByOrder(ctx context.Context, orderID string, page int, pageSize int) (Object, error) {
	return s.List(ctx, TransactionFilters{"order_id": orderID}, page, pageSize)
}

func (s *transactionService) ListByProduct(ctx context.Context, productID string, page int, pageSize int) (Object, error) {
	return s.List(ctx, TransactionFilters{"product_id": productID}, page, pageSize)
}
