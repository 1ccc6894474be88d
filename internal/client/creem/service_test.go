package creem

import (
	"context"
	"net/http"
	"testing"

	"github.com/garrettladley/creem/internal/profile"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResourceRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		call      func(ctx context.Context, c *Client) error
		wantVerb  string
		wantPath  string
		wantQuery map[string]string
		wantBody  map[string]any
	}{
		{
			name:      "products get",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Products.Get(ctx, "prod_1"); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/products",
			wantQuery: map[string]string{"product_id": "prod_1"},
		},
		{
			name:      "products list defaults",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Products.List(ctx, 0, 0); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/products/search",
			wantQuery: map[string]string{"page_number": "1", "page_size": "20"},
		},
		{
			name: "products create",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Products.Create(ctx, Object{"name": "Pro", "price": 1000})
				return err
			},
			wantVerb: http.MethodPost,
			wantPath: "/products",
			wantBody: map[string]any{"name": "Pro", "price": float64(1000)},
		},
		{
			name: "checkouts create",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Checkouts.Create(ctx, Object{"product_id": "prod_1"})
				return err
			},
			wantVerb: http.MethodPost,
			wantPath: "/checkouts",
			wantBody: map[string]any{"product_id": "prod_1"},
		},
		{
			name:      "checkouts get",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Checkouts.Get(ctx, "ch_1"); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/checkouts",
			wantQuery: map[string]string{"checkout_id": "ch_1"},
		},
		{
			name:      "customers get",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Customers.Get(ctx, "cust_1"); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/customers",
			wantQuery: map[string]string{"customer_id": "cust_1"},
		},
		{
			name: "customers by email",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Customers.GetByEmail(ctx, "a@b.co")
				return err
			},
			wantVerb:  http.MethodGet,
			wantPath:  "/customers",
			wantQuery: map[string]string{"email": "a@b.co"},
		},
		{
			name:      "customers list",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Customers.List(ctx, 2, 50); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/customers/list",
			wantQuery: map[string]string{"page_number": "2", "page_size": "50"},
		},
		{
			name:      "subscriptions list",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Subscriptions.List(ctx, 3, 10); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/subscriptions",
			wantQuery: map[string]string{"page": "3", "limit": "10"},
		},
		{
			name:      "subscriptions get",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Subscriptions.Get(ctx, "sub_1"); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/subscriptions",
			wantQuery: map[string]string{"subscription_id": "sub_1"},
		},
		{
			name: "subscriptions cancel",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Subscriptions.Cancel(ctx, "sub_1", true)
				return err
			},
			wantVerb: http.MethodPost,
			wantPath: "/subscriptions/sub_1/cancel",
			wantBody: map[string]any{"at_period_end": true},
		},
		{
			name:     "subscriptions pause",
			call:     func(ctx context.Context, c *Client) error { _, err := c.Subscriptions.Pause(ctx, "sub_1"); return err },
			wantVerb: http.MethodPost,
			wantPath: "/subscriptions/sub_1/pause",
		},
		{
			name:     "subscriptions resume",
			call:     func(ctx context.Context, c *Client) error { _, err := c.Subscriptions.Resume(ctx, "sub_1"); return err },
			wantVerb: http.MethodPost,
			wantPath: "/subscriptions/sub_1/resume",
		},
		{
			name: "subscriptions upgrade default behavior",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Subscriptions.Upgrade(ctx, "sub_1", "prod_2", "")
				return err
			},
			wantVerb: http.MethodPost,
			wantPath: "/subscriptions/sub_1/upgrade",
			wantBody: map[string]any{"product_id": "prod_2", "update_behavior": "proration-charge-immediately"},
		},
		{
			name: "subscriptions update",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Subscriptions.Update(ctx, "sub_1", Object{"items": []any{}})
				return err
			},
			wantVerb: http.MethodPost,
			wantPath: "/subscriptions/sub_1",
			wantBody: map[string]any{"items": []any{}},
		},
		{
			name: "discounts create",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Discounts.Create(ctx, Object{"code": "SAVE10"})
				return err
			},
			wantVerb: http.MethodPost,
			wantPath: "/discounts",
			wantBody: map[string]any{"code": "SAVE10"},
		},
		{
			name:      "discounts get",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Discounts.Get(ctx, "disc_1"); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/discounts",
			wantQuery: map[string]string{"discount_id": "disc_1"},
		},
		{
			name:      "discounts by code",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Discounts.GetByCode(ctx, "SAVE10"); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/discounts",
			wantQuery: map[string]string{"discount_code": "SAVE10"},
		},
		{
			name:     "discounts delete",
			call:     func(ctx context.Context, c *Client) error { _, err := c.Discounts.Delete(ctx, "disc_1"); return err },
			wantVerb: http.MethodDelete,
			wantPath: "/discounts/disc_1/delete",
		},
		{
			name: "licenses validate",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Licenses.Validate(ctx, "KEY", "inst_1")
				return err
			},
			wantVerb: http.MethodPost,
			wantPath: "/licenses/validate",
			wantBody: map[string]any{"key": "KEY", "instance_id": "inst_1"},
		},
		{
			name: "licenses activate",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Licenses.Activate(ctx, "KEY", "laptop")
				return err
			},
			wantVerb: http.MethodPost,
			wantPath: "/licenses/activate",
			wantBody: map[string]any{"key": "KEY", "instance_name": "laptop"},
		},
		{
			name: "licenses deactivate",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Licenses.Deactivate(ctx, "KEY", "inst_1")
				return err
			},
			wantVerb: http.MethodPost,
			wantPath: "/licenses/deactivate",
			wantBody: map[string]any{"key": "KEY", "instance_id": "inst_1"},
		},
		{
			name:      "transactions get",
			call:      func(ctx context.Context, c *Client) error { _, err := c.Transactions.Get(ctx, "tx_1"); return err },
			wantVerb:  http.MethodGet,
			wantPath:  "/transactions",
			wantQuery: map[string]string{"transaction_id": "tx_1"},
		},
		{
			name: "transactions list with filters",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Transactions.List(ctx, TransactionFilters{"customer_id": "cust_1", "page_size": "999"}, 1, 5)
				return err
			},
			wantVerb:  http.MethodGet,
			wantPath:  "/transactions/search",
			wantQuery: map[string]string{"customer_id": "cust_1", "page_number": "1", "page_size": "5"},
		},
		{
			name: "transactions by order",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Transactions.ListByOrder(ctx, "ord_1", 0, 0)
				return err
			},
			wantVerb:  http.MethodGet,
			wantPath:  "/transactions/search",
			wantQuery: map[string]string{"order_id": "ord_1", "page_number": "1", "page_size": "20"},
		},
		{
			name: "transactions by product",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Transactions.ListByProduct(ctx, "prod_1", 0, 0)
				return err
			},
			wantVerb:  http.MethodGet,
			wantPath:  "/transactions/search",
			wantQuery: map[string]string{"product_id": "prod_1", "page_number": "1", "page_size": "20"},
		},
		{
			name: "transactions by customer",
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Transactions.ListByCustomer(ctx, "cust_1", 0, 0)
				return err
			},
			wantVerb:  http.MethodGet,
			wantPath:  "/transactions/search",
			wantQuery: map[string]string{"customer_id": "cust_1", "page_number": "1", "page_size": "20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := newRecorder()
			c := newTestClient(rec, profile.Credentials{APIKey: "k"})

			if err := tt.call(t.Context(), c); err != nil {
				t.Fatalf("call failed: %v", err)
			}

			got := rec.last(t)
			if got.Method != tt.wantVerb {
				t.Errorf("method = %s, want %s", got.Method, tt.wantVerb)
			}
			if got.Path != tt.wantPath {
				t.Errorf("path = %s, want %s", got.Path, tt.wantPath)
			}
			if diff := cmp.Diff(tt.wantQuery, got.Query, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("query mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantBody, got.Body, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreatePortalLink(t *testing.T) {
	t.Parallel()

	rec := newRecorder(respond(http.StatusOK, `{"customer_portal_link":"https://creem.io/portal/abc"}`))
	c := newTestClient(rec, profile.Credentials{APIKey: "k"})

	link, err := c.Customers.CreatePortalLink(t.Context(), "cust_1")
	if err != nil {
		t.Fatalf("CreatePortalLink: %v", err)
	}
	if link != "https://creem.io/portal/abc" {
		t.Errorf("link = %q", link)
	}

	got := rec.last(t)
	if got.Method != http.MethodPost || got.Path != "/customers/billing" {
		t.Errorf("request = %s %s", got.Method, got.Path)
	}
	if diff := cmp.Diff(map[string]any{"customer_id": "cust_1"}, got.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestCreatePortalLinkMissingField(t *testing.T) {
	t.Parallel()

	rec := newRecorder(respond(http.StatusOK, `{}`))
	c := newTestClient(rec, profile.Credentials{APIKey: "k"})

	if _, err := c.Customers.CreatePortalLink(t.Context(), "cust_1"); err == nil {
		t.Error("expected error when customer_portal_link is absent")
	}
}

func TestPathSegmentsEscaped(t *testing.T) {
	t.Parallel()

	rec := newRecorder()
	c := newTestClient(rec, profile.Credentials{APIKey: "k"})

	if _, err := c.Subscriptions.Pause(t.Context(), "sub/../x"); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if got := rec.last(t).Raw; got != "/subscriptions/sub%2F..%2Fx/pause" {
		t.Errorf("escaped path = %q", got)
	}
}
