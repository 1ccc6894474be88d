package creem

import "context"

type ProductService interface {
	Create(ctx context.Context, body Object) (Object, error)
	Get(ctx context.Context, productID string) (Object, error)
	List(ctx context.Context, page int, pageSize int) (Object, error)
}

type CheckoutService interface {
	Create(ctx context.Context, body Object) (Object, error)
	Get(ctx context.Context, checkoutID string) (Object, error)
}

type CustomerService interface {
	Get(ctx context.Context, customerID string) (Object, error)
	GetByEmail(ctx context.Context, email string) (Object, error)
	List(ctx context.Context, page int, pageSize int) (Object, error)
	// CreatePortalLink returns the customer_portal_link for a customer.
	CreatePortalLink(ctx context.Context, customerID string) (string, error)
}

type SubscriptionService interface {
	List(ctx context.Context, page int, limit int) (Object, error)
	Get(ctx context.Context, subscriptionID string) (Object, error)
	Cancel(ctx context.Context, subscriptionID string, atPeriodEnd bool) (Object, error)
	Pause(ctx context.Context, subscriptionID string) (Object, error)
	Resume(ctx context.Context, subscriptionID string) (Object, error)
	Upgrade(ctx context.Context, subscriptionID string, productID string, behavior UpdateBehavior) (Object, error)
	Update(ctx context.Context, subscriptionID string, body Object) (Object, error)
}

type DiscountService interface {
	Create(ctx context.Context, body Object) (Object, error)
	Get(ctx context.Context, discountID string) (Object, error)
	GetByCode(ctx context.Context, code string) (Object, error)
	Delete(ctx context.Context, discountID string) (Object, error)
}

type LicenseService interface {
	Validate(ctx context.Context, key string, instanceID string) (Object, error)
	Activate(ctx context.Context, key string, instanceName string) (Object, error)
	Deactivate(ctx context.Context, key string, instanceID string) (Object, error)
}

type TransactionService interface {
	Get(ctx context.Context, transactionID string) (Object, error)
	List(ctx context.Context, filters TransactionFilters, page int, pageSize int) (Object, error)
	ListByCustomer(ctx context.Context, customerID string, page int, pageSize int) (Object, error)
	ListByOrder(ctx context.Context, orderID string, page int, pageSize int) (Object, error)
	ListByProduct(ctx context.Context, productID string, page int, pageSize int) (Object, error)
}
