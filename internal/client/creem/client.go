package creem

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/garrettladley/creem/internal/profile"
	"github.com/garrettladley/creem/internal/xhttp"
	"github.com/garrettladley/creem/internal/xslog"
	go_json "github.com/goccy/go-json"
)

const (
	LiveBaseURL = "https://api.creem.io"
	TestBaseURL = "https://test-api.creem.io"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryTimes = 3
	DefaultRetrySleep = 100 * time.Millisecond
)

// Object is a decoded JSON response body, returned as received.
type Object = map[string]any

type Client struct {
	Products      ProductService
	Checkouts     CheckoutService
	Customers     CustomerService
	Subscriptions SubscriptionService
	Discounts     DiscountService
	Licenses      LicenseService
	Transactions  TransactionService

	baseURL    string
	httpClient *http.Client
	retry      retryPolicy
	logger     *slog.Logger
}

// BaseURL selects the sandbox host in test mode and the production host otherwise.
func BaseURL(testMode bool) string {
	if testMode {
		return TestBaseURL
	}
	return LiveBaseURL
}

func New(creds profile.Credentials, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:    BaseURL(creds.TestMode),
		timeout:    DefaultTimeout,
		retryTimes: DefaultRetryTimes,
		retrySleep: DefaultRetrySleep,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &creemTransport{
		base:   xhttp.NewTransport(cfg.transport),
		apiKey: creds.APIKey,
	}

	c := &Client{
		baseURL: cfg.baseURL,
		httpClient: xhttp.NewHTTPClient(
			xhttp.WithTransport(transport),
			xhttp.WithTimeout(cfg.timeout),
		),
		retry:  newRetryPolicy(cfg.retryTimes, cfg.retrySleep),
		logger: cfg.logger,
	}

	c.Products = &productService{client: c}
	c.Checkouts = &checkoutService{client: c}
	c.Customers = &customerService{client: c}
	c.Subscriptions = &subscriptionService{client: c}
	c.Discounts = &discountService{client: c}
	c.Licenses = &licenseService{client: c}
	c.Transactions = &transactionService{client: c}

	return c
}

// FromProfile resolves name and builds a client for it.
func FromProfile(resolver *profile.Resolver, name string, opts ...Option) (*Client, error) {
	creds, err := resolver.ResolveByName(name)
	if err != nil {
		return nil, err
	}
	return New(creds, opts...), nil
}

// FromConfig builds a client from inline configuration.
func FromConfig(cfg map[string]any, opts ...Option) (*Client, error) {
	creds, err := profile.ResolveInline(cfg)
	if err != nil {
		return nil, err
	}
	return New(creds, opts...), nil
}

func (c *Client) BaseURL() string { return c.baseURL }

type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	retryTimes int
	retrySleep time.Duration
	transport  http.RoundTripper
	logger     *slog.Logger
}

type Option func(*clientConfig)

// WithBaseURL overrides the host chosen by test mode.
func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithRetry sets the number of attempts and the base backoff between them.
func WithRetry(times int, sleep time.Duration) Option {
	return func(cfg *clientConfig) {
		cfg.retryTimes = times
		cfg.retrySleep = sleep
	}
}

// WithHTTPTransport sets the round tripper underneath the authenticating transport.
func WithHTTPTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.transport = rt }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (Object, error) {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query})
}

func (c *Client) post(ctx context.Context, path string, body any) (Object, error) {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body})
}

func (c *Client) delete(ctx context.Context, path string, body any) (Object, error) {
	return c.do(ctx, request{method: http.MethodDelete, path: path, body: body})
}

func (c *Client) do(ctx context.Context, r request) (Object, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var payload []byte
	if r.body != nil {
		b, err := go_json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		payload = b
	}

	var lastErr error
	for attempt := 1; attempt <= c.retry.times; attempt++ {
		if attempt > 1 {
			if err := c.retry.wait(ctx, attempt-1); err != nil {
				return nil, &TransportError{Method: r.method, URL: u, Attempts: attempt - 1, Err: err}
			}
		}

		result, err := c.send(ctx, r.method, u, payload)
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, &TransportError{Method: r.method, URL: u, Attempts: attempt, Err: err}
		}

		lastErr = err
		c.logger.WarnContext(ctx, "creem request failed",
			xslog.Method(r.method),
			xslog.URL(u),
			xslog.Attempt(attempt),
			xslog.Error(err),
		)
	}

	if apiErr := AsAPIError(lastErr); apiErr != nil {
		return nil, apiErr
	}
	return nil, &TransportError{Method: r.method, URL: u, Attempts: c.retry.times, Err: lastErr}
}

// send performs a single attempt. Transport failures come back wrapped in
// errTransient; HTTP error responses come back as *APIError.
func (c *Client) send(ctx context.Context, method string, u string, payload []byte) (Object, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transient(fmt.Errorf("executing request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transient(fmt.Errorf("reading response: %w", err))
	}

	if !xhttp.IsSuccess(resp.StatusCode) {
		return nil, parseAPIError(resp.StatusCode, data)
	}

	return decodeObject(data)
}

func decodeObject(data []byte) (Object, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Object{}, nil
	}
	var result Object
	if err := go_json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w\nbody: %s", err, string(data))
	}
	if result == nil {
		result = Object{}
	}
	return result, nil
}

type creemTransport struct {
	base   http.RoundTripper
	apiKey string
}

var _ http.RoundTripper = (*creemTransport)(nil)

const headerAPIKey = "x-api-key"

func (t *creemTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(headerAPIKey, t.apiKey)
	xhttp.SetRequestHeadersJSON(req)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
