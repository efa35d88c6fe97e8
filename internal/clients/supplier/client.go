// Package supplier is a typed HTTP client for the supplier's order creation
// endpoint. It validates the base URL up front, optionally carries HTTP
// Basic credentials, and maps every failure into an *Error with a closed
// set of kinds so callers can branch on the category, read the HTTP status,
// or consult Retryable without string matching.
package supplier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ecommerce-api-client/internal/core/httpclient"
	"ecommerce-api-client/internal/core/logger"

	"go.uber.org/zap"
)

const (
	userAgent       = "ecommerce-api-client/0.1.0"
	createOrderPath = "/api_customer/orders"

	// DefaultTimeout bounds a whole create order exchange.
	DefaultTimeout = 30 * time.Second
	// DefaultConnectTimeout bounds establishing the TCP connection.
	DefaultConnectTimeout = 10 * time.Second
)

// Client talks to the supplier order API. Its fields are read-only after
// construction, so a single Client is safe for concurrent use.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	identifier    string
	token         string
	authenticated bool
	logger        *zap.Logger
}

// New returns an unauthenticated Client for the given base URL with the
// default timeouts.
func New(baseURL string) (*Client, error) {
	return NewWithTimeouts(baseURL, DefaultTimeout, DefaultConnectTimeout)
}

// NewWithTimeouts returns a Client with explicit total and connect timeouts.
// The base URL must be absolute with a non-empty host and is stored exactly
// as given.
func NewWithTimeouts(baseURL string, timeout, connectTimeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, &Error{Kind: ErrorKindInvalidURL, Message: fmt.Sprintf("parse %q", baseURL), Err: err}
	}
	if !parsed.IsAbs() {
		return nil, &Error{Kind: ErrorKindInvalidURL, Message: fmt.Sprintf("%q is not an absolute URL", baseURL)}
	}
	if parsed.Host == "" {
		return nil, &Error{Kind: ErrorKindInvalidURL, Message: fmt.Sprintf("%q has no host", baseURL)}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpclient.NewClientWithConnectTimeout(timeout, connectTimeout),
		logger:     logger.Named("supplier"),
	}, nil
}

// WithCredentials returns a copy of the Client that authenticates with the
// given identifier and token. The pair is stored as-is and only checked when
// the Authorization header is built.
func (c *Client) WithCredentials(identifier, token string) *Client {
	clone := *c
	clone.identifier = identifier
	clone.token = token
	clone.authenticated = true
	return &clone
}

// CreateOrder submits the order and returns the created order together with
// its fulfilled lines. Every failure is an *Error. The client never retries;
// repeated calls create independent orders upstream.
func (c *Client) CreateOrder(ctx context.Context, order CreateOrderRequest) (*CreateOrderResponse, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, &Error{Kind: ErrorKindJSON, Message: "encode create order request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createOrderPath, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Kind: ErrorKindHTTP, Message: "build create order request", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	if c.authenticated {
		auth, err := c.basicAuth()
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrorKindHTTP, Message: "send create order request", Err: err}
	}
	defer resp.Body.Close()

	// Best effort read: a truncated error body still classifies by status.
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var created CreateOrderResponse
		if err := json.Unmarshal(body, &created); err != nil {
			// The order may or may not exist upstream at this point.
			return nil, &Error{Kind: ErrorKindHTTP, Message: "decode create order response", Err: err}
		}

		c.logger.Debug("order created",
			zap.Uint64("order_id", created.Order.ID),
			zap.String("gross_total", created.Order.GrossTotal),
			zap.Int("order_products", len(created.OrderProducts)),
		)
		return &created, nil
	}

	apiErr := classifyStatus(resp.StatusCode, string(body))
	c.logger.Debug("order rejected",
		zap.Int("status_code", resp.StatusCode),
		zap.String("kind", string(apiErr.Kind)),
	)
	return nil, apiErr
}

// basicAuth builds the Authorization header value. RFC 7617 reserves the
// colon as the identifier/token separator, and header values cannot carry
// control characters.
func (c *Client) basicAuth() (string, error) {
	if strings.Contains(c.identifier, ":") {
		return "", &Error{Kind: ErrorKindInvalidCredentials, Message: "identifier must not contain a colon"}
	}
	if !headerSafe(c.identifier) || !headerSafe(c.token) {
		return "", &Error{Kind: ErrorKindInvalidCredentials, Message: "credentials must not contain control characters"}
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(c.identifier + ":" + c.token))
	return "Basic " + encoded, nil
}

func headerSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return false
		}
	}
	return true
}

// classifyStatus maps a non-2xx supplier status onto the error taxonomy.
// 400 and 5xx preserve the response body; the other fixed statuses discard it.
func classifyStatus(status int, body string) *Error {
	switch {
	case status == http.StatusBadRequest:
		return &Error{Kind: ErrorKindBadRequest, Status: status, Message: body}
	case status == http.StatusUnauthorized:
		return &Error{Kind: ErrorKindUnauthorized, Status: status, Message: "invalid credentials"}
	case status == http.StatusNotFound:
		return &Error{Kind: ErrorKindNotFound, Status: status, Message: "endpoint not found"}
	case status == http.StatusTooManyRequests:
		return &Error{Kind: ErrorKindRateLimit, Status: status, Message: "rate limit exceeded"}
	case status >= 500 && status <= 599:
		return &Error{Kind: ErrorKindServer, Status: status, Message: body}
	default:
		return &Error{Kind: ErrorKindUnexpectedStatus, Status: status, Message: body}
	}
}
