package httpclient

import (
	"net"
	"net/http"
	"time"

	"ecommerce-api-client/internal/core/logger"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging and tracing middleware.
// The timeout bounds the whole exchange, redirects and body included.
func NewClient(timeout time.Duration) *http.Client {
	return NewClientWithConnectTimeout(timeout, 0)
}

// NewClientWithConnectTimeout is NewClient with a separate bound on
// establishing the TCP connection. A zero connectTimeout leaves dialing
// limited only by the overall timeout.
func NewClientWithConnectTimeout(timeout, connectTimeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if connectTimeout > 0 {
		dialer := &net.Dialer{Timeout: connectTimeout}
		transport.DialContext = dialer.DialContext
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: otelhttp.NewTransport(transport),
		},
		Timeout: timeout,
	}
}
