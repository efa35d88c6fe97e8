package supplier

import "fmt"

// ErrorKind discriminates the failure categories of a client operation.
type ErrorKind string

const (
	// ErrorKindHTTP covers transport failures (DNS, connect, timeout, TLS)
	// and success responses whose body cannot be decoded.
	ErrorKindHTTP ErrorKind = "http"
	// ErrorKindJSON covers failures encoding the request payload.
	ErrorKindJSON ErrorKind = "json"
	// ErrorKindInvalidURL means the base URL is not a well-formed absolute URL.
	ErrorKindInvalidURL ErrorKind = "invalid_url"
	// ErrorKindInvalidCredentials means the identifier/token pair cannot be
	// carried in an Authorization header.
	ErrorKindInvalidCredentials ErrorKind = "invalid_credentials"
	// ErrorKindBadRequest is a 400 from the supplier, body preserved.
	ErrorKindBadRequest ErrorKind = "bad_request"
	// ErrorKindUnauthorized is a 401 from the supplier.
	ErrorKindUnauthorized ErrorKind = "unauthorized"
	// ErrorKindNotFound is a 404 from the supplier.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindRateLimit is a 429 from the supplier.
	ErrorKindRateLimit ErrorKind = "rate_limit"
	// ErrorKindServer is any 5xx from the supplier, body preserved.
	ErrorKindServer ErrorKind = "server_error"
	// ErrorKindUnexpectedStatus is any other non-2xx status.
	ErrorKindUnexpectedStatus ErrorKind = "unexpected_status"
)

// Error is the single error type returned by the client. Kind selects the
// failure category; Status carries the HTTP status code for the kinds that
// have one; Err holds the underlying cause when there is one.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindHTTP:
		return "http error: " + e.cause()
	case ErrorKindJSON:
		return "json error: " + e.cause()
	case ErrorKindInvalidURL:
		return "invalid url: " + e.Message
	case ErrorKindInvalidCredentials:
		return "invalid credentials: " + e.Message
	case ErrorKindBadRequest:
		return "bad request: " + e.Message
	case ErrorKindUnauthorized:
		return "unauthorized: " + e.Message
	case ErrorKindNotFound:
		return "not found: " + e.Message
	case ErrorKindRateLimit:
		return "rate limited: " + e.Message
	case ErrorKindServer:
		return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
	case ErrorKindUnexpectedStatus:
		return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Message)
	default:
		return e.cause()
	}
}

func (e *Error) cause() string {
	if e.Err != nil {
		if e.Message != "" {
			return e.Message + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is plausibly transient. It is
// advisory only; the client never retries on its own.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case ErrorKindHTTP, ErrorKindServer, ErrorKindRateLimit:
		return true
	default:
		return false
	}
}

// StatusCode returns the HTTP status reported by the supplier and true for
// the server-reported kinds. Kinds without an HTTP status return false.
func (e *Error) StatusCode() (int, bool) {
	switch e.Kind {
	case ErrorKindBadRequest, ErrorKindUnauthorized, ErrorKindNotFound,
		ErrorKindRateLimit, ErrorKindServer, ErrorKindUnexpectedStatus:
		return e.Status, true
	default:
		return 0, false
	}
}
