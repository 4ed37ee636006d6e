package adapter

import "errors"

// Sentinel errors matched with [errors.Is]. Responses with a non-2xx status
// are returned as [*APIError] wrapping one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrInvalidResponse indicates a 2xx response whose body could not be
	// decoded.
	ErrInvalidResponse = errors.New("invalid response")
)

// APIError is a non-2xx API response.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the human-readable cause reported by the API, or the
	// status text when the body carries none.
	Message string
	// Err is the sentinel matching StatusCode.
	Err error
}

// Error returns the human-readable cause.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the status sentinel.
func (e *APIError) Unwrap() error {
	return e.Err
}
