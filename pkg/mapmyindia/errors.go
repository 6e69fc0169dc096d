package mapmyindia

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrCredentialsUnavailable means no usable auth scheme is configured.
	// It is a configuration error, not a per-request failure.
	ErrCredentialsUnavailable = errors.New("mapmyindia: no credentials configured")

	// ErrUpstreamUnreachable wraps transport failures (timeout, DNS, refused).
	ErrUpstreamUnreachable = errors.New("mapmyindia: upstream unreachable")

	ErrTokenExchangeFailed  = errors.New("mapmyindia: token exchange failed")
	ErrAllAuthMethodsFailed = errors.New("mapmyindia: all auth methods failed")
)

// RejectedError reports an upstream response other than 200.
type RejectedError struct {
	Operation string
	Status    int
	// Body is a redacted, truncated excerpt, only populated in debug mode.
	Body string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("mapmyindia: %s rejected with status %d", e.Operation, e.Status)
}

// ExchangeError reports a failed client-credentials grant. It matches
// ErrTokenExchangeFailed with errors.Is.
type ExchangeError struct {
	Status int // 0 when the token endpoint was unreachable
	Cause  error
}

func (e *ExchangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (status %d): %v", ErrTokenExchangeFailed, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s (status %d)", ErrTokenExchangeFailed, e.Status)
}

func (e *ExchangeError) Is(target error) bool { return target == ErrTokenExchangeFailed }

func (e *ExchangeError) Unwrap() error { return e.Cause }

// fallbackAllowed is the fallback gate: only statuses meaning "this auth
// scheme was refused" switch schemes. Anything else is a query problem
// that another credential would not fix.
func fallbackAllowed(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusPreconditionFailed
}

// UpstreamStatus extracts the provider status carried by err, or 0.
func UpstreamStatus(err error) int {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Status
	}
	var exchange *ExchangeError
	if errors.As(err, &exchange) {
		return exchange.Status
	}
	return 0
}
