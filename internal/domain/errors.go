package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the planning pipeline. Handlers map these to HTTP
// status codes with errors.Is.
var (
	// ErrInvalidRequest indicates a malformed request shape.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidDateRange indicates the return date is not after the
	// departure date.
	ErrInvalidDateRange = errors.New("return date must be after departure date")

	// ErrMissingBudget indicates cost optimization was requested without a
	// budget.
	ErrMissingBudget = errors.New("budget is required when optimizing for cost")

	// ErrNoAirportsFound indicates the source or destination city resolved to
	// no airports at all.
	ErrNoAirportsFound = errors.New("no valid airports found")

	// ErrNoCombinationsFound indicates every candidate triple was skipped.
	ErrNoCombinationsFound = errors.New("no valid travel combinations found")

	// ErrBudgetExceeded indicates no combination survived budget filtering.
	ErrBudgetExceeded = errors.New("no combinations found within budget")

	// ErrNoData is the typed absence returned by gateways when a lookup
	// legitimately finds nothing. It is a normal outcome, not a failure:
	// the affected candidate is skipped.
	ErrNoData = errors.New("no data found")
)

// IsNoData reports whether err represents a not-found outcome.
func IsNoData(err error) bool {
	return errors.Is(err, ErrNoData)
}

// GatewayError wraps a failure from an external gateway with context about
// which gateway failed and whether the call is worth retrying.
type GatewayError struct {
	// Gateway is the name of the failing gateway (e.g. "skyscanner")
	Gateway string

	// Err is the underlying error
	Err error

	// Retryable indicates whether retrying the call may succeed
	Retryable bool
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Gateway, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewGatewayError creates a non-retryable gateway error.
func NewGatewayError(gateway string, err error) *GatewayError {
	return &GatewayError{Gateway: gateway, Err: err, Retryable: false}
}

// NewRetryableGatewayError creates a retryable (transient) gateway error.
func NewRetryableGatewayError(gateway string, err error) *GatewayError {
	return &GatewayError{Gateway: gateway, Err: err, Retryable: true}
}

// IsRetryable reports whether err is a retryable gateway error.
func IsRetryable(err error) bool {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Retryable
	}
	return false
}
