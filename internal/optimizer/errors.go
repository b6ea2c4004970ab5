package optimizer

import "errors"

var (
	// ErrUnavailable indicates the allocation service is unreachable.
	ErrUnavailable = errors.New("allocation service unavailable")

	// ErrTimeout indicates the allocation request exceeded the
	// configured timeout.
	ErrTimeout = errors.New("allocation request timed out")

	// ErrInvalidResponse indicates the service response could not be
	// parsed or is missing the allocations mapping.
	ErrInvalidResponse = errors.New("invalid allocation service response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("allocation retry attempts exhausted")
)
