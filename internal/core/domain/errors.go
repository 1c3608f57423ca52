package domain

import (
	"errors"
	"fmt"
)

// Error classes for provider attempts. Both are consumed inside the provider
// chain ("try next provider") and never reach callers of the fetch service.
var (
	// ErrTransport marks network-level failures: connect errors, timeouts,
	// non-success HTTP status codes.
	ErrTransport = errors.New("transport error")

	// ErrSchema marks responses that arrived but do not have the expected
	// shape (wrong container type, required fields missing).
	ErrSchema = errors.New("schema error")
)

// TransportErrorf wraps a network-level failure so the chain can classify it.
func TransportErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrTransport)...)
}

// SchemaErrorf wraps a response-shape failure so the chain can classify it.
func SchemaErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrSchema)...)
}

// IsTransport reports whether err is a transport-class failure.
func IsTransport(err error) bool { return errors.Is(err, ErrTransport) }

// IsSchema reports whether err is a schema-class failure.
func IsSchema(err error) bool { return errors.Is(err, ErrSchema) }
