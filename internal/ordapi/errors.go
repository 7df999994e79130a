package ordapi

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransientError marks a failure worth retrying: timeouts, connection resets,
// 429 and 5xx responses.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// SchemaError marks a non-retriable failure: the endpoint answered but the
// response cannot be safely interpreted (malformed JSON, unexpected envelope,
// 4xx status).
type SchemaError struct {
	Op  string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// IsTransient reports whether the error should be retried.
func IsTransient(err error) bool {
	var te *TransientError
	if errors.As(err, &te) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsSchema reports whether the error is a non-retriable schema failure.
func IsSchema(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
