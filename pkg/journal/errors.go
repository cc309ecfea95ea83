package journal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFieldValue reports a collection value reaching the encoder.
	// The upstream flattening contract guarantees scalars only, so this is
	// an internal invariant violation, not bad input.
	ErrInvalidFieldValue = errors.New("collection value reached the journal encoder")

	// ErrRecordTooLarge reports an encoded record bigger than the largest
	// datagram the daemon accepts. The record is dropped, never truncated.
	ErrRecordTooLarge = errors.New("encoded record exceeds maximum datagram size")

	// ErrNotASocket reports a journal path that exists but is not a socket.
	ErrNotASocket = errors.New("journal path is not a socket")
)

// SendError wraps a socket write failure. Transient failures are expected
// to clear (daemon restarting, socket buffers full); the caller owns the
// retry-or-drop decision, the sink never retries internally.
type SendError struct {
	Transient bool
	Err       error
}

func (e *SendError) Error() string {
	if e.Transient {
		return fmt.Sprintf("transient journal send failure: %v", e.Err)
	}

	return fmt.Sprintf("journal send failure: %v", e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }
