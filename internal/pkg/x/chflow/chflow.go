// Package chflow provides a context-aware receive helper for Go channels,
// plus a latest-wins delivery helper for state feeds where a slow reader
// should see the newest value rather than block the writer.
package chflow

import "context"

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Offer delivers data to a buffered channel without blocking. If the buffer
// is full, the oldest pending value is discarded to make room, so the reader
// always ends up with the most recent value.
//
// ch must have a buffer of at least one and a single writer; with an
// unbuffered channel Offer only succeeds when a reader is already waiting.
// It reports whether data was enqueued.
func Offer[T any](ch chan T, data T) bool {
	for range 2 {
		select {
		case ch <- data:
			return true
		default:
		}

		select {
		case <-ch:
		default:
		}
	}

	return false
}
