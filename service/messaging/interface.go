package messaging

import (
	"context"
	"errors"
)

// ErrClosed is returned by Publish and Consume once a queue has been closed
// by its consumer. For a dispatch loop this is the normal shutdown signal,
// not an exceptional error.
var ErrClosed = errors.New("queue closed")

// Queue represents an abstract message queue for any payload type. The
// dispatch path uses it as the delivery channel between a dispatch loop and
// its consumer.
type Queue[T any] interface {
	// Publish adds a new message with payload to the queue
	Publish(ctx context.Context, t *T) error

	// Consume retrieves a single message from the queue
	Consume(ctx context.Context) (Message[T], error)

	// Close marks the queue as closed; subsequent Publish and Consume calls
	// return ErrClosed. Closing is how a consumer signals producers that it
	// is gone.
	Close() error
}

// Message represents a message retrieved from a queue
type Message[T any] interface {
	// T returns the payload of this message
	T() *T

	// Ack acknowledges successful processing of this message
	Ack() error

	// Nack indicates failure in processing this message
	Nack(err error) error
}
