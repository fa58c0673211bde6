package queue

import "context"

// Broker is the minimal queue surface the workers need: a blocking pop of one
// payload and a push of one payload. Delivery is at-most-once with no
// acknowledgment; the backing queue hands each job to exactly one of the
// competing consumers.
type Broker interface {
	Dequeue(ctx context.Context, channel string) (string, error)
	Publish(ctx context.Context, channel string, payload string) error
}
