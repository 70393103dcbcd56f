package ports

import (
	"context"

	"ordertrack/internal/messaging"
)

// CommandPublisher hands an order-mutating command to the relay. Publishing
// may block on broker backpressure; the command is applied asynchronously by
// the consumer on the order-owning side, so a successful publish only means
// "accepted", not "applied".
type CommandPublisher interface {
	Publish(ctx context.Context, cmd messaging.Command) error
}
