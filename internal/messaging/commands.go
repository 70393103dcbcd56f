// Package messaging defines the wire contract of the order command relay.
//
// Each command shape travels on its own topic; the body is a tagged JSON
// envelope whose type discriminator lets the consumer deserialize
// polymorphically. Delivery is at-least-once: consumers must tolerate
// duplicates, and ordering is only preserved within one topic for one
// producer.
package messaging

import (
	"encoding/json"
	"fmt"
	"time"
)

// Command type discriminators, one per relay topic.
const (
	CommandOrderCreate  = "order.create"
	CommandOrderUpdate  = "order.update"
	CommandStatusChange = "order.status_change"
	CommandOrderDelete  = "order.delete"
)

// Command is one order-mutating command carried by the relay.
type Command interface {
	// CommandType returns the envelope discriminator.
	CommandType() string
	// Key returns the partitioning key, keeping commands for one order in
	// FIFO order within a topic.
	Key() string
}

// OrderCreateCommand registers a new order. The aggregator allocates the
// order id up front so redelivered creates stay idempotent.
type OrderCreateCommand struct {
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (OrderCreateCommand) CommandType() string { return CommandOrderCreate }
func (c OrderCreateCommand) Key() string       { return c.OrderID }

// OrderUpdateCommand partially updates an order; nil fields are untouched.
type OrderUpdateCommand struct {
	OrderID   string     `json:"order_id"`
	UserID    *string    `json:"user_id,omitempty"`
	ProductID *string    `json:"product_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func (OrderUpdateCommand) CommandType() string { return CommandOrderUpdate }
func (c OrderUpdateCommand) Key() string       { return c.OrderID }

// StatusChangeCommand appends a status record to an order's history.
type StatusChangeCommand struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (StatusChangeCommand) CommandType() string { return CommandStatusChange }
func (c StatusChangeCommand) Key() string       { return c.OrderID }

// OrderDeleteCommand removes an order, leaving its history as tombstones.
type OrderDeleteCommand struct {
	OrderID string `json:"order_id"`
}

func (OrderDeleteCommand) CommandType() string { return CommandOrderDelete }
func (c OrderDeleteCommand) Key() string       { return c.OrderID }

// envelope is the tagged union carried on the wire.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Encode serializes a command into its tagged envelope.
func Encode(cmd Command) ([]byte, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", cmd.CommandType(), err)
	}
	return json.Marshal(envelope{Type: cmd.CommandType(), Payload: payload})
}

// Decode deserializes a tagged envelope into the matching command shape.
// An unrecognized discriminator is an error; the consumer logs and drops
// such messages.
func Decode(data []byte) (Command, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode command envelope: %w", err)
	}

	var cmd Command
	switch env.Type {
	case CommandOrderCreate:
		cmd = &OrderCreateCommand{}
	case CommandOrderUpdate:
		cmd = &OrderUpdateCommand{}
	case CommandStatusChange:
		cmd = &StatusChangeCommand{}
	case CommandOrderDelete:
		cmd = &OrderDeleteCommand{}
	default:
		return nil, fmt.Errorf("unknown command type %q", env.Type)
	}

	if err := json.Unmarshal(env.Payload, cmd); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
	}
	return cmd, nil
}
