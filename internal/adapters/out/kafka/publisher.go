// Package kafka publishes relay commands to their per-shape topics.
package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"ordertrack/internal/messaging"

	"github.com/segmentio/kafka-go"
)

// CommandPublisher implements ports.CommandPublisher over one kafka writer
// per topic. Messages are keyed by order id, so all commands for one order
// on one topic land in the same partition and keep their publish order.
type CommandPublisher struct {
	writers map[string]*kafka.Writer
	logger  *slog.Logger
}

// NewCommandPublisher creates a publisher for the given brokers and topic
// map.
func NewCommandPublisher(brokers []string, topics messaging.Topics, logger *slog.Logger) *CommandPublisher {
	writers := make(map[string]*kafka.Writer)
	for commandType, topic := range topics.All() {
		writers[commandType] = &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		}
	}

	return &CommandPublisher{
		writers: writers,
		logger:  logger.With("component", "kafka_command_publisher"),
	}
}

// Publish encodes the command and writes it to the topic bound to its
// type. Publishing blocks until the broker acknowledges or ctx is done.
func (p *CommandPublisher) Publish(ctx context.Context, cmd messaging.Command) error {
	writer, ok := p.writers[cmd.CommandType()]
	if !ok {
		return fmt.Errorf("no topic bound for command type %q", cmd.CommandType())
	}

	value, err := messaging.Encode(cmd)
	if err != nil {
		return err
	}

	if err = writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(cmd.Key()),
		Value: value,
	}); err != nil {
		return fmt.Errorf("publish %s: %w", cmd.CommandType(), err)
	}

	p.logger.DebugContext(ctx, "Command published",
		"command_type", cmd.CommandType(), "key", cmd.Key())
	return nil
}

// Close flushes and closes all writers.
func (p *CommandPublisher) Close() error {
	var firstErr error
	for _, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
