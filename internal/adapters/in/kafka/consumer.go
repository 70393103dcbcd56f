package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"ordertrack/internal/messaging"
)

// FailurePolicy controls what the consumer does when dispatching a message
// fails. The zero value logs the error and drops the message.
type FailurePolicy struct {
	// MaxAttempts is the total number of delivery attempts per message.
	// Values below 2 disable retrying.
	MaxAttempts int
	// Backoff is the pause between attempts.
	Backoff time.Duration
}

// Consumer reads relay topics through a shared consumer group and feeds
// message bodies to the dispatcher. One reader goroutine runs per topic;
// offsets are committed after processing, whether the message was applied
// or dropped.
type Consumer struct {
	brokers    []string
	group      string
	topics     messaging.Topics
	dispatcher *Dispatcher
	policy     FailurePolicy
	logger     *slog.Logger

	mu      sync.Mutex
	readers []*kafka.Reader
	wg      sync.WaitGroup
}

// NewConsumer creates a consumer over the relay topics.
func NewConsumer(
	brokers []string,
	group string,
	topics messaging.Topics,
	dispatcher *Dispatcher,
	policy FailurePolicy,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		brokers:    brokers,
		group:      group,
		topics:     topics,
		dispatcher: dispatcher,
		policy:     policy,
		logger:     logger.With("component", "command_consumer"),
	}
}

// Start launches one reader goroutine per relay topic. The goroutines run
// until ctx is cancelled or Stop is called.
func (c *Consumer) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for commandType, topic := range c.topics.All() {
		reader := kafka.NewReader(kafka.ReaderConfig{
			Brokers: c.brokers,
			GroupID: c.group,
			Topic:   topic,
		})
		c.readers = append(c.readers, reader)

		c.wg.Add(1)
		go func(commandType string, reader *kafka.Reader) {
			defer c.wg.Done()
			c.consume(ctx, commandType, reader)
		}(commandType, reader)
	}
}

// Stop closes all readers and waits for the reader goroutines to exit.
func (c *Consumer) Stop() error {
	c.mu.Lock()
	readers := c.readers
	c.readers = nil
	c.mu.Unlock()

	var closeErr error
	for _, reader := range readers {
		if err := reader.Close(); err != nil && closeErr == nil {
			closeErr = err
		}
	}
	c.wg.Wait()
	return closeErr
}

func (c *Consumer) consume(ctx context.Context, commandType string, reader *kafka.Reader) {
	logger := c.logger.With("command_type", commandType)
	logger.InfoContext(ctx, "consuming relay topic", "topic", reader.Config().Topic)

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			// io.EOF means the reader was closed by Stop.
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) || errors.Is(err, kafka.ErrGroupClosed) {
				return
			}
			logger.ErrorContext(ctx, "fetch relay message", "error", err)
			return
		}

		if err := c.dispatch(ctx, msg.Value); err != nil {
			logger.ErrorContext(ctx, "drop relay message",
				"error", err,
				"partition", msg.Partition,
				"offset", msg.Offset,
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.ErrorContext(ctx, "commit relay offset", "error", err)
			return
		}
	}
}

// dispatch applies one message body, retrying per the failure policy.
func (c *Consumer) dispatch(ctx context.Context, body []byte) error {
	attempts := c.policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = c.dispatcher.Dispatch(ctx, body)
		if err == nil {
			return nil
		}
		if attempt < attempts && c.policy.Backoff > 0 {
			select {
			case <-time.After(c.policy.Backoff):
			case <-ctx.Done():
				return err
			}
		}
	}
	return err
}
