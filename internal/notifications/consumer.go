package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"courtly/internal/shared/config"
	"courtly/pkg/logger"

	"github.com/IBM/sarama"
)

// Handler processes one booking event, e.g. by sending a confirmation
// email. Returning an error triggers a retry with backoff.
type Handler interface {
	Handle(ctx context.Context, event *BookingEvent) error
}

// Consumer runs a pool of consumer group workers over the booking events
// topic.
type Consumer struct {
	group      sarama.ConsumerGroup
	topics     []string
	handler    Handler
	maxRetries int
	backoff    time.Duration
	log        *logger.Logger
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

func NewConsumer(cfg config.KafkaConfig, handler Handler) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		group:      group,
		topics:     []string{cfg.BookingTopic},
		handler:    handler,
		maxRetries: 3,
		backoff:    time.Second,
		log:        logger.GetDefault(),
	}, nil
}

// Start launches numWorkers consumer goroutines. Workers run until the
// context is cancelled or Stop is called.
func (c *Consumer) Start(ctx context.Context, numWorkers int) {
	ctx, c.cancel = context.WithCancel(ctx)

	go c.drainErrors()

	for i := 0; i < numWorkers; i++ {
		c.wg.Add(1)
		go func(workerID int) {
			defer c.wg.Done()
			c.runWorker(ctx, workerID)
		}(i)
	}
	c.log.Info("booking event consumers started", "workers", numWorkers, "topics", c.topics)
}

func (c *Consumer) runWorker(ctx context.Context, workerID int) {
	handler := &groupHandler{consumer: c, workerID: workerID}
	for {
		select {
		case <-ctx.Done():
			return
		default:
			if err := c.group.Consume(ctx, c.topics, handler); err != nil {
				if ctx.Err() != nil {
					return
				}
				c.log.Error("consumer worker error", "worker", workerID, "error", err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (c *Consumer) drainErrors() {
	for err := range c.group.Errors() {
		c.log.Error("consumer group error", "error", err)
	}
}

// Stop cancels the worker context, waits for the workers to drain, and
// then closes the consumer group. Cancelling first matters: workers only
// exit via the context, so closing the group first would leave them
// retrying against a closed group forever.
func (c *Consumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	err := c.group.Close()
	if err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

type groupHandler struct {
	consumer *Consumer
	workerID int
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			if err := h.processMessage(session.Context(), message); err != nil {
				h.consumer.log.Error("failed to process booking event",
					"worker", h.workerID, "offset", message.Offset, "error", err)
			} else {
				session.MarkMessage(message, "")
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *groupHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event BookingEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal booking event: %w", err)
	}
	return h.handleWithRetry(ctx, &event)
}

func (h *groupHandler) handleWithRetry(ctx context.Context, event *BookingEvent) error {
	backoff := h.consumer.backoff
	for attempt := 0; ; attempt++ {
		err := h.consumer.handler.Handle(ctx, event)
		if err == nil {
			return nil
		}
		if attempt == h.consumer.maxRetries {
			return err
		}

		select {
		case <-time.After(backoff * time.Duration(1<<attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// LogHandler is the default event handler. A real deployment would swap in
// an email or push delivery handler.
type LogHandler struct {
	log *logger.Logger
}

func NewLogHandler() *LogHandler {
	return &LogHandler{log: logger.GetDefault()}
}

func (h *LogHandler) Handle(ctx context.Context, event *BookingEvent) error {
	h.log.Info("booking event received",
		"type", event.Type,
		"booking_id", event.BookingID,
		"user_id", event.UserID,
		"court_id", event.CourtID,
		"date", event.Date,
	)
	return nil
}
