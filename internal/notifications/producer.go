package notifications

import (
	"context"
	"fmt"
	"time"

	"courtly/internal/bookings"
	"courtly/internal/shared/config"
	"courtly/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer publishes booking lifecycle events to Kafka. It satisfies
// bookings.EventPublisher.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		topic:    cfg.BookingTopic,
		log:      logger.GetDefault(),
	}, nil
}

func (p *Producer) PublishBookingConfirmed(ctx context.Context, booking *bookings.Booking) error {
	return p.publish(ctx, eventFromBooking(EventBookingConfirmed, booking))
}

func (p *Producer) PublishBookingCancelled(ctx context.Context, booking *bookings.Booking) error {
	return p.publish(ctx, eventFromBooking(EventBookingCancelled, booking))
}

func eventFromBooking(eventType EventType, booking *bookings.Booking) *BookingEvent {
	return &BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		CourtID:    booking.CourtID,
		CoachID:    booking.CoachID,
		Date:       booking.BookingDate.Format("2006-01-02"),
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		TotalPrice: booking.TotalPrice,
		OccurredAt: time.Now().UTC(),
	}
}

func (p *Producer) publish(ctx context.Context, event *BookingEvent) error {
	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("booking_id"), Value: []byte(event.BookingID.String())},
			{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event to Kafka: %w", err)
	}

	p.log.Debug("booking event published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"type", event.Type,
		"booking_id", event.BookingID,
	)
	return nil
}

func (p *Producer) Close() error {
	if p.producer == nil {
		return nil
	}
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}
