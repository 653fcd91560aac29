package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/yanqian/medifind/internal/domain/account"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaBookingSink publishes booking events as JSON, keyed by doctor id so a
// doctor's bookings stay on one partition.
type KafkaBookingSink struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaBookingSink constructs a synchronous producer for topic.
func NewKafkaBookingSink(brokers []string, topic string, logger *slog.Logger) *KafkaBookingSink {
	return &KafkaBookingSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger.With("component", "booking.kafka_sink", "topic", topic),
	}
}

func (s *KafkaBookingSink) Submit(ctx context.Context, event account.Booking) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode booking: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.DoctorID),
		Value: data,
		Time:  event.CreatedAt,
		Headers: []kafka.Header{
			{Key: "booking_id", Value: []byte(event.ID)},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish booking: %w", err)
	}
	s.logger.Info("booking published", "booking_id", event.ID)
	return nil
}

// Close flushes and releases the producer.
func (s *KafkaBookingSink) Close() error {
	return s.writer.Close()
}
