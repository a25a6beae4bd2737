package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/gic-ledger/internal/domain/port"
	"github.com/bibbank/gic-ledger/pkg/events"
	pkgkafka "github.com/bibbank/gic-ledger/pkg/kafka"
)

var _ port.EventPublisher = (*KafkaPublisher)(nil)

// MessageProducer is the subset of pkg/kafka.Producer the publisher needs.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
	Close() error
}

// KafkaPublisher implements port.EventPublisher using Kafka. Topics are prefixed,
// so "transactions" becomes "<prefix>.transactions".
type KafkaPublisher struct {
	producer    MessageProducer
	topicPrefix string
	logger      *slog.Logger
}

// NewKafkaPublisher creates a new Kafka-based event publisher.
func NewKafkaPublisher(producer MessageProducer, topicPrefix string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer:    producer,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

// Publish sends domain events to the prefixed Kafka topic, keyed by aggregate id.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	fullTopic := p.Topic(topic)
	messages := make([]pkgkafka.Message, 0, len(evts))
	for _, evt := range evts {
		key := evt.AggregateID()

		p.logger.DebugContext(ctx, "publishing event",
			"topic", fullTopic,
			"event_type", evt.EventType(),
			"aggregate_id", key,
			"payload_size", len(evt.Payload()),
		)

		messages = append(messages, pkgkafka.Message{
			Key:   []byte(key),
			Value: evt.Payload(),
			Headers: map[string]string{
				"event_type":     evt.EventType(),
				"aggregate_type": evt.AggregateType(),
				"event_id":       evt.EventID(),
			},
		})
	}

	if err := p.producer.Publish(ctx, fullTopic, messages...); err != nil {
		return fmt.Errorf("failed to publish events to topic %s: %w", fullTopic, err)
	}
	return nil
}

// Topic returns the broker topic for a ledger topic name.
func (p *KafkaPublisher) Topic(topic string) string {
	if p.topicPrefix == "" {
		return topic
	}
	return p.topicPrefix + "." + topic
}

// Close shuts down the Kafka publisher.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
