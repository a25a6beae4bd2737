package messaging

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bibbank/gic-ledger/internal/domain/port"
	"github.com/bibbank/gic-ledger/pkg/events"
)

var _ port.EventPublisher = (*MetricsPublisher)(nil)

// MetricsPublisher counts published and failed domain events by type, then delegates.
type MetricsPublisher struct {
	next      port.EventPublisher
	published metric.Int64Counter
	failed    metric.Int64Counter
}

// NewMetricsPublisher wraps next with event counters registered on meter.
func NewMetricsPublisher(next port.EventPublisher, meter metric.Meter) (*MetricsPublisher, error) {
	published, err := meter.Int64Counter("ledger_events",
		metric.WithDescription("Domain events published by the ledger"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ledger_events counter: %w", err)
	}

	failed, err := meter.Int64Counter("ledger_event_publish_failures",
		metric.WithDescription("Domain events the ledger failed to publish"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ledger_event_publish_failures counter: %w", err)
	}

	return &MetricsPublisher{next: next, published: published, failed: failed}, nil
}

func (p *MetricsPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	err := p.next.Publish(ctx, topic, evts...)

	counter := p.published
	if err != nil {
		counter = p.failed
	}
	for _, evt := range evts {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("event_type", evt.EventType()),
			attribute.String("topic", topic),
		))
	}
	return err
}
