package messaging

import (
	"context"
	"log/slog"

	"github.com/bibbank/gic-ledger/internal/domain/port"
	"github.com/bibbank/gic-ledger/pkg/events"
)

var _ port.EventPublisher = (*LogPublisher)(nil)

// LogPublisher writes domain events to the structured log. It is the publisher used
// when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	for _, evt := range evts {
		p.logger.DebugContext(ctx, "domain event",
			"topic", topic,
			"event_type", evt.EventType(),
			"event_id", evt.EventID(),
			"aggregate_id", evt.AggregateID(),
			"payload", string(evt.Payload()),
		)
	}
	return nil
}
