package usecase

import (
	"context"
	"log/slog"

	"github.com/bibbank/gic-ledger/internal/domain/port"
	"github.com/bibbank/gic-ledger/pkg/events"
)

// publishCommitted publishes events for a change that has already been applied. Delivery
// failures are logged and never undo or fail the change; MetricsPublisher counts them.
func publishCommitted(ctx context.Context, publisher port.EventPublisher, topic string, evts ...events.DomainEvent) {
	if len(evts) == 0 {
		return
	}
	if err := publisher.Publish(ctx, topic, evts...); err != nil {
		slog.WarnContext(ctx, "failed to publish events",
			"topic", topic,
			"event_type", evts[0].EventType(),
			"count", len(evts),
			"error", err,
		)
	}
}
