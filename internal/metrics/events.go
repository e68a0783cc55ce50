package metrics

import (
	"context"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types published by the services
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.RaffleDrawn,
		event.RaffleEntered,
		event.MissionClaimed,
		event.ActivityRecorded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if evt.Type != event.RaffleDrawn {
		return nil
	}

	payload, ok := evt.Payload.(domain.RaffleDrawnPayload)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}
	RaffleWinnersTotal.Add(float64(len(payload.WinnerIDs)))
	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type, "winners", len(payload.WinnerIDs))
	return nil
}
