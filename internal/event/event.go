package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/journey-app/journey/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types published by the services
const (
	RaffleDrawn      Type = domain.EventTypeRaffleDrawn
	RaffleEntered    Type = domain.EventTypeRaffleEntered
	MissionClaimed   Type = domain.EventTypeMissionClaimed
	ActivityRecorded Type = domain.EventTypeActivityRecorded
)

// NewRaffleDrawnEvent creates a raffle.drawn event
func NewRaffleDrawnEvent(raffle *domain.Raffle, result *domain.DrawResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RaffleDrawn,
		Payload: domain.RaffleDrawnPayload{
			RaffleID:         result.RaffleID.String(),
			Title:            raffle.Title,
			WinnerIDs:        result.WinnerIDs,
			ParticipantCount: result.ParticipantCount,
			TotalWeight:      result.TotalWeight,
			Timestamp:        result.DrawnAt.Unix(),
		},
	}
}

// NewRaffleEnteredEvent creates a raffle.entered event
func NewRaffleEnteredEvent(p *domain.RaffleParticipant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RaffleEntered,
		Payload: domain.RaffleEnteredPayload{
			RaffleID:  p.RaffleID.String(),
			UserID:    p.UserID,
			Weight:    p.Weight,
			Timestamp: p.EnteredAt.Unix(),
		},
	}
}

// NewMissionClaimedEvent creates a mission.claimed event
func NewMissionClaimedEvent(claim *domain.MissionClaim) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MissionClaimed,
		Payload: domain.MissionClaimedPayload{
			UserID:    claim.UserID,
			MissionID: claim.MissionID,
			ResetKey:  claim.ResetKey,
			RewardXP:  claim.RewardXP,
			Timestamp: claim.ClaimedAt.Unix(),
		},
		Metadata: Metadata{"reset_key": claim.ResetKey},
	}
}

// NewActivityRecordedEvent creates an activity.recorded event
func NewActivityRecordedEvent(userID string, source domain.ActivitySource) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActivityRecorded,
		Payload: domain.ActivityRecordedPayload{
			UserID:    userID,
			Source:    string(source),
			Timestamp: time.Now().Unix(),
		},
		Metadata: Metadata{"source": string(source)},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the narrow side services depend on
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	wildcard []Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously; their errors are joined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[event.Type])+len(b.wildcard))
	handlers = append(handlers, b.handlers[event.Type]...)
	handlers = append(handlers, b.wildcard...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every event type (used by forwarders)
func (b *MemoryBus) SubscribeAll(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.wildcard = append(b.wildcard, handler)
}
