package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/journey-app/journey/internal/config"
	"github.com/journey-app/journey/internal/event"
)

// EventSystem bundles the in-process bus, the retrying publisher the services
// publish through, and the optional RabbitMQ mirror.
type EventSystem struct {
	Bus       *event.MemoryBus
	Publisher *event.ResilientPublisher
	Forwarder *event.AMQPForwarder
}

// InitializeEventSystem creates the event bus and resilient publisher and
// makes sure the dead-letter directory exists.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return &EventSystem{Bus: bus, Publisher: publisher}, nil
}

// Shutdown flushes pending retries, then closes the broker connection
func (es *EventSystem) Shutdown(ctx context.Context) {
	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := es.Publisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	if es.Forwarder != nil {
		if err := es.Forwarder.Close(); err != nil {
			slog.Error(LogMsgForwarderCloseFailed, "error", err)
		}
	}
}
