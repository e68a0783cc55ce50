package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/journey-app/journey/internal/config"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/metrics"
	"github.com/journey-app/journey/internal/notify"
)

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event counters)
// - Raffle winner notifier (Discord webhook), when configured
// - RabbitMQ forwarder for every event, when configured
func RegisterEventHandlers(cfg *config.Config, es *EventSystem) error {
	metrics.NewEventMetricsCollector().Register(es.Bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if cfg.DiscordEnabled() {
		notifier, err := notify.NewNotifier(cfg.DiscordWebhookID, cfg.DiscordWebhookToken, cfg.NotifyLanguage)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
		}
		notifier.Subscribe(es.Bus)
	} else {
		slog.Info(LogMsgNotifierDisabled)
	}

	if cfg.AMQPEnabled() {
		forwarder, err := event.NewAMQPForwarder(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedCreateForwarder, err)
		}
		es.Bus.SubscribeAll(forwarder.Forward)
		es.Forwarder = forwarder
		slog.Info(LogMsgAMQPForwarderEnabled, "exchange", cfg.RabbitMQExchange)
	} else {
		slog.Info(LogMsgAMQPForwarderDisabled)
	}

	return nil
}
