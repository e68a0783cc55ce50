// Package notify announces raffle winners on a Discord channel webhook.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/journey-app/journey/internal/domain"
	"github.com/journey-app/journey/internal/event"
	"github.com/journey-app/journey/internal/logger"
)

// Notifier posts an embed to a Discord webhook whenever a raffle is drawn
type Notifier struct {
	session   *discordgo.Session
	webhookID string
	token     string
	printer   *message.Printer
	title     cases.Caser
}

// NewNotifier creates a webhook notifier. lang selects number formatting and title casing ("en", "de", ...).
func NewNotifier(webhookID, token, lang string) (*Notifier, error) {
	if webhookID == "" || token == "" {
		return nil, errors.New(ErrMsgMissingWebhook)
	}

	// Webhook execution is authorized by the webhook token, not a bot token
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSession, err)
	}
	return newNotifierWithSession(session, webhookID, token, lang), nil
}

func newNotifierWithSession(session *discordgo.Session, webhookID, token, lang string) *Notifier {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Notifier{
		session:   session,
		webhookID: webhookID,
		token:     token,
		printer:   message.NewPrinter(tag),
		title:     cases.Title(tag),
	}
}

// Subscribe registers the notifier for raffle.drawn events
func (n *Notifier) Subscribe(bus event.Bus) {
	bus.Subscribe(event.RaffleDrawn, n.HandleRaffleDrawn)
	logger.Info(LogMsgNotifierSubscribed, "webhook_id", n.webhookID)
}

// HandleRaffleDrawn sends the winner announcement. Delivery failures are logged, not returned,
// so a Discord outage never triggers a re-publish to the other subscribers.
func (n *Notifier) HandleRaffleDrawn(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[domain.RaffleDrawnPayload](evt.Payload)
	if err != nil {
		log.Warn(LogMsgBadPayload, "error", err)
		return nil
	}

	_, err = n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{n.buildEmbed(payload)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		log.Error(LogMsgWebhookFailed, "raffle_id", payload.RaffleID, "error", err)
		return nil
	}

	log.Info(LogMsgWebhookSent, "raffle_id", payload.RaffleID, "winners", len(payload.WinnerIDs))
	return nil
}

func (n *Notifier) buildEmbed(p domain.RaffleDrawnPayload) *discordgo.MessageEmbed {
	var sb strings.Builder
	if len(p.WinnerIDs) == 0 {
		sb.WriteString(n.printer.Sprintf("No winners were drawn."))
	}
	for i, id := range p.WinnerIDs {
		if i == MaxListedWinners {
			sb.WriteString(n.printer.Sprintf("…and %d more\n", len(p.WinnerIDs)-MaxListedWinners))
			break
		}
		sb.WriteString(n.printer.Sprintf("%d. %s\n", i+1, id))
	}

	return &discordgo.MessageEmbed{
		Title:       n.printer.Sprintf("Raffle drawn: %s", n.title.String(p.Title)),
		Description: sb.String(),
		Color:       ColorRaffleDrawn,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Participants", Value: n.printer.Sprintf("%d", p.ParticipantCount), Inline: true},
			{Name: "Tickets", Value: n.printer.Sprintf("%d", p.TotalWeight), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterText,
		},
	}
}
