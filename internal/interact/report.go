package interact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mattjoyce/dm-reports/internal/discord"
	"github.com/mattjoyce/dm-reports/internal/log"
)

// ReportSubmitted is shown to the invoker once the report is delivered.
const ReportSubmitted = "Report submitted. Thank you!"

// Report is a reported message, formatted for relay.
type Report struct {
	ID      uuid.UUID
	Content string
	Embed   discord.Embed
}

// NewReport formats msg as reported by reporter.
func NewReport(msg discord.Message, reporter discord.User) Report {
	edited := "never"
	if msg.EditedTimestamp != nil {
		edited = relativeTimestamp(msg.EditedTimestamp.Unix())
	}

	return Report{
		ID:      uuid.New(),
		Content: msg.Content,
		Embed: discord.Embed{
			Fields: []discord.EmbedField{
				{Name: "author", Value: msg.Author.Mention(), Inline: true},
				{Name: "reporter", Value: reporter.Mention(), Inline: true},
				{Name: "edited", Value: edited, Inline: true},
				{Name: "sent", Value: relativeTimestamp(discord.CreatedAt(msg.ID)), Inline: true},
			},
		},
	}
}

// WebhookMessage renders the report as a webhook execution body.
func (r Report) WebhookMessage() discord.WebhookMessage {
	return discord.WebhookMessage{
		Content: r.Content,
		Embeds:  []discord.Embed{r.Embed},
	}
}

func relativeTimestamp(unix int64) string {
	return fmt.Sprintf("<t:%d:R>", unix)
}

// ReportHandler relays a reported message to the moderation webhook.
type ReportHandler struct {
	client WebhookExecutor
	target discord.Webhook
	logger *slog.Logger
}

// NewReportHandler creates a handler relaying reports to target.
func NewReportHandler(client WebhookExecutor, target discord.Webhook, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{client: client, target: target, logger: logger}
}

// Handle validates the invocation and relays the targeted message. Every
// failure is an *Error.
func (h *ReportHandler) Handle(ctx context.Context, interaction *discord.Interaction) (string, error) {
	reporter := interaction.Author()
	if reporter == nil {
		return "", ErrNoInvoker
	}

	data, ok := interaction.Data.(*discord.CommandData)
	if !ok || data == nil {
		return "", ErrBadInteractionData
	}
	if data.Resolved == nil {
		return "", ErrNoResolvedData
	}
	if data.TargetID == nil {
		return "", ErrNoTargetID
	}

	msg, ok := data.Resolved.Messages[*data.TargetID]
	if !ok {
		return "", ErrMissingMessage
	}
	if msg.Author.ID == reporter.ID {
		return "", ErrSelfReport
	}

	report := NewReport(msg, *reporter)
	logger := log.WithReport(h.logger, report.ID.String())

	if err := h.client.ExecuteWebhook(ctx, h.target, report.WebhookMessage()); err != nil {
		logger.Error("report delivery failed", "message_id", msg.ID.String(), "error", err)
		return "", &Error{Kind: KindDeliveryFailed, Err: err}
	}

	logger.Info("report delivered",
		"message_id", msg.ID.String(),
		"author_id", msg.Author.ID.String(),
		"reporter_id", reporter.ID.String(),
	)
	return ReportSubmitted, nil
}
