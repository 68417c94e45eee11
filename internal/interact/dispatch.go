package interact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mattjoyce/dm-reports/internal/discord"
	"github.com/mattjoyce/dm-reports/internal/log"
)

const unsupportedMessage = "Unsupported interaction kind"

// CommandHandler handles an application command and returns the text shown
// to the invoker.
type CommandHandler interface {
	Handle(ctx context.Context, interaction *discord.Interaction) (string, error)
}

// Dispatcher routes authenticated interactions by kind.
type Dispatcher struct {
	handler CommandHandler
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher sending commands to handler.
func NewDispatcher(handler CommandHandler, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{handler: handler, logger: logger}
}

// Dispatch always produces a response object: handler failures are rendered
// as messages, never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, interaction *discord.Interaction) discord.InteractionResponse {
	logger := log.WithInteraction(d.logger, interaction.ID.String())

	switch interaction.Type {
	case discord.InteractionPing:
		logger.Debug("ping acknowledged")
		return discord.InteractionResponse{Type: discord.ResponsePong}

	case discord.InteractionApplicationCommand:
		text, err := d.handler.Handle(ctx, interaction)
		if err != nil {
			attrs := []any{"error", err}
			// *Error renders only the invoker's text; keep the cause in the log.
			if cause := errors.Unwrap(err); cause != nil {
				attrs = append(attrs, "cause", cause)
			}
			logger.Warn("command failed", attrs...)
			return Message(UserMessage(err))
		}
		return Message(text)

	default:
		logger.Info("unsupported interaction", "type", interaction.Type.String())
		return Message(unsupportedMessage)
	}
}

// Message wraps description in an ephemeral message response.
func Message(description string) discord.InteractionResponse {
	return discord.InteractionResponse{
		Type: discord.ResponseChannelMessageWithSource,
		Data: &discord.InteractionResponseData{
			Flags:  discord.MessageFlagEphemeral,
			Embeds: []discord.Embed{{Description: description}},
		},
	}
}
