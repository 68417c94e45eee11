package interact

import (
	"context"

	"github.com/bwmarrin/snowflake"

	"github.com/mattjoyce/dm-reports/internal/discord"
)

//go:generate mockgen -destination=mocks/mock_discord.go -package=mocks github.com/mattjoyce/dm-reports/internal/interact WebhookExecutor,CommandSetter

// WebhookExecutor defines the outbound operation used by the report handler.
type WebhookExecutor interface {
	ExecuteWebhook(ctx context.Context, hook discord.Webhook, msg discord.WebhookMessage) error
}

// CommandSetter defines the outbound operation used by the registrar.
type CommandSetter interface {
	SetGlobalCommands(ctx context.Context, applicationID snowflake.ID, commands any) ([]discord.Command, error)
}
