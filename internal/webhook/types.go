package webhook

import (
	"context"
	"time"

	"github.com/mattjoyce/dm-reports/internal/discord"
)

// Dispatcher turns an authenticated interaction into its response.
type Dispatcher interface {
	Dispatch(ctx context.Context, interaction *discord.Interaction) discord.InteractionResponse
}

// Config holds interaction server configuration.
type Config struct {
	Listen string

	// Path is the URL path interactions are posted to (default: /api/interactions)
	Path string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// HealthzResponse is returned by GET /healthz.
type HealthzResponse struct {
	Status string `json:"status"`
}

// Default values
const (
	DefaultPath         = "/api/interactions"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)
