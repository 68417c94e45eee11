package config

import (
	"time"

	"github.com/mattjoyce/dm-reports/internal/discord"
)

// Config represents the complete dm-reports configuration.
type Config struct {
	Discord   DiscordConfig   `koanf:"discord"`
	Webhook   WebhookConfig   `koanf:"webhook"`
	Command   CommandConfig   `koanf:"command"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// DiscordConfig defines platform API access.
type DiscordConfig struct {
	Token  string `koanf:"token" validate:"required"`
	APIURL string `koanf:"api_url" validate:"required,url"`

	// VerifyKey optionally pins the verification key. When set it must match
	// the key the platform reports for the application.
	VerifyKey string `koanf:"verify_key" validate:"omitempty,hexadecimal,len=64"`
}

// WebhookConfig defines where reports are relayed to.
type WebhookConfig struct {
	URL string `koanf:"url" validate:"required,url"`

	// Target is parsed from URL by Load.
	Target discord.Webhook `koanf:"-"`
}

// CommandConfig defines the declared command.
type CommandConfig struct {
	// ServerName is the destination server, shown as "Report to <ServerName>".
	ServerName string `koanf:"server_name" validate:"required,max=22"`
}

// ServerConfig defines HTTP listener settings.
type ServerConfig struct {
	Listen       string        `koanf:"listen" validate:"required"`
	Path         string        `koanf:"path" validate:"required,startswith=/"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// TelemetryConfig defines tracing settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"service_name" validate:"required"`
}

// Defaults returns a Config with every optional setting filled in.
func Defaults() *Config {
	return &Config{
		Discord: DiscordConfig{
			APIURL: discord.DefaultBaseURL,
		},
		Server: ServerConfig{
			Listen:       ":8080",
			Path:         "/api/interactions",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "dm-reports",
		},
	}
}
