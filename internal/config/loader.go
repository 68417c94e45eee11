package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mattjoyce/dm-reports/internal/discord"
)

// PathEnv names the environment variable holding an optional YAML config file.
const PathEnv = "DM_REPORTS_CONFIG"

// envKeys maps environment variables to config keys. Variables not listed
// are ignored.
var envKeys = map[string]string{
	"DISCORD_TOKEN":   "discord.token",
	"DISCORD_API_URL": "discord.api_url",
	"VERIFY_KEY":      "discord.verify_key",
	"WEBHOOK_URL":     "webhook.url",
	"SERVER_NAME":     "command.server_name",
	"LISTEN_ADDR":     "server.listen",
	"LOG_LEVEL":       "log.level",
	"TRACING_ENABLED": "telemetry.enabled",
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and the environment, in increasing precedence.
func Load(path string) (*Config, error) {
	cfg, err := decode(path)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	target, err := discord.ParseWebhookURL(cfg.Webhook.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: webhook.url: %w", err)
	}
	cfg.Webhook.Target = target

	return cfg, nil
}

// LoadRegistration is Load for command registration only: just the discord
// and command sections are validated. A non-empty serverName overrides the
// configured one.
func LoadRegistration(path, serverName string) (*Config, error) {
	cfg, err := decode(path)
	if err != nil {
		return nil, err
	}
	if s := strings.TrimSpace(serverName); s != "" {
		cfg.Command.ServerName = s
	}

	if err := validate(&registration{Discord: cfg.Discord, Command: cfg.Command}); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// registration holds the sections command registration depends on.
type registration struct {
	Discord DiscordConfig `koanf:"discord"`
	Command CommandConfig `koanf:"command"`
}

func decode(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Command.ServerName = strings.TrimSpace(cfg.Command.ServerName)
	return cfg, nil
}
