package webhook

import (
	"fmt"

	"github.com/mattjoyce/dm-reports/internal/config"
)

// FromGlobalConfig converts config.ServerConfig to webhook.Config.
func FromGlobalConfig(sc *config.ServerConfig) (Config, error) {
	if sc == nil {
		return Config{}, fmt.Errorf("server config is nil")
	}
	if sc.Listen == "" {
		return Config{}, fmt.Errorf("server.listen is required")
	}

	return Config{
		Listen:       sc.Listen,
		Path:         sc.Path,
		ReadTimeout:  sc.ReadTimeout,
		WriteTimeout: sc.WriteTimeout,
	}, nil
}
