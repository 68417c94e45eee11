package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mattjoyce/dm-reports/internal/config"
	"github.com/mattjoyce/dm-reports/internal/discord"
	"github.com/mattjoyce/dm-reports/internal/interact"
	"github.com/mattjoyce/dm-reports/internal/log"
	"github.com/mattjoyce/dm-reports/internal/telemetry"
	"github.com/mattjoyce/dm-reports/internal/webhook"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Printf("dm-reports version %s\n", version)
			return 0
		case "help", "--help", "-h":
			printUsage(os.Stdout)
			return 0
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n\n", args[0])
			printUsage(os.Stderr)
			return 1
		}
	}

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv(config.PathEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup(cfg.Log.Level)
	logger := log.WithComponent("main")
	logger.Info("dm-reports starting", "version", version, "server_name", cfg.Command.ServerName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(cfg.Telemetry.ServiceName, logger)
		if err != nil {
			logger.Error("failed to initialize tracing", "error", err)
			return 1
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("failed to flush traces", "error", err)
			}
		}()
	}

	server, err := bootstrap(ctx, cfg)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return 1
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("interaction server: %w", err)
		}
		close(errCh)
	}()

	logger.Info("dm-reports running (press Ctrl+C to stop)")

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
		if err := <-errCh; err != nil {
			logger.Error("shutdown failed", "error", err)
			return 1
		}
	case err := <-errCh:
		logger.Error("component failed", "error", err)
		return 1
	}

	logger.Info("dm-reports stopped")
	return 0
}

// bootstrap resolves the application, declares the report command and builds
// the interaction server. Nothing is served until it returns.
func bootstrap(ctx context.Context, cfg *config.Config) (*webhook.Server, error) {
	client := discord.NewClient(cfg.Discord.Token, discord.WithBaseURL(cfg.Discord.APIURL))

	app, err := client.CurrentApplication(ctx)
	if err != nil {
		return nil, err
	}

	key, err := verificationKey(app, cfg.Discord.VerifyKey)
	if err != nil {
		return nil, err
	}

	registrar := interact.NewRegistrar(client, app.ID, cfg.Command.ServerName, log.WithComponent("registrar"))
	if err := registrar.Register(ctx); err != nil {
		return nil, err
	}

	handler := interact.NewReportHandler(client, cfg.Webhook.Target, log.WithComponent("report"))
	dispatcher := interact.NewDispatcher(handler, log.WithComponent("dispatch"))

	serverConfig, err := webhook.FromGlobalConfig(&cfg.Server)
	if err != nil {
		return nil, err
	}
	return webhook.New(serverConfig, key, dispatcher, log.WithComponent("webhook")), nil
}

// verificationKey parses the key the platform reports for app. A pinned key,
// when configured, must be the same key.
func verificationKey(app *discord.Application, pinned string) (webhook.Key, error) {
	key, err := webhook.ParseKey(app.VerifyKey)
	if err != nil {
		return webhook.Key{}, fmt.Errorf("application %s verify_key: %w", app.ID, err)
	}
	if pinned == "" {
		return key, nil
	}

	want, err := webhook.ParseKey(pinned)
	if err != nil {
		return webhook.Key{}, fmt.Errorf("discord.verify_key: %w", err)
	}
	if !key.Equal(want) {
		return webhook.Key{}, fmt.Errorf("discord.verify_key does not match the key of application %s", app.ID)
	}
	return key, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `dm-reports - Relay reported direct messages to a moderation webhook

Usage:
  dm-reports [command]

Commands:
  (none)    Register the report command and serve interactions
  version   Show version information
  help      Show this help message

Environment:
  DISCORD_TOKEN      Bot token (required)
  WEBHOOK_URL        Webhook receiving reports (required)
  SERVER_NAME        Server name shown in the command (required)
  VERIFY_KEY         Expected application public key (optional)
  LISTEN_ADDR        Listen address (default :8080)
  LOG_LEVEL          debug, info, warn or error (default info)
  DISCORD_API_URL    API base URL (default https://discord.com/api/v10)
  TRACING_ENABLED    Export traces to stdout (default false)
  DM_REPORTS_CONFIG  Optional YAML config file
`)
}
