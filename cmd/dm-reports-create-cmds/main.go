// Command dm-reports-create-cmds declares the report command without
// starting the interaction server.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mattjoyce/dm-reports/internal/config"
	"github.com/mattjoyce/dm-reports/internal/discord"
	"github.com/mattjoyce/dm-reports/internal/interact"
	"github.com/mattjoyce/dm-reports/internal/log"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	if len(args) > 1 || (len(args) == 1 && isHelpToken(args[0])) {
		fmt.Fprintln(os.Stderr, "Usage: dm-reports-create-cmds [server name]")
		fmt.Fprintln(os.Stderr, "The server name defaults to SERVER_NAME.")
		if len(args) == 1 {
			return 0
		}
		return 1
	}

	_ = godotenv.Load()

	var serverName string
	if len(args) == 1 {
		serverName = args[0]
	}

	cfg, err := config.LoadRegistration(os.Getenv(config.PathEnv), serverName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup(cfg.Log.Level)
	logger := log.WithComponent("create-cmds")

	client := discord.NewClient(cfg.Discord.Token, discord.WithBaseURL(cfg.Discord.APIURL))
	app, err := client.CurrentApplication(ctx)
	if err != nil {
		logger.Error("failed to resolve application", "error", err)
		return 1
	}

	registrar := interact.NewRegistrar(client, app.ID, cfg.Command.ServerName, logger)
	if err := registrar.Register(ctx); err != nil {
		logger.Error("failed to register commands", "error", err)
		return 1
	}

	fmt.Printf("Registered %q for application %s\n", interact.CommandName(cfg.Command.ServerName), app.ID)
	return 0
}

func isHelpToken(arg string) bool {
	switch strings.TrimSpace(arg) {
	case "help", "--help", "-h":
		return true
	}
	return false
}
