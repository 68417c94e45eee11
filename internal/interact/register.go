package interact

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/snowflake"
	"github.com/zeebo/blake3"

	"github.com/mattjoyce/dm-reports/internal/discord"
)

// CommandName returns the name of the report command for serverName.
func CommandName(serverName string) string {
	return "Report to " + serverName
}

// Registrar declares the report command to the platform.
type Registrar struct {
	client     CommandSetter
	appID      snowflake.ID
	serverName string
	logger     *slog.Logger
}

// NewRegistrar creates a registrar for the application appID.
func NewRegistrar(client CommandSetter, appID snowflake.ID, serverName string, logger *slog.Logger) *Registrar {
	return &Registrar{client: client, appID: appID, serverName: serverName, logger: logger}
}

// Declarations builds the command set. The builder does not model the
// installation fields, so they are added to the serialized form.
func (r *Registrar) Declarations() ([]discord.CommandDeclaration, error) {
	cmd, err := discord.NewCommandBuilder(CommandName(r.serverName), "", discord.CommandMessage).Build()
	if err != nil {
		return nil, fmt.Errorf("build report command: %w", err)
	}

	decl, err := cmd.Declaration()
	if err != nil {
		return nil, err
	}
	if err := decl.Inject("integration_types", []int{discord.IntegrationUserInstall}); err != nil {
		return nil, err
	}
	if err := decl.Inject("contexts", []int{discord.ContextPrivateChannel}); err != nil {
		return nil, err
	}
	return []discord.CommandDeclaration{decl}, nil
}

// Register sends the command set in a single request.
func (r *Registrar) Register(ctx context.Context) error {
	decls, err := r.Declarations()
	if err != nil {
		return err
	}

	fingerprint, err := Fingerprint(decls)
	if err != nil {
		return err
	}

	registered, err := r.client.SetGlobalCommands(ctx, r.appID, decls)
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}

	r.logger.Info("commands registered",
		"application_id", r.appID.String(),
		"count", len(registered),
		"fingerprint", fingerprint,
	)
	return nil
}

// Fingerprint returns the BLAKE3 hash of the serialized declarations.
func Fingerprint(decls []discord.CommandDeclaration) (string, error) {
	data, err := json.Marshal(decls)
	if err != nil {
		return "", fmt.Errorf("serialize declarations: %w", err)
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
