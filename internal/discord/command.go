package discord

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bwmarrin/snowflake"
)

// CommandType is the kind of an application command.
type CommandType int

const (
	CommandChatInput CommandType = 1
	CommandUser      CommandType = 2
	CommandMessage   CommandType = 3
)

// Installation contexts, used in the integration_types field.
const (
	IntegrationGuildInstall = 0
	IntegrationUserInstall  = 1
)

// Interaction contexts, used in the contexts field.
const (
	ContextGuild          = 0
	ContextBotDM          = 1
	ContextPrivateChannel = 2
)

// Command is an application command as accepted and returned by the API.
type Command struct {
	ID                       *snowflake.ID `json:"id,omitempty"`
	ApplicationID            *snowflake.ID `json:"application_id,omitempty"`
	Name                     string        `json:"name"`
	Description              string        `json:"description"`
	Type                     CommandType   `json:"type"`
	DefaultMemberPermissions *string       `json:"default_member_permissions,omitempty"`
	NSFW                     *bool         `json:"nsfw,omitempty"`
}

// CommandBuilder builds a Command.
type CommandBuilder struct {
	cmd Command
}

// NewCommandBuilder starts a command with the given name, description and type.
func NewCommandBuilder(name, description string, kind CommandType) *CommandBuilder {
	return &CommandBuilder{cmd: Command{Name: name, Description: description, Type: kind}}
}

// DefaultMemberPermissions restricts the command to members holding the given
// permission bitset.
func (b *CommandBuilder) DefaultMemberPermissions(perms string) *CommandBuilder {
	b.cmd.DefaultMemberPermissions = &perms
	return b
}

// NSFW marks the command as age-restricted.
func (b *CommandBuilder) NSFW(nsfw bool) *CommandBuilder {
	b.cmd.NSFW = &nsfw
	return b
}

// Build validates and returns the command.
func (b *CommandBuilder) Build() (Command, error) {
	n := utf8.RuneCountInString(b.cmd.Name)
	if n < 1 || n > 32 {
		return Command{}, fmt.Errorf("command name must be 1-32 characters, got %d", n)
	}
	switch b.cmd.Type {
	case CommandChatInput:
		if d := utf8.RuneCountInString(b.cmd.Description); d < 1 || d > 100 {
			return Command{}, fmt.Errorf("chat input command description must be 1-100 characters, got %d", d)
		}
	case CommandUser, CommandMessage:
		if b.cmd.Description != "" {
			return Command{}, errors.New("context menu commands cannot have a description")
		}
	default:
		return Command{}, fmt.Errorf("unknown command type %d", b.cmd.Type)
	}
	return b.cmd, nil
}

// CommandDeclaration is the serialized form of a command, open to fields the
// typed Command does not model.
type CommandDeclaration map[string]any

// Declaration serializes the command into a CommandDeclaration.
func (c Command) Declaration() (CommandDeclaration, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("serialize command: %w", err)
	}
	var decl CommandDeclaration
	if err := json.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("serialize command: %w", err)
	}
	return decl, nil
}

// Inject adds a field to the declaration. It refuses to overwrite a field
// that is already present.
func (d CommandDeclaration) Inject(key string, value any) error {
	if key == "" {
		return errors.New("declaration field name is empty")
	}
	if _, exists := d[key]; exists {
		return fmt.Errorf("declaration field %q already set", key)
	}
	d[key] = value
	return nil
}
