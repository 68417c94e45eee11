package discord

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		builder *CommandBuilder
		wantErr bool
	}{
		{name: "message command", builder: NewCommandBuilder("Report to Example", "", CommandMessage)},
		{name: "chat input command", builder: NewCommandBuilder("report", "Report a message", CommandChatInput)},
		{name: "empty name", builder: NewCommandBuilder("", "", CommandMessage), wantErr: true},
		{name: "name too long", builder: NewCommandBuilder(strings.Repeat("x", 33), "", CommandMessage), wantErr: true},
		{name: "message command with description", builder: NewCommandBuilder("Report", "nope", CommandMessage), wantErr: true},
		{name: "chat input without description", builder: NewCommandBuilder("report", "", CommandChatInput), wantErr: true},
		{name: "unknown type", builder: NewCommandBuilder("report", "", CommandType(9)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommandDeclaration(t *testing.T) {
	cmd, err := NewCommandBuilder("Report to Example", "", CommandMessage).NSFW(false).Build()
	require.NoError(t, err)

	decl, err := cmd.Declaration()
	require.NoError(t, err)

	assert.Equal(t, "Report to Example", decl["name"])
	assert.Equal(t, "", decl["description"])
	assert.EqualValues(t, 3, decl["type"])
	assert.Equal(t, false, decl["nsfw"])
	assert.NotContains(t, decl, "id")
	assert.NotContains(t, decl, "integration_types")

	require.NoError(t, decl.Inject("integration_types", []int{IntegrationUserInstall}))
	assert.Error(t, decl.Inject("name", "other"), "existing fields must not be overwritten")
	assert.Error(t, decl.Inject("", 1))

	data, err := json.Marshal(decl)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Report to Example","description":"","type":3,"nsfw":false,"integration_types":[1]}`, string(data))
}

func TestCommandBuilder_DefaultMemberPermissions(t *testing.T) {
	cmd, err := NewCommandBuilder("Report to Example", "", CommandMessage).
		DefaultMemberPermissions("8").
		Build()
	require.NoError(t, err)

	require.NotNil(t, cmd.DefaultMemberPermissions)
	assert.Equal(t, "8", *cmd.DefaultMemberPermissions)

	decl, err := cmd.Declaration()
	require.NoError(t, err)
	assert.Equal(t, "8", decl["default_member_permissions"])
}
