package discord

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    Webhook
		wantErr error
	}{
		{
			name: "api url",
			url:  "https://discord.com/api/webhooks/123456789012345678/abc-DEF_token",
			want: Webhook{ID: snowflake.ID(123456789012345678), Token: "abc-DEF_token"},
		},
		{
			name: "versioned api url with trailing slash",
			url:  "https://canary.discord.com/api/v10/webhooks/42/tok/",
			want: Webhook{ID: snowflake.ID(42), Token: "tok"},
		},
		{
			name: "legacy host",
			url:  "https://discordapp.com/api/webhooks/7/secret",
			want: Webhook{ID: snowflake.ID(7), Token: "secret"},
		},
		{
			name:    "missing token",
			url:     "https://discord.com/api/webhooks/123",
			wantErr: ErrMissingWebhookToken,
		},
		{
			name:    "not a webhook",
			url:     "https://discord.com/api/channels/123/messages",
			wantErr: ErrNotWebhookURL,
		},
		{
			name:    "non numeric id",
			url:     "https://discord.com/api/webhooks/abc/token",
			wantErr: ErrNotWebhookURL,
		},
		{
			name:    "no host",
			url:     "webhooks/1/token",
			wantErr: ErrNotWebhookURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWebhookURL(tt.url)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
