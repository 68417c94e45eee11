package discord

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("bot-token", WithBaseURL(srv.URL+"/"), WithHTTPClient(srv.Client()))
}

func TestClient_CurrentApplication(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/applications/@me", r.URL.Path)
		assert.Equal(t, "Bot bot-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"1234","name":"reports","verify_key":"abcd"}`)
	})

	app, err := client.CurrentApplication(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snowflake.ID(1234), app.ID)
	assert.Equal(t, "abcd", app.VerifyKey)
}

func TestClient_SetGlobalCommands(t *testing.T) {
	var got []map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/applications/1234/commands", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `[{"id":"9","application_id":"1234","name":"Report to X","description":"","type":3}]`)
	})

	decl := []CommandDeclaration{{"name": "Report to X", "type": 3, "contexts": []int{2}}}
	cmds, err := client.SetGlobalCommands(context.Background(), snowflake.ID(1234), decl)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, []any{float64(2)}, got[0]["contexts"])
	require.Len(t, cmds, 1)
	require.NotNil(t, cmds[0].ID)
	assert.Equal(t, snowflake.ID(9), *cmds[0].ID)
}

func TestClient_ExecuteWebhook(t *testing.T) {
	var got WebhookMessage
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/webhooks/55/hook-token", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("wait"))
		assert.Empty(t, r.Header.Get("Authorization"), "webhook execution must not send the bot token")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"id":"77"}`)
	})

	err := client.ExecuteWebhook(context.Background(), Webhook{ID: 55, Token: "hook-token"}, WebhookMessage{
		Content: "reported text",
		Embeds:  []Embed{{Fields: []EmbedField{{Name: "author", Value: "<@1>", Inline: true}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "reported text", got.Content)
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "author", got.Embeds[0].Fields[0].Name)
}

func TestClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"code":10015,"message":"Unknown Webhook"}`)
	})

	err := client.ExecuteWebhook(context.Background(), Webhook{ID: 1, Token: "x"}, WebhookMessage{Content: "c"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, 10015, apiErr.Code)
	assert.Equal(t, "Unknown Webhook", apiErr.Message)
}

func TestClient_APIErrorWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CurrentApplication(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "discord api error (status 502)", apiErr.Error())
}

func TestClient_ExecuteWebhookErrorOmitsToken(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client := NewClient("bot-token", WithBaseURL(baseURL))
	err := client.ExecuteWebhook(context.Background(), Webhook{ID: 55, Token: "SECRET-HOOK-TOKEN"}, WebhookMessage{Content: "x"})

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET-HOOK-TOKEN")
	assert.Contains(t, err.Error(), "/webhooks/{id}/{token}")

	var uerr *url.Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "/webhooks/{id}/{token}", uerr.URL)
}

func TestClient_WebhookRequestsAreNotTraced(t *testing.T) {
	hook := httptest.NewRequest(http.MethodPost, "https://discord.com/api/v10/webhooks/55/SECRET-HOOK-TOKEN?wait=true", nil)
	app := httptest.NewRequest(http.MethodGet, "https://discord.com/api/v10/applications/@me", nil)

	assert.False(t, traced(hook))
	assert.True(t, traced(app))
	assert.Equal(t, "discord POST", spanName("", hook))
}
