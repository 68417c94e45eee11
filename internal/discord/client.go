package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://discord.com/api/v10"
	userAgent      = "DiscordBot (https://github.com/mattjoyce/dm-reports, 0.1.0)"
)

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Client is a minimal REST client for the platform API. It is safe for
// concurrent use.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client authenticating with the given bot token.
// Requests are traced through otelhttp.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport,
				otelhttp.WithFilter(traced),
				otelhttp.WithSpanNameFormatter(spanName),
			),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentApplication fetches the application owning the bot token.
func (c *Client) CurrentApplication(ctx context.Context) (*Application, error) {
	var app Application
	if err := c.do(ctx, http.MethodGet, "/applications/@me", "/applications/@me", nil, true, &app); err != nil {
		return nil, fmt.Errorf("get current application: %w", err)
	}
	return &app, nil
}

// SetGlobalCommands overwrites the application's global commands with
// commands, which must serialize to a JSON array.
func (c *Client) SetGlobalCommands(ctx context.Context, applicationID snowflake.ID, commands any) ([]Command, error) {
	var out []Command
	path := "/applications/" + applicationID.String() + "/commands"
	if err := c.do(ctx, http.MethodPut, path, "/applications/{id}/commands", commands, true, &out); err != nil {
		return nil, fmt.Errorf("set global commands: %w", err)
	}
	return out, nil
}

// ExecuteWebhook posts msg through the webhook and waits for the platform to
// confirm delivery.
func (c *Client) ExecuteWebhook(ctx context.Context, hook Webhook, msg WebhookMessage) error {
	path := "/webhooks/" + hook.ID.String() + "/" + hook.Token + "?wait=true"
	if err := c.do(ctx, http.MethodPost, path, webhookRoute, msg, false, nil); err != nil {
		return fmt.Errorf("execute webhook %s: %w", hook.ID, err)
	}
	return nil
}

// do sends a request to path. Errors name the request by route, never by
// path, since webhook paths carry the webhook token.
func (c *Client) do(ctx context.Context, method, path, route string, in any, authorize bool, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", redactURL(err, route))
	}
	req.Header.Set("User-Agent", userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Webhook executions authenticate with the token in the path.
	if authorize {
		req.Header.Set("Authorization", "Bot "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", redactURL(err, route))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, apiErr)
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

const webhookRoute = "/webhooks/{id}/{token}"

// redactURL replaces the URL a *url.Error carries with route.
func redactURL(err error, route string) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	return &url.Error{Op: uerr.Op, URL: route, Err: uerr.Err}
}

// traced excludes webhook executions from tracing: their URL holds the token.
func traced(r *http.Request) bool {
	return !strings.Contains(r.URL.Path, "/webhooks/")
}

func spanName(_ string, r *http.Request) string {
	return "discord " + r.Method
}
