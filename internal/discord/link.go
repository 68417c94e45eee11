package discord

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrNotWebhookURL       = errors.New("url is not a webhook url")
	ErrMissingWebhookToken = errors.New("webhook url does not contain a token")
)

// Webhook identifies an executable webhook.
type Webhook struct {
	ID    snowflake.ID
	Token string
}

// ParseWebhookURL extracts the webhook id and token from a webhook URL such as
// https://discord.com/api/webhooks/{id}/{token}.
func ParseWebhookURL(raw string) (Webhook, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Webhook{}, fmt.Errorf("parse webhook url: %w", err)
	}
	if u.Host == "" {
		return Webhook{}, ErrNotWebhookURL
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	idx := -1
	for i, s := range segments {
		if s == "webhooks" {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(segments) || segments[idx+1] == "" {
		return Webhook{}, ErrNotWebhookURL
	}

	id, err := snowflake.ParseString(segments[idx+1])
	if err != nil || id <= 0 {
		return Webhook{}, fmt.Errorf("%w: invalid id %q", ErrNotWebhookURL, segments[idx+1])
	}
	if idx+2 >= len(segments) || segments[idx+2] == "" {
		return Webhook{}, ErrMissingWebhookToken
	}

	return Webhook{ID: id, Token: segments[idx+2]}, nil
}
