package discord

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// InteractionType discriminates the interaction payloads the platform delivers.
type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
	InteractionMessageComponent   InteractionType = 3
	InteractionAutocomplete       InteractionType = 4
	InteractionModalSubmit        InteractionType = 5
)

func (t InteractionType) String() string {
	switch t {
	case InteractionPing:
		return "ping"
	case InteractionApplicationCommand:
		return "application_command"
	case InteractionMessageComponent:
		return "message_component"
	case InteractionAutocomplete:
		return "autocomplete"
	case InteractionModalSubmit:
		return "modal_submit"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Interaction is an inbound interaction callback.
type Interaction struct {
	ID            snowflake.ID    `json:"id"`
	ApplicationID snowflake.ID    `json:"application_id"`
	Type          InteractionType `json:"type"`
	Token         string          `json:"token"`
	Member        *Member         `json:"member,omitempty"`
	User          *User           `json:"user,omitempty"`

	// Data is decoded according to Type. It is nil when the payload carries
	// no data.
	Data InteractionData `json:"-"`
}

// InteractionData is implemented by the payload variants of an interaction.
type InteractionData interface {
	interactionData()
}

// CommandData is the data of an application command invocation.
type CommandData struct {
	ID       snowflake.ID  `json:"id"`
	Name     string        `json:"name"`
	Type     CommandType   `json:"type"`
	TargetID *snowflake.ID `json:"target_id,omitempty"`
	Resolved *Resolved     `json:"resolved,omitempty"`
}

// OtherData holds the undecoded data of interaction kinds this service does
// not act on.
type OtherData json.RawMessage

func (*CommandData) interactionData() {}
func (OtherData) interactionData()    {}

// Resolved carries snapshots of the entities referenced by a command.
type Resolved struct {
	Messages map[snowflake.ID]Message `json:"messages,omitempty"`
}

// UnmarshalJSON decodes the envelope, then the data according to the type.
func (i *Interaction) UnmarshalJSON(b []byte) error {
	type envelope Interaction
	var raw struct {
		envelope
		Data json.RawMessage `json:"data,omitempty"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*i = Interaction(raw.envelope)

	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		return nil
	}
	switch i.Type {
	case InteractionApplicationCommand:
		var data CommandData
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return fmt.Errorf("decode command data: %w", err)
		}
		i.Data = &data
	default:
		i.Data = OtherData(raw.Data)
	}
	return nil
}

// Author returns the invoking user: the guild member's user, or the user for
// interactions outside a guild.
func (i *Interaction) Author() *User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// User is a platform account.
type User struct {
	ID       snowflake.ID `json:"id"`
	Username string       `json:"username"`
	Bot      bool         `json:"bot,omitempty"`
}

// Mention renders the user as a mention.
func (u User) Mention() string {
	return "<@" + u.ID.String() + ">"
}

// Member is a guild member.
type Member struct {
	User *User  `json:"user,omitempty"`
	Nick string `json:"nick,omitempty"`
}

// Message is a message snapshot.
type Message struct {
	ID              snowflake.ID `json:"id"`
	ChannelID       snowflake.ID `json:"channel_id"`
	Author          User         `json:"author"`
	Content         string       `json:"content"`
	Timestamp       time.Time    `json:"timestamp"`
	EditedTimestamp *time.Time   `json:"edited_timestamp,omitempty"`
}

// Embed is a structured display block attached to a message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// EmbedField is a labelled value inside an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// InteractionResponseType is the kind of an interaction response.
type InteractionResponseType int

const (
	ResponsePong                     InteractionResponseType = 1
	ResponseChannelMessageWithSource InteractionResponseType = 4
)

// MessageFlags is a bitfield of message flags.
type MessageFlags int

// MessageFlagEphemeral makes a response visible only to the invoker.
const MessageFlagEphemeral MessageFlags = 1 << 6

// InteractionResponse is the body returned for an interaction.
type InteractionResponse struct {
	Type InteractionResponseType  `json:"type"`
	Data *InteractionResponseData `json:"data,omitempty"`
}

// InteractionResponseData is the message carried by an interaction response.
type InteractionResponseData struct {
	Content string       `json:"content,omitempty"`
	Flags   MessageFlags `json:"flags,omitempty"`
	Embeds  []Embed      `json:"embeds,omitempty"`
}

// WebhookMessage is the body of a webhook execution.
type WebhookMessage struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Application is the current application's metadata.
type Application struct {
	ID        snowflake.ID `json:"id"`
	Name      string       `json:"name"`
	VerifyKey string       `json:"verify_key"`
}

// APIError is an error response from the REST API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("discord api error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("discord api error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
}
