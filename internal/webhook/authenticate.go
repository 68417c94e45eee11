package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mattjoyce/dm-reports/internal/discord"
)

// ErrorKind classifies why an inbound request was rejected.
type ErrorKind int

const (
	KindMissingHeader ErrorKind = iota + 1
	KindBodyRead
	KindMalformedSignature
	KindInvalidSignature
	KindMalformedPayload
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingHeader:
		return "missing_header"
	case KindBodyRead:
		return "body_read"
	case KindMalformedSignature:
		return "malformed_signature"
	case KindInvalidSignature:
		return "invalid_signature"
	case KindMalformedPayload:
		return "malformed_payload"
	default:
		return "unknown"
	}
}

// RequestError is returned by Authenticate.
type RequestError struct {
	Kind ErrorKind
	// Header names the missing header for KindMissingHeader.
	Header string
	Err    error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case KindMissingHeader:
		return fmt.Sprintf("missing header %s", e.Header)
	case KindBodyRead:
		return fmt.Sprintf("failed to read body: %v", e.Err)
	case KindMalformedSignature, KindInvalidSignature:
		return fmt.Sprintf("failed to validate signature: %v", e.Err)
	case KindMalformedPayload:
		return fmt.Sprintf("failed to deserialize body: %v", e.Err)
	default:
		return fmt.Sprintf("request rejected: %v", e.Err)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code the rejection is answered with.
func (e *RequestError) Status() int {
	switch e.Kind {
	case KindInvalidSignature:
		return http.StatusUnauthorized
	case KindBodyRead:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// Authenticate verifies the request signature and decodes the interaction.
//
// Headers are checked before the body is read, and the body is only decoded
// once its signature verifies. Any failure is a *RequestError.
func Authenticate(r *http.Request, key Key) (*discord.Interaction, error) {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		return nil, &RequestError{Kind: KindMissingHeader, Header: SignatureHeader}
	}
	timestamp := r.Header.Get(TimestampHeader)
	if timestamp == "" {
		return nil, &RequestError{Kind: KindMissingHeader, Header: TimestampHeader}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &RequestError{Kind: KindBodyRead, Err: err}
	}

	if err := key.Verify([]byte(signature), []byte(timestamp), body); err != nil {
		kind := KindInvalidSignature
		if errors.Is(err, ErrMalformedSignature) {
			kind = KindMalformedSignature
		}
		return nil, &RequestError{Kind: kind, Err: err}
	}

	var interaction discord.Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		return nil, &RequestError{Kind: KindMalformedPayload, Err: err}
	}
	return &interaction, nil
}
