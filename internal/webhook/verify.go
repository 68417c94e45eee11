package webhook

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
)

// Header names carrying the request signature. Lookup is case-insensitive.
const (
	SignatureHeader = "X-Signature-Ed25519"
	TimestampHeader = "X-Signature-Timestamp"
)

var (
	ErrInvalidKey         = errors.New("invalid verification key")
	ErrMalformedSignature = errors.New("malformed signature")
	ErrInvalidSignature   = errors.New("invalid signature")
)

// Key is the application's Ed25519 public verification key. The zero value
// rejects every signature.
type Key struct {
	pub ed25519.PublicKey
}

// ParseKey decodes a hex-encoded 32-byte public key.
func ParseKey(hexKey string) (Key, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return Key{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(raw), ed25519.PublicKeySize)
	}
	return Key{pub: ed25519.PublicKey(raw)}, nil
}

// String returns the hex encoding of the key.
func (k Key) String() string {
	return hex.EncodeToString(k.pub)
}

// Equal reports whether both keys hold the same public key.
func (k Key) Equal(other Key) bool {
	return k.pub.Equal(other.pub)
}

// Verify checks that signature, a hex-encoded Ed25519 signature, signs
// timestamp || body.
func (k Key) Verify(signature, timestamp, body []byte) error {
	if len(k.pub) != ed25519.PublicKeySize {
		return ErrInvalidKey
	}

	if len(signature) != hex.EncodedLen(ed25519.SignatureSize) {
		return ErrMalformedSignature
	}
	sig := make([]byte, ed25519.SignatureSize)
	if _, err := hex.Decode(sig, signature); err != nil {
		return ErrMalformedSignature
	}

	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)

	if !ed25519.Verify(k.pub, msg, sig) {
		return ErrInvalidSignature
	}
	return nil
}
