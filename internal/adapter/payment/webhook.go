package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
)

// ErrBadSignature indicates an inbound event whose signature does not match.
// Such events must be rejected before any state is read or mutated.
var ErrBadSignature = errors.New("invalid webhook signature")

// SignatureHeader carries the hex-encoded HMAC-SHA256 of the raw event body.
const SignatureHeader = "X-Payment-Signature"

// Event is the gateway's payment-completed notification, delivered
// at-least-once.
type Event struct {
	SessionID      string `json:"session_id"`
	ConfirmationID string `json:"confirmation_id"`
}

// VerifySignature checks the body signature against the shared webhook
// secret using a constant-time comparison.
func VerifySignature(secret string, body []byte, signature string) error {
	if signature == "" {
		return ErrBadSignature
	}
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return ErrBadSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(mac.Sum(nil), provided) {
		return ErrBadSignature
	}
	return nil
}

// Sign produces the signature the gateway attaches to an event body. Exposed
// for tests and local gateway stubs.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseEvent decodes and validates a payment-completed event body.
func ParseEvent(body []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, err
	}
	if ev.SessionID == "" || ev.ConfirmationID == "" {
		return nil, errors.New("event missing session_id or confirmation_id")
	}
	return &ev, nil
}
