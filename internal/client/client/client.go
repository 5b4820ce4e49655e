package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Client sends one request to the catalog endpoint and returns the decoded
// envelope. Implementations hold no per-call state and are safe for
// concurrent use.
type Client interface {
	Send(ctx context.Context, body any) (Envelope, error)
}

// Envelope is the decoded response body. Code keeps the raw discriminator
// (it may be a string, a number or something unexpected); Payload is left
// generic for the caller to interpret.
type Envelope struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message,omitempty"`
	Payload map[string]any  `json:"payload,omitempty"`
}

// CodeString returns the discriminator when it is a JSON string, and
// ok=false for any other encoding.
func (e Envelope) CodeString() (string, bool) {
	raw := bytes.TrimSpace(e.Code)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// hasCode reports whether the discriminator field is present and non-null.
func (e Envelope) hasCode() bool {
	raw := bytes.TrimSpace(e.Code)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// Doer issues HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Clock provides the timer side of the request/timeout race.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock is the real-time Clock.
var SystemClock Clock = systemClock{}
