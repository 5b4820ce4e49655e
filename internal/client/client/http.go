package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/common"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/netx"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single Send.
const DefaultTimeout = 10 * time.Second

// HTTPConfig configures an HTTPClient. Zero Doer, Clock, Timeout and Logger
// fall back to defaults.
type HTTPConfig struct {
	Endpoint string
	Timeout  time.Duration
	Doer     Doer
	Clock    Clock
	Logger   logging.Logger
}

// HTTPClient is the HTTP+JSON Client implementation.
type HTTPClient struct {
	endpoint string
	timeout  time.Duration
	doer     Doer
	clock    Clock
	logger   logging.Logger
}

// NewHTTPClient validates cfg and builds a client.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("client: endpoint is required")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return nil, fmt.Errorf("client: endpoint %q must be an http(s) URL", endpoint)
	}

	c := &HTTPClient{
		endpoint: endpoint,
		timeout:  cfg.Timeout,
		doer:     cfg.Doer,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.doer == nil {
		c.doer = netx.NewHTTPClient()
	}
	if c.clock == nil {
		c.clock = SystemClock
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	return c, nil
}

// Endpoint returns the URL requests are sent to.
func (c *HTTPClient) Endpoint() string { return c.endpoint }

type sendResult struct {
	env Envelope
	err error
}

// Send posts body as JSON and returns the decoded envelope.
func (c *HTTPClient) Send(ctx context.Context, body any) (Envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return Envelope{}, fmt.Errorf("client marshal: %w", err)
	}

	requestID := uuid.NewString()
	log := c.logger.With("request_id", requestID, "endpoint", c.endpoint)

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Envelope{}, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)

	log.Debug(ctx, "api request", "body", string(payload))
	started := time.Now()

	// Buffered so the abandoned side never blocks.
	done := make(chan sendResult, 1)
	go func() {
		env, err := c.roundTrip(req)
		done <- sendResult{env: env, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			log.Error(ctx, "api request failed", "error", r.err, "latency", time.Since(started))
			return Envelope{}, r.err
		}
		log.Debug(ctx, "api response", "code", string(r.env.Code), "latency", time.Since(started))
		return r.env, nil

	case <-c.clock.After(c.timeout):
		log.Error(ctx, "api request timed out", "timeout", c.timeout)
		return Envelope{}, fmt.Errorf("%w after %s", ErrTimeout, c.timeout)

	case <-ctx.Done():
		return Envelope{}, &TransportError{Err: ctx.Err()}
	}
}

// roundTrip performs the call and decodes the body. It runs on its own
// goroutine and touches nothing but its arguments.
func (c *HTTPClient) roundTrip(req *http.Request) (Envelope, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return Envelope{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		netx.Drain(resp.Body)
		return Envelope{}, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	raw, err := netx.ReadLimited(resp.Body, common.MaxResponseBytes)
	if err != nil {
		if errors.Is(err, netx.ErrBodyTooLarge) {
			return Envelope{}, &MalformedResponseError{Reason: "body too large", Err: err}
		}
		return Envelope{}, &TransportError{Err: err}
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, &MalformedResponseError{Reason: "invalid json", Err: err}
	}
	if !env.hasCode() {
		return Envelope{}, &MalformedResponseError{Reason: `missing "code" field`}
	}
	return env, nil
}
