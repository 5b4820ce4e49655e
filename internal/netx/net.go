// Package netx holds HTTP plumbing shared by the storefront client and its
// tests.
package netx

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

var ErrBodyTooLarge = errors.New("response body too large")

// NewHTTPClient returns an *http.Client with bounded dial and idle settings.
// It sets no overall Timeout; callers race their own deadline.
func NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       60 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	return &http.Client{Transport: transport}
}

// ReadLimited reads r to EOF but fails with ErrBodyTooLarge once more than
// limit bytes arrive.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, limit)
	}
	return b, nil
}

// Drain discards a bounded amount of r so the connection can be reused.
func Drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 64<<10))
}
