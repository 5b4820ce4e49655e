package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/server/catalog"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/server/config"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddr = "127.0.0.1:0"
	return c
}

func TestNewApp(t *testing.T) {
	t.Run("default fixture", func(t *testing.T) {
		app, err := NewApp(testConfig())
		require.NoError(t, err)
		assert.NotNil(t, app.server)
	})

	t.Run("bad log level", func(t *testing.T) {
		c := testConfig()
		c.LogLevel = "loud"
		_, err := NewApp(c)
		require.Error(t, err)
	})

	t.Run("missing fixture", func(t *testing.T) {
		c := testConfig()
		c.FixturePath = filepath.Join(t.TempDir(), "missing.json")
		_, err := NewApp(c)
		require.ErrorContains(t, err, "fixture load error")
	})

	t.Run("fixture file", func(t *testing.T) {
		c := testConfig()
		c.FixturePath = filepath.Join(t.TempDir(), "cats.json")
		require.NoError(t, os.WriteFile(c.FixturePath, []byte(`[{"id":1,"name":"Sopas","is_active":1}]`), 0o600))
		_, err := NewApp(c)
		require.NoError(t, err)
	})
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app := newApp(testConfig(), logging.Discard(), catalog.DefaultFixture())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_RunReportsListenError(t *testing.T) {
	c := testConfig()
	c.EndpointAddr = "256.0.0.1:bad"
	app := newApp(c, logging.Discard(), catalog.DefaultFixture())

	require.Error(t, app.Run(context.Background()))
}
