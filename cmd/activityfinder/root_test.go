package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"activityfinder/internal/config"
	"activityfinder/internal/domain"
	"activityfinder/internal/eventbus"
	"activityfinder/internal/ui"
)

func TestOpenLoggerFallsBackWhenFileCannotBeOpened(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(blocker, "activityfinder.log")

	logger, closeLog, err := openLogger(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not open log file")
	require.NotNil(t, logger)
	assert.NoError(t, closeLog())
}

func TestOpenLoggerWritesConfiguredFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "activityfinder.log")

	logger, closeLog, err := openLogger(cfg)
	require.NoError(t, err)
	logger.Infow("hello")
	require.NoError(t, closeLog())

	assert.FileExists(t, cfg.Log.File)
}

func TestForwardErrorsSendsEventMsg(t *testing.T) {
	bus := eventbus.New(zap.NewNop().Sugar())
	t.Cleanup(bus.Close)

	sent := make(chan tea.Msg, 1)
	unsubscribe := forwardErrors(bus, func(msg tea.Msg) { sent <- msg })
	defer unsubscribe()

	bus.Publish(domain.SearchSucceededEvent{Seq: 1})
	bus.Publish(domain.ErrorEvent{Message: "Logging disabled", Err: errors.New("denied")})

	select {
	case msg := <-sent:
		em, ok := msg.(ui.EventMsg)
		require.True(t, ok)
		ev, ok := em.Event.(domain.ErrorEvent)
		require.True(t, ok)
		assert.Equal(t, "Logging disabled", ev.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("error was not forwarded")
	}
}

func TestSubscribeAuditRecordsConfigAndErrorEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	bus := eventbus.New(zap.NewNop().Sugar())
	t.Cleanup(bus.Close)

	unsubscribe := subscribeAudit(bus, zap.New(core).Sugar())
	defer unsubscribe()

	bus.Publish(domain.ConfigLoadedEvent{Path: "/tmp/config.toml"})
	bus.Publish(domain.ErrorEvent{Message: "Could not show description"})

	assert.Eventually(t, func() bool { return logs.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	var types []string
	for _, entry := range logs.All() {
		types = append(types, fmt.Sprint(entry.ContextMap()["type"]))
	}
	assert.ElementsMatch(t, []string{string(domain.EventConfigLoaded), string(domain.EventError)}, types)
}
