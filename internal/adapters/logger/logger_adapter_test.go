package logger_adapter

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muzikology/Live2Share/internal/core/port"
)

type fakeFluent struct {
	mu    sync.Mutex
	tags  []string
	posts []map[string]interface{}
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tags = append(f.tags, tag)
	f.posts = append(f.posts, message.(port.Fields))
	return nil
}

func (f *fakeFluent) Close() error { return nil }

func TestSlogAdapter_WritesFieldsInStableOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug})

	logger.WithFields(port.Fields{"use_case": "GetUser"}).Info("Use case started", port.Fields{"b": 2, "a": 1})

	line := buf.String()
	assert.Contains(t, line, "Use case started")
	assert.Contains(t, line, "use_case=GetUser")
	assert.Less(t, strings.Index(line, "a=1"), strings.Index(line, "b=2"))
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Info("hidden", nil)
	logger.Error("visible", errors.New("boom"), nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "boom")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestFluentLoggerAdapter(t *testing.T) {
	client := &fakeFluent{}
	logger, err := NewFluentLoggerAdapter(client, slog.LevelInfo)
	require.NoError(t, err)

	logger.Debug("skipped", nil)
	logger.WithFields(port.Fields{"trace_id": "t1"}).Error("failed", errors.New("boom"), port.Fields{"id": 7})

	require.Len(t, client.posts, 1)
	assert.Equal(t, "error", client.tags[0])
	assert.Equal(t, "t1", client.posts[0]["trace_id"])
	assert.Equal(t, 7, client.posts[0]["id"])
	assert.Equal(t, "boom", client.posts[0]["error"])
	assert.Equal(t, "failed", client.posts[0]["message"])
}

func TestNewFluentLoggerAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter(t *testing.T) {
	_, err := NewMultiLoggerAdapter()
	assert.Error(t, err)

	first, second := &fakeFluent{}, &fakeFluent{}
	l1, _ := NewFluentLoggerAdapter(first, nil)
	l2, _ := NewFluentLoggerAdapter(second, nil)
	multi, err := NewMultiLoggerAdapter(l1, l2)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"k": "v"}).Warn("careful", nil)

	require.Len(t, first.posts, 1)
	require.Len(t, second.posts, 1)
	assert.Equal(t, "warn", first.tags[0])
	assert.Equal(t, "v", second.posts[0]["k"])
}
