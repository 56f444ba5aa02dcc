package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOptions keeps test log output away from the game text on stdout.
var testOptions = Options{Level: 0, Output: io.Discard}

func TestGetIsInitializedOnce(t *testing.T) {
	first := Get(testOptions)
	require.NotNil(t, first)
	assert.Same(t, first, Get(Options{Level: -1}), "later options are ignored")
}

func TestGetFallsBackToNoop(t *testing.T) {
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	Get(testOptions)
	assert.Same(t, &defaultNoopLogger, Get(testOptions))
}

func TestNewZapLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	lgr := zapr.NewLogger(newZapLogger(Options{Level: -1, Output: &buf}))

	lgr.V(1).Info("room entered", "room", "Hall de Entrada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "room entered", line[MessageKey])
	assert.Equal(t, "Hall de Entrada", line["room"])
	assert.Contains(t, line, TimeStampKey)
	assert.Contains(t, line, CommitKey)
	assert.Contains(t, line, GoVersionKey)
}

func TestNewZapLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	lgr := zapr.NewLogger(newZapLogger(Options{Level: 0, Output: &buf}))

	lgr.V(1).Info("mansion released", "rooms", 12)
	assert.Empty(t, buf.String(), "debug lines are dropped at info level")

	lgr.Info("exploration ended")
	assert.Contains(t, buf.String(), "exploration ended")
}

func TestWithLogger(t *testing.T) {
	lgr := Get(testOptions)
	ctx := WithLogger(context.Background(), lgr)
	assert.Same(t, lgr, FromContext(ctx))

	assert.Equal(t, ctx, WithLogger(ctx, lgr), "same logger keeps the context")

	other := logr.Discard()
	replaced := WithLogger(ctx, &other)
	assert.Same(t, &other, FromContext(replaced))
}

func TestFromContextFallbacks(t *testing.T) {
	global := Get(testOptions)
	assert.Same(t, global, FromContext(context.Background()))

	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()
	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
}

func TestSyncWithoutLogger(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	assert.NotPanics(t, Sync)
}

func TestWithValues(t *testing.T) {
	lgr := Get(testOptions)

	tagged := WithValues(lgr, LocaleKey, "pt-BR")
	require.NotNil(t, tagged)
	assert.NotSame(t, lgr, tagged)
	assert.NotSame(t, lgr, WithValues(lgr))
}

func TestIsIgnorableSyncError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"enotty", syscall.ENOTTY, true},
		{"einval wrapped", &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}, true},
		{"windows invalid handle", errors.New("sync /dev/stderr: The handle is invalid."), true},
		{"disk full", errors.New("no space left on device"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isIgnorableSyncError(tt.err))
		})
	}
}
