package observe

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func newTestHook() (*SentryHook, *[]*sentry.Event) {
	var captured []*sentry.Event
	return &SentryHook{
		appEnv:  "production",
		appName: "climate-api",
		capture: func(e *sentry.Event) { captured = append(captured, e) },
	}, &captured
}

func TestNewSentryHook_RequiresDSN(t *testing.T) {
	hook, err := NewSentryHook("production", "climate-api", "", false)
	assert.Nil(t, hook)
	assert.EqualError(t, err, "sentry: no DSN")
}

func TestSentryHook_ErrorLineIsCaptured(t *testing.T) {
	hook, captured := newTestHook()

	line := []byte(`{"level":"error","timestamp":"2025-01-02T03-04-05.000","msg":"storage unavailable","error":"storage unavailable: no such table","caller_file":"handle.go","caller_line":42,"caller_func":"v1.(*routes).respondError"}` + "\n")
	n, err := hook.Write(line)

	require.NoError(t, err)
	assert.Equal(t, len(line), n)
	require.Len(t, *captured, 1)

	event := (*captured)[0]
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "storage unavailable", event.Message)
	assert.Equal(t, "production", event.Environment)
	assert.Equal(t, "climate-api", event.Extra["AppName"])
	assert.Equal(t, 42, event.Extra["CallerLine"])
	assert.Equal(t, 2025, event.Timestamp.Year())
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "storage unavailable: no such table", event.Exception[0].Value)
}

func TestSentryHook_LowerLevelsAreDropped(t *testing.T) {
	hook, captured := newTestHook()

	for _, level := range []string{"debug", "info", "warn"} {
		_, err := hook.Write([]byte(`{"level":"` + level + `","msg":"request received"}`))
		require.NoError(t, err)
	}

	assert.Empty(t, *captured)
}

func TestSentryHook_MalformedLine(t *testing.T) {
	hook, captured := newTestHook()

	n, err := hook.Write([]byte("not json"))
	require.NoError(t, err)
	assert.Equal(t, len("not json"), n)
	assert.Empty(t, *captured)

	_, err = hook.eventFromLine([]byte(`{"level":"loud","msg":"x"}`))
	assert.ErrorContains(t, err, "parse zap level")
}

func TestSentryHook_MapLevel(t *testing.T) {
	hook, _ := newTestHook()

	assert.Equal(t, sentry.LevelDebug, hook.mapLevel(zapcore.DebugLevel))
	assert.Equal(t, sentry.LevelInfo, hook.mapLevel(zapcore.InfoLevel))
	assert.Equal(t, sentry.LevelWarning, hook.mapLevel(zapcore.WarnLevel))
	assert.Equal(t, sentry.LevelError, hook.mapLevel(zapcore.ErrorLevel))
	assert.Equal(t, sentry.LevelFatal, hook.mapLevel(zapcore.FatalLevel))
}
