package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"fmgr/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithVerbose(true))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	l.Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
}

func TestVerbosity(t *testing.T) {
	var buf bytes.Buffer

	quiet := NewLogger(WithOutput(&buf))
	quiet.Info("hidden info")
	quiet.Debug("hidden debug")
	assert.Empty(t, buf.String())

	quiet.Warn("shown warning")
	assert.Contains(t, buf.String(), "shown warning")
	buf.Reset()

	loud := NewLogger(WithOutput(&buf), WithVerbose(true))
	loud.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "formatted debug")
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithVerbose(true))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	// Fields accumulate across With calls without leaking into the parent
	child := l.With(F("key1", "value1")).With(F("key2", 123))
	child.Info("chained fields")
	output = buf.String()
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	l.Info("parent")
	assert.NotContains(t, buf.String(), "key1=value1")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON(true), WithVerbose(true))

	l.Info("json message")

	var logEntry map[string]interface{}
	err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry)
	require.NoError(t, err)

	assert.Equal(t, "info", logEntry["level"])
	assert.Equal(t, "json message", logEntry["message"])
	assert.Contains(t, logEntry, "timestamp")
	buf.Reset()

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured json")
	logEntry = map[string]interface{}{}
	err = json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry)
	require.NoError(t, err)

	assert.Equal(t, "value1", logEntry["key1"])
	assert.Equal(t, float64(123), logEntry["key2"]) // JSON numbers are float64
}

func TestJSONDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON(false), WithVerbose(true))

	l.Info("text message")
	assert.Contains(t, buf.String(), "level=info")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	stdErr := fmt.Errorf("standard error")
	l.WithError(stdErr).Warn("error occurred")
	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "standard error")
	assert.NotContains(t, output, "error_kind")
	buf.Reset()

	fileErr := errors.NewNotFoundError("file error", "/path/to/file")
	l.WithError(fileErr).Warn("file error occurred")
	output = buf.String()
	assert.Contains(t, output, "file error occurred")
	assert.Contains(t, output, "file error: /path/to/file")
	assert.Contains(t, output, "path=/path/to/file")
	assert.Contains(t, output, "error_kind=not_found")
	buf.Reset()

	argErr := errors.NewArgumentError("missing source", "fmgr copy <source> <destination>", nil)
	l.WithError(argErr).Warn("argument error occurred")
	output = buf.String()
	assert.Contains(t, output, "missing source")
	assert.Contains(t, output, "error_kind=argument")
}

func TestNestedErrors(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	baseErr := fmt.Errorf("base error")
	ioErr := errors.NewIOError("write failed", "/path/file", baseErr)
	wrapped := errors.Wrap(ioErr, "copy")

	l.WithError(wrapped).Warn("nested error occurred")
	output := buf.String()

	assert.Contains(t, output, "copy: write failed: /path/file: base error")
	assert.Contains(t, output, "error_kind=io")
	assert.Contains(t, output, "path=/path/file")
}

func TestNilErrorHandling(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	// Should not panic
	l.WithError(nil).Warn("nil error test")
	output := buf.String()
	assert.Contains(t, output, "nil error test")
	assert.Contains(t, output, "error=\"<nil>\"")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() {
		l.With(F("k", "v")).Warn("dropped")
	})
}
