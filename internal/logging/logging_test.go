package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, line string) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	return entry
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "WARN", Writer: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	entry := decode(t, lines[0])
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "shown", entry["message"])
	require.Contains(t, entry, "time")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{HumanReadable: true, Writer: &buf})
	require.NoError(t, err)

	log.Info("ready")
	require.Contains(t, buf.String(), "ready")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestFieldsErrorsAndRequests(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"component": "badge.variants"}).Error(errors.New("boom"), "render failed")
	log.Request("GET", "/healthz", 503, 2*time.Millisecond)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	failed := decode(t, lines[0])
	require.Equal(t, "badge.variants", failed["component"])
	require.Equal(t, "boom", failed["error"])

	req := decode(t, lines[1])
	require.Equal(t, "error", req["level"])
	require.Equal(t, "/healthz", req["path"])
	require.EqualValues(t, 503, req["status"])
}

func TestNilAndNopLoggers(t *testing.T) {
	var log *Logger
	log.Info("ignored")
	log.Error(nil, "ignored")
	require.Nil(t, log.WithFields(map[string]any{"a": 1}))

	Nop().Info("ignored")
}
