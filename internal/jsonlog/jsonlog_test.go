package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []entry {
	t.Helper()

	var out []entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e entry
		require.NoError(t, json.Unmarshal([]byte(line), &e), line)
		out = append(out, e)
	}
	return out
}

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.PrintInfo("starting server", map[string]string{"addr": ":4000"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "starting server", entries[0].Message)
	assert.Equal(t, ":4000", entries[0].Properties["addr"])
	assert.Empty(t, entries[0].Trace)
	assert.NotEmpty(t, entries[0].Time)
}

func TestLogger_ErrorCarriesTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	logger.PrintError(errors.New("boom"), nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0].Level)
	assert.Equal(t, "boom", entries[0].Message)
	assert.NotEmpty(t, entries[0].Trace)
}

func TestLogger_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelError)

	logger.PrintInfo("dropped", nil)
	assert.Zero(t, buf.Len())

	logger.PrintError(errors.New("kept"), nil)
	assert.Len(t, decodeLines(t, &buf), 1)
}

func TestLogger_Off(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelOff)
	logger.exit = func(int) {}

	logger.PrintError(errors.New("x"), nil)
	logger.PrintFatal(errors.New("y"), nil)
	assert.Zero(t, buf.Len())
}

func TestLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)

	code := -1
	logger.exit = func(c int) { code = c }

	logger.PrintFatal(errors.New("cannot start"), nil)
	assert.Equal(t, 1, code)
	assert.Equal(t, "FATAL", decodeLines(t, &buf)[0].Level)
}

func TestLogger_AsErrorLog(t *testing.T) {
	var buf bytes.Buffer
	std := log.New(New(&buf, LevelInfo), "", 0)

	std.Print("http: TLS handshake error")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0].Level)
	assert.Equal(t, "http: TLS handshake error", entries[0].Message)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"info", LevelInfo},
		{"ERROR", LevelError},
		{" Fatal ", LevelFatal},
		{"off", LevelOff},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
