// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		new  func() *Logger
	}{
		{name: "server", new: func() *Logger { return NewLogger("ledger-stub-server") }},
		{name: "client", new: func() *Logger { return NewClientLogger("ledger-test") }},
		{name: "nop", new: Nop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.new())
		})
	}
}

func TestNewWriterLogger_StandardFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "ledger")

	l.Debug().Msg("read account")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "ledger", entry["role"])
	assert.Equal(t, "read account", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_Discards(t *testing.T) {
	l := Nop()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWriterLogger(&buf, "adapter")

	t.Run("GetChildLogger keeps parent fields", func(t *testing.T) {
		child := parent.GetChildLogger()
		assert.NotSame(t, parent, child)

		child.Info().Msg("child")
		assert.Equal(t, "adapter", lastEntry(t, &buf)["role"])
	})

	t.Run("WithField does not leak into parent", func(t *testing.T) {
		parent.WithField("call_id", "0190-abc").Info().Msg("child")
		assert.Equal(t, "0190-abc", lastEntry(t, &buf)["call_id"])

		parent.Info().Msg("parent")
		assert.NotContains(t, lastEntry(t, &buf), "call_id")
	})
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	attached := NewWriterLogger(&buf, "stub").WithField("trace_id", "t-1")
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "t-1", lastEntry(t, &buf)["trace_id"])

	req := httptest.NewRequest(http.MethodGet, "/api/Account/ID100", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "t-1", lastEntry(t, &buf)["trace_id"])
}

func TestFromContext_NothingAttached(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}
