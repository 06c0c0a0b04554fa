package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	c := &console{out: &buf}

	c.Success("Applied %d migration(s)", 2)
	c.Warn("Database not ready (%d/%d)", 1, 30)
	c.Header("Checking")

	assert.Equal(t, "✓ Applied 2 migration(s)\n⚠ Database not ready (1/30)\n\n=== Checking ===\n", buf.String())
}

func TestConsole_ColoredOutput(t *testing.T) {
	var buf bytes.Buffer
	c := &console{out: &buf, color: true}

	c.Error("boom")

	assert.Equal(t, toneError.color+"✗ boom"+ansiReset+"\n", buf.String())
}

func TestConsole_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, newConsole(&bytes.Buffer{}).color)
}

func TestRejectShellMeta(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{"plain name", "add_index", false},
		{"connection string", "postgres://u:p@localhost:5432/db?sslmode=disable&x=1", false},
		{"pipe", "a|b", true},
		{"substitution", "$(whoami)", true},
		{"backtick", "`id`", true},
		{"redirect", "x>y", true},
		{"newline", "a\nb", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rejectShellMeta(tt.arg)
			if tt.wantErr {
				assert.ErrorIs(t, err, errShellMeta)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunTool_RefusesShellMetaBeforeExec(t *testing.T) {
	err := runTool(context.Background(), "go", "run", "x;y && z")
	assert.ErrorIs(t, err, errShellMeta)
}
