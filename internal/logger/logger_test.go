// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, FormatConsole, cfg.Format)
}

func TestNewConsoleFiltersByLevel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	log, err := New(Config{Level: "warn"}, &out)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("compiler failed")
	require.NoError(t, log.Sync())

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "compiler failed")
	assert.Contains(t, out.String(), "WARN")
}

func TestNewJSONWritesObjects(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	log, err := New(Config{Level: "debug", Format: FormatJSON}, &out)
	require.NoError(t, err)

	log.Debug("section assembled")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "section assembled", entry["msg"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "level", cfg: Config{Level: "loud"}},
		{name: "format", cfg: Config{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.cfg, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}
