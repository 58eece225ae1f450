// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

// Package logger builds zap loggers for the sigmfspec command.
package logger

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatConsole writes human-readable lines.
	FormatConsole = "console"
	// FormatJSON writes one JSON object per entry.
	FormatJSON = "json"
)

// Config represents logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Format is the encoder, console or json.
	Format string `yaml:"format"`
}

// DefaultConfig returns info level console output.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatConsole,
	}
}

// New builds a logger writing to w.
func New(cfg Config, w io.Writer) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if text := strings.TrimSpace(cfg.Level); text != "" {
		if err := level.UnmarshalText([]byte(text)); err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
		}
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", FormatConsole:
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core), nil
}
