// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import "errors"

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema JSON decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrSchemaShape is returned when an expected key or index is absent in a schema tree.
	ErrSchemaShape = errors.New("unexpected schema shape")
	// ErrReadProse is returned when the static prose file cannot be read.
	ErrReadProse = errors.New("read prose file")
	// ErrProseMarker is returned when the static prose file has no split marker.
	ErrProseMarker = errors.New("prose split marker not found")
	// ErrReadConfig is returned when the YAML config file cannot be loaded.
	ErrReadConfig = errors.New("read config")
	// ErrWriteArtifact is returned when an output file cannot be written.
	ErrWriteArtifact = errors.New("write artifact")
	// ErrRenderPreamble is returned when the embedded preamble template fails.
	ErrRenderPreamble = errors.New("render preamble")
	// ErrConvert is returned when the format converter fails or reports diagnostics.
	ErrConvert = errors.New("convert document")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExample is returned when generated example encoding fails.
	ErrEncodeExample = errors.New("encode example")
)
