// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseConfigOverridesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`
input_dir: sigmf
output_dir: build
schemas:
  spatial: ext/spatial.json
examples: required
example_format: yaml
compiler_args: ["-interaction=batchmode"]
skip_pdf: true
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	want := DefaultConfig()
	want.InputDir = "sigmf"
	want.OutputDir = "build"
	want.Schemas.Spatial = "ext/spatial.json"
	want.Examples = ExampleModeRequired
	want.ExampleFormat = ExampleFormatYAML
	want.CompilerArgs = []string{"-interaction=batchmode"}
	want.SkipPDF = true

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigEmptyKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig([]byte("job: x\n"))
	if !errors.Is(err, ErrReadConfig) {
		t.Fatalf("expected ErrReadConfig, got: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	if !errors.Is(err, ErrReadConfig) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrReadConfig wrapping ErrNotExist, got: %v", err)
	}
}

func TestConfigArtifactPaths(t *testing.T) {
	t.Parallel()

	cfg := Config{OutputDir: "out"}
	cases := map[string]string{
		cfg.TexPath():        filepath.Join("out", "sigmf-spec.tex"),
		cfg.PDFPath():        filepath.Join("out", "sigmf-spec.pdf"),
		cfg.HTMLPath():       filepath.Join("out", "sigmf-spec.html"),
		cfg.StylesheetPath(): filepath.Join("out", "main.css"),
	}

	for got, want := range cases {
		if got != want {
			t.Fatalf("path = %q, want %q", got, want)
		}
	}
}
