// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultJobName is the base name of every output artifact.
	DefaultJobName = "sigmf-spec"
	// DefaultProsePath is the static prose file relative to the input directory.
	DefaultProsePath = "additional_content.md"
)

// Config describes one document build. Relative schema and prose paths are
// resolved against InputDir.
type Config struct {
	// InputDir holds the schema documents and the prose file.
	InputDir string `yaml:"input_dir"`
	// OutputDir receives the .tex, .pdf, .html and stylesheet artifacts.
	OutputDir string `yaml:"output_dir"`
	// JobName is the artifact base name.
	JobName string `yaml:"job_name"`

	Schemas SchemaPaths `yaml:"schemas"`
	Prose   string      `yaml:"prose"`

	// Title names the format in headings and the page footer.
	Title string `yaml:"title"`
	// Logo is the image path referenced by the title figure.
	Logo string `yaml:"logo"`

	Compiler      string   `yaml:"compiler"`
	CompilerArgs  []string `yaml:"compiler_args"`
	Converter     string   `yaml:"converter"`
	StylesheetURL string   `yaml:"stylesheet_url"`

	// Examples adds example payload listings: none, required or all.
	Examples ExampleMode `yaml:"examples"`
	// ExampleFormat is json or yaml.
	ExampleFormat ExampleFormat `yaml:"example_format"`

	// SkipPDF disables the compiler passes.
	SkipPDF bool `yaml:"skip_pdf"`
	// SkipHTML disables stylesheet output and conversion.
	SkipHTML bool `yaml:"skip_html"`
}

// DefaultConfig returns the configuration of the reference build.
func DefaultConfig() Config {
	return Config{
		InputDir:      ".",
		OutputDir:     ".",
		JobName:       DefaultJobName,
		Schemas:       DefaultSchemaPaths(),
		Prose:         DefaultProsePath,
		Title:         defaultDocumentTitle,
		Logo:          defaultLogoPath,
		Compiler:      DefaultCompiler,
		CompilerArgs:  DefaultCompilerArgs(),
		Converter:     DefaultConverter,
		StylesheetURL: DefaultStylesheetURL,
		Examples:      ExampleModeNone,
		ExampleFormat: ExampleFormatJSON,
	}
}

// LoadConfig reads a YAML config file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w %q: %w", ErrReadConfig, path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML config data over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	return cfg, nil
}

// TexPath returns the LaTeX output path.
func (c Config) TexPath() string {
	return c.artifactPath(".tex")
}

// PDFPath returns the path the compiler writes the PDF to.
func (c Config) PDFPath() string {
	return c.artifactPath(".pdf")
}

// HTMLPath returns the converter output path.
func (c Config) HTMLPath() string {
	return c.artifactPath(".html")
}

// StylesheetPath returns the local stylesheet output path.
func (c Config) StylesheetPath() string {
	return filepath.Join(c.outputDir(), DefaultStylesheetName)
}

func (c Config) artifactPath(ext string) string {
	name := c.JobName
	if name == "" {
		name = DefaultJobName
	}

	return filepath.Join(c.outputDir(), name+ext)
}

func (c Config) outputDir() string {
	if c.OutputDir == "" {
		return "."
	}

	return c.OutputDir
}
