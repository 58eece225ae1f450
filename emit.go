// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultCompiler is the LaTeX compiler command.
	DefaultCompiler = "pdflatex"
	// DefaultConverter is the LaTeX to HTML converter command.
	DefaultConverter = "pandoc"
	// DefaultStylesheetURL is the external stylesheet linked from the HTML output.
	DefaultStylesheetURL = "https://cdn.jsdelivr.net/npm/bootstrap@4.4.1/dist/css/bootstrap.min.css"
	// DefaultStylesheetName is the local stylesheet written next to the HTML output.
	DefaultStylesheetName = "main.css"

	// compilerPasses resolves cross references and the table of contents.
	compilerPasses = 2
)

// DefaultCompilerArgs returns the compiler flags placed before the source path.
func DefaultCompilerArgs() []string {
	return []string{"--shell-escape", "-interaction=nonstopmode"}
}

// CommandRunner executes an external command in dir and returns its output.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args in dir.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	command := exec.CommandContext(ctx, name, args...)
	command.Dir = dir

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	err := command.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Emitter turns a written LaTeX source into PDF and HTML artifacts.
type Emitter struct {
	Runner CommandRunner
	Logger *zap.Logger

	Compiler     string
	CompilerArgs []string
	Converter    string

	StylesheetURL  string
	StylesheetName string
}

// NewEmitter returns an emitter with default commands and the exec runner.
func NewEmitter(log *zap.Logger) *Emitter {
	return &Emitter{
		Runner:         ExecRunner{},
		Logger:         log,
		Compiler:       DefaultCompiler,
		CompilerArgs:   DefaultCompilerArgs(),
		Converter:      DefaultConverter,
		StylesheetURL:  DefaultStylesheetURL,
		StylesheetName: DefaultStylesheetName,
	}
}

// Compile runs the compiler on texPath twice. Failures are logged and ignored.
func (e *Emitter) Compile(ctx context.Context, texPath string) {
	log := e.logger()
	dir, file := filepath.Split(texPath)
	args := append(append([]string(nil), e.CompilerArgs...), file)

	for pass := 1; pass <= compilerPasses; pass++ {
		log.Info("compile document", zap.String("compiler", e.Compiler), zap.Int("pass", pass))

		_, stderr, err := e.runner().Run(ctx, dir, e.Compiler, args...)
		if err != nil {
			log.Warn("compiler failed",
				zap.String("compiler", e.Compiler),
				zap.Int("pass", pass),
				zap.String("stderr", strings.TrimSpace(string(stderr))),
				zap.Error(err),
			)
		}
	}
}

// WriteStylesheet writes the embedded two-pane stylesheet to path.
func (e *Emitter) WriteStylesheet(path string) error {
	if err := os.WriteFile(path, []byte(Stylesheet()), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteArtifact, path, err)
	}

	e.logger().Info("stylesheet written", zap.String("path", path))
	return nil
}

// Convert runs the converter from texPath to htmlPath. A non-zero exit or
// any diagnostic output is an error.
func (e *Emitter) Convert(ctx context.Context, texPath, htmlPath string) error {
	args := []string{
		texPath,
		"-f", "latex",
		"-t", "html",
		"-s",
		"-o", htmlPath,
		"--toc",
		"--toc-depth=3",
		"-c", e.StylesheetURL,
		"-c", e.StylesheetName,
	}

	e.logger().Info("convert document", zap.String("converter", e.Converter), zap.String("output", htmlPath))

	_, stderr, err := e.runner().Run(ctx, "", e.Converter, args...)
	detail := strings.TrimSpace(string(stderr))
	switch {
	case err != nil && detail != "":
		return fmt.Errorf("%w: %s: %s", ErrConvert, e.Converter, detail)
	case err != nil:
		return fmt.Errorf("%w: %s: %w", ErrConvert, e.Converter, err)
	case detail != "":
		return fmt.Errorf("%w: %s: %s", ErrConvert, e.Converter, detail)
	}

	return nil
}

func (e *Emitter) runner() CommandRunner {
	if e.Runner == nil {
		return ExecRunner{}
	}

	return e.Runner
}

func (e *Emitter) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}

	return e.Logger
}
