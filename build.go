// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Artifacts lists the files produced by Build. Empty paths were skipped.
type Artifacts struct {
	Version    string
	TeX        string
	PDF        string
	Stylesheet string
	HTML       string
}

// Render loads the configured inputs and assembles the document without
// writing anything.
func Render(ctx context.Context, cfg Config, log *zap.Logger) (*Document, Metadata, error) {
	if log == nil {
		log = zap.NewNop()
	}

	fsys := os.DirFS(cfg.InputDir)
	set, err := LoadSchemaSet(ctx, fsys, cfg.Schemas, log)
	if err != nil {
		return nil, Metadata{}, err
	}

	prose, err := LoadProse(fsys, cfg.Prose)
	if err != nil {
		return nil, Metadata{}, err
	}

	doc, meta, err := Assemble(set, prose, AssembleOptions{
		Title:         cfg.Title,
		LogoPath:      cfg.Logo,
		Examples:      cfg.Examples,
		ExampleFormat: cfg.ExampleFormat,
		Logger:        log,
	})
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("assemble document: %w", err)
	}

	log.Info("document assembled", zap.String("version", meta.Version), zap.Int("blocks", doc.Len()))
	return doc, meta, nil
}

// Build runs the whole pipeline: render, write the LaTeX source, compile it
// twice, write the stylesheet and convert to HTML. Compiler failures are
// tolerated; every other failure aborts.
func Build(ctx context.Context, cfg Config, log *zap.Logger) (Artifacts, error) {
	return BuildWith(ctx, cfg, newConfiguredEmitter(cfg, log), log)
}

// BuildWith is Build with a caller supplied emitter.
func BuildWith(ctx context.Context, cfg Config, emitter *Emitter, log *zap.Logger) (Artifacts, error) {
	if log == nil {
		log = zap.NewNop()
	}

	doc, meta, err := Render(ctx, cfg, log)
	if err != nil {
		return Artifacts{}, err
	}

	if err := os.MkdirAll(cfg.outputDir(), 0o750); err != nil {
		return Artifacts{}, fmt.Errorf("%w %q: %w", ErrWriteArtifact, cfg.outputDir(), err)
	}

	artifacts := Artifacts{Version: meta.Version, TeX: cfg.TexPath()}
	if err := writeDocument(artifacts.TeX, doc, meta); err != nil {
		return Artifacts{}, err
	}

	log.Info("latex written", zap.String("path", artifacts.TeX))

	if !cfg.SkipPDF {
		emitter.Compile(ctx, artifacts.TeX)
		artifacts.PDF = cfg.PDFPath()
	}

	if cfg.SkipHTML {
		return artifacts, nil
	}

	artifacts.Stylesheet = cfg.StylesheetPath()
	if err := emitter.WriteStylesheet(artifacts.Stylesheet); err != nil {
		return Artifacts{}, err
	}

	artifacts.HTML = cfg.HTMLPath()
	if err := emitter.Convert(ctx, artifacts.TeX, artifacts.HTML); err != nil {
		return Artifacts{}, err
	}

	log.Info("html written", zap.String("path", artifacts.HTML))
	return artifacts, nil
}

func newConfiguredEmitter(cfg Config, log *zap.Logger) *Emitter {
	emitter := NewEmitter(log)
	if cfg.Compiler != "" {
		emitter.Compiler = cfg.Compiler
	}

	if cfg.CompilerArgs != nil {
		emitter.CompilerArgs = cfg.CompilerArgs
	}

	if cfg.Converter != "" {
		emitter.Converter = cfg.Converter
	}

	if cfg.StylesheetURL != "" {
		emitter.StylesheetURL = cfg.StylesheetURL
	}

	return emitter
}

func writeDocument(path string, doc *Document, meta Metadata) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteArtifact, path, err)
	}

	if err := doc.WriteLaTeX(file, meta); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteArtifact, path, err)
	}

	return nil
}
