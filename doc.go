// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

/*
Package sigmfspec renders the SigMF JSON Schema documents into the typeset
specification: LaTeX source, a PDF through an external LaTeX compiler and an
HTML page through an external converter.

Schemas are read as ordered trees, so tables and field sections follow the
property order of the source files.

Run the whole pipeline:

	cfg := sigmfspec.DefaultConfig()
	cfg.InputDir = "sigmf"
	cfg.OutputDir = "out"

	artifacts, err := sigmfspec.Build(ctx, cfg, log)
	if err != nil {
		return err
	}

	fmt.Println(artifacts.TeX, artifacts.HTML)

Assemble the document from an fs.FS without running external tools:

	fsys := os.DirFS("sigmf")
	set, err := sigmfspec.LoadSchemaSet(ctx, fsys, sigmfspec.DefaultSchemaPaths(), log)
	if err != nil {
		return err
	}

	prose, err := sigmfspec.LoadProse(fsys, sigmfspec.DefaultProsePath)
	if err != nil {
		return err
	}

	doc, meta, err := sigmfspec.Assemble(set, prose, sigmfspec.AssembleOptions{})
	if err != nil {
		return err
	}

	tex, err := doc.LaTeX(meta)

Render a single table or field listing:

	node, err := set.Core.Lookup("properties", "global")
	if err != nil {
		return err
	}

	table, err := sigmfspec.RenderTable(node)
	sections, err := sigmfspec.RenderFields(node, "", sigmfspec.NewLabelAllocator())

Add example payload listings after every field listing:

	doc, meta, err := sigmfspec.Assemble(set, prose, sigmfspec.AssembleOptions{
		Examples:      sigmfspec.ExampleModeRequired,
		ExampleFormat: sigmfspec.ExampleFormatYAML,
	})
*/
package sigmfspec
