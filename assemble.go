// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

const (
	// defaultDocumentTitle names the format in headings and the page footer.
	defaultDocumentTitle = "SigMF"
	// defaultLogoPath is the logo image referenced by the title figure.
	defaultLogoPath = "logo/sigmf_logo.png"

	copyrightNotice = `This document is available under the \href{http://creativecommons.org/licenses/by-sa/4.0/}{CC-BY-SA License}. ` +
		`Copyright of contributions to SigMF are retained by their original authors. All contributions under these terms are welcome.`
	tableOfContents = `\vspace{-0.4in}\def\contentsname{\empty}\setcounter{tocdepth}{3}\tableofcontents`

	newParagraph = `\nn`
	spacerWide   = `\vspace{4mm}\par\noindent`
	spacerNarrow = `\vspace{2mm}\par\noindent`
)

var (
	pathGlobal      = []string{"properties", "global"}
	pathCaptures    = []string{"properties", "captures"}
	pathAnnotations = []string{"properties", "annotations"}
	pathCollection  = []string{"properties", "collection"}

	// pathFirstVariant selects the first anyOf variant of an array property.
	pathFirstVariant = []string{"items", "anyOf", "0"}
	pathItems        = []string{"items"}
)

// AssembleOptions configures document assembly.
type AssembleOptions struct {
	// Title names the format, "SigMF" when empty.
	Title string
	// LogoPath is the image shown above the first section.
	LogoPath string
	// Examples adds an example payload listing after each field listing.
	Examples ExampleMode
	// ExampleFormat selects JSON or YAML example listings.
	ExampleFormat ExampleFormat
	// Logger receives debug output; nil disables logging.
	Logger *zap.Logger
}

// tableStyle selects description column width and row striping.
type tableStyle struct {
	width   string
	striped bool
}

var (
	wideStriped   = tableStyle{width: defaultTableWidth, striped: true}
	narrowStriped = tableStyle{width: narrowTableWidth, striped: true}
	narrowPlain   = tableStyle{width: narrowTableWidth}
)

// assembler appends blocks in order and keeps the first failure. Every
// method is a no-op once err is set.
type assembler struct {
	doc     *Document
	labels  *LabelAllocator
	log     *zap.Logger
	mode    ExampleMode
	format  ExampleFormat
	logo    string
	title   string
	err     error
	section string
}

// Assemble builds the composite document from the schema set and the static prose.
// Any missing schema path aborts assembly.
func Assemble(set *SchemaSet, prose Prose, opt AssembleOptions) (*Document, Metadata, error) {
	mode, err := normalizeExampleMode(opt.Examples)
	if err != nil {
		return nil, Metadata{}, err
	}

	format, err := normalizeExampleFormat(opt.ExampleFormat)
	if err != nil {
		return nil, Metadata{}, err
	}

	version, err := SpecVersion(set.Core)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("primary schema: %w", err)
	}

	a := &assembler{
		doc:    NewDocument(),
		labels: NewLabelAllocator(),
		log:    opt.Logger,
		mode:   mode,
		format: format,
		logo:   strings.TrimSpace(opt.LogoPath),
		title:  strings.TrimSpace(opt.Title),
	}

	if a.log == nil {
		a.log = zap.NewNop()
	}

	if a.title == "" {
		a.title = defaultDocumentTitle
	}

	if a.logo == "" {
		a.logo = defaultLogoPath
	}

	a.frontMatter(set.Core, version, prose)
	a.coreObjects(set.Core, set.Collection)
	a.raw(CodeTags(prose.Back))

	a.heading(LevelSection, "Extensions")
	a.antenna(set.Antenna)
	a.captureDetail(set.CaptureDetail)
	a.signal(set.Signal)
	a.spatial(set.Spatial)
	a.traceability(set.Traceability)

	if a.err != nil {
		return nil, Metadata{}, a.err
	}

	a.log.Debug("document assembled",
		zap.Int("blocks", a.doc.Len()),
		zap.Int("labels", a.labels.Len()),
	)

	return a.doc, Metadata{Title: a.title, Version: version}, nil
}

// frontMatter adds logo, title section, abstract, notices and the front prose.
func (a *assembler) frontMatter(core *Node, version string, prose Prose) {
	a.raw("\\begin{figure}[h!]%\n" +
		"\\vspace{-0.8in}\\centering%\n" +
		"\\includegraphics[width=120px]{" + a.logo + "}%\n" +
		"\\vspace{-0.3in}%\n" +
		"\\end{figure}")

	a.heading(LevelSection, a.title+" Specification Version "+version)

	a.heading(LevelSubsection, "Abstract")
	if abstract := a.lookup(core, "description"); abstract != nil {
		a.append(Text{Value: abstract.Text()})
	}

	a.heading(LevelSubsection, "Copyright Notice")
	a.raw(copyrightNotice)

	a.heading(LevelSubsection, "Table of Contents")
	a.raw(tableOfContents)

	a.raw(CodeTags(prose.Front))
}

// coreObjects adds the global, captures, annotations and collection sections.
func (a *assembler) coreObjects(core, collection *Node) {
	a.heading(LevelSubsection, "Global Object")
	a.describe(core, pathGlobal...)
	a.paragraph()
	a.object(core, wideStriped, "", pathGlobal...)

	a.heading(LevelSubsection, "Captures Array")
	a.describe(core, pathCaptures...)
	a.paragraph()
	a.object(core, wideStriped, "", slices.Concat(pathCaptures, pathFirstVariant)...)

	a.heading(LevelSubsection, "Annotations Array")
	a.describe(core, pathAnnotations...)
	a.paragraph()
	a.object(core, wideStriped, "", slices.Concat(pathAnnotations, pathFirstVariant)...)

	a.heading(LevelSubsection, a.title+" Collection Format")
	a.describe(collection, pathCollection...)
	a.paragraph()
	a.object(collection, wideStriped, "", pathCollection...)
}

func (a *assembler) antenna(schema *Node) {
	a.heading(LevelSubsection, "Antenna")
	a.describe(schema)
	a.raw(spacerWide)

	a.describe(schema, pathGlobal...)
	a.paragraph()
	a.object(schema, narrowStriped, "", pathGlobal...)

	a.raw(newParagraph)
	a.describe(schema, pathAnnotations...)
	a.paragraph()
	a.object(schema, wideStriped, "", slices.Concat(pathAnnotations, pathFirstVariant)...)

	a.raw(newParagraph)
	a.describe(schema, pathCollection...)
	a.paragraph()
	a.object(schema, wideStriped, "", pathCollection...)
}

func (a *assembler) captureDetail(schema *Node) {
	a.heading(LevelSubsection, "Capture Detail")
	a.describe(schema)
	a.raw(spacerWide)

	a.describe(schema, pathCaptures...)
	a.paragraph()
	a.object(schema, narrowStriped, "", slices.Concat(pathCaptures, pathItems)...)

	a.describe(schema, pathAnnotations...)
	a.paragraph()
	a.object(schema, wideStriped, "", slices.Concat(pathAnnotations, pathItems)...)
}

func (a *assembler) signal(schema *Node) {
	detail := slices.Concat(pathAnnotations, pathItems, []string{"properties", "signal:detail"})
	emitter := slices.Concat(pathAnnotations, pathItems, []string{"properties", "signal:emitter"})

	a.heading(LevelSubsection, "Signal")
	a.describe(schema)
	a.raw(spacerWide)

	a.raw("Signal Detail Properties:")
	a.describe(schema, pathAnnotations...)
	a.paragraph()
	a.object(schema, narrowStriped, "", detail...)

	a.paragraph()
	a.raw("Signal Emitter Properties:")
	a.paragraph()
	a.object(schema, narrowStriped, "", emitter...)
}

func (a *assembler) spatial(schema *Node) {
	a.heading(LevelSubsection, "Spatial")
	a.describe(schema)
	a.raw(spacerWide)

	a.heading(LevelSubsubsection, "Definitions")
	a.raw(spacerNarrow)

	a.raw(`\textbf{Bearing Object}`)
	a.raw(spacerNarrow)
	a.table(schema, narrowPlain, "$defs", "bearing")

	a.raw(spacerNarrow)
	a.raw(`\textbf{Cartesian Point Object}`)
	a.raw(spacerNarrow)
	a.table(schema, narrowPlain, "$defs", "cartesian_point")

	a.raw(spacerNarrow)
	a.describe(schema, pathGlobal...)
	a.paragraph()
	a.object(schema, narrowStriped, "spatial_global", pathGlobal...)

	a.raw(newParagraph)
	a.raw("Captures Properties:")
	a.paragraph()
	a.object(schema, narrowStriped, "spatial_captures", slices.Concat(pathCaptures, pathItems)...)

	a.raw(newParagraph)
	a.raw("Annotations Properties:")
	a.paragraph()
	a.object(schema, narrowStriped, "spatial_annotations", slices.Concat(pathAnnotations, pathItems)...)

	a.raw(newParagraph)
	a.raw("Collection Properties:")
	a.paragraph()
	a.object(schema, narrowStriped, "spatial_collection", pathCollection...)
}

func (a *assembler) traceability(schema *Node) {
	a.heading(LevelSubsection, "Traceability")
	a.describe(schema)
	a.raw(spacerWide)

	a.raw(`\textbf{DataChange Object}`)
	a.raw(spacerNarrow)
	a.object(schema, narrowPlain, "trace_datachange", "$defs", "DataChange")

	a.raw(spacerWide)
	a.raw(`\textbf{Origin Object}`)
	a.raw(spacerNarrow)
	a.object(schema, narrowPlain, "trace_origin", "$defs", "Origin")

	a.raw(spacerWide)
	a.raw(`\textbf{Global Properties}`)
	a.raw(spacerNarrow)
	a.object(schema, narrowPlain, "trace_global", pathGlobal...)

	a.raw(spacerWide)
	a.raw(`\textbf{Annotations Properties}`)
	a.raw(spacerNarrow)
	a.object(schema, narrowPlain, "trace_anno", slices.Concat(pathAnnotations, pathItems)...)
}

// append adds blocks unless assembly already failed.
func (a *assembler) append(blocks ...Block) {
	if a.err != nil {
		return
	}

	a.doc.Append(blocks...)
}

func (a *assembler) raw(markup string) {
	a.append(Raw{Markup: markup})
}

// paragraph ends the current paragraph.
func (a *assembler) paragraph() {
	a.append(Raw{})
}

func (a *assembler) heading(level HeadingLevel, title string) {
	if level != LevelSubsubsection {
		a.section = title
		a.log.Debug("assemble section", zap.String("title", title))
	}

	a.append(Heading{Level: level, Title: title})
}

// lookup resolves path under root and records a failure with the current section.
func (a *assembler) lookup(root *Node, path ...string) *Node {
	if a.err != nil {
		return nil
	}

	node, err := root.Lookup(path...)
	if err != nil {
		a.err = fmt.Errorf("section %q: %w", a.section, err)
		return nil
	}

	return node
}

// describe adds the transformed description of the node at path.
func (a *assembler) describe(root *Node, path ...string) {
	description := a.lookup(root, slices.Concat(path, []string{"description"})...)
	if description == nil {
		return
	}

	a.raw(CodeTags(description.Text()))
}

// table adds the summary table of the object at path.
func (a *assembler) table(root *Node, style tableStyle, path ...string) *Node {
	node := a.lookup(root, path...)
	if node == nil {
		return nil
	}

	table, err := RenderTable(node)
	if err != nil {
		a.err = fmt.Errorf("section %q: %s: %w", a.section, jsonPointer(path), err)
		return nil
	}

	table.Width = style.width
	table.Striped = style.striped
	a.append(table)
	return node
}

// object adds the summary table, field sections and optional example of the
// object at path.
func (a *assembler) object(root *Node, style tableStyle, prefix string, path ...string) {
	node := a.table(root, style, path...)
	if node == nil {
		return
	}

	sections, err := RenderFields(node, prefix, a.labels)
	if err != nil {
		a.err = fmt.Errorf("section %q: %s: %w", a.section, jsonPointer(path), err)
		return
	}

	for _, section := range sections {
		a.append(section)
	}

	if a.mode == ExampleModeNone {
		return
	}

	example, err := GenerateExample(root, node, a.mode, a.format)
	if err != nil {
		a.err = fmt.Errorf("section %q: %s: %w", a.section, jsonPointer(path), err)
		return
	}

	a.append(Listing{Caption: "Example (" + string(a.format) + ")", Code: string(example)})
}
