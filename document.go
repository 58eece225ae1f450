// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"fmt"
	"io"
	"strings"
)

// HeadingLevel selects the sectioning command of a heading.
type HeadingLevel int

const (
	// LevelSection renders \section.
	LevelSection HeadingLevel = iota + 1
	// LevelSubsection renders \subsection.
	LevelSubsection
	// LevelSubsubsection renders \subsubsection.
	LevelSubsubsection
)

// command returns the LaTeX sectioning command and label prefix for the level.
func (l HeadingLevel) command() (string, string) {
	switch l {
	case LevelSection:
		return "section", "sec"
	case LevelSubsection:
		return "subsection", "subsec"
	default:
		return "subsubsection", "ssubsec"
	}
}

// Block is one element of a composite document.
type Block interface {
	writeLaTeX(out *strings.Builder)
}

// Heading is a sectioning heading. An empty Label is derived from the title.
type Heading struct {
	Level HeadingLevel
	Title string
	Label string
}

// Text is plain text escaped on output.
type Text struct {
	Value string
}

// Raw is markup emitted verbatim.
type Raw struct {
	Markup string
}

// Listing is a verbatim code block.
type Listing struct {
	Caption string
	Code    string
}

// Metadata carries document-wide values used by the preamble.
type Metadata struct {
	Title   string
	Version string
}

// Document is an append-only ordered sequence of blocks.
type Document struct {
	blocks []Block
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Append adds blocks to the end of the document.
func (d *Document) Append(blocks ...Block) {
	d.blocks = append(d.blocks, blocks...)
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// WriteLaTeX serializes preamble, body blocks and document end into w.
func (d *Document) WriteLaTeX(w io.Writer, meta Metadata) error {
	if err := writePreamble(w, preambleView{Title: meta.Title, Version: meta.Version}); err != nil {
		return err
	}

	var body strings.Builder
	for _, block := range d.blocks {
		block.writeLaTeX(&body)
	}

	body.WriteString("\\end{document}\n")
	if _, err := io.WriteString(w, body.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteArtifact, err)
	}

	return nil
}

// LaTeX returns the serialized document as a string.
func (d *Document) LaTeX(meta Metadata) (string, error) {
	var out strings.Builder
	if err := d.WriteLaTeX(&out, meta); err != nil {
		return "", err
	}

	return ensureTrailingNewline(out.String()), nil
}

func (h Heading) writeLaTeX(out *strings.Builder) {
	command, prefix := h.Level.command()
	label := h.Label
	if label == "" {
		label = headingMarker(h.Title)
	}

	fmt.Fprintf(out, "\\%s{%s}%%\n", command, EscapeLaTeX(h.Title))
	fmt.Fprintf(out, "\\label{%s:%s}%%\n", prefix, label)
}

func (t Text) writeLaTeX(out *strings.Builder) {
	out.WriteString(EscapeLaTeX(t.Value))
	out.WriteString("\n")
}

func (r Raw) writeLaTeX(out *strings.Builder) {
	out.WriteString(r.Markup)
	out.WriteString("\n")
}

func (l Listing) writeLaTeX(out *strings.Builder) {
	out.WriteString("\\begin{lstlisting}[basicstyle=\\ttfamily\\small,breaklines=true")
	if l.Caption != "" {
		out.WriteString(",caption={")
		out.WriteString(EscapeLaTeX(l.Caption))
		out.WriteString("}")
	}

	out.WriteString("]\n")
	out.WriteString(strings.TrimRight(l.Code, "\n"))
	out.WriteString("\n\\end{lstlisting}\n\n")
}
