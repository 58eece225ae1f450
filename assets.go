// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"embed"
	"fmt"
	"io"
	"text/template"
)

// templateFS stores the preamble template and stylesheet embedded into the package.
//
//go:embed templates/preamble.tex.gotmpl templates/main.css
var templateFS embed.FS

const (
	preambleTemplatePath = "templates/preamble.tex.gotmpl"
	stylesheetPath       = "templates/main.css"
)

// preambleView is passed to the preamble template.
type preambleView struct {
	Title   string
	Version string
}

// Stylesheet returns the embedded stylesheet for the two-pane HTML view.
func Stylesheet() string {
	data, err := templateFS.ReadFile(stylesheetPath)
	if err != nil {
		panic(err) // embedded file
	}

	return string(data)
}

// writePreamble renders the document preamble into w.
func writePreamble(w io.Writer, view preambleView) error {
	text, err := templateFS.ReadFile(preambleTemplatePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderPreamble, err)
	}

	parsed, err := template.New("preamble").Funcs(templateFuncs()).Parse(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderPreamble, err)
	}

	if err := parsed.Execute(w, view); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderPreamble, err)
	}

	return nil
}

// templateFuncs provides utility functions available inside the preamble template.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"latex": EscapeLaTeX,
	}
}
