// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"strings"
	"unicode"
)

const (
	// codeOpen starts an inline code span in the output markup.
	codeOpen = `\code{`
	// codeClose ends an inline code span in the output markup.
	codeClose = "}"
)

var (
	// tableNamespaces are stripped from field names in summary tables.
	tableNamespaces = []string{"core:"}
	// fieldNamespaces are stripped from field names in field sections.
	fieldNamespaces = []string{"core:", "signal:", "capture_details:"}
)

// latexReplacer escapes characters with special meaning in LaTeX text mode.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\^{}`,
	"\n", "\\newline%\n",
)

// CodeTags escapes underscores and turns each pair of backticks into an
// inline code span. A trailing unmatched backtick is kept as is.
//
// The result is markup, so the function must run exactly once per raw string.
func CodeTags(text string) string {
	text = strings.ReplaceAll(text, "_", `\_`)

	var out strings.Builder
	out.Grow(len(text) + 8)

	for {
		open := strings.IndexByte(text, '`')
		if open < 0 {
			break
		}

		closing := strings.IndexByte(text[open+1:], '`')
		if closing < 0 {
			break
		}

		closing += open + 1
		out.WriteString(text[:open])
		out.WriteString(codeOpen)
		out.WriteString(text[open+1 : closing])
		out.WriteString(codeClose)
		text = text[closing+1:]
	}

	out.WriteString(text)
	return out.String()
}

// EscapeLaTeX escapes plain text so it renders literally.
func EscapeLaTeX(text string) string {
	return latexReplacer.Replace(text)
}

// ShortDescription returns the description up to the first period with line
// breaks removed, or empty string when it has no period.
func ShortDescription(description string) string {
	end := strings.IndexByte(description, '.')
	if end < 0 {
		return ""
	}

	return strings.ReplaceAll(description[:end], "\n", "")
}

// DisplayName removes namespace tags from a property key.
func DisplayName(key string, namespaces []string) string {
	for _, namespace := range namespaces {
		key = strings.ReplaceAll(key, namespace, "")
	}

	return key
}

// headingMarker keeps letters and digits of a heading title for auto labels.
func headingMarker(title string) string {
	var out strings.Builder
	out.Grow(len(title))

	for _, r := range title {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			out.WriteRune(r)
		}
	}

	return out.String()
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
