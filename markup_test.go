// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import "testing"

func TestCodeTags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "pairs", input: "a `b` c `d` e", want: `a \code{b} c \code{d} e`},
		{name: "underscore", input: "a_b", want: `a\_b`},
		{name: "underscore inside code", input: "use `core:sample_rate`", want: `use \code{core:sample\_rate}`},
		{name: "unmatched trailing", input: "x `y` z `tail", want: "x \\code{y} z `tail"},
		{name: "no backticks", input: "plain text.", want: "plain text."},
		{name: "empty", input: "", want: ""},
		{name: "adjacent", input: "``", want: `\code{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := CodeTags(tc.input); got != tc.want {
				t.Fatalf("CodeTags(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCodeTagsIsNotIdempotent(t *testing.T) {
	t.Parallel()

	once := CodeTags("a_b")
	if twice := CodeTags(once); twice == once {
		t.Fatalf("second pass should change output, got %q", twice)
	}
}

func TestEscapeLaTeX(t *testing.T) {
	t.Parallel()

	got := EscapeLaTeX(`50% & $5 #1 a_b {x} ~ ^ \`)
	want := `50\% \& \$5 \#1 a\_b \{x\} \textasciitilde{} \^{} \textbackslash{}`
	if got != want {
		t.Fatalf("EscapeLaTeX = %q, want %q", got, want)
	}
}

func TestEscapeLaTeXBreaksLines(t *testing.T) {
	t.Parallel()

	got := EscapeLaTeX("first line\nsecond 100%")
	want := "first line\\newline%\nsecond 100\\%"
	if got != want {
		t.Fatalf("EscapeLaTeX = %q, want %q", got, want)
	}
}

func TestShortDescription(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{input: "Frequency in Hz. Extra detail.", want: "Frequency in Hz"},
		{input: "Line one\ncontinues. Next.", want: "Line onecontinues"},
		{input: "No period here", want: ""},
		{input: "", want: ""},
		{input: ".leading", want: ""},
	}

	for _, tc := range cases {
		if got := ShortDescription(tc.input); got != tc.want {
			t.Fatalf("ShortDescription(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key        string
		namespaces []string
		want       string
	}{
		{key: "core:freq", namespaces: tableNamespaces, want: "freq"},
		{key: "signal:detail", namespaces: tableNamespaces, want: "signal:detail"},
		{key: "signal:detail", namespaces: fieldNamespaces, want: "detail"},
		{key: "capture_details:SNRdB", namespaces: fieldNamespaces, want: "SNRdB"},
		{key: "antenna:model", namespaces: fieldNamespaces, want: "antenna:model"},
	}

	for _, tc := range cases {
		if got := DisplayName(tc.key, tc.namespaces); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestHeadingMarker(t *testing.T) {
	t.Parallel()

	if got := headingMarker("Table of Contents"); got != "TableofContents" {
		t.Fatalf("headingMarker = %q", got)
	}

	if got := headingMarker("SigMF Specification Version v1.2.0"); got != "SigMFSpecificationVersionv120" {
		t.Fatalf("headingMarker = %q", got)
	}
}
