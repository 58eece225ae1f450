// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"fmt"
	"strings"
)

// hiddenFieldKeywords are not listed as keyword lines in field sections.
var hiddenFieldKeywords = map[string]struct{}{
	"$id":             {},
	"description":     {},
	"items":           {},
	"additionalItems": {},
	"pattern":         {},
}

// FieldSection is one labeled subsection describing a single property.
type FieldSection struct {
	// Name is the property key without namespace tags.
	Name string
	// Label is the unique cross-reference label of the subsection.
	Label string
	// Description is the transformed long description, already markup.
	Description string
	// HasDescription reports whether the property carried a description.
	HasDescription bool
	Keywords       []Keyword
}

// Keyword is one remaining schema keyword shown as "name: value".
type Keyword struct {
	Name  string
	Value string
}

// RenderFields builds one subsection per property in source order, allocating
// labels from labels with the given prefix.
func RenderFields(node *Node, prefix string, labels *LabelAllocator) ([]FieldSection, error) {
	properties, err := node.Lookup("properties")
	if err != nil {
		return nil, err
	}

	if properties.Kind() != KindObject {
		return nil, fmt.Errorf("%w: properties is %s, want object", ErrSchemaShape, properties.Kind())
	}

	out := make([]FieldSection, 0, properties.Len())
	for _, prop := range node.Properties() {
		name := DisplayName(prop.Name, fieldNamespaces)
		section := FieldSection{
			Name:  name,
			Label: labels.Allocate(prefix, name),
		}

		if description, ok := prop.Schema.Get("description"); ok {
			section.Description = CodeTags(description.Text())
			section.HasDescription = true
		}

		section.Keywords = fieldKeywords(prop.Schema)
		out = append(out, section)
	}

	return out, nil
}

// fieldKeywords lists displayable keywords of one property in source order.
func fieldKeywords(schema *Node) []Keyword {
	keys := schema.Keys()
	out := make([]Keyword, 0, len(keys))
	for _, key := range keys {
		if _, hidden := hiddenFieldKeywords[key]; hidden {
			continue
		}

		value, _ := schema.Get(key)
		out = append(out, Keyword{Name: key, Value: value.Text()})
	}

	return out
}

// writeLaTeX serializes the section heading, label, description and keywords.
func (s FieldSection) writeLaTeX(out *strings.Builder) {
	fmt.Fprintf(out, "\\subsubsection{%s}%%\n", EscapeLaTeX(s.Name))
	fmt.Fprintf(out, "\\label{ssubsec:%s}%%\n", s.Label)

	if s.HasDescription {
		out.WriteString(s.Description)
		out.WriteString("\n")
	}

	for _, keyword := range s.Keywords {
		fmt.Fprintf(out, "\\par\\noindent\\textbf{%s}: %s\n", EscapeLaTeX(keyword.Name), EscapeLaTeX(keyword.Value))
	}

	out.WriteString("\n")
}
