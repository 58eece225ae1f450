// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeNodeKeepsSourceOrder(t *testing.T) {
	t.Parallel()

	node := mustDecodeNode(t, `{"zulu": 1, "alpha": 2, "mike": {"b": true, "a": null}}`)
	if diff := cmp.Diff([]string{"zulu", "alpha", "mike"}, node.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	nested, err := node.Lookup("mike")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if diff := cmp.Diff([]string{"b", "a"}, nested.Keys()); diff != "" {
		t.Fatalf("nested keys mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeNodeScalarKinds(t *testing.T) {
	t.Parallel()

	node := mustDecodeNode(t, `{"s": "true", "b": false, "n": -1.5e3, "z": null, "q": "null", "a": [], "o": {}}`)
	cases := map[string]Kind{
		"s": KindString,
		"b": KindBool,
		"n": KindNumber,
		"z": KindNull,
		"q": KindString,
		"a": KindArray,
		"o": KindObject,
	}

	for key, want := range cases {
		value, ok := node.Get(key)
		if !ok {
			t.Fatalf("missing key %q", key)
		}

		if value.Kind() != want {
			t.Fatalf("%s kind = %s, want %s", key, value.Kind(), want)
		}
	}

	number, _ := node.Get("n")
	if number.Text() != "-1.5e3" {
		t.Fatalf("number literal = %q, want source literal", number.Text())
	}
}

func TestDecodeNodeDuplicateKeyKeepsFirstPosition(t *testing.T) {
	t.Parallel()

	node := mustDecodeNode(t, `{"a": 1, "b": 2, "a": 3}`)
	if diff := cmp.Diff([]string{"a", "b"}, node.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	value, _ := node.Get("a")
	if value.Text() != "3" {
		t.Fatalf("duplicate key value = %q, want 3", value.Text())
	}
}

func TestDecodeNodeRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	cases := []string{
		`{"a": 1,}`,
		`a: 1`,
		``,
		`{"a": 'single'}`,
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeNode([]byte(input))
			if !errors.Is(err, ErrDecodeSchema) {
				t.Fatalf("expected ErrDecodeSchema, got: %v", err)
			}
		})
	}
}

func TestLookupReportsMissingPointer(t *testing.T) {
	t.Parallel()

	node := mustDecodeNode(t, `{"properties": {"captures": {"items": {"anyOf": [{"type": "object"}]}}}}`)

	found, err := node.Lookup("properties", "captures", "items", "anyOf", "0", "type")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if found.Text() != "object" {
		t.Fatalf("Lookup value = %q, want object", found.Text())
	}

	_, err = node.Lookup("properties", "captures", "items", "anyOf", "1")
	if !errors.Is(err, ErrSchemaShape) {
		t.Fatalf("expected ErrSchemaShape, got: %v", err)
	}

	assertContains(t, err.Error(), "/properties/captures/items/anyOf/1")

	_, err = node.Lookup("properties", "signal:detail/x")
	assertContains(t, err.Error(), "/properties/signal:detail~1x")
}

func TestTextRendersContainersAsOrderedJSON(t *testing.T) {
	t.Parallel()

	node := mustDecodeNode(t, `{"enum": ["b", "a"], "obj": {"y": 1, "x": "<tag>"}, "flag": true}`)

	cases := map[string]string{
		"enum": `["b","a"]`,
		"obj":  `{"y":1,"x":"<tag>"}`,
		"flag": "true",
	}

	for key, want := range cases {
		value, _ := node.Get(key)
		if got := value.Text(); got != want {
			t.Fatalf("%s Text() = %q, want %q", key, got, want)
		}
	}
}

func TestPropertiesAndRequired(t *testing.T) {
	t.Parallel()

	node := mustDecodeNode(t, `{
  "required": ["core:b", 7],
  "properties": {
    "core:b": {"type": "string"},
    "core:a": {"type": "number"}
  }
}`)

	properties := node.Properties()
	names := make([]string, 0, len(properties))
	for _, prop := range properties {
		names = append(names, prop.Name)
	}

	if diff := cmp.Diff([]string{"core:b", "core:a"}, names); diff != "" {
		t.Fatalf("properties mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"core:b"}, node.Required()); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestNilNodeAccessors(t *testing.T) {
	t.Parallel()

	var node *Node
	if node.Kind() != KindNull || node.Len() != 0 || node.Keys() != nil || node.Has("x") {
		t.Fatal("nil node should behave as empty null")
	}

	if _, err := node.Lookup("x"); !errors.Is(err, ErrSchemaShape) {
		t.Fatalf("expected ErrSchemaShape, got: %v", err)
	}
}

// mustDecodeNode parses a JSON fixture or fails the test.
func mustDecodeNode(t testing.TB, text string) *Node {
	t.Helper()

	node, err := DecodeNode([]byte(text))
	if err != nil {
		t.Fatalf("DecodeNode: %v", err)
	}

	return node
}

func assertContains(t testing.TB, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t testing.TB, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}

func TestDecodeNodeAcceptsTabIndentation(t *testing.T) {
	t.Parallel()

	node := mustDecodeNode(t, "{\n\t\"b\": {\n\t\t\"x\": \"a\\tb\"\n\t},\n\t\"a\": 1\n}")
	if diff := cmp.Diff([]string{"b", "a"}, node.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	value, err := node.Lookup("b", "x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if value.Text() != "a\tb" {
		t.Fatalf("escaped tab = %q, want a<TAB>b", value.Text())
	}
}

func TestDecodeNodeKeepsJSONStringContent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "escaped solidus", input: `{"v": "https:\/\/sigmf.org\/v1.2.0\/sigmf-schema.json"}`, want: "https://sigmf.org/v1.2.0/sigmf-schema.json"},
		{name: "raw delete", input: "{\"v\": \"a\x7fb\"}", want: "a\x7fb"},
		{name: "raw c1 control", input: "{\"v\": \"a\u0080b\"}", want: "a\u0080b"},
		{name: "raw next line", input: "{\"v\": \"a\u0085b\"}", want: "a\u0085b"},
		{name: "unicode escape", input: `{"v": "\u00b5s"}`, want: "µs"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			node := mustDecodeNode(t, tc.input)
			if got := node.StringField("v"); got != tc.want {
				t.Fatalf("value = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodeNodeEscapedIDYieldsVersion(t *testing.T) {
	t.Parallel()

	node := mustDecodeNode(t, `{"$id": "https:\/\/sigmf.org\/v1.2.0\/sigmf-schema.json"}`)
	version, err := SpecVersion(node)
	if err != nil {
		t.Fatalf("SpecVersion: %v", err)
	}

	if version != "v1.2.0" {
		t.Fatalf("version = %q, want v1.2.0", version)
	}
}

func TestDecodeNodeRejectsTrailingValue(t *testing.T) {
	t.Parallel()

	_, err := DecodeNode([]byte(`{"a": 1} {"b": 2}`))
	if !errors.Is(err, ErrDecodeSchema) {
		t.Fatalf("expected ErrDecodeSchema, got: %v", err)
	}
}
