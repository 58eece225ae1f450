// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies the JSON value type held by a Node.
type Kind uint8

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number, kept as its source literal.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object with keys in source order.
	KindObject
)

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is a read-only JSON tree node that keeps object keys in source order.
type Node struct {
	kind   Kind
	scalar string
	keys   []string
	values []*Node
}

// Property is one name/schema pair of a parent's "properties" mapping.
type Property struct {
	Name   string
	Schema *Node
}

// DecodeNode parses JSON bytes into an ordered tree.
//
// The input is checked as strict JSON first, then rebuilt from the decoder
// token stream, which keeps object key order that encoding/json maps drop.
func DecodeNode(data []byte) (*Node, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return decodeValue(decoder, token)
}

// decodeValue builds the node that starts with token, consuming nested
// tokens of arrays and objects from decoder.
func decodeValue(decoder *json.Decoder, token json.Token) (*Node, error) {
	switch value := token.(type) {
	case json.Delim:
		switch value {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return nil, fmt.Errorf("%w: unexpected delimiter %q", ErrDecodeSchema, value)
		}
	case string:
		return newScalarNode(KindString, value), nil
	case json.Number:
		return newScalarNode(KindNumber, value.String()), nil
	case bool:
		return newScalarNode(KindBool, strconv.FormatBool(value)), nil
	case nil:
		return newScalarNode(KindNull, "null"), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %T", ErrDecodeSchema, token)
	}
}

// decodeObject reads members up to the closing brace.
func decodeObject(decoder *json.Decoder) (*Node, error) {
	node := newObjectNode()
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
		}

		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is %T, want string", ErrDecodeSchema, keyToken)
		}

		value, err := decodeNext(decoder)
		if err != nil {
			return nil, err
		}

		node.set(key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return node, nil
}

// decodeArray reads items up to the closing bracket.
func decodeArray(decoder *json.Decoder) (*Node, error) {
	node := newArrayNode()
	for decoder.More() {
		item, err := decodeNext(decoder)
		if err != nil {
			return nil, err
		}

		node.values = append(node.values, item)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return node, nil
}

// decodeNext reads one token and builds the value it starts.
func decodeNext(decoder *json.Decoder) (*Node, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	return decodeValue(decoder, token)
}

// set stores key/value on an object node; a repeated key keeps its first
// position and takes the last value.
func (n *Node) set(key string, value *Node) {
	for index, existing := range n.keys {
		if existing == key {
			n.values[index] = value
			return
		}
	}

	n.keys = append(n.keys, key)
	n.values = append(n.values, value)
}

// Kind reports the JSON type of the node.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}

	return n.kind
}

// Len returns the number of object members or array items.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}

	return len(n.values)
}

// Keys returns object keys in source order.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindObject {
		return nil
	}

	return append([]string(nil), n.keys...)
}

// Items returns array items in order.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != KindArray {
		return nil
	}

	return append([]*Node(nil), n.values...)
}

// Get returns the value stored under key of an object node.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.kind != KindObject {
		return nil, false
	}

	for index, existing := range n.keys {
		if existing == key {
			return n.values[index], true
		}
	}

	return nil, false
}

// Has reports whether an object node carries key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Lookup walks object keys and array indexes and fails with ErrSchemaShape
// naming the JSON pointer of the first missing segment.
func (n *Node) Lookup(path ...string) (*Node, error) {
	current := n
	for depth, segment := range path {
		next, ok := current.child(segment)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSchemaShape, jsonPointer(path[:depth+1]))
		}

		current = next
	}

	return current, nil
}

// child resolves one path segment against an object or array node.
func (n *Node) child(segment string) (*Node, bool) {
	switch n.Kind() {
	case KindObject:
		return n.Get(segment)
	case KindArray:
		index, err := strconv.Atoi(segment)
		if err != nil || index < 0 || index >= len(n.values) {
			return nil, false
		}

		return n.values[index], true
	default:
		return nil, false
	}
}

// Str returns string content for string nodes.
func (n *Node) Str() (string, bool) {
	if n == nil || n.kind != KindString {
		return "", false
	}

	return n.scalar, true
}

// StringField returns the string value of key, or empty string.
func (n *Node) StringField(key string) string {
	value, ok := n.Get(key)
	if !ok {
		return ""
	}

	text, _ := value.Str()
	return text
}

// Properties returns the entries of the node's "properties" mapping in source order.
func (n *Node) Properties() []Property {
	properties, ok := n.Get("properties")
	if !ok || properties.kind != KindObject {
		return nil
	}

	out := make([]Property, 0, len(properties.keys))
	for index, name := range properties.keys {
		out = append(out, Property{Name: name, Schema: properties.values[index]})
	}

	return out
}

// Required returns the string members of the node's "required" list.
func (n *Node) Required() []string {
	required, ok := n.Get("required")
	if !ok || required.kind != KindArray {
		return nil
	}

	out := make([]string, 0, len(required.values))
	for _, item := range required.values {
		if text, ok := item.Str(); ok {
			out = append(out, text)
		}
	}

	return out
}

// Text returns the plain string form of the node: string content, the literal
// of scalars and compact ordered JSON for arrays and objects.
func (n *Node) Text() string {
	switch n.Kind() {
	case KindString, KindNumber, KindBool:
		return n.scalar
	case KindNull:
		return "null"
	default:
		data, err := n.MarshalJSON()
		if err != nil {
			return ""
		}

		return string(data)
	}
}

// MarshalJSON encodes the node as compact JSON keeping object key order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	if err := n.writeJSON(&out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// writeJSON appends compact JSON for the node to out.
func (n *Node) writeJSON(out *bytes.Buffer) error {
	switch n.Kind() {
	case KindNull:
		out.WriteString("null")
	case KindBool, KindNumber:
		out.WriteString(n.scalar)
	case KindString:
		return writeJSONString(out, n.scalar)
	case KindArray:
		out.WriteByte('[')
		for index, item := range n.values {
			if index > 0 {
				out.WriteByte(',')
			}

			if err := item.writeJSON(out); err != nil {
				return err
			}
		}
		out.WriteByte(']')
	case KindObject:
		out.WriteByte('{')
		for index, key := range n.keys {
			if index > 0 {
				out.WriteByte(',')
			}

			if err := writeJSONString(out, key); err != nil {
				return err
			}

			out.WriteByte(':')
			if err := n.values[index].writeJSON(out); err != nil {
				return err
			}
		}
		out.WriteByte('}')
	}

	return nil
}

// writeJSONString appends one JSON string literal without HTML escaping.
func writeJSONString(out *bytes.Buffer, value string) error {
	var encoded bytes.Buffer
	encoder := json.NewEncoder(&encoded)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return err
	}

	out.Write(bytes.TrimRight(encoded.Bytes(), "\n"))
	return nil
}

// yamlNode converts the tree into a yaml.Node for YAML encoding.
func (n *Node) yamlNode() *yaml.Node {
	switch n.Kind() {
	case KindObject:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for index, key := range n.keys {
			out.Content = append(out.Content, yamlScalarNode("!!str", key), n.values[index].yamlNode())
		}

		return out
	case KindArray:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.values {
			out.Content = append(out.Content, item.yamlNode())
		}

		return out
	case KindString:
		return yamlScalarNode("!!str", n.scalar)
	case KindBool:
		return yamlScalarNode("!!bool", n.scalar)
	case KindNumber:
		if strings.ContainsAny(n.scalar, ".eE") {
			return yamlScalarNode("!!float", n.scalar)
		}

		return yamlScalarNode("!!int", n.scalar)
	default:
		return yamlScalarNode("!!null", "null")
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// jsonPointer renders path segments as an RFC 6901 pointer.
func jsonPointer(path []string) string {
	if len(path) == 0 {
		return "/"
	}

	var out strings.Builder
	for _, segment := range path {
		segment = strings.ReplaceAll(segment, "~", "~0")
		segment = strings.ReplaceAll(segment, "/", "~1")
		out.WriteByte('/')
		out.WriteString(segment)
	}

	return out.String()
}

// newObjectNode creates an empty object node.
func newObjectNode() *Node {
	return &Node{kind: KindObject}
}

// newArrayNode creates an array node holding items.
func newArrayNode(items ...*Node) *Node {
	return &Node{kind: KindArray, values: items}
}

// newScalarNode creates a scalar node of the given kind.
func newScalarNode(kind Kind, value string) *Node {
	return &Node{kind: kind, scalar: value}
}
