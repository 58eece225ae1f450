// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeNone disables example listings.
	ExampleModeNone ExampleMode = "none"
	// ExampleModeAll builds examples with all declared properties.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds examples with required properties only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation property coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for generated example payload.
type ExampleFormat string

// exampleScalarPlaceholders provides fallback values for scalar schema types.
var exampleScalarPlaceholders = map[string]*Node{
	"string":  newScalarNode(KindString, "<string>"),
	"number":  newScalarNode(KindNumber, "0"),
	"integer": newScalarNode(KindNumber, "0"),
	"boolean": newScalarNode(KindBool, "false"),
	"null":    newScalarNode(KindNull, "null"),
}

// exampleBuilder converts a schema object into an example value tree.
type exampleBuilder struct {
	root       *Node
	activeRefs map[string]int
	mode       ExampleMode
}

// GenerateExample returns an example payload for schema encoded in format.
// Local "$ref" pointers are resolved against root.
func GenerateExample(root, schema *Node, mode ExampleMode, format ExampleFormat) ([]byte, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	format, err = normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	builder := exampleBuilder{
		root:       root,
		mode:       mode,
		activeRefs: make(map[string]int),
	}

	value := builder.buildNode(schema)
	switch format {
	case ExampleFormatYAML:
		data, err := marshalExampleYAML(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
		}

		return data, nil
	default:
		data, err := marshalExampleJSON(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExample, err)
		}

		return data, nil
	}
}

// normalizeExampleMode validates and normalizes caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case "":
		return ExampleModeNone, nil
	case ExampleModeNone, ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeExampleFormat validates and normalizes caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "":
		return ExampleFormatJSON, nil
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// buildNode recursively builds example value for one schema node.
func (builder *exampleBuilder) buildNode(schema *Node) *Node {
	if schema.Kind() != KindObject {
		return newScalarNode(KindNull, "null")
	}

	if resolved, release, handled := builder.resolvedObjectForReference(schema); handled {
		if release != nil {
			defer release()
		}

		if resolved == nil {
			return newScalarNode(KindNull, "null")
		}

		return builder.buildNode(resolved)
	}

	return builder.buildFromObject(schema)
}

// buildFromObject builds example from non-boolean schema object.
func (builder *exampleBuilder) buildFromObject(object *Node) *Node {
	schemaType := schemaTypeName(object)
	properties, required := builder.collectObjectShape(object)

	if schemaType == "object" || len(properties) > 0 || len(required) > 0 {
		return builder.buildObjectFromShape(properties, required)
	}

	if schemaType == "array" || hasArrayShape(object) {
		return builder.buildArrayFromObject(object)
	}

	if value, ok := explicitExampleValue(object); ok {
		return value
	}

	if value, ok := object.Get("const"); ok {
		return value
	}

	if value, ok := enumExampleValue(object); ok {
		return value
	}

	if value, ok := builder.buildCompositionFallback(object); ok {
		return value
	}

	if value, ok := exampleScalarPlaceholders[schemaType]; ok {
		return value
	}

	return newScalarNode(KindNull, "null")
}

// buildObjectFromShape materializes object value from collected property shape.
func (builder *exampleBuilder) buildObjectFromShape(properties []Property, required []string) *Node {
	out := newObjectNode()
	for _, prop := range properties {
		if builder.mode == ExampleModeRequired && !slices.Contains(required, prop.Name) {
			continue
		}

		out.set(prop.Name, builder.buildNode(prop.Schema))
	}

	return out
}

// buildArrayFromObject materializes array value from schema items.
func (builder *exampleBuilder) buildArrayFromObject(object *Node) *Node {
	for _, candidate := range []func(*Node) (*Node, bool){explicitExampleValue, constExampleValue, enumExampleValue} {
		if value, ok := candidate(object); ok && value.Kind() == KindArray {
			return value
		}
	}

	if prefixItems, ok := object.Get("prefixItems"); ok && prefixItems.Kind() == KindArray {
		items := make([]*Node, 0, prefixItems.Len())
		for _, item := range prefixItems.Items() {
			items = append(items, builder.buildNode(item))
		}

		return newArrayNode(items...)
	}

	if item, ok := object.Get("items"); ok && item.Kind() == KindObject {
		return newArrayNode(builder.buildNode(item))
	}

	return newArrayNode()
}

// collectObjectShape merges local properties with allOf object overlays.
func (builder *exampleBuilder) collectObjectShape(object *Node) ([]Property, []string) {
	properties := object.Properties()
	required := object.Required()

	allOf, ok := object.Get("allOf")
	if !ok {
		return properties, required
	}

	for _, schema := range allOf.Items() {
		if schema.Kind() != KindObject {
			continue
		}

		nestedProperties, nestedRequired := builder.collectNestedShape(schema)
		properties = mergeProperties(properties, nestedProperties)
		required = mergeRequiredKeys(required, nestedRequired)
	}

	return properties, required
}

// collectNestedShape collects the shape of one allOf member, following a local ref.
func (builder *exampleBuilder) collectNestedShape(schema *Node) ([]Property, []string) {
	resolved, release, handled := builder.resolvedObjectForReference(schema)
	if !handled {
		return builder.collectObjectShape(schema)
	}

	if release != nil {
		defer release()
	}

	if resolved == nil {
		return nil, nil
	}

	return builder.collectObjectShape(resolved)
}

// mergeProperties appends right properties whose names are not in left.
func mergeProperties(left, right []Property) []Property {
	out := append([]Property(nil), left...)
	for _, prop := range right {
		exists := slices.ContainsFunc(out, func(existing Property) bool {
			return existing.Name == prop.Name
		})
		if !exists {
			out = append(out, prop)
		}
	}

	return out
}

// mergeRequiredKeys appends unique required keys while preserving first-seen order.
func mergeRequiredKeys(left, right []string) []string {
	seen := make(map[string]struct{}, len(left)+len(right))
	out := make([]string, 0, len(left)+len(right))

	for _, key := range slices.Concat(left, right) {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		if _, exists := seen[key]; exists {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out
}

// buildCompositionFallback builds value from first schema of oneOf/anyOf/allOf.
func (builder *exampleBuilder) buildCompositionFallback(object *Node) (*Node, bool) {
	for _, keyword := range []string{"oneOf", "anyOf", "allOf"} {
		items, ok := object.Get(keyword)
		if !ok {
			continue
		}

		for _, item := range items.Items() {
			if item.Kind() != KindObject {
				continue
			}

			return builder.buildNode(item), true
		}
	}

	return nil, false
}

// resolvedObjectForReference resolves local ref and merges sibling override keywords.
func (builder *exampleBuilder) resolvedObjectForReference(object *Node) (*Node, func(), bool) {
	ref := object.StringField("$ref")
	if ref == "" {
		return nil, nil, false
	}

	resolved, ok := builder.resolveLocalReference(ref)
	if !ok || resolved.Kind() != KindObject {
		return mergeSchemaObjects(newObjectNode(), object), nil, true
	}

	release, ok := builder.enterReference(ref)
	if !ok {
		return nil, nil, true
	}

	return mergeSchemaObjects(resolved, object), release, true
}

// resolveLocalReference resolves local JSON pointer references against root schema.
func (builder *exampleBuilder) resolveLocalReference(ref string) (*Node, bool) {
	ref = strings.TrimSpace(ref)
	if builder.root == nil || !strings.HasPrefix(ref, "#") {
		return nil, false
	}

	if ref == "#" {
		return builder.root, true
	}

	if !strings.HasPrefix(ref, "#/") {
		return nil, false
	}

	tokens := strings.Split(strings.TrimPrefix(ref, "#/"), "/")
	for index, token := range tokens {
		tokens[index] = decodeJSONPointerToken(token)
	}

	resolved, err := builder.root.Lookup(tokens...)
	if err != nil {
		return nil, false
	}

	return resolved, true
}

// decodeJSONPointerToken unescapes one JSON pointer token.
func decodeJSONPointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// enterReference registers active local ref and returns release callback.
func (builder *exampleBuilder) enterReference(ref string) (func(), bool) {
	if builder.activeRefs[ref] > 0 {
		return nil, false
	}

	builder.activeRefs[ref]++
	return func() {
		builder.activeRefs[ref]--
		if builder.activeRefs[ref] <= 0 {
			delete(builder.activeRefs, ref)
		}
	}, true
}

// schemaTypeName returns first non-null type value from schema "type" keyword.
func schemaTypeName(object *Node) string {
	typeValue, exists := object.Get("type")
	if !exists {
		return ""
	}

	if text, ok := typeValue.Str(); ok {
		return strings.ToLower(text)
	}

	fallback := ""
	for _, item := range typeValue.Items() {
		text, _ := item.Str()
		text = strings.ToLower(text)
		switch text {
		case "":
			continue
		case "null":
			fallback = text
		default:
			return text
		}
	}

	return fallback
}

// hasArrayShape reports whether schema has array structure keywords.
func hasArrayShape(object *Node) bool {
	if items, ok := object.Get("items"); ok && items.Kind() == KindObject {
		return true
	}

	prefixItems, _ := object.Get("prefixItems")
	return prefixItems.Len() > 0
}

// explicitExampleValue returns preferred explicit example value from schema object.
func explicitExampleValue(object *Node) (*Node, bool) {
	if value, ok := object.Get("default"); ok {
		return value, true
	}

	if values, ok := object.Get("examples"); ok && values.Kind() == KindArray && values.Len() > 0 {
		return values.Items()[0], true
	}

	if value, ok := object.Get("example"); ok {
		return value, true
	}

	return nil, false
}

// constExampleValue returns const value as example when available.
func constExampleValue(object *Node) (*Node, bool) {
	return object.Get("const")
}

// enumExampleValue returns first enum value as example when available.
func enumExampleValue(object *Node) (*Node, bool) {
	values, ok := object.Get("enum")
	if !ok || values.Kind() != KindArray || values.Len() == 0 {
		return nil, false
	}

	return values.Items()[0], true
}

// mergeSchemaObjects merges resolved reference object with sibling keyword overrides.
func mergeSchemaObjects(base, overlay *Node) *Node {
	out := newObjectNode()
	for _, key := range base.Keys() {
		value, _ := base.Get(key)
		out.set(key, value)
	}

	for _, key := range overlay.Keys() {
		if key == "$ref" {
			continue
		}

		value, _ := overlay.Get(key)
		out.set(key, value)
	}

	return out
}

// marshalExampleJSON serializes example payload as pretty JSON.
func marshalExampleJSON(value *Node) ([]byte, error) {
	compact, err := value.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, err
	}

	out.WriteByte('\n')
	return out.Bytes(), nil
}

// marshalExampleYAML serializes example payload as YAML.
func marshalExampleYAML(value *Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{value.yamlNode()},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
