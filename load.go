// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"
)

// proseMarker splits the static prose file into front and back matter.
const proseMarker = "<<<<<<<<<<content from JSON schema>>>>>>>>>>>>"

// SchemaPaths names the schema documents relative to the input file system.
type SchemaPaths struct {
	Core          string `yaml:"core"`
	Collection    string `yaml:"collection"`
	Antenna       string `yaml:"antenna"`
	CaptureDetail string `yaml:"capture_detail"`
	Signal        string `yaml:"signal"`
	Spatial       string `yaml:"spatial"`
	Traceability  string `yaml:"traceability"`
}

// DefaultSchemaPaths returns the schema locations of the SigMF repository layout.
func DefaultSchemaPaths() SchemaPaths {
	return SchemaPaths{
		Core:          "sigmf-schema.json",
		Collection:    "collection-schema.json",
		Antenna:       "extensions/antenna-schema.json",
		CaptureDetail: "extensions/capture-detail-schema.json",
		Signal:        "extensions/signal-schema.json",
		Spatial:       "extensions/spatial-schema.json",
		Traceability:  "extensions/traceability-schema.json",
	}
}

// SchemaSet holds the parsed primary, collection and extension schemas.
type SchemaSet struct {
	Core          *Node
	Collection    *Node
	Antenna       *Node
	CaptureDetail *Node
	Signal        *Node
	Spatial       *Node
	Traceability  *Node
}

// Prose is the static prose file split into the part rendered before the
// schema-derived sections and the part rendered after them.
type Prose struct {
	Front string
	Back  string
}

// DraftInfo describes a detected JSON Schema draft.
type DraftInfo struct {
	URI       string
	Canonical string
	Supported bool
}

// knownDrafts maps draft markers found in $schema URIs to canonical names.
var knownDrafts = []string{"2020-12", "2019-09", "draft-07", "draft-06", "draft-05", "draft-04"}

// LoadSchemaSet reads and parses every schema document. The first missing or
// malformed file aborts loading.
func LoadSchemaSet(ctx context.Context, fsys fs.FS, paths SchemaPaths, log *zap.Logger) (*SchemaSet, error) {
	if log == nil {
		log = zap.NewNop()
	}

	set := &SchemaSet{}
	targets := []struct {
		path string
		dst  **Node
	}{
		{paths.Core, &set.Core},
		{paths.Collection, &set.Collection},
		{paths.Antenna, &set.Antenna},
		{paths.CaptureDetail, &set.CaptureDetail},
		{paths.Signal, &set.Signal},
		{paths.Spatial, &set.Spatial},
		{paths.Traceability, &set.Traceability},
	}

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node, err := LoadSchemaFile(fsys, target.path)
		if err != nil {
			return nil, err
		}

		draftURI := node.StringField("$schema")
		draft := DetectDraft(draftURI)
		switch {
		case draftURI == "":
			log.Warn("schema has no $schema value; draft support is unknown", zap.String("path", target.path))
		case !draft.Supported:
			log.Warn("unsupported $schema value", zap.String("path", target.path), zap.String("schema", draftURI))
		default:
			log.Debug("schema loaded", zap.String("path", target.path), zap.String("draft", draft.Canonical))
		}

		*target.dst = node
	}

	return set, nil
}

// LoadSchemaFile reads and parses one schema document from fsys.
func LoadSchemaFile(fsys fs.FS, path string) (*Node, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSchemaFile, path, err)
	}

	node, err := DecodeNode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return node, nil
}

// LoadProse reads the static prose file and splits it at the marker once.
func LoadProse(fsys fs.FS, path string) (Prose, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Prose{}, fmt.Errorf("%w %q: %w", ErrReadProse, path, err)
	}

	return SplitProse(normalizeLineEndings(string(data)))
}

// SplitProse splits text at the first marker. Anything after a second marker
// is dropped.
func SplitProse(text string) (Prose, error) {
	front, rest, found := strings.Cut(text, proseMarker)
	if !found {
		return Prose{}, fmt.Errorf("%w: %q", ErrProseMarker, proseMarker)
	}

	back, _, _ := strings.Cut(rest, proseMarker)
	return Prose{Front: front, Back: back}, nil
}

// SpecVersion extracts the version segment from the primary schema $id,
// which is the second to last path segment.
func SpecVersion(core *Node) (string, error) {
	id, err := core.Lookup("$id")
	if err != nil {
		return "", err
	}

	text, ok := id.Str()
	if !ok {
		return "", fmt.Errorf("%w: $id is %s, want string", ErrSchemaShape, id.Kind())
	}

	segments := strings.Split(text, "/")
	if len(segments) < 2 {
		return "", fmt.Errorf("%w: $id %q has no version segment", ErrSchemaShape, text)
	}

	return segments[len(segments)-2], nil
}

// DetectDraft classifies a $schema URI.
func DetectDraft(uri string) DraftInfo {
	info := DraftInfo{URI: uri}
	normalized := strings.ToLower(strings.TrimSpace(uri))
	normalized = strings.TrimRight(normalized, "#/")
	if normalized == "" {
		return info
	}

	for _, draft := range knownDrafts {
		if strings.Contains(normalized, draft) {
			info.Canonical = draft
			info.Supported = true
			return info
		}
	}

	segments := strings.Split(normalized, "/")
	for index, segment := range segments {
		switch {
		case strings.HasPrefix(segment, "draft-"):
			info.Canonical = segment
		case segment == "draft" && index+1 < len(segments):
			info.Canonical = segments[index+1]
		}
	}

	return info
}
