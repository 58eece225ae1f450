// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"strconv"
	"strings"
)

// labelRune maps characters outside [a-z0-9_.-] to underscore so labels
// never carry LaTeX specials such as % or #.
func labelRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
		return r
	default:
		return '_'
	}
}

// LabelAllocator issues cross-reference labels that are unique within one
// document build. It is not safe for concurrent use.
type LabelAllocator struct {
	used map[string]struct{}
}

// NewLabelAllocator returns an allocator with an empty registry.
func NewLabelAllocator() *LabelAllocator {
	return &LabelAllocator{used: make(map[string]struct{})}
}

// Allocate returns prefix_name for a normalized name, appending _1, _2, ...
// when the base label was already issued. The name is lowercased and every
// character outside [a-z0-9_.-] becomes an underscore.
func (a *LabelAllocator) Allocate(prefix, rawName string) string {
	base := prefix + "_" + strings.Map(labelRune, strings.ToLower(rawName))
	if a.claim(base) {
		return base
	}

	for counter := 1; ; counter++ {
		candidate := base + "_" + strconv.Itoa(counter)
		if a.claim(candidate) {
			return candidate
		}
	}
}

// Len returns the number of issued labels.
func (a *LabelAllocator) Len() int {
	return len(a.used)
}

// claim registers label and reports whether it was unused.
func (a *LabelAllocator) claim(label string) bool {
	if _, exists := a.used[label]; exists {
		return false
	}

	a.used[label] = struct{}{}
	return true
}
