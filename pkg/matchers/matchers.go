// Package matchers implements the pattern language of auto-pickup rules.
//
// A pattern is either a wildcard over the item's display name or a material
// filter over its composition:
//
//	wooden arrow     matches the name exactly (case-insensitive)
//	wooden ar*       names beginning with "wooden ar"
//	*rrow            names ending with "rrow"
//	*avy fle*fi*arrow
//	m:kevlar         at least one material contains "kevlar"
//	M:copper         every material contains "copper"
//	M:steel,iron     every material contains "steel" or "iron"
//
// Only '*' is special in wildcards. An empty pattern matches nothing.
package matchers

import (
	"strings"

	"github.com/arthur-debert/autopickup/pkg/types"
	"golang.org/x/text/cases"
)

const (
	// AnyMaterial prefixes an any-of material filter
	AnyMaterial = 'm'
	// AllMaterials prefixes an all-of material filter
	AllMaterials = 'M'
)

// Match is the effective test of a rule pattern against an item: a material
// filter hit or a wildcard hit on the name.
func Match(name string, materials types.Materials, pattern string) bool {
	return MaterialFilter(materials, pattern) || Wildcard(name, pattern)
}

// Wildcard reports whether name matches the glob pattern, ignoring case.
func Wildcard(name, pattern string) bool {
	pattern = TrimRule(pattern)
	if name == "" || pattern == "" {
		return false
	}

	fold := cases.Fold()
	text := fold.String(name)
	segments := strings.Split(fold.String(pattern), "*")
	if len(segments) == 1 {
		return text == segments[0]
	}

	first, last := segments[0], segments[len(segments)-1]
	if !strings.HasPrefix(text, first) {
		return false
	}
	text = text[len(first):]
	if !strings.HasSuffix(text, last) {
		return false
	}
	text = text[:len(text)-len(last)]

	for _, segment := range segments[1 : len(segments)-1] {
		if segment == "" {
			continue
		}
		idx := strings.Index(text, segment)
		if idx < 0 {
			return false
		}
		text = text[idx+len(segment):]
	}
	return true
}

// MaterialFilter evaluates an m: or M: pattern against a material set.
// Patterns without filter syntax never match here.
func MaterialFilter(materials types.Materials, pattern string) bool {
	kind, filter, ok := parseFilter(pattern)
	if !ok || len(filter) == 0 || len(materials) == 0 {
		return false
	}

	fold := cases.Fold()
	matches := func(material string) bool {
		name := fold.String(material)
		for _, search := range filter {
			if strings.Contains(name, search) {
				return true
			}
		}
		return false
	}

	switch kind {
	case AnyMaterial:
		for _, material := range materials.Names() {
			if matches(material) {
				return true
			}
		}
		return false
	case AllMaterials:
		for _, material := range materials.Names() {
			if !matches(material) {
				return false
			}
		}
		return true
	}
	return false
}

// IsMaterialFilter reports whether pattern uses the m:/M: syntax
func IsMaterialFilter(pattern string) bool {
	_, _, ok := parseFilter(pattern)
	return ok
}

// TrimRule normalizes a user-entered pattern: outer whitespace is removed
// and runs of '*' collapse to one.
func TrimRule(pattern string) string {
	pattern = strings.TrimSpace(pattern)
	for strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**", "*")
	}
	return pattern
}

func parseFilter(pattern string) (byte, []string, bool) {
	pattern = TrimRule(pattern)
	if len(pattern) < 2 || pattern[1] != ':' {
		return 0, nil, false
	}
	kind := pattern[0]
	if kind != AnyMaterial && kind != AllMaterials {
		return 0, nil, false
	}

	fold := cases.Fold()
	var filter []string
	for _, part := range strings.Split(pattern[2:], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		filter = append(filter, fold.String(part))
	}
	return kind, filter, true
}
