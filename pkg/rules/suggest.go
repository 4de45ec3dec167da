package rules

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/arthur-debert/autopickup/pkg/matchers"
	"github.com/arthur-debert/autopickup/pkg/types"
	"golang.org/x/text/cases"
)

type suggestion struct {
	name string
	dist int
}

// Suggest returns up to limit catalog names close to pattern, for rules
// that match nothing. Material filters get no suggestions.
func Suggest(pattern string, catalog types.Catalog, limit int) []string {
	if catalog == nil || limit <= 0 || matchers.IsMaterialFilter(pattern) {
		return nil
	}

	fold := cases.Fold()
	core := fold.String(strings.TrimSpace(strings.ReplaceAll(matchers.TrimRule(pattern), "*", " ")))
	if len(core) < 3 {
		return nil
	}
	wildcard := strings.Contains(pattern, "*")

	seen := make(map[string]bool)
	var cands []suggestion
	for _, it := range catalog.All() {
		name := it.Name()
		if seen[name] {
			continue
		}
		seen[name] = true

		compare := fold.String(name)
		dist := levenshtein.ComputeDistance(core, compare)
		if wildcard {
			// Wildcard cores are fragments; compare against the best window.
			dist = windowDistance(core, compare)
		}
		if dist > distanceLimit(len(core)) {
			continue
		}
		cands = append(cands, suggestion{name: name, dist: dist})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].name < cands[j].name
		}
		return cands[i].dist < cands[j].dist
	})

	var out []string
	for _, c := range cands {
		out = append(out, c.name)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func windowDistance(core, name string) int {
	if len(name) <= len(core) {
		return levenshtein.ComputeDistance(core, name)
	}
	best := len(core)
	for start := 0; start+len(core) <= len(name); start++ {
		if d := levenshtein.ComputeDistance(core, name[start:start+len(core)]); d < best {
			best = d
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
