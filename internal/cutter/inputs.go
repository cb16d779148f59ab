package cutter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultSuffix is appended to input stems when no explicit output is given.
const DefaultSuffix = "_cut"

// ExpandInputs expands glob patterns and de-duplicates the result while
// preserving first-seen order. Plain arguments pass through untouched even
// when the file does not exist, so missing inputs can be reported per file.
func ExpandInputs(items []string) ([]string, error) {
	var expanded []string
	for _, item := range items {
		if !strings.ContainsAny(item, "*?[") {
			expanded = append(expanded, item)
			continue
		}
		matches, err := filepath.Glob(item)
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", item, err)
		}
		expanded = append(expanded, matches...)
	}

	seen := make(map[string]struct{}, len(expanded))
	out := make([]string, 0, len(expanded))
	for _, path := range expanded {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	return out, nil
}

// DeriveOutput places the output next to the input, inserting the suffix
// between the stem and the extension.
func DeriveOutput(input, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)
	return filepath.Join(filepath.Dir(input), stem+suffix+ext)
}
