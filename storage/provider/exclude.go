package provider

import (
	"path"
	"strings"
)

// Excluded matches a relative path against exclude globs the way the external
// binary treats them: a leading '/' anchors at the listing root, a trailing
// '/**' excludes a whole subtree, anything else is matched against the full
// relative path and against the base name.
func Excluded(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(pattern, "/")

		if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
			if relPath == prefix || strings.HasPrefix(relPath, prefix+"/") {
				return true
			}
			continue
		}

		if match, err := path.Match(pattern, relPath); err == nil && match {
			return true
		}
		if match, err := path.Match(pattern, path.Base(relPath)); err == nil && match {
			return true
		}
	}

	return false
}
