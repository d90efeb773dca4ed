package znode

import "strings"

// Split tokenizes a path into its non-empty segments. Leading, trailing and
// repeated slashes are ignored, so "/", "" and "//" all yield no segments.
func Split(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

// Join builds a canonical path from segments.
func Join(segments ...string) string {
	return RootName + strings.Join(segments, "/")
}

// Child returns the canonical path of name under parent.
func Child(parent, name string) string {
	if parent == RootName || parent == "" {
		return RootName + name
	}
	return parent + "/" + name
}
