package vo

import (
	"path/filepath"
	"sort"
	"strings"
)

// ExtensionSet is a case-sensitive set of file extensions without the
// leading dot. The empty set matches nothing.
type ExtensionSet struct {
	exts map[string]struct{}
}

// NewExtensionSet builds a set from the given extensions.
// A single leading dot is stripped; blank entries are ignored.
func NewExtensionSet(extensions ...string) ExtensionSet {
	set := ExtensionSet{exts: make(map[string]struct{}, len(extensions))}
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		set.exts[ext] = struct{}{}
	}
	return set
}

// Len returns the number of extensions in the set
func (s ExtensionSet) Len() int {
	return len(s.exts)
}

// IsEmpty returns true if the set matches nothing
func (s ExtensionSet) IsEmpty() bool {
	return len(s.exts) == 0
}

// Contains reports whether ext (no leading dot) is in the set.
func (s ExtensionSet) Contains(ext string) bool {
	if ext == "" {
		return false
	}
	_, ok := s.exts[ext]
	return ok
}

// Matches reports whether the file at path has an extension in the set.
func (s ExtensionSet) Matches(path string) bool {
	ext, ok := Extension(path)
	if !ok {
		return false
	}
	return s.Contains(ext)
}

// Slice returns the extensions in sorted order
func (s ExtensionSet) Slice() []string {
	out := make([]string, 0, len(s.exts))
	for ext := range s.exts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// String returns a comma separated list of extensions
func (s ExtensionSet) String() string {
	return strings.Join(s.Slice(), ",")
}

// Extension returns the extension of the base name of path without the dot.
// Names with no dot, a trailing dot, or only a leading dot (".bashrc") have
// no extension.
func Extension(path string) (string, bool) {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return "", false
	}
	return base[idx+1:], true
}
