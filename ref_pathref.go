package feedform

import (
	"strconv"
	"strings"
)

// PathSeparator delimits value path segments in their string form.
const PathSeparator = "/"

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code string, kv ...any) Issue
}

// Root returns the empty PathRef ("/").
func Root() PathRef { return &pathRef{parts: nil} }

// At returns a PathRef for an existing JSON Pointer.
func At(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	// naive split on '/', ignoring first empty due to leading '/'
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return &pathRef{parts: append(append([]string{}, p.parts...), escapePointer(name))}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(code string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return IssueAt(p, code, m)
}

// escape '~' -> '~0', '/' -> '~1' per RFC6901
func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

// ValuePath locates a value inside a Snapshot. Segments are kept structured;
// String renders the delimited form expected by the configuration store.
type ValuePath []string

// ParseValuePath splits a delimited path, dropping empty segments.
func ParseValuePath(s string) ValuePath {
	var out ValuePath
	for _, seg := range strings.Split(s, PathSeparator) {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// Child returns a new path with name appended. The receiver is not modified.
func (p ValuePath) Child(name string) ValuePath {
	out := make(ValuePath, 0, len(p)+1)
	out = append(out, p...)
	return append(out, name)
}

// String joins the segments with PathSeparator.
func (p ValuePath) String() string { return strings.Join(p, PathSeparator) }

// Pointer renders the path as a JSON Pointer.
func (p ValuePath) Pointer() string {
	ref := Root()
	for _, seg := range p {
		ref = ref.Field(seg)
	}
	return ref.Pointer()
}

// Equal reports whether both paths have identical segments.
func (p ValuePath) Equal(o ValuePath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p starts with all segments of prefix.
func (p ValuePath) HasPrefix(prefix ValuePath) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}
