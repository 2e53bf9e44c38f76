package feedform

import (
	"fmt"
	"sort"
)

// Snapshot is an in-memory copy of the configuration values of one scope,
// keyed hierarchically by value path segments. Mutating methods only touch
// the snapshot's own copy.
type Snapshot struct {
	scope Scope
	data  map[string]any
}

// NewSnapshot deep-copies data into a new snapshot of scope.
func NewSnapshot(scope Scope, data map[string]any) Snapshot {
	return Snapshot{scope: scope, data: cloneMap(data)}
}

// Scope returns the scope owning the snapshot values.
func (s Snapshot) Scope() Scope { return s.scope }

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot { return NewSnapshot(s.scope, s.data) }

// Data returns a deep copy of the underlying mapping.
func (s Snapshot) Data() map[string]any { return cloneMap(s.data) }

// Get returns the value at p.
func (s Snapshot) Get(p ValuePath) (any, bool) {
	if len(p) == 0 {
		return s.data, s.data != nil
	}
	cur := s.data
	for i, seg := range p {
		v, ok := cur[seg]
		if !ok {
			return nil, false
		}
		if i == len(p)-1 {
			return v, true
		}
		next, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// Set stores v at p, creating intermediate maps. A scalar sitting on an
// intermediate segment is replaced by a map.
func (s *Snapshot) Set(p ValuePath, v any) {
	if len(p) == 0 {
		return
	}
	if s.data == nil {
		s.data = map[string]any{}
	}
	cur := s.data
	for _, seg := range p[:len(p)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	cur[p[len(p)-1]] = cloneValue(v)
}

// Unset removes the value at p. Missing paths are ignored; parents are kept.
func (s *Snapshot) Unset(p ValuePath) {
	if len(p) == 0 || s.data == nil {
		return
	}
	cur := s.data
	for _, seg := range p[:len(p)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			return
		}
		cur = next
	}
	delete(cur, p[len(p)-1])
}

// Leaves lists the paths of every non-map value in lexical order. Empty maps
// are reported as leaves so their presence still counts.
func (s Snapshot) Leaves() []ValuePath {
	var out []ValuePath
	collectLeaves(s.data, nil, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func collectLeaves(m map[string]any, prefix ValuePath, out *[]ValuePath) {
	for k, v := range m {
		p := prefix.Child(k)
		if child, ok := v.(map[string]any); ok && len(child) > 0 {
			collectLeaves(child, p, out)
			continue
		}
		*out = append(*out, p)
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case map[any]any:
		// yaml documents may decode nested maps with non-string keys
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[keyString(k)] = cloneValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = cloneValue(vv)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
