package feedform

import (
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/reoring/feedform/uimeta"
)

// Section is an ordered set of fields stored under a common base path. The
// value path of a field is the base path followed by the field name.
type Section struct {
	base   ValuePath
	fields []*Field
	byName map[string]*Field
}

// NewSection groups fields under base. Field names must be unique.
func NewSection(base ValuePath, fields ...*Field) (*Section, error) {
	s := &Section{
		base:   append(ValuePath(nil), base...),
		byName: make(map[string]*Field, len(fields)),
	}
	var iss Issues
	for i, f := range fields {
		if f == nil {
			iss = append(iss, Root().Field("fields").Index(i).Issue(CodeInvalidDeclaration, "reason", "field is nil"))
			continue
		}
		if _, dup := s.byName[f.name]; dup {
			iss = append(iss, Root().Field("fields").Index(i).Issue(CodeDuplicateField, "field", f.name))
			continue
		}
		s.byName[f.name] = f
		s.fields = append(s.fields, f)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return s, nil
}

// MustNewSection is NewSection that panics on error.
func MustNewSection(base ValuePath, fields ...*Field) *Section {
	s, err := NewSection(base, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Base returns the base value path of the section.
func (s *Section) Base() ValuePath { return append(ValuePath(nil), s.base...) }

// Fields returns the fields ranked by sort order. Unranked fields follow in
// declaration order.
func (s *Section) Fields() []*Field {
	out := append([]*Field(nil), s.fields...)
	sort.SliceStable(out, func(i, j int) bool {
		oi, iok := out[i].SortOrder()
		oj, jok := out[j].SortOrder()
		switch {
		case iok && jok:
			return oi < oj
		default:
			return iok && !jok
		}
	})
	return out
}

// Field looks a field up by name.
func (s *Section) Field(name string) (*Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// ValuePath returns the value path of the field called name. The field does
// not need to be declared.
func (s *Section) ValuePath(name string) ValuePath { return s.base.Child(name) }

// FieldValue returns the value of a field prepared for business logic.
func (s *Section) FieldValue(snap Snapshot, name string) (any, error) {
	f, ok := s.byName[name]
	if !ok {
		return nil, Issues{IssueAt(At(s.ValuePath(name).Pointer()), CodeUnknownField, map[string]any{"field": name})}
	}
	raw, _ := snap.Get(s.ValuePath(name))
	return f.PrepareRawValueForUse(raw), nil
}

// FormValues returns the values of every field prepared for display, keyed by
// field name.
func (s *Section) FormValues(snap Snapshot) map[string]any {
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		raw, _ := snap.Get(s.ValuePath(f.name))
		out[f.name] = f.PrepareRawValueForForm(raw)
	}
	return out
}

// PrepareForSave builds a snapshot of scope from submitted form values keyed
// by field name. Values of undeclared fields are reported and dropped.
func (s *Section) PrepareForSave(scope Scope, form map[string]any) (Snapshot, error) {
	snap := NewSnapshot(scope, nil)
	var iss Issues
	for name, v := range form {
		f, ok := s.byName[name]
		if !ok {
			iss = append(iss, Root().Field(name).Issue(CodeUnknownField, "field", name))
			continue
		}
		snap.Set(s.ValuePath(name), f.PrepareFormValueForSave(v))
	}
	sort.Slice(iss, func(i, j int) bool { return iss[i].Path < iss[j].Path })
	return snap, orNil(iss)
}

// UIMeta returns a fieldset descriptor holding one child per field.
func (s *Section) UIMeta(label string) (*uimeta.Descriptor, error) {
	children := make(map[string]*uimeta.Descriptor, len(s.fields))
	for _, f := range s.fields {
		d, err := f.UIMeta()
		if err != nil {
			return nil, err
		}
		children[f.name] = d
	}
	name := "general"
	if len(s.base) > 0 {
		name = s.base[len(s.base)-1]
	}
	return uimeta.Fieldset(name, label, children), nil
}

// Diff lists the value paths whose values differ between a and b. Declared
// fields are compared through their handler; any other value is compared
// structurally. The snapshots must share a scope.
func (s *Section) Diff(a, b Snapshot) ([]ValuePath, error) {
	if a.Scope() != b.Scope() {
		return nil, ScopeMismatch(a.Scope(), b.Scope())
	}

	var changed []ValuePath
	declared := make([]ValuePath, 0, len(s.fields))
	for _, f := range s.fields {
		p := s.ValuePath(f.name)
		declared = append(declared, p)
		va, oka := a.Get(p)
		vb, okb := b.Get(p)
		if !oka && !okb {
			continue
		}
		// an absent value compares as nil through the handler
		if !f.ValuesEqual(va, vb) {
			changed = append(changed, p)
		}
	}

	seen := map[string]struct{}{}
	for _, leaves := range [][]ValuePath{a.Leaves(), b.Leaves()} {
		for _, p := range leaves {
			key := p.String()
			if _, dup := seen[key]; dup || underAny(p, declared) {
				continue
			}
			seen[key] = struct{}{}
			va, oka := a.Get(p)
			vb, okb := b.Get(p)
			if oka != okb || !cmp.Equal(va, vb, cmpopts.EquateEmpty()) {
				changed = append(changed, p)
			}
		}
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].String() < changed[j].String() })
	return changed, nil
}

// Equal reports whether a and b hold the same values for the section.
func (s *Section) Equal(a, b Snapshot) (bool, error) {
	changed, err := s.Diff(a, b)
	if err != nil {
		return false, err
	}
	return len(changed) == 0, nil
}

func underAny(p ValuePath, prefixes []ValuePath) bool {
	for _, prefix := range prefixes {
		if p.HasPrefix(prefix) {
			return true
		}
	}
	return false
}

// ScopeMismatch reports values of scope b compared within scope a. The
// returned Issues wrap ErrScopeMismatch.
func ScopeMismatch(a, b Scope) error {
	it := IssueAt(Root(), CodeScopeMismatch, map[string]any{"a": a.String(), "b": b.String()})
	it.Cause = ErrScopeMismatch
	return Issues{it}
}
