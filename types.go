package feedform

// Scope identifies the configuration scope (typically a store) that owns a
// set of field values. Two snapshots are only comparable within one scope.
type Scope string

// String returns the scope identifier.
func (s Scope) String() string { return string(s) }

// Dependency declares that FieldNames are enabled while the owning field's
// value is one of Values, and disabled for every other value of its domain.
type Dependency struct {
	Values     []string
	FieldNames []string
}

func (d Dependency) clone() Dependency {
	return Dependency{
		Values:     append([]string(nil), d.Values...),
		FieldNames: append([]string(nil), d.FieldNames...),
	}
}

func cloneDependencies(deps []Dependency) []Dependency {
	if len(deps) == 0 {
		return nil
	}
	out := make([]Dependency, len(deps))
	for i, d := range deps {
		out[i] = d.clone()
	}
	return out
}
