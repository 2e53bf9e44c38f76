package feedform

import (
	"strings"

	"github.com/reoring/feedform/uimeta"
)

// ParentTargetPrefix makes a bare field name relative to the enclosing form
// namespace. The runtime resolves the template before applying the action.
const ParentTargetPrefix = "${$.parentName}."

// targetSeparator marks field names already qualified with a component path.
const targetSeparator = "."

// fieldList accumulates field names per value, keeping first-seen value order.
type fieldList struct {
	order  []string
	fields map[string][]string
}

func newFieldList() *fieldList { return &fieldList{fields: map[string][]string{}} }

func (l *fieldList) add(value string, names []string) {
	if _, ok := l.fields[value]; !ok {
		l.order = append(l.order, value)
	}
	// concatenated as declared; duplicate targets are tolerated by the runtime
	l.fields[value] = append(l.fields[value], names...)
}

// CompileSwitcher turns value dependencies into switcher rules. Every value of
// allValues maps to at least one rule: values listed by a dependency enable and
// show its fields, the remaining values hide and disable them. Rules for
// enabled values come first, each group in first-seen order.
//
// A dependency value missing from allValues is a declaration error; no partial
// configuration is returned.
func CompileSwitcher(deps []Dependency, allValues []string) (*uimeta.Switcher, error) {
	domain := make(map[string]struct{}, len(allValues))
	for _, v := range allValues {
		domain[v] = struct{}{}
	}

	var iss Issues
	enabled := newFieldList()
	disabled := newFieldList()
	for i, dep := range deps {
		selected := make(map[string]struct{}, len(dep.Values))
		for j, v := range dep.Values {
			if _, ok := domain[v]; !ok {
				iss = append(iss, Root().Field("dependencies").Index(i).Field("values").Index(j).Issue(
					CodeValueOutsideDomain, "value", v, "domain", append([]string(nil), allValues...)))
				continue
			}
			selected[v] = struct{}{}
		}
		for _, v := range dep.Values {
			if _, ok := domain[v]; ok {
				enabled.add(v, dep.FieldNames)
			}
		}
		for _, v := range allValues {
			if _, ok := selected[v]; !ok {
				disabled.add(v, dep.FieldNames)
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}

	rules := make([]uimeta.Rule, 0, len(enabled.order)+len(disabled.order))
	for _, v := range enabled.order {
		rules = append(rules, switcherRule(v, enabled.fields[v], true))
	}
	for _, v := range disabled.order {
		rules = append(rules, switcherRule(v, disabled.fields[v], false))
	}
	return &uimeta.Switcher{Enabled: true, Rules: rules}, nil
}

func switcherRule(value string, fieldNames []string, isEnabled bool) uimeta.Rule {
	first, second := uimeta.CallbackHide, uimeta.CallbackDisable
	if isEnabled {
		first, second = uimeta.CallbackEnable, uimeta.CallbackShow
	}
	actions := make([]uimeta.Action, 0, 2*len(fieldNames))
	for _, name := range fieldNames {
		target := DependentFieldTarget(name)
		actions = append(actions,
			uimeta.Action{Target: target, Callback: first, DisableTmpl: map[string]bool{"target": false}},
			uimeta.Action{Target: target, Callback: second, DisableTmpl: map[string]bool{"target": false}},
		)
	}
	// the runtime cannot bind an empty string, so it shares the null rule
	var v *string
	if value != "" {
		s := value
		v = &s
	}
	return uimeta.Rule{Actions: actions, Value: v}
}

// DependentFieldTarget resolves a dependent field name to a switcher target.
// Names without a separator refer to siblings in the same form namespace;
// qualified names pass through unchanged.
func DependentFieldTarget(name string) string {
	if strings.Contains(name, targetSeparator) {
		return name
	}
	return ParentTargetPrefix + name
}
