// Package rules evaluates switcher configurations and validates section values
// against the fields they leave enabled.
package rules

import (
	"strings"

	"github.com/spf13/cast"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/uimeta"
)

// Evaluate returns the actions of every rule matching value, in rule order.
// A nil value stands for an empty selection.
func Evaluate(sw *uimeta.Switcher, value *string) []uimeta.Action {
	if sw == nil || !sw.Enabled {
		return nil
	}
	var out []uimeta.Action
	for _, r := range sw.Rules {
		if r.Matches(value) {
			out = append(out, r.Actions...)
		}
	}
	return out
}

// Apply replays actions on top of state, keyed by target. Enable and disable
// set the state; show and hide only affect visibility and are ignored. The
// last action on a target wins.
func Apply(state map[string]bool, actions []uimeta.Action) map[string]bool {
	if state == nil {
		state = map[string]bool{}
	}
	for _, a := range actions {
		switch a.Callback {
		case uimeta.CallbackEnable:
			state[a.Target] = true
		case uimeta.CallbackDisable:
			state[a.Target] = false
		}
	}
	return state
}

// ActiveFields reports, for every field of section, whether it is enabled
// given the values in snap. Fields start enabled; each field carrying a
// switcher then applies the rules matching its form value, in section order.
// Disabling a field does not cascade to the fields it drives.
func ActiveFields(section *feedform.Section, snap feedform.Snapshot) (map[string]bool, error) {
	byTarget := map[string]bool{}
	for _, f := range section.Fields() {
		sw, ok, err := f.SwitcherConfig()
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		raw, _ := snap.Get(section.ValuePath(f.Name()))
		byTarget = Apply(byTarget, Evaluate(sw, formValue(f, raw)))
	}

	out := make(map[string]bool, len(byTarget))
	for _, f := range section.Fields() {
		out[f.Name()] = true
	}
	for target, enabled := range byTarget {
		name := strings.TrimPrefix(target, feedform.ParentTargetPrefix)
		if _, declared := out[name]; declared {
			out[name] = enabled
		}
	}
	return out, nil
}

func formValue(f *feedform.Field, raw any) *string {
	v := f.PrepareRawValueForForm(raw)
	if v == nil {
		return nil
	}
	s, err := cast.ToStringE(v)
	if err != nil || s == "" {
		return nil
	}
	return &s
}

// Rule checks the values of one enabled field.
type Rule func(f *feedform.Field, raw any, present bool, at feedform.PathRef) []feedform.Issue

// Required reports enabled required fields holding no usable value.
func Required() Rule {
	return func(f *feedform.Field, raw any, _ bool, at feedform.PathRef) []feedform.Issue {
		if !f.IsRequired() || !isEmpty(f.PrepareFormValueForSave(raw)) {
			return nil
		}
		return []feedform.Issue{at.Issue(feedform.CodeRequired, "field", f.Name())}
	}
}

// ValidValues reports stored values that the field handler rejects.
func ValidValues() Rule {
	return func(f *feedform.Field, raw any, present bool, at feedform.PathRef) []feedform.Issue {
		if !present || isEmpty(raw) || !isEmpty(f.PrepareFormValueForSave(raw)) {
			return nil
		}
		return []feedform.Issue{at.Issue(feedform.CodeInvalidValue, "field", f.Name(), "value", cast.ToString(raw))}
	}
}

// And runs every rule and concatenates their issues.
func And(rules ...Rule) Rule {
	return func(f *feedform.Field, raw any, present bool, at feedform.PathRef) []feedform.Issue {
		var out []feedform.Issue
		for _, r := range rules {
			if r == nil {
				continue
			}
			out = append(out, r(f, raw, present, at)...)
		}
		return out
	}
}

// Validate checks the enabled fields of section in snap with Required and
// ValidValues. Disabled fields are skipped.
func Validate(section *feedform.Section, snap feedform.Snapshot) error {
	return Check(section, snap, And(Required(), ValidValues()))
}

// Check runs rule on every enabled field of section, in section order.
func Check(section *feedform.Section, snap feedform.Snapshot, rule Rule) error {
	active, err := ActiveFields(section, snap)
	if err != nil {
		return err
	}
	var iss feedform.Issues
	for _, f := range section.Fields() {
		if !active[f.Name()] {
			continue
		}
		p := section.ValuePath(f.Name())
		raw, present := snap.Get(p)
		iss = feedform.AppendIssues(iss, rule(f, raw, present, feedform.At(p.Pointer()))...)
	}
	if len(iss) == 0 {
		return nil
	}
	return iss
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
