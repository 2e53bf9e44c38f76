package rules_test

import (
	"testing"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/refresh"
	"github.com/reoring/feedform/rules"
	"github.com/reoring/feedform/uimeta"
)

const scope feedform.Scope = "default"

func refreshSection(t *testing.T) *feedform.Section {
	t.Helper()
	s, err := feedform.NewSection(feedform.ValuePath{"feed"}, refresh.BaseFields()...)
	if err != nil {
		t.Fatalf("section: %v", err)
	}
	return s
}

func snap(values map[string]any) feedform.Snapshot {
	return feedform.NewSnapshot(scope, map[string]any{"feed": values})
}

func strp(s string) *string { return &s }

func TestEvaluate_MatchesValueAndNull(t *testing.T) {
	sw, err := feedform.CompileSwitcher([]feedform.Dependency{
		{Values: []string{"2", "3"}, FieldNames: []string{"delay"}},
	}, []string{"", "2", "3"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	acts := rules.Evaluate(sw, strp("3"))
	if len(acts) != 2 || acts[0].Callback != uimeta.CallbackEnable || acts[1].Callback != uimeta.CallbackShow {
		t.Fatalf("unexpected actions for 3: %+v", acts)
	}
	for _, v := range []*string{nil, strp("")} {
		acts = rules.Evaluate(sw, v)
		if len(acts) != 2 || acts[0].Callback != uimeta.CallbackHide || acts[1].Callback != uimeta.CallbackDisable {
			t.Fatalf("unexpected actions for empty value: %+v", acts)
		}
	}
	if acts := rules.Evaluate(sw, strp("9")); len(acts) != 0 {
		t.Fatalf("no rule should match 9, got %+v", acts)
	}
	if acts := rules.Evaluate(&uimeta.Switcher{Enabled: false, Rules: sw.Rules}, strp("3")); acts != nil {
		t.Fatalf("disabled switcher should not act")
	}
}

func TestApply_LastActionWins(t *testing.T) {
	state := rules.Apply(nil, []uimeta.Action{
		{Target: "a", Callback: uimeta.CallbackEnable},
		{Target: "b", Callback: uimeta.CallbackHide},
		{Target: "a", Callback: uimeta.CallbackDisable},
	})
	if state["a"] {
		t.Fatalf("a should end disabled")
	}
	if _, ok := state["b"]; ok {
		t.Fatalf("hide alone should not change the enabled state")
	}
}

func TestActiveFields_RefreshPolicy(t *testing.T) {
	s := refreshSection(t)

	active, err := rules.ActiveFields(s, snap(map[string]any{
		refresh.KeyAutomaticRefreshState: "",
	}))
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active[refresh.KeyAutomaticRefreshDelay] {
		t.Fatalf("delay should be disabled without automatic refresh")
	}
	if active[refresh.KeyAdvisedRefreshRequirementDelay] {
		t.Fatalf("advised delay should be disabled while unchecked")
	}
	if !active[refresh.KeyAutomaticRefreshState] || !active[refresh.KeyForceProductLoadForRefresh] {
		t.Fatalf("fields without a driver should stay enabled: %v", active)
	}

	active, err = rules.ActiveFields(s, snap(map[string]any{
		refresh.KeyAutomaticRefreshState:           "2",
		refresh.KeyEnableAdvisedRefreshRequirement: true,
	}))
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if !active[refresh.KeyAutomaticRefreshDelay] || !active[refresh.KeyAdvisedRefreshRequirementDelay] {
		t.Fatalf("dependents should be enabled: %v", active)
	}
}

func TestValidate_RequiredOnlyWhenEnabled(t *testing.T) {
	s := refreshSection(t)

	if err := rules.Validate(s, snap(map[string]any{refresh.KeyAutomaticRefreshState: ""})); err != nil {
		t.Fatalf("disabled required fields should be skipped, got %v", err)
	}

	err := rules.Validate(s, snap(map[string]any{refresh.KeyAutomaticRefreshState: "3"}))
	iss, ok := feedform.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != feedform.CodeRequired {
		t.Fatalf("expected one required issue, got %v", err)
	}
	if iss[0].Path != "/feed/"+refresh.KeyAutomaticRefreshDelay {
		t.Fatalf("unexpected path %q", iss[0].Path)
	}

	ok2 := snap(map[string]any{
		refresh.KeyAutomaticRefreshState: "3",
		refresh.KeyAutomaticRefreshDelay: "60",
	})
	if err := rules.Validate(s, ok2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidValue(t *testing.T) {
	s := refreshSection(t)
	err := rules.Validate(s, snap(map[string]any{
		refresh.KeyAutomaticRefreshState: "2",
		refresh.KeyAutomaticRefreshDelay: "-5",
	}))
	iss, ok := feedform.AsIssues(err)
	if !ok || !iss.HasCode(feedform.CodeInvalidValue) || !iss.HasCode(feedform.CodeRequired) {
		t.Fatalf("expected invalid and required issues, got %v", err)
	}
}

func TestCheck_CustomRule(t *testing.T) {
	s := refreshSection(t)
	var seen []string
	rule := func(f *feedform.Field, _ any, _ bool, _ feedform.PathRef) []feedform.Issue {
		seen = append(seen, f.Name())
		return nil
	}
	if err := rules.Check(s, snap(nil), rule); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{refresh.KeyForceProductLoadForRefresh, refresh.KeyAutomaticRefreshState, refresh.KeyEnableAdvisedRefreshRequirement}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}
