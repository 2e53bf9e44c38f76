package dsl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/dsl"
	"github.com/reoring/feedform/handler"
	"github.com/reoring/feedform/uimeta"
)

func TestCheckbox_UIMeta(t *testing.T) {
	f := dsl.Checkbox("force_load").
		Label("Force").
		CheckedNotice("slow").
		UncheckedNotice("fast").
		CheckedDependents("details").
		SortOrder(10).
		MustBuild()

	d, err := f.UIMeta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := d.Config()
	if d.Attributes.FormElement != "checkbox" || cfg[uimeta.KeyFormElement] != "checkbox" {
		t.Fatalf("unexpected form element %v", cfg)
	}
	if cfg[uimeta.KeyPrefer] != "toggle" || cfg[uimeta.KeyComponent] != dsl.CheckboxNoticeComponent {
		t.Fatalf("unexpected checkbox config %v", cfg)
	}
	if diff := cmp.Diff(map[string]string{"1": "slow", "0": "fast"}, cfg[uimeta.KeyNotices]); diff != "" {
		t.Fatalf("notices mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"true": "1", "false": "0"}, cfg[uimeta.KeyValueMap]); diff != "" {
		t.Fatalf("value map mismatch:\n%s", diff)
	}

	sw := cfg[uimeta.KeySwitcherConfig].(*uimeta.Switcher)
	if len(sw.Rules) != 2 || *sw.Rules[0].Value != "1" || *sw.Rules[1].Value != "0" {
		t.Fatalf("unexpected rules %+v", sw.Rules)
	}
	if sw.Rules[1].Actions[0].Callback != uimeta.CallbackHide {
		t.Fatalf("unchecked state should hide the dependents")
	}
}

func TestCheckbox_NoNoticesNoComponent(t *testing.T) {
	d, err := dsl.Checkbox("flag").MustBuild().UIMeta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{uimeta.KeyComponent, uimeta.KeyNotices, uimeta.KeySwitcherConfig} {
		if _, ok := d.Meta(key); ok {
			t.Fatalf("%s should be omitted", key)
		}
	}
}

func TestSelect_OptionsAndDependency(t *testing.T) {
	f, err := dsl.Select("format").
		Options(true, handler.Choice{Value: "csv", Label: "CSV"}, handler.Choice{Value: "xml", Label: "XML"}).
		Dependency([]string{"csv"}, "separator").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, _ := f.UIMeta()
	want := []handler.Choice{{Value: "", Label: ""}, {Value: "csv", Label: "CSV"}, {Value: "xml", Label: "XML"}}
	if diff := cmp.Diff(want, d.Config()[uimeta.KeyOptions]); diff != "" {
		t.Fatalf("options mismatch:\n%s", diff)
	}
	sw := d.Config()[uimeta.KeySwitcherConfig].(*uimeta.Switcher)
	// csv enables, then the empty choice and xml disable
	if len(sw.Rules) != 3 || sw.Rules[1].Value != nil {
		t.Fatalf("unexpected rules %+v", sw.Rules)
	}
}

func TestSelect_RequiresFiniteDomain(t *testing.T) {
	_, err := dsl.Select("free").Build()
	iss, ok := feedform.AsIssues(err)
	if !ok || !iss.HasCode(feedform.CodeInvalidDeclaration) {
		t.Fatalf("expected invalid_declaration, got %v", err)
	}

	_, err = dsl.Select("mode").Options(false, handler.Choice{Value: "a"}).Dependency([]string{"z"}, "x").Build()
	iss, ok = feedform.AsIssues(err)
	if !ok || !iss.HasCode(feedform.CodeValueOutsideDomain) {
		t.Fatalf("expected value_outside_domain, got %v", err)
	}
}

func TestBuilder_WrongKindOptions(t *testing.T) {
	_, err := dsl.TextBox("name").
		CheckedNotice("x").
		Dependency([]string{"a"}, "b").
		Build()
	iss, ok := feedform.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two invalid_declaration issues, got %v", err)
	}
	if iss[0].Path != "/checkedNotice" || iss[1].Path != "/dependency" {
		t.Fatalf("unexpected paths %q %q", iss[0].Path, iss[1].Path)
	}
}

func TestTextArea_Element(t *testing.T) {
	d, err := dsl.TextArea("footer").Required().MustBuild().UIMeta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Attributes.FormElement != "textarea" {
		t.Fatalf("unexpected element %q", d.Attributes.FormElement)
	}
	v, _ := d.Meta(uimeta.KeyValidation)
	if diff := cmp.Diff(map[string]bool{uimeta.ValidationRequired: true}, v); diff != "" {
		t.Fatalf("validation mismatch:\n%s", diff)
	}
}

func TestForKind(t *testing.T) {
	for _, k := range dsl.Kinds() {
		b, err := dsl.ForKind(k, "x")
		if err != nil || b.Kind() != k {
			t.Fatalf("ForKind(%s): %v", k, err)
		}
	}
	_, err := dsl.ForKind("slider", "x")
	iss, ok := feedform.AsIssues(err)
	if !ok || !iss.HasCode(feedform.CodeUnknownKind) {
		t.Fatalf("expected unknown_kind, got %v", err)
	}
}
