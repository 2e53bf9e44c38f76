package feedform_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/handler"
	"github.com/reoring/feedform/uimeta"
)

func intp(n int) *int { return &n }

func TestField_UIMetaOmitsAbsentData(t *testing.T) {
	f := feedform.MustNewField(feedform.FieldConfig{Name: "sku", Handler: handler.NewText()})
	d, err := f.UIMeta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{uimeta.KeyLabel, uimeta.KeyNotice, uimeta.KeyDefault, uimeta.KeySortOrder, uimeta.KeyValidation} {
		if _, ok := d.Meta(key); ok {
			t.Fatalf("absent %s should be omitted, got config %v", key, d.Config())
		}
	}

	want := &uimeta.Descriptor{
		Arguments: uimeta.Arguments{Data: uimeta.Data{Config: map[string]any{
			uimeta.KeyComponentType: uimeta.ComponentField,
			uimeta.KeyDataScope:     "sku",
			uimeta.KeyVisible:       true,
			uimeta.KeyDataType:      "text",
		}}},
		Attributes: uimeta.Attributes{Class: uimeta.ClassField, FormElement: "input", Name: "sku"},
		Children:   map[string]*uimeta.Descriptor{},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestField_RequiredAndExtraValidation(t *testing.T) {
	f := feedform.MustNewField(feedform.FieldConfig{
		Name:                        "delay",
		Handler:                     handler.NewPositiveInteger(),
		Required:                    true,
		AdditionalValidationClasses: []string{"validate-foo", "validate-digits", "required-entry"},
	})
	meta := f.BaseUIMeta()
	got, _ := meta[uimeta.KeyValidation].(map[string]bool)
	want := map[string]bool{
		"required-entry":             true,
		"validate-foo":               true,
		"validate-digits":            true,
		"validate-greater-than-zero": true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("validation mismatch (-want +got):\n%s", diff)
	}
}

func TestField_UIMetaCarriesDeclaredData(t *testing.T) {
	f := feedform.MustNewField(feedform.FieldConfig{
		Name:             "separator",
		Handler:          handler.NewText(),
		Label:            "Separator",
		Notice:           "One character.",
		DefaultFormValue: ";",
		SortOrder:        intp(-5),
	})
	meta := f.BaseUIMeta()
	if meta[uimeta.KeyLabel] != "Separator" || meta[uimeta.KeyNotice] != "One character." {
		t.Fatalf("unexpected meta %v", meta)
	}
	if meta[uimeta.KeyDefault] != ";" {
		t.Fatalf("expected default, got %v", meta[uimeta.KeyDefault])
	}
	if meta[uimeta.KeySortOrder] != -5 {
		t.Fatalf("negative sort orders are kept as-is, got %v", meta[uimeta.KeySortOrder])
	}
}

func TestField_UIMetaIsRepeatable(t *testing.T) {
	f := feedform.MustNewField(feedform.FieldConfig{
		Name:         "mode",
		Handler:      handler.NewOption("", false, handler.Choice{Value: "a"}, handler.Choice{Value: "b"}),
		Dependencies: []feedform.Dependency{{Values: []string{"a"}, FieldNames: []string{"x"}}},
	})
	d1, err := f.UIMeta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d1.Config()["label"] = "mutated"
	d2, _ := f.UIMeta()
	if _, ok := d2.Meta(uimeta.KeyLabel); ok {
		t.Fatalf("descriptors must not share state")
	}
}

func TestNewField_Validation(t *testing.T) {
	_, err := feedform.NewField(feedform.FieldConfig{})
	iss, ok := feedform.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected name and handler issues, got %v", err)
	}

	_, err = feedform.NewField(feedform.FieldConfig{
		Name:         "free",
		Handler:      handler.NewText(),
		Dependencies: []feedform.Dependency{{Values: []string{"x"}, FieldNames: []string{"y"}}},
	})
	iss, ok = feedform.AsIssues(err)
	if !ok || !iss.HasCode(feedform.CodeInvalidDeclaration) {
		t.Fatalf("dependencies on an open domain should be rejected, got %v", err)
	}
}

func TestField_DependenciesAreCopied(t *testing.T) {
	deps := []feedform.Dependency{{Values: []string{"1"}, FieldNames: []string{"x"}}}
	f := feedform.MustNewField(feedform.FieldConfig{Name: "flag", Handler: handler.NewBoolean(), Dependencies: deps})
	deps[0].FieldNames[0] = "changed"
	got := f.Dependencies()
	if got[0].FieldNames[0] != "x" {
		t.Fatalf("field should not observe caller mutations")
	}
	got[0].Values[0] = "0"
	if f.Dependencies()[0].Values[0] != "1" {
		t.Fatalf("callers should not mutate the field")
	}
}

func TestField_ValueNormalization(t *testing.T) {
	f := feedform.MustNewField(feedform.FieldConfig{
		Name:             "state",
		Handler:          handler.NewOption("number", true, handler.Choice{Value: "2"}, handler.Choice{Value: "3"}),
		DefaultFormValue: "",
		DefaultUseValue:  nil,
	})
	if got := f.PrepareRawValueForForm(nil); got != "" {
		t.Fatalf("expected form default, got %#v", got)
	}
	if got := f.PrepareRawValueForUse("7"); got != nil {
		t.Fatalf("expected use default, got %#v", got)
	}
	if got := f.PrepareFormValueForSave(3); got != "3" {
		t.Fatalf("expected \"3\", got %#v", got)
	}
	if !f.ValuesEqual("3", 3) {
		t.Fatalf("expected coercing equality")
	}
}
