package handler_test

import (
	"testing"

	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/handler"
)

func TestPositiveInteger_EqualCoerces(t *testing.T) {
	h := handler.NewPositiveInteger()
	cases := []struct {
		a, b any
		want bool
	}{
		{"1", 1, true},
		{"15", 15.0, true},
		{" 30 ", int64(30), true},
		{"1", 2, false},
		{nil, "", true},
		{nil, 5, false},
	}
	for _, c := range cases {
		if got := h.Equal(c.a, c.b); got != c.want {
			t.Fatalf("Equal(%#v, %#v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestPositiveInteger_Normalize(t *testing.T) {
	h := handler.NewPositiveInteger()
	if got := h.NormalizeForUse("90", nil, true); got != 90 {
		t.Fatalf("expected 90, got %#v", got)
	}
	if got := h.NormalizeForUse("0", 60, true); got != 60 {
		t.Fatalf("zero is not positive, expected default, got %#v", got)
	}
	if got := h.NormalizeForUse("1.5", nil, false); got != nil {
		t.Fatalf("non-integer should fall back to nil default, got %#v", got)
	}
	if got := h.NormalizeForSave("-3", true); got != nil {
		t.Fatalf("negative value should not be saved, got %#v", got)
	}
	classes := h.ValidationClasses()
	if len(classes) != 2 || classes[0] != "validate-digits" || classes[1] != "validate-greater-than-zero" {
		t.Fatalf("unexpected classes: %v", classes)
	}
}

func TestPositiveInteger_RejectsValuesBeyondInt(t *testing.T) {
	h := handler.NewPositiveInteger()
	if got := h.NormalizeForUse("18446744073709551621", nil, true); got != nil {
		t.Fatalf("value beyond the int range should fall back to default, got %#v", got)
	}
	if got := h.NormalizeForSave("18446744073709551621", true); got != nil {
		t.Fatalf("value beyond the int range should not be saved, got %#v", got)
	}
	if got := h.NormalizeForUse("9223372036854775807", nil, true); got != 9223372036854775807 {
		t.Fatalf("largest int should be kept, got %#v", got)
	}
}

func TestNumber_EqualAndUse(t *testing.T) {
	h := handler.NewNumber()
	if !h.Equal("1.0", 1) {
		t.Fatalf("expected 1.0 == 1")
	}
	if h.Equal("1.01", 1) {
		t.Fatalf("expected 1.01 != 1")
	}
	if got := h.NormalizeForUse("2.5", nil, false); got != 2.5 {
		t.Fatalf("expected 2.5, got %#v", got)
	}
	if got := h.NormalizeForSave("abc", false); got != nil {
		t.Fatalf("expected nil for invalid number, got %#v", got)
	}
}

func TestBoolean_Normalize(t *testing.T) {
	h := handler.NewBoolean()
	if got := h.NormalizeForForm(true, nil, false); got != handler.FormTrue {
		t.Fatalf("expected form true, got %#v", got)
	}
	if got := h.NormalizeForForm(nil, nil, false); got != handler.FormFalse {
		t.Fatalf("expected form false for absent value, got %#v", got)
	}
	if got := h.NormalizeForUse("1", nil, false); got != true {
		t.Fatalf("expected true, got %#v", got)
	}
	if got := h.NormalizeForUse(nil, true, false); got != true {
		t.Fatalf("expected default true, got %#v", got)
	}
	if !h.Equal("0", false) || !h.Equal(1, "true") || h.Equal("1", false) {
		t.Fatalf("unexpected boolean equality")
	}
	if vs := h.Values(); len(vs) != 2 || vs[0] != "1" || vs[1] != "0" {
		t.Fatalf("unexpected values: %v", vs)
	}
}

func TestOption_ValuesAndNormalize(t *testing.T) {
	h := handler.NewOption("number", true,
		handler.Choice{Value: "2", Label: "Advised"},
		handler.Choice{Value: "3", Label: "Required"},
	)
	if h.FormDataType() != "number" {
		t.Fatalf("unexpected data type %q", h.FormDataType())
	}
	vs := h.Values()
	if len(vs) != 3 || vs[0] != "" || vs[1] != "2" || vs[2] != "3" {
		t.Fatalf("unexpected values: %#v", vs)
	}
	if got := h.NormalizeForUse(3, "", false); got != "3" {
		t.Fatalf("expected \"3\", got %#v", got)
	}
	if got := h.NormalizeForUse("9", "", false); got != "" {
		t.Fatalf("unknown value should fall back to default, got %#v", got)
	}
	if got := h.NormalizeForSave("9", false); got != "" {
		t.Fatalf("unknown value should be saved as the empty option, got %#v", got)
	}

	strict := handler.NewOption("", false, handler.Choice{Value: "a"}, handler.Choice{Value: "b"})
	if strict.FormDataType() != "text" {
		t.Fatalf("expected default text data type")
	}
	if got := strict.NormalizeForSave("", true); got != nil {
		t.Fatalf("empty value without empty option should be rejected, got %#v", got)
	}
	if got := strict.NormalizeForUse(nil, nil, true); got != "a" {
		t.Fatalf("required option without default should use first choice, got %#v", got)
	}
}

func TestText_Normalize(t *testing.T) {
	h := handler.NewText()
	if got := h.NormalizeForSave("  sku  ", false); got != "sku" {
		t.Fatalf("expected trimmed value, got %#v", got)
	}
	if got := h.NormalizeForForm(nil, "fallback", false); got != "fallback" {
		t.Fatalf("expected default, got %#v", got)
	}
	if got := h.NormalizeForUse(12, nil, false); got != "12" {
		t.Fatalf("expected stringified number, got %#v", got)
	}
	if !h.Equal(nil, "") || !h.Equal(1, "1") {
		t.Fatalf("unexpected text equality")
	}
}

func TestNew_Registry(t *testing.T) {
	for _, typ := range handler.Types() {
		h, err := handler.New(typ, handler.Options{})
		if err != nil || h == nil {
			t.Fatalf("New(%s) failed: %v", typ, err)
		}
	}
	_, err := handler.New("color", handler.Options{})
	iss, ok := feedform.AsIssues(err)
	if !ok || !iss.HasCode(feedform.CodeUnknownHandler) {
		t.Fatalf("expected unknown_handler issue, got %v", err)
	}
}
