package dsl

import (
	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/handler"
	"github.com/reoring/feedform/uimeta"
)

// Kind tags a field kind.
type Kind string

const (
	KindCheckbox Kind = "checkbox"
	KindSelect   Kind = "select"
	KindTextBox  Kind = "text_box"
	KindTextArea Kind = "text_area"
)

// CheckboxNoticeComponent is the form element that swaps notices with the
// checkbox state.
const CheckboxNoticeComponent = "Magento_Ui/js/form/element/single-checkbox-toggle-notice"

var kinds = map[Kind]func(string) *FieldBuilder{
	KindCheckbox: Checkbox,
	KindSelect:   Select,
	KindTextBox:  TextBox,
	KindTextArea: TextArea,
}

// ForKind returns a builder for the field kind tagged k.
func ForKind(k Kind, name string) (*FieldBuilder, error) {
	ctor, ok := kinds[k]
	if !ok {
		return nil, feedform.Issues{feedform.Root().Field("kind").Issue(feedform.CodeUnknownKind, "kind", string(k), "field", name)}
	}
	return ctor(name), nil
}

// Kinds lists the known field kinds.
func Kinds() []Kind { return []Kind{KindCheckbox, KindSelect, KindTextBox, KindTextArea} }

type inputElement struct{ formElement string }

func (e inputElement) FormElement() string                              { return e.formElement }
func (inputElement) ExtendUIMeta(*feedform.Field, map[string]any) error { return nil }

type checkboxElement struct {
	checkedNotice   string
	uncheckedNotice string
}

func (checkboxElement) FormElement() string { return "checkbox" }

func (e checkboxElement) ExtendUIMeta(f *feedform.Field, meta map[string]any) error {
	meta[uimeta.KeyPrefer] = "toggle"
	meta[uimeta.KeyValueMap] = map[string]string{"true": handler.FormTrue, "false": handler.FormFalse}

	if e.checkedNotice != "" || e.uncheckedNotice != "" {
		notices := map[string]string{}
		if e.checkedNotice != "" {
			notices[handler.FormTrue] = e.checkedNotice
		}
		if e.uncheckedNotice != "" {
			notices[handler.FormFalse] = e.uncheckedNotice
		}
		meta[uimeta.KeyComponent] = CheckboxNoticeComponent
		meta[uimeta.KeyNotices] = notices
	}
	return withSwitcher(f, meta)
}

type selectElement struct{}

func (selectElement) FormElement() string { return "select" }

func (selectElement) ExtendUIMeta(f *feedform.Field, meta map[string]any) error {
	var choices []handler.Choice
	switch h := f.Handler().(type) {
	case *handler.Option:
		choices = h.Choices()
		if h.HasEmptyOption() && !hasEmptyChoice(choices) {
			choices = append([]handler.Choice{{Value: "", Label: ""}}, choices...)
		}
	case feedform.Enumerable:
		for _, v := range h.Values() {
			choices = append(choices, handler.Choice{Value: v, Label: v})
		}
	}
	if choices == nil {
		choices = []handler.Choice{}
	}
	meta[uimeta.KeyOptions] = choices
	return withSwitcher(f, meta)
}

func hasEmptyChoice(choices []handler.Choice) bool {
	for _, c := range choices {
		if c.Value == "" {
			return true
		}
	}
	return false
}

func withSwitcher(f *feedform.Field, meta map[string]any) error {
	sw, ok, err := f.SwitcherConfig()
	if err != nil {
		return err
	}
	if ok {
		meta[uimeta.KeySwitcherConfig] = sw
	}
	return nil
}
