package dsl

import (
	feedform "github.com/reoring/feedform"
	"github.com/reoring/feedform/handler"
)

// FieldBuilder declares one field of a given kind. Methods chain; mistakes are
// collected and reported by Build.
type FieldBuilder struct {
	kind Kind
	cfg  feedform.FieldConfig

	checkedNotice       string
	uncheckedNotice     string
	checkedDependents   []string
	uncheckedDependents []string

	iss feedform.Issues
}

func newBuilder(kind Kind, name string, h feedform.Handler) *FieldBuilder {
	return &FieldBuilder{kind: kind, cfg: feedform.FieldConfig{Name: name, Handler: h}}
}

// Checkbox declares a boolean field rendered as a toggle.
func Checkbox(name string) *FieldBuilder {
	return newBuilder(KindCheckbox, name, handler.NewBoolean())
}

// Select declares a field restricted to a list of values. Call Options or
// Handler with an enumerable handler before Build.
func Select(name string) *FieldBuilder { return newBuilder(KindSelect, name, nil) }

// TextBox declares a single line input. The handler defaults to text.
func TextBox(name string) *FieldBuilder {
	return newBuilder(KindTextBox, name, handler.NewText())
}

// TextArea declares a multi-line input. The handler defaults to text.
func TextArea(name string) *FieldBuilder {
	return newBuilder(KindTextArea, name, handler.NewText())
}

// Kind returns the kind being declared.
func (b *FieldBuilder) Kind() Kind { return b.kind }

// Handler replaces the value handler.
func (b *FieldBuilder) Handler(h feedform.Handler) *FieldBuilder {
	b.cfg.Handler = h
	return b
}

// Options installs an option handler with the given choices (select only).
func (b *FieldBuilder) Options(hasEmptyOption bool, choices ...handler.Choice) *FieldBuilder {
	if !b.only(KindSelect, "options") {
		return b
	}
	b.cfg.Handler = handler.NewOption("", hasEmptyOption, choices...)
	return b
}

func (b *FieldBuilder) Label(label string) *FieldBuilder {
	b.cfg.Label = label
	return b
}

func (b *FieldBuilder) Notice(notice string) *FieldBuilder {
	b.cfg.Notice = notice
	return b
}

// Required marks the field as required.
func (b *FieldBuilder) Required() *FieldBuilder {
	b.cfg.Required = true
	return b
}

// Optional marks the field as optional (default).
func (b *FieldBuilder) Optional() *FieldBuilder {
	b.cfg.Required = false
	return b
}

// Default sets both the form and the use default.
func (b *FieldBuilder) Default(v any) *FieldBuilder {
	b.cfg.DefaultFormValue = v
	b.cfg.DefaultUseValue = v
	return b
}

func (b *FieldBuilder) DefaultFormValue(v any) *FieldBuilder {
	b.cfg.DefaultFormValue = v
	return b
}

func (b *FieldBuilder) DefaultUseValue(v any) *FieldBuilder {
	b.cfg.DefaultUseValue = v
	return b
}

// ValidationClasses adds validation rules on top of those of the handler.
func (b *FieldBuilder) ValidationClasses(classes ...string) *FieldBuilder {
	b.cfg.AdditionalValidationClasses = append(b.cfg.AdditionalValidationClasses, classes...)
	return b
}

func (b *FieldBuilder) SortOrder(n int) *FieldBuilder {
	b.cfg.SortOrder = &n
	return b
}

// Dependency enables fieldNames while the value is one of values (select only;
// checkboxes use CheckedDependents/UncheckedDependents).
func (b *FieldBuilder) Dependency(values []string, fieldNames ...string) *FieldBuilder {
	if !b.only(KindSelect, "dependency") {
		return b
	}
	b.cfg.Dependencies = append(b.cfg.Dependencies, feedform.Dependency{
		Values:     append([]string(nil), values...),
		FieldNames: append([]string(nil), fieldNames...),
	})
	return b
}

// CheckedNotice is displayed while the checkbox is checked.
func (b *FieldBuilder) CheckedNotice(notice string) *FieldBuilder {
	if b.only(KindCheckbox, "checkedNotice") {
		b.checkedNotice = notice
	}
	return b
}

// UncheckedNotice is displayed while the checkbox is unchecked.
func (b *FieldBuilder) UncheckedNotice(notice string) *FieldBuilder {
	if b.only(KindCheckbox, "uncheckedNotice") {
		b.uncheckedNotice = notice
	}
	return b
}

// CheckedDependents are enabled only while the checkbox is checked.
func (b *FieldBuilder) CheckedDependents(names ...string) *FieldBuilder {
	if b.only(KindCheckbox, "checkedDependentFieldNames") {
		b.checkedDependents = append(b.checkedDependents, names...)
	}
	return b
}

// UncheckedDependents are enabled only while the checkbox is unchecked.
func (b *FieldBuilder) UncheckedDependents(names ...string) *FieldBuilder {
	if b.only(KindCheckbox, "uncheckedDependentFieldNames") {
		b.uncheckedDependents = append(b.uncheckedDependents, names...)
	}
	return b
}

func (b *FieldBuilder) only(kind Kind, option string) bool {
	if b.kind == kind {
		return true
	}
	b.iss = append(b.iss, feedform.Root().Field(option).Issue(
		feedform.CodeInvalidDeclaration, "field", b.cfg.Name, "kind", string(b.kind),
		"reason", option+" is only supported by "+string(kind)+" fields"))
	return false
}

// Build validates the declaration and returns the immutable field.
func (b *FieldBuilder) Build() (*feedform.Field, error) {
	iss := append(feedform.Issues(nil), b.iss...)
	cfg := b.cfg
	cfg.Dependencies = append([]feedform.Dependency(nil), b.cfg.Dependencies...)

	switch b.kind {
	case KindCheckbox:
		if len(b.checkedDependents) > 0 {
			cfg.Dependencies = append(cfg.Dependencies, feedform.Dependency{
				Values:     []string{handler.FormTrue},
				FieldNames: append([]string(nil), b.checkedDependents...),
			})
		}
		if len(b.uncheckedDependents) > 0 {
			cfg.Dependencies = append(cfg.Dependencies, feedform.Dependency{
				Values:     []string{handler.FormFalse},
				FieldNames: append([]string(nil), b.uncheckedDependents...),
			})
		}
		cfg.Element = checkboxElement{checkedNotice: b.checkedNotice, uncheckedNotice: b.uncheckedNotice}
	case KindSelect:
		if _, ok := cfg.Handler.(feedform.Enumerable); !ok {
			iss = append(iss, feedform.Root().Field("handler").Issue(
				feedform.CodeInvalidDeclaration, "field", cfg.Name,
				"reason", "select fields need a handler with a finite value domain"))
		}
		cfg.Element = selectElement{}
	case KindTextArea:
		cfg.Element = inputElement{formElement: "textarea"}
	default:
		cfg.Element = inputElement{formElement: "input"}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return feedform.NewField(cfg)
}

// MustBuild is Build that panics on error. Intended for static declarations.
func (b *FieldBuilder) MustBuild() *feedform.Field {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
