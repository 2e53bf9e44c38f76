package feedform

import (
	"github.com/reoring/feedform/uimeta"
)

// FieldConfig is the declarative input of NewField. Slices are copied, so the
// caller may reuse the config after the call.
type FieldConfig struct {
	Name    string
	Handler Handler
	Label   string
	Notice  string
	// Required fields get the required-entry validation rule and stricter
	// value normalization.
	Required bool
	// DefaultFormValue is displayed when no value is stored (nil: none).
	DefaultFormValue any
	// DefaultUseValue is handed to business logic when no value is stored.
	DefaultUseValue             any
	AdditionalValidationClasses []string
	// SortOrder is optional; nil leaves the field unranked.
	SortOrder    *int
	Dependencies []Dependency
	Element      Element
}

// Field is one configuration setting. It is immutable once built and safe for
// concurrent use.
type Field struct {
	name              string
	handler           Handler
	label             string
	notice            string
	required          bool
	defaultFormValue  any
	defaultUseValue   any
	validationClasses []string
	sortOrder         *int
	dependencies      []Dependency
	element           Element
}

// NewField validates cfg and builds a Field.
func NewField(cfg FieldConfig) (*Field, error) {
	var iss Issues
	if cfg.Name == "" {
		iss = append(iss, At("/name").Issue(CodeInvalidDeclaration, "reason", "field name is empty"))
	}
	if cfg.Handler == nil {
		iss = append(iss, At("/handler").Issue(CodeInvalidDeclaration, "field", cfg.Name, "reason", "value handler is missing"))
	}
	if len(iss) > 0 {
		return nil, iss
	}

	f := &Field{
		name:              cfg.Name,
		handler:           cfg.Handler,
		label:             cfg.Label,
		notice:            cfg.Notice,
		required:          cfg.Required,
		defaultFormValue:  cfg.DefaultFormValue,
		defaultUseValue:   cfg.DefaultUseValue,
		validationClasses: append([]string(nil), cfg.AdditionalValidationClasses...),
		dependencies:      cloneDependencies(cfg.Dependencies),
		element:           cfg.Element,
	}
	if cfg.SortOrder != nil {
		n := *cfg.SortOrder
		f.sortOrder = &n
	}

	if len(f.dependencies) > 0 {
		deps := Root().Field("dependencies")
		for i, d := range f.dependencies {
			for j, name := range d.FieldNames {
				if name == "" {
					iss = append(iss, deps.Index(i).Field("fieldNames").Index(j).Issue(CodeInvalidDeclaration, "field", cfg.Name, "reason", "dependent field name is empty"))
				}
			}
		}
		if _, ok := f.handler.(Enumerable); !ok {
			iss = append(iss, deps.Issue(CodeInvalidDeclaration, "field", cfg.Name, "reason", "dependencies require a handler with a finite value domain"))
		} else if _, _, err := f.SwitcherConfig(); err != nil {
			if more, ok := AsIssues(err); ok {
				iss = append(iss, more...)
			} else {
				return nil, err
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return f, nil
}

// MustNewField is NewField that panics on error. Intended for static
// declarations.
func MustNewField(cfg FieldConfig) *Field {
	f, err := NewField(cfg)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Field) Name() string          { return f.name }
func (f *Field) Handler() Handler      { return f.handler }
func (f *Field) Label() string         { return f.label }
func (f *Field) Notice() string        { return f.notice }
func (f *Field) IsRequired() bool      { return f.required }
func (f *Field) DefaultFormValue() any { return f.defaultFormValue }
func (f *Field) DefaultUseValue() any  { return f.defaultUseValue }
func (f *Field) Element() Element      { return f.element }

// SortOrder returns the explicit rank of the field, if any.
func (f *Field) SortOrder() (int, bool) {
	if f.sortOrder == nil {
		return 0, false
	}
	return *f.sortOrder, true
}

// Dependencies returns a copy of the declared dependencies.
func (f *Field) Dependencies() []Dependency { return cloneDependencies(f.dependencies) }

// AdditionalValidationClasses returns a copy of the classes declared on the field.
func (f *Field) AdditionalValidationClasses() []string {
	return append([]string(nil), f.validationClasses...)
}

// ValidationClasses is the union of the field's own classes and those required
// by its handler, without duplicates.
func (f *Field) ValidationClasses() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, group := range [][]string{f.validationClasses, f.handler.ValidationClasses()} {
		for _, c := range group {
			if _, dup := seen[c]; dup || c == "" {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// BaseUIMeta computes the metadata common to every field kind. Absent optional
// data is omitted rather than rendered empty.
func (f *Field) BaseUIMeta() map[string]any {
	meta := map[string]any{}
	if dt := f.handler.FormDataType(); dt != "" {
		meta[uimeta.KeyDataType] = dt
	}
	if f.label != "" {
		meta[uimeta.KeyLabel] = f.label
	}

	validation := map[string]bool{}
	if f.required {
		validation[uimeta.ValidationRequired] = true
	}
	if f.defaultFormValue != nil {
		meta[uimeta.KeyDefault] = f.defaultFormValue
	}
	if f.notice != "" {
		meta[uimeta.KeyNotice] = f.notice
	}
	// required-entry wins over a declared class of the same name
	for _, c := range f.ValidationClasses() {
		if _, set := validation[c]; !set {
			validation[c] = true
		}
	}
	if len(validation) > 0 {
		meta[uimeta.KeyValidation] = validation
	}
	if f.sortOrder != nil {
		meta[uimeta.KeySortOrder] = *f.sortOrder
	}
	return meta
}

// UIMeta returns the form component descriptor of the field. Each call builds
// a fresh descriptor.
func (f *Field) UIMeta() (*uimeta.Descriptor, error) {
	meta := f.BaseUIMeta()
	if f.element != nil {
		if el := f.element.FormElement(); el != "" {
			meta[uimeta.KeyFormElement] = el
		}
		if err := f.element.ExtendUIMeta(f, meta); err != nil {
			return nil, err
		}
	}

	config := map[string]any{
		uimeta.KeyComponentType: uimeta.ComponentField,
		uimeta.KeyDataScope:     f.name,
		uimeta.KeyVisible:       true,
	}
	for k, v := range meta {
		config[k] = v
	}
	formElement, _ := meta[uimeta.KeyFormElement].(string)
	if formElement == "" {
		formElement = uimeta.DefaultFormElement
	}
	return &uimeta.Descriptor{
		Arguments: uimeta.Arguments{Data: uimeta.Data{Config: config}},
		Attributes: uimeta.Attributes{
			Class:       uimeta.ClassField,
			FormElement: formElement,
			Name:        f.name,
		},
		Children: map[string]*uimeta.Descriptor{},
	}, nil
}

// SwitcherConfig compiles the field dependencies against the handler value
// domain. It reports false when the field has no dependencies.
func (f *Field) SwitcherConfig() (*uimeta.Switcher, bool, error) {
	if len(f.dependencies) == 0 {
		return nil, false, nil
	}
	en, ok := f.handler.(Enumerable)
	if !ok {
		return nil, false, Issues{Root().Field("dependencies").Issue(CodeInvalidDeclaration, "field", f.name, "reason", "dependencies require a handler with a finite value domain")}
	}
	sw, err := CompileSwitcher(f.dependencies, en.Values())
	if err != nil {
		return nil, false, err
	}
	return sw, true, nil
}

// ValuesEqual compares two values of this field.
func (f *Field) ValuesEqual(a, b any) bool { return f.handler.Equal(a, b) }

// PrepareRawValueForForm prepares a stored value for display.
func (f *Field) PrepareRawValueForForm(v any) any {
	return f.handler.NormalizeForForm(v, f.defaultFormValue, f.required)
}

// PrepareRawValueForUse prepares a stored value for business logic.
func (f *Field) PrepareRawValueForUse(v any) any {
	return f.handler.NormalizeForUse(v, f.defaultUseValue, f.required)
}

// PrepareFormValueForSave prepares a submitted value for storage.
func (f *Field) PrepareFormValueForSave(v any) any {
	return f.handler.NormalizeForSave(v, f.required)
}
