package feedform

// Handler knows the data type of a field value and how to move it between its
// stored, form and business representations.
type Handler interface {
	// FormDataType names the data type announced to the form runtime.
	FormDataType() string
	// ValidationClasses lists the validation rules every value must pass.
	ValidationClasses() []string
	// Equal compares two values after coercion (e.g. "1" and 1).
	Equal(a, b any) bool
	// NormalizeForForm prepares a stored value for display.
	NormalizeForForm(raw, def any, required bool) any
	// NormalizeForUse prepares a stored value for business logic.
	NormalizeForUse(raw, def any, required bool) any
	// NormalizeForSave prepares a submitted form value for storage.
	NormalizeForSave(raw any, required bool) any
}

// Enumerable is implemented by handlers with a finite value domain.
// Switchers are compiled against this domain.
type Enumerable interface {
	Values() []string
}

// Element customizes how a field kind projects into UI metadata.
type Element interface {
	FormElement() string
	// ExtendUIMeta adds kind-specific keys to the base metadata of f.
	ExtendUIMeta(f *Field, meta map[string]any) error
}
