package uimeta

// Callback is a component method invoked on a switcher target.
type Callback string

const (
	CallbackEnable  Callback = "enable"
	CallbackDisable Callback = "disable"
	CallbackShow    Callback = "show"
	CallbackHide    Callback = "hide"
)

// Switcher drives the visibility of dependent fields from the value of the
// field carrying it.
type Switcher struct {
	Enabled bool   `json:"enabled"`
	Rules   []Rule `json:"rules"`
}

// Rule applies its actions when the field value equals Value. A nil Value
// matches an empty selection.
type Rule struct {
	Actions []Action `json:"actions"`
	Value   *string  `json:"value"`
}

// Action invokes Callback on the component at Target.
type Action struct {
	Target   string   `json:"target"`
	Callback Callback `json:"callback"`
	// DisableTmpl keeps the runtime from interpolating the listed keys again.
	DisableTmpl map[string]bool `json:"__disableTmpl"`
}

// Matches reports whether the rule applies to value (nil for no value).
func (r Rule) Matches(value *string) bool {
	if r.Value == nil || value == nil {
		return r.Value == nil && (value == nil || *value == "")
	}
	return *r.Value == *value
}
