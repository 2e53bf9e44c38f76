package handler

import "slices"

// Choice is one selectable value of an option handler.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Option restricts values to a fixed list of choices.
type Option struct {
	dataType       string
	hasEmptyOption bool
	choices        []Choice
}

// NewOption builds an option handler. dataType defaults to "text".
func NewOption(dataType string, hasEmptyOption bool, choices ...Choice) *Option {
	if dataType == "" {
		dataType = "text"
	}
	return &Option{
		dataType:       dataType,
		hasEmptyOption: hasEmptyOption,
		choices:        append([]Choice(nil), choices...),
	}
}

func (o *Option) FormDataType() string      { return o.dataType }
func (*Option) ValidationClasses() []string { return nil }

// HasEmptyOption reports whether an empty selection is valid.
func (o *Option) HasEmptyOption() bool { return o.hasEmptyOption }

// Choices returns a copy of the choices.
func (o *Option) Choices() []Choice { return append([]Choice(nil), o.choices...) }

// Values returns the selectable values. The empty value leads when the
// handler allows it and no choice declares it.
func (o *Option) Values() []string {
	out := make([]string, 0, len(o.choices)+1)
	if o.hasEmptyOption && !slices.ContainsFunc(o.choices, func(c Choice) bool { return c.Value == "" }) {
		out = append(out, "")
	}
	for _, c := range o.choices {
		out = append(out, c.Value)
	}
	return out
}

func (o *Option) valid(v any) (string, bool) {
	s, ok := toText(v)
	if !ok {
		return "", false
	}
	if s == "" {
		return s, o.hasEmptyOption
	}
	return s, slices.Contains(o.Values(), s)
}

func (*Option) Equal(a, b any) bool { return textOf(a) == textOf(b) }

func (o *Option) NormalizeForForm(raw, def any, _ bool) any {
	if s, ok := o.valid(raw); ok {
		return s
	}
	return def
}

func (o *Option) NormalizeForUse(raw, def any, required bool) any {
	if s, ok := o.valid(raw); ok {
		return s
	}
	if def == nil && required && len(o.choices) > 0 {
		return o.choices[0].Value
	}
	return def
}

func (o *Option) NormalizeForSave(raw any, _ bool) any {
	if s, ok := o.valid(raw); ok {
		return s
	}
	if o.hasEmptyOption {
		return ""
	}
	return nil
}
