package handler

import (
	"strings"

	"github.com/spf13/cast"
)

// Form representations of a boolean value.
const (
	FormTrue  = "1"
	FormFalse = "0"
)

// Boolean handles checkbox states. Form values are "1"/"0", stored and used
// values are bool.
type Boolean struct{}

// NewBoolean returns the boolean handler.
func NewBoolean() *Boolean { return &Boolean{} }

func (*Boolean) FormDataType() string        { return "boolean" }
func (*Boolean) ValidationClasses() []string { return nil }

// Values returns the form representations, checked first.
func (*Boolean) Values() []string { return []string{FormTrue, FormFalse} }

func (*Boolean) Equal(a, b any) bool {
	ba, _ := toBool(a)
	bb, _ := toBool(b)
	return ba == bb
}

func (*Boolean) NormalizeForForm(raw, def any, _ bool) any {
	b, ok := toBool(raw)
	if !ok {
		b, _ = toBool(def)
	}
	if b {
		return FormTrue
	}
	return FormFalse
}

func (*Boolean) NormalizeForUse(raw, def any, _ bool) any {
	if b, ok := toBool(raw); ok {
		return b
	}
	b, _ := toBool(def)
	return b
}

func (*Boolean) NormalizeForSave(raw any, _ bool) any {
	b, _ := toBool(raw)
	return b
}

// toBool reports false when v carries no boolean meaning.
func toBool(v any) (bool, bool) {
	switch t := v.(type) {
	case nil:
		return false, false
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "yes", "on":
			return true, true
		case "", "0", "false", "no", "off":
			return false, true
		}
		return false, false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, false
	}
	return b, true
}
