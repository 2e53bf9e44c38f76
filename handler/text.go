package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Text handles free-form string values.
type Text struct{}

// NewText returns the text handler.
func NewText() *Text { return &Text{} }

func (*Text) FormDataType() string        { return "text" }
func (*Text) ValidationClasses() []string { return nil }

func (*Text) Equal(a, b any) bool { return textOf(a) == textOf(b) }

func (*Text) NormalizeForForm(raw, def any, _ bool) any {
	if s, ok := toText(raw); ok {
		return s
	}
	return def
}

func (*Text) NormalizeForUse(raw, def any, _ bool) any {
	if s, ok := toText(raw); ok {
		return s
	}
	return def
}

func (*Text) NormalizeForSave(raw any, _ bool) any {
	s, _ := toText(raw)
	return strings.TrimSpace(s)
}

func toText(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}
	return s, true
}

// textOf renders any value for comparison; nil renders as "".
func textOf(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := toText(v); ok {
		return s
	}
	return fmt.Sprint(v)
}
