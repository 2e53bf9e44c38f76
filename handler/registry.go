package handler

import (
	feedform "github.com/reoring/feedform"
)

// Type tags a value handler implementation.
type Type string

const (
	TypeText            Type = "text"
	TypeBoolean         Type = "boolean"
	TypeOption          Type = "option"
	TypePositiveInteger Type = "positive_integer"
	TypeNumber          Type = "number"
)

// Options configures handlers that accept settings. Unused fields are ignored.
type Options struct {
	// DataType overrides the form data type (option handler only).
	DataType       string
	HasEmptyOption bool
	Choices        []Choice
}

var constructors = map[Type]func(Options) feedform.Handler{
	TypeText:            func(Options) feedform.Handler { return NewText() },
	TypeBoolean:         func(Options) feedform.Handler { return NewBoolean() },
	TypePositiveInteger: func(Options) feedform.Handler { return NewPositiveInteger() },
	TypeNumber:          func(Options) feedform.Handler { return NewNumber() },
	TypeOption: func(o Options) feedform.Handler {
		return NewOption(o.DataType, o.HasEmptyOption, o.Choices...)
	},
}

// New resolves a handler tag.
func New(t Type, opts Options) (feedform.Handler, error) {
	ctor, ok := constructors[t]
	if !ok {
		return nil, feedform.Issues{feedform.Root().Issue(feedform.CodeUnknownHandler, "handler", string(t))}
	}
	return ctor(opts), nil
}

// Types lists the known handler tags.
func Types() []Type {
	return []Type{TypeText, TypeBoolean, TypeOption, TypePositiveInteger, TypeNumber}
}

var (
	_ feedform.Handler    = (*Text)(nil)
	_ feedform.Handler    = (*Boolean)(nil)
	_ feedform.Handler    = (*Option)(nil)
	_ feedform.Handler    = (*PositiveInteger)(nil)
	_ feedform.Handler    = (*Number)(nil)
	_ feedform.Enumerable = (*Boolean)(nil)
	_ feedform.Enumerable = (*Option)(nil)
)
