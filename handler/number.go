package handler

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// PositiveInteger handles integers strictly greater than zero.
type PositiveInteger struct{}

// NewPositiveInteger returns the positive integer handler.
func NewPositiveInteger() *PositiveInteger { return &PositiveInteger{} }

func (*PositiveInteger) FormDataType() string { return "number" }

func (*PositiveInteger) ValidationClasses() []string {
	return []string{"validate-digits", "validate-greater-than-zero"}
}

func (*PositiveInteger) Equal(a, b any) bool { return numbersEqual(a, b) }

func (*PositiveInteger) NormalizeForForm(raw, def any, _ bool) any {
	if n, ok := toPositiveInt(raw); ok {
		return n
	}
	return def
}

func (*PositiveInteger) NormalizeForUse(raw, def any, _ bool) any {
	if n, ok := toPositiveInt(raw); ok {
		return n
	}
	return def
}

func (*PositiveInteger) NormalizeForSave(raw any, _ bool) any {
	if n, ok := toPositiveInt(raw); ok {
		return n
	}
	return nil
}

var maxInt = decimal.NewFromInt(math.MaxInt)

// toPositiveInt rejects values that do not fit an int.
func toPositiveInt(v any) (int, bool) {
	d, ok := toDecimal(v)
	if !ok || !d.IsInteger() || !d.IsPositive() || d.GreaterThan(maxInt) {
		return 0, false
	}
	return int(d.IntPart()), true
}

// Number handles decimal values. Used values are float64.
type Number struct{}

// NewNumber returns the number handler.
func NewNumber() *Number { return &Number{} }

func (*Number) FormDataType() string        { return "number" }
func (*Number) ValidationClasses() []string { return []string{"validate-number"} }

func (*Number) Equal(a, b any) bool { return numbersEqual(a, b) }

func (*Number) NormalizeForForm(raw, def any, _ bool) any {
	if d, ok := toDecimal(raw); ok {
		return d.String()
	}
	return def
}

func (*Number) NormalizeForUse(raw, def any, _ bool) any {
	if d, ok := toDecimal(raw); ok {
		return d.InexactFloat64()
	}
	return def
}

func (*Number) NormalizeForSave(raw any, _ bool) any {
	if d, ok := toDecimal(raw); ok {
		return d.String()
	}
	return nil
}

// numbersEqual compares numerically when both sides are numbers, textually
// otherwise (so two empty values are equal).
func numbersEqual(a, b any) bool {
	da, oka := toDecimal(a)
	db, okb := toDecimal(b)
	if oka && okb {
		return da.Equal(db)
	}
	if oka != okb {
		return false
	}
	return textOf(a) == textOf(b)
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil, bool:
		return decimal.Zero, false
	case decimal.Decimal:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case float32, float64:
		f, err := cast.ToFloat64E(t)
		if err != nil {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(f), true
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(n), true
}
