package refresh

import (
	"math"
	"strconv"

	"github.com/spf13/cast"
)

// State is the automatic refresh policy of a section.
type State int

const (
	// StateDisabled is used whenever no automatic refresh is configured,
	// including an empty or absent stored value.
	StateDisabled State = 0
	StateAdvised  State = 2
	StateRequired State = 3
)

func (s State) String() string {
	switch s {
	case StateAdvised:
		return "advised"
	case StateRequired:
		return "required"
	default:
		return "disabled"
	}
}

// FormValue is the option value of the state; disabled maps to the empty
// option.
func (s State) FormValue() string {
	if s == StateDisabled {
		return ""
	}
	return strconv.Itoa(int(s))
}

// ParseState maps a stored value to a State. Empty, unknown and non-integer
// values are StateDisabled.
func ParseState(v any) State {
	switch f := v.(type) {
	case float64:
		if f != math.Trunc(f) {
			return StateDisabled
		}
	case float32:
		if float64(f) != math.Trunc(float64(f)) {
			return StateDisabled
		}
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return StateDisabled
	}
	switch State(n) {
	case StateAdvised, StateRequired:
		return State(n)
	}
	return StateDisabled
}
