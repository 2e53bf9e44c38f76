package feedform

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidDeclaration = "invalid_declaration"
	CodeDuplicateField     = "duplicate_field"
	CodeUnknownField       = "unknown_field"
	CodeValueOutsideDomain = "value_outside_domain"
	CodeScopeMismatch      = "scope_mismatch"
	CodeUnknownKind        = "unknown_kind"
	CodeUnknownHandler     = "unknown_handler"
	// Value passes (stored or submitted data)
	CodeRequired     = "required"
	CodeInvalidValue = "invalid_value"
	CodeParseError   = "parse_error"
)

// ErrScopeMismatch is wrapped by Issues reporting snapshots from different scopes.
var ErrScopeMismatch = errors.New("feedform: snapshots belong to different scopes")

// Issue represents a single declaration or value error.
type Issue struct {
	Path    string // JSON Pointer (for example: /fields/2/dependencies/0/values/1).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"value":"x","domain":[...]})
	// for i18n and logging.
	Params map[string]any
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (it Issue) Unwrap() error { return it.Cause }

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_field at /fields/3
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap returns the causes carried by the issues so errors.Is matches
// sentinels such as ErrScopeMismatch.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// orNil returns nil for an empty collection so callers can `return orNil(iss)`.
func orNil(iss Issues) error {
	if len(iss) == 0 {
		return nil
	}
	return iss
}
