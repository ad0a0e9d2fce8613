package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/citrusframework/citrus-go/validate/libdiff"
)

var (
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrValueMismatch         = errors.New("value mismatch")
	ErrMatcherFailure        = errors.New("matcher failure")
	ErrEntryCountMismatch    = errors.New("entry count mismatch")
	ErrMissingEntry          = errors.New("missing entry")
	ErrMissingItem           = errors.New("missing item")
	ErrDocumentCountMismatch = errors.New("document count mismatch")
	ErrIgnoreExpression      = errors.New("bad ignore expression")
	ErrPatch                 = errors.New("patch error")
)

// ValidationError is the failure reported by a validation. Kind is one of
// the mismatch sentinels above, so errors.Is(err, ErrValueMismatch) selects
// on it.
type ValidationError struct {
	Kind error
	// Path locates the failure in the expected document, e.g. $.greetings[2].text.
	Path string
	// Expected and Actual are renderings of the compared values, or of
	// their types for ErrTypeMismatch.
	Expected string
	Actual   string
	// Matcher is the expression that rejected the value for
	// ErrMatcherFailure.
	Matcher string
	// Document is the 1-based index of the failing document when several
	// were validated, 0 otherwise.
	Document int
	Detail   string
}

func (e *ValidationError) Error() string {
	buf := &strings.Builder{}
	buf.WriteString(e.Kind.Error())
	if e.Path != "" {
		buf.WriteString(" at ")
		buf.WriteString(e.Path)
	}
	if e.Document > 0 {
		fmt.Fprintf(buf, " in document %d", e.Document)
	}
	if e.Matcher != "" {
		fmt.Fprintf(buf, ": %s rejected '%s'", e.Matcher, e.Actual)
	} else {
		fmt.Fprintf(buf, ": expected '%s' but was '%s'", e.Expected, e.Actual)
	}
	if e.Detail != "" {
		buf.WriteString("; ")
		buf.WriteString(e.Detail)
	}
	return buf.String()
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// Diff renders the edit turning Expected into Actual for value
// mismatches, and "" for other kinds.
func (e *ValidationError) Diff() string {
	if e.Kind != ErrValueMismatch {
		return ""
	}
	return libdiff.DiffString(e.Expected, e.Actual)
}
