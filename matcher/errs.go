package matcher

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax         = errors.New("matcher syntax error")
	ErrArgs           = errors.New("bad matcher arguments")
	ErrUnknownMatcher = errors.New("unknown matcher")
	ErrSymbolExists   = errors.New("symbol exists")
)

// UnknownMatcherError reports a matcher name absent from the registry.
type UnknownMatcherError struct {
	Name string
	// Suggestion is the closest registered name, if one is close enough.
	Suggestion string
}

func (e *UnknownMatcherError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s %q, did you mean %q?", ErrUnknownMatcher, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s %q", ErrUnknownMatcher, e.Name)
}

func (e *UnknownMatcherError) Unwrap() error { return ErrUnknownMatcher }

func argsError(n Name, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrArgs, n, fmt.Sprintf(format, args...))
}
