// Package validate compares an actual YAML or JSON message with an expected
// control document.
//
// The comparison walks both trees together, following the expected one:
//
//   - expected leaves are compared by value. Numbers compare numerically,
//     null only equals null, and everything else compares as text. A leaf
//     written as a matcher expression such as @startsWith('Hello')@ is
//     instead handed to the named matcher, see package matcher.
//   - expected objects require every expected key in the actual object.
//     Extra actual keys are fine unless the validator is Strict.
//   - expected arrays are compared as multisets: each expected element needs
//     its own matching actual element, in any order. Strict also requires
//     equal lengths.
//
// Subtrees are skipped when the expected value is @ignore@ or when their
// path matches one of the IgnorePaths. Paths are written $.greetings[2].text,
// with ['name'] for keys that are not plain, and may use [*], .* and .. as
// wildcards.
//
// Validation stops at the first difference, reported as a *ValidationError
// whose Kind is one of the Err... sentinels:
//
//	err := validate.Validate(actual, expected, validate.Strict(true))
//	if errors.Is(err, validate.ErrValueMismatch) {
//		...
//	}
//
// Expected documents may be adjusted by JSON patches before comparison, and
// settings can be loaded from a Profile.
//
// # Related Packages
//
//   - github.com/citrusframework/citrus-go/validate/parse - reads documents
//   - github.com/citrusframework/citrus-go/validate/matcher - matcher expressions
//   - github.com/citrusframework/citrus-go/validate/ir - the document tree and paths
package validate
