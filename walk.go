package validate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/citrusframework/citrus-go/validate/debug"
	"github.com/citrusframework/citrus-go/validate/encode"
	"github.com/citrusframework/citrus-go/validate/ir"
	"github.com/citrusframework/citrus-go/validate/matcher"
)

// walk is the state of one validation call.
type walk struct {
	v   *Validator
	ctx *matcher.Context
}

func (w *walk) validate(it *Item) error {
	if w.ignored(it) {
		if debug.Validate() {
			debug.Logf("ignore %s\n", it.Path())
		}
		return nil
	}
	if debug.Validate() {
		debug.Logf("validate %s: %v against %v\n", it.Path(), it.Actual, it.Expected)
	}
	switch it.Expected.Type {
	case ir.ObjectType:
		return w.validateObject(it)
	case ir.ArrayType:
		return w.validateArray(it)
	default:
		return w.validateScalar(it)
	}
}

func (w *walk) ignored(it *Item) bool {
	exp := it.Expected
	if exp.Type == ir.StringType && matcher.IsIgnore(exp.String) {
		return true
	}
	if len(w.v.ignore) == 0 {
		return false
	}
	segs := it.Segments()
	for _, p := range w.v.ignore {
		if p.Match(segs) {
			return true
		}
	}
	return false
}

func (w *walk) validateScalar(it *Item) error {
	act, exp := it.Actual, it.Expected
	if exp.Type == ir.StringType && matcher.IsExpression(exp.String) {
		m, err := w.v.compile(exp.String)
		if err != nil {
			return fmt.Errorf("%s: %w", it.Path(), err)
		}
		ok, err := m.Match(act, w.ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", it.Path(), err)
		}
		if !ok {
			return &ValidationError{
				Kind:     ErrMatcherFailure,
				Path:     it.Path(),
				Expected: exp.String,
				Actual:   encode.Text(act),
				Matcher:  m.String(),
			}
		}
		return nil
	}
	if !act.Type.IsLeaf() {
		return typeMismatch(it)
	}
	if !scalarEqual(act, exp) {
		return &ValidationError{
			Kind:     ErrValueMismatch,
			Path:     it.Path(),
			Expected: exp.Text(),
			Actual:   act.Text(),
		}
	}
	return nil
}

// scalarEqual compares leaves. Null only equals null; two values that read
// as numbers compare by value; anything else compares by text.
func scalarEqual(act, exp *ir.Node) bool {
	if (act.Type == ir.NullType) != (exp.Type == ir.NullType) {
		return false
	}
	if exp.Type == ir.NullType {
		return true
	}
	if a, ok := act.Decimal(); ok {
		if e, ok := exp.Decimal(); ok {
			return a.Cmp(e) == 0
		}
	}
	return act.Text() == exp.Text()
}

func typeMismatch(it *Item) error {
	return &ValidationError{
		Kind:     ErrTypeMismatch,
		Path:     it.Path(),
		Expected: it.Expected.Type.String(),
		Actual:   it.Actual.Type.String(),
	}
}

func (w *walk) validateObject(it *Item) error {
	act, exp := it.Actual, it.Expected
	if act.Type != ir.ObjectType {
		return typeMismatch(it)
	}
	if w.v.strict {
		aKeys, eKeys := act.Keys(), exp.Keys()
		if !sameKeys(aKeys, eKeys) {
			return &ValidationError{
				Kind:     ErrEntryCountMismatch,
				Path:     it.Path(),
				Expected: keyList(eKeys),
				Actual:   keyList(aKeys),
				Detail:   fmt.Sprintf("expected %d keys, got %d", len(eKeys), len(aKeys)),
			}
		}
	}
	for i, f := range exp.Fields {
		child := it.field(f.String, ir.Get(act, f.String), exp.Values[i])
		if child.Actual == nil {
			return &ValidationError{
				Kind:     ErrMissingEntry,
				Path:     child.Path(),
				Expected: encode.Text(child.Expected),
				Actual:   encode.Text(act),
				Detail:   fmt.Sprintf("no key '%s'", f.String),
			}
		}
		if err := w.validate(child); err != nil {
			return err
		}
	}
	return nil
}

func sameKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = slices.Sorted(slices.Values(a)), slices.Sorted(slices.Values(b))
	return slices.Equal(a, b)
}

func keyList(keys []string) string {
	vals := make([]*ir.Node, len(keys))
	for i, k := range keys {
		vals[i] = ir.FromString(k)
	}
	return encode.Text(ir.FromSlice(vals))
}

// validateArray checks that every expected element is matched by a distinct
// actual element, in any order. Expected elements are taken in order and
// each one consumes the first unconsumed actual element it validates
// against.
func (w *walk) validateArray(it *Item) error {
	act, exp := it.Actual, it.Expected
	if act.Type != ir.ArrayType {
		return typeMismatch(it)
	}
	if w.v.strict && len(act.Values) != len(exp.Values) {
		return &ValidationError{
			Kind:     ErrEntryCountMismatch,
			Path:     it.Path(),
			Expected: encode.Text(exp),
			Actual:   encode.Text(act),
			Detail:   fmt.Sprintf("expected %d elements, got %d", len(exp.Values), len(act.Values)),
		}
	}
	consumed := make([]bool, len(act.Values))
	for i, e := range exp.Values {
		found, err := w.findItem(it, i, e, consumed)
		if err != nil {
			return err
		}
		if found < 0 {
			return &ValidationError{
				Kind:     ErrMissingItem,
				Path:     it.Path(),
				Expected: encode.Text(e),
				Actual:   encode.Text(act),
				Detail:   fmt.Sprintf("no element matches expected element [%d]", i),
			}
		}
		consumed[found] = true
	}
	if w.v.strict {
		if n := countFalse(consumed); n != 0 {
			return &ValidationError{
				Kind:     ErrEntryCountMismatch,
				Path:     it.Path(),
				Expected: encode.Text(exp),
				Actual:   encode.Text(act),
				Detail:   fmt.Sprintf("%d elements not matched", n),
			}
		}
	}
	return nil
}

// findItem returns the index of the first unconsumed actual element that
// validates against the expected element i, or -1. Each attempt runs on a
// copy of the context, kept only if the attempt succeeds. Mismatches are
// part of the search; any other error ends it.
func (w *walk) findItem(it *Item, i int, e *ir.Node, consumed []bool) (int, error) {
	for j, a := range it.Actual.Values {
		if consumed[j] {
			continue
		}
		attempt := &walk{v: w.v, ctx: w.ctx.Clone()}
		err := attempt.validate(it.index(i, a, e))
		if err == nil {
			w.ctx.Merge(attempt.ctx)
			return j, nil
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			return -1, err
		}
		if debug.Validate() {
			debug.Logf("%s: actual element [%d] does not match: %v\n", it.Path(), j, err)
		}
	}
	return -1, nil
}

func countFalse(bs []bool) int {
	n := 0
	for _, b := range bs {
		if !b {
			n++
		}
	}
	return n
}
