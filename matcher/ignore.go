package matcher

import "github.com/citrusframework/citrus-go/validate/ir"

var ignoreSym = &ignoreSymbol{name: ignoreName}

// Ignore accepts any value. The validator treats @ignore@ and
// @ignore(...)@ as skipping the whole subtree before it gets here.
func Ignore() Symbol {
	return ignoreSym
}

const (
	ignoreName name = "ignore"
)

type ignoreSymbol struct {
	name
}

func (s ignoreSymbol) Instance(args []string) (Matcher, error) {
	return &ignoreOp{op: op{name: s.name, args: args}}, nil
}

type ignoreOp struct {
	op
}

func (ignoreOp) Match(*ir.Node, *Context) (bool, error) {
	return true, nil
}

// IsIgnore reports whether s is an ignore expression, @ignore@ or
// @ignore(...)@. Malformed expressions are not.
func IsIgnore(s string) bool {
	if !IsExpression(s) {
		return false
	}
	e, err := ParseExpression(s)
	return err == nil && e.Name == string(ignoreName)
}
