package matcher

import (
	"github.com/citrusframework/citrus-go/validate/encode"
	"github.com/citrusframework/citrus-go/validate/ir"
)

// Symbol is a named matcher factory. Instance checks the arguments given in
// an expression and returns the predicate they configure.
type Symbol interface {
	Name
	Instance(args []string) (Matcher, error)
}

type Name interface {
	String() string
}

// Matcher is a leaf predicate. A false result is a negative verdict; an
// error is reserved for failures unrelated to the value, such as a missing
// context.
type Matcher interface {
	Match(value *ir.Node, ctx *Context) (bool, error)
	String() string
}

type name string

func (s name) String() string {
	return string(s)
}

type op struct {
	name name
	args []string
}

func (o op) String() string {
	return (&Expression{Name: string(o.name), Args: o.args}).String()
}

func checkArgs(n Name, args []string, lo, hi int) error {
	switch {
	case lo == hi && len(args) != lo:
		return argsError(n, "expected %d arguments, got %d", lo, len(args))
	case len(args) < lo:
		return argsError(n, "expected at least %d arguments, got %d", lo, len(args))
	case hi >= 0 && len(args) > hi:
		return argsError(n, "expected at most %d arguments, got %d", hi, len(args))
	}
	return nil
}

// Text is the string form of a value that matchers compare against. Leaves
// give their scalar text and containers their flow rendering.
func Text(value *ir.Node) string {
	if value == nil {
		return ""
	}
	if value.Type.IsLeaf() {
		return value.Text()
	}
	return encode.Text(value)
}
