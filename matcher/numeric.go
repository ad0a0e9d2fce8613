package matcher

import (
	"github.com/citrusframework/citrus-go/validate/ir"
)

var (
	isNumberSym    = &kindSymbol{name: isNumberName, pred: isNumber}
	greaterThanSym = &compareSymbol{name: greaterThanName, want: 1}
	lowerThanSym   = &compareSymbol{name: lowerThanName, want: -1}
)

// IsNumber matches numbers and strings holding a decimal number.
func IsNumber() Symbol    { return isNumberSym }
func GreaterThan() Symbol { return greaterThanSym }
func LowerThan() Symbol   { return lowerThanSym }

const (
	isNumberName    name = "isNumber"
	greaterThanName name = "greaterThan"
	lowerThanName   name = "lowerThan"
)

func isNumber(v *ir.Node) bool {
	_, ok := v.Decimal()
	return ok
}

// compareSymbol compares the value numerically with its argument; want is
// the required sign of value - arg.
type compareSymbol struct {
	name
	want int
}

func (s compareSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 1, 1); err != nil {
		return nil, err
	}
	bound, ok := ir.ParseNumber(args[0])
	if !ok {
		return nil, argsError(s, "%q is not a number", args[0])
	}
	return &compareOp{op: op{name: s.name, args: args}, bound: bound, want: s.want}, nil
}

type compareOp struct {
	op
	bound ir.Decimal
	want  int
}

func (o compareOp) Match(v *ir.Node, _ *Context) (bool, error) {
	d, ok := v.Decimal()
	if !ok {
		return false, nil
	}
	return d.Cmp(o.bound) == o.want, nil
}
