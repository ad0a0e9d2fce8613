package matcher

import "github.com/citrusframework/citrus-go/validate/ir"

var (
	isNullSym   = &kindSymbol{name: isNullName, pred: isNull}
	nullSym     = &kindSymbol{name: nullName, pred: isNull}
	notNullSym  = &kindSymbol{name: notNullName, pred: func(v *ir.Node) bool { return !isNull(v) }}
	emptySym    = &kindSymbol{name: emptyName, pred: ir.Empty}
	notEmptySym = &kindSymbol{name: notEmptyName, pred: func(v *ir.Node) bool { return !ir.Empty(v) }}
)

// IsNull matches null and the string "null".
func IsNull() Symbol   { return isNullSym }
func Null() Symbol     { return nullSym }
func NotNull() Symbol  { return notNullSym }
func Empty() Symbol    { return emptySym }
func NotEmpty() Symbol { return notEmptySym }

const (
	isNullName   name = "isNull"
	nullName     name = "null"
	notNullName  name = "notNull"
	emptyName    name = "empty"
	notEmptyName name = "notEmpty"
)

func isNull(v *ir.Node) bool {
	return v.Type == ir.NullType || v.Type == ir.StringType && v.String == "null"
}

// kindSymbol is an argument-less predicate on the value itself.
type kindSymbol struct {
	name
	pred func(*ir.Node) bool
}

func (s kindSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 0, 0); err != nil {
		return nil, err
	}
	return &kindOp{op: op{name: s.name, args: args}, pred: s.pred}, nil
}

type kindOp struct {
	op
	pred func(*ir.Node) bool
}

func (o kindOp) Match(v *ir.Node, _ *Context) (bool, error) {
	return o.pred(v), nil
}
