package matcher

import (
	"github.com/citrusframework/citrus-go/validate/debug"
	"github.com/citrusframework/citrus-go/validate/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var exprSym = &exprSymbol{name: exprName}

// Expr evaluates a boolean expr-lang expression. The expression sees the
// value as plain Go data in 'value', its text in 'text' and the context
// variables in 'vars':
//
//	@expr('value > 3 && value < 10')@
//	@expr('text == vars.orderId')@
//
// An expression that fails at run time, for instance by comparing a
// string with a number, does not match.
func Expr() Symbol {
	return exprSym
}

const (
	exprName name = "expr"
)

type exprEnv struct {
	Value any            `expr:"value"`
	Text  string         `expr:"text"`
	Vars  map[string]any `expr:"vars"`
}

type exprSymbol struct {
	name
}

func (s exprSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 1, 1); err != nil {
		return nil, err
	}
	prg, err := expr.Compile(args[0], exprOpts()...)
	if err != nil {
		return nil, argsError(s, "%v", err)
	}
	return &exprOp{op: op{name: s.name, args: args}, prg: prg}, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(exprEnv{}),
		expr.AsBool(),
		expr.Function("isNull", func(params ...any) (any, error) {
			return params[0] == nil, nil
		},
			new(func(any) bool)),
	}
}

type exprOp struct {
	op
	prg *vm.Program
}

func (o exprOp) Match(v *ir.Node, ctx *Context) (bool, error) {
	env := exprEnv{
		Value: ir.ToAny(v),
		Text:  Text(v),
		Vars:  map[string]any{},
	}
	for k, x := range ctx.Vars() {
		env.Vars[k] = ir.ToAny(x)
	}
	res, err := expr.Run(o.prg, env)
	if err != nil {
		if debug.Matcher() {
			debug.Logf("%s on %v: %v\n", o, v, err)
		}
		return false, nil
	}
	b, _ := res.(bool)
	return b, nil
}
