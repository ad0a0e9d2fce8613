package matcher

import (
	"fmt"
	"strings"

	"github.com/citrusframework/citrus-go/validate/debug"
	"github.com/citrusframework/citrus-go/validate/ir"
)

var variableSym = &variableSymbol{name: variableName}

// Variable accepts any value and stores it in the context under the name
// given as argument: @variable('orderId')@.
func Variable() Symbol {
	return variableSym
}

const (
	variableName name = "variable"
)

type variableSymbol struct {
	name
}

func (s variableSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 1, 1); err != nil {
		return nil, err
	}
	if strings.TrimSpace(args[0]) == "" {
		return nil, argsError(s, "empty variable name")
	}
	return &variableOp{op: op{name: s.name, args: args}}, nil
}

type variableOp struct {
	op
}

func (o variableOp) Match(v *ir.Node, ctx *Context) (bool, error) {
	if ctx == nil {
		return false, fmt.Errorf("%s: no context to store variable %q", o, o.args[0])
	}
	if debug.Matcher() {
		debug.Logf("variable %s = %v\n", o.args[0], v)
	}
	ctx.Set(o.args[0], v)
	return true, nil
}
