package matcher

import (
	"path/filepath"

	"github.com/citrusframework/citrus-go/validate/debug"
	"github.com/citrusframework/citrus-go/validate/ir"
)

var globSym = &globSymbol{name: globName}

// Glob matches string values against a shell pattern as understood by
// path/filepath.Match.
func Glob() Symbol {
	return globSym
}

const (
	globName name = "glob"
)

type globSymbol struct {
	name
}

func (s globSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 1, 1); err != nil {
		return nil, err
	}
	if _, err := filepath.Match(args[0], ""); err != nil {
		return nil, argsError(s, "%q: %v", args[0], err)
	}
	return &globOp{op: op{name: s.name, args: args}}, nil
}

type globOp struct {
	op
}

func (g globOp) Match(v *ir.Node, _ *Context) (bool, error) {
	if debug.Matcher() {
		debug.Logf("glob %q called on %v\n", g.args[0], v)
	}
	if v.Type != ir.StringType {
		return false, nil
	}
	m, err := filepath.Match(g.args[0], v.String)
	if err != nil {
		return false, err
	}
	return m, nil
}
