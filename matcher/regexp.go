package matcher

import (
	"regexp"

	"github.com/citrusframework/citrus-go/validate/ir"
)

var matchesSym = &matchesSymbol{name: matchesName}

// Matches tests the whole text of the value against a regular expression
// in RE2 syntax.
func Matches() Symbol {
	return matchesSym
}

const (
	matchesName name = "matches"
)

type matchesSymbol struct {
	name
}

func (s matchesSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 1, 1); err != nil {
		return nil, err
	}
	re, err := regexp.Compile(`^(?:` + args[0] + `)$`)
	if err != nil {
		return nil, argsError(s, "%v", err)
	}
	return &matchesOp{op: op{name: s.name, args: args}, re: re}, nil
}

type matchesOp struct {
	op
	re *regexp.Regexp
}

func (o matchesOp) Match(v *ir.Node, _ *Context) (bool, error) {
	return o.re.MatchString(Text(v)), nil
}
