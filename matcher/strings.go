package matcher

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/citrusframework/citrus-go/validate/ir"

	"golang.org/x/text/cases"
)

var (
	equalsIgnoreCaseSym = &textSymbol{name: equalsIgnoreCaseName, pred: func(v, arg string) bool {
		return fold(v) == fold(arg)
	}}
	containsIgnoreCaseSym = &textSymbol{name: containsIgnoreCaseName, pred: func(v, arg string) bool {
		return strings.Contains(fold(v), fold(arg))
	}}
	containsSym   = &textSymbol{name: containsName, pred: strings.Contains}
	startsWithSym = &textSymbol{name: startsWithName, pred: strings.HasPrefix}
	endsWithSym   = &textSymbol{name: endsWithName, pred: strings.HasSuffix}
	trimSym       = &textSymbol{name: trimName, pred: func(v, arg string) bool {
		return strings.TrimSpace(v) == strings.TrimSpace(arg)
	}}
	trimAllWhitespacesSym = &textSymbol{name: trimAllWhitespacesName, pred: func(v, arg string) bool {
		return dropSpace(v) == dropSpace(arg)
	}}
	ignoreNewLineSym = &textSymbol{name: ignoreNewLineName, pred: func(v, arg string) bool {
		return dropNewLines(v) == dropNewLines(arg)
	}}
)

func EqualsIgnoreCase() Symbol   { return equalsIgnoreCaseSym }
func ContainsIgnoreCase() Symbol { return containsIgnoreCaseSym }
func Contains() Symbol           { return containsSym }
func StartsWith() Symbol         { return startsWithSym }
func EndsWith() Symbol           { return endsWithSym }

// Trim compares after removing leading and trailing whitespace.
func Trim() Symbol { return trimSym }

// TrimAllWhitespaces compares after removing all whitespace.
func TrimAllWhitespaces() Symbol { return trimAllWhitespacesSym }

// IgnoreNewLine compares after removing line breaks.
func IgnoreNewLine() Symbol { return ignoreNewLineSym }

const (
	equalsIgnoreCaseName   name = "equalsIgnoreCase"
	containsIgnoreCaseName name = "containsIgnoreCase"
	containsName           name = "contains"
	startsWithName         name = "startsWith"
	endsWithName           name = "endsWith"
	trimName               name = "trim"
	trimAllWhitespacesName name = "trimAllWhitespaces"
	ignoreNewLineName      name = "ignoreNewLine"
)

// fold applies Unicode case folding. A Caser keeps state, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

func dropSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func dropNewLines(s string) string {
	return strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
}

// textSymbol compares the text of the value with its single argument.
type textSymbol struct {
	name
	pred func(v, arg string) bool
}

func (s textSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 1, 1); err != nil {
		return nil, err
	}
	return &textOp{op: op{name: s.name, args: args}, pred: s.pred}, nil
}

type textOp struct {
	op
	pred func(v, arg string) bool
}

func (o textOp) Match(v *ir.Node, _ *Context) (bool, error) {
	return o.pred(Text(v), o.args[0]), nil
}

var (
	hasLengthSym    = &lengthSymbol{name: hasLengthName}
	stringLengthSym = &lengthSymbol{name: stringLengthName}
)

// HasLength matches strings with the given number of characters and
// arrays or objects with the given number of entries.
func HasLength() Symbol    { return hasLengthSym }
func StringLength() Symbol { return stringLengthSym }

const (
	hasLengthName    name = "hasLength"
	stringLengthName name = "stringLength"
)

type lengthSymbol struct {
	name
}

func (s lengthSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 1, 1); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || n < 0 {
		return nil, argsError(s, "length %q is not a non-negative integer", args[0])
	}
	return &lengthOp{op: op{name: s.name, args: args}, n: n}, nil
}

type lengthOp struct {
	op
	n int
}

func (o lengthOp) Match(v *ir.Node, _ *Context) (bool, error) {
	switch v.Type {
	case ir.ArrayType, ir.ObjectType:
		return len(v.Values) == o.n, nil
	case ir.NullType:
		return false, nil
	default:
		return utf8.RuneCountInString(v.Text()) == o.n, nil
	}
}
