package matcher

import (
	"fmt"
	"strings"
	"unicode"
)

// Expression is a parsed matcher expression such as
// @startsWith('Hello')@. Args is nil for a bare @name@.
type Expression struct {
	Name string
	Args []string
}

// IsExpression reports whether s is written as a matcher expression: at
// least three characters, starting and ending with '@'. Whether it is a
// well formed one is up to ParseExpression.
func IsExpression(s string) bool {
	return len(s) >= 3 && s[0] == '@' && s[len(s)-1] == '@'
}

// ParseExpression parses
//
//	'@' name [ '(' [ arg { ',' arg } ] ')' ] '@'
//
// where an argument is single or double quoted, with backslash escaping the
// next character, or bare text without quotes, commas or parentheses.
// Whitespace around tokens is ignored and bare arguments are trimmed.
func ParseExpression(s string) (*Expression, error) {
	if !IsExpression(s) {
		return nil, fmt.Errorf("%w: %q is not of the form @name(args)@", ErrSyntax, s)
	}
	p := &exprParser{src: s, in: s[1 : len(s)-1]}
	return p.parse()
}

type exprParser struct {
	src string
	in  string
	i   int
}

func (p *exprParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d in %q", ErrSyntax, fmt.Sprintf(format, args...), p.i+1, p.src)
}

func (p *exprParser) parse() (*Expression, error) {
	p.skipSpace()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	res := &Expression{Name: name}
	p.skipSpace()
	if p.i == len(p.in) {
		return res, nil
	}
	if p.in[p.i] != '(' {
		return nil, p.errorf("unexpected %q after name", p.in[p.i])
	}
	p.i++
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	res.Args = args
	p.skipSpace()
	if p.i != len(p.in) {
		return nil, p.errorf("trailing text %q", p.in[p.i:])
	}
	return res, nil
}

func (p *exprParser) parseName() (string, error) {
	start := p.i
	for ; p.i < len(p.in); p.i++ {
		c := p.in[p.i]
		if nameStart(c) || p.i > start && (c == '-' || '0' <= c && c <= '9') {
			continue
		}
		break
	}
	if p.i == start {
		return "", p.errorf("missing matcher name")
	}
	return p.in[start:p.i], nil
}

func nameStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// parseArgs parses from just after '(' through the closing ')'.
func (p *exprParser) parseArgs() ([]string, error) {
	args := []string{}
	p.skipSpace()
	if p.i < len(p.in) && p.in[p.i] == ')' {
		p.i++
		return args, nil
	}
	for {
		p.skipSpace()
		if p.i == len(p.in) {
			return nil, p.errorf("unterminated argument list")
		}
		var (
			arg string
			err error
		)
		switch p.in[p.i] {
		case '\'', '"':
			arg, err = p.parseQuoted()
		default:
			arg, err = p.parseBare()
		}
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.i == len(p.in) {
			return nil, p.errorf("unterminated argument list")
		}
		switch p.in[p.i] {
		case ',':
			p.i++
		case ')':
			p.i++
			return args, nil
		default:
			return nil, p.errorf("unexpected %q after argument", p.in[p.i])
		}
	}
}

func (p *exprParser) parseQuoted() (string, error) {
	q := p.in[p.i]
	start := p.i
	p.i++
	buf := &strings.Builder{}
	for p.i < len(p.in) {
		c := p.in[p.i]
		switch c {
		case '\\':
			if p.i+1 == len(p.in) {
				p.i = start
				return "", p.errorf("unterminated quote")
			}
			buf.WriteByte(p.in[p.i+1])
			p.i += 2
			continue
		case q:
			p.i++
			return buf.String(), nil
		}
		buf.WriteByte(c)
		p.i++
	}
	p.i = start
	return "", p.errorf("unterminated quote")
}

func (p *exprParser) parseBare() (string, error) {
	start := p.i
	for p.i < len(p.in) {
		switch p.in[p.i] {
		case ',', ')':
			arg := strings.TrimSpace(p.in[start:p.i])
			if arg == "" {
				return "", p.errorf("empty argument")
			}
			return arg, nil
		case '(', '\'', '"':
			return "", p.errorf("unexpected %q in unquoted argument", p.in[p.i])
		}
		p.i++
	}
	return "", p.errorf("unterminated argument list")
}

func (p *exprParser) skipSpace() {
	for p.i < len(p.in) {
		r := rune(p.in[p.i])
		if r >= 0x80 || !unicode.IsSpace(r) {
			return
		}
		p.i++
	}
}

// String renders e in canonical form, single quoting every argument.
func (e *Expression) String() string {
	buf := &strings.Builder{}
	buf.WriteByte('@')
	buf.WriteString(e.Name)
	if e.Args != nil {
		buf.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\'')
			for j := 0; j < len(arg); j++ {
				if arg[j] == '\'' || arg[j] == '\\' {
					buf.WriteByte('\\')
				}
				buf.WriteByte(arg[j])
			}
			buf.WriteByte('\'')
		}
		buf.WriteByte(')')
	}
	buf.WriteByte('@')
	return buf.String()
}
