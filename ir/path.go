package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// fields containing any of these, or whitespace, or consisting only of
// digits are rendered in bracket notation.
const specialFieldChars = `'".*$[]\`

// Segment is one concrete step from a container to one of its children.
type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

func FieldSegment(f string) Segment {
	return Segment{Field: f}
}

func IndexSegment(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return fieldString(s.Field)
}

// FormatPath renders segments as a path rooted at '$'.
func FormatPath(segs []Segment) string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, s := range segs {
		buf.WriteString(s.String())
	}
	return buf.String()
}

func fieldString(f string) string {
	if plainField(f) {
		return "." + f
	}
	return "['" + escapeField(f) + "']"
}

func plainField(f string) bool {
	if f == "" {
		return false
	}
	digits := true
	for _, r := range f {
		if r < '0' || r > '9' {
			digits = false
		}
		if unicode.IsSpace(r) || strings.ContainsRune(specialFieldChars, r) {
			return false
		}
	}
	return !digits
}

func escapeField(f string) string {
	f = strings.ReplaceAll(f, `\`, `\\`)
	return strings.ReplaceAll(f, "'", `\'`)
}

func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + fieldString(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// Segments returns the steps leading from the root to y.
func (y *Node) Segments() []Segment {
	var res []Segment
	for x := y; x.Parent != nil; x = x.Parent {
		switch x.Parent.Type {
		case ObjectType:
			res = append(res, FieldSegment(x.ParentField))
		case ArrayType:
			res = append(res, IndexSegment(x.ParentIndex))
		default:
			panic("parent but not in container")
		}
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

// Path is a parsed path expression. Besides concrete fields and indices it
// may contain wildcards: IndexAll ([*]), FieldAll (.*) and Subtree (..),
// which matches any number of steps.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	FieldAll bool
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	afterSubtree := false
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
			afterSubtree = true
			continue
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		case x.FieldAll:
			if !afterSubtree {
				buf.WriteByte('.')
			}
			buf.WriteByte('*')
		case x.Field != nil:
			f := fieldString(*x.Field)
			if afterSubtree && f[0] == '.' {
				f = f[1:]
			}
			buf.WriteString(f)
		}
		afterSubtree = false
	}
	return buf.String()
}

// Match reports whether the concrete path given by segs is selected by p.
func (p *Path) Match(segs []Segment) bool {
	if p == nil {
		return len(segs) == 0
	}
	if p.Subtree {
		for k := 0; k <= len(segs); k++ {
			if p.Next.Match(segs[k:]) {
				return true
			}
		}
		return false
	}
	if !p.selects() {
		return p.Next.Match(segs)
	}
	if len(segs) == 0 {
		return false
	}
	s := segs[0]
	switch {
	case p.IndexAll:
		if !s.IsIndex {
			return false
		}
	case p.Index != nil:
		if !s.IsIndex || s.Index != *p.Index {
			return false
		}
	case p.FieldAll:
		if s.IsIndex {
			return false
		}
	case p.Field != nil:
		if s.IsIndex || s.Field != *p.Field {
			return false
		}
	}
	return p.Next.Match(segs[1:])
}

func (p *Path) selects() bool {
	return p.IndexAll || p.Index != nil || p.FieldAll || p.Field != nil
}

// Select returns y and all its descendants whose path is matched by p, in
// document order.
func (y *Node) Select(p *Path) []*Node {
	var res []*Node
	_ = y.Visit(func(node *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if p.Match(node.Segments()) {
			res = append(res, node)
		}
		return true, nil
	})
	return res
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, cur *Path) error {
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			cur.Subtree = true
			rest := frag[2:]
			if len(rest) == 0 {
				return fmt.Errorf("expected segment after '..'")
			}
			next := &Path{}
			cur.Next = next
			switch rest[0] {
			case '[':
				return parseBracket(rest[1:], next)
			case '.':
				return fmt.Errorf("unexpected '.' after '..'")
			}
			return parseFieldFrag(rest, next)
		}
		if len(frag) == 1 {
			return fmt.Errorf("expected field at end of string")
		}
		return parseFieldFrag(frag[1:], cur)
	case '[':
		return parseBracket(frag[1:], cur)
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseFieldFrag(frag string, cur *Path) error {
	if frag[0] == '*' && (len(frag) == 1 || frag[1] == '.' || frag[1] == '[') {
		cur.FieldAll = true
		return parseNext(frag[1:], cur)
	}
	field, rest, err := parseField(frag)
	if err != nil {
		return err
	}
	cur.Field = &field
	return parseNext(rest, cur)
}

func parseBracket(frag string, cur *Path) error {
	if len(frag) == 0 {
		return fmt.Errorf("expected '[' <index> ']'")
	}
	if frag[0] == '\'' || frag[0] == '"' {
		field, rest, err := parseQuoted(frag)
		if err != nil {
			return err
		}
		if len(rest) == 0 || rest[0] != ']' {
			return fmt.Errorf("expected ']' after quoted field")
		}
		cur.Field = &field
		return parseNext(rest[1:], cur)
	}
	i := strings.IndexByte(frag, ']')
	if i == -1 {
		return fmt.Errorf("expected '[' <index> ']'")
	}
	index, all, err := parseIndex(frag[:i])
	if err != nil {
		return err
	}
	cur.IndexAll = all
	if !all {
		cur.Index = &index
	}
	return parseNext(frag[i+1:], cur)
}

func parseNext(rest string, cur *Path) error {
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	cur.Next = next
	return parseFrag(rest, next)
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, fmt.Errorf("bad index %q", is)
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if frag[0] == '\'' || frag[0] == '"' {
		return parseQuoted(frag)
	}
	i := strings.IndexAny(frag, ".[")
	if i == 0 {
		return "", "", fmt.Errorf("empty field")
	}
	if i == -1 {
		return frag, "", nil
	}
	return frag[:i], frag[i:], nil
}

// parseQuoted reads a string quoted with frag[0], where a backslash escapes
// the following byte.
func parseQuoted(frag string) (field, rest string, err error) {
	q := frag[0]
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case escaped:
			escaped = false
			res = append(res, c)
		case c == '\\':
			escaped = true
		case c == q:
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for %q", q)
}
