package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func greetingsDoc() *Node {
	return FromKeyVals([]KeyVal{
		{Key: "greetings", Val: FromSlice([]*Node{
			FromString("hi"),
			FromString("hello"),
			FromKeyVals([]KeyVal{{Key: "text", Val: FromString("Hello World!")}}),
		})},
		{Key: "a.b", Val: FromInt(1)},
		{Key: "123", Val: FromInt(2)},
		{Key: "", Val: FromInt(3)},
		{Key: "it's", Val: FromInt(4)},
		{Key: "with space", Val: Null()},
	})
}

func TestNodePath(t *testing.T) {
	doc := greetingsDoc()
	got := []string{doc.Path()}
	_ = doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost || y.Parent == nil {
			return true, nil
		}
		got = append(got, y.Path())
		return true, nil
	})
	want := []string{
		"$",
		"$.greetings",
		"$.greetings[0]",
		"$.greetings[1]",
		"$.greetings[2]",
		"$.greetings[2].text",
		"$['a.b']",
		"$['123']",
		"$['']",
		`$['it\'s']`,
		"$['with space']",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
}

func TestNodeSegments(t *testing.T) {
	doc := greetingsDoc()
	text := Get(doc, "greetings").Values[2].Values[0]
	segs := text.Segments()
	want := []Segment{FieldSegment("greetings"), IndexSegment(2), FieldSegment("text")}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segments (-want +got):\n%s", diff)
	}
	if got := FormatPath(segs); got != text.Path() {
		t.Errorf("FormatPath %q != Path %q", got, text.Path())
	}
}

var parsePathTests = []struct {
	in   string
	want string
}{
	{in: "$", want: "$"},
	{in: "$.f", want: "$.f"},
	{in: "$[0]", want: "$[0]"},
	{in: "$[1].f", want: "$[1].f"},
	{in: "$.'f[3]'[2]", want: "$['f[3]'][2]"},
	{in: `$.'$f[\'3]'[2]`, want: `$['$f[\'3]'][2]`},
	{in: `$['a.b'].c`, want: `$['a.b'].c`},
	{in: `$["a b"]`, want: `$['a b']`},
	{in: `$['plain']`, want: `$.plain`},
	{in: `$['12']`, want: `$['12']`},
	{in: "$.greetings[*].text", want: "$.greetings[*].text"},
	{in: "$.meta.*", want: "$.meta.*"},
	{in: "$..id", want: "$..id"},
	{in: "$.a..b[0]", want: "$.a..b[0]"},
	{in: "$..[1]", want: "$..[1]"},
	{in: "$..*", want: "$..*"},
	{in: `$..['x.y']`, want: `$..['x.y']`},
	{in: `$['*']`, want: `$['*']`},
}

func TestParsePath(t *testing.T) {
	for _, tt := range parsePathTests {
		p, err := ParsePath(tt.in)
		if err != nil {
			t.Errorf("ParsePath(%q): %v", tt.in, err)
			continue
		}
		if got := p.String(); got != tt.want {
			t.Errorf("ParsePath(%q).String() = %q, want %q", tt.in, got, tt.want)
			continue
		}
		again, err := ParsePath(tt.want)
		if err != nil {
			t.Errorf("reparse %q: %v", tt.want, err)
			continue
		}
		if again.String() != tt.want {
			t.Errorf("reparse %q gave %q", tt.want, again.String())
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"a.b",
		"$.",
		"$..",
		"$...a",
		"$[",
		"$[x]",
		"$[-1]",
		"$['a'",
		"$['a']x",
		"$.a[0",
		"$x",
	} {
		_, err := ParsePath(in)
		if err == nil {
			t.Errorf("ParsePath(%q): expected error", in)
			continue
		}
		if !errors.Is(err, ErrPath) {
			t.Errorf("ParsePath(%q): error %v does not wrap ErrPath", in, err)
		}
	}
}

func TestPathMatch(t *testing.T) {
	segs := func(ss ...any) []Segment {
		var res []Segment
		for _, s := range ss {
			switch x := s.(type) {
			case string:
				res = append(res, FieldSegment(x))
			case int:
				res = append(res, IndexSegment(x))
			}
		}
		return res
	}
	tests := []struct {
		expr string
		path []Segment
		want bool
	}{
		{"$", nil, true},
		{"$", segs("a"), false},
		{"$.a", segs("a"), true},
		{"$.a", segs("a", "b"), false},
		{"$.a", segs("b"), false},
		{"$['a']", segs("a"), true},
		{"$[0]", segs(0), true},
		{"$[0]", segs("0"), false},
		{"$['0']", segs("0"), true},
		{"$.greetings[2].text", segs("greetings", 2, "text"), true},
		{"$.greetings[*].text", segs("greetings", 7, "text"), true},
		{"$.greetings[*].text", segs("greetings", "x", "text"), false},
		{"$.meta.*", segs("meta", "anything"), true},
		{"$.meta.*", segs("meta", 0), false},
		{"$..id", segs("id"), true},
		{"$..id", segs("a", 3, "b", "id"), true},
		{"$..id", segs("a", "id", "x"), false},
		{"$.a..id", segs("a", "id"), true},
		{"$.a..id", segs("b", "id"), false},
		{"$..*", segs("a", 1, "b"), true},
		{"$..[*]", segs("a", 1), true},
		{"$..[*]", segs("a"), false},
		{"$['*']", segs("a"), false},
		{"$['*']", segs("*"), true},
	}
	for _, tt := range tests {
		p, err := ParsePath(tt.expr)
		if err != nil {
			t.Errorf("ParsePath(%q): %v", tt.expr, err)
			continue
		}
		if got := p.Match(tt.path); got != tt.want {
			t.Errorf("%s matching %s: got %t want %t", tt.expr, FormatPath(tt.path), got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	doc := greetingsDoc()
	p, err := ParsePath("$.greetings[*]")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, n := range doc.Select(p) {
		got = append(got, n.Path())
	}
	want := []string{"$.greetings[0]", "$.greetings[1]", "$.greetings[2]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("select (-want +got):\n%s", diff)
	}
}
