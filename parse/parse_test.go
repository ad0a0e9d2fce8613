package parse

import (
	"errors"
	"testing"

	"github.com/citrusframework/citrus-go/validate/encode"
	"github.com/citrusframework/citrus-go/validate/ir"

	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in   string
	want string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`, want: `null`},
		{in: `~`, want: `null`},
		{in: `true`, want: `true`},
		{in: `22`, want: `22`},
		{in: `1e14`, want: `"1e14"`},
		{in: `"hello"`, want: `hello`},
		{in: `hello`, want: `hello`},
		{in: "|\n  z\n", want: `"z\n"`},
		{in: "a: 1\nb: [x, 'y']\n", want: `{a: 1, b: [x, y]}`},
		{in: "z: 1\na: 2\nm: 3\n", want: `{z: 1, a: 2, m: 3}`},
		{in: "- a\n- {b: null}\n", want: `[a, {b: null}]`},
		{in: "1: one\ntrue: yes\n", want: `{"1": one, "true": "yes"}`},
		{in: "base: &b {x: 1}\nuse: *b\n", want: `{base: {x: 1}, use: {x: 1}}`},
		{in: `{"text": "Hello World!", "index": 5}`, want: `{text: Hello World!, index: 5}`},
		{in: "n: 18446744073709551615\n", want: `{n: 18446744073709551615}`},
	}
	for _, pt := range pts {
		node, err := ParseOne([]byte(pt.in))
		if err != nil {
			t.Errorf("# could not parse\n%s\n# error %v", pt.in, err)
			continue
		}
		if got := encode.MustString(node); got != pt.want {
			t.Errorf("parse %q: got %s want %s", pt.in, got, pt.want)
		}
	}
}

func TestParseMultiDocument(t *testing.T) {
	docs, err := Parse([]byte("a: 1\n---\n- 2\n---\nthree\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, len(docs))
	for i, doc := range docs {
		got[i] = encode.MustString(doc)
		if doc.Parent != nil {
			t.Errorf("document %d has a parent", i)
		}
	}
	if diff := cmp.Diff([]string{"{a: 1}", "[2]", "three"}, got); diff != "" {
		t.Errorf("documents (-want +got):\n%s", diff)
	}
	if _, err := ParseOne([]byte("a: 1\n---\nb: 2\n")); !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("ParseOne of two documents: %v", err)
	}
}

func TestParseBlank(t *testing.T) {
	for _, in := range []string{"", "   \n\t\n", "# just a comment\n  # another\n"} {
		docs, err := Parse([]byte(in))
		if err != nil || len(docs) != 0 {
			t.Errorf("Parse(%q) = %d documents, %v", in, len(docs), err)
		}
		node, err := ParseOne([]byte(in))
		if err != nil || node != nil {
			t.Errorf("ParseOne(%q) = %v, %v", in, node, err)
		}
	}
	docs, err := Parse([]byte(" "), ParseJSON())
	if err != nil || len(docs) != 0 {
		t.Errorf("blank json: %d documents, %v", len(docs), err)
	}
}

func TestParseJSON(t *testing.T) {
	docs, err := Parse([]byte(`{"b": [1, 2.5, "x"], "a": {"": null}}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents", len(docs))
	}
	if got, want := encode.MustString(docs[0]), `{b: [1, 2.5, x], a: {"": null}}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		opts []ParseOption
	}{
		{in: "a: [1"},
		{in: "a: b\na: c\n"},
		{in: `{"a": 1,}`, opts: []ParseOption{ParseJSON()}},
		{in: `{"a": 1} {"b": 2}`, opts: []ParseOption{ParseJSON()}},
		{in: "a: 1", opts: []ParseOption{ParseJSON()}},
	} {
		_, err := Parse([]byte(tc.in), tc.opts...)
		if !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("Parse(%q): expected ErrMalformedDocument, got %v", tc.in, err)
			continue
		}
		var mErr *MalformedDocumentError
		if !errors.As(err, &mErr) || mErr.Err == nil {
			t.Errorf("Parse(%q): no underlying diagnostic in %v", tc.in, err)
		}
	}
}

func TestFromValue(t *testing.T) {
	node, err := FromValue(map[string]any{
		"b": []any{int64(1), 2.5, "x", nil},
		"a": true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := encode.MustString(node), `{a: true, b: [1, 2.5, x, null]}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if node.Values[1].Values[0].Path() != "$.b[0]" {
		t.Errorf("parent links not set: %s", node.Values[1].Values[0].Path())
	}
	if _, err := FromValue(struct{}{}); err == nil {
		t.Error("expected an error for an unsupported value")
	}
	if _, err := FromValue(map[string]any{"x": ir.Null()}); err == nil {
		t.Error("expected an error for a nested unsupported value")
	}
}
