package validate

import (
	"errors"
	"testing"

	"github.com/citrusframework/citrus-go/validate/ir"
)

var reflexiveDocs = []string{
	`null`,
	`"Hello World!"`,
	`[]`,
	`{}`,
	`{text: "Hello World!", index: 5, id: "x123456789x"}`,
	`[1, 1, 2, [3, 3], {a: [1, 1]}]`,
	`{greetings: [{text: "Hello World!", index: 5}, {text: "Good Bye!", index: 1}], "a.b": {"": null, "123": [true, false]}}`,
	"a:\n  - b: &x {c: 1.5}\n  - *x\n",
}

func TestReflexivity(t *testing.T) {
	for _, doc := range reflexiveDocs {
		tree := mustParse(t, doc)
		for _, strict := range []bool{false, true} {
			if err := Validate(tree, tree.Clone(), Strict(strict)); err != nil {
				t.Errorf("%s (strict=%t): %v", doc, strict, err)
			}
		}
	}
}

// replaceAt returns a copy of root with the node at segs replaced by repl.
func replaceAt(root *ir.Node, segs []ir.Segment, repl *ir.Node) *ir.Node {
	if len(segs) == 0 {
		return repl
	}
	res := root.Clone()
	parent := res
	for _, s := range segs[:len(segs)-1] {
		parent = child(parent, s)
	}
	last := segs[len(segs)-1]
	i := last.Index
	if !last.IsIndex {
		for j, f := range parent.Fields {
			if f.String == last.Field {
				i = j
			}
		}
	}
	repl.Parent = parent
	repl.ParentIndex = i
	repl.ParentField = last.Field
	parent.Values[i] = repl
	return res
}

func child(node *ir.Node, s ir.Segment) *ir.Node {
	if s.IsIndex {
		return node.Values[s.Index]
	}
	return ir.Get(node, s.Field)
}

func allSegments(root *ir.Node) [][]ir.Segment {
	var res [][]ir.Segment
	_ = root.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if !isPost {
			res = append(res, y.Segments())
		}
		return true, nil
	})
	return res
}

func TestIgnoreTransparency(t *testing.T) {
	tree := mustParse(t, `{text: "Hello World!", index: 5, nested: {flag: true, list: [{a: 1}, {a: 2}]}}`)
	changed := func() *ir.Node {
		return ir.FromSlice([]*ir.Node{ir.FromString("changed")})
	}
	for _, segs := range allSegments(tree) {
		path := ir.FormatPath(segs)
		actual := replaceAt(tree, segs, changed())
		expected := replaceAt(tree, segs, ir.FromString("@ignore@"))
		for _, strict := range []bool{false, true} {
			if err := Validate(actual, expected, Strict(strict)); err != nil {
				t.Errorf("marker at %s (strict=%t): %v", path, strict, err)
			}
			if err := Validate(actual, tree, Strict(strict), IgnorePaths(path)); err != nil {
				t.Errorf("ignore path %s (strict=%t): %v", path, strict, err)
			}
		}
		if len(segs) > 0 {
			if err := Validate(actual, tree); err == nil {
				t.Errorf("change at %s not detected without ignore", path)
			}
		}
	}
}

func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var res [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			q := make([]int, 0, n)
			q = append(q, p[:i]...)
			q = append(q, n-1)
			q = append(q, p[i:]...)
			res = append(res, q)
		}
	}
	return res
}

func TestMultisetEquivalence(t *testing.T) {
	list := mustParse(t, `[1, "two", {a: 3}, [4, 5], 1]`)
	for _, perm := range permutations(len(list.Values)) {
		vals := make([]*ir.Node, len(perm))
		for i, j := range perm {
			vals[i] = list.Values[j].Clone()
		}
		permuted := ir.FromSlice(vals)
		for _, strict := range []bool{false, true} {
			if err := Validate(permuted, list, Strict(strict)); err != nil {
				t.Errorf("permutation %v (strict=%t): %v", perm, strict, err)
			}
		}
	}

	oneLess := mustParse(t, `[1, "two", {a: 3}, [4, 5]]`)
	if err := Validate(oneLess, list, Strict(true)); !errors.Is(err, ErrEntryCountMismatch) {
		t.Errorf("strict with a duplicate removed: %v", err)
	}
	if err := Validate(oneLess, list); !errors.Is(err, ErrMissingItem) {
		t.Errorf("non-strict, expected not contained in actual: %v", err)
	}
	if err := Validate(list, oneLess); err != nil {
		t.Errorf("non-strict, expected contained in actual: %v", err)
	}
	if err := Validate(list, oneLess, Strict(true)); !errors.Is(err, ErrEntryCountMismatch) {
		t.Errorf("strict, expected contained in actual: %v", err)
	}
}

func TestStrictKeySetExactness(t *testing.T) {
	actual := mustParse(t, "a: 1\nb: 2\nextra: 3")
	expected := mustParse(t, "a: 1\nb: 2")
	if err := Validate(actual, expected); err != nil {
		t.Errorf("non-strict: %v", err)
	}
	if err := Validate(actual, expected, Strict(true)); !errors.Is(err, ErrEntryCountMismatch) {
		t.Errorf("strict: %v", err)
	}
}
