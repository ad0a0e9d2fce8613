package validate

import "github.com/citrusframework/citrus-go/validate/ir"

// Item is one step of a validation: an expected node, the actual node it
// is compared with, and how it was reached. Parent is nil at the document
// root.
type Item struct {
	Field    string
	Index    int
	IsIndex  bool
	Actual   *ir.Node
	Expected *ir.Node
	Parent   *Item
}

func (it *Item) field(name string, actual, expected *ir.Node) *Item {
	return &Item{Field: name, Actual: actual, Expected: expected, Parent: it}
}

// index is the child for the expected element i, whatever the position
// of the actual element it is compared with.
func (it *Item) index(i int, actual, expected *ir.Node) *Item {
	return &Item{Index: i, IsIndex: true, Actual: actual, Expected: expected, Parent: it}
}

// Segments returns the steps from the document root to it.
func (it *Item) Segments() []ir.Segment {
	var res []ir.Segment
	for x := it; x.Parent != nil; x = x.Parent {
		if x.IsIndex {
			res = append(res, ir.IndexSegment(x.Index))
		} else {
			res = append(res, ir.FieldSegment(x.Field))
		}
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

func (it *Item) Path() string {
	return ir.FormatPath(it.Segments())
}
