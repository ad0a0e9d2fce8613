package validate

import (
	"testing"

	"github.com/citrusframework/citrus-go/validate/ir"

	"github.com/google/go-cmp/cmp"
)

func TestItemPath(t *testing.T) {
	root := &Item{}
	greetings := root.field("greetings", nil, nil)
	elt := greetings.index(2, nil, nil)
	text := elt.field("text", nil, nil)
	odd := text.field("it's a.b", nil, nil)
	digits := root.field("123", nil, nil)

	for _, tc := range []struct {
		item *Item
		want string
	}{
		{root, "$"},
		{greetings, "$.greetings"},
		{elt, "$.greetings[2]"},
		{text, "$.greetings[2].text"},
		{odd, `$.greetings[2].text['it\'s a.b']`},
		{digits, "$['123']"},
	} {
		if got := tc.item.Path(); got != tc.want {
			t.Errorf("got %s want %s", got, tc.want)
		}
	}
	want := []ir.Segment{ir.FieldSegment("greetings"), ir.IndexSegment(2), ir.FieldSegment("text")}
	if diff := cmp.Diff(want, text.Segments()); diff != "" {
		t.Errorf("segments (-want +got):\n%s", diff)
	}
}

func TestItemPathParses(t *testing.T) {
	odd := (&Item{}).field("it's a.b", nil, nil).index(0, nil, nil)
	p, err := ir.ParsePath(odd.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !p.Match(odd.Segments()) {
		t.Errorf("%s does not match its own segments", odd.Path())
	}
}
