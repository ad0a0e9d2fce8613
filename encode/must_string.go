package encode

import (
	"bytes"

	"github.com/citrusframework/citrus-go/validate/ir"
)

func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Text renders leaves by their plain text and containers in flow style. It
// is the form used in validation messages.
func Text(node *ir.Node) string {
	if node == nil {
		return "<none>"
	}
	if node.Type.IsLeaf() {
		return node.Text()
	}
	return MustString(node)
}
