package validate

import (
	"fmt"

	"github.com/citrusframework/citrus-go/validate/debug"
	"github.com/citrusframework/citrus-go/validate/encode"
	"github.com/citrusframework/citrus-go/validate/format"
	"github.com/citrusframework/citrus-go/validate/ir"
	"github.com/citrusframework/citrus-go/validate/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch is an RFC 6902 JSON patch for expected documents, so that one
// control document can serve several variants of a message.
type Patch struct {
	ops jsonpatch.Patch
}

// DecodePatch reads a patch, the list of operations, written in JSON or
// YAML.
func DecodePatch(d []byte) (*Patch, error) {
	node, err := parse.ParseOne(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if node == nil {
		return nil, fmt.Errorf("%w: empty patch", ErrPatch)
	}
	return PatchFromNode(node)
}

// PatchFromNode builds a patch from an array of operation objects.
func PatchFromNode(node *ir.Node) (*Patch, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: patch must be an array of operations, got %s", ErrPatch, node.Type)
	}
	d, err := marshalJSON(node)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{ops: ops}, nil
}

// Apply returns a patched copy of doc.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	d, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	jOut, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.ParseOne(jOut, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patched %v\n  to %v\n", doc, res)
	}
	return res, nil
}

// ApplyPatch decodes patch and applies it to doc.
func ApplyPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	p, err := DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}

func marshalJSON(node *ir.Node) ([]byte, error) {
	s, err := encode.String(node, encode.EncodeFormat(format.JSONFormat))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return []byte(s), nil
}
