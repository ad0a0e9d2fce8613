package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/citrusframework/citrus-go/validate/debug"
	"github.com/citrusframework/citrus-go/validate/format"
	"github.com/citrusframework/citrus-go/validate/ir"

	"github.com/goccy/go-yaml"
)

// Parse decodes every document in d. YAML input may hold several documents
// separated by '---'; JSON input must hold exactly one. Input that is empty
// or consists only of whitespace and comments yields no documents.
func Parse(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if blank(d) {
		return nil, nil
	}
	if pOpts.format.IsJSON() && !json.Valid(d) {
		var v any
		err := json.Unmarshal(d, &v)
		if err == nil {
			err = errors.New("invalid json")
		}
		return nil, malformed(0, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
	var res []*ir.Node
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(i, err)
		}
		node, err := FromValue(v)
		if err != nil {
			return nil, malformed(i, err)
		}
		res = append(res, node)
	}
	if pOpts.format.IsJSON() && len(res) != 1 {
		return nil, malformed(0, fmt.Errorf("expected 1 json document, got %d", len(res)))
	}
	if debug.Parse() {
		debug.Logf("parsed %d %s documents\n", len(res), pOpts.format)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) ([]*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseOne decodes d, which must contain at most one document. Blank input
// gives a nil node.
func ParseOne(d []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return nil, nil
	case 1:
		return docs[0], nil
	default:
		return nil, malformed(1, fmt.Errorf("expected 1 document, got %d", len(docs)))
	}
}

func blank(d []byte) bool {
	for _, line := range bytes.Split(d, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		return false
	}
	return true
}

// FromValue converts a decoded Go value into a tree. It accepts what the
// YAML and JSON decoders produce: nil, booleans, numbers, strings,
// yaml.MapSlice, map[string]any and []any.
func FromValue(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		return ir.FromNumber(string(x)), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		seen := make(map[string]bool, len(x))
		for _, item := range x {
			key, err := keyString(item.Key)
			if err != nil {
				return nil, err
			}
			if seen[key] {
				return nil, fmt.Errorf("%w: %q", ir.ErrDuplicate, key)
			}
			seen[key] = true
			val, err := FromValue(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		vals := make(map[string]*ir.Node, len(x))
		for key, v := range x {
			val, err := FromValue(v)
			if err != nil {
				return nil, err
			}
			vals[key] = val
		}
		return ir.FromMap(vals), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			val, err := FromValue(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T", errInternal, v)
	}
}

func fromUint(u uint64) *ir.Node {
	if u <= math.MaxInt64 {
		return ir.FromInt(int64(u))
	}
	return ir.FromNumber(strconv.FormatUint(u, 10))
}

func keyString(k any) (string, error) {
	if s, ok := k.(string); ok {
		return s, nil
	}
	node, err := FromValue(k)
	if err != nil {
		return "", err
	}
	if !node.Type.IsLeaf() {
		return "", fmt.Errorf("%w: %s map key", errInternal, node.Type)
	}
	return node.Text(), nil
}
