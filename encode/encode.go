package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/citrusframework/citrus-go/validate/format"
	"github.com/citrusframework/citrus-go/validate/ir"
)

var ErrEncode = errors.New("encode error")

// EncState holds the options of one Encode call. Output is always a single
// line: YAML flow style by default, JSON with EncodeFormat(format.JSONFormat).
type EncState struct {
	format format.Format
	Color  func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, quoteString(node.String, es)))
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType, ir.NullType:
		return writeString(w, applyColor(es, node.Type, ValueColor, node.Text()))
	default:
		return fmt.Errorf("%w: cannot encode type %s", ErrEncode, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	for i := range node.Fields {
		if i > 0 {
			if err := writeSeparator(w, es, ir.ObjectType); err != nil {
				return err
			}
		}
		if err := writeField(w, node.Fields[i].String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSeparator(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	if es.format.IsJSON() && node.Float64 != nil {
		f := *node.Float64
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: %s has no json representation", ErrEncode, node.Text())
		}
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, node.Text()))
}

func writeField(w io.Writer, f string, es *EncState) error {
	f = applyColor(es, ir.ObjectType, FieldColor, quoteString(f, es))
	sep := ": "
	if es.format.IsJSON() {
		sep = ":"
	}
	return writeString(w, f+applyColor(es, ir.ObjectType, SepColor, sep))
}

func writeSeparator(w io.Writer, es *EncState, cType ir.Type) error {
	sep := ", "
	if es.format.IsJSON() {
		sep = ","
	}
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func quoteString(v string, es *EncState) string {
	if es.format.IsJSON() {
		d, err := json.Marshal(v)
		if err != nil {
			return strconv.Quote(v)
		}
		return string(d)
	}
	if needsQuote(v) {
		return strconv.Quote(v)
	}
	return v
}

// needsQuote reports whether a plain flow scalar v would not read back as
// the same string.
func needsQuote(v string) bool {
	if v == "" || v != strings.TrimSpace(v) {
		return true
	}
	if strings.ContainsAny(v, ",:[]{}#'\"\\\n\t") {
		return true
	}
	switch v[0] {
	case '-', '?', '!', '&', '*', '|', '>', '%', '@', '`':
		return true
	}
	switch strings.ToLower(v) {
	case "true", "false", "null", "~", "yes", "no", "on", "off":
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	return false
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
