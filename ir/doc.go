// Package ir provides the in-memory tree for parsed YAML and JSON documents.
//
// # Node Structure
//
// A Node represents a single value. The Type field selects which of the
// remaining fields carry the value:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Number (text as written), plus Int64 or Float64 when the
//     text fits
//   - StringType: String
//   - ObjectType: Fields[i] is the key node for Values[i]
//   - ArrayType: Values
//
// Object keys are string typed and unique. The order of Fields and Values is
// the document order.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "text", Val: ir.FromString("Hello World!")},
//	    {Key: "index", Val: ir.FromInt(5)},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Paths
//
// Every node knows its position through Parent, ParentIndex and ParentField.
// Path renders it:
//
//	node.Path() // e.g. "$.greetings[2].text"
//
// Fields which are empty, consist only of digits, or contain whitespace or
// any of '".*$[]\ are rendered in bracket notation, e.g. $['a.b'].
//
// ParsePath parses path expressions. On top of the concrete syntax above it
// accepts .'name' and ["name"] for quoted fields and three wildcards:
//
//	$.items[*].id   any index
//	$.meta.*        any field
//	$..id           any depth
//
// A parsed Path is matched against the concrete Segments of a node.
//
// # Thread Safety
//
// Nodes are not synchronized. Trees that are only read may be shared between
// goroutines.
package ir
