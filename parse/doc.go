// Package parse turns YAML and JSON text into ir trees.
//
// # Usage
//
//	docs, err := parse.Parse(data)                   // YAML, possibly several documents
//	docs, err := parse.Parse(data, parse.ParseJSON()) // exactly one JSON document
//	node, err := parse.ParseOne(data)
//
// Decoding is done by github.com/goccy/go-yaml with ordered maps, so object
// fields keep their document order. Anchors and aliases are resolved, tags
// are not interpreted and non-string map keys are converted to their scalar
// text. Duplicate keys are rejected.
//
// All failures are reported as *MalformedDocumentError, which matches
// ErrMalformedDocument with errors.Is and also unwraps to the decoder's own
// error.
//
// # Related Packages
//
//   - github.com/citrusframework/citrus-go/validate/ir - the tree produced here
//   - github.com/citrusframework/citrus-go/validate/encode - renders trees back to text
package parse
