package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal          = errors.New("internal parse error")
	ErrMalformedDocument = errors.New("malformed document")
)

// MalformedDocumentError reports input that could not be turned into a
// tree. Err holds the diagnostic of the underlying parser.
type MalformedDocumentError struct {
	// Document is the 0-based index of the document within a multi
	// document stream.
	Document int
	Err      error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("%s (document %d): %v", ErrMalformedDocument, e.Document, e.Err)
}

func (e *MalformedDocumentError) Unwrap() []error {
	return []error{ErrMalformedDocument, e.Err}
}

func malformed(doc int, err error) error {
	return &MalformedDocumentError{Document: doc, Err: err}
}
