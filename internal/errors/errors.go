package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrEmptyDocument is returned when a document yields zero tokens
	ErrEmptyDocument = errors.New("document has no tokens")

	// ErrEmptyQuery is returned when a query yields zero terms
	ErrEmptyQuery = errors.New("query has no terms")

	// ErrMissingEntry is returned when scoring encounters a term without a
	// frequency or IDF entry. This indicates a bug in index construction,
	// not bad user input.
	ErrMissingEntry = errors.New("missing term entry")

	// ErrSourceUnavailable is returned when a document source cannot be read
	ErrSourceUnavailable = errors.New("document source unavailable")
)

// EmptyDocumentError represents an empty document error with context
type EmptyDocumentError struct {
	DocumentID string
}

func (e *EmptyDocumentError) Error() string {
	if e.DocumentID != "" {
		return fmt.Sprintf("document '%s' has no tokens", e.DocumentID)
	}
	return "document has no tokens"
}

func (e *EmptyDocumentError) Is(target error) bool {
	return target == ErrEmptyDocument
}

// NewEmptyDocumentError creates a new EmptyDocumentError
func NewEmptyDocumentError(documentID string) *EmptyDocumentError {
	return &EmptyDocumentError{DocumentID: documentID}
}

// MissingEntryError represents a missing term entry with context about
// which mapping lacked it
type MissingEntryError struct {
	Term    string
	Mapping string
}

func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("term '%s' has no entry in %s", e.Term, e.Mapping)
}

func (e *MissingEntryError) Is(target error) bool {
	return target == ErrMissingEntry
}

// NewMissingEntryError creates a new MissingEntryError
func NewMissingEntryError(term, mapping string) *MissingEntryError {
	return &MissingEntryError{Term: term, Mapping: mapping}
}

// SourceUnavailableError represents a document source failure with the
// underlying I/O error preserved
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("document source '%s' unavailable: %v", e.Path, e.Err)
}

func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// NewSourceUnavailableError creates a new SourceUnavailableError
func NewSourceUnavailableError(path string, err error) *SourceUnavailableError {
	return &SourceUnavailableError{Path: path, Err: err}
}
