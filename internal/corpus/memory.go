package corpus

import (
	"github.com/documentterm/docrank/model"
)

// MemorySource serves a fixed, in-memory set of documents. Used by tests
// and anywhere a corpus is assembled without touching the filesystem.
type MemorySource struct {
	documents []model.Document
}

// NewMemorySource creates a document source over the given documents,
// served in the given order.
func NewMemorySource(documents ...model.Document) *MemorySource {
	return &MemorySource{documents: documents}
}

// Documents returns a copy of the document slice.
func (s *MemorySource) Documents() ([]model.Document, error) {
	documents := make([]model.Document, len(s.documents))
	copy(documents, s.documents)
	return documents, nil
}
