package model

// Document is one corpus entry: a unique identifier (typically a file path)
// plus the document's content as an ordered sequence of lines. How the lines
// were obtained (filesystem, PDF extraction, in-memory fixture) is the
// document source's concern; the ranking engine only sees this shape.
type Document struct {
	ID    string   `json:"id"`
	Lines []string `json:"lines"`
}
