package services

import (
	"github.com/documentterm/docrank/model"
)

// ScoreGroup holds all documents that achieved exactly the same TF-IDF
// score, in the order they were encountered during corpus iteration.
// Scores are grouped by exact float64 equality; near-equal scores from
// floating-point drift stay in separate groups.
type ScoreGroup struct {
	Score     float64  `json:"score"`
	Documents []string `json:"documents"`
}

// SearchResult represents one ranking of the corpus against a query.
// Groups are ordered by descending score.
type SearchResult struct {
	Query   string       `json:"query"`
	Terms   []string     `json:"terms"`
	Groups  []ScoreGroup `json:"groups"`
	Total   int          `json:"total"`    // number of documents ranked
	Took    int64        `json:"took"`     // milliseconds
	QueryID string       `json:"query_id"` // unique UUID for this search query
}

// DocumentSource supplies the documents to rank. Implementations decide how
// documents are discovered and read; the engine only requires each document
// as an identifier plus an ordered sequence of lines.
type DocumentSource interface {
	Documents() ([]model.Document, error)
}

// Searcher defines operations for ranking the corpus against a query
type Searcher interface {
	Search(query string) (SearchResult, error)
}
