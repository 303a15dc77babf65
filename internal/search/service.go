// Package search wires the tokenizer, document sources, and the TF-IDF
// engine into a query service.
package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/documentterm/docrank/internal/errors"
	"github.com/documentterm/docrank/internal/tfidf"
	"github.com/documentterm/docrank/internal/tokenizer"
	"github.com/documentterm/docrank/model"
	"github.com/documentterm/docrank/services"
)

// Service ranks a loaded corpus against queries.
// It fulfills the services.Searcher interface.
type Service struct {
	documents []model.Document
	words     map[string][]string // document ID -> tokenized content
	tokenizer *tokenizer.Tokenizer
	logger    *slog.Logger
}

// NewService loads all documents from the source and tokenizes them once.
// Tokenization does not depend on the query, so the word sequences are
// reused across searches; the per-query term-frequency index is rebuilt for
// every call to Search.
//
// A document with zero tokens is rejected here with an EmptyDocumentError:
// its term frequencies would be undefined (division by zero), and failing
// at load time keeps every later Search call total.
func NewService(source services.DocumentSource, tok *tokenizer.Tokenizer) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("document source cannot be nil")
	}
	if tok == nil {
		tok = tokenizer.New()
	}

	documents, err := source.Documents()
	if err != nil {
		return nil, err
	}

	words := make(map[string][]string, len(documents))
	for _, doc := range documents {
		tokens := tok.TokenizeLines(doc.Lines)
		if len(tokens) == 0 {
			return nil, errors.NewEmptyDocumentError(doc.ID)
		}
		words[doc.ID] = tokens
	}

	logger := slog.Default().With("component", "search")
	logger.Info("corpus loaded", "documents", len(documents))

	return &Service{
		documents: documents,
		words:     words,
		tokenizer: tok,
		logger:    logger,
	}, nil
}

// DocumentCount returns the number of documents in the loaded corpus.
func (s *Service) DocumentCount() int {
	return len(s.documents)
}

// Search tokenizes the query, builds a fresh term-frequency index for its
// terms, and ranks every document. A query with no tokens is rejected with
// ErrEmptyQuery. The corpus index lives only for this invocation.
func (s *Service) Search(query string) (services.SearchResult, error) {
	startTime := time.Now()

	terms := s.tokenizer.Tokenize(query)
	if len(terms) == 0 {
		return services.SearchResult{}, errors.ErrEmptyQuery
	}

	corpus := tfidf.NewCorpusIndex()
	for _, doc := range s.documents {
		data, err := tfidf.NewDocumentData(s.words[doc.ID], terms)
		if err != nil {
			return services.SearchResult{}, err
		}
		corpus.Add(doc.ID, data)
	}

	ranking, err := tfidf.Rank(terms, corpus)
	if err != nil {
		return services.SearchResult{}, err
	}

	groups := make([]services.ScoreGroup, 0, len(ranking))
	for _, group := range ranking {
		groups = append(groups, services.ScoreGroup{Score: group.Score, Documents: group.Documents})
	}

	result := services.SearchResult{
		Query:   query,
		Terms:   terms,
		Groups:  groups,
		Total:   corpus.Len(),
		Took:    time.Since(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
	}

	s.logger.Debug("search completed",
		"query", query,
		"terms", len(terms),
		"documents", result.Total,
		"groups", len(groups),
		"took_ms", result.Took,
	)
	return result, nil
}
