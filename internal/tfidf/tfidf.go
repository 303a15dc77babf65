// Package tfidf implements classic TF-IDF scoring and ranking of an
// in-memory corpus against a fixed set of query terms.
//
// All functions are pure: no state is retained between invocations, and the
// corpus index passed to Rank is never mutated.
package tfidf

import (
	"math"
	"sort"

	"github.com/documentterm/docrank/internal/errors"
)

// DocumentData maps each query term to its term frequency within one
// document. It is built once per document per query and only holds the
// queried terms, not a frequency table of every word in the document.
type DocumentData struct {
	frequencies map[string]float64
}

// TermFrequency returns the stored frequency for term. Every term the
// DocumentData was built with has an entry (0 when absent from the
// document); asking for any other term is an internal-consistency fault.
func (d *DocumentData) TermFrequency(term string) (float64, error) {
	frequency, ok := d.frequencies[term]
	if !ok {
		return 0, errors.NewMissingEntryError(term, "document data")
	}
	return frequency, nil
}

// TermFrequency calculates the term frequency of term in words: the count
// of exact-match occurrences divided by the total word count. Matching is
// case-sensitive.
//
// Precondition: words must be non-empty. The division is undefined for an
// empty word sequence (0/0 yields NaN); NewDocumentData guards against it.
func TermFrequency(words []string, term string) float64 {
	count := 0
	for _, word := range words {
		if word == term {
			count++
		}
	}
	return float64(count) / float64(len(words))
}

// NewDocumentData computes the term frequency of every query term in words.
// Terms absent from words get an explicit 0 entry so that scoring never
// encounters a missing key. Duplicate query terms overwrite the same entry.
// An empty word sequence is rejected with ErrEmptyDocument rather than
// producing NaN frequencies.
func NewDocumentData(words []string, terms []string) (*DocumentData, error) {
	if len(words) == 0 {
		return nil, errors.NewEmptyDocumentError("")
	}

	frequencies := make(map[string]float64, len(terms))
	for _, term := range terms {
		frequencies[term] = TermFrequency(words, term)
	}
	return &DocumentData{frequencies: frequencies}, nil
}

// CorpusIndex maps document identifiers to their DocumentData. Iteration
// order is the order documents were added, which keeps ranking output
// deterministic. A CorpusIndex is built for a single query run and
// discarded afterwards.
type CorpusIndex struct {
	ids  []string
	data map[string]*DocumentData
}

// NewCorpusIndex creates an empty CorpusIndex.
func NewCorpusIndex() *CorpusIndex {
	return &CorpusIndex{data: make(map[string]*DocumentData)}
}

// Add stores the DocumentData for a document identifier. Adding the same
// identifier again replaces its data but keeps its original position.
func (c *CorpusIndex) Add(id string, data *DocumentData) {
	if _, exists := c.data[id]; !exists {
		c.ids = append(c.ids, id)
	}
	c.data[id] = data
}

// Len returns the number of documents in the corpus.
func (c *CorpusIndex) Len() int {
	return len(c.ids)
}

// DocumentIDs returns the document identifiers in insertion order.
func (c *CorpusIndex) DocumentIDs() []string {
	ids := make([]string, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Get returns the DocumentData for a document identifier.
func (c *CorpusIndex) Get(id string) (*DocumentData, bool) {
	data, ok := c.data[id]
	return data, ok
}

// InverseDocumentFrequency computes the IDF of term across the corpus:
// log10(totalDocuments / documentsContainingTerm). A term appearing in no
// document has IDF 0, which avoids both log(0) and division by zero. Rarer
// terms yield strictly higher IDF. Base-10 log is a fixed design choice.
func InverseDocumentFrequency(term string, corpus *CorpusIndex) float64 {
	documentCount := 0
	for _, id := range corpus.ids {
		frequency, ok := corpus.data[id].frequencies[term]
		if ok && frequency > 0 {
			documentCount++
		}
	}

	if documentCount == 0 {
		return 0
	}
	return math.Log10(float64(corpus.Len()) / float64(documentCount))
}

// InverseDocumentFrequencyMap computes the IDF of each term independently.
func InverseDocumentFrequencyMap(terms []string, corpus *CorpusIndex) map[string]float64 {
	idf := make(map[string]float64, len(terms))
	for _, term := range terms {
		idf[term] = InverseDocumentFrequency(term, corpus)
	}
	return idf
}

// Score computes a document's TF-IDF score: the sum over the query terms of
// termFrequency × inverseDocumentFrequency. A term repeated in the query
// contributes once per occurrence, amplifying its influence on the ranking.
//
// Every query term is expected to have an entry in both mappings (guaranteed
// by NewDocumentData and InverseDocumentFrequencyMap); a missing entry is
// reported as an internal-consistency error.
func Score(terms []string, data *DocumentData, idf map[string]float64) (float64, error) {
	score := 0.0
	for _, term := range terms {
		frequency, err := data.TermFrequency(term)
		if err != nil {
			return 0, err
		}
		termIDF, ok := idf[term]
		if !ok {
			return 0, errors.NewMissingEntryError(term, "IDF map")
		}
		score += frequency * termIDF
	}
	return score, nil
}

// ScoreGroup holds the documents that achieved exactly one score value, in
// corpus insertion order.
type ScoreGroup struct {
	Score     float64
	Documents []string
}

// Ranking is an ordered sequence of score groups, descending by score.
type Ranking []ScoreGroup

// Rank scores every document in the corpus against the query terms and
// groups the documents by score, descending. The IDF map is computed once
// and shared across all documents. Documents with bit-identical scores share
// one group, in the order they were added to the corpus; no secondary sort
// is applied. An empty corpus yields an empty ranking.
func Rank(terms []string, corpus *CorpusIndex) (Ranking, error) {
	idf := InverseDocumentFrequencyMap(terms, corpus)

	groups := make(map[float64][]string)
	scores := make([]float64, 0)
	for _, id := range corpus.ids {
		score, err := Score(terms, corpus.data[id], idf)
		if err != nil {
			return nil, err
		}
		if _, seen := groups[score]; !seen {
			scores = append(scores, score)
		}
		groups[score] = append(groups[score], id)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	ranking := make(Ranking, 0, len(scores))
	for _, score := range scores {
		ranking = append(ranking, ScoreGroup{Score: score, Documents: groups[score]})
	}
	return ranking, nil
}
