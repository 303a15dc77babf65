package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documentterm/docrank/internal/corpus"
	apperrors "github.com/documentterm/docrank/internal/errors"
	"github.com/documentterm/docrank/internal/tokenizer"
	"github.com/documentterm/docrank/model"
)

// --- Test Helpers ---

func newTestService(t *testing.T, documents ...model.Document) *Service {
	t.Helper()
	service, err := NewService(corpus.NewMemorySource(documents...), tokenizer.New())
	require.NoError(t, err, "NewService should succeed for a valid corpus")
	return service
}

// --- Test Cases ---

func TestNewService(t *testing.T) {
	t.Run("valid corpus", func(t *testing.T) {
		service := newTestService(t,
			model.Document{ID: "doc1", Lines: []string{"the cat sat"}},
			model.Document{ID: "doc2", Lines: []string{"the dog ran"}},
		)
		assert.Equal(t, 2, service.DocumentCount())
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := NewService(nil, tokenizer.New())
		assert.Error(t, err)
	})

	t.Run("empty document rejected at load", func(t *testing.T) {
		_, err := NewService(corpus.NewMemorySource(
			model.Document{ID: "doc1", Lines: []string{"fine"}},
			model.Document{ID: "blank", Lines: []string{"...", "---"}},
		), tokenizer.New())
		assert.ErrorIs(t, err, apperrors.ErrEmptyDocument)
	})
}

func TestService_Search(t *testing.T) {
	service := newTestService(t,
		model.Document{ID: "summer", Lines: []string{"warm summer day", "at the beach"}},
		model.Document{ID: "winter", Lines: []string{"cold winter night", "by the fire"}},
		model.Document{ID: "spring", Lines: []string{"spring rain", "on the window"}},
	)

	result, err := service.Search("cold winter")
	require.NoError(t, err)

	assert.Equal(t, "cold winter", result.Query)
	assert.Equal(t, []string{"cold", "winter"}, result.Terms)
	assert.Equal(t, 3, result.Total)
	assert.NotEmpty(t, result.QueryID)

	require.NotEmpty(t, result.Groups)
	assert.Equal(t, []string{"winter"}, result.Groups[0].Documents,
		"the only document mentioning the query terms should rank first")
	for i := 1; i < len(result.Groups); i++ {
		assert.GreaterOrEqual(t, result.Groups[i-1].Score, result.Groups[i].Score,
			"groups must be ordered by descending score")
	}
}

func TestService_Search_TermEverywhere(t *testing.T) {
	// "the" appears in every document, so IDF is 0 and all documents share
	// a single zero-score group in load order.
	service := newTestService(t,
		model.Document{ID: "doc1", Lines: []string{"the cat sat"}},
		model.Document{ID: "doc2", Lines: []string{"the dog ran"}},
	)

	result, err := service.Search("the")
	require.NoError(t, err)

	require.Len(t, result.Groups, 1)
	assert.Equal(t, float64(0), result.Groups[0].Score)
	assert.Equal(t, []string{"doc1", "doc2"}, result.Groups[0].Documents)
}

func TestService_Search_EmptyQuery(t *testing.T) {
	service := newTestService(t,
		model.Document{ID: "doc1", Lines: []string{"the cat sat"}},
	)

	for _, query := range []string{"", "   ", ".,!?"} {
		_, err := service.Search(query)
		assert.ErrorIs(t, err, apperrors.ErrEmptyQuery, "query %q should be rejected", query)
	}
}

func TestService_Search_EmptyCorpus(t *testing.T) {
	service, err := NewService(corpus.NewMemorySource(), tokenizer.New())
	require.NoError(t, err)

	result, err := service.Search("anything")
	require.NoError(t, err)
	assert.Empty(t, result.Groups)
	assert.Equal(t, 0, result.Total)
}

func TestService_Search_Deterministic(t *testing.T) {
	service := newTestService(t,
		model.Document{ID: "doc1", Lines: []string{"alpha beta"}},
		model.Document{ID: "doc2", Lines: []string{"beta gamma"}},
		model.Document{ID: "doc3", Lines: []string{"gamma alpha"}},
	)

	first, err := service.Search("alpha gamma")
	require.NoError(t, err)
	second, err := service.Search("alpha gamma")
	require.NoError(t, err)

	assert.Equal(t, first.Groups, second.Groups, "same query must produce the same grouping")
}
