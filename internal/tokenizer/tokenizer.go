// Package tokenizer splits raw text into word tokens using a fixed set of
// literal delimiter strings. It performs no case folding, stemming, or
// stop-word removal.
package tokenizer

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultDelimiters is the delimiter set used when none is configured.
//
// "/d" and "/n" are literal two-character sequences, not character classes.
// They are kept for output compatibility with the system this engine
// replaces; any document containing a literal "/d" or "/n" substring is
// split at it. Whether that is desirable remains an open question, so the
// set is configurable rather than hard-coded.
var DefaultDelimiters = []string{".", ",", "-", " ", "?", "!", ";", ":", "/d", "/n"}

// Tokenizer splits text on runs of configured delimiter strings.
type Tokenizer struct {
	delimiters []string
	splitter   *regexp.Regexp
}

// New creates a Tokenizer for the given literal delimiter strings.
// With no arguments it uses DefaultDelimiters.
func New(delimiters ...string) *Tokenizer {
	if len(delimiters) == 0 {
		delimiters = DefaultDelimiters
	}

	quoted := make([]string, 0, len(delimiters))
	for _, d := range delimiters {
		if d != "" {
			quoted = append(quoted, regexp.QuoteMeta(d))
		}
	}
	// Longer delimiters first so that overlapping sets (e.g. "/" and "/d")
	// match the longest alternative.
	sort.Slice(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })

	return &Tokenizer{
		delimiters: delimiters,
		splitter:   regexp.MustCompile("(?:" + strings.Join(quoted, "|") + ")+"),
	}
}

// Tokenize converts a string into a slice of tokens. Runs of adjacent
// delimiters collapse to a single split, so the result never contains
// empty tokens. Matching is case-sensitive and exact.
func (t *Tokenizer) Tokenize(text string) []string {
	split := t.splitter.Split(text, -1)

	tokens := make([]string, 0, len(split))
	for _, s := range split {
		if s != "" { // Filter out empty strings
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// TokenizeLines tokenizes each line and concatenates the token sequences
// in line order.
func (t *Tokenizer) TokenizeLines(lines []string) []string {
	words := make([]string, 0)
	for _, line := range lines {
		words = append(words, t.Tokenize(line)...)
	}
	return words
}
