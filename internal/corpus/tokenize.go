// Package corpus is the in-memory DocumentSource reference implementation
// standing in for the external index/search engine the clustering core
// treats as an out-of-scope collaborator.
package corpus

import (
	"strings"

	"github.com/graunt-labs/docluster/pkg/cluster"
)

// tokenize splits raw text into lower-cased words (strings.ToLower, then
// strings.Fields) and counts each distinct word's within-document
// frequency, keeping words in first-occurrence order.
func tokenize(text string) []cluster.TermOccurrence {
	words := strings.Fields(strings.ToLower(text))
	counts := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, w := range words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	terms := make([]cluster.TermOccurrence, 0, len(order))
	for _, w := range order {
		terms = append(terms, cluster.TermOccurrence{Term: w, WDF: counts[w]})
	}
	return terms
}
