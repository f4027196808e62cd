package cluster

import "github.com/pkg/errors"

// TermOccurrence is a single (term, wdf) pair: a term and the number of
// times it occurs within one document (its within-document frequency).
type TermOccurrence struct {
	Term string
	WDF  int
}

// Document is an opaque handle into whatever storage produced it (an index,
// a database, an in-memory corpus). The core never inspects the handle
// itself; it only asks for the document's term occurrences.
type Document interface {
	// Terms returns the document's distinct (term, wdf) pairs. A given
	// Document handle must return the same sequence on every call: the
	// clusterers call it once while counting document frequencies and
	// again while weighting the document's Point.
	Terms() []TermOccurrence
}

// DocumentSource is a finite, non-restartable lazy sequence of documents,
// the abstraction the core consumes in place of a live search engine's
// ranked result set (an MSet).
type DocumentSource interface {
	// Next returns the next document. Calling Next after AtEnd reports
	// true is a programming error.
	Next() (Document, error)

	// AtEnd reports whether the source has been fully drained.
	AtEnd() bool

	// Size is an upper bound on the number of documents the source will
	// yield in total (already produced plus remaining).
	Size() int
}

// DocumentSet is an ordered, indexable collection of Document handles, as
// returned by Cluster.GetDocuments.
type DocumentSet struct {
	docs []Document
}

// NewDocumentSet returns an empty DocumentSet.
func NewDocumentSet() *DocumentSet {
	return &DocumentSet{}
}

// Add appends a document to the set.
func (s *DocumentSet) Add(d Document) {
	s.docs = append(s.docs, d)
}

// Size returns the number of documents in the set.
func (s *DocumentSet) Size() int {
	return len(s.docs)
}

// At returns the document at index i, or ErrOutOfRange when i is out of
// bounds.
func (s *DocumentSet) At(i int) (Document, error) {
	if i < 0 || i >= len(s.docs) {
		return nil, errors.Wrapf(ErrOutOfRange, "document index %d (size %d)", i, len(s.docs))
	}
	return s.docs[i], nil
}

// drainSource pulls every remaining document out of src, honoring an
// optional maxItems clip (0 means unbounded beyond src's own Size()).
func drainSource(src DocumentSource, maxItems int) ([]Document, error) {
	limit := src.Size()
	if maxItems > 0 && maxItems < limit {
		limit = maxItems
	}
	docs := make([]Document, 0, limit)
	for i := 0; i < limit && !src.AtEnd(); i++ {
		d, err := src.Next()
		if err != nil {
			return nil, errors.Wrap(err, "cluster: draining document source")
		}
		docs = append(docs, d)
	}
	return docs, nil
}
