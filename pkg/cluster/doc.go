// Package cluster implements the document-clustering core: TF-IDF term
// weighting, sparse vector arithmetic, similarity metrics, and the
// clusterer strategies (K-Means, Round Robin) that group a ranked set of
// retrieved documents into a requested number of clusters.
//
// The package is single-threaded and synchronous by design: no type here
// spawns a goroutine or talks to the network. Callers that need documents
// from a real index or store should implement DocumentSource themselves;
// see the internal/corpus package for an in-memory reference
// implementation.
package cluster
