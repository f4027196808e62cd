package corpus

import (
	"github.com/google/uuid"
	"github.com/graunt-labs/docluster/pkg/cluster"
)

// Handle is the concrete Document implementation backing the in-memory
// Corpus. It carries a UUID so it behaves like "an opaque identifier into
// the external index" even though the index here is just a slice in
// memory, plus the raw text it was tokenized from so callers (such as the
// HTTP layer) can report back which original document landed in which
// cluster.
type Handle struct {
	ID    uuid.UUID
	Text  string
	terms []cluster.TermOccurrence
}

// Terms returns the document's distinct (term, wdf) pairs.
func (h *Handle) Terms() []cluster.TermOccurrence {
	return h.terms
}
