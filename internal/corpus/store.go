package corpus

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/graunt-labs/docluster/pkg/cluster"
)

// Corpus is a mutex-guarded, in-memory document store. Unlike the
// clustering core it backs (which is single-threaded by design, see
// pkg/cluster), Corpus is meant to be touched from multiple goroutines —
// concurrent HTTP requests ingesting documents — so it guards its
// document slice the way a concurrent in-memory store typically guards
// its state.
type Corpus struct {
	mu     sync.RWMutex
	docs   []*Handle
	logger *zap.Logger
}

// New returns an empty Corpus. A nil logger is replaced with zap.NewNop().
func New(logger *zap.Logger) *Corpus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Corpus{logger: logger}
}

// Add tokenizes text, assigns it a fresh document handle, and stores it.
func (c *Corpus) Add(text string) *Handle {
	h := &Handle{ID: uuid.New(), Text: text, terms: tokenize(text)}

	c.mu.Lock()
	c.docs = append(c.docs, h)
	c.mu.Unlock()

	c.logger.Debug("ingested document",
		zap.String("document_id", h.ID.String()),
		zap.Int("distinct_terms", len(h.terms)),
	)
	return h
}

// Documents returns a defensive copy of every handle currently stored, in
// insertion order.
func (c *Corpus) Documents() []*Handle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*Handle(nil), c.docs...)
}

// Size returns the number of documents currently stored.
func (c *Corpus) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// Source snapshots the corpus's current contents into a one-shot
// cluster.DocumentSource, ready to be handed to a Clusterer. Documents
// added to the Corpus after Source is called are not visible to the
// returned source.
func (c *Corpus) Source() cluster.DocumentSource {
	return &docSource{docs: c.Documents()}
}

// docSource adapts a fixed snapshot of handles into the non-restartable
// lazy sequence the clustering core expects.
type docSource struct {
	docs []*Handle
	pos  int
}

func (s *docSource) Next() (cluster.Document, error) {
	d := s.docs[s.pos]
	s.pos++
	return d, nil
}

func (s *docSource) AtEnd() bool {
	return s.pos >= len(s.docs)
}

func (s *docSource) Size() int {
	return len(s.docs)
}
