// Package registry is a name-keyed lookup of clusterer factories and
// similarity metrics, so callers that only have a string (an HTTP request
// body, a CLI flag) can select a strategy without linking against a
// concrete type.
package registry

import (
	"fmt"
	"sync"

	"github.com/graunt-labs/docluster/pkg/cluster"
)

// ClustererFactory builds a cluster.Clusterer for the given k and
// maxIters. RoundRobin implementations ignore maxIters.
type ClustererFactory func(k, maxIters int) cluster.Clusterer

// Registry holds the set of clusterer factories and similarity metrics
// known to the running process.
type Registry struct {
	mu           sync.RWMutex
	clusterers   map[string]ClustererFactory
	similarities map[string]cluster.Similarity
}

// GlobalRegistry is the process-wide registry used by the demo server.
// The clustering core itself never touches it — pkg/cluster types
// are plain values a caller can construct directly.
var GlobalRegistry = New()

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		clusterers:   make(map[string]ClustererFactory),
		similarities: make(map[string]cluster.Similarity),
	}
}

// RegisterClusterer associates name with factory.
func (r *Registry) RegisterClusterer(name string, factory ClustererFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clusterers[name] = factory
}

// RegisterSimilarity associates name with a similarity metric instance.
func (r *Registry) RegisterSimilarity(name string, sim cluster.Similarity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.similarities[name] = sim
}

// Clusterer builds a Clusterer by name, or returns an error if no factory
// was registered under that name.
func (r *Registry) Clusterer(name string, k, maxIters int) (cluster.Clusterer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.clusterers[name]
	if !ok {
		return nil, fmt.Errorf("registry: clusterer %q not found", name)
	}
	return factory(k, maxIters), nil
}

// Similarity looks up a similarity metric by name.
func (r *Registry) Similarity(name string) (cluster.Similarity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sim, ok := r.similarities[name]
	if !ok {
		return nil, fmt.Errorf("registry: similarity %q not found", name)
	}
	return sim, nil
}

// ClustererNames returns the registered clusterer names.
func (r *Registry) ClustererNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.clusterers))
	for name := range r.clusterers {
		names = append(names, name)
	}
	return names
}
