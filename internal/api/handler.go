// Package api exposes the clustering core over HTTP: one endpoint that
// ingests a batch of raw documents, runs a named Clusterer over them, and
// reports back the resulting groups.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/graunt-labs/docluster/internal/corpus"
	"github.com/graunt-labs/docluster/internal/model"
	"github.com/graunt-labs/docluster/internal/registry"
	"github.com/graunt-labs/docluster/pkg/cluster"
)

const defaultStrategy = "kmeans"

// Handler wires the in-memory Corpus and the strategy Registry into a set
// of HTTP routes.
type Handler struct {
	Registry *registry.Registry
	Logger   *zap.Logger
}

// NewHandler returns a Handler backed by reg, logging through logger. A nil
// logger is replaced with zap.NewNop().
func NewHandler(reg *registry.Registry, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Registry: reg, Logger: logger}
}

// RegisterRoutes attaches the handler's routes to mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/cluster", h.handleCluster)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, model.ErrorResponse{Error: msg})
}

func parseJSON(r *http.Request, dest interface{}) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

// handleCluster ingests req.Documents into a fresh one-shot Corpus, runs
// the requested strategy, and returns each cluster's member documents and
// (for strategies whose centroid carries weight, i.e. KMeans) its
// strongest terms.
func (h *Handler) handleCluster(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req model.ClusterRequest
	if err := parseJSON(r, &req); err != nil {
		h.Logger.Warn("cluster request: malformed body", zap.Error(err))
		respondError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = defaultStrategy
	}

	clusterer, err := h.Registry.Clusterer(strategy, req.K, req.MaxIters)
	if err != nil {
		h.Logger.Warn("cluster request: unknown strategy", zap.String("strategy", strategy), zap.Error(err))
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Similarity != "" {
		sim, err := h.Registry.Similarity(req.Similarity)
		if err != nil {
			h.Logger.Warn("cluster request: unknown similarity", zap.String("similarity", req.Similarity), zap.Error(err))
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if setter, ok := clusterer.(interface{ SetSimilarity(cluster.Similarity) }); ok {
			setter.SetSimilarity(sim)
		}
	}

	store := corpus.New(h.Logger)
	for _, text := range req.Documents {
		store.Add(text)
	}

	cset, err := clusterer.Cluster(store.Source())
	if err != nil {
		status, isWarn := statusForError(err)
		if isWarn {
			h.Logger.Warn("cluster request: rejected",
				zap.String("strategy", strategy),
				zap.Int("k", req.K),
				zap.Error(err),
			)
		} else {
			h.Logger.Error("cluster request: failed",
				zap.String("strategy", strategy),
				zap.Int("k", req.K),
				zap.Error(err),
			)
		}
		respondError(w, status, err.Error())
		return
	}

	resp := model.ClusterResponse{
		Strategy: clusterer.Description(),
		Clusters: make([]model.ClusterResult, cset.Size()),
	}
	for i := 0; i < cset.Size(); i++ {
		resp.Clusters[i] = buildClusterResult(i, cset.At(i))
	}

	h.Logger.Info("cluster request: completed",
		zap.String("strategy", strategy),
		zap.Int("k", req.K),
		zap.Int("documents", len(req.Documents)),
		zap.Duration("elapsed", time.Since(start)),
	)
	respondJSON(w, http.StatusOK, resp)
}

func buildClusterResult(index int, cl *cluster.Cluster) model.ClusterResult {
	result := model.ClusterResult{Index: index}

	docs := cl.GetDocuments()
	for i := 0; i < docs.Size(); i++ {
		doc, err := docs.At(i)
		if err != nil {
			continue
		}
		if h, ok := doc.(*corpus.Handle); ok {
			result.DocumentIDs = append(result.DocumentIDs, h.ID.String())
			result.Documents = append(result.Documents, h.Text)
		}
	}

	result.TopTerms = topTerms(cl.GetCentroid(), 5)
	return result
}

// topTerms returns up to n terms of c sorted by descending weight. An
// empty-cluster centroid (magnitude 0, no terms) yields a nil slice.
func topTerms(c cluster.Centroid, n int) []string {
	type weighted struct {
		term   string
		weight float64
	}

	it := c.TermListIterator()
	var terms []weighted
	for it.Next() {
		term := it.Term()
		terms = append(terms, weighted{term: term, weight: c.GetValue(term)})
	}
	if len(terms) == 0 {
		return nil
	}

	sort.Slice(terms, func(i, j int) bool {
		return terms[i].weight > terms[j].weight
	})
	if len(terms) > n {
		terms = terms[:n]
	}

	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.term
	}
	return out
}

// statusForError maps a Clusterer error to an HTTP status and reports
// whether it should be logged at warn (a client mistake) rather than
// error (an unexpected failure).
func statusForError(err error) (status int, isWarn bool) {
	if errors.Is(err, cluster.ErrInvalidArgument) || errors.Is(err, cluster.ErrOutOfRange) {
		return http.StatusBadRequest, true
	}
	return http.StatusInternalServerError, false
}
