package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graunt-labs/docluster/internal/model"
	"github.com/graunt-labs/docluster/internal/registry"
	"github.com/graunt-labs/docluster/pkg/cluster"
)

func newTestHandler() *Handler {
	reg := registry.New()
	reg.RegisterClusterer("kmeans", func(k, maxIters int) cluster.Clusterer {
		return cluster.NewKMeans(k, maxIters)
	})
	reg.RegisterClusterer("roundrobin", func(k, maxIters int) cluster.Clusterer {
		return cluster.NewRoundRobin(k)
	})
	reg.RegisterSimilarity("cosine", cluster.NewCosineDistance())
	reg.RegisterSimilarity("jaccard", cluster.NewJaccardMinHash())
	return NewHandler(reg, nil)
}

func postCluster(t *testing.T, h *Handler, req model.ClusterRequest) (*httptest.ResponseRecorder, model.ClusterResponse) {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	r := httptest.NewRequest(http.MethodPost, "/api/cluster", bytes.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	var resp model.ClusterResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// TestHandleClusterRoundRobinRoundTrip exercises the documented HTTP round
// trip: six raw documents, k=3, strategy=roundrobin, and the response
// groups document i into cluster i mod k the same way the RoundRobin unit
// test does.
func TestHandleClusterRoundRobinRoundTrip(t *testing.T) {
	h := newTestHandler()
	req := model.ClusterRequest{
		Documents: []string{"doc0", "doc1", "doc2", "doc3", "doc4", "doc5"},
		K:         3,
		Strategy:  "roundrobin",
	}

	w, resp := postCluster(t, h, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Round Robin Clusterer", resp.Strategy)
	require.Len(t, resp.Clusters, 3)

	wantDocs := map[int][]string{
		0: {"doc0", "doc3"},
		1: {"doc1", "doc4"},
		2: {"doc2", "doc5"},
	}
	for _, cl := range resp.Clusters {
		assert.ElementsMatch(t, wantDocs[cl.Index], cl.Documents)
	}
}

func TestHandleClusterDefaultsToKMeans(t *testing.T) {
	h := newTestHandler()
	req := model.ClusterRequest{
		Documents: []string{"apple banana", "banana cherry", "date fig", "fig grape"},
		K:         2,
	}

	w, resp := postCluster(t, h, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "KMeans Clusterer", resp.Strategy)
	assert.Len(t, resp.Clusters, 2)
}

func TestHandleClusterAcceptsRequestedSimilarity(t *testing.T) {
	h := newTestHandler()
	req := model.ClusterRequest{
		Documents:  []string{"apple banana", "banana cherry", "date fig", "fig grape"},
		K:          2,
		Similarity: "jaccard",
	}

	w, _ := postCluster(t, h, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleClusterUnknownStrategy(t *testing.T) {
	h := newTestHandler()
	req := model.ClusterRequest{
		Documents: []string{"a", "b"},
		K:         1,
		Strategy:  "hierarchical",
	}

	w, _ := postCluster(t, h, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleClusterUnknownSimilarity(t *testing.T) {
	h := newTestHandler()
	req := model.ClusterRequest{
		Documents:  []string{"a", "b"},
		K:          1,
		Strategy:   "roundrobin",
		Similarity: "euclidean",
	}

	w, _ := postCluster(t, h, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleClusterInvalidArgument(t *testing.T) {
	h := newTestHandler()
	req := model.ClusterRequest{
		Documents: nil,
		K:         3,
		Strategy:  "kmeans",
	}

	w, _ := postCluster(t, h, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleClusterMalformedBody(t *testing.T) {
	h := newTestHandler()
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	r := httptest.NewRequest(http.MethodPost, "/api/cluster", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
