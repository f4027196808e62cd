package cluster

import "github.com/pkg/errors"

// RoundRobin is the simplest Clusterer: the document at MSet index i is
// assigned to cluster i mod k. It never computes centroids; callers that
// need them call ClusterSet.RecalculateCentroids themselves.
type RoundRobin struct {
	k int
}

// NewRoundRobin returns a RoundRobin clusterer that will build k clusters.
func NewRoundRobin(k int) *RoundRobin {
	return &RoundRobin{k: k}
}

// Description returns the clusterer's display name.
func (*RoundRobin) Description() string {
	return "Round Robin Clusterer"
}

// Cluster builds k empty clusters, then appends the point for MSet
// document i to cluster i mod k. It returns ErrInvalidArgument when k == 0
// or mset is empty.
func (r *RoundRobin) Cluster(mset DocumentSource) (*ClusterSet, error) {
	if r.k == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "RoundRobin: k must be greater than zero")
	}
	if mset.Size() == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "RoundRobin: mset must not be empty")
	}

	points, _, err := buildPoints(mset)
	if err != nil {
		return nil, err
	}

	cset := NewClusterSet()
	for i := 0; i < r.k; i++ {
		cset.AddCluster(NewCluster())
	}
	for i, p := range points {
		if err := cset.AddToCluster(p, i%r.k); err != nil {
			return nil, err
		}
	}
	return cset, nil
}
