package cluster

import "github.com/pkg/errors"

// kmeansSafetyCap bounds the number of iterations when maxIters == 0
// ("no cap"), so a pathological input can't loop forever.
const kmeansSafetyCap = 100

// KMeans implements iterative assign-then-update clustering: seed k
// centroids, assign every point to its nearest (most similar) centroid,
// recompute centroids as the mean of their assigned points, and repeat
// until assignments stop changing or maxIters is reached.
type KMeans struct {
	k          int
	maxIters   int
	similarity Similarity
}

// NewKMeans returns a KMeans clusterer targeting k clusters. maxIters == 0
// means "no cap"; a hard safety cap of 100 iterations is applied instead.
// The assignment metric defaults to CosineDistance; see SetSimilarity.
func NewKMeans(k, maxIters int) *KMeans {
	return &KMeans{k: k, maxIters: maxIters}
}

// SetSimilarity replaces the metric used during assignment. Passing a nil
// sim is a no-op; KMeans falls back to CosineDistance when none has been
// set.
func (km *KMeans) SetSimilarity(sim Similarity) {
	if sim != nil {
		km.similarity = sim
	}
}

// Description returns the clusterer's display name.
func (*KMeans) Description() string {
	return "KMeans Clusterer"
}

// Cluster runs the K-Means state machine described in package cluster's
// design: Init (build points), Seed (first k points become centroids),
// Assign (nearest-centroid by cosine similarity, ties to the lowest
// index), Update (recompute non-empty clusters' centroids), repeating
// Assign/Update until no point changes cluster or the iteration cap is
// hit.
func (km *KMeans) Cluster(mset DocumentSource) (*ClusterSet, error) {
	size := mset.Size()
	if km.k == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "KMeans: k must be greater than zero")
	}
	if size == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "KMeans: mset must not be empty")
	}
	if km.k > size {
		return nil, errors.Wrapf(ErrInvalidArgument, "KMeans: k (%d) must not exceed mset size (%d)", km.k, size)
	}

	points, _, err := buildPoints(mset)
	if err != nil {
		return nil, err
	}

	cset := NewClusterSet()
	for i := 0; i < km.k; i++ {
		var seed Centroid
		seed.SetToPoint(&points[i])
		cset.AddCluster(NewClusterWithCentroid(seed))
	}

	cap := km.maxIters
	if cap == 0 {
		cap = kmeansSafetyCap
	}

	sim := km.similarity
	if sim == nil {
		sim = NewCosineDistance()
	}
	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < cap; iter++ {
		cset.ClearClusters()
		changed := false

		for i := range points {
			best, bestSim := 0, -1.0
			for c := 0; c < km.k; c++ {
				centroid := cset.At(c).GetCentroid()
				s := sim.Similarity(&points[i].PointType, &centroid.PointType)
				if s > bestSim {
					bestSim, best = s, c
				}
			}
			if assignments[i] != best {
				changed = true
				assignments[i] = best
			}
			if err := cset.AddToCluster(points[i], best); err != nil {
				return nil, err
			}
		}

		// Update: recompute non-empty clusters' centroids as the mean
		// of their points; an empty cluster keeps its previous
		// centroid rather than collapsing to zero.
		for c := 0; c < km.k; c++ {
			cl := cset.At(c)
			if cl.Size() > 0 {
				cl.Recalculate()
			}
		}

		if !changed {
			break
		}
	}

	return cset, nil
}
