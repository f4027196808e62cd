package cluster

// Clusterer partitions an MSet (here, a DocumentSource) into a ClusterSet.
// Implementations are one-shot: Cluster's result depends only on its
// argument, though whether a second call on the same instance reuses
// internal state is unspecified.
type Clusterer interface {
	Cluster(mset DocumentSource) (*ClusterSet, error)
	Description() string
}

func buildPoints(mset DocumentSource) ([]Point, *TermListGroup, error) {
	docs, err := drainSource(mset, 0)
	if err != nil {
		return nil, nil, err
	}
	tlg := newTermListGroupFromDocs(docs)
	points := make([]Point, len(docs))
	for i, d := range docs {
		points[i].Initialize(tlg, d)
	}
	return points, tlg, nil
}
