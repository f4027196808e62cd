package cluster

import "github.com/pkg/errors"

// Cluster owns one Centroid and the ordered list of Points assigned to it.
type Cluster struct {
	centroid Centroid
	points   []Point
}

// NewCluster returns an empty Cluster with a zero centroid.
func NewCluster() *Cluster {
	return &Cluster{}
}

// NewClusterWithCentroid returns a Cluster whose centroid is already set,
// and no assigned points.
func NewClusterWithCentroid(c Centroid) *Cluster {
	return &Cluster{centroid: c}
}

// AddPoint appends p to the cluster's ordered point list.
func (c *Cluster) AddPoint(p Point) {
	c.points = append(c.points, p)
}

// Clear empties the point list. The centroid is left untouched.
func (c *Cluster) Clear() {
	c.points = nil
}

// Size returns the number of points assigned to the cluster.
func (c *Cluster) Size() int {
	return len(c.points)
}

// GetIndex returns the point at index i, or ErrOutOfRange if i is out of
// bounds.
func (c *Cluster) GetIndex(i int) (Point, error) {
	if i < 0 || i >= len(c.points) {
		return Point{}, errors.Wrapf(ErrOutOfRange, "point index %d (size %d)", i, len(c.points))
	}
	return c.points[i], nil
}

// GetDocuments returns the Document handles of every assigned point, in
// insertion order.
func (c *Cluster) GetDocuments() *DocumentSet {
	docs := NewDocumentSet()
	for i := range c.points {
		docs.Add(c.points[i].GetDocument())
	}
	return docs
}

// GetCentroid returns the cluster's current centroid.
func (c *Cluster) GetCentroid() Centroid {
	return c.centroid
}

// SetCentroid replaces the cluster's centroid.
func (c *Cluster) SetCentroid(centroid Centroid) {
	c.centroid = centroid
}

// Recalculate rebuilds the centroid as the component-wise arithmetic mean
// of the cluster's current points: clear the centroid, sum every point's
// weights into it, divide by the point count, and recompute the
// magnitude. An empty cluster is left with a cleared centroid (magnitude
// 0) rather than erroring.
func (c *Cluster) Recalculate() {
	c.centroid.Clear()
	if len(c.points) == 0 {
		return
	}
	for i := range c.points {
		c.centroid.addFrom(&c.points[i])
	}
	c.centroid.Divide(len(c.points))
	c.centroid.RecalcMagnitude()
}

// ClusterSet is an ordered, index-addressable sequence of Clusters.
type ClusterSet struct {
	clusters []*Cluster
}

// NewClusterSet returns an empty ClusterSet.
func NewClusterSet() *ClusterSet {
	return &ClusterSet{}
}

// Size returns the number of clusters in the set.
func (cs *ClusterSet) Size() int {
	return len(cs.clusters)
}

// AddCluster appends c to the set.
func (cs *ClusterSet) AddCluster(c *Cluster) {
	cs.clusters = append(cs.clusters, c)
}

// GetCluster returns the cluster at index i, or ErrOutOfRange if i is out
// of bounds.
func (cs *ClusterSet) GetCluster(i int) (*Cluster, error) {
	if i < 0 || i >= len(cs.clusters) {
		return nil, errors.Wrapf(ErrOutOfRange, "cluster index %d (size %d)", i, len(cs.clusters))
	}
	return cs.clusters[i], nil
}

// At is equivalent to GetCluster but panics on an out-of-range index; it
// exists for callers that have already validated i (e.g. a bounded loop
// over Size()) and want subscript-like ergonomics.
func (cs *ClusterSet) At(i int) *Cluster {
	return cs.clusters[i]
}

// AddToCluster appends point to the cluster at index i.
func (cs *ClusterSet) AddToCluster(point Point, i int) error {
	cl, err := cs.GetCluster(i)
	if err != nil {
		return err
	}
	cl.AddPoint(point)
	return nil
}

// ClearClusters clears the point list of every cluster but retains each
// cluster's centroid.
func (cs *ClusterSet) ClearClusters() {
	for _, cl := range cs.clusters {
		cl.Clear()
	}
}

// RecalculateCentroids invokes Recalculate on every cluster.
func (cs *ClusterSet) RecalculateCentroids() {
	for _, cl := range cs.clusters {
		cl.Recalculate()
	}
}
