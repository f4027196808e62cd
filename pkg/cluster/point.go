package cluster

import "math"

// PointType is the sparse term-weight vector shared by Point and Centroid:
// a term -> weight map, an insertion-ordered termlist used for iteration,
// and a magnitude cached as the sum of squared weights.
//
// The original C++ API modeled Point and Centroid as subclasses of an
// abstract PointType. Go has no inheritance, so PointType is embedded by
// value in both Point and Centroid instead; algorithms that only need the
// sparse-vector view (similarity, mean) take a *PointType.
type PointType struct {
	values    map[string]float64
	termlist  []string
	magnitude float64
}

// GetValue returns the weight stored for term, or 0.0 if term is absent.
func (p *PointType) GetValue(term string) float64 {
	return p.values[term]
}

// Contains reports whether term has a stored weight.
func (p *PointType) Contains(term string) bool {
	_, ok := p.values[term]
	return ok
}

// SetValue replaces the weight for term and updates the cached magnitude.
// A term not previously present is appended to the termlist.
func (p *PointType) SetValue(term string, value float64) {
	if p.values == nil {
		p.values = make(map[string]float64)
	}
	old, existed := p.values[term]
	p.values[term] = value
	if !existed {
		p.termlist = append(p.termlist, term)
		p.magnitude += value * value
		return
	}
	p.magnitude += value*value - old*old
}

// AddValue adds value to the existing weight for term (inserting it at 0
// first if absent) and updates the cached magnitude.
func (p *PointType) AddValue(term string, value float64) {
	if p.values == nil {
		p.values = make(map[string]float64)
	}
	old, existed := p.values[term]
	p.values[term] = old + value
	if !existed {
		p.termlist = append(p.termlist, term)
	}
	p.magnitude += value*value + 2*old*value
}

// GetMagnitude returns the cached sum of squared weights.
func (p *PointType) GetMagnitude() float64 {
	return p.magnitude
}

// TermListSize returns the number of distinct terms stored.
func (p *PointType) TermListSize() int {
	return len(p.termlist)
}

// RecalcMagnitude resets the cached magnitude to the sum of squared
// current weights. Callers must invoke this explicitly after an operation
// (like Centroid.Divide) that doesn't keep the cache in sync.
func (p *PointType) RecalcMagnitude() {
	sum := 0.0
	for _, term := range p.termlist {
		w := p.values[term]
		sum += w * w
	}
	p.magnitude = sum
}

func (p *PointType) clear() {
	p.values = nil
	p.termlist = nil
	p.magnitude = 0
}

// Norm returns sqrt(GetMagnitude()), the Euclidean length of the vector.
func (p *PointType) Norm() float64 {
	return math.Sqrt(p.magnitude)
}

// TermListIterator returns a forward iterator over the point's stored
// (term, wdf) entries in insertion order.
func (p *PointType) TermListIterator() *TermIterator {
	return &TermIterator{point: p, idx: -1}
}

// TermIterator walks a PointType's termlist in insertion order. It mirrors
// the shape of a full index term iterator, but several operations are
// unimplemented on a point-backed iterator: a Point's termlist doesn't
// carry positional or corpus-wide term-frequency information, only the
// precomputed TF-IDF weight.
type TermIterator struct {
	point *PointType
	idx   int
}

// Next advances the iterator and reports whether a term is available.
func (it *TermIterator) Next() bool {
	it.idx++
	return it.idx < len(it.point.termlist)
}

// AtEnd reports whether the iterator has been exhausted.
func (it *TermIterator) AtEnd() bool {
	return it.idx >= len(it.point.termlist)
}

// Term returns the term at the iterator's current position.
func (it *TermIterator) Term() string {
	return it.point.termlist[it.idx]
}

// SkipTo advances the iterator to the first entry equal to term. It
// assumes term is present at or after the current position; if it is not
// found the iterator is left at end and ok is false.
func (it *TermIterator) SkipTo(term string) (ok bool) {
	for it.idx < len(it.point.termlist) {
		if it.point.termlist[it.idx] == term {
			return true
		}
		it.idx++
	}
	return false
}

// WDF is unimplemented for a point-backed iterator: points don't retain
// true within-document frequencies, only the derived TF-IDF weight.
func (it *TermIterator) WDF() (int, error) {
	return 0, ErrUnimplemented
}

// TermFreq is unimplemented for a point-backed iterator: corpus-wide
// document frequency isn't retained on the point itself.
func (it *TermIterator) TermFreq() (int, error) {
	return 0, ErrUnimplemented
}

// PositionListCount is unimplemented for a point-backed iterator.
func (it *TermIterator) PositionListCount() (int, error) {
	return 0, ErrUnimplemented
}

// Point specializes PointType with the Document handle it was built from.
type Point struct {
	PointType
	doc Document
}

// Initialize computes the TF-IDF weight of every distinct term in doc
// against freq (typically a *TermListGroup spanning the whole MSet) and
// stores the result, replacing any previous contents of the point.
//
//	wdf' = max(wdf, 1)
//	tf   = 1 + ln(wdf')
//	idf  = ln(N / df)   when df > 0, else 0 (avoids a division by zero)
//	w    = tf * idf
func (p *Point) Initialize(freq FreqSource, doc Document) {
	p.clear()
	p.doc = doc
	n := float64(freq.DocCount())
	for _, occ := range doc.Terms() {
		wdf := occ.WDF
		if wdf < 1 {
			wdf = 1
		}
		df := freq.TermFreq(occ.Term)
		var idf float64
		if df > 0 {
			idf = math.Log(n / float64(df))
		}
		tf := 1 + math.Log(float64(wdf))
		w := tf * idf
		p.values[occ.Term] = w
		p.termlist = append(p.termlist, occ.Term)
		p.magnitude += w * w
	}
}

func (p *Point) clear() {
	p.PointType.clear()
	if p.values == nil {
		p.values = make(map[string]float64)
	}
}

// GetDocument returns the Document handle this Point was built from.
func (p *Point) GetDocument() Document {
	return p.doc
}

// Centroid specializes PointType as a cluster's representative vector; it
// has no associated Document.
type Centroid struct {
	PointType
}

// SetToPoint copies every (term, weight) from p into the centroid and
// sets the centroid's magnitude equal to p's.
func (c *Centroid) SetToPoint(p *Point) {
	c.values = make(map[string]float64, len(p.values))
	c.termlist = append([]string(nil), p.termlist...)
	for term, w := range p.values {
		c.values[term] = w
	}
	c.magnitude = p.magnitude
}

// Divide divides every stored weight by n. It does not recompute the
// cached magnitude; call RecalcMagnitude afterwards if the magnitude will
// be consulted.
func (c *Centroid) Divide(n int) {
	if n == 0 {
		return
	}
	divisor := float64(n)
	for term := range c.values {
		c.values[term] /= divisor
	}
}

// Clear empties the centroid's weights, termlist, and magnitude.
func (c *Centroid) Clear() {
	c.clear()
}

func (c *Centroid) addFrom(p *Point) {
	if c.values == nil {
		c.values = make(map[string]float64)
	}
	for _, term := range p.termlist {
		w := p.values[term]
		if _, ok := c.values[term]; !ok {
			c.termlist = append(c.termlist, term)
		}
		c.values[term] += w
	}
}
