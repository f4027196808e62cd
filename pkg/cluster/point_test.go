package cluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func sumOfSquares(p *PointType) float64 {
	sum := 0.0
	for _, term := range p.termlist {
		v := p.GetValue(term)
		sum += v * v
	}
	return sum
}

func TestPointTypeMagnitudeInvariant(t *testing.T) {
	var p PointType
	p.SetValue("a", 2.0)
	p.AddValue("b", 3.0)
	p.AddValue("a", 1.0) // a is now 3.0
	p.SetValue("c", -4.0)
	p.AddValue("c", 2.0) // c is now -2.0

	require.True(t, scalar.EqualWithinAbs(sumOfSquares(&p), p.GetMagnitude(), 1e-12))
	assert.Equal(t, 3.0, p.GetValue("a"))
	assert.Equal(t, 3.0, p.GetValue("b"))
	assert.Equal(t, -2.0, p.GetValue("c"))
	assert.Equal(t, 3, p.TermListSize())
}

func TestPointTypeGetValueAbsentIsZero(t *testing.T) {
	var p PointType
	assert.Equal(t, 0.0, p.GetValue("missing"))
	assert.False(t, p.Contains("missing"))
}

func TestPointTypeRecalcMagnitude(t *testing.T) {
	var p PointType
	p.SetValue("a", 3.0)
	p.SetValue("b", 4.0)
	require.Equal(t, 25.0, p.GetMagnitude())

	// Divide manually without going through Centroid.Divide to exercise
	// RecalcMagnitude in isolation.
	p.values["a"] /= 2
	p.values["b"] /= 2
	p.RecalcMagnitude()
	assert.True(t, scalar.EqualWithinAbs(p.GetMagnitude(), 1.5*1.5+2*2, 1e-12))
}

func TestPointInitializeTFIDF(t *testing.T) {
	docs := []Document{
		newTextDoc(map[string]int{"common": 1, "rare": 3}),
		newTextDoc(map[string]int{"common": 1}),
		newTextDoc(map[string]int{"common": 1}),
	}
	tlg := newTermListGroupFromDocs(docs)
	require.Equal(t, 3, tlg.DocCount())
	require.Equal(t, 3, tlg.TermFreq("common"))
	require.Equal(t, 1, tlg.TermFreq("rare"))

	var p Point
	p.Initialize(tlg, docs[0])

	// "common" appears in every document: idf == ln(3/3) == 0, so its
	// weight must be exactly 0 and it must not contribute to magnitude.
	assert.Equal(t, 0.0, p.GetValue("common"))

	wantRareWeight := (1 + math.Log(3)) * math.Log(3.0/1.0)
	assert.True(t, scalar.EqualWithinAbs(p.GetValue("rare"), wantRareWeight, 1e-9))
	assert.True(t, scalar.EqualWithinAbs(p.GetMagnitude(), wantRareWeight*wantRareWeight, 1e-9))
}

func TestPointInitializeUnseenTermYieldsZeroIDF(t *testing.T) {
	tlg := newTermListGroupFromDocs([]Document{newTextDoc(map[string]int{"a": 1})})
	doc := newTextDoc(map[string]int{"never-seen": 2})

	var p Point
	p.Initialize(tlg, doc)
	assert.Equal(t, 0.0, p.GetValue("never-seen"))
	assert.Equal(t, 0.0, p.GetMagnitude())
}

func TestCentroidSetToPointAndDivide(t *testing.T) {
	var p Point
	p.SetValue("x", 4.0)
	p.SetValue("y", 2.0)

	var c Centroid
	c.SetToPoint(&p)
	assert.Equal(t, p.GetMagnitude(), c.GetMagnitude())
	assert.Equal(t, 4.0, c.GetValue("x"))

	c.Divide(2)
	// Divide intentionally does not refresh magnitude.
	assert.Equal(t, 2.0, c.GetValue("x"))
	assert.Equal(t, 1.0, c.GetValue("y"))
	assert.Equal(t, p.GetMagnitude(), c.GetMagnitude())

	c.RecalcMagnitude()
	assert.True(t, scalar.EqualWithinAbs(c.GetMagnitude(), 2*2+1*1, 1e-12))
}

func TestCentroidClear(t *testing.T) {
	var c Centroid
	c.SetValue("x", 1.0)
	c.Clear()
	assert.Equal(t, 0, c.TermListSize())
	assert.Equal(t, 0.0, c.GetMagnitude())
	assert.Equal(t, 0.0, c.GetValue("x"))
}

func TestTermIteratorSkipToAndUnimplemented(t *testing.T) {
	var p PointType
	p.SetValue("a", 1)
	p.SetValue("b", 2)
	p.SetValue("c", 3)

	it := p.TermListIterator()
	require.True(t, it.Next())
	ok := it.SkipTo("c")
	require.True(t, ok)
	assert.Equal(t, "c", it.Term())

	_, err := it.WDF()
	assert.ErrorIs(t, err, ErrUnimplemented)
	_, err = it.TermFreq()
	assert.ErrorIs(t, err, ErrUnimplemented)
	_, err = it.PositionListCount()
	assert.ErrorIs(t, err, ErrUnimplemented)
}

func TestTermIteratorSkipToAbsent(t *testing.T) {
	var p PointType
	p.SetValue("a", 1)
	it := p.TermListIterator()
	require.True(t, it.Next())
	assert.False(t, it.SkipTo("not-there"))
	assert.True(t, it.AtEnd())
}
