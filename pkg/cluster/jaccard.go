package cluster

import "hash/fnv"

// numMinHashFunctions is the width of the MinHash signature used by
// JaccardMinHash. Larger values approximate the true Jaccard similarity
// more closely at the cost of more hashing per point.
const numMinHashFunctions = 100

// JaccardMinHash approximates the Jaccard similarity of two PointTypes'
// term sets (ignoring TF-IDF weight entirely, unlike CosineDistance) via
// fixed-width MinHash signatures over the term strings. It demonstrates
// that Similarity is genuinely pluggable; KMeans defaults to CosineDistance
// and doesn't require this metric, and RoundRobin uses no metric at all.
type JaccardMinHash struct{}

// NewJaccardMinHash returns a JaccardMinHash similarity metric.
func NewJaccardMinHash() JaccardMinHash {
	return JaccardMinHash{}
}

// Similarity returns the fraction of the numMinHashFunctions hash slots
// where a's and b's MinHash signatures agree, an unbiased estimator of the
// true Jaccard similarity between their term sets.
func (JaccardMinHash) Similarity(a, b *PointType) float64 {
	sigA := minHashSignature(a.termlist)
	sigB := minHashSignature(b.termlist)
	matches := 0
	for i := 0; i < numMinHashFunctions; i++ {
		if sigA[i] == sigB[i] {
			matches++
		}
	}
	return float64(matches) / float64(numMinHashFunctions)
}

// Description returns the metric's display name.
func (JaccardMinHash) Description() string {
	return "Jaccard MinHash Similarity"
}

func minHashSignature(terms []string) []uint32 {
	sig := make([]uint32, numMinHashFunctions)
	for i := range sig {
		sig[i] = ^uint32(0)
	}
	for _, term := range terms {
		for i := 0; i < numMinHashFunctions; i++ {
			h := hashTerm(term, uint32(i))
			if h < sig[i] {
				sig[i] = h
			}
		}
	}
	return sig
}

func hashTerm(term string, seed uint32) uint32 {
	h := fnv.New32a()
	h.Write([]byte{byte(seed), byte(seed >> 8), byte(seed >> 16), byte(seed >> 24)})
	h.Write([]byte(term))
	return h.Sum32()
}
