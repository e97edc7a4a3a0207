package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/ntree/geom"
)

// SearchResult identifies a point by its position in the scanned slice.
type SearchResult struct {
	Index    int
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoint returns one point with coordinates in [0, 1).
func (r *RNG) UniformPoint(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := make([]float64, dim)
	for i := range p {
		p[i] = r.rand.Float64()
	}
	return p
}

// UniformPoints generates points with coordinates in [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dim int) [][]float64 {
	return r.UniformRangePoints(num, dim, 0, 1)
}

// UniformRangePoints generates points with coordinates in [minVal, maxVal).
func (r *RNG) UniformRangePoints(num, dim int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	data := make([]float64, num*dim)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates points around random centers inside [0, 1) with
// Gaussian noise of the given spread, clamped back into [0, 1).
// Useful for driving the tree into deep, unbalanced splits.
func (r *RNG) ClusteredPoints(num, dim, clusters int, spread float64) [][]float64 {
	centers := r.UniformPoints(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)

	for i := range num {
		center := centers[i%clusters]
		p := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range p {
			p[j] = clamp01(center[j] + r.rand.NormFloat64()*spread)
		}
		points[i] = p
	}

	return points
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}

// BruteForceNearest performs exact k-nearest search for ground truth.
// Ties keep the order of points.
func BruteForceNearest(points [][]float64, query []float64, k int) []SearchResult {
	results := make([]SearchResult, len(points))
	for i, p := range points {
		results[i] = SearchResult{Index: i, Distance: geom.Vector(query).Distance(p)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

// BruteForceRadius returns the indexes of all points within radius of query,
// in the order of points.
func BruteForceRadius(points [][]float64, query []float64, radius float64) []int {
	var out []int
	for i, p := range points {
		if geom.Vector(query).Distance(p) <= radius {
			out = append(out, i)
		}
	}
	return out
}
