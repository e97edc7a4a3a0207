package ntree

import (
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/hupe1980/ntree/geom"
	"github.com/hupe1980/ntree/internal/tree"
	"github.com/hupe1980/ntree/resource"
)

// Index stores payloads at points of a fixed region of D-dimensional space.
//
// The zero value is not usable; create indexes with New. An Index is not
// safe for concurrent use: callers must serialize mutations with any other
// call. Queries may run concurrently with each other.
type Index[K comparable] struct {
	dim      int
	capacity int
	maxDepth int
	root     *tree.Node[K]
	registry map[K]geom.Vector // payload -> stored point

	metrics MetricsCollector
	logger  *Logger
	queries *resource.Controller
}

// Neighbor is a payload returned by KNN with its stored point and distance
// to the query.
type Neighbor[K comparable] struct {
	Payload  K
	Point    geom.Vector
	Distance float64
}

// New creates an empty index over the region spanned by the corners p1 and
// p2 of a dimension-dimensional space. Membership is half-open: a point
// belongs to the region iff min[i] <= p[i] < max[i] on every axis.
func New[K comparable](dimension int, p1, p2 []float64, optFns ...Option) (*Index[K], error) {
	if dimension < 1 || dimension > geom.MaxDimension {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}
	for _, p := range [][]float64{p1, p2} {
		if len(p) != dimension {
			return nil, &ErrDimensionMismatch{Expected: dimension, Actual: len(p)}
		}
		if !geom.Vector(p).IsFinite() {
			return nil, fmt.Errorf("%w: corner %v", ErrInvalidRegion, geom.Vector(p))
		}
	}
	region := geom.NewRegion(p1, p2)
	if region.IsEmpty() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRegion, region)
	}

	o := applyOptions(optFns)
	if o.capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if o.maxDepth < 1 || o.maxDepth > MaxDepthLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxDepth, o.maxDepth)
	}

	idx := &Index[K]{
		dim:      dimension,
		capacity: o.capacity,
		maxDepth: o.maxDepth,
		root: tree.New[K](region, &tree.Config{
			Capacity: o.capacity,
			MaxDepth: o.maxDepth,
			Hook:     o.hook,
		}),
		registry: make(map[K]geom.Vector),
		metrics:  o.metricsCollector,
		logger:   o.logger.WithDimension(dimension),
		queries:  resource.NewController(o.queryLimits),
	}
	idx.logger.Debug("index created",
		"region", region.String(),
		"capacity", o.capacity,
		"max_depth", o.maxDepth,
	)
	return idx, nil
}

// Dimension returns the number of coordinates of every point.
func (idx *Index[K]) Dimension() int { return idx.dim }

// Capacity returns the number of entries a leaf holds before it splits.
func (idx *Index[K]) Capacity() int { return idx.capacity }

// MaxDepth returns the depth at which leaves stop splitting.
func (idx *Index[K]) MaxDepth() int { return idx.maxDepth }

// Bounds returns the region of the index.
func (idx *Index[K]) Bounds() geom.Region { return idx.root.Region() }

// Len returns the number of stored payloads.
func (idx *Index[K]) Len() int { return len(idx.registry) }

// Position returns the point payload is stored at.
func (idx *Index[K]) Position(payload K) (geom.Vector, bool) {
	p, ok := idx.registry[payload]
	return p.Clone(), ok
}

// All iterates over every stored payload and its point, in no particular
// order. The index must not be mutated during iteration.
func (idx *Index[K]) All() iter.Seq2[K, geom.Vector] {
	return func(yield func(K, geom.Vector) bool) {
		for payload, p := range idx.registry {
			if !yield(payload, p.Clone()) {
				return
			}
		}
	}
}

// Add stores payload at point p.
//
// It returns ErrOutOfRegion if p is not inside the index region,
// *ErrDimensionMismatch if p has the wrong length and ErrAlreadyExists if
// payload is already stored (use Move to relocate it).
func (idx *Index[K]) Add(p []float64, payload K) error {
	start := time.Now()
	err := idx.add(p, payload)
	idx.metrics.RecordAdd(time.Since(start), err)
	idx.logger.LogAdd(payload, err)
	return err
}

func (idx *Index[K]) add(p []float64, payload K) error {
	v, err := idx.inside(p)
	if err != nil {
		return err
	}
	if _, ok := idx.registry[payload]; ok {
		return fmt.Errorf("%w: payload %v", ErrAlreadyExists, payload)
	}
	idx.registry[payload] = v
	idx.root.Insert(tree.Entry[K]{Point: v, Payload: payload})
	return nil
}

// Remove deletes payload from the index. It returns ErrNotFound if payload
// is not stored.
func (idx *Index[K]) Remove(payload K) error {
	start := time.Now()
	err := idx.remove(payload)
	idx.metrics.RecordRemove(time.Since(start), err)
	idx.logger.LogRemove(payload, err)
	return err
}

func (idx *Index[K]) remove(payload K) error {
	p, ok := idx.registry[payload]
	if !ok {
		return fmt.Errorf("%w: payload %v", ErrNotFound, payload)
	}
	delete(idx.registry, payload)
	if !idx.root.Delete(tree.Entry[K]{Point: p, Payload: payload}) {
		panic(fmt.Sprintf("ntree: payload %v registered at %v but not stored", payload, p))
	}
	return nil
}

// Move relocates payload to point p.
//
// It returns ErrNotFound if payload is not stored, and ErrOutOfRegion or
// *ErrDimensionMismatch if p is not a valid point; the index is unchanged
// on error.
func (idx *Index[K]) Move(payload K, p []float64) error {
	start := time.Now()
	err := idx.move(payload, p)
	idx.metrics.RecordMove(time.Since(start), err)
	idx.logger.LogMove(payload, err)
	return err
}

func (idx *Index[K]) move(payload K, p []float64) error {
	from, ok := idx.registry[payload]
	if !ok {
		return fmt.Errorf("%w: payload %v", ErrNotFound, payload)
	}
	to, err := idx.inside(p)
	if err != nil {
		return err
	}
	if !idx.root.Move(tree.Entry[K]{Point: from, Payload: payload}, to) {
		panic(fmt.Sprintf("ntree: payload %v registered at %v but not stored", payload, from))
	}
	idx.registry[payload] = to
	return nil
}

// Nearest returns up to k payloads closest to p, in ascending distance.
// Equidistant payloads come in an unspecified but stable order.
func (idx *Index[K]) Nearest(p []float64, k int) ([]K, error) {
	neighbors, err := idx.KNN(p, k)
	if err != nil {
		return nil, err
	}
	out := make([]K, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.Payload
	}
	return out, nil
}

// KNN returns up to k neighbors of p with their points and distances, in
// ascending distance. p may lie outside the index region.
func (idx *Index[K]) KNN(p []float64, k int) ([]Neighbor[K], error) {
	start := time.Now()
	neighbors, err := idx.knn(p, k)
	idx.metrics.RecordSearch(k, time.Since(start), err)
	idx.logger.LogSearch(k, len(neighbors), err)
	return neighbors, err
}

func (idx *Index[K]) knn(p []float64, k int) ([]Neighbor[K], error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	q, err := idx.query(p)
	if err != nil {
		return nil, err
	}
	found := idx.root.KNN(q, k)
	out := make([]Neighbor[K], len(found))
	for i, n := range found {
		out[i] = Neighbor[K]{Payload: n.Payload, Point: n.Point.Clone(), Distance: n.Distance}
	}
	return out, nil
}

// InRadius returns every payload whose point lies within radius of p, in no
// particular order. p may lie outside the index region.
func (idx *Index[K]) InRadius(p []float64, radius float64) ([]K, error) {
	start := time.Now()
	found, err := idx.inRadius(p, radius)
	idx.metrics.RecordRadiusSearch(len(found), time.Since(start), err)
	idx.logger.LogRadiusSearch(radius, len(found), err)
	return found, err
}

func (idx *Index[K]) inRadius(p []float64, radius float64) ([]K, error) {
	if radius < 0 || math.IsNaN(radius) {
		return nil, ErrInvalidRadius
	}
	q, err := idx.query(p)
	if err != nil {
		return nil, err
	}
	entries := idx.root.AppendInRadius(nil, q, radius)
	out := make([]K, len(entries))
	for i, e := range entries {
		out[i] = e.Payload
	}
	return out, nil
}

// Regions returns the region of every node currently in the tree, parents
// before children. It exists for drawing the partition and has no bearing
// on query results.
func (idx *Index[K]) Regions() []geom.Region {
	return idx.root.AppendRegions(nil)
}

// Stats reports the shape of the tree.
func (idx *Index[K]) Stats() Stats {
	return idx.root.Stats()
}

func (idx *Index[K]) String() string {
	return fmt.Sprintf("ntree dim=%d capacity=%d root=%s", idx.dim, idx.capacity, idx.root)
}

func (idx *Index[K]) query(p []float64) (geom.Vector, error) {
	if len(p) != idx.dim {
		return nil, &ErrDimensionMismatch{Expected: idx.dim, Actual: len(p)}
	}
	return geom.Vector(p), nil
}

// inside validates p as a storable point and returns a private copy.
func (idx *Index[K]) inside(p []float64) (geom.Vector, error) {
	v, err := idx.query(p)
	if err != nil {
		return nil, err
	}
	if !idx.root.Region().Contains(v) {
		return nil, fmt.Errorf("%w: %v not in %s", ErrOutOfRegion, v, idx.root.Region())
	}
	return v.Clone(), nil
}
