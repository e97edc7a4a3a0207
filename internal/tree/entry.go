package tree

import "github.com/hupe1980/ntree/geom"

// Entry pairs a point with its payload. Entries are matched by payload, never
// by position.
type Entry[K comparable] struct {
	Point   geom.Vector
	Payload K
}

func (e Entry[K]) matches(payload K) bool {
	return e.Payload == payload
}
