package ntree

import "github.com/hupe1980/ntree/internal/tree"

// Hook receives structural and search events from the tree:
//
//	OnSplit(region, depth, count)    a leaf became internal
//	OnCollapse(region, depth, count) an internal node folded into a leaf
//	OnVisit(region, depth)           a search descended into a node
//	OnPrune(region, depth)           a search skipped a node
//
// Methods are called synchronously. Batch queries call them from several
// goroutines at once.
type Hook = tree.Hook

// NoopHook ignores every event. It is the default.
type NoopHook = tree.NoopHook

// Stats describes the shape of the tree.
type Stats = tree.Stats
