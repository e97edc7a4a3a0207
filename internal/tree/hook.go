package tree

import "github.com/hupe1980/ntree/geom"

// Hook receives structural and search events from the tree. All methods are
// called synchronously from the operation that triggers them.
type Hook interface {
	// OnSplit is called when a leaf holding count entries becomes internal.
	OnSplit(region geom.Region, depth, count int)
	// OnCollapse is called when an internal node folds back into a leaf.
	OnCollapse(region geom.Region, depth, count int)
	// OnVisit is called for every node a search descends into.
	OnVisit(region geom.Region, depth int)
	// OnPrune is called for every node a search proves it can skip.
	OnPrune(region geom.Region, depth int)
}

// NoopHook ignores every event.
type NoopHook struct{}

func (NoopHook) OnSplit(geom.Region, int, int)    {}
func (NoopHook) OnCollapse(geom.Region, int, int) {}
func (NoopHook) OnVisit(geom.Region, int)         {}
func (NoopHook) OnPrune(geom.Region, int)         {}
