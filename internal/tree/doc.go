// Package tree implements the recursive 2^D-ary partitioning tree behind the
// index.
//
// A Node is either a leaf holding entries or an internal node holding up to
// 2^D children keyed by geom.Direction. A leaf that overflows its capacity
// splits one level: it becomes internal and routes its entries into lazily
// created children, which may split again in turn. An internal node whose
// count drops to the capacity or below collapses back into a leaf holding
// every descendant entry.
//
// Splitting never separates identical points, so the depth of the tree is
// capped by Config.MaxDepth. A leaf at that depth keeps accepting entries
// beyond its capacity.
//
// Nodes are not safe for concurrent mutation. Concurrent searches are safe as
// long as nothing mutates the tree and the configured Hook tolerates
// concurrent calls.
package tree
