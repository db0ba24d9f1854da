package retained

import "sync"

// ============================================================================
// Node Slice Pooling
// ============================================================================
//
// Hit testing and realization build short-lived node slices on every input
// event and every layout pass. Pooling them keeps wheel scrolling through a
// large virtualized list allocation-free.
//
// Usage:
//   chain := acquireHitChain(0)
//   ... append to chain ...
//   releaseHitChain(chain)

// hitChainPool pools slices used for hit test chains.
var hitChainPool = sync.Pool{
	New: func() interface{} {
		return make([]*Node, 0, 32)
	},
}

// acquireHitChain gets a node slice for hit chain tracking.
// The returned slice has len == n and may have cap > n.
func acquireHitChain(n int) []*Node {
	slice := hitChainPool.Get().([]*Node)
	if cap(slice) < n {
		hitChainPool.Put(slice[:0])
		return make([]*Node, n, n*2)
	}
	return slice[:n]
}

// releaseHitChain returns a hit chain slice to the pool.
func releaseHitChain(slice []*Node) {
	if slice == nil {
		return
	}
	for i := range slice {
		slice[i] = nil
	}
	if cap(slice) <= 64 {
		hitChainPool.Put(slice[:0])
	}
}

// nodeSlicePool pools the per-pass ordering slices used by realizers.
var nodeSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]*Node, 0, 16)
	},
}

// acquireNodeSlice gets an empty node slice with room for at least n nodes.
func acquireNodeSlice(n int) []*Node {
	slice := nodeSlicePool.Get().([]*Node)
	if cap(slice) < n {
		nodeSlicePool.Put(slice[:0])
		return make([]*Node, 0, n*2)
	}
	return slice[:0]
}

// releaseNodeSlice returns a node slice to the pool.
func releaseNodeSlice(slice []*Node) {
	if slice == nil {
		return
	}
	slice = slice[:cap(slice)]
	for i := range slice {
		slice[i] = nil
	}
	if cap(slice) <= 256 {
		nodeSlicePool.Put(slice[:0])
	}
}

// ============================================================================
// Recycle Pool
// ============================================================================

// recyclePool holds detached item nodes for reuse by one container. Pools
// are never shared between containers, so tearing one container down
// cannot hand another container a node it still references.
type recyclePool struct {
	nodes []*Node
	limit int // <= 0 means unbounded
}

func (p *recyclePool) get() *Node {
	n := len(p.nodes)
	if n == 0 {
		return nil
	}
	node := p.nodes[n-1]
	p.nodes[n-1] = nil
	p.nodes = p.nodes[:n-1]
	return node
}

// put resets node and keeps it unless the pool is full.
func (p *recyclePool) put(node *Node) {
	node.ResetToDefaults()
	if p.limit > 0 && len(p.nodes) >= p.limit {
		return
	}
	p.nodes = append(p.nodes, node)
}

func (p *recyclePool) len() int { return len(p.nodes) }

func (p *recyclePool) clear() {
	for i := range p.nodes {
		p.nodes[i] = nil
	}
	p.nodes = p.nodes[:0]
}
