// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

import "sync"

// nodeChainPool recycles chain arenas across compression runs.
var nodeChainPool = sync.Pool{
	New: func() any {
		return &nodeChain{}
	},
}

// acquireNodeChain acquires a chain arena from the pool.
func acquireNodeChain() *nodeChain {
	return nodeChainPool.Get().(*nodeChain)
}

// releaseNodeChain returns a chain arena to the pool. The node and aux slices
// keep their capacity; the input view is dropped so the pool does not pin it.
func releaseNodeChain(ch *nodeChain) {
	if ch == nil {
		return
	}

	ch.cfg = nil
	ch.buf = nil
	nodeChainPool.Put(ch)
}
