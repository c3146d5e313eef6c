// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

// nodeChain is the compressor's view of the input: one node per original byte
// position, linked by successor indices. A node covers either a single literal
// byte or, after a match is installed, a run of count >= 2 original bytes
// sourced from an earlier node. Splicing a match out of the chain is a single
// index write to the predecessor's next field.
//
// The arena replaces the per-node allocation a linked structure would need:
// a node's index is its byte position, next is initially index+1, and an index
// of len(buf) or beyond means end of chain.

// chainNode fields mirror the per-position match state.
type chainNode struct {
	next    int32 // successor index; >= len(buf) means end
	offset  int32 // index of the match source node, -1 for a literal
	count   int32 // original bytes covered: 1 literal, >= 2 backreference
	counter int32 // token index assigned during serialization
}

// nodeChain holds the arena plus the input view and anchor set for one run.
type nodeChain struct {
	cfg   *Config
	buf   []byte
	nodes []chainNode
	aux   []int32 // record index anchored at each position, -1 for none
}

// init prepares the chain for buf, reusing the arena capacity from a previous
// run. anchors maps byte positions to record indices; positions at or past
// len(buf) are ignored (an empty trailing record has no node to anchor).
func (ch *nodeChain) init(buf []byte, anchors map[int]int, cfg *Config) {
	ch.cfg = cfg
	ch.buf = buf

	n := len(buf)
	if cap(ch.nodes) < n {
		ch.nodes = make([]chainNode, n)
		ch.aux = make([]int32, n)
	}
	ch.nodes = ch.nodes[:n]
	ch.aux = ch.aux[:n]

	for i := range ch.nodes {
		ch.nodes[i] = chainNode{next: int32(i + 1), offset: -1, count: 1}
		ch.aux[i] = -1
	}

	for pos, rec := range anchors {
		if pos < n {
			ch.aux[pos] = int32(rec)
		}
	}
}

// match returns the length of the longest common prefix of the suffixes at
// nodes a and b, capped by the config's match limit for the given token
// distance and by the shorter suffix. A byte in the no-compress set ends the
// scan before being counted.
func (ch *nodeChain) match(a, b, distance int) int {
	limit := ch.cfg.MaxMatchFor(distance)
	limit = min(limit, len(ch.buf)-a, len(ch.buf)-b)

	n := 0
	for n < limit {
		v := ch.buf[a+n]
		if v != ch.buf[b+n] || ch.cfg.noCompress[v] {
			break
		}
		n++
	}

	return n
}

// installMatches is the greedy pass. For each node dptr it walks up to
// maxOffset successors; a candidate cl that shares a prefix of length >= 2
// with dptr may absorb itself and following nodes into a backreference,
// splicing the absorbed run out of the chain.
//
// The walk keeps scanning after an accepted install: a deeper candidate that
// also matches simply re-splices with its own (possibly longer) run. Anchored
// nodes are never absorbed, so every record start stays addressable.
func (ch *nodeChain) installMatches() {
	end := len(ch.nodes)

	for dptr := 0; dptr < end; dptr = int(ch.nodes[dptr].next) {
		cl := dptr
		for d := 0; d < ch.cfg.maxOffset; d++ {
			cl = int(ch.nodes[cl].next)
			if cl >= end {
				break
			}

			m := ch.match(dptr, cl, d)
			if m < minMatch {
				continue
			}

			// Count how many chain nodes the match can absorb without
			// overshooting m or swallowing an anchor. j is the number of
			// original bytes covered, rep the number of nodes removed.
			nn := cl
			j, rep := 0, 0
			for nn < end {
				if ch.aux[nn] >= 0 {
					break
				}

				c := int(ch.nodes[nn].count)
				if j+c > m {
					break
				}

				j += c
				nn = int(ch.nodes[nn].next)
				rep++
			}

			// Splicing out a single node is not a win.
			if rep < 2 {
				continue
			}

			ch.nodes[cl].next = int32(nn)
			ch.nodes[cl].count = int32(j) // j may be short of m if pruning stopped early
			ch.nodes[cl].offset = int32(dptr)
		}
	}
}

// serialize walks the spliced chain emitting one token per node and assigning
// token counters in visit order. recs gains per-record compressed offsets for
// anchored nodes. Appends to out and returns the extended slice.
func (ch *nodeChain) serialize(out []byte, recs []*Record) ([]byte, error) {
	end := len(ch.nodes)
	counter := int32(0)

	for i := 0; i < end; i = int(ch.nodes[i].next) {
		n := &ch.nodes[i]
		if ri := ch.aux[i]; ri >= 0 {
			recs[ri].CompressedOffset = int(counter)
		}
		n.counter = counter

		if n.count > 1 {
			back := int(counter - ch.nodes[n.offset].counter - 1)
			tok, err := ch.cfg.packBackref(back, int(n.count))
			if err != nil {
				return nil, err
			}

			out = append(out, tok)
		} else {
			b := ch.buf[i]
			if b > literalMax {
				return nil, ErrUncompressibleLiteral
			}

			out = append(out, b)
		}

		counter++
	}

	return out, nil
}
