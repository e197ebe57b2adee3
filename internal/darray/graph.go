package darray

import (
	"math/cmplx"
	"sync"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/skyer30232909/pylops-distributed/internal/parallel"
)

// opKind discriminates deferred graph operations.
type opKind int

const (
	opLeaf opKind = iota
	opAdd
	opSub
	opScale
	opConj
	opCopy
	opColumn
	opPack
)

// node is a vertex of the deferred task graph. A node is materialized at
// most once: the first Compute that reaches it stores the result under mu,
// and every later evaluation reuses it. Nodes are shared freely between
// Array handles.
type node struct {
	kind  opKind
	deps  []*node
	alpha complex128 // opScale factor
	col   int        // opColumn index
	ncols int        // opColumn: source column count

	mu   sync.Mutex
	data []complex128
	done bool
}

func newLeaf(data []complex128) *node {
	return &node{kind: opLeaf, data: data, done: true}
}

// materialize evaluates the node's subgraph depth-first and caches the
// result. chunkSize bounds the per-goroutine range for elementwise kernels;
// zero means single-range evaluation.
func (n *node) materialize(chunkSize int, cfg parallel.Config) []complex128 {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.done {
		return n.data
	}

	ins := make([][]complex128, len(n.deps))
	for i, dep := range n.deps {
		ins[i] = dep.materialize(chunkSize, cfg)
	}

	n.data = n.eval(ins, chunkSize, cfg)
	n.done = true
	return n.data
}

// isDone reports whether the node already holds a materialized result.
func (n *node) isDone() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.done
}

// eval runs the node's kernel over materialized inputs.
func (n *node) eval(ins [][]complex128, chunkSize int, cfg parallel.Config) []complex128 {
	switch n.kind {
	case opAdd:
		dst := make([]complex128, len(ins[0]))
		parallel.ForChunks(len(dst), chunkSize, func(s, e int) {
			cmplxs.AddTo(dst[s:e], ins[0][s:e], ins[1][s:e])
		}, cfg)
		return dst
	case opSub:
		dst := make([]complex128, len(ins[0]))
		parallel.ForChunks(len(dst), chunkSize, func(s, e int) {
			cmplxs.SubTo(dst[s:e], ins[0][s:e], ins[1][s:e])
		}, cfg)
		return dst
	case opScale:
		dst := make([]complex128, len(ins[0]))
		parallel.ForChunks(len(dst), chunkSize, func(s, e int) {
			cmplxs.ScaleTo(dst[s:e], n.alpha, ins[0][s:e])
		}, cfg)
		return dst
	case opConj:
		dst := make([]complex128, len(ins[0]))
		parallel.ForChunks(len(dst), chunkSize, func(s, e int) {
			for i := s; i < e; i++ {
				dst[i] = cmplx.Conj(ins[0][i])
			}
		}, cfg)
		return dst
	case opCopy:
		dst := make([]complex128, len(ins[0]))
		copy(dst, ins[0])
		return dst
	case opColumn:
		rows := len(ins[0]) / n.ncols
		dst := make([]complex128, rows)
		for i := 0; i < rows; i++ {
			dst[i] = ins[0][i*n.ncols+n.col]
		}
		return dst
	case opPack:
		k := len(ins)
		rows := len(ins[0])
		dst := make([]complex128, rows*k)
		for j, col := range ins {
			for i := 0; i < rows; i++ {
				dst[i*k+j] = col[i]
			}
		}
		return dst
	default:
		panic("unknown graph op")
	}
}
