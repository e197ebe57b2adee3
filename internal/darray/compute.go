package darray

import "github.com/skyer30232909/pylops-distributed/internal/parallel"

// evalConfig drives chunk-level parallelism during materialization.
var evalConfig = parallel.DefaultConfig()

// Compute materializes the array's task graph and returns a handle over the
// concrete result. The call blocks until every dependent node has been
// evaluated; shared nodes are evaluated once and reused by any other array
// referencing them. Computing an already-materialized array is a no-op.
func (a *Array) Compute() *Array {
	a.node.materialize(a.chunk, evalConfig)
	return a
}

// Compute materializes an array. Package-level form of (*Array).Compute.
func Compute(a *Array) *Array {
	return a.Compute()
}
