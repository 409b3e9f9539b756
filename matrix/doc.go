// Package matrix provides the Dense row-major float64 matrix used by
// cvxgraph's numeric passes (atom evaluation and gradient assembly).
//
// ✨ Key features:
//   - flat row-major backing slice for cache friendliness
//   - sentinel-error indexing: At/Set return errors, never panic
//   - column extraction/assignment for per-column gradient assembly
//   - Flatten for "treat the whole argument as one vector" semantics
//
// Dense values are plain data: no locks, no hidden state. A Dense is safe
// for concurrent reads; concurrent writes require external coordination.
//
// ⚙️ Usage:
//
//	m, _ := matrix.FromRows([][]float64{{3}, {4}})
//	v := m.Flatten()        // [3 4]
//	col, _ := m.Column(0)   // [3 4]
package matrix
