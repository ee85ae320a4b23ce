// Package metrics computes node-level structural measures (degree,
// in-degree, out-degree, coreness) for graphframe containers by
// converting their tables into gonum graph/simple representations and
// reading the measures back keyed by node ID.
//
// Measure semantics are simple-graph semantics: self-loops are skipped
// during conversion and parallel edges collapse to one. For undirected
// containers, InDegree and OutDegree both equal the total degree.
//
// The usual workflow pairs a measure with the container's attribute and
// aggregation machinery:
//
//	out, _ := metrics.OutDegree(g)
//	_ = g.SetNodeAttrs("outdegree", asValues(out))
//	mean, _ := g.AggregateNodeAttr(tabular.ByName("outdegree"), tabular.AggMean)
//
// AttachDegree performs the attach step for all three degree columns in
// one call.
package metrics
