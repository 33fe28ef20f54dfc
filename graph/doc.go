// Package graph is the immutable, dense-integer-id directed labeled graph
// store shared by every matching engine in this repository.
//
// A Graph is built once by loader.LoadGraph and never mutated afterwards:
// vertex ids are 0..|V|-1, labels are interned strings, and outgoing (and
// optionally incoming) adjacency is stored CSR-style for O(out-degree)
// iteration. An external id (the caller's own vertex identifier) maps to
// its internal id and back through a small bidirectional table.
//
// Read access from multiple goroutines is always safe once a Graph is
// built; there is no locking because there is nothing left to mutate.
package graph
