package graph

// ID is the internal, dense vertex identifier: 0..|V|-1 within one Graph.
type ID = int

// Edge describes one outgoing connection from a vertex: its target and the
// (already lowercased) label on the connecting edge.
type Edge struct {
	To    ID
	Label string
}

// Graph is an immutable directed labeled graph with dense integer vertex
// ids, CSR-style outgoing adjacency, and an external-id<->internal-id map.
//
// Instances are built once by a Builder and never mutated afterwards; all
// accessor methods are safe to call concurrently from many goroutines.
type Graph struct {
	labels   []string // labels[v] = lowercased label of vertex v
	external []string // external[v] = caller-supplied external id of vertex v
	outStart []int    // CSR offsets into outEdges, length |V|+1
	outEdges []Edge   // flattened outgoing adjacency, outEdges[outStart[v]:outStart[v+1]]
	inStart  []int    // CSR offsets into inEdges, nil unless incoming adjacency was built
	inEdges  []Edge   // flattened incoming adjacency (Edge.To holds the *source* vertex)

	ext2int map[string]ID // external id -> internal id
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.labels) }

// Vertices returns the ordered id range 0..|V|-1.
func (g *Graph) Vertices() []ID {
	out := make([]ID, len(g.labels))
	for i := range out {
		out[i] = i
	}
	return out
}

// Label returns the lowercased label of vertex v. Panics if v is out of range,
// since that indicates a caller bug (an id obtained from this same Graph can
// never be out of range).
func (g *Graph) Label(v ID) string {
	return g.labels[v]
}

// OutDegree returns the number of outgoing edges of v.
func (g *Graph) OutDegree(v ID) int {
	return g.outStart[v+1] - g.outStart[v]
}

// OutEdges returns the outgoing edges of v, in CSR insertion order.
func (g *Graph) OutEdges(v ID) []Edge {
	return g.outEdges[g.outStart[v]:g.outStart[v+1]]
}

// HasIncoming reports whether this Graph built an incoming adjacency index.
func (g *Graph) HasIncoming() bool {
	return g.inStart != nil
}

// InDegree returns the number of incoming edges of v. Requires incoming
// adjacency to have been built (see NewBuilder's withIncoming); returns 0
// otherwise.
func (g *Graph) InDegree(v ID) int {
	if g.inStart == nil {
		return 0
	}
	return g.inStart[v+1] - g.inStart[v]
}

// InEdges returns the incoming edges of v (Edge.To is the source vertex of
// each incoming edge). Requires incoming adjacency to have been built.
func (g *Graph) InEdges(v ID) []Edge {
	if g.inStart == nil {
		return nil
	}
	return g.inEdges[g.inStart[v]:g.inStart[v+1]]
}

// GetInternal maps a caller-supplied external id to its internal id.
func (g *Graph) GetInternal(external string) (ID, bool) {
	v, ok := g.ext2int[external]
	return v, ok
}

// GetExternal maps an internal id back to its external id.
func (g *Graph) GetExternal(v ID) string {
	return g.external[v]
}
