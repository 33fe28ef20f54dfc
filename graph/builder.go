package graph

import "sort"

// pendingEdge records one edge before CSR offsets are known.
type pendingEdge struct {
	from, to ID
	label    string
}

// Builder accumulates vertices and edges, then compiles them into an
// immutable Graph. It mirrors the two-pass shape of loader.LoadGraph: every
// vertex must be added before any edge that references it.
type Builder struct {
	labels   []string
	external []string
	ext2int  map[string]ID
	edges    []pendingEdge
	incoming bool
}

// NewBuilder creates an empty Builder. When withIncoming is true, Build also
// compiles an incoming-adjacency CSR index (needed by h_r when walking
// ancestors is ever required; unused by the forward-only descendant BFS but
// kept available for callers that need it).
func NewBuilder(withIncoming bool) *Builder {
	return &Builder{
		ext2int:  make(map[string]ID),
		incoming: withIncoming,
	}
}

// AddVertex registers a vertex with the given external id and (already
// lowercased, trimmed) label, returning its internal id. Returns
// ErrEmptyExternalID or ErrDuplicateVertex on invalid input.
func (b *Builder) AddVertex(external, label string) (ID, error) {
	if external == "" {
		return 0, ErrEmptyExternalID
	}
	if _, exists := b.ext2int[external]; exists {
		return 0, ErrDuplicateVertex
	}
	id := len(b.labels)
	b.ext2int[external] = id
	b.labels = append(b.labels, label)
	b.external = append(b.external, external)
	return id, nil
}

// Lookup maps an external id already registered via AddVertex to its
// internal id, mirroring the original tool's VertexMap::GetLid. Used by a
// loader building edges against external ids read from an edge file.
func (b *Builder) Lookup(external string) (ID, bool) {
	id, ok := b.ext2int[external]
	return id, ok
}

// AddEdge registers a directed edge between two internal vertex ids already
// returned by AddVertex. Returns ErrUnknownEndpoint if either id is out of
// range.
func (b *Builder) AddEdge(from, to ID, label string) error {
	if from < 0 || from >= len(b.labels) || to < 0 || to >= len(b.labels) {
		return ErrUnknownEndpoint
	}
	b.edges = append(b.edges, pendingEdge{from: from, to: to, label: label})
	return nil
}

// Build compiles the accumulated vertices and edges into an immutable Graph.
// Complexity: O(V + E log E) for the stable sort of edges by endpoint.
func (b *Builder) Build() *Graph {
	n := len(b.labels)
	g := &Graph{
		labels:   b.labels,
		external: b.external,
		ext2int:  b.ext2int,
		outStart: make([]int, n+1),
	}

	sorted := make([]pendingEdge, len(b.edges))
	copy(sorted, b.edges)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].from < sorted[j].from })

	g.outEdges = make([]Edge, len(sorted))
	for i, e := range sorted {
		g.outEdges[i] = Edge{To: e.to, Label: e.label}
	}
	for _, e := range sorted {
		g.outStart[e.from+1]++
	}
	for v := 0; v < n; v++ {
		g.outStart[v+1] += g.outStart[v]
	}

	if b.incoming {
		sortedIn := make([]pendingEdge, len(b.edges))
		copy(sortedIn, b.edges)
		sort.SliceStable(sortedIn, func(i, j int) bool { return sortedIn[i].to < sortedIn[j].to })

		g.inStart = make([]int, n+1)
		g.inEdges = make([]Edge, len(sortedIn))
		for i, e := range sortedIn {
			g.inEdges[i] = Edge{To: e.from, Label: e.label}
		}
		for _, e := range sortedIn {
			g.inStart[e.to+1]++
		}
		for v := 0; v < n; v++ {
			g.inStart[v+1] += g.inStart[v]
		}
	}

	return g
}
