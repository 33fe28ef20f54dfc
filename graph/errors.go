package graph

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyExternalID indicates a vertex was added with an empty external id.
	ErrEmptyExternalID = errors.New("graph: external id is empty")

	// ErrDuplicateVertex indicates AddVertex was called twice for the same external id.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex")

	// ErrUnknownEndpoint indicates an edge referenced a vertex id outside 0..|V|-1.
	ErrUnknownEndpoint = errors.New("graph: edge references unknown endpoint")

	// ErrVertexNotFound indicates a lookup referenced a vertex id outside 0..|V|-1.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrExternalIDNotFound indicates no vertex has the given external id.
	// GetInternal reports this case with a false result, not with this error.
	ErrExternalIDNotFound = errors.New("graph: external id not found")
)
