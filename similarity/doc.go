// Package similarity defines the h_v/h_p/h_r capability set as an external
// collaborator of the matching engines, plus default implementations
// grounded on the original tool's cosine-similarity / synonym-table /
// BFS-descendant producer.
//
// VertexScorer, PathScorer, and DescendantProducer are the only contract
// spair, vpair, and apair depend on; callers may substitute their own
// implementations without touching the matching engines.
package similarity
