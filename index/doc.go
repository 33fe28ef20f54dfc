// Package index builds and queries the word -> target-vertex inverted
// index used by apair to cheaply enumerate candidate v's for a given u
// label, instead of scanning every vertex of G.
//
// Build drops a small stopword set; Query does not — the asymmetry is
// intentional and observable, matching the original her/inverted_index.h.
package index
