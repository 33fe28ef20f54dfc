// Package loader parses the line-oriented input files the CLI depends on:
// vertex/edge files (the graph store), source-label files, the word
// embedding table, the synonym table, and the optional precomputed
// descendant and path files.
//
// The graph, embedding, synonym and sources parsers report a non-nil error
// on malformed input (duplicate vertex, missing edge endpoint, mismatched
// embedding dimension, wrong synonym column count, out-of-range synonym
// score, unknown source oid); cmd/her logs each one fatally, matching the
// original tool's CHECK/LOG(FATAL) behavior. LoadDescendants and LoadPaths
// instead skip lines or entries they cannot resolve, and return an error
// only when the file cannot be read.
//
// Grounded on the original tool's her/graph_loader.h and her/her.h's
// LoadData.
package loader
