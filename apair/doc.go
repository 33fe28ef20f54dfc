// Package apair implements the distributed, multi-threaded all-pairs
// driver: across an SPMD "world" of rank/worldSize processes, it shards
// candidate u's by rank, further splits each rank's share across worker
// goroutines, uses the inverted index to cheaply filter candidate v's per
// u, and finally decides each filtered pair serially through one shared
// spair.Engine per rank.
//
// There is no real MPI binding in this repository's dependency stack;
// Rank/WorldSize are supplied by the caller (from CLI flags or environment
// variables set by a job-array launcher), and the per-rank worker fan-out
// uses plain goroutines.
//
// Grounded on the original tool's her/apair_parallel.h.
package apair
