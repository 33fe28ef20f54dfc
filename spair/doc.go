// Package spair implements the recursive similarity-simulation decision
// procedure: deciding whether vertex v of G semantically simulates vertex u
// of G_D under thresholds sigma (vertex similarity) and delta (accumulated
// path score), with a descendant fan-out cap k.
//
// The engine memoizes every decided pair in a Cache, optimistically marks a
// pair positive before its recursion settles (to break cycles in mutually
// recursive calls), and maintains a ReverseCache so that a later negative
// revision can invalidate and re-decide every ancestor that counted the
// pair as a witness — without a global cache flush.
//
// Grounded on the original tool's her/spair.h; see DESIGN.md.
package spair
