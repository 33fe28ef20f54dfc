package spair

import "github.com/resultugay/her/graph"

// Key packs a (u, v) vertex pair into a single comparable value for fast
// map hashing and equality, by bit-shifting the two ids into one 64-bit
// integer. Grounded on the original tool's VertexPair<uint32_t>, which
// packs two 32-bit ids into a uint64; Key is an explicit uint64 on every
// platform, so the same shift-by-32 packing applies.
type Key uint64

// NewKey packs u and v into a Key. u and v must each fit in 32 bits, which
// holds for any graph this repository can address in memory.
func NewKey(u, v graph.ID) Key {
	return Key(uint64(uint32(u))<<32 | uint64(uint32(v)))
}

// U unpacks the u component of the pair.
func (k Key) U() graph.ID { return graph.ID(uint32(k >> 32)) }

// V unpacks the v component of the pair.
func (k Key) V() graph.ID { return graph.ID(uint32(k & 0xFFFFFFFF)) }

// entry is the cached decision for one vertex pair: whether it matched, and
// which descendant pairs (if any) witnessed a positive decision.
type entry struct {
	match     bool
	supported map[Key]struct{}
}

// Cache maps a VertexPair key to its decided (or tentatively marked) match
// entry. Not safe for concurrent use — an Engine owns exactly one Cache and
// is used single-threaded.
type Cache struct {
	m map[Key]*entry
}

// newCache creates an empty Cache.
func newCache() *Cache {
	return &Cache{m: make(map[Key]*entry)}
}

// lookup returns the cached match for key and whether it was present.
func (c *Cache) lookup(key Key) (bool, bool) {
	e, ok := c.m[key]
	if !ok {
		return false, false
	}
	return e.match, true
}

// markUnmatchedAndClear records key as a definitive negative decision with
// an empty supporting set.
func (c *Cache) markUnmatchedAndClear(key Key) {
	c.m[key] = &entry{match: false}
}

// markMatchedAndReturn installs (or resets) key as a positive decision with
// an empty supporting set, returning the set for the caller to populate as
// witnesses are discovered. This is the "tentative" optimistic mark.
func (c *Cache) markMatchedAndReturn(key Key) map[Key]struct{} {
	e := &entry{match: true, supported: make(map[Key]struct{})}
	c.m[key] = e
	return e.supported
}

// erase removes key's cached decision entirely.
func (c *Cache) erase(key Key) {
	delete(c.m, key)
}

// Match reports whether key is cached and, if so, its decision. Read-only,
// safe to expose to callers (vpair/apair) checking the cache before issuing
// a fresh Query.
func (c *Cache) Match(key Key) (bool, bool) {
	return c.lookup(key)
}

// reverseCache maps a vertex pair k to the set of ancestor pairs that
// currently list k in their supporting set — i.e. whose positive decision
// depends on k staying positive.
type reverseCache struct {
	m map[Key]map[Key]struct{}
}

func newReverseCache() *reverseCache {
	return &reverseCache{m: make(map[Key]map[Key]struct{})}
}

func (r *reverseCache) add(child, parent Key) {
	set, ok := r.m[child]
	if !ok {
		set = make(map[Key]struct{})
		r.m[child] = set
	}
	set[parent] = struct{}{}
}

// snapshotAndClear returns a copy of the parents depending on key, then
// clears the entry — ensuring each parent is re-queried at most once per
// cleanup, which bounds the cascade of re-decisions to the size of the
// reverse-cache graph.
func (r *reverseCache) snapshotAndClear(key Key) []Key {
	set, ok := r.m[key]
	if !ok {
		return nil
	}
	out := make([]Key, 0, len(set))
	for parent := range set {
		out = append(out, parent)
	}
	delete(r.m, key)
	return out
}
