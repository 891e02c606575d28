// Package slab supplies arena based memory management for in-memory
// stores that allocate many small, immutable blocks.
//
// An arena reserves memory from the operating system in fixed size
// slabs and serves allocation requests by advancing a cursor within
// the active slab. Allocated blocks never move for the lifetime of
// the arena and individual blocks cannot be freed, the only way to
// reclaim memory is to Release the entire arena. Requests larger
// than the slab size are served from a dedicated slab of exactly the
// requested size.
//
// Arenas are not thread safe.
package slab
