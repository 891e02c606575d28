// Package strstore implement a deduplicating string store backed by
// a slab arena.
//
// Interning a text returns its canonical string: the first request
// for a text copies it into arena memory, with a trailing 0x00 so
// that the backing bytes double as a C style string, and every later
// request for an equal text returns the same canonical string without
// allocating. Canonical strings never move and remain valid until the
// arena is released, so they are safe to hold, compare and key maps
// with for the lifetime of the arena.
//
// Entries are looked up by a 32-bit content hash; the full text is
// always retained and compared on hash matches, colliding texts are
// kept side by side in the same hash bucket.
//
// Stores are not thread safe, intended to be used by a single writer
// goroutine. Readers holding previously returned canonical strings
// are unaffected, those strings are immutable.
package strstore
