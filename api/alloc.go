// Package api define types and interfaces common to the string-store
// components implemented by this package.
package api

// Mallocer interface for slab based memory management. Implementations
// own one or more large blocks of memory, called slabs, and serve
// allocation requests by advancing a cursor within the active slab.
// Byte ranges handed out by a Mallocer are never moved, reused or
// reclaimed individually; they remain valid until the Mallocer itself
// is released.
type Mallocer interface {
	// Alloc next n bytes from the active slab, acquiring a new slab
	// when the active slab cannot hold n bytes. Returned range is
	// stable for the lifetime of the Mallocer. Returns
	// ErrorOutofMemory if acquiring a new slab would exceed the
	// configured capacity.
	Alloc(n int64) ([]byte, error)

	// Slabsize is the configured size for new slabs. Requests larger
	// than slabsize are served from a dedicated slab of exactly the
	// requested size.
	Slabsize() int64

	// Slabcount number of slabs acquired so far.
	Slabcount() int64

	// Allocated number of bytes handed out to application.
	Allocated() int64

	// Remaining number of free bytes in the active slab.
	Remaining() int64

	// Info of memory accounting: capacity is the configured limit,
	// heap the bytes acquired from the runtime, alloc the bytes
	// handed out and overhead the cost of book-keeping, including
	// slab tails skipped while rolling over.
	Info() (capacity, heap, alloc, overhead int64)

	// Utilization is the ratio between allocated bytes and heap
	// footprint.
	Utilization() float64

	// Release slabs and resources held by this Mallocer. All ranges
	// handed out so far are invalidated.
	Release()
}
