package slab

import "github.com/bnclabs/gostrstore/api"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Arena of memory, organized as a chain of fixed size slabs. Not
// thread safe.
type Arena struct {
	// statistics
	nallocs int64
	heap    int64 // total bytes acquired as slabs
	alloc   int64 // total bytes handed out
	wasted  int64 // bytes stranded at the tail of retired slabs

	capacity int64 // memory capacity to be managed by this arena
	slabsize int64
	slabs    [][]byte // all slabs, in acquisition order
	active   []byte   // slab currently served by the cursor
	cursor   int64
	released bool
}

// NewArena create a new memory arena. Apart from the mandatory
// capacity argument, acceptable settings are documented by
// Defaultsettings().
func NewArena(capacity int64, setts s.Settings) *Arena {
	arena := (&Arena{capacity: capacity}).readsettings(setts)
	if capacity <= 0 {
		panicerr("invalid capacity %v", capacity)
	} else if capacity > Maxarenasize {
		fmsg := "capacity cannot exceed %v bytes (%v)"
		panicerr(fmsg, capacity, humanize.Bytes(uint64(Maxarenasize)))
	}
	if arena.slabsize < Minslabsize {
		fmsg := "slabsize %v cannot be less than %v"
		panicerr(fmsg, arena.slabsize, Minslabsize)
	} else if arena.slabsize > arena.capacity {
		fmsg := "slabsize %v cannot exceed capacity %v"
		panicerr(fmsg, arena.slabsize, arena.capacity)
	}
	return arena
}

func (arena *Arena) readsettings(setts s.Settings) *Arena {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	arena.slabsize = setts.Int64("slabsize")
	return arena
}

// Alloc implement api.Mallocer{} interface. The returned range is
// zero-filled, aliases no other range, and keeps its base address and
// contents until the arena is released.
func (arena *Arena) Alloc(n int64) ([]byte, error) {
	if arena.released {
		panicerr("Alloc(): arena released")
	} else if n <= 0 {
		panicerr("Alloc(): invalid size %v", n)
	}
	// requests larger than a slab get a dedicated slab of n bytes,
	// the active slab and its cursor are left untouched.
	if n > arena.slabsize {
		block, err := arena.addslab(n)
		if err != nil {
			return nil, err
		}
		arena.alloc, arena.nallocs = arena.alloc+n, arena.nallocs+1
		return block, nil
	}
	if arena.active == nil || (int64(len(arena.active))-arena.cursor) < n {
		block, err := arena.addslab(arena.slabsize)
		if err != nil {
			return nil, err
		}
		if arena.active != nil {
			arena.wasted += int64(len(arena.active)) - arena.cursor
		}
		arena.active, arena.cursor = block, 0
	}
	block := arena.active[arena.cursor : arena.cursor+n : arena.cursor+n]
	arena.cursor += n
	arena.alloc, arena.nallocs = arena.alloc+n, arena.nallocs+1
	return block, nil
}

func (arena *Arena) addslab(size int64) ([]byte, error) {
	if arena.heap+size > arena.capacity {
		return nil, api.ErrorOutofMemory
	}
	slab := make([]byte, size)
	arena.slabs = append(arena.slabs, slab)
	arena.heap += size
	return slab, nil
}

// Slabsize implement api.Mallocer{} interface.
func (arena *Arena) Slabsize() int64 {
	return arena.slabsize
}

// Slabcount implement api.Mallocer{} interface.
func (arena *Arena) Slabcount() int64 {
	return int64(len(arena.slabs))
}

// Allocated implement api.Mallocer{} interface.
func (arena *Arena) Allocated() int64 {
	return arena.alloc
}

// Remaining implement api.Mallocer{} interface.
func (arena *Arena) Remaining() int64 {
	if arena.active == nil {
		return 0
	}
	return int64(len(arena.active)) - arena.cursor
}

// Allocations return the number of Alloc calls served so far.
func (arena *Arena) Allocations() int64 {
	return arena.nallocs
}

// Wasted return the number of bytes stranded at the tail of retired
// slabs, these bytes shall never be handed out.
func (arena *Arena) Wasted() int64 {
	return arena.wasted
}

// Info implement api.Mallocer{} interface.
func (arena *Arena) Info() (capacity, heap, alloc, overhead int64) {
	return arena.capacity, arena.heap, arena.alloc, arena.heap - arena.alloc
}

// Utilization implement api.Mallocer{} interface.
func (arena *Arena) Utilization() float64 {
	if arena.heap == 0 {
		return 0
	}
	return float64(arena.alloc) / float64(arena.heap)
}

// Release implement api.Mallocer{} interface.
func (arena *Arena) Release() {
	if arena.released {
		panicerr("Release(): arena already released")
	}
	arena.slabs, arena.active, arena.released = nil, nil, true
}

// Validate arena book-keeping invariants, panic on failure.
func (arena *Arena) Validate() {
	if arena.released {
		panicerr("Validate(): arena released")
	}
	heap := int64(0)
	for _, slab := range arena.slabs {
		heap += int64(len(slab))
	}
	if heap != arena.heap {
		panicerr("heap account %v, expected %v", arena.heap, heap)
	}
	tail := int64(0)
	if arena.active != nil {
		tail = int64(len(arena.active)) - arena.cursor
	}
	if total := arena.alloc + arena.wasted + tail; total != heap {
		panicerr("alloc account %v, expected %v", total, heap)
	}
}
