package slab

import "fmt"
import "math/rand"
import "testing"

import "github.com/bnclabs/gostrstore/api"
import s "github.com/bnclabs/gosettings"

var _ = fmt.Sprintf("dummy")

func TestNewarena(t *testing.T) {
	capacity := int64(10 * 1024 * 1024)
	arena := NewArena(capacity, Defaultsettings())
	if x := arena.Slabsize(); x != Slabsize {
		t.Errorf("expected %v, got %v", Slabsize, x)
	} else if x := arena.Slabcount(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	} else if x := arena.Remaining(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	arena.Release()

	// nil settings fall back to defaults.
	arena = NewArena(capacity, nil)
	if x := arena.Slabsize(); x != Slabsize {
		t.Errorf("expected %v, got %v", Slabsize, x)
	}
	arena.Release()

	// panic cases
	fn := func(capacity int64, setts s.Settings) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		NewArena(capacity, setts)
	}
	fn(0, nil)
	fn(-1000, nil)
	fn(Maxarenasize+1, nil)
	fn(1024, s.Settings{"slabsize": Minslabsize - 1})
	fn(1024, s.Settings{"slabsize": 2048})
	// the default slabsize must fit the capacity as well.
	fn(Slabsize-1, nil)
}

func TestArenaAlloc(t *testing.T) {
	arena := NewArena(1024, s.Settings{"slabsize": 16})
	block1, err := arena.Alloc(8)
	if err != nil {
		t.Error(err)
	} else if len(block1) != 8 {
		t.Errorf("expected %v, got %v", 8, len(block1))
	}
	for i, ch := range block1 {
		if ch != 0 {
			t.Errorf("expected zero-filled block, got %v at %v", ch, i)
		}
	}
	if x := arena.Slabcount(); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	} else if x := arena.Remaining(); x != 8 {
		t.Errorf("expected %v, got %v", 8, x)
	}
	// same slab serves the next request.
	block2, _ := arena.Alloc(8)
	if &block2[0] != &arena.slabs[0][8] {
		t.Errorf("expected block2 from slab1")
	} else if x := arena.Remaining(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	// exhausted slab rolls over to a new one.
	block3, _ := arena.Alloc(8)
	if &block3[0] != &arena.slabs[1][0] {
		t.Errorf("expected block3 from slab2")
	} else if x := arena.Slabcount(); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	}
	if x := arena.Allocated(); x != 24 {
		t.Errorf("expected %v, got %v", 24, x)
	} else if x := arena.Allocations(); x != 3 {
		t.Errorf("expected %v, got %v", 3, x)
	}
	arena.Validate()
	arena.Release()

	// panic cases
	fn := func(n int64) {
		arena := NewArena(1024, s.Settings{"slabsize": 16})
		defer func() {
			arena.Release()
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		arena.Alloc(n)
	}
	fn(0)
	fn(-8)
}

func TestArenaDisjoint(t *testing.T) {
	arena := NewArena(1024*1024, s.Settings{"slabsize": 64})
	blocks := [][]byte{}
	for i := 0; i < 1000; i++ {
		block, err := arena.Alloc(int64(rand.Intn(64) + 1))
		if err != nil {
			t.Fatal(err)
		}
		// stamp each block with its own pattern.
		for j := range block {
			block[j] = byte(i % 256)
		}
		blocks = append(blocks, block)
	}
	// overlapping ranges would have clobbered an earlier pattern.
	for i, block := range blocks {
		for j, ch := range block {
			if ch != byte(i%256) {
				t.Fatalf("block %v byte %v: got %v", i, j, ch)
			}
		}
	}
	// full slice expression pins capacity to length.
	for i, block := range blocks {
		if cap(block) != len(block) {
			t.Fatalf("block %v: cap %v, len %v", i, cap(block), len(block))
		}
	}
	arena.Validate()
	arena.Release()
}

func TestArenaExactfit(t *testing.T) {
	arena := NewArena(1024, s.Settings{"slabsize": 16})
	if block, _ := arena.Alloc(16); len(block) != 16 {
		t.Errorf("expected %v, got %v", 16, len(block))
	}
	// exact fit does not acquire a second slab.
	if x := arena.Slabcount(); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	} else if x := arena.Remaining(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	// next request does.
	arena.Alloc(1)
	if x := arena.Slabcount(); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	} else if x := arena.Wasted(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	arena.Validate()
	arena.Release()
}

func TestArenaOversize(t *testing.T) {
	arena := NewArena(1024, s.Settings{"slabsize": 16})
	arena.Alloc(4)
	remaining := arena.Remaining()

	block, err := arena.Alloc(21)
	if err != nil {
		t.Error(err)
	} else if len(block) != 21 {
		t.Errorf("expected %v, got %v", 21, len(block))
	}
	// dedicated slab, active slab cursor is untouched.
	if x := arena.Slabcount(); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	} else if x := arena.Remaining(); x != remaining {
		t.Errorf("expected %v, got %v", remaining, x)
	} else if x := arena.Wasted(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	// active slab still serves small requests.
	arena.Alloc(4)
	if x := arena.Slabcount(); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	}
	arena.Validate()
	arena.Release()
}

func TestArenaOutofmemory(t *testing.T) {
	arena := NewArena(32, s.Settings{"slabsize": 16})
	arena.Alloc(10)
	arena.Alloc(10) // rolls over, 6 bytes wasted
	if _, err := arena.Alloc(10); err != api.ErrorOutofMemory {
		t.Errorf("expected %v, got %v", api.ErrorOutofMemory, err)
	}
	// arena remains usable for requests that still fit.
	if _, err := arena.Alloc(6); err != nil {
		t.Error(err)
	}
	if _, err := arena.Alloc(1); err != api.ErrorOutofMemory {
		t.Errorf("expected %v, got %v", api.ErrorOutofMemory, err)
	}
	if x := arena.Wasted(); x != 6 {
		t.Errorf("expected %v, got %v", 6, x)
	}
	arena.Validate()
	arena.Release()

	// an oversize request beyond capacity fails upfront.
	arena = NewArena(32, s.Settings{"slabsize": 16})
	if _, err := arena.Alloc(33); err != api.ErrorOutofMemory {
		t.Errorf("expected %v, got %v", api.ErrorOutofMemory, err)
	}
	if x := arena.Slabcount(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	arena.Release()
}

func TestArenaStability(t *testing.T) {
	arena := NewArena(1024*1024, s.Settings{"slabsize": 64})
	block, err := arena.Alloc(32)
	if err != nil {
		t.Fatal(err)
	}
	for i := range block {
		block[i] = 0xA5
	}
	base := &block[0]
	for i := 0; i < 1000; i++ {
		arena.Alloc(int64(rand.Intn(64) + 1))
	}
	if &block[0] != base {
		t.Errorf("expected block base to be stable")
	}
	for i, ch := range block {
		if ch != 0xA5 {
			t.Errorf("expected 0xA5, got %v at %v", ch, i)
		}
	}
	arena.Release()
}

func TestArenaInfo(t *testing.T) {
	arena := NewArena(1024, s.Settings{"slabsize": 16})
	arena.Alloc(10)
	arena.Alloc(10)
	arena.Alloc(21)
	capacity, heap, alloc, overhead := arena.Info()
	if capacity != 1024 {
		t.Errorf("expected %v, got %v", 1024, capacity)
	} else if heap != 53 {
		t.Errorf("expected %v, got %v", 53, heap)
	} else if alloc != 41 {
		t.Errorf("expected %v, got %v", 41, alloc)
	} else if overhead != 12 {
		t.Errorf("expected %v, got %v", 12, overhead)
	}
	if u := arena.Utilization(); u < 0.77 || u > 0.78 {
		t.Errorf("unexpected utilization %v", u)
	}
	arena.Validate()

	// tampered accounting should fail validation.
	fn := func() {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		arena.alloc++
		arena.Validate()
	}
	fn()
	arena.alloc--
	arena.Release()

	arena = NewArena(1024, s.Settings{"slabsize": 16})
	if u := arena.Utilization(); u != 0 {
		t.Errorf("expected %v, got %v", 0, u)
	}
	arena.Release()
}

func TestArenaRelease(t *testing.T) {
	arena := NewArena(1024, s.Settings{"slabsize": 16})
	arena.Alloc(8)
	arena.Release()

	fn := func(fn func()) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("expected panic")
			}
		}()
		fn()
	}
	fn(func() { arena.Alloc(8) })
	fn(func() { arena.Validate() })
	fn(func() { arena.Release() })
}

func BenchmarkArenaAlloc(b *testing.B) {
	arena := NewArena(Maxarenasize, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arena.Alloc(24); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
}

func BenchmarkArenaOversize(b *testing.B) {
	arena := NewArena(Maxarenasize, s.Settings{"slabsize": 16})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := arena.Alloc(17); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
}
