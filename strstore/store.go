package strstore

import "fmt"

import "github.com/bnclabs/gostrstore/api"
import "github.com/bnclabs/gostrstore/lib"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Store is a deduplicating string store. Texts are interned into
// arena memory exactly once, equal texts always resolve to the same
// canonical string. Not thread safe.
type Store struct {
	// statistics
	n_entries    int64
	n_hits       int64
	n_misses     int64
	n_collisions int64
	textmemory   int64 // canonical bytes held, including terminators

	name      string
	logprefix string

	// arena is borrowed, it must outlive this store.
	arena api.Mallocer
	table map[uint32][]string

	// arena diagnostics, refreshed after every new entry.
	remaining int64
	slabcount int64

	h_textlen   *lib.HistogramInt64
	maxtextsize int64
	released    bool
}

// NewStore create a new string store drawing memory from arena. The
// arena is borrowed: releasing the store does not release the arena,
// and several stores can share one arena. Apart from the mandatory
// name and arena arguments, acceptable settings are documented by
// Defaultsettings().
func NewStore(name string, arena api.Mallocer, setts s.Settings) *Store {
	store := &Store{
		name:      name,
		logprefix: fmt.Sprintf("STRSTORE [%v]", name),
		arena:     arena,
		table:     make(map[uint32][]string),
		h_textlen: lib.NewhistogramInt64(),
	}
	store.readsettings(setts)
	if store.maxtextsize <= api.MinTextsize {
		panicerr("%v invalid maxtextsize %v", store.logprefix, store.maxtextsize)
	}
	store.remaining, store.slabcount = arena.Remaining(), arena.Slabcount()

	capacity, _, _, _ := arena.Info()
	fmsg := "%v started with arena {slabsize:%v capacity:%v} maxtextsize:%v\n"
	slabsize := humanize.Bytes(uint64(arena.Slabsize()))
	infof(fmsg, store.logprefix, slabsize,
		humanize.Bytes(uint64(capacity)),
		humanize.Bytes(uint64(store.maxtextsize)))
	return store
}

func (store *Store) readsettings(setts s.Settings) *Store {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	store.maxtextsize = setts.Int64("maxtextsize")
	return store
}

// Intern return the canonical string for text, adding a new entry if
// this is the first sighting of text. The returned string is backed
// by arena memory and stays valid, at the same address, until the
// arena is released.
func (store *Store) Intern(text string) (string, error) {
	if store.released {
		return "", api.ErrorStoreReleased
	} else if int64(len(text)) > store.maxtextsize {
		return "", api.ErrorTextTooLarge
	}
	hash := hashtext(text)
	bucket := store.table[hash]
	for _, canonical := range bucket {
		if canonical == text {
			store.n_hits++
			return canonical, nil
		}
	}
	// first sighting, copy text into the arena followed by a 0x00
	// terminator unit and morph the copy into the canonical string.
	block, err := store.arena.Alloc(int64(len(text)) + 1)
	if err != nil {
		return "", err
	}
	copy(block, text)
	block[len(text)] = 0x00
	canonical := lib.Bytes2str(block[:len(text)])
	store.table[hash] = append(bucket, canonical)
	if len(bucket) > 0 {
		store.n_collisions++
	}
	store.n_misses++
	store.n_entries++
	store.textmemory += int64(len(text)) + 1
	store.h_textlen.Add(int64(len(text)))
	store.remaining = store.arena.Remaining()
	store.slabcount = store.arena.Slabcount()
	return canonical, nil
}

// InternBytes is Intern for byte-slice input. The input slice is
// copied on first sighting and never retained, callers are free to
// reuse it.
func (store *Store) InternBytes(text []byte) (string, error) {
	return store.Intern(lib.Bytes2str(text))
}

// Has return whether a canonical copy of text is present. Lookup
// statistics are not touched.
func (store *Store) Has(text string) bool {
	for _, canonical := range store.table[hashtext(text)] {
		if canonical == text {
			return true
		}
	}
	return false
}

// Count return the number of canonical entries held by this store.
func (store *Store) Count() int64 {
	return store.n_entries
}

// Name return the name this store was constructed with.
func (store *Store) Name() string {
	return store.name
}

// Release resources held by this store. The borrowed arena is left
// untouched: canonical strings handed out so far stay valid until the
// arena itself is released. Subsequent calls to Intern return
// api.ErrorStoreReleased.
func (store *Store) Release() {
	if store.released {
		panicerr("%v Release(): store already released", store.logprefix)
	}
	fmsg := "%v released with %v entries holding %v\n"
	infof(fmsg, store.logprefix, store.n_entries,
		humanize.Bytes(uint64(store.textmemory)))
	store.n_entries, store.n_hits, store.n_misses = 0, 0, 0
	store.n_collisions, store.textmemory = 0, 0
	store.table, store.released = nil, true
}
