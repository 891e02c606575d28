package strstore

import humanize "github.com/dustin/go-humanize"

// Stats return a map of store statistics and arena diagnostics.
//
//	"n_entries"        number of canonical entries
//	"n_hits"           interns resolved to an existing entry
//	"n_misses"         interns that created a new entry
//	"n_collisions"     entries whose hash bucket was already occupied
//	"n_lookups"        n_hits + n_misses
//	"textmemory"       canonical bytes held, including terminators
//	"maxtextsize"      configured text size limit
//	"slab.count"       slabs acquired by the arena
//	"slab.remaining"   free bytes in the arena's active slab
//	"slab.capacity"    arena capacity
//	"slab.heap"        arena footprint
//	"slab.alloc"       arena bytes handed out
//	"slab.overhead"    arena book-keeping overhead
//	"slab.utilization" alloc / heap
//	"h_textlen"        histogram of canonical text lengths
func (store *Store) Stats() map[string]interface{} {
	m := make(map[string]interface{})
	m["n_entries"] = store.n_entries
	m["n_hits"] = store.n_hits
	m["n_misses"] = store.n_misses
	m["n_collisions"] = store.n_collisions
	m["n_lookups"] = store.n_hits + store.n_misses
	m["textmemory"] = store.textmemory
	m["maxtextsize"] = store.maxtextsize
	capacity, heap, alloc, overhead := store.arena.Info()
	m["slab.count"] = store.slabcount
	m["slab.remaining"] = store.remaining
	m["slab.capacity"] = capacity
	m["slab.heap"] = heap
	m["slab.alloc"] = alloc
	m["slab.overhead"] = overhead
	m["slab.utilization"] = store.arena.Utilization()
	m["h_textlen"] = store.h_textlen.Fullstats()
	return m
}

// Validate store invariants, panic on failure. Walks every hash
// bucket, expensive on large stores.
func (store *Store) Validate() {
	if store.released {
		panicerr("%v Validate(): store released", store.logprefix)
	}
	entries, textmemory := int64(0), int64(0)
	for hash, bucket := range store.table {
		for i, canonical := range bucket {
			if hashtext(canonical) != hash {
				fmsg := "%v bucket %x holds %q"
				panicerr(fmsg, store.logprefix, hash, canonical)
			}
			for _, other := range bucket[i+1:] {
				if other == canonical {
					fmsg := "%v duplicate entry %q"
					panicerr(fmsg, store.logprefix, canonical)
				}
			}
			entries++
			textmemory += int64(len(canonical)) + 1
		}
	}
	if entries != store.n_entries {
		fmsg := "%v n_entries %v, expected %v"
		panicerr(fmsg, store.logprefix, store.n_entries, entries)
	} else if textmemory != store.textmemory {
		fmsg := "%v textmemory %v, expected %v"
		panicerr(fmsg, store.logprefix, store.textmemory, textmemory)
	} else if n := store.h_textlen.Samples(); n != store.n_entries {
		fmsg := "%v histogram samples %v, expected %v"
		panicerr(fmsg, store.logprefix, n, store.n_entries)
	} else if store.textmemory > store.arena.Allocated() {
		fmsg := "%v textmemory %v exceeds arena alloc %v"
		panicerr(fmsg, store.logprefix, store.textmemory, store.arena.Allocated())
	}
}

// Log vital statistics to log file at info level.
func (store *Store) Log() {
	if store.released {
		panicerr("%v Log(): store released", store.logprefix)
	}
	lookups := store.n_hits + store.n_misses
	ratio := float64(0)
	if lookups > 0 {
		ratio = float64(store.n_hits) / float64(lookups)
	}
	fmsg := "%v entries:%v lookups:%v dedup:%.2f%% collisions:%v\n"
	infof(fmsg, store.logprefix, store.n_entries, lookups, ratio*100,
		store.n_collisions)
	_, heap, _, _ := store.arena.Info()
	fmsg = "%v textmemory:%v arena{slabs:%v heap:%v utilization:%.2f%%}\n"
	infof(fmsg, store.logprefix,
		humanize.Bytes(uint64(store.textmemory)), store.slabcount,
		humanize.Bytes(uint64(heap)), store.arena.Utilization()*100)
	infof("%v h_textlen %v\n", store.logprefix, store.h_textlen.Logstring())
}
