package slab

import s "github.com/bnclabs/gosettings"

// Slabsize default size of a slab.
const Slabsize = int64(4 * 1024 * 1024)

// Minslabsize minimum size allowed for a slab.
const Minslabsize = int64(16)

// Maxarenasize maximum size of a memory arena.
const Maxarenasize = int64(1024 * 1024 * 1024 * 1024)

// Defaultsettings for slab package.
//
//	"slabsize" (int64, default: 4MB)
//	    Size of a single slab. Allocation requests smaller than
//	    or equal to slabsize are bump allocated from the active
//	    slab, larger requests get a dedicated slab.
func Defaultsettings() s.Settings {
	setts := s.Settings{
		"slabsize": Slabsize,
	}
	return setts
}
