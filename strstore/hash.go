package strstore

const fnvoffset32 = uint32(2166136261)
const fnvprime32 = uint32(16777619)

// hashtext return the 32-bit FNV-1a hash of text. Inlined to keep the
// intern hot path free of allocations, hash/fnv works on a Hash32
// object and a []byte copy of the text.
func hashtext(text string) uint32 {
	hash := fnvoffset32
	for i := 0; i < len(text); i++ {
		hash ^= uint32(text[i])
		hash *= fnvprime32
	}
	return hash
}
