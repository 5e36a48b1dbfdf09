package dfamin

// Golden ratio constant used to seed sequence hashes.
const phiC64 = uint64(0x9e3779b97f4a7c15)

// mix32 is the 32-bit finalization step of MurmurHash3.
func mix32(v int) uint64 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return uint64(k ^ (k >> 16))
}

// mixSequence hashes an ordered sequence of ints; the same values in a
// different order hash differently.
func mixSequence(values []int) uint64 {
	h := uint64(len(values)) * phiC64
	for _, v := range values {
		h = (h ^ mix32(v)) * phiC64
		h ^= h >> 32
	}
	return h
}
