// Package cache implements the CORE's instruction and data caches: two
// 256-set, 4-way set-associative arrays sharing the same addressing scheme
// and the true-LRU replacement policy from package lru.
package cache

// Sets is the number of sets in either cache.
const Sets = 256

// Ways is the associativity of either cache.
const Ways = 4

// split breaks a block number into the set index and tag used to look it up,
// per the original addressing scheme: the low 8 bits select the set, the
// remaining bits form the tag.
func split(number uint32) (set uint16, tag uint32) {
	return uint16(number & 0xff), number >> 8
}
