package cache

import (
	"github.com/sarchlab/remoulade/insts"
	"github.com/sarchlab/remoulade/lru"
)

// InstructionBlockSize is the number of pre-decoded instructions per
// instruction cache line (a 64-byte line of 4-byte instructions).
const InstructionBlockSize = 16

// InstructionBlock is one instruction cache line: 16 consecutive,
// already-decoded instructions. Decoding happens in the collaborator that
// fetches the raw words and calls Insert; the cache itself never decodes.
type InstructionBlock [InstructionBlockSize]insts.Instruction

// lutEntry remembers a recently resolved block number's set/way so the next
// lookup for the same block can skip the tag comparison across all ways.
type lutEntry struct {
	number uint32
	set    uint16
	way    lru.Way
	valid  bool
}

// Stats counts accesses to a cache for reporting; it does not affect
// behavior.
type Stats struct {
	Reads     uint64
	Hits      uint64
	Misses    uint64
	Inserts   uint64
	Evictions uint64
}

// InstructionCache is the read-only, pre-decoded instruction cache described
// in the core's fetch stage: 256 sets, 4 ways, 16 instructions per line, and
// a 2-entry lookup table for the two most recently resolved block numbers.
type InstructionCache struct {
	data  [Sets][Ways]InstructionBlock
	tags  [Sets][Ways]uint32
	valid [Sets][Ways]bool
	lru   [Sets]lru.State
	lut   [2]lutEntry

	Stats Stats
}

// NewInstructionCache returns an empty instruction cache with every set's
// LRU state initialized to its starting order.
func NewInstructionCache() *InstructionCache {
	c := &InstructionCache{}
	for s := range c.lru {
		c.lru[s] = lru.NewState()
	}
	return c
}

// lookup scans a set's ways for a matching, valid tag.
func (c *InstructionCache) lookup(set uint16, tag uint32) (lru.Way, bool) {
	for way := lru.Way(0); way < Ways; way++ {
		if c.valid[set][way] && c.tags[set][way] == tag {
			return way, true
		}
	}
	return 0, false
}

// touch records a use of (set, way) for replacement purposes.
func (c *InstructionCache) touch(set uint16, way lru.Way) {
	c.lru[set] = c.lru[set].Touch(way)
}

// rememberLUT pushes (number, set, way) into the front of the 2-entry LUT,
// evicting the older of the two remembered block numbers.
func (c *InstructionCache) rememberLUT(number uint32, set uint16, way lru.Way) {
	c.lut[1] = c.lut[0]
	c.lut[0] = lutEntry{number: number, set: set, way: way, valid: true}
}

// Read resolves the instruction at address, returning false on a cache
// miss. The caller is responsible for fetching and decoding the enclosing
// block and calling Insert on a miss.
func (c *InstructionCache) Read(address uint32) (insts.Instruction, bool) {
	c.Stats.Reads++

	number := address >> 6
	offset := (address >> 2) & 0xf

	for _, e := range c.lut {
		if e.valid && e.number == number {
			c.touch(e.set, e.way)
			c.Stats.Hits++
			return c.data[e.set][e.way][offset], true
		}
	}

	set, tag := split(number)
	way, ok := c.lookup(set, tag)
	if !ok {
		c.Stats.Misses++
		return insts.Instruction{}, false
	}

	c.touch(set, way)
	c.rememberLUT(number, set, way)
	c.Stats.Hits++
	return c.data[set][way][offset], true
}

// Insert installs block as the line for number, evicting the
// least-recently-used way of its set. If number is already resident, its
// way is touched and returned and the resident line is left unchanged
// (block is not written). It reports the (set, way) the block occupies.
func (c *InstructionCache) Insert(number uint32, block InstructionBlock) (uint16, lru.Way) {
	c.Stats.Inserts++

	set, tag := split(number)
	if way, ok := c.lookup(set, tag); ok {
		c.touch(set, way)
		c.rememberLUT(number, set, way)
		return set, way
	}

	newState, way := c.lru[set].Replace()
	c.lru[set] = newState
	if c.valid[set][way] {
		c.Stats.Evictions++
	}
	c.data[set][way] = block
	c.tags[set][way] = tag
	c.valid[set][way] = true

	c.rememberLUT(number, set, way)
	return set, way
}
