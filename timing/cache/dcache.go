package cache

import (
	"github.com/sarchlab/remoulade/lru"
)

// DataBlockSize is the number of bytes in a data cache line.
const DataBlockSize = 64

// DataBlock is one data cache line.
type DataBlock [DataBlockSize]byte

// DataCache is the core's writable data cache: 256 sets, 4 ways, 64-byte
// lines, little-endian byte/half/word writes addressed by an offset within
// the line. It has no backing-store knowledge of its own; a collaborator
// fetches and writes back blocks by block number and owns the coherence
// and eviction policy that sits above the cache.
type DataCache struct {
	data  [Sets][Ways]DataBlock
	tags  [Sets][Ways]uint32
	valid [Sets][Ways]bool
	lru   [Sets]lru.State

	Stats Stats
}

// NewDataCache returns an empty data cache with every set's LRU state
// initialized to its starting order.
func NewDataCache() *DataCache {
	c := &DataCache{}
	for s := range c.lru {
		c.lru[s] = lru.NewState()
	}
	return c
}

func (c *DataCache) lookup(set uint16, tag uint32) (lru.Way, bool) {
	for way := lru.Way(0); way < Ways; way++ {
		if c.valid[set][way] && c.tags[set][way] == tag {
			return way, true
		}
	}
	return 0, false
}

func (c *DataCache) touch(set uint16, way lru.Way) {
	c.lru[set] = c.lru[set].Touch(way)
}

// GetBlockByNumber looks up the block holding the given block number,
// touching its way's LRU state on a hit.
func (c *DataCache) GetBlockByNumber(number uint32) (block DataBlock, set uint16, way lru.Way, ok bool) {
	c.Stats.Reads++
	set, tag := split(number)
	way, ok = c.lookup(set, tag)
	if !ok {
		c.Stats.Misses++
		return DataBlock{}, 0, 0, false
	}
	c.touch(set, way)
	c.Stats.Hits++
	return c.data[set][way], set, way, true
}

// GetBlockByIndex returns the block at a previously resolved (set, way)
// without disturbing LRU state, for collaborators that already hold a
// handle from GetBlockByNumber or InsertBlock.
func (c *DataCache) GetBlockByIndex(set uint16, way lru.Way) (DataBlock, bool) {
	if !c.valid[set][way] {
		return DataBlock{}, false
	}
	return c.data[set][way], true
}

// InsertBlock installs block as the line for number, evicting the
// least-recently-used way of its set if the block was not already present,
// and reports the (set, way) it now occupies.
func (c *DataCache) InsertBlock(number uint32, block DataBlock) (uint16, lru.Way) {
	c.Stats.Inserts++

	set, tag := split(number)
	if way, ok := c.lookup(set, tag); ok {
		c.touch(set, way)
		c.data[set][way] = block
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

	return set, way
}

// WriteByte stores a single byte at offset within the line at (set, way).
func (c *DataCache) WriteByte(set uint16, way lru.Way, offset uint8, v byte) {
	c.data[set][way][offset] = v
}

// WriteHalf stores a little-endian 16-bit half-word at offset within the
// line at (set, way). offset is expected to be even; the cache does not
// enforce alignment.
func (c *DataCache) WriteHalf(set uint16, way lru.Way, offset uint8, v uint16) {
	c.data[set][way][offset] = byte(v)
	c.data[set][way][offset+1] = byte(v >> 8)
}

// WriteWord stores a little-endian 32-bit word at offset within the line
// at (set, way). offset is expected to be a multiple of 4; the cache does
// not enforce alignment.
func (c *DataCache) WriteWord(set uint16, way lru.Way, offset uint8, v uint32) {
	for i := uint8(0); i < 4; i++ {
		c.data[set][way][offset+i] = byte(v >> (8 * i))
	}
}
