package emu

import (
	"github.com/sarchlab/remoulade/insts"
	"github.com/sarchlab/remoulade/timing/cache"
)

// Hart is a single RISC-V hardware thread: its register files, CSR file,
// memory, and the instruction/data caches that sit in front of it. It owns
// no pipeline or execution semantics of its own; FetchDecode is the one
// operation a timing model needs to drive instruction supply.
type Hart struct {
	Regs  *RegFile
	FRegs *FRegFile
	CSRs  *CSRFile
	Mem   *Memory

	ICache *cache.InstructionCache
	DCache *cache.DataCache
}

// NewHart returns a hart with memSize bytes of memory and empty caches.
func NewHart(memSize uint32) *Hart {
	return &Hart{
		Regs:   NewRegFile(),
		FRegs:  NewFRegFile(),
		CSRs:   NewCSRFile(),
		Mem:    NewMemory(memSize),
		ICache: cache.NewInstructionCache(),
		DCache: cache.NewDataCache(),
	}
}

// FetchDecode resolves the instruction at pc, consulting the instruction
// cache first and fetching+decoding the enclosing 64-byte line from memory
// on a miss. It reports whether the fetch hit in the instruction cache, so a
// timing model can charge the appropriate latency.
func (h *Hart) FetchDecode(pc uint32) (inst insts.Instruction, hit bool) {
	if cached, ok := h.ICache.Read(pc); ok {
		return cached, true
	}

	number := pc >> 6
	base := number << 6

	var block cache.InstructionBlock
	for i := range block {
		raw := h.Mem.Read32(base + uint32(i)*4)
		block[i] = insts.DecodeRaw32(raw)
	}
	h.ICache.Insert(number, block)

	offset := (pc >> 2) & 0xf
	return block[offset], false
}

// LoadWord reads a 32-bit word at addr through the data cache,
// fetching the enclosing 64-byte line from memory on a miss.
func (h *Hart) LoadWord(addr uint32) uint32 {
	number := addr >> 6
	offset := addr & 0x3f

	block, _, _, ok := h.DCache.GetBlockByNumber(number)
	if !ok {
		block = h.Mem.ReadBlock(number)
		h.DCache.InsertBlock(number, block)
	}

	return uint32(block[offset]) | uint32(block[offset+1])<<8 |
		uint32(block[offset+2])<<16 | uint32(block[offset+3])<<24
}

// StoreWord writes a 32-bit word at addr through the data cache, fetching
// the enclosing line on a miss and writing the value back to memory
// immediately: the cache has no dirty-bit tracking of its own, so this
// write-through policy is the collaborator's choice, per §4.7.
func (h *Hart) StoreWord(addr uint32, v uint32) {
	number := addr >> 6
	offset := uint8(addr & 0x3f)

	_, set, way, ok := h.DCache.GetBlockByNumber(number)
	if !ok {
		block := h.Mem.ReadBlock(number)
		set, way = h.DCache.InsertBlock(number, block)
	}

	h.DCache.WriteWord(set, way, offset, v)
	h.Mem.Write32(addr, v)
}
