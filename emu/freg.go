package emu

// FRegFile is the hart's floating-point register file. The decoder does not
// currently recognize any F/D-extension opcodes, so nothing in this module
// decodes an FRs1/FRs2/FRd field or reads this file; it exists so a future
// F-extension decoder slots in without a register-file redesign, matching
// the 33-wide layout of the original floating-point register file (F0..F31
// plus one unused slot, to mirror RegFile's shape even though no register
// here is ever remapped the way X0 is).
type FRegFile struct {
	reg [33]uint64
}

// NewFRegFile returns a floating-point register file with every register
// at zero.
func NewFRegFile() *FRegFile {
	return &FRegFile{}
}

// Read returns the raw bit pattern stored in float register f (0..31).
func (r *FRegFile) Read(f uint8) uint64 {
	return r.reg[f]
}

// Write stores the raw bit pattern v into float register f (0..31).
func (r *FRegFile) Write(f uint8, v uint64) {
	r.reg[f] = v
}
