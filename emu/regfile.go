// Package emu wires the decoding and caching layers into a single hart: the
// general and floating-point register files, the CSR file, byte-addressable
// memory, and the fetch/decode path that feeds the instruction cache.
package emu

import "github.com/sarchlab/remoulade/insts"

// RegFile is the hart's integer register file. It wraps insts.RegFile so
// that writes to X0, whether made directly or through a decoded
// instruction's Rd (which DecodeRd has already renumbered to the
// out-of-band sink slot), never change the value X0 reads back.
type RegFile struct {
	file *insts.RegFile[uint32]
}

// NewRegFile returns a register file with every register at zero.
func NewRegFile() *RegFile {
	return &RegFile{file: insts.NewRegFile[uint32]()}
}

// Read returns r's value. r is expected to be a plain source register
// (0..31), as produced by DecodeRs1/DecodeRs2.
func (f *RegFile) Read(r insts.Reg) uint32 {
	return f.file.GetRs1(r)
}

// Write stores v into r. r is expected to come from DecodeRd, so a decoded
// write to X0 lands in the isolated sink slot rather than register 0.
func (f *RegFile) Write(r insts.Reg, v uint32) {
	f.file.SetRd(r, v)
}
