package emu

import "github.com/sarchlab/remoulade/insts"

// CSRFile is the hart's control-and-status-register file: one 32-bit value
// per insts.Csr, the RV32 CSR width. It has no read-only or WARL masking of
// its own; the set of addressable CSRs and the mapping from a raw 12-bit
// address to a Csr is insts.CsrFromAddress's job, not this file's.
type CSRFile struct {
	reg map[insts.Csr]uint32
}

// NewCSRFile returns a CSR file with every register at zero.
func NewCSRFile() *CSRFile {
	return &CSRFile{reg: make(map[insts.Csr]uint32)}
}

// Read returns csr's current value, or 0 if it has never been written.
func (f *CSRFile) Read(csr insts.Csr) uint32 {
	return f.reg[csr]
}

// Write stores v into csr.
func (f *CSRFile) Write(csr insts.Csr, v uint32) {
	f.reg[csr] = v
}
