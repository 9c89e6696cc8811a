package insts

import "github.com/sarchlab/remoulade/bitfield"

// Reg is a 5-bit register discriminant. Rs1 and Rs2 values run 0..31 and
// address a register file directly. Rd values run 1..31 for X1..X31 but use
// 32, out of band, for X0 — see RegFile.
type Reg uint8

// X0 through X31 are the raw integer register numbers as they appear in an
// instruction encoding, before the Rd renumbering described below.
const (
	X0 Reg = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29
	X30
	X31
)

// rdSink is the out-of-band discriminant X0 is assigned when used as a
// destination register: index 32 of a RegFile, not index 0.
const rdSink Reg = 32

var rs1Field = bitfield.Field{Ranges: []bitfield.Range{{Msb: 19, Lsb: 15}}}
var rs2Field = bitfield.Field{Ranges: []bitfield.Range{{Msb: 24, Lsb: 20}}}
var rdField = bitfield.Field{Ranges: []bitfield.Range{{Msb: 11, Lsb: 7}}}

// DecodeRs1 extracts the rs1 field (raw32[19:15]).
func DecodeRs1(raw32 uint32) Reg {
	return Reg(bitfield.GetUnsigned(uint64(raw32), rs1Field))
}

// DecodeRs2 extracts the rs2 field (raw32[24:20]).
func DecodeRs2(raw32 uint32) Reg {
	return Reg(bitfield.GetUnsigned(uint64(raw32), rs2Field))
}

// DecodeRd extracts the rd field (raw32[11:7]) and renumbers X0 to the
// out-of-band discriminant 32, so that RegFile writes to X0 land in a sink
// slot distinct from the slot X0 is read from.
func DecodeRd(raw32 uint32) Reg {
	r := Reg(bitfield.GetUnsigned(uint64(raw32), rdField))
	if r == X0 {
		return rdSink
	}
	return r
}

// RegFile is a 33-entry register file: index 0 is X0 (always read as the
// file's zero value and never written, since DecodeRd never produces 0),
// indices 1..31 are X1..X31, and index 32 is a sink slot that absorbs writes
// aimed at X0 without affecting reads of X0.
type RegFile[T any] struct {
	reg [33]T
}

// NewRegFile returns a RegFile with every slot at T's zero value.
func NewRegFile[T any]() *RegFile[T] {
	return &RegFile[T]{}
}

// GetRs1 reads the register named by rs1 (0..31).
func (f *RegFile[T]) GetRs1(rs1 Reg) T {
	return f.reg[rs1]
}

// GetRs2 reads the register named by rs2 (0..31).
func (f *RegFile[T]) GetRs2(rs2 Reg) T {
	return f.reg[rs2]
}

// SetRd writes value into the register named by rd. rd must come from
// DecodeRd (or rdSink/X1..X31 directly) so that X0 writes are routed to the
// sink slot.
func (f *RegFile[T]) SetRd(rd Reg, value T) {
	f.reg[rd] = value
}
