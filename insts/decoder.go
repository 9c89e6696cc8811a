package insts

import "github.com/sarchlab/remoulade/bitfield"

// Opcodes, named per the RISC-V base instruction formats. Each is the
// 7-bit raw32[6:0] discriminant dispatched on by decodeRaw32Inner.
const (
	opcodeLoad     = 0b0000011
	opcodeMiscMem  = 0b0001111
	opcodeOpImm    = 0b0010011
	opcodeAuipc    = 0b0010111
	opcodeStore    = 0b0100011
	opcodeAmo      = 0b0101111
	opcodeOp       = 0b0110011
	opcodeLui      = 0b0110111
	opcodeBranch   = 0b1100011
	opcodeJalr     = 0b1100111
	opcodeJal      = 0b1101111
	opcodeSystem   = 0b1110011
)

var (
	opcodeField = bitfield.Field{Ranges: []bitfield.Range{{Msb: 6, Lsb: 0}}}
	funct3Field = bitfield.Field{Ranges: []bitfield.Range{{Msb: 14, Lsb: 12}}}
	funct7Field = bitfield.Field{Ranges: []bitfield.Range{{Msb: 31, Lsb: 25}}}
	funct5Field = bitfield.Field{Ranges: []bitfield.Range{{Msb: 31, Lsb: 27}}}
	funct12Field = bitfield.Field{Ranges: []bitfield.Range{{Msb: 31, Lsb: 20}}}
)

func opcodeOf(raw32 uint32) uint64  { return bitfield.GetUnsigned(uint64(raw32), opcodeField) }
func funct3Of(raw32 uint32) uint64  { return bitfield.GetUnsigned(uint64(raw32), funct3Field) }
func funct7Of(raw32 uint32) uint64  { return bitfield.GetUnsigned(uint64(raw32), funct7Field) }
func funct5Of(raw32 uint32) uint64  { return bitfield.GetUnsigned(uint64(raw32), funct5Field) }
func funct12Of(raw32 uint32) uint64 { return bitfield.GetUnsigned(uint64(raw32), funct12Field) }

// DecodeRaw32 is the CORE's total decoder: every 32-bit input produces some
// Instruction. Malformed encodings produce Illegal32 rather than a failure
// signal, per §4.4.
func DecodeRaw32(raw32 uint32) Instruction {
	if inst, ok := decodeRaw32Inner(raw32); ok {
		return inst
	}
	return Illegal32(raw32)
}

// decodeRaw32Inner is the partial decode: it returns ok=false for any
// encoding that §4.4's table does not accept, and DecodeRaw32 substitutes
// Illegal32 for those.
func decodeRaw32Inner(raw32 uint32) (Instruction, bool) {
	switch opcodeOf(raw32) {
	case opcodeLoad:
		return decodeLoad(raw32)
	case opcodeMiscMem:
		return decodeMiscMem(raw32)
	case opcodeOpImm:
		return decodeOpImm(raw32)
	case opcodeAuipc:
		return Instruction{Op: OpAuipc, Rd: DecodeRd(raw32), Imm: DecodeU(raw32)}, true
	case opcodeStore:
		return decodeStore(raw32)
	case opcodeAmo:
		return decodeAmo(raw32)
	case opcodeOp:
		return decodeOp(raw32)
	case opcodeLui:
		return Instruction{Op: OpLui, Rd: DecodeRd(raw32), Imm: DecodeU(raw32)}, true
	case opcodeBranch:
		return decodeBranch(raw32)
	case opcodeJalr:
		if funct3Of(raw32) != 0b000 {
			return Instruction{}, false
		}
		return Instruction{Op: OpJalr, Rd: DecodeRd(raw32), Rs1: DecodeRs1(raw32), Imm: DecodeI(raw32)}, true
	case opcodeJal:
		return Instruction{Op: OpJal, Rd: DecodeRd(raw32), Imm: DecodeJ(raw32)}, true
	case opcodeSystem:
		return decodeSystem(raw32)
	default:
		return Instruction{}, false
	}
}

// decodeLoad handles opcode Load: funct3∈{000,001,010,100,101} → Lb,Lh,Lw,
// Lbu,Lhu.
func decodeLoad(raw32 uint32) (Instruction, bool) {
	var op Op
	switch funct3Of(raw32) {
	case 0b000:
		op = OpLb
	case 0b001:
		op = OpLh
	case 0b010:
		op = OpLw
	case 0b100:
		op = OpLbu
	case 0b101:
		op = OpLhu
	default:
		return Instruction{}, false
	}
	return Instruction{Op: op, Rd: DecodeRd(raw32), Rs1: DecodeRs1(raw32), Imm: DecodeI(raw32)}, true
}

// decodeMiscMem handles opcode MiscMem: funct3=000 → Fence, funct3=001 →
// Fencei.
func decodeMiscMem(raw32 uint32) (Instruction, bool) {
	switch funct3Of(raw32) {
	case 0b000:
		return Instruction{Op: OpFence, Rd: DecodeRd(raw32), Rs1: DecodeRs1(raw32), Fence: DecodeFenceInfo(raw32)}, true
	case 0b001:
		return Instruction{Op: OpFencei, Rd: DecodeRd(raw32), Rs1: DecodeRs1(raw32), Imm: DecodeI(raw32)}, true
	default:
		return Instruction{}, false
	}
}

// decodeOpImm handles opcode OpImm. Addi/Slti/Sltiu/Xori/Ori/Andi ignore
// funct7; Slli/Srli/Srai check it, since their low 5 bits of the immediate
// are a shift amount and the high 7 bits distinguish Srli from Srai.
func decodeOpImm(raw32 uint32) (Instruction, bool) {
	f3 := funct3Of(raw32)
	var op Op
	switch f3 {
	case 0b000:
		op = OpAddi
	case 0b010:
		op = OpSlti
	case 0b011:
		op = OpSltiu
	case 0b100:
		op = OpXori
	case 0b110:
		op = OpOri
	case 0b111:
		op = OpAndi
	case 0b001:
		if funct7Of(raw32) != 0x00 {
			return Instruction{}, false
		}
		op = OpSlli
	case 0b101:
		switch funct7Of(raw32) {
		case 0x00:
			op = OpSrli
		case 0x20:
			op = OpSrai
		default:
			return Instruction{}, false
		}
	default:
		return Instruction{}, false
	}
	return Instruction{Op: op, Rd: DecodeRd(raw32), Rs1: DecodeRs1(raw32), Imm: DecodeI(raw32)}, true
}

// decodeStore handles opcode Store: funct3∈{000,001,010} → Sb,Sh,Sw.
func decodeStore(raw32 uint32) (Instruction, bool) {
	var op Op
	switch funct3Of(raw32) {
	case 0b000:
		op = OpSb
	case 0b001:
		op = OpSh
	case 0b010:
		op = OpSw
	default:
		return Instruction{}, false
	}
	return Instruction{Op: op, Rs1: DecodeRs1(raw32), Rs2: DecodeRs2(raw32), Imm: DecodeS(raw32)}, true
}

// decodeAmo handles opcode Amo: only the word-width (funct3=010) atomics are
// in scope. Lrw additionally requires rs2=X0; violating encodings are
// illegal, per §4.4's tie-breaks.
func decodeAmo(raw32 uint32) (Instruction, bool) {
	if funct3Of(raw32) != 0b010 {
		return Instruction{}, false
	}

	var op Op
	switch funct5Of(raw32) {
	case 0b00010:
		op = OpLrw
	case 0b00011:
		op = OpScw
	case 0b00001:
		op = OpAmoswapw
	case 0b00000:
		op = OpAmoaddw
	case 0b00100:
		op = OpAmoxorw
	case 0b01100:
		op = OpAmoandw
	case 0b01000:
		op = OpAmoorw
	case 0b10000:
		op = OpAmominw
	case 0b10100:
		op = OpAmomaxw
	case 0b11000:
		op = OpAmominuw
	case 0b11100:
		op = OpAmomaxuw
	default:
		return Instruction{}, false
	}

	rs2 := DecodeRs2(raw32)
	if op == OpLrw && rs2 != X0 {
		return Instruction{}, false
	}

	return Instruction{
		Op: op, Rd: DecodeRd(raw32), Rs1: DecodeRs1(raw32), Rs2: rs2,
		Aqrl: DecodeAmoAqrl(raw32),
	}, true
}

// decodeOp handles opcode Op: the RV32I register-register ALU ops (funct7
// 0000000/0100000) interleaved with the RV32M multiply/divide extension
// (funct7 0000001).
func decodeOp(raw32 uint32) (Instruction, bool) {
	f3, f7 := funct3Of(raw32), funct7Of(raw32)

	var op Op
	switch {
	case f3 == 0b000 && f7 == 0x00:
		op = OpAdd
	case f3 == 0b000 && f7 == 0x20:
		op = OpSub
	case f3 == 0b000 && f7 == 0x01:
		op = OpMul
	case f3 == 0b001 && f7 == 0x00:
		op = OpSll
	case f3 == 0b001 && f7 == 0x01:
		op = OpMulh
	case f3 == 0b010 && f7 == 0x00:
		op = OpSlt
	case f3 == 0b010 && f7 == 0x01:
		op = OpMulhsu
	case f3 == 0b011 && f7 == 0x00:
		op = OpSltu
	case f3 == 0b011 && f7 == 0x01:
		op = OpMulhu
	case f3 == 0b100 && f7 == 0x00:
		op = OpXor
	case f3 == 0b100 && f7 == 0x01:
		op = OpDiv
	case f3 == 0b101 && f7 == 0x00:
		op = OpSrl
	case f3 == 0b101 && f7 == 0x20:
		op = OpSra
	case f3 == 0b101 && f7 == 0x01:
		op = OpDivu
	case f3 == 0b110 && f7 == 0x00:
		op = OpOr
	case f3 == 0b110 && f7 == 0x01:
		op = OpRem
	case f3 == 0b111 && f7 == 0x00:
		op = OpAnd
	case f3 == 0b111 && f7 == 0x01:
		op = OpRemu
	default:
		return Instruction{}, false
	}

	return Instruction{Op: op, Rd: DecodeRd(raw32), Rs1: DecodeRs1(raw32), Rs2: DecodeRs2(raw32)}, true
}

// decodeBranch handles opcode Branch: funct3∈{000,001,100,101,110,111} →
// Beq,Bne,Blt,Bge,Bltu,Bgeu; funct3∈{010,011} are unassigned and illegal.
func decodeBranch(raw32 uint32) (Instruction, bool) {
	var op Op
	switch funct3Of(raw32) {
	case 0b000:
		op = OpBeq
	case 0b001:
		op = OpBne
	case 0b100:
		op = OpBlt
	case 0b101:
		op = OpBge
	case 0b110:
		op = OpBltu
	case 0b111:
		op = OpBgeu
	default:
		return Instruction{}, false
	}
	return Instruction{Op: op, Rs1: DecodeRs1(raw32), Rs2: DecodeRs2(raw32), Imm: DecodeB(raw32)}, true
}

// decodeSystem handles opcode System: funct3=000 is Ecall/Ebreak (with rd
// and rs1 required to both be X0, per §4.4's tie-breaks); the remaining
// funct3 values are the six CSR instructions, whose address must resolve
// through the CSR table or the whole instruction is illegal at decode time.
func decodeSystem(raw32 uint32) (Instruction, bool) {
	f3 := funct3Of(raw32)

	if f3 == 0b000 {
		if DecodeRd(raw32) != rdSink || DecodeRs1(raw32) != X0 {
			return Instruction{}, false
		}
		switch funct12Of(raw32) {
		case 0:
			return Instruction{Op: OpEcall}, true
		case 1:
			return Instruction{Op: OpEbreak}, true
		default:
			return Instruction{}, false
		}
	}

	csr, ok := CsrFromWord(raw32)
	if !ok {
		return Instruction{}, false
	}

	rd := DecodeRd(raw32)
	switch f3 {
	case 0b001:
		return Instruction{Op: OpCsrrw, Rd: rd, Rs1: DecodeRs1(raw32), Csr: csr}, true
	case 0b010:
		return Instruction{Op: OpCsrrs, Rd: rd, Rs1: DecodeRs1(raw32), Csr: csr}, true
	case 0b011:
		return Instruction{Op: OpCsrrc, Rd: rd, Rs1: DecodeRs1(raw32), Csr: csr}, true
	case 0b101:
		return Instruction{Op: OpCsrrwi, Rd: rd, Imm: int32(DecodeRs1(raw32)), Csr: csr}, true
	case 0b110:
		return Instruction{Op: OpCsrrsi, Rd: rd, Imm: int32(DecodeRs1(raw32)), Csr: csr}, true
	case 0b111:
		return Instruction{Op: OpCsrrci, Rd: rd, Imm: int32(DecodeRs1(raw32)), Csr: csr}, true
	default:
		return Instruction{}, false
	}
}
