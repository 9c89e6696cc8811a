package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/remoulade/insts"
)

var _ = Describe("DecodeRaw32", func() {
	Describe("end-to-end scenarios", func() {
		It("decodes 0x00310133 as add x2, x2, x3", func() {
			inst := insts.DecodeRaw32(0x00310133)
			Expect(inst.Op).To(Equal(insts.OpAdd))
			Expect(inst.Rd).To(Equal(insts.X2))
			Expect(inst.Rs1).To(Equal(insts.X2))
			Expect(inst.Rs2).To(Equal(insts.X3))
		})

		It("decodes 0x7d008113 as addi x2, x1, 2000", func() {
			inst := insts.DecodeRaw32(0x7d008113)
			Expect(inst.Op).To(Equal(insts.OpAddi))
			Expect(inst.Rd).To(Equal(insts.X2))
			Expect(inst.Rs1).To(Equal(insts.X1))
			Expect(inst.Imm).To(Equal(int32(2000)))
		})

		It("decodes 0x00000e63 as beq x0, x0, 28", func() {
			inst := insts.DecodeRaw32(0x00000e63)
			Expect(inst.Op).To(Equal(insts.OpBeq))
			Expect(inst.Imm).To(Equal(int32(28)))
		})

		It("rejects lr.w with a non-X0 rs2 as illegal", func() {
			inst := insts.DecodeRaw32(0x101120AF) // lr.w x1, (x2) with rs2=x1
			Expect(inst.Op).To(Equal(insts.OpIllegal32))
			Expect(inst.Raw32).To(Equal(uint32(0x101120AF)))
		})

		It("decodes 0x30529073 as csrrw x0, mtvec, x5", func() {
			inst := insts.DecodeRaw32(0x30529073)
			Expect(inst.Op).To(Equal(insts.OpCsrrw))
			Expect(inst.Rs1).To(Equal(insts.X5))
			Expect(inst.Csr).To(Equal(insts.Mtvec))
		})
	})

	Describe("totality", func() {
		It("never panics and always returns some variant, including for fully illegal opcodes", func() {
			Expect(func() { insts.DecodeRaw32(0xFFFFFFFF) }).NotTo(Panic())
			inst := insts.DecodeRaw32(0xFFFFFFFF)
			Expect(inst.Op).To(Equal(insts.OpIllegal32))
		})

		It("samples a wide range of opcode bytes without panicking", func() {
			for b := 0; b < 256; b++ {
				raw := uint32(b) | uint32(b)<<8 | uint32(b)<<16 | uint32(b)<<24
				Expect(func() { insts.DecodeRaw32(raw) }).NotTo(Panic())
			}
		})
	})

	Describe("tie-break edge cases", func() {
		It("rejects system funct3=000 with a non-zero rs1", func() {
			raw := uint32(0x00000073) | (1 << 15) // ecall encoding with rs1=x1
			inst := insts.DecodeRaw32(raw)
			Expect(inst.Op).To(Equal(insts.OpIllegal32))
		})

		It("rejects srai/srli with an unrecognized funct7", func() {
			raw := uint32(0x40005013) &^ (0x7f << 25) | (0x01 << 25) // srli/srai opcode shape, bad funct7
			inst := insts.DecodeRaw32(raw)
			Expect(inst.Op).To(Equal(insts.OpIllegal32))
		})

		It("accepts srai with funct7=0100000", func() {
			inst := insts.DecodeRaw32(0x40005013)
			Expect(inst.Op).To(Equal(insts.OpSrai))
		})

		It("rejects an unrecognized CSR address", func() {
			raw := uint32(0x00009073) // csrrw x0, 0x000, x1 -- address 0 is unassigned
			inst := insts.DecodeRaw32(raw)
			Expect(inst.Op).To(Equal(insts.OpIllegal32))
		})
	})
})
