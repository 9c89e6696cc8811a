package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/remoulade/emu"
)

var _ = Describe("Memory", func() {
	var mem *emu.Memory

	BeforeEach(func() {
		mem = emu.NewMemory(4096)
	})

	It("round-trips a byte", func() {
		mem.Write8(10, 0xAB)
		Expect(mem.Read8(10)).To(Equal(byte(0xAB)))
	})

	It("round-trips a little-endian half-word", func() {
		mem.Write16(20, 0xBEEF)
		Expect(mem.Read8(20)).To(Equal(byte(0xEF)))
		Expect(mem.Read8(21)).To(Equal(byte(0xBE)))
		Expect(mem.Read16(20)).To(Equal(uint16(0xBEEF)))
	})

	It("round-trips a little-endian word", func() {
		mem.Write32(40, 0xDEADBEEF)
		Expect(mem.Read8(40)).To(Equal(byte(0xEF)))
		Expect(mem.Read8(43)).To(Equal(byte(0xDE)))
		Expect(mem.Read32(40)).To(Equal(uint32(0xDEADBEEF)))
	})

	It("round-trips a 64-byte block", func() {
		mem.Write32(64, 0x11223344)
		block := mem.ReadBlock(1)
		Expect(block[0]).To(Equal(byte(0x44)))

		block[4] = 0xFF
		mem.WriteBlock(1, block)
		Expect(mem.Read8(68)).To(Equal(byte(0xFF)))
	})
})
