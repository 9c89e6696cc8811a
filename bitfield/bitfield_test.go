package bitfield_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/remoulade/bitfield"
)

// jtypeOpcode, jtypeRd and jtypeImm mirror the J-type field layout used by
// the RISC-V decoder: opcode@[6:0], rd@[11:7], imm@[31,19:12,20,30:21]<<1.
// They stand in for a hand-declared record the way insts.DecodeJ uses the
// same ranges directly.
var (
	jtypeOpcode = bitfield.Field{Ranges: []bitfield.Range{{Msb: 6, Lsb: 0}}}
	jtypeRd     = bitfield.Field{Ranges: []bitfield.Range{{Msb: 11, Lsb: 7}}}
	jtypeImm    = bitfield.Field{
		Ranges: []bitfield.Range{
			{Msb: 31, Lsb: 31},
			{Msb: 19, Lsb: 12},
			{Msb: 20, Lsb: 20},
			{Msb: 30, Lsb: 21},
		},
		Pad: 1,
	}
)

var _ = Describe("bitfield", func() {
	Describe("unsigned fields", func() {
		It("round-trips the full unsigned domain of a 7-bit field", func() {
			for v := uint64(0); v < 128; v++ {
				word := bitfield.SetUnsigned(0, jtypeOpcode, 32, v)
				Expect(bitfield.GetUnsigned(word, jtypeOpcode)).To(Equal(v))
			}
		})

		It("does not disturb a disjoint field", func() {
			word := bitfield.SetUnsigned(0, jtypeRd, 32, 17)
			word = bitfield.SetUnsigned(word, jtypeOpcode, 32, 0x6f)
			Expect(bitfield.GetUnsigned(word, jtypeRd)).To(Equal(uint64(17)))
			Expect(bitfield.GetUnsigned(word, jtypeOpcode)).To(Equal(uint64(0x6f)))
		})
	})

	Describe("multi-range padded signed fields", func() {
		It("round-trips every even integer in the J-type range", func() {
			for v := int64(-(1 << 20)); v < (1 << 20); v += 2 {
				word := bitfield.SetUnsigned(0, jtypeImm, 32, uint64(uint32(v)))
				got := bitfield.GetSigned(word, jtypeImm)
				Expect(got).To(Equal(v))
			}
		})

		It("forces bit 0 of the decoded immediate to zero", func() {
			word := bitfield.SetUnsigned(0, jtypeImm, 32, uint64(uint32(-2)))
			Expect(bitfield.GetSigned(word, jtypeImm) % 2).To(Equal(int64(0)))
		})
	})

	Describe("bool fields", func() {
		aqField := bitfield.Field{Ranges: []bitfield.Range{{Msb: 26, Lsb: 26}}}

		It("reads true/false from a single bit", func() {
			Expect(bitfield.GetBool(0, aqField)).To(BeFalse())
			word := bitfield.SetBool(0, aqField, 32, true)
			Expect(bitfield.GetBool(word, aqField)).To(BeTrue())
		})
	})

	Describe("overlapping fields", func() {
		It("applies last-writer-wins semantics", func() {
			lowByte := bitfield.Field{Ranges: []bitfield.Range{{Msb: 7, Lsb: 0}}}
			wideField := bitfield.Field{Ranges: []bitfield.Range{{Msb: 15, Lsb: 0}}}

			word := bitfield.SetUnsigned(0, wideField, 32, 0xABCD)
			word = bitfield.SetUnsigned(word, lowByte, 32, 0xFF)
			Expect(bitfield.GetUnsigned(word, lowByte)).To(Equal(uint64(0xFF)))
			Expect(bitfield.GetUnsigned(word, wideField)).To(Equal(uint64(0xABFF)))
		})
	})

	Describe("user types", func() {
		type tag uint8

		tagField := bitfield.Field{Ranges: []bitfield.Range{{Msb: 2, Lsb: 0}}}

		It("widens and narrows through FromWord/ToWord", func() {
			fromWord := func(w uint64) tag { return tag(w) }
			toWord := func(t tag) uint64 { return uint64(t) }

			word := bitfield.SetUser(0, tagField, 32, tag(5), toWord)
			got := bitfield.GetUser(word, tagField, fromWord)
			Expect(got).To(Equal(tag(5)))
		})

		It("panics in Strict mode when padded low bits are non-zero", func() {
			padded := bitfield.Field{Ranges: []bitfield.Range{{Msb: 31, Lsb: 8}}, Pad: 8}
			fromWord := func(w uint64) tag { return tag(w) }
			toWord := func(t tag) uint64 { return uint64(t) | 1 } // low pad bit set

			old := bitfield.Strict
			bitfield.Strict = true
			defer func() { bitfield.Strict = old }()

			Expect(func() {
				bitfield.SetUser(0, padded, 32, tag(1), toWord)
			}).To(Panic())
			_ = fromWord
		})
	})
})
