package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/remoulade/insts"
)

var _ = Describe("immediate decoders", func() {
	Describe("I-type", func() {
		It("matches the reference encodings", func() {
			cases := []struct {
				raw      uint32
				expected int32
			}{
				{0x3e800093, 1000},
				{0x7d008113, 2000},
				{0x7ff00093, 2047},
				{0x80000093, -2048},
			}
			for _, c := range cases {
				Expect(insts.DecodeI(c.raw)).To(Equal(c.expected))
			}
		})
	})

	Describe("S-type", func() {
		It("matches the reference encodings", func() {
			cases := []struct {
				raw      uint32
				expected int32
			}{
				{0x7e530fa3, 2047},
				{0x80730023, -2048},
				{0x2a430323, 678},
				{0xd4430d23, -678},
			}
			for _, c := range cases {
				Expect(insts.DecodeS(c.raw)).To(Equal(c.expected))
			}
		})
	})

	Describe("B-type", func() {
		It("matches the reference encodings", func() {
			cases := []struct {
				raw      uint32
				expected int32
			}{
				{0x0000ce63, 28},
				{0x0000c663, 12},
				{0xfe00cee3, -4},
				{0xfe00c4e3, -24},
				{0xfe00c2e3, -28},
			}
			for _, c := range cases {
				Expect(insts.DecodeB(c.raw)).To(Equal(c.expected))
			}
		})

		It("round-trips every even integer in [-4096, 4096)", func() {
			for v := int32(-4096); v < 4096; v += 2 {
				raw := encodeBTypeImm(v)
				Expect(insts.DecodeB(raw)).To(Equal(v))
			}
		})
	})

	Describe("U-type", func() {
		It("leaves the low 12 bits clear and sign-extends the rest", func() {
			Expect(insts.DecodeU(0x00001037)).To(Equal(int32(0x00001000)))     // lui x0, 1
			Expect(insts.DecodeU(0xfffff037)).To(Equal(int32(-1 << 12)))
		})
	})

	Describe("J-type", func() {
		It("round-trips representative even offsets", func() {
			for _, v := range []int32{0, 2, -2, 4094, -4096, 1048574, -1048576} {
				raw := encodeJTypeImm(v)
				Expect(insts.DecodeJ(raw)).To(Equal(v))
			}
		})
	})

	Describe("fence metadata", func() {
		It("decodes mode and flags independently of opcode bits", func() {
			raw := uint32(0x0FF0000F) // fence iorw, iorw
			info := insts.DecodeFenceInfo(raw)
			Expect(info.Mode).To(Equal(insts.FenceNone))
			Expect(info.Flags.PI()).To(BeTrue())
			Expect(info.Flags.SW()).To(BeTrue())
		})
	})

	Describe("amo ordering flags", func() {
		It("decodes aq and rl independently", func() {
			raw := uint32(0x0000202F) | (1 << 26) | (1 << 25)
			flags := insts.DecodeAmoAqrl(raw)
			Expect(flags.Aq).To(BeTrue())
			Expect(flags.Rl).To(BeTrue())
		})
	})
})

// encodeBTypeImm packs a signed, even B-type offset into raw32[31],
// raw32[7], raw32[30:25], raw32[11:8], inverting DecodeB for test purposes.
func encodeBTypeImm(v int32) uint32 {
	u := uint32(v)
	var raw uint32
	raw |= (u >> 12 & 1) << 31
	raw |= (u >> 11 & 1) << 7
	raw |= (u >> 5 & 0x3f) << 25
	raw |= (u >> 1 & 0xf) << 8
	return raw
}

// encodeJTypeImm packs a signed, even J-type offset into raw32[31],
// raw32[19:12], raw32[20], raw32[30:21], inverting DecodeJ for test
// purposes.
func encodeJTypeImm(v int32) uint32 {
	u := uint32(v)
	var raw uint32
	raw |= (u >> 20 & 1) << 31
	raw |= (u >> 12 & 0xff) << 12
	raw |= (u >> 11 & 1) << 20
	raw |= (u >> 1 & 0x3ff) << 21
	return raw
}
