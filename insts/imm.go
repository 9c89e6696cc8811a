package insts

import "github.com/sarchlab/remoulade/bitfield"

// iImmField is raw32[31:20], a 12-bit signed immediate.
var iImmField = bitfield.Field{Ranges: []bitfield.Range{{Msb: 31, Lsb: 20}}}

// DecodeI decodes the I-type immediate: raw32[31:20], sign-extended.
func DecodeI(raw32 uint32) int32 {
	return int32(bitfield.GetSigned(uint64(raw32), iImmField))
}

// sImmField is raw32[31:25] || raw32[11:7], a 12-bit signed immediate.
var sImmField = bitfield.Field{Ranges: []bitfield.Range{
	{Msb: 31, Lsb: 25},
	{Msb: 11, Lsb: 7},
}}

// DecodeS decodes the S-type immediate: raw32[31:25] || raw32[11:7],
// sign-extended.
func DecodeS(raw32 uint32) int32 {
	return int32(bitfield.GetSigned(uint64(raw32), sImmField))
}

// bImmField is raw32[31] || raw32[7] || raw32[30:25] || raw32[11:8], padded
// with the forced-zero low bit, a 13-bit signed immediate.
var bImmField = bitfield.Field{
	Ranges: []bitfield.Range{
		{Msb: 31, Lsb: 31},
		{Msb: 7, Lsb: 7},
		{Msb: 30, Lsb: 25},
		{Msb: 11, Lsb: 8},
	},
	Pad: 1,
}

// DecodeB decodes the B-type immediate: raw32[31] || raw32[7] || raw32[30:25]
// || raw32[11:8] || 0, sign-extended, bit 0 forced to zero.
func DecodeB(raw32 uint32) int32 {
	return int32(bitfield.GetSigned(uint64(raw32), bImmField))
}

// uImmField is raw32[31:12] || 0^12, a 32-bit signed immediate.
var uImmField = bitfield.Field{
	Ranges: []bitfield.Range{{Msb: 31, Lsb: 12}},
	Pad:    12,
}

// DecodeU decodes the U-type immediate: raw32[31:12] || 0^12, sign-extended.
func DecodeU(raw32 uint32) int32 {
	return int32(bitfield.GetSigned(uint64(raw32), uImmField))
}

// jImmField is raw32[31] || raw32[19:12] || raw32[20] || raw32[30:21],
// padded with the forced-zero low bit, a 21-bit signed immediate.
var jImmField = bitfield.Field{
	Ranges: []bitfield.Range{
		{Msb: 31, Lsb: 31},
		{Msb: 19, Lsb: 12},
		{Msb: 20, Lsb: 20},
		{Msb: 30, Lsb: 21},
	},
	Pad: 1,
}

// DecodeJ decodes the J-type immediate: raw32[31] || raw32[19:12] ||
// raw32[20] || raw32[30:21] || 0, sign-extended, bit 0 forced to zero.
func DecodeJ(raw32 uint32) int32 {
	return int32(bitfield.GetSigned(uint64(raw32), jImmField))
}

// FenceMode is the 4-bit mode carried by a fence instruction's high nibble.
type FenceMode uint8

// Fence modes. Other covers every encoding besides None and Tso.
const (
	FenceNone FenceMode = 0b0000
	FenceTso  FenceMode = 0b1000
	FenceOther FenceMode = 0xff // sentinel; see DecodeFenceMode
)

var fenceModeField = bitfield.Field{Ranges: []bitfield.Range{{Msb: 31, Lsb: 28}}}

// DecodeFenceMode extracts the fence mode from raw32[31:28].
func DecodeFenceMode(raw32 uint32) FenceMode {
	switch v := bitfield.GetUnsigned(uint64(raw32), fenceModeField); v {
	case uint64(FenceNone):
		return FenceNone
	case uint64(FenceTso):
		return FenceTso
	default:
		return FenceOther
	}
}

// FenceFlags holds the eight predecessor/successor ordering flags packed
// into raw32[27:20].
type FenceFlags uint8

// Flag bits within FenceFlags, matching the RISC-V fence instruction's
// pred/succ encoding (PI,PO,PR,PW,SI,SO,SR,SW from MSB to LSB).
const (
	FlagPI FenceFlags = 1 << 7
	FlagPO FenceFlags = 1 << 6
	FlagPR FenceFlags = 1 << 5
	FlagPW FenceFlags = 1 << 4
	FlagSI FenceFlags = 1 << 3
	FlagSO FenceFlags = 1 << 2
	FlagSR FenceFlags = 1 << 1
	FlagSW FenceFlags = 1 << 0
)

var fenceFlagsField = bitfield.Field{Ranges: []bitfield.Range{{Msb: 27, Lsb: 20}}}

// DecodeFenceFlags extracts the eight ordering flags from raw32[27:20].
func DecodeFenceFlags(raw32 uint32) FenceFlags {
	return FenceFlags(bitfield.GetUnsigned(uint64(raw32), fenceFlagsField))
}

// PI, PO, PR, PW, SI, SO, SR and SW report whether the corresponding
// ordering flag is set.
func (f FenceFlags) PI() bool { return f&FlagPI != 0 }
func (f FenceFlags) PO() bool { return f&FlagPO != 0 }
func (f FenceFlags) PR() bool { return f&FlagPR != 0 }
func (f FenceFlags) PW() bool { return f&FlagPW != 0 }
func (f FenceFlags) SI() bool { return f&FlagSI != 0 }
func (f FenceFlags) SO() bool { return f&FlagSO != 0 }
func (f FenceFlags) SR() bool { return f&FlagSR != 0 }
func (f FenceFlags) SW() bool { return f&FlagSW != 0 }

// FenceInfo bundles a fence instruction's mode and ordering flags.
type FenceInfo struct {
	Mode  FenceMode
	Flags FenceFlags
}

// DecodeFenceInfo decodes both the mode and the flags of a fence
// instruction.
func DecodeFenceInfo(raw32 uint32) FenceInfo {
	return FenceInfo{
		Mode:  DecodeFenceMode(raw32),
		Flags: DecodeFenceFlags(raw32),
	}
}

// AmoAqrl holds the acquire/release ordering flags carried by every atomic
// memory operation in raw32[26] and raw32[25].
type AmoAqrl struct {
	Aq bool
	Rl bool
}

var amoAqField = bitfield.Field{Ranges: []bitfield.Range{{Msb: 26, Lsb: 26}}}
var amoRlField = bitfield.Field{Ranges: []bitfield.Range{{Msb: 25, Lsb: 25}}}

// DecodeAmoAqrl extracts the aq/rl flags from raw32[26] and raw32[25].
func DecodeAmoAqrl(raw32 uint32) AmoAqrl {
	return AmoAqrl{
		Aq: bitfield.GetBool(uint64(raw32), amoAqField),
		Rl: bitfield.GetBool(uint64(raw32), amoRlField),
	}
}
