// Package trap enumerates the RISC-V privileged architecture's trap
// causes. Instruction execution, and therefore trap delivery, is out of
// scope (see SPEC_FULL.md's Non-goals); this enumeration exists so a
// downstream execution engine built on top of this decoder and cache
// subsystem has a typed, correctly numbered Cause to report without having
// to invent its own.
package trap

// Cause is an exception code as it appears in the low bits of mcause/scause
// (with the interrupt bit, bit 31/63, unset).
type Cause uint32

// Standard synchronous exception causes, per the RISC-V Privileged
// Architecture specification's mcause table.
const (
	InstructionAddressMisaligned Cause = 0
	InstructionAccessFault       Cause = 1
	IllegalInstruction           Cause = 2
	Breakpoint                   Cause = 3
	LoadAddressMisaligned        Cause = 4
	LoadAccessFault              Cause = 5
	StoreOrAmoAddressMisaligned  Cause = 6
	StoreOrAmoAccessFault        Cause = 7
	EnvironmentCallFromUMode     Cause = 8
	EnvironmentCallFromSMode     Cause = 9
	EnvironmentCallFromVSMode    Cause = 10
	EnvironmentCallFromMMode     Cause = 11
	InstructionPageFault         Cause = 12
	LoadPageFault                Cause = 13
	StoreOrAmoPageFault          Cause = 15
	InstructionGuestPageFault    Cause = 20
	LoadGuestPageFault           Cause = 21
	VirtualInstruction           Cause = 22
	StoreOrAmoGuestPageFault     Cause = 23
)

var causeNames = map[Cause]string{
	InstructionAddressMisaligned: "instruction address misaligned",
	InstructionAccessFault:       "instruction access fault",
	IllegalInstruction:           "illegal instruction",
	Breakpoint:                   "breakpoint",
	LoadAddressMisaligned:        "load address misaligned",
	LoadAccessFault:              "load access fault",
	StoreOrAmoAddressMisaligned:  "store/AMO address misaligned",
	StoreOrAmoAccessFault:        "store/AMO access fault",
	EnvironmentCallFromUMode:     "environment call from U-mode",
	EnvironmentCallFromSMode:     "environment call from S-mode",
	EnvironmentCallFromVSMode:    "environment call from VS-mode",
	EnvironmentCallFromMMode:     "environment call from M-mode",
	InstructionPageFault:         "instruction page fault",
	LoadPageFault:                "load page fault",
	StoreOrAmoPageFault:          "store/AMO page fault",
	InstructionGuestPageFault:    "instruction guest page fault",
	LoadGuestPageFault:           "load guest page fault",
	VirtualInstruction:           "virtual instruction",
	StoreOrAmoGuestPageFault:     "store/AMO guest page fault",
}

// String renders the cause's name, or "unknown cause" for an unassigned
// code.
func (c Cause) String() string {
	if name, ok := causeNames[c]; ok {
		return name
	}
	return "unknown cause"
}
