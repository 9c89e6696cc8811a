package insts

// Csr enumerates the standard RISC-V control-and-status-register addresses:
// unprivileged floating-point and counter CSRs, supervisor, hypervisor,
// virtual-supervisor, machine information/trap/counter CSRs, physical
// memory protection, and the debug/trace CSRs.
type Csr uint16

// Standard CSR addresses, named per the RISC-V Privileged ISA manual.
const (
	Fflags Csr = 0x001
	Frm Csr = 0x002
	Fcsr Csr = 0x003
	Cycle Csr = 0xC00
	Time Csr = 0xC01
	Instret Csr = 0xC02
	Hpmcounter3 Csr = 0xC03
	Hpmcounter4 Csr = 0xC04
	Hpmcounter5 Csr = 0xC05
	Hpmcounter6 Csr = 0xC06
	Hpmcounter7 Csr = 0xC07
	Hpmcounter8 Csr = 0xC08
	Hpmcounter9 Csr = 0xC09
	Hpmcounter10 Csr = 0xC0A
	Hpmcounter11 Csr = 0xC0B
	Hpmcounter12 Csr = 0xC0C
	Hpmcounter13 Csr = 0xC0D
	Hpmcounter14 Csr = 0xC0E
	Hpmcounter15 Csr = 0xC0F
	Hpmcounter16 Csr = 0xC10
	Hpmcounter17 Csr = 0xC11
	Hpmcounter18 Csr = 0xC12
	Hpmcounter19 Csr = 0xC13
	Hpmcounter20 Csr = 0xC14
	Hpmcounter21 Csr = 0xC15
	Hpmcounter22 Csr = 0xC16
	Hpmcounter23 Csr = 0xC17
	Hpmcounter24 Csr = 0xC18
	Hpmcounter25 Csr = 0xC19
	Hpmcounter26 Csr = 0xC1A
	Hpmcounter27 Csr = 0xC1B
	Hpmcounter28 Csr = 0xC1C
	Hpmcounter29 Csr = 0xC1D
	Hpmcounter30 Csr = 0xC1E
	Hpmcounter31 Csr = 0xC1F
	Cycleh Csr = 0xC80
	Timeh Csr = 0xC81
	Instreth Csr = 0xC82
	Hpmcounter3h Csr = 0xC83
	Hpmcounter4h Csr = 0xC84
	Hpmcounter5h Csr = 0xC85
	Hpmcounter6h Csr = 0xC86
	Hpmcounter7h Csr = 0xC87
	Hpmcounter8h Csr = 0xC88
	Hpmcounter9h Csr = 0xC89
	Hpmcounter10h Csr = 0xC8A
	Hpmcounter11h Csr = 0xC8B
	Hpmcounter12h Csr = 0xC8C
	Hpmcounter13h Csr = 0xC8D
	Hpmcounter14h Csr = 0xC8E
	Hpmcounter15h Csr = 0xC8F
	Hpmcounter16h Csr = 0xC90
	Hpmcounter17h Csr = 0xC91
	Hpmcounter18h Csr = 0xC92
	Hpmcounter19h Csr = 0xC93
	Hpmcounter20h Csr = 0xC94
	Hpmcounter21h Csr = 0xC95
	Hpmcounter22h Csr = 0xC96
	Hpmcounter23h Csr = 0xC97
	Hpmcounter24h Csr = 0xC98
	Hpmcounter25h Csr = 0xC99
	Hpmcounter26h Csr = 0xC9A
	Hpmcounter27h Csr = 0xC9B
	Hpmcounter28h Csr = 0xC9C
	Hpmcounter29h Csr = 0xC9D
	Hpmcounter30h Csr = 0xC9E
	Hpmcounter31h Csr = 0xC9F
	Sstatus Csr = 0x100
	Sie Csr = 0x104
	Stvec Csr = 0x105
	Scounteren Csr = 0x106
	Senvcfg Csr = 0x10A
	Sscratch Csr = 0x140
	Sepc Csr = 0x141
	Scause Csr = 0x142
	Stval Csr = 0x143
	Sip Csr = 0x144
	Satp Csr = 0x180
	Scontext Csr = 0x5A8
	Hstatus Csr = 0x600
	Hedeleg Csr = 0x602
	Hideleg Csr = 0x603
	Hie Csr = 0x604
	Hcounteren Csr = 0x606
	Hgeie Csr = 0x607
	Htval Csr = 0x643
	Hip Csr = 0x644
	Hvip Csr = 0x645
	Htinst Csr = 0x64A
	Hgeip Csr = 0xE12
	Henvcfg Csr = 0x60A
	Henvcfgh Csr = 0x61A
	Hcontext Csr = 0x6A8
	Htimedelta Csr = 0x605
	Htimedeltah Csr = 0x615
	Vsstatus Csr = 0x200
	Vsie Csr = 0x204
	Vstvec Csr = 0x205
	Vsscratch Csr = 0x240
	Vsepc Csr = 0x241
	Vscause Csr = 0x242
	Vstval Csr = 0x243
	Vsip Csr = 0x244
	Vsatp Csr = 0x280
	Mvendorid Csr = 0xF11
	Marchid Csr = 0xF12
	Mimpid Csr = 0xF13
	Mhartid Csr = 0xF14
	Mconfigptr Csr = 0xF15
	Mstatus Csr = 0x300
	Misa Csr = 0x301
	Medeleg Csr = 0x302
	Mideleg Csr = 0x303
	Mie Csr = 0x304
	Mtvec Csr = 0x305
	Mcounteren Csr = 0x306
	Mstatush Csr = 0x310
	Mscratch Csr = 0x340
	Mepc Csr = 0x341
	Mcause Csr = 0x342
	Mtval Csr = 0x343
	Mip Csr = 0x344
	Mtinst Csr = 0x34A
	Mtval2 Csr = 0x34B
	Menvcfg Csr = 0x30A
	Menvcfgh Csr = 0x31A
	Mseccfg Csr = 0x747
	Mseccfgh Csr = 0x757
	Pmpcfg0 Csr = 0x3A0
	Pmpcfg1 Csr = 0x3A1
	Pmpcfg2 Csr = 0x3A2
	Pmpcfg3 Csr = 0x3A3
	Pmpcfg4 Csr = 0x3A4
	Pmpcfg5 Csr = 0x3A5
	Pmpcfg6 Csr = 0x3A6
	Pmpcfg7 Csr = 0x3A7
	Pmpcfg8 Csr = 0x3A8
	Pmpcfg9 Csr = 0x3A9
	Pmpcfg10 Csr = 0x3AA
	Pmpcfg11 Csr = 0x3AB
	Pmpcfg12 Csr = 0x3AC
	Pmpcfg13 Csr = 0x3AD
	Pmpcfg14 Csr = 0x3AE
	Pmpcfg15 Csr = 0x3AF
	Pmpaddr0 Csr = 0x3B0
	Pmpaddr1 Csr = 0x3B1
	Pmpaddr2 Csr = 0x3B2
	Pmpaddr3 Csr = 0x3B3
	Pmpaddr4 Csr = 0x3B4
	Pmpaddr5 Csr = 0x3B5
	Pmpaddr6 Csr = 0x3B6
	Pmpaddr7 Csr = 0x3B7
	Pmpaddr8 Csr = 0x3B8
	Pmpaddr9 Csr = 0x3B9
	Pmpaddr10 Csr = 0x3BA
	Pmpaddr11 Csr = 0x3BB
	Pmpaddr12 Csr = 0x3BC
	Pmpaddr13 Csr = 0x3BD
	Pmpaddr14 Csr = 0x3BE
	Pmpaddr15 Csr = 0x3BF
	Pmpaddr16 Csr = 0x3C0
	Pmpaddr17 Csr = 0x3C1
	Pmpaddr18 Csr = 0x3C2
	Pmpaddr19 Csr = 0x3C3
	Pmpaddr20 Csr = 0x3C4
	Pmpaddr21 Csr = 0x3C5
	Pmpaddr22 Csr = 0x3C6
	Pmpaddr23 Csr = 0x3C7
	Pmpaddr24 Csr = 0x3C8
	Pmpaddr25 Csr = 0x3C9
	Pmpaddr26 Csr = 0x3CA
	Pmpaddr27 Csr = 0x3CB
	Pmpaddr28 Csr = 0x3CC
	Pmpaddr29 Csr = 0x3CD
	Pmpaddr30 Csr = 0x3CE
	Pmpaddr31 Csr = 0x3CF
	Pmpaddr32 Csr = 0x3D0
	Pmpaddr33 Csr = 0x3D1
	Pmpaddr34 Csr = 0x3D2
	Pmpaddr35 Csr = 0x3D3
	Pmpaddr36 Csr = 0x3D4
	Pmpaddr37 Csr = 0x3D5
	Pmpaddr38 Csr = 0x3D6
	Pmpaddr39 Csr = 0x3D7
	Pmpaddr40 Csr = 0x3D8
	Pmpaddr41 Csr = 0x3D9
	Pmpaddr42 Csr = 0x3DA
	Pmpaddr43 Csr = 0x3DB
	Pmpaddr44 Csr = 0x3DC
	Pmpaddr45 Csr = 0x3DD
	Pmpaddr46 Csr = 0x3DE
	Pmpaddr47 Csr = 0x3DF
	Pmpaddr48 Csr = 0x3E0
	Pmpaddr49 Csr = 0x3E1
	Pmpaddr50 Csr = 0x3E2
	Pmpaddr51 Csr = 0x3E3
	Pmpaddr52 Csr = 0x3E4
	Pmpaddr53 Csr = 0x3E5
	Pmpaddr54 Csr = 0x3E6
	Pmpaddr55 Csr = 0x3E7
	Pmpaddr56 Csr = 0x3E8
	Pmpaddr57 Csr = 0x3E9
	Pmpaddr58 Csr = 0x3EA
	Pmpaddr59 Csr = 0x3EB
	Pmpaddr60 Csr = 0x3EC
	Pmpaddr61 Csr = 0x3ED
	Pmpaddr62 Csr = 0x3EE
	Pmpaddr63 Csr = 0x3EF
	Mcycle Csr = 0xB00
	Minstret Csr = 0xB02
	Mhpmcounter3 Csr = 0xB03
	Mhpmcounter4 Csr = 0xB04
	Mhpmcounter5 Csr = 0xB05
	Mhpmcounter6 Csr = 0xB06
	Mhpmcounter7 Csr = 0xB07
	Mhpmcounter8 Csr = 0xB08
	Mhpmcounter9 Csr = 0xB09
	Mhpmcounter10 Csr = 0xB0A
	Mhpmcounter11 Csr = 0xB0B
	Mhpmcounter12 Csr = 0xB0C
	Mhpmcounter13 Csr = 0xB0D
	Mhpmcounter14 Csr = 0xB0E
	Mhpmcounter15 Csr = 0xB0F
	Mhpmcounter16 Csr = 0xB10
	Mhpmcounter17 Csr = 0xB11
	Mhpmcounter18 Csr = 0xB12
	Mhpmcounter19 Csr = 0xB13
	Mhpmcounter20 Csr = 0xB14
	Mhpmcounter21 Csr = 0xB15
	Mhpmcounter22 Csr = 0xB16
	Mhpmcounter23 Csr = 0xB17
	Mhpmcounter24 Csr = 0xB18
	Mhpmcounter25 Csr = 0xB19
	Mhpmcounter26 Csr = 0xB1A
	Mhpmcounter27 Csr = 0xB1B
	Mhpmcounter28 Csr = 0xB1C
	Mhpmcounter29 Csr = 0xB1D
	Mhpmcounter30 Csr = 0xB1E
	Mhpmcounter31 Csr = 0xB1F
	Mcycleh Csr = 0xB80
	Minstreth Csr = 0xB82
	Mhpmcounter3h Csr = 0xB83
	Mhpmcounter4h Csr = 0xB84
	Mhpmcounter5h Csr = 0xB85
	Mhpmcounter6h Csr = 0xB86
	Mhpmcounter7h Csr = 0xB87
	Mhpmcounter8h Csr = 0xB88
	Mhpmcounter9h Csr = 0xB89
	Mhpmcounter10h Csr = 0xB8A
	Mhpmcounter11h Csr = 0xB8B
	Mhpmcounter12h Csr = 0xB8C
	Mhpmcounter13h Csr = 0xB8D
	Mhpmcounter14h Csr = 0xB8E
	Mhpmcounter15h Csr = 0xB8F
	Mhpmcounter16h Csr = 0xB90
	Mhpmcounter17h Csr = 0xB91
	Mhpmcounter18h Csr = 0xB92
	Mhpmcounter19h Csr = 0xB93
	Mhpmcounter20h Csr = 0xB94
	Mhpmcounter21h Csr = 0xB95
	Mhpmcounter22h Csr = 0xB96
	Mhpmcounter23h Csr = 0xB97
	Mhpmcounter24h Csr = 0xB98
	Mhpmcounter25h Csr = 0xB99
	Mhpmcounter26h Csr = 0xB9A
	Mhpmcounter27h Csr = 0xB9B
	Mhpmcounter28h Csr = 0xB9C
	Mhpmcounter29h Csr = 0xB9D
	Mhpmcounter30h Csr = 0xB9E
	Mhpmcounter31h Csr = 0xB9F
	Mcountinhibit Csr = 0x320
	Mhpmevent3 Csr = 0x323
	Mhpmevent4 Csr = 0x324
	Mhpmevent5 Csr = 0x325
	Mhpmevent6 Csr = 0x326
	Mhpmevent7 Csr = 0x327
	Mhpmevent8 Csr = 0x328
	Mhpmevent9 Csr = 0x329
	Mhpmevent10 Csr = 0x32A
	Mhpmevent11 Csr = 0x32B
	Mhpmevent12 Csr = 0x32C
	Mhpmevent13 Csr = 0x32D
	Mhpmevent14 Csr = 0x32E
	Mhpmevent15 Csr = 0x32F
	Mhpmevent16 Csr = 0x330
	Mhpmevent17 Csr = 0x331
	Mhpmevent18 Csr = 0x332
	Mhpmevent19 Csr = 0x333
	Mhpmevent20 Csr = 0x334
	Mhpmevent21 Csr = 0x335
	Mhpmevent22 Csr = 0x336
	Mhpmevent23 Csr = 0x337
	Mhpmevent24 Csr = 0x338
	Mhpmevent25 Csr = 0x339
	Mhpmevent26 Csr = 0x33A
	Mhpmevent27 Csr = 0x33B
	Mhpmevent28 Csr = 0x33C
	Mhpmevent29 Csr = 0x33D
	Mhpmevent30 Csr = 0x33E
	Mhpmevent31 Csr = 0x33F
	Tselect Csr = 0x7A0
	Tdata1 Csr = 0x7A1
	Tdata2 Csr = 0x7A2
	Tdata3 Csr = 0x7A3
	Mcontext Csr = 0x7A8
	Dcsr Csr = 0x7B0
	Dpc Csr = 0x7B1
	Dscratch0 Csr = 0x7B2
	Dscratch1 Csr = 0x7B3
)

var csrByAddress = map[uint16]Csr{
	0x001: Fflags,
	0x002: Frm,
	0x003: Fcsr,
	0xC00: Cycle,
	0xC01: Time,
	0xC02: Instret,
	0xC03: Hpmcounter3,
	0xC04: Hpmcounter4,
	0xC05: Hpmcounter5,
	0xC06: Hpmcounter6,
	0xC07: Hpmcounter7,
	0xC08: Hpmcounter8,
	0xC09: Hpmcounter9,
	0xC0A: Hpmcounter10,
	0xC0B: Hpmcounter11,
	0xC0C: Hpmcounter12,
	0xC0D: Hpmcounter13,
	0xC0E: Hpmcounter14,
	0xC0F: Hpmcounter15,
	0xC10: Hpmcounter16,
	0xC11: Hpmcounter17,
	0xC12: Hpmcounter18,
	0xC13: Hpmcounter19,
	0xC14: Hpmcounter20,
	0xC15: Hpmcounter21,
	0xC16: Hpmcounter22,
	0xC17: Hpmcounter23,
	0xC18: Hpmcounter24,
	0xC19: Hpmcounter25,
	0xC1A: Hpmcounter26,
	0xC1B: Hpmcounter27,
	0xC1C: Hpmcounter28,
	0xC1D: Hpmcounter29,
	0xC1E: Hpmcounter30,
	0xC1F: Hpmcounter31,
	0xC80: Cycleh,
	0xC81: Timeh,
	0xC82: Instreth,
	0xC83: Hpmcounter3h,
	0xC84: Hpmcounter4h,
	0xC85: Hpmcounter5h,
	0xC86: Hpmcounter6h,
	0xC87: Hpmcounter7h,
	0xC88: Hpmcounter8h,
	0xC89: Hpmcounter9h,
	0xC8A: Hpmcounter10h,
	0xC8B: Hpmcounter11h,
	0xC8C: Hpmcounter12h,
	0xC8D: Hpmcounter13h,
	0xC8E: Hpmcounter14h,
	0xC8F: Hpmcounter15h,
	0xC90: Hpmcounter16h,
	0xC91: Hpmcounter17h,
	0xC92: Hpmcounter18h,
	0xC93: Hpmcounter19h,
	0xC94: Hpmcounter20h,
	0xC95: Hpmcounter21h,
	0xC96: Hpmcounter22h,
	0xC97: Hpmcounter23h,
	0xC98: Hpmcounter24h,
	0xC99: Hpmcounter25h,
	0xC9A: Hpmcounter26h,
	0xC9B: Hpmcounter27h,
	0xC9C: Hpmcounter28h,
	0xC9D: Hpmcounter29h,
	0xC9E: Hpmcounter30h,
	0xC9F: Hpmcounter31h,
	0x100: Sstatus,
	0x104: Sie,
	0x105: Stvec,
	0x106: Scounteren,
	0x10A: Senvcfg,
	0x140: Sscratch,
	0x141: Sepc,
	0x142: Scause,
	0x143: Stval,
	0x144: Sip,
	0x180: Satp,
	0x5A8: Scontext,
	0x600: Hstatus,
	0x602: Hedeleg,
	0x603: Hideleg,
	0x604: Hie,
	0x606: Hcounteren,
	0x607: Hgeie,
	0x643: Htval,
	0x644: Hip,
	0x645: Hvip,
	0x64A: Htinst,
	0xE12: Hgeip,
	0x60A: Henvcfg,
	0x61A: Henvcfgh,
	0x6A8: Hcontext,
	0x605: Htimedelta,
	0x615: Htimedeltah,
	0x200: Vsstatus,
	0x204: Vsie,
	0x205: Vstvec,
	0x240: Vsscratch,
	0x241: Vsepc,
	0x242: Vscause,
	0x243: Vstval,
	0x244: Vsip,
	0x280: Vsatp,
	0xF11: Mvendorid,
	0xF12: Marchid,
	0xF13: Mimpid,
	0xF14: Mhartid,
	0xF15: Mconfigptr,
	0x300: Mstatus,
	0x301: Misa,
	0x302: Medeleg,
	0x303: Mideleg,
	0x304: Mie,
	0x305: Mtvec,
	0x306: Mcounteren,
	0x310: Mstatush,
	0x340: Mscratch,
	0x341: Mepc,
	0x342: Mcause,
	0x343: Mtval,
	0x344: Mip,
	0x34A: Mtinst,
	0x34B: Mtval2,
	0x30A: Menvcfg,
	0x31A: Menvcfgh,
	0x747: Mseccfg,
	0x757: Mseccfgh,
	0x3A0: Pmpcfg0,
	0x3A1: Pmpcfg1,
	0x3A2: Pmpcfg2,
	0x3A3: Pmpcfg3,
	0x3A4: Pmpcfg4,
	0x3A5: Pmpcfg5,
	0x3A6: Pmpcfg6,
	0x3A7: Pmpcfg7,
	0x3A8: Pmpcfg8,
	0x3A9: Pmpcfg9,
	0x3AA: Pmpcfg10,
	0x3AB: Pmpcfg11,
	0x3AC: Pmpcfg12,
	0x3AD: Pmpcfg13,
	0x3AE: Pmpcfg14,
	0x3AF: Pmpcfg15,
	0x3B0: Pmpaddr0,
	0x3B1: Pmpaddr1,
	0x3B2: Pmpaddr2,
	0x3B3: Pmpaddr3,
	0x3B4: Pmpaddr4,
	0x3B5: Pmpaddr5,
	0x3B6: Pmpaddr6,
	0x3B7: Pmpaddr7,
	0x3B8: Pmpaddr8,
	0x3B9: Pmpaddr9,
	0x3BA: Pmpaddr10,
	0x3BB: Pmpaddr11,
	0x3BC: Pmpaddr12,
	0x3BD: Pmpaddr13,
	0x3BE: Pmpaddr14,
	0x3BF: Pmpaddr15,
	0x3C0: Pmpaddr16,
	0x3C1: Pmpaddr17,
	0x3C2: Pmpaddr18,
	0x3C3: Pmpaddr19,
	0x3C4: Pmpaddr20,
	0x3C5: Pmpaddr21,
	0x3C6: Pmpaddr22,
	0x3C7: Pmpaddr23,
	0x3C8: Pmpaddr24,
	0x3C9: Pmpaddr25,
	0x3CA: Pmpaddr26,
	0x3CB: Pmpaddr27,
	0x3CC: Pmpaddr28,
	0x3CD: Pmpaddr29,
	0x3CE: Pmpaddr30,
	0x3CF: Pmpaddr31,
	0x3D0: Pmpaddr32,
	0x3D1: Pmpaddr33,
	0x3D2: Pmpaddr34,
	0x3D3: Pmpaddr35,
	0x3D4: Pmpaddr36,
	0x3D5: Pmpaddr37,
	0x3D6: Pmpaddr38,
	0x3D7: Pmpaddr39,
	0x3D8: Pmpaddr40,
	0x3D9: Pmpaddr41,
	0x3DA: Pmpaddr42,
	0x3DB: Pmpaddr43,
	0x3DC: Pmpaddr44,
	0x3DD: Pmpaddr45,
	0x3DE: Pmpaddr46,
	0x3DF: Pmpaddr47,
	0x3E0: Pmpaddr48,
	0x3E1: Pmpaddr49,
	0x3E2: Pmpaddr50,
	0x3E3: Pmpaddr51,
	0x3E4: Pmpaddr52,
	0x3E5: Pmpaddr53,
	0x3E6: Pmpaddr54,
	0x3E7: Pmpaddr55,
	0x3E8: Pmpaddr56,
	0x3E9: Pmpaddr57,
	0x3EA: Pmpaddr58,
	0x3EB: Pmpaddr59,
	0x3EC: Pmpaddr60,
	0x3ED: Pmpaddr61,
	0x3EE: Pmpaddr62,
	0x3EF: Pmpaddr63,
	0xB00: Mcycle,
	0xB02: Minstret,
	0xB03: Mhpmcounter3,
	0xB04: Mhpmcounter4,
	0xB05: Mhpmcounter5,
	0xB06: Mhpmcounter6,
	0xB07: Mhpmcounter7,
	0xB08: Mhpmcounter8,
	0xB09: Mhpmcounter9,
	0xB0A: Mhpmcounter10,
	0xB0B: Mhpmcounter11,
	0xB0C: Mhpmcounter12,
	0xB0D: Mhpmcounter13,
	0xB0E: Mhpmcounter14,
	0xB0F: Mhpmcounter15,
	0xB10: Mhpmcounter16,
	0xB11: Mhpmcounter17,
	0xB12: Mhpmcounter18,
	0xB13: Mhpmcounter19,
	0xB14: Mhpmcounter20,
	0xB15: Mhpmcounter21,
	0xB16: Mhpmcounter22,
	0xB17: Mhpmcounter23,
	0xB18: Mhpmcounter24,
	0xB19: Mhpmcounter25,
	0xB1A: Mhpmcounter26,
	0xB1B: Mhpmcounter27,
	0xB1C: Mhpmcounter28,
	0xB1D: Mhpmcounter29,
	0xB1E: Mhpmcounter30,
	0xB1F: Mhpmcounter31,
	0xB80: Mcycleh,
	0xB82: Minstreth,
	0xB83: Mhpmcounter3h,
	0xB84: Mhpmcounter4h,
	0xB85: Mhpmcounter5h,
	0xB86: Mhpmcounter6h,
	0xB87: Mhpmcounter7h,
	0xB88: Mhpmcounter8h,
	0xB89: Mhpmcounter9h,
	0xB8A: Mhpmcounter10h,
	0xB8B: Mhpmcounter11h,
	0xB8C: Mhpmcounter12h,
	0xB8D: Mhpmcounter13h,
	0xB8E: Mhpmcounter14h,
	0xB8F: Mhpmcounter15h,
	0xB90: Mhpmcounter16h,
	0xB91: Mhpmcounter17h,
	0xB92: Mhpmcounter18h,
	0xB93: Mhpmcounter19h,
	0xB94: Mhpmcounter20h,
	0xB95: Mhpmcounter21h,
	0xB96: Mhpmcounter22h,
	0xB97: Mhpmcounter23h,
	0xB98: Mhpmcounter24h,
	0xB99: Mhpmcounter25h,
	0xB9A: Mhpmcounter26h,
	0xB9B: Mhpmcounter27h,
	0xB9C: Mhpmcounter28h,
	0xB9D: Mhpmcounter29h,
	0xB9E: Mhpmcounter30h,
	0xB9F: Mhpmcounter31h,
	0x320: Mcountinhibit,
	0x323: Mhpmevent3,
	0x324: Mhpmevent4,
	0x325: Mhpmevent5,
	0x326: Mhpmevent6,
	0x327: Mhpmevent7,
	0x328: Mhpmevent8,
	0x329: Mhpmevent9,
	0x32A: Mhpmevent10,
	0x32B: Mhpmevent11,
	0x32C: Mhpmevent12,
	0x32D: Mhpmevent13,
	0x32E: Mhpmevent14,
	0x32F: Mhpmevent15,
	0x330: Mhpmevent16,
	0x331: Mhpmevent17,
	0x332: Mhpmevent18,
	0x333: Mhpmevent19,
	0x334: Mhpmevent20,
	0x335: Mhpmevent21,
	0x336: Mhpmevent22,
	0x337: Mhpmevent23,
	0x338: Mhpmevent24,
	0x339: Mhpmevent25,
	0x33A: Mhpmevent26,
	0x33B: Mhpmevent27,
	0x33C: Mhpmevent28,
	0x33D: Mhpmevent29,
	0x33E: Mhpmevent30,
	0x33F: Mhpmevent31,
	0x7A0: Tselect,
	0x7A1: Tdata1,
	0x7A2: Tdata2,
	0x7A3: Tdata3,
	0x7A8: Mcontext,
	0x7B0: Dcsr,
	0x7B1: Dpc,
	0x7B2: Dscratch0,
	0x7B3: Dscratch1,
}

// addressByCsr is the exact inverse of csrByAddress, built once at package
// initialization from the literal table above so Address() stays cheap.
var addressByCsr = func() map[Csr]uint16 {
	m := make(map[Csr]uint16, len(csrByAddress))
	for addr, c := range csrByAddress {
		m[c] = addr
	}
	return m
}()

// CsrFromAddress is the total partial inverse of Address: it resolves a
// 12-bit CSR address to its enumerated Csr, or reports false if the address
// is not one of the standard CSRs.
func CsrFromAddress(addr uint16) (Csr, bool) {
	c, ok := csrByAddress[addr]
	return c, ok
}

// Address is the exact inverse of CsrFromAddress for every enumerated Csr.
func (c Csr) Address() uint16 {
	return addressByCsr[c]
}

// CsrFromWord resolves the CSR addressed by raw32[31:20], the encoding
// every CSR-manipulating instruction uses.
func CsrFromWord(raw32 uint32) (Csr, bool) {
	return CsrFromAddress(uint16(raw32 >> 20))
}
