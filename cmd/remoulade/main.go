// Command remoulade is the CLI front end for the decoder, CSR table, and
// cache subsystem: a single-instruction decoder, a CSR address lookup, and
// a small cache-behavior demonstration, for exercising the library without
// writing Go.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/sarchlab/remoulade/emu"
	"github.com/sarchlab/remoulade/insts"
)

func main() {
	log := funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
		} else {
			fmt.Fprintln(os.Stderr, args)
		}
	}, funcr.Options{})

	rootCmd := &cobra.Command{
		Use:   "remoulade",
		Short: "RISC-V instruction decoder and cache model",
	}

	decodeCmd := &cobra.Command{
		Use:   "decode <hex-word>",
		Short: "Decode a 32-bit instruction word and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseHex32(args[0])
			if err != nil {
				return err
			}

			inst := insts.DecodeRaw32(raw)
			if inst.Op == insts.OpIllegal32 {
				log.Info("decoded as illegal", "raw", fmt.Sprintf("0x%08x", raw))
			}
			fmt.Printf("op:   %s\n", inst.Op)
			fmt.Printf("rd:   x%d\n", inst.Rd)
			fmt.Printf("rs1:  x%d\n", inst.Rs1)
			fmt.Printf("rs2:  x%d\n", inst.Rs2)
			fmt.Printf("imm:  %d\n", inst.Imm)
			if inst.Csr != 0 {
				fmt.Printf("csr:  0x%03x\n", inst.Csr.Address())
			}
			return nil
		},
	}

	csrCmd := &cobra.Command{
		Use:   "csr <hex-addr>",
		Short: "Report whether a 12-bit CSR address is a standard CSR (the CSR name is not printed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseHex32(args[0])
			if err != nil {
				return err
			}

			csr, ok := insts.CsrFromAddress(uint16(addr))
			if !ok {
				log.Info("address is unassigned", "addr", fmt.Sprintf("0x%03x", addr))
				fmt.Println("unassigned")
				return nil
			}
			fmt.Printf("assigned (address 0x%03x)\n", csr.Address())
			return nil
		},
	}

	var memSize uint32
	cacheDemoCmd := &cobra.Command{
		Use:   "cache-demo",
		Short: "Fetch a block of instructions through a fresh hart and report cache hit/miss behavior",
		RunE: func(cmd *cobra.Command, args []string) error {
			hart := emu.NewHart(memSize)

			const pc = 0x1000
			inst, hit := hart.FetchDecode(pc)
			fmt.Printf("first fetch at 0x%x: hit=%v op=%s\n", pc, hit, inst.Op)

			inst, hit = hart.FetchDecode(pc)
			fmt.Printf("second fetch at 0x%x: hit=%v op=%s\n", pc, hit, inst.Op)

			fmt.Printf("instruction cache stats: %+v\n", hart.ICache.Stats)
			return nil
		},
	}
	cacheDemoCmd.Flags().Uint32Var(&memSize, "mem-size", 1<<20, "bytes of hart memory to allocate")

	rootCmd.AddCommand(decodeCmd, csrCmd, cacheDemoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseHex32(s string) (uint32, error) {
	digits := s
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q as a hex word: %w", s, err)
	}
	return uint32(v), nil
}
