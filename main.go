// Package main prints a pointer to the full CLI.
//
// For the full CLI, use: go run ./cmd/remoulade
package main

import (
	"fmt"
)

func main() {
	fmt.Println("remoulade - RISC-V instruction decoder and cache model")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/remoulade' for the full CLI:")
	fmt.Println("  remoulade decode <hex-word>")
	fmt.Println("  remoulade csr <hex-addr>")
	fmt.Println("  remoulade cache-demo")
}
