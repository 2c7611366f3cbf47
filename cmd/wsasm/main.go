// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/wsasm/asm"
)

func main() {
	var output string
	var format string
	var comments bool
	var verbose bool

	flag.StringVar(&output, "o", "", "Output file (default: input with a .ws extension)")
	flag.StringVar(&format, "f", "mark", "Output format, 'raw' or 'mark'")
	flag.BoolVar(&comments, "c", false, "Keep source comments in mark output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one input file, got %v arguments", os.Args[0], flag.NArg())
	}
	input := flag.Arg(0)

	fm, err := asm.ParseFormat(format)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Format: fm, Comments: comments, Verbose: verbose}
	text, diags := assembler.Assemble(inf)
	if len(diags) > 0 {
		for _, diag := range diags {
			fmt.Fprintln(os.Stderr, diag.Error())
		}
		os.Exit(1)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".ws"
	}

	err = os.WriteFile(output, []byte(text), 0o644)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
