// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
)

// Assembler drives the translation of Whitespace assembly source into a
// Whitespace program.
type Assembler struct {
	Format   Format // Output rendering, raw or mark.
	Comments bool   // If set, mark output keeps source comments.
	Verbose  bool   // If set, verbosely logs each source line.
}

// Parse reads assembly source and translates it line by line. Every
// offending line produces a Diagnostic and translation moves on, so one
// run reports all errors; the program is only meaningful when no
// diagnostics come back.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, diags []Diagnostic) {
	prog = &Program{}

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineno++

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		cmd := ParseTokens(TokenizeLine(line))
		encoded, err := TranslateInstruction(cmd.Keyword, cmd.Params)
		if err != nil {
			diags = append(diags, Diagnostic{LineNo: lineno, Err: err})
			continue
		}

		prog.Instructions = append(prog.Instructions, Instruction{
			LineNo:  lineno,
			Keyword: cmd.Keyword,
			Params:  cmd.Params,
			Comment: cmd.Comment,
			Encoded: encoded,
		})
	}

	return
}

// Assemble translates a whole source file. The contract is all or
// nothing: any diagnostic discards the output entirely.
func (asm *Assembler) Assemble(input io.Reader) (output string, diags []Diagnostic) {
	var prog *Program
	prog, diags = asm.Parse(input)
	if len(diags) > 0 {
		return
	}

	output = prog.Render(asm.Format, asm.Comments)
	return
}
