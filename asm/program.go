package asm

import (
	"iter"
	"strings"
)

// Instruction is one assembled source line.
type Instruction struct {
	LineNo  int
	Keyword string
	Params  []string
	Comment string
	Encoded string
}

// Program is the ordered result of assembling a source file.
type Program struct {
	Instructions []Instruction
}

// Encoded iterates the per-line encodings in source order. Blank and
// comment-only lines yield empty encodings.
func (prog *Program) Encoded() iter.Seq2[int, string] {
	return func(yield func(lineno int, encoded string) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.LineNo, inst.Encoded) {
				return
			}
		}
	}
}

// Render produces the program text in the given format. With comments
// set, mark output carries each line's comment ahead of its instruction;
// raw output never does.
func (prog *Program) Render(format Format, comments bool) string {
	var text strings.Builder

	for _, inst := range prog.Instructions {
		if comments && format == FORMAT_MARK && inst.Comment != "" {
			text.WriteString(FormatComment(inst.Comment))
		}
		text.WriteString(FormatInstruction(format, inst.Encoded))
	}

	return text.String()
}
