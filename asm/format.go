package asm

import (
	"strings"
)

// Format selects the rendering of encoded instructions.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_RAW  = Format(0) // raw
	FORMAT_MARK = Format(1) // mark
)

// ParseFormat resolves an output format by name.
func ParseFormat(name string) (format Format, err error) {
	switch name {
	case "raw":
		format = FORMAT_RAW
	case "mark":
		format = FORMAT_MARK
	default:
		err = ErrFormatInvalid(name)
	}
	return
}

// marker prefixes each alphabet symbol with its mnemonic letter.
var marker = strings.NewReplacer(
	SPACE, "S"+SPACE,
	TAB, "T"+TAB,
	LF, "L"+LF,
)

// FormatInstruction renders an encoded instruction. Raw output is the
// encoding itself; mark output annotates every symbol, opcode and
// parameter alike.
func FormatInstruction(format Format, encoded string) string {
	if format == FORMAT_MARK {
		return marker.Replace(encoded)
	}
	return encoded
}

// FormatComment rewrites a source comment so it can ride along inside
// mark output, where a stray space would change the program.
func FormatComment(comment string) string {
	comment = strings.ReplaceAll(comment, "' '", "'<space>'")
	comment = strings.ReplaceAll(comment, " ", "_")
	if !strings.HasSuffix(comment, "_") {
		comment += "_"
	}
	return comment
}
