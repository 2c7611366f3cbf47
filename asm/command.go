package asm

import (
	"strings"
)

// Command is one parsed source line.
type Command struct {
	Keyword string   // Instruction keyword, empty on blank or comment-only lines.
	Params  []string // Raw parameter tokens, in source order.
	Comment string   // Trailing comment, including its ';'.
}

// ParseTokens groups a token sequence into a Command. A trailing comment
// token is split off first; the first remaining token is the keyword and
// the rest are parameters. No semantic checks happen here.
func ParseTokens(tokens []string) (cmd Command) {
	if len(tokens) > 0 && strings.HasPrefix(tokens[len(tokens)-1], ";") {
		cmd.Comment = tokens[len(tokens)-1]
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) > 0 {
		cmd.Keyword = tokens[0]
		cmd.Params = tokens[1:]
	}

	return
}
