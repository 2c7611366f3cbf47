// Package asm translates Whitespace assembly text into Whitespace programs.
//
// The assembly language gives every Whitespace instruction a readable
// keyword (push, dup, jump, ...) taking at most one parameter: a signed
// number, a quoted character, or a label written as binary digits. Each
// source line is tokenized, parsed into a command, and encoded through a
// static translation table into the three-symbol Whitespace alphabet.
//
// Output renders either as raw control characters or in the letter
// annotated "mark" form, where every space, tab, and line-feed carries a
// mnemonic S, T, or L prefix.
package asm
