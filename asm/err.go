package asm

import (
	"github.com/ezrec/wsasm/translate"
)

var f = translate.From

// ErrInvalidInstruction reports a keyword absent from the translation
// table, spelled as it appeared in the source.
type ErrInvalidInstruction string

func (err ErrInvalidInstruction) Error() string {
	return f("Invalid instruction %v", string(err))
}

// ErrParamCount reports the wrong number of parameters for a keyword.
type ErrParamCount struct {
	Keyword string
	Want    int
	Got     int
}

func (err ErrParamCount) Error() string {
	if err.Want == 0 {
		return f("Expected no parameters for %v, but got %v", err.Keyword, err.Got)
	}
	return f("Expected %v parameter for %v, but got %v", err.Want, err.Keyword, err.Got)
}

// ErrExpectedNumber reports a token that is not an integer literal.
type ErrExpectedNumber string

func (err ErrExpectedNumber) Error() string {
	return f("Expected number, but got %v instead", string(err))
}

// ErrExpectedValue reports a token that is neither an integer literal nor
// a single quoted character.
type ErrExpectedValue string

func (err ErrExpectedValue) Error() string {
	return f("Expected number or single character, but got %v instead", string(err))
}

// ErrExpectedLabel reports a token that is not a string of binary digits.
type ErrExpectedLabel string

func (err ErrExpectedLabel) Error() string {
	return f("Expected zeros and ones, but got %v instead", string(err))
}

// ErrFormatInvalid reports an unknown output format name.
type ErrFormatInvalid string

func (err ErrFormatInvalid) Error() string {
	return f("format %v invalid, want 'raw' or 'mark'", string(err))
}

// Diagnostic ties a translation error to its 1-based source line.
type Diagnostic struct {
	LineNo int
	Err    error
}

func (d Diagnostic) Error() string {
	return f("Line %d: %v", d.LineNo, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}
