package asm

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParamKind is the bit-flag parameter classification of a command.
type ParamKind int

//go:generate go tool stringer -linecomment -type=ParamKind
const (
	PARAM_NONE       = ParamKind(0)                   // none
	PARAM_NUMBER     = ParamKind(1 << 0)              // number
	PARAM_CHAR       = ParamKind(1 << 1)              // char
	PARAM_MULTI_CHAR = ParamKind(1 << 2)              // multichar
	PARAM_VALUE      = PARAM_NUMBER | PARAM_CHAR      // value
	PARAM_LABEL      = PARAM_VALUE | PARAM_MULTI_CHAR // label
)

// ParseNumber recognizes an optionally signed base-10 integer literal.
func ParseNumber(token string) (value int64, ok bool) {
	value, err := strconv.ParseInt(token, 10, 64)
	ok = err == nil
	return
}

// The only backslash sequences the grammar accepts.
var escapeMap = map[byte]rune{
	'\\': '\\',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'\'': '\'',
	'0':  0,
}

// ParseString recognizes a single-quoted literal and decodes its payload.
// An unquoted word, an unterminated quote, or an unknown escape is not a
// string.
func ParseString(token string) (text string, ok bool) {
	if len(token) < 2 || token[0] != '\'' || token[len(token)-1] != '\'' {
		return
	}

	payload := token[1 : len(token)-1]
	var decoded strings.Builder
	for i := 0; i < len(payload); i++ {
		ch := payload[i]
		switch ch {
		case '\'':
			// Embedded terminator; this is not one literal.
			return
		case '\\':
			i++
			if i >= len(payload) {
				return
			}
			esc, known := escapeMap[payload[i]]
			if !known {
				return
			}
			decoded.WriteRune(esc)
		default:
			decoded.WriteByte(ch)
		}
	}

	return decoded.String(), true
}

// ParseLabel recognizes a non-empty string of binary digits.
func ParseLabel(token string) (label string, ok bool) {
	if len(token) == 0 {
		return
	}

	for i := 0; i < len(token); i++ {
		if token[i] != '0' && token[i] != '1' {
			return
		}
	}

	return token, true
}

// Param is a classified parameter value.
type Param struct {
	Kind   ParamKind // PARAM_NUMBER, PARAM_CHAR or PARAM_LABEL.
	Number int64     // Integer value, or the character's code point.
	Label  string    // Binary digits, verbatim.
}

// ParseParam classifies a token against the parameter kind a command
// requires. Exactly one of (param, err) is meaningful.
func ParseParam(token string, kind ParamKind) (param Param, err error) {
	if kind&PARAM_MULTI_CHAR != 0 {
		label, ok := ParseLabel(token)
		if !ok {
			err = ErrExpectedLabel(token)
			return
		}
		param = Param{Kind: PARAM_LABEL, Label: label}
		return
	}

	if kind&PARAM_NUMBER != 0 {
		if value, ok := ParseNumber(token); ok {
			param = Param{Kind: PARAM_NUMBER, Number: value}
			return
		}
		if kind == PARAM_NUMBER {
			err = ErrExpectedNumber(token)
			return
		}
	}

	if text, ok := ParseString(token); ok && utf8.RuneCountInString(text) == 1 {
		r, _ := utf8.DecodeRuneInString(text)
		param = Param{Kind: PARAM_CHAR, Number: int64(r)}
		return
	}

	err = ErrExpectedValue(token)
	return
}

// TranslateParam encodes a classified parameter into the Whitespace
// alphabet. Numbers (and character code points) encode as a sign symbol
// and binary digits with no leading zeros; zero has no digits at all.
// Labels map their digits directly, with no sign. Both end with LF.
func TranslateParam(param Param) string {
	var encoded strings.Builder

	if param.Kind&PARAM_MULTI_CHAR != 0 {
		for i := 0; i < len(param.Label); i++ {
			if param.Label[i] == '0' {
				encoded.WriteString(SPACE)
			} else {
				encoded.WriteString(TAB)
			}
		}
		encoded.WriteString(LF)
		return encoded.String()
	}

	magnitude := uint64(param.Number)
	if param.Number < 0 {
		encoded.WriteString(TAB)
		magnitude = uint64(-param.Number)
	} else {
		encoded.WriteString(SPACE)
	}

	if magnitude > 0 {
		for _, digit := range strconv.FormatUint(magnitude, 2) {
			if digit == '0' {
				encoded.WriteString(SPACE)
			} else {
				encoded.WriteString(TAB)
			}
		}
	}
	encoded.WriteString(LF)

	return encoded.String()
}
