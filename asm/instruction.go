package asm

import (
	"strings"
)

// The Whitespace alphabet.
const (
	SPACE = " "
	TAB   = "\t"
	LF    = "\n"
)

// Whitespace command families.
const (
	STACK = SPACE       // Stack manipulation
	MATH  = TAB + SPACE // Arithmetic
	HEAP  = TAB + TAB   // Heap access
	FLOW  = LF          // Flow control
	IO    = TAB + LF    // I/O
)

// wsInfo describes one Whitespace command.
type wsInfo struct {
	command string    // Opcode prefix in the Whitespace alphabet.
	param   ParamKind // Parameter the command requires, if any.
}

// translationTable maps each keyword, lower-case, to its Whitespace
// command.
var translationTable = map[string]wsInfo{
	// Stack manipulation
	"push":  {command: STACK + SPACE, param: PARAM_VALUE},
	"dup":   {command: STACK + LF + SPACE},
	"copy":  {command: STACK + TAB + SPACE, param: PARAM_NUMBER},
	"swap":  {command: STACK + LF + TAB},
	"pop":   {command: STACK + LF + LF},
	"slide": {command: STACK + TAB + LF},
	// Arithmetic
	"add":  {command: MATH + SPACE + SPACE},
	"sub":  {command: MATH + SPACE + TAB},
	"mult": {command: MATH + SPACE + LF},
	"div":  {command: MATH + TAB + SPACE},
	"mod":  {command: MATH + TAB + TAB},
	// Heap access
	"store": {command: HEAP + SPACE},
	"retr":  {command: HEAP + TAB},
	// Flow control
	"label": {command: FLOW + SPACE + SPACE, param: PARAM_LABEL},
	"call":  {command: FLOW + SPACE + TAB, param: PARAM_LABEL},
	"jump":  {command: FLOW + SPACE + LF, param: PARAM_LABEL},
	"jumpz": {command: FLOW + TAB + SPACE, param: PARAM_LABEL},
	"jumpn": {command: FLOW + TAB + TAB, param: PARAM_LABEL},
	"ret":   {command: FLOW + TAB + LF},
	"end":   {command: FLOW + LF + LF},
	// I/O
	"outc": {command: IO + SPACE + SPACE},
	"outn": {command: IO + SPACE + TAB},
	"inc":  {command: IO + TAB + SPACE},
	"inn":  {command: IO + TAB + TAB},
}

// TranslateInstruction encodes one parsed command as a Whitespace
// instruction. A blank or comment-only line (empty keyword, no
// parameters) encodes as the empty instruction with no error. Exactly
// one of (encoded, err) is meaningful; the empty keyword case is the one
// spot where an empty encoding comes back with a nil error.
func TranslateInstruction(keyword string, params []string) (encoded string, err error) {
	if keyword == "" && len(params) == 0 {
		return
	}

	name := strings.ToLower(keyword)
	info, found := translationTable[name]
	if !found {
		err = ErrInvalidInstruction(keyword)
		return
	}

	want := 0
	if info.param != PARAM_NONE {
		want = 1
	}
	if len(params) != want {
		err = ErrParamCount{Keyword: name, Want: want, Got: len(params)}
		return
	}

	encoded = info.command
	if want == 1 {
		var param Param
		param, err = ParseParam(params[0], info.param)
		if err != nil {
			encoded = ""
			return
		}
		encoded += TranslateParam(param)
	}

	return
}
