package asm

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// marked expands an S/T/L pattern into its mark rendering.
func marked(pattern string) string {
	return strings.NewReplacer("S", "S"+SPACE, "T", "T"+TAB, "L", "L"+LF).Replace(pattern)
}

const helloSource = "; Output 'Hi'\n" +
	"push 'H'\t; 72\n" +
	"outc\n" +
	"push 'i'\t; 105\n" +
	"outc\n" +
	"end\n"

const helloPattern = "SS" + "STSSTSSSL" + "TLSS" + "SS" + "STTSTSSTL" + "TLSS" + "LLL"

func TestAssembleEmpty(t *testing.T) {
	assert := assert.New(t)

	for _, format := range []Format{FORMAT_RAW, FORMAT_MARK} {
		asm := &Assembler{Format: format}
		output, diags := asm.Assemble(strings.NewReader(""))
		assert.Equal("", output, format.String())
		assert.Empty(diags, format.String())
	}
}

func TestAssembleRaw(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Format: FORMAT_RAW}
	output, diags := asm.Assemble(strings.NewReader(helloSource))
	assert.Empty(diags)
	assert.Equal(ws(helloPattern), output)
}

func TestAssembleMark(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Format: FORMAT_MARK}
	output, diags := asm.Assemble(strings.NewReader(helloSource))
	assert.Empty(diags)
	assert.Equal(marked(helloPattern), output)
}

func TestAssembleCRLF(t *testing.T) {
	assert := assert.New(t)

	unix := &Assembler{Format: FORMAT_RAW}
	windows := &Assembler{Format: FORMAT_RAW}

	expected, diags := unix.Assemble(strings.NewReader("push 33\nend\n"))
	assert.Empty(diags)

	output, diags := windows.Assemble(strings.NewReader("push 33\r\nend\r\n"))
	assert.Empty(diags)
	assert.Equal(expected, output)
}

func TestAssembleBad(t *testing.T) {
	assert := assert.New(t)

	source := strings.Join([]string{
		"; a broken program",
		"junk",
		"",
		"push",
		"copy 'H'",
		"jump 123",
		"dup",
		"pop 1",
		"push 1 2",
	}, "\n")

	asm := &Assembler{Format: FORMAT_RAW}
	output, diags := asm.Assemble(strings.NewReader(source))

	// All or nothing: a single bad line discards every good one.
	assert.Equal("", output)

	expected := []string{
		"Line 2: Invalid instruction junk",
		"Line 4: Expected 1 parameter for push, but got 0",
		"Line 5: Expected number, but got 'H' instead",
		"Line 6: Expected zeros and ones, but got 123 instead",
		"Line 8: Expected no parameters for pop, but got 1",
		"Line 9: Expected 1 parameter for push, but got 2",
	}
	assert.Equal(len(expected), len(diags))
	for n, diag := range diags {
		assert.Equal(expected[n], diag.Error())
	}
}

func TestAssembleAllOrNothing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Format: FORMAT_MARK}
	output, diags := asm.Assemble(strings.NewReader("push 1\npush 2\nadd\nwat\n"))
	assert.Equal("", output)
	assert.Len(diags, 1)
	assert.Equal("Line 4: Invalid instruction wat", diags[0].Error())
}

func TestAssembleComments(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Format: FORMAT_MARK, Comments: true}
	output, diags := asm.Assemble(strings.NewReader("push 33 ; go\n"))
	assert.Empty(diags)
	assert.Equal(";_go_"+marked("SSSTSSSSTL"), output)

	// Raw output stays pure control characters regardless.
	asm = &Assembler{Format: FORMAT_RAW, Comments: true}
	output, diags = asm.Assemble(strings.NewReader("push 33 ; go\n"))
	assert.Empty(diags)
	assert.Equal(ws("SSSTSSSSTL"), output)
}

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, diags := asm.Parse(strings.NewReader(helloSource))
	assert.Empty(diags)
	assert.Len(prog.Instructions, 6)

	first := prog.Instructions[0]
	assert.Equal(1, first.LineNo)
	assert.Equal("", first.Keyword)
	assert.Equal("; Output 'Hi'", first.Comment)
	assert.Equal("", first.Encoded)

	second := prog.Instructions[1]
	assert.Equal(2, second.LineNo)
	assert.Equal("push", second.Keyword)
	assert.Equal([]string{"'H'"}, second.Params)
	assert.Equal("; 72", second.Comment)
	assert.Equal(ws("SS"+"STSSTSSSL"), second.Encoded)

	var lines []int
	var total string
	for lineno, encoded := range prog.Encoded() {
		lines = append(lines, lineno)
		total += encoded
	}
	assert.Equal([]int{1, 2, 3, 4, 5, 6}, lines)
	assert.Equal(ws(helloPattern), total)
}

func TestAssembleExampleFiles(t *testing.T) {
	assert := assert.New(t)

	source, err := os.ReadFile("../examples/hello/hello.wsasm")
	if err != nil {
		t.Skipf("example sources unavailable: %v", err)
	}

	tests := []struct {
		format   Format
		expected string
	}{
		{FORMAT_RAW, "../examples/hello/hello.ws.raw"},
		{FORMAT_MARK, "../examples/hello/hello.ws"},
	}

	for _, tt := range tests {
		expected, err := os.ReadFile(tt.expected)
		assert.NoError(err)

		asm := &Assembler{Format: tt.format}
		output, diags := asm.Assemble(strings.NewReader(string(source)))
		assert.Empty(diags, tt.format.String())
		assert.Equal(string(expected), output, tt.format.String())
	}
}
