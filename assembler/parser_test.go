package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_SkipsCommentsAndBlankLines(t *testing.T) {
	lines := []string{"// header", "", "   ", "@1", "  // indented comment", "", "D=A // trailing", "//", ""}
	parser := NewParser(lines)
	require.True(t, parser.HasMoreLines())
	require.NoError(t, parser.Advance())
	assert.Equal(t, 4, parser.LineNumber())
	assert.Equal(t, "@1", parser.Text())
	require.True(t, parser.HasMoreLines())
	require.NoError(t, parser.Advance())
	assert.Equal(t, 7, parser.LineNumber())
	assert.Equal(t, "D=A", parser.Text())
	assert.False(t, parser.HasMoreLines())
	assert.ErrorIs(t, parser.Advance(), ErrNoMoreInstructions)
	assert.ErrorIs(t, parser.Advance(), ErrNoMoreInstructions)
	_, err := parser.InstructionType()
	assert.ErrorIs(t, err, ErrNoMoreInstructions)
}

func TestParser_LongCommentRun(t *testing.T) {
	lines := make([]string, 0, 200001)
	for i := 0; i < 100000; i++ {
		lines = append(lines, "// filler", "")
	}
	lines = append(lines, "0;JMP")
	parser := NewParser(lines)
	require.NoError(t, parser.Advance())
	assert.Equal(t, len(lines), parser.LineNumber())
	assert.False(t, parser.HasMoreLines())
}

func TestTrimLine(t *testing.T) {
	testData := []struct {
		line, want string
	}{
		{"  D=A  ", "D=A"},
		{"D=A // welcome", "D=A"},
		{"D=A\t// tab", "D=A"},
		{"// whole line", ""},
		{"(a//b)", "(a//b)"},
		{"(a//b) // label", "(a//b)"},
		{"D=A// glued", "D=A// glued"},
	}
	for _, data := range testData {
		assert.Equal(t, data.want, trimLine(data.line), data.line)
	}
}

func TestParser_EmptyInput(t *testing.T) {
	parser := NewParser(nil)
	assert.False(t, parser.HasMoreLines())
	assert.ErrorIs(t, parser.Advance(), ErrNoMoreInstructions)
}

func TestParser_InstructionType(t *testing.T) {
	testData := []struct {
		line string
		kind Kind
	}{
		{"@10", AddressLoad},
		{"@LOOP", AddressLoad},
		{"(LOOP)", LabelDef},
		{"(hel4lo._)", LabelDef},
		{"D=A", Computation},
		{"0;JMP", Computation},
		{"D=M;JGT", Computation},
		{"  AM=M-1  ", Computation},
	}
	for _, data := range testData {
		parser := NewParser([]string{data.line})
		require.NoError(t, parser.Advance())
		kind, err := parser.InstructionType()
		require.NoError(t, err, data.line)
		assert.Equal(t, data.kind, kind, data.line)
	}
}

func TestParser_MalformedInstruction(t *testing.T) {
	for _, line := range []string{"D+A", "A=B=C", "D;;JMP", "(LOOP", "LOOP)", "@", "()", "/ not a comment"} {
		parser := NewParser([]string{line})
		require.NoError(t, parser.Advance())
		_, err := parser.InstructionType()
		assert.ErrorIs(t, err, ErrMalformedInstruction, line)
		assert.Equal(t, "", parser.Symbol(), line)
	}
}

func TestParser_Fields(t *testing.T) {
	testData := []struct {
		line             string
		dest, comp, jump string
	}{
		{"D=A", "D", "A", "null"},
		{"0;JMP", "null", "0", "JMP"},
		{"D;JGT", "null", "D", "JGT"},
		{"AM=M-1", "AM", "M-1", "null"},
		{"D=M;JGT", "D", "M", "JGT"},
	}
	for _, data := range testData {
		parser := NewParser([]string{data.line})
		require.NoError(t, parser.Advance())
		assert.Equal(t, data.dest, parser.Dest(), data.line)
		assert.Equal(t, data.comp, parser.Comp(), data.line)
		assert.Equal(t, data.jump, parser.Jump(), data.line)
	}
}

func TestParser_Symbol(t *testing.T) {
	parser := NewParser([]string{"@counter", "(END)", "D=A"})
	require.NoError(t, parser.Advance())
	assert.Equal(t, "counter", parser.Symbol())
	require.NoError(t, parser.Advance())
	assert.Equal(t, "END", parser.Symbol())
	require.NoError(t, parser.Advance())
	assert.Equal(t, "", parser.Symbol())
}

func TestParser_ResetInstructionIndex(t *testing.T) {
	parser := NewParser([]string{"", "@1", "(X)", "D=A"})
	var first []string
	for parser.HasMoreLines() {
		require.NoError(t, parser.Advance())
		first = append(first, parser.Text())
	}
	parser.ResetInstructionIndex()
	var second []string
	for parser.HasMoreLines() {
		require.NoError(t, parser.Advance())
		second = append(second, parser.Text())
	}
	assert.Equal(t, []string{"@1", "(X)", "D=A"}, first)
	assert.Equal(t, first, second)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "AddressLoad", AddressLoad.String())
	assert.Equal(t, "Computation", Computation.String())
	assert.Equal(t, "LabelDef", LabelDef.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
