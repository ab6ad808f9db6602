package assembler

import (
	"fmt"
	"strings"
)

// Kind is the syntactic shape of one instruction line.
type Kind int

const (
	// AddressLoad is @value.
	AddressLoad Kind = iota
	// Computation is [dest=]comp[;jump].
	Computation
	// LabelDef is (name). It declares a jump target and emits no word.
	LabelDef
)

func (kind Kind) String() string {
	switch kind {
	case AddressLoad:
		return "AddressLoad"
	case Computation:
		return "Computation"
	case LabelDef:
		return "LabelDef"
	default:
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
}

// Parser walks a fully buffered program one instruction at a time. Comment and
// blank lines are never reported; ResetInstructionIndex rewinds the cursor so
// the same lines can be scanned again.
type Parser struct {
	lines   []string
	current int
	text    string
}

func NewParser(lines []string) *Parser {
	return &Parser{lines: lines, current: -1}
}

// trimLine removes surrounding space and a comment. A comment starts with //
// at the beginning of the line or after a space, so (a//b) is left alone.
func trimLine(line string) string {
	line = strings.TrimSpace(line)
	for from := 0; from < len(line); {
		index := strings.Index(line[from:], "//")
		if index == -1 {
			break
		}
		index += from
		if index == 0 || line[index-1] == ' ' || line[index-1] == '\t' {
			return strings.TrimSpace(line[:index])
		}
		from = index + 1
	}
	return line
}

// nextInstruction returns the index of the first substantive line after the
// cursor, or -1 if only comments and blanks remain.
func (p *Parser) nextInstruction() int {
	for i := p.current + 1; i < len(p.lines); i++ {
		if trimLine(p.lines[i]) != "" {
			return i
		}
	}
	return -1
}

// HasMoreLines reports whether an instruction is left, ignoring trailing
// comments and blank lines.
func (p *Parser) HasMoreLines() bool {
	return p.nextInstruction() != -1
}

// Advance moves to the next instruction. It returns ErrNoMoreInstructions and
// parks the cursor past the last line when nothing but comments and blank
// lines is left.
func (p *Parser) Advance() error {
	next := p.nextInstruction()
	if next == -1 {
		p.current = len(p.lines)
		p.text = ""
		return ErrNoMoreInstructions
	}
	p.current = next
	p.text = trimLine(p.lines[next])
	return nil
}

// ResetInstructionIndex rewinds to before the first line.
func (p *Parser) ResetInstructionIndex() {
	p.current = -1
	p.text = ""
}

// LineNumber is the 1-based source line of the current instruction.
func (p *Parser) LineNumber() int {
	return p.current + 1
}

// Text is the current instruction with space and comments removed.
func (p *Parser) Text() string {
	return p.text
}

// InstructionType classifies the current line. It returns a *SyntaxError
// wrapping ErrMalformedInstruction for a line of no known shape, and
// ErrNoMoreInstructions when Advance has not landed on an instruction.
func (p *Parser) InstructionType() (Kind, error) {
	if p.current < 0 || p.current >= len(p.lines) {
		return 0, ErrNoMoreInstructions
	}
	line := p.text
	switch {
	case strings.HasPrefix(line, "@"):
		if len(line) == 1 {
			return 0, makeSyntaxErr(p.LineNumber(), line, fmt.Errorf("%w: empty address", ErrMalformedInstruction))
		}
		return AddressLoad, nil
	case strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")"):
		if len(line) == 2 {
			return 0, makeSyntaxErr(p.LineNumber(), line, fmt.Errorf("%w: empty label", ErrMalformedInstruction))
		}
		return LabelDef, nil
	case strings.Count(line, "=") == 1 || strings.Count(line, ";") == 1:
		return Computation, nil
	}
	return 0, makeSyntaxErr(p.LineNumber(), line, ErrMalformedInstruction)
}

// Symbol is the target of an AddressLoad or the name of a LabelDef. It is
// empty for other instructions.
func (p *Parser) Symbol() string {
	kind, err := p.InstructionType()
	if err != nil {
		return ""
	}
	switch kind {
	case AddressLoad:
		return p.text[1:]
	case LabelDef:
		return p.text[1 : len(p.text)-1]
	}
	return ""
}

// computation splits dest=comp;jump. Missing dest or jump come back as "null".
func (p *Parser) computation() (dest, comp, jump string) {
	dest, jump = nullMnemonic, nullMnemonic
	rest := p.text
	if left, right, found := strings.Cut(rest, "="); found {
		dest, rest = left, right
	}
	if left, right, found := strings.Cut(rest, ";"); found {
		rest, jump = left, right
	}
	return dest, rest, jump
}

// Dest, Comp and Jump are the fields of a Computation.
func (p *Parser) Dest() string {
	dest, _, _ := p.computation()
	return dest
}

func (p *Parser) Comp() string {
	_, comp, _ := p.computation()
	return comp
}

func (p *Parser) Jump() string {
	_, _, jump := p.computation()
	return jump
}
