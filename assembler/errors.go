package assembler

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInstruction means a line is neither @value, (label) nor dest=comp;jump.
	ErrMalformedInstruction = errors.New("malformed instruction")
	ErrUnknownMnemonic      = errors.New("unknown mnemonic")
	// ErrUndefinedSymbol should never surface from Assemble: every symbolic
	// target is bound as a label or a variable before it is looked up.
	ErrUndefinedSymbol    = errors.New("undefined symbol")
	ErrAddressRange       = errors.New("address out of range")
	ErrNoMoreInstructions = errors.New("no more instructions")
)

// SyntaxError ties a failure to the source line it was found on.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax err at line %d: %v near %q", e.Line, e.Err, e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func makeSyntaxErr(line int, text string, err error) error {
	return &SyntaxError{Line: line, Text: text, Err: err}
}
