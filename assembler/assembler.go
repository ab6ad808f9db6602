package assembler

import (
	"fmt"
	"strconv"

	"github.com/golang/glog"

	"hackasm/util"
)

// A two-pass assembler for the hack assemble language. The first pass only
// records where every (label) points to; the second pass resolves each @target
// and encodes every instruction into the 16 bits word understood by the hack CPU.
//
// An @target has several forms:
// * @10, a decimal value put directly into the A register.
// * @LOOP, the instruction address of a label, which can be used before it is declared.
// * @R0-@R15, SP, LCL, ARG, THIS, THAT, SCREEN and KBD, the predefined symbols.
// * @i, a variable. The first reference allocates the next free data address from 16.

// Word is one emitted machine instruction and the source line it came from.
type Word struct {
	Code   string
	Line   int
	Source string
}

type Assembler struct {
	symbols             *SymbolTable
	nextVariableAddress int
}

func CreateAssembler() *Assembler {
	return &Assembler{
		symbols:             NewSymbolTable(),
		nextVariableAddress: FirstVariableAddress,
	}
}

// Symbols returns the table built by the last Assemble call.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// Assemble translates a whole program. Each call starts from a fresh symbol
// table, so assembling the same lines twice gives the same words. On error no
// words are returned.
func (asm *Assembler) Assemble(lines []string) ([]Word, error) {
	asm.symbols = NewSymbolTable()
	asm.nextVariableAddress = FirstVariableAddress
	parser := NewParser(lines)
	if err := asm.firstPass(parser); err != nil {
		return nil, err
	}
	parser.ResetInstructionIndex()
	return asm.secondPass(parser)
}

// firstPass binds each label to the index of the instruction following it.
func (asm *Assembler) firstPass(parser *Parser) error {
	instructionCounter := 0
	labels := map[string]int{}
	for parser.HasMoreLines() {
		if err := parser.Advance(); err != nil {
			return err
		}
		kind, err := parser.InstructionType()
		if err != nil {
			return err
		}
		switch kind {
		case AddressLoad, Computation:
			instructionCounter++
		case LabelDef:
			label := parser.Symbol()
			if line, exist := labels[label]; exist {
				glog.Warningf("line %d: label %s already declared at line %d, last declaration wins",
					parser.LineNumber(), label, line)
			}
			if IsPredefined(label) {
				glog.Warningf("line %d: label %s shadows the predefined symbol", parser.LineNumber(), label)
			}
			labels[label] = parser.LineNumber()
			asm.symbols.AddEntry(label, instructionCounter)
			if glog.V(2) {
				glog.Infof("label %s -> %d", label, instructionCounter)
			}
		}
	}
	return nil
}

func (asm *Assembler) secondPass(parser *Parser) ([]Word, error) {
	var words []Word
	for parser.HasMoreLines() {
		if err := parser.Advance(); err != nil {
			return nil, err
		}
		kind, err := parser.InstructionType()
		if err != nil {
			return nil, err
		}
		var code string
		switch kind {
		case AddressLoad:
			code, err = asm.transformAddressLoad(parser.Symbol())
		case Computation:
			code, err = GenerateComputationInstruction(parser.Comp(), parser.Dest(), parser.Jump())
		case LabelDef:
			continue
		}
		if err != nil {
			return nil, makeSyntaxErr(parser.LineNumber(), parser.Text(), err)
		}
		words = append(words, Word{Code: code, Line: parser.LineNumber(), Source: parser.Text()})
	}
	return words, nil
}

// transformAddressLoad resolves an @target to its word. Unknown symbols become
// variables.
func (asm *Assembler) transformAddressLoad(symbol string) (string, error) {
	if util.IsSignedDigits(symbol) {
		value, err := strconv.Atoi(symbol)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrAddressRange, symbol)
		}
		return GenerateAddressInstruction(value)
	}
	if !asm.symbols.Contains(symbol) {
		asm.symbols.AddEntry(symbol, asm.nextVariableAddress)
		if glog.V(2) {
			glog.Infof("variable %s -> %d", symbol, asm.nextVariableAddress)
		}
		asm.nextVariableAddress++
	}
	address, err := asm.symbols.GetAddress(symbol)
	if err != nil {
		return "", err
	}
	return GenerateAddressInstruction(address)
}
