package assembler

import "fmt"

// MaxAddress is the largest value an A instruction can carry.
const MaxAddress = 1<<16 - 1

const nullMnemonic = "null"

var compCodes = map[string]string{
	"0":   "0101010",
	"1":   "0111111",
	"-1":  "0111010",
	"D":   "0001100",
	"A":   "0110000",
	"!D":  "0001101",
	"!A":  "0110001",
	"-D":  "0001111",
	"-A":  "0110011",
	"D+1": "0011111",
	"A+1": "0110111",
	"D-1": "0001110",
	"A-1": "0110010",
	"D+A": "0000010",
	"D-A": "0010011",
	"A-D": "0000111",
	"D&A": "0000000",
	"D|A": "0010101",
	"M":   "1110000",
	"!M":  "1110001",
	"-M":  "1110011",
	"M+1": "1110111",
	"M-1": "1110010",
	"D+M": "1000010",
	"D-M": "1010011",
	"M-D": "1000111",
	"D&M": "1000000",
	"D|M": "1010101",
}

var destCodes = map[string]string{
	nullMnemonic: "000",
	"M":          "001",
	"D":          "010",
	"MD":         "011",
	"A":          "100",
	"AM":         "101",
	"AD":         "110",
	"ADM":        "111",
}

var jumpCodes = map[string]string{
	nullMnemonic: "000",
	"JGT":        "001",
	"JEQ":        "010",
	"JGE":        "011",
	"JLT":        "100",
	"JNE":        "101",
	"JLE":        "110",
	"JMP":        "111",
}

// GenerateAddressInstruction renders address as a 16 digit binary word.
func GenerateAddressInstruction(address int) (string, error) {
	if address < 0 || address > MaxAddress {
		return "", fmt.Errorf("%w: %d does not fit in 16 bits", ErrAddressRange, address)
	}
	code := [16]byte{}
	for j := 15; j >= 0; j-- {
		code[j] = byte(address&1) + '0'
		address >>= 1
	}
	return string(code[:]), nil
}

// GenerateComputationInstruction encodes a C instruction as 111 + comp + dest + jump.
// Absent dest and jump fields are passed as the mnemonic "null".
func GenerateComputationInstruction(comp, dest, jump string) (string, error) {
	compCode, exist := compCodes[comp]
	if !exist {
		return "", fmt.Errorf("%w: comp %q", ErrUnknownMnemonic, comp)
	}
	destCode, exist := destCodes[dest]
	if !exist {
		return "", fmt.Errorf("%w: dest %q", ErrUnknownMnemonic, dest)
	}
	jumpCode, exist := jumpCodes[jump]
	if !exist {
		return "", fmt.Errorf("%w: jump %q", ErrUnknownMnemonic, jump)
	}
	return "111" + compCode + destCode + jumpCode, nil
}
