package assembler

import (
	"fmt"
	"sort"
	"strconv"
)

// FirstVariableAddress is where the second pass starts placing variables.
const FirstVariableAddress = 16

// SymbolTable maps labels, variables and the predefined registers to addresses.
type SymbolTable struct {
	addresses map[string]int
}

// SymbolEntry is one name/address pair of a SymbolTable snapshot.
type SymbolEntry struct {
	Name    string
	Address int
}

var predefinedSymbols = func() map[string]int {
	symbols := map[string]int{
		"SP":     0,
		"LCL":    1,
		"ARG":    2,
		"THIS":   3,
		"THAT":   4,
		"SCREEN": 16384,
		"KBD":    24576,
	}
	for i := 0; i < 16; i++ {
		symbols["R"+strconv.Itoa(i)] = i
	}
	return symbols
}()

// IsPredefined reports whether name is one of the symbols every table starts with.
func IsPredefined(name string) bool {
	_, exist := predefinedSymbols[name]
	return exist
}

// NewSymbolTable returns a table holding the predefined Hack symbols.
func NewSymbolTable() *SymbolTable {
	table := &SymbolTable{addresses: make(map[string]int, len(predefinedSymbols))}
	for name, address := range predefinedSymbols {
		table.addresses[name] = address
	}
	return table
}

// AddEntry binds name to address, replacing any previous binding.
func (table *SymbolTable) AddEntry(name string, address int) {
	table.addresses[name] = address
}

func (table *SymbolTable) Contains(name string) bool {
	_, exist := table.addresses[name]
	return exist
}

// GetAddress returns ErrUndefinedSymbol for names never added. Callers are
// expected to check Contains first.
func (table *SymbolTable) GetAddress(name string) (int, error) {
	address, exist := table.addresses[name]
	if !exist {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedSymbol, name)
	}
	return address, nil
}

func (table *SymbolTable) Len() int {
	return len(table.addresses)
}

// Entries returns every binding ordered by address, then by name.
func (table *SymbolTable) Entries() []SymbolEntry {
	entries := make([]SymbolEntry, 0, len(table.addresses))
	for name, address := range table.addresses {
		entries = append(entries, SymbolEntry{Name: name, Address: address})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Address != entries[j].Address {
			return entries[i].Address < entries[j].Address
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
