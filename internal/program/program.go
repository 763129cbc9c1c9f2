// Package program represents a disassembled Uxn program.
package program

// Offset defines the content of an address in a program that can represent code or data.
type Offset struct {
	Address uint16
	Type    OffsetType

	Code    string // decoded mnemonic or two digit hex escape for raw bytes
	Comment string // annotation of a discovered vector or subroutine
}

// Program defines a Uxn program that contains code and data in ascending address order.
type Program struct {
	Name            string // name of the source that is printed in the header
	CodeBaseAddress uint16

	Offsets []Offset
}

// New creates a new program for the named source.
func New(name string, codeBaseAddress uint16) *Program {
	return &Program{
		Name:            name,
		CodeBaseAddress: codeBaseAddress,
	}
}

// Stats contains the number of offsets per type of a program.
type Stats struct {
	Instructions int
	Vectors      int
	Subroutines  int
	DataBytes    int
}

// Stats counts the offsets of the program by their type.
func (p *Program) Stats() Stats {
	var stats Stats
	for i := range p.Offsets {
		offset := &p.Offsets[i]
		switch {
		case offset.IsType(CodeOffset):
			stats.Instructions++
		case offset.IsType(DataOffset):
			stats.DataBytes++
		}
		if offset.IsType(VectorDestination) {
			stats.Vectors++
		}
		if offset.IsType(CallDestination) {
			stats.Subroutines++
		}
	}
	return stats
}
