// Package options contains the program options.
package options

// Program options of the disassembler.
type Program struct {
	Input  string // ROM file to disassemble, "-" reads from stdin
	Output string // output .tal file, printed on console if empty
	Batch  string // file mask for processing multiple files

	AssembleTest bool // verify the output by reassembling it with uxnasm
	Color        bool // force syntax highlighting
	NoColor      bool // disable syntax highlighting
	Debug        bool
	Quiet        bool
}

// Disassembler defines options to control the disassembler output.
type Disassembler struct {
	OffsetComments bool // prefix every line with its address as comment
	VectorComments bool // annotate discovered vectors and subroutines
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		OffsetComments: true,
		VectorComments: true,
	}
}
