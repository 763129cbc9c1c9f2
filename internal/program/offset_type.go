package program

// OffsetType defines the type of a program offset.
type OffsetType uint8

// offset types.
const (
	UnknownOffset     OffsetType = 0
	CodeOffset        OffsetType = 1 << iota // decoded instruction
	DataOffset                               // raw byte that was never reached by traversal
	OperandOffset                            // inline operand byte of a literal instruction
	VectorDestination                        // entry point stored to a device vector
	CallDestination                          // destination of a subroutine call
)

// IsType returns whether the offset is of given type.
func (o *Offset) IsType(typ OffsetType) bool {
	return o.Type&typ != 0
}

// SetType sets the type of the offset.
func (o *Offset) SetType(typ OffsetType) {
	o.Type |= typ
}
