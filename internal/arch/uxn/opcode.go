package uxn

// Opcode is a single Uxn instruction byte.
type Opcode byte

// Base returns the base instruction without mode flags.
func (o Opcode) Base() byte {
	return byte(o) & OpcodeMask
}

// IsBreak returns whether the opcode is the BRK instruction that ends a vector.
func (o Opcode) IsBreak() bool {
	return o == 0
}

// IsLiteral returns whether the opcode is a LIT instruction that carries inline operand bytes.
func (o Opcode) IsLiteral() bool {
	return o != 0 && o.Base() == Lit
}

// Short returns whether the short mode flag is set.
func (o Opcode) Short() bool {
	return byte(o)&ShortMode != 0
}

// Return returns whether the return mode flag is set.
func (o Opcode) Return() bool {
	return byte(o)&ReturnMode != 0
}

// Keep returns whether the keep mode flag is set.
func (o Opcode) Keep() bool {
	return byte(o)&KeepMode != 0
}

// OperandSize returns the number of inline operand bytes that follow the opcode.
func (o Opcode) OperandSize() int {
	switch {
	case !o.IsLiteral():
		return 0
	case o.Short():
		return 2
	default:
		return 1
	}
}

// Mnemonic returns the Uxntal mnemonic including the mode suffixes.
// The keep suffix is omitted for LIT as it never consumes a stack value.
func (o Opcode) Mnemonic() string {
	if o.IsBreak() {
		return BrkName
	}

	name := InstructionName(byte(o))
	if o.Short() {
		name += "2"
	}
	if o.Keep() && o.Base() != Lit {
		name += "k"
	}
	if o.Return() {
		name += "r"
	}
	return name
}
