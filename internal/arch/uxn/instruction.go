package uxn

// Base instruction opcodes that the disassembler handles specially.
const (
	Lit = 0x00
	Jmp = 0x0c
	Jsr = 0x0e
	Deo = 0x17
)

// instructionNames maps every 5-bit base opcode to its mnemonic.
var instructionNames = [32]string{
	"LIT", "INC", "POP", "DUP", "NIP", "SWP", "OVR", "ROT",
	"EQU", "NEQ", "GTH", "LTH", "JMP", "JCN", "JSR", "STH",
	"LDZ", "STZ", "LDR", "STR", "LDA", "STA", "DEI", "DEO",
	"ADD", "SUB", "MUL", "DIV", "AND", "ORA", "EOR", "SFT",
}

// InstructionName returns the base mnemonic of the instruction selected by the low 5 bits of b.
// Mode flags in the upper bits are ignored.
func InstructionName(b byte) string {
	return instructionNames[b&OpcodeMask]
}
