// Package uxn provides the Uxn instruction set tables used by the disassembler.
package uxn

// Uxn memory layout constants.
//
// Uxn memory map (64KB total):
//
//	0x0000-0x00FF: Zero page, reserved and never part of the ROM
//	0x0100-0xFFFF: ROM content, execution starts at 0x0100
const (
	// ZeroPageSize is the size of the reserved zero page that precedes the ROM in memory.
	ZeroPageSize = 0x100

	// ProgramStart is the memory address where ROMs are loaded and where execution begins.
	ProgramStart = 0x0100

	// AddressSpace is the size of the 16-bit main memory.
	AddressSpace = 0x10000

	// MaxROMSize is the largest ROM that fits into memory after the zero page.
	MaxROMSize = AddressSpace - ZeroPageSize
)

// Opcode bit layout. The low 5 bits select the instruction, the upper 3 bits are mode flags.
const (
	OpcodeMask = 0x1f
	ShortMode  = 0x20 // operates on 16-bit values, mnemonic suffix "2"
	ReturnMode = 0x40 // operates on the return stack, mnemonic suffix "r"
	KeepMode   = 0x80 // does not consume its inputs, mnemonic suffix "k"
)

// Mnemonics that the decoder and the listing writer handle specially.
const (
	BrkName  = "BRK"
	LitName  = "LIT"
	Lit2Name = "LIT2"
)
