// Package uxn provides Uxn instruction set support for the disassembler.
//
// # Uxn Overview
//
// Uxn is a small 8-bit stack machine with a 16-bit address space, two stacks and 256 device
// ports. Every instruction is a single byte; only the LIT family carries inline operand bytes.
//
// # Opcode Layout
//
// An opcode byte is split into a base instruction and three mode flags:
//
//	bit 7   keep mode   (k) inputs are not consumed
//	bit 6   return mode (r) operate on the return stack
//	bit 5   short mode  (2) operate on 16-bit values
//	bit 0-4 base instruction, see InstructionName
//
// The byte 0x00 is BRK which ends the execution of a vector. Base opcode 0 with any flag set is
// LIT, followed by one operand byte or two in short mode.
//
// # Devices
//
// Device ports are addressed by a single byte. The high nibble selects the device and the low
// nibble the register inside it; register 0 holds the vector that the device calls on events.
// DeviceName and IsVectorPort decode a port byte.
//
// # Memory Layout
//
// ROMs are loaded at ProgramStart (0x0100). The zero page below it is never part of the ROM.
package uxn
