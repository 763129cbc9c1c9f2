package uxn

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOpcode_Mnemonic(t *testing.T) {
	tests := []struct {
		opcode   byte
		expected string
	}{
		{0x00, "BRK"},
		{0x01, "INC"},
		{0x80, "LIT"},
		{0xa0, "LIT2"},
		{0xc0, "LITr"},
		{0xe0, "LIT2r"},
		{0x20, "LIT2"},
		{0x40, "LITr"},
		{0x37, "DEO2"},
		{0xb7, "DEO2k"},
		{0x2e, "JSR2"},
		{0x0c, "JMP"},
		{0x6c, "JMP2r"},
		{0xaf, "STH2k"},
		{0xff, "SFT2kr"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Opcode(tt.opcode).Mnemonic())
		})
	}
}

func TestOpcode_OperandSize(t *testing.T) {
	tests := []struct {
		name     string
		opcode   byte
		expected int
	}{
		{"brk", 0x00, 0},
		{"lit", 0x80, 1},
		{"lit short", 0xa0, 2},
		{"lit return", 0xc0, 1},
		{"lit short return", 0xe0, 2},
		{"short mode without keep", 0x20, 2},
		{"jmp", 0x0c, 0},
		{"deo2", 0x37, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Opcode(tt.opcode).OperandSize())
		})
	}
}

func TestOpcode_Flags(t *testing.T) {
	op := Opcode(0xef)
	assert.Equal(t, byte(0x0f), op.Base())
	assert.True(t, op.Short())
	assert.True(t, op.Return())
	assert.True(t, op.Keep())
	assert.False(t, op.IsLiteral())
	assert.False(t, op.IsBreak())

	assert.True(t, Opcode(0).IsBreak())
	assert.False(t, Opcode(0).IsLiteral())
}

func TestInstructionName(t *testing.T) {
	for b := range 32 {
		name := InstructionName(byte(b))
		assert.Equal(t, 3, len(name))
		assert.Equal(t, name, InstructionName(byte(b)|ShortMode|ReturnMode|KeepMode))
	}
	assert.Equal(t, "DEO", InstructionName(Deo))
	assert.Equal(t, "JSR", InstructionName(Jsr))
	assert.Equal(t, "JMP", InstructionName(Jmp))
}
