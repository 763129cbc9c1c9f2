package verification

import (
	"context"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/uxndisasm/internal/options"
)

func TestVerifyOutput_ConsoleOutput(t *testing.T) {
	logger := log.NewTestLogger(t)
	err := VerifyOutput(context.Background(), logger, options.Program{}, []byte{0x00})
	assert.ErrorContains(t, err, "can not verify console output")
}

func TestTrimTrailingZeros(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{"no zeros", []byte{0x80, 0x01}, []byte{0x80, 0x01}},
		{"trailing zeros", []byte{0x80, 0x00, 0x00}, []byte{0x80}},
		{"inner zeros kept", []byte{0x00, 0x01, 0x00}, []byte{0x00, 0x01}},
		{"only zeros", []byte{0x00, 0x00}, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, trimTrailingZeros(tt.input))
		})
	}
}

func TestCheckBufferEqual(t *testing.T) {
	logger := log.NewTestLogger(t)

	assert.NoError(t, checkBufferEqual(logger, []byte{1, 2, 3}, []byte{1, 2, 3}))
	assert.ErrorContains(t, checkBufferEqual(logger, []byte{1, 2}, []byte{1, 2, 3}), "mismatched lengths")
}

func TestCheckBufferEqual_Mismatch(t *testing.T) {
	// mismatches are logged at error level, the test logger would fail the test on them
	logger := log.NewWithConfig(log.DefaultConfig())

	err := checkBufferEqual(logger, []byte{1, 2, 3}, []byte{1, 0, 0})
	assert.ErrorContains(t, err, "2 offset mismatches")

	input := make([]byte, 32)
	output := make([]byte, 32)
	for i := range output {
		output[i] = 0xff
	}
	err = checkBufferEqual(logger, input, output)
	assert.ErrorContains(t, err, "32 offset mismatches")
}
