package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/uxndisasm/internal/options"
)

func TestParseFlags_DisasmOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Disassembler
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.rom"},
			want: options.Disassembler{OffsetComments: true, VectorComments: true},
		},
		{
			name: "nooffsets flag",
			args: []string{"prog", "-nooffsets", "test.rom"},
			want: options.Disassembler{VectorComments: true},
		},
		{
			name: "nocomments flag",
			args: []string{"prog", "-nocomments", "test.rom"},
			want: options.Disassembler{OffsetComments: true},
		},
		{
			name: "all disasm flags",
			args: []string{"prog", "-nooffsets", "-nocomments", "test.rom"},
			want: options.Disassembler{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want.OffsetComments, got.OffsetComments)
			assert.Equal(t, tt.want.VectorComments, got.VectorComments)
		})
	}
}

func TestParseFlags_ProgramOptions(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-o", "out.tal", "-verify", "-nocolor", "-q", "game.rom"}
	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "game.rom", opts.Input)
	assert.Equal(t, "out.tal", opts.Output)
	assert.True(t, opts.AssembleTest)
	assert.True(t, opts.NoColor)
	assert.True(t, opts.Quiet)

	os.Args = []string{"prog", "-"}
	opts, _, err = ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "-", opts.Input)
}

func TestParseFlags_Usage(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	var usageErr *UsageError

	os.Args = []string{"prog"}
	_, _, err := ParseFlags()
	assert.True(t, errors.As(err, &usageErr))

	os.Args = []string{"prog", "game.rom", "-q"}
	_, _, err = ParseFlags()
	assert.True(t, errors.As(err, &usageErr))
	assert.ErrorContains(t, err, "-q")
}

func TestValidateOptionCombinations(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		expectError bool
	}{
		{
			name:        "no conflict",
			opts:        options.Program{},
			expectError: false,
		},
		{
			name:        "verify with output file",
			opts:        options.Program{AssembleTest: true, Output: "out.tal"},
			expectError: false,
		},
		{
			name:        "verify in batch mode",
			opts:        options.Program{AssembleTest: true, Batch: "*.rom"},
			expectError: false,
		},
		{
			name:        "verify console output",
			opts:        options.Program{AssembleTest: true},
			expectError: true,
		},
		{
			name:        "verify highlighted output",
			opts:        options.Program{AssembleTest: true, Output: "out.tal", Color: true},
			expectError: true,
		},
		{
			name:        "color and nocolor conflict",
			opts:        options.Program{Color: true, NoColor: true},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptionCombinations(tt.opts)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
