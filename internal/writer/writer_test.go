package writer

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/uxndisasm/internal/program"
)

func testProgram() *program.Program {
	app := program.New("test.rom", 0x0100)
	app.Offsets = []program.Offset{
		{Address: 0x0100, Type: program.CodeOffset, Code: "LIT2"},
		{Address: 0x0101, Type: program.DataOffset | program.OperandOffset, Code: "01"},
		{Address: 0x0102, Type: program.DataOffset | program.OperandOffset, Code: "08"},
		{Address: 0x0103, Type: program.CodeOffset, Code: "LIT"},
		{Address: 0x0104, Type: program.DataOffset | program.OperandOffset, Code: "20"},
		{Address: 0x0105, Type: program.CodeOffset, Code: "DEO2"},
		{Address: 0x0106, Type: program.CodeOffset, Code: "BRK"},
		{Address: 0x0107, Type: program.DataOffset, Code: "ff"},
		{Address: 0x0108, Type: program.CodeOffset | program.VectorDestination, Code: "BRK",
			Comment: "Vector for device screen"},
	}
	return app
}

func TestWriter_Write(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		expected string
	}{
		{
			name:    "default",
			options: Options{OffsetComments: true, VectorComments: true},
			expected: `( Disassembly of test.rom )
|0100
( 0100 ) #0108
( 0103 ) #20
( 0105 ) DEO2
( 0106 ) BRK
( 0107 ) ff

( Vector for device screen )
( 0108 ) BRK
`,
		},
		{
			name:    "no offsets",
			options: Options{VectorComments: true},
			expected: `( Disassembly of test.rom )
|0100
#0108
#20
DEO2
BRK
ff

( Vector for device screen )
BRK
`,
		},
		{
			name:    "no comments",
			options: Options{OffsetComments: true},
			expected: `( Disassembly of test.rom )
|0100
( 0100 ) #0108
( 0103 ) #20
( 0105 ) DEO2
( 0106 ) BRK
( 0107 ) ff
( 0108 ) BRK
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(testProgram(), &buf, tt.options)
			assert.NoError(t, w.Write())
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriter_MergeLiteralMissingOperand(t *testing.T) {
	app := program.New("test.rom", 0x0100)
	app.Offsets = []program.Offset{
		{Address: 0x0100, Type: program.CodeOffset, Code: "LIT2"},
		{Address: 0x0101, Type: program.DataOffset | program.OperandOffset, Code: "01"},
	}

	var buf bytes.Buffer
	w := New(app, &buf, Options{OffsetComments: true})
	assert.NoError(t, w.Write())
	assert.Equal(t, "( Disassembly of test.rom )\n|0100\n( 0100 ) LIT2\n( 0101 ) 01\n", buf.String())
}

func TestWriter_ReturnModeLiteralIsNotMerged(t *testing.T) {
	app := program.New("test.rom", 0x0100)
	app.Offsets = []program.Offset{
		{Address: 0x0100, Type: program.CodeOffset, Code: "LITr"},
		{Address: 0x0101, Type: program.DataOffset | program.OperandOffset, Code: "7f"},
	}

	var buf bytes.Buffer
	w := New(app, &buf, Options{OffsetComments: true})
	assert.NoError(t, w.Write())
	assert.Equal(t, "( Disassembly of test.rom )\n|0100\n( 0100 ) LITr\n( 0101 ) 7f\n", buf.String())
}
