// Package writer implements the Uxntal listing output.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/uxndisasm/internal/arch/uxn"
	"github.com/retroenv/uxndisasm/internal/program"
)

// Writer implements the Uxntal listing output.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	OffsetComments bool // prefix every line with the address as comment
	VectorComments bool // output comments of discovered vectors and subroutines
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes the header and all offsets of the program in address order.
func (w Writer) Write() error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	offsets := w.app.Offsets
	for i := 0; i < len(offsets); i++ {
		offset := offsets[i]

		if err := w.writeComment(offset); err != nil {
			return err
		}

		code, consumed := w.mergeLiteral(i)
		if err := w.writeCodeLine(offset.Address, code); err != nil {
			return err
		}
		i += consumed
	}
	return nil
}

func (w Writer) writeHeader() error {
	if _, err := fmt.Fprintf(w.writer, "( Disassembly of %s )\n", w.app.Name); err != nil {
		return fmt.Errorf("writing header comment: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "|%04x\n", w.app.CodeBaseAddress); err != nil {
		return fmt.Errorf("writing origin directive: %w", err)
	}
	return nil
}

func (w Writer) writeComment(offset program.Offset) error {
	if offset.Comment == "" || !w.options.VectorComments {
		return nil
	}
	if _, err := fmt.Fprintf(w.writer, "\n( %s )\n", offset.Comment); err != nil {
		return fmt.Errorf("writing comment: %w", err)
	}
	return nil
}

func (w Writer) writeCodeLine(address uint16, code string) error {
	var err error
	if w.options.OffsetComments {
		_, err = fmt.Fprintf(w.writer, "( %04x ) %s\n", address, code)
	} else {
		_, err = fmt.Fprintf(w.writer, "%s\n", code)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// mergeLiteral combines a LIT or LIT2 instruction at the given index with its operand bytes
// into a single #value token. It returns the token and the number of consumed operand offsets.
// A literal is output unmerged if its operand bytes are not following it.
func (w Writer) mergeLiteral(index int) (string, int) {
	offsets := w.app.Offsets
	offset := offsets[index]

	var size int
	switch offset.Code {
	case uxn.LitName:
		size = 1
	case uxn.Lit2Name:
		size = 2
	default:
		return offset.Code, 0
	}

	buf := &strings.Builder{}
	buf.WriteByte('#')
	for i := 1; i <= size; i++ {
		next := index + i
		if next >= len(offsets) || int(offsets[next].Address) != int(offset.Address)+i {
			return offset.Code, 0
		}
		buf.WriteString(offsets[next].Code)
	}
	return buf.String(), size
}
