// Package disasm implements the Uxn ROM disassembler.
package disasm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/uxndisasm/internal/arch/uxn"
	"github.com/retroenv/uxndisasm/internal/options"
	"github.com/retroenv/uxndisasm/internal/program"
	"github.com/retroenv/uxndisasm/internal/writer"
)

// ErrDecodeConflict is returned when the same bytes would be decoded with two different framings.
var ErrDecodeConflict = errors.New("decode conflict")

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	name   string
	memory []byte // zero page followed by the ROM content

	code         map[uint16]string             // decoded token of every address
	comments     map[uint16]string             // annotations of discovered entry points
	destinations map[uint16]program.OffsetType // kind of discovered entry points
	operands     map[uint16]uint16             // literal operand byte to address of its literal
	filled       set.Set[uint16]               // addresses that were never reached by traversal

	vectorsToParse []uint16
	vectorsParsed  set.Set[uint16]
}

// New creates a new disassembler for the given ROM content. The name is used for the
// listing header only.
func New(logger *log.Logger, name string, rom []byte, options options.Disassembler) (*Disasm, error) {
	if len(rom) > uxn.MaxROMSize {
		return nil, fmt.Errorf("rom size %d exceeds maximum of %d bytes", len(rom), uxn.MaxROMSize)
	}

	memory := make([]byte, uxn.ZeroPageSize+len(rom))
	copy(memory[uxn.ZeroPageSize:], rom)

	dis := &Disasm{
		logger:         logger,
		options:        options,
		name:           name,
		memory:         memory,
		code:           map[uint16]string{},
		comments:       map[uint16]string{},
		destinations:   map[uint16]program.OffsetType{},
		operands:       map[uint16]uint16{},
		filled:         set.New[uint16](),
		vectorsToParse: []uint16{uxn.ProgramStart},
		vectorsParsed:  set.New[uint16](),
	}
	return dis, nil
}

// Process disassembles the ROM and writes the listing to the writer.
// Nothing is written if the disassembly fails.
func (dis *Disasm) Process(ctx context.Context, mainWriter io.Writer) (*program.Program, error) {
	if err := dis.followExecutionFlow(ctx); err != nil {
		return nil, err
	}

	dis.fillUnreached()
	app := dis.convertToProgram()

	fileWriter := writer.New(app, mainWriter, writer.Options{
		OffsetComments: dis.options.OffsetComments,
		VectorComments: dis.options.VectorComments,
	})
	if err := fileWriter.Write(); err != nil {
		return nil, fmt.Errorf("writing app to file: %w", err)
	}
	return app, nil
}

// readMemory returns the byte at the given address, memory outside of the loaded image reads as 0.
func (dis *Disasm) readMemory(address int) byte {
	if address < 0 || address >= len(dis.memory) {
		return 0
	}
	return dis.memory[address]
}

// readMemoryWord reads a big endian word from memory.
func (dis *Disasm) readMemoryWord(address int) uint16 {
	high := uint16(dis.readMemory(address))
	low := uint16(dis.readMemory(address + 1))
	return high<<8 | low
}

// fillUnreached adds a raw byte escape for every address that was not decoded by traversal.
// This could hide reachable code that none of the heuristics discovered.
func (dis *Disasm) fillUnreached() {
	for address := uxn.ProgramStart; address < len(dis.memory); address++ {
		dis.fillAddress(uint16(address))
	}

	// operands of a literal at the end of the image extend past it
	for address := range dis.operands {
		dis.fillAddress(address)
	}
}

func (dis *Disasm) fillAddress(address uint16) {
	if _, ok := dis.code[address]; ok {
		return
	}
	dis.code[address] = fmt.Sprintf("%02x", dis.readMemory(int(address)))
	dis.filled.Add(address)
}

// converts the internal disassembly representation to a program type that will be used by
// the writer to generate the listing.
func (dis *Disasm) convertToProgram() *program.Program {
	app := program.New(dis.name, uxn.ProgramStart)

	addresses := slices.Sorted(maps.Keys(dis.code))
	app.Offsets = make([]program.Offset, 0, len(addresses))

	for _, address := range addresses {
		offset := program.Offset{
			Address: address,
			Code:    dis.code[address],
			Comment: dis.comments[address],
		}

		if dis.filled.Contains(address) {
			offset.SetType(program.DataOffset)
		} else {
			offset.SetType(program.CodeOffset)
		}
		if _, ok := dis.operands[address]; ok {
			offset.SetType(program.OperandOffset)
		}
		offset.SetType(dis.destinations[address])

		app.Offsets = append(app.Offsets, offset)
	}

	return app
}
