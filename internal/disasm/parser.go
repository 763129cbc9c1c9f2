package disasm

import (
	"context"
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/uxndisasm/internal/arch/uxn"
	"github.com/retroenv/uxndisasm/internal/program"
)

// lowest address + 1 that a backward literal scan may look at, the zero page is excluded.
const scanLowerBound = uxn.ZeroPageSize - 1

// distance from the cursor at which a backward literal scan starts.
const scanStartDistance = 3

// followExecutionFlow processes the vector work-list until every discovered
// entry point has been traversed.
func (dis *Disasm) followExecutionFlow(ctx context.Context) error {
	for len(dis.vectorsToParse) > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("following execution flow: %w", err)
		}

		last := len(dis.vectorsToParse) - 1
		address := dis.vectorsToParse[last]
		dis.vectorsToParse = dis.vectorsToParse[:last]

		if dis.vectorsParsed.Contains(address) {
			continue
		}
		dis.vectorsParsed.Add(address)

		if err := dis.traverse(address); err != nil {
			return err
		}
	}
	return nil
}

// traverse decodes the instruction stream starting at the given address until
// a BRK, an unconditional jump or the end of the address space is reached.
func (dis *Disasm) traverse(start uint16) error {
	if _, ok := dis.code[start]; ok {
		return fmt.Errorf("%w: tried to overwrite already disassembled code at %04x", ErrDecodeConflict, start)
	}

	for pos := int(start); pos < uxn.AddressSpace; pos++ {
		address := uint16(pos)
		if literal, ok := dis.operands[address]; ok {
			dis.logger.Warn("Instruction overlaps literal operand",
				log.Hex("address", address),
				log.Hex("literal", literal))
			return fmt.Errorf("%w: instruction at %04x overlaps operand of literal at %04x",
				ErrDecodeConflict, address, literal)
		}

		opcode := uxn.Opcode(dis.readMemory(pos))
		dis.code[address] = opcode.Mnemonic()

		if opcode.IsBreak() {
			return nil
		}

		if size := opcode.OperandSize(); size > 0 {
			if err := dis.claimOperands(address, size); err != nil {
				return err
			}
			pos += size
		}

		switch base := opcode.Base(); {
		case base == uxn.Deo && opcode.Short():
			dis.processDeviceWrite(pos)

		case base == uxn.Jsr && opcode.Short():
			dis.processSubroutineCall(pos)

		case base == uxn.Jmp:
			return nil
		}
	}
	return nil
}

// claimOperands marks the operand bytes of the literal at the given address.
func (dis *Disasm) claimOperands(address uint16, size int) error {
	for i := 1; i <= size; i++ {
		pos := int(address) + i
		if pos >= uxn.AddressSpace {
			break
		}
		operand := uint16(pos)

		if _, ok := dis.code[operand]; ok {
			dis.logger.Warn("Literal operand overlaps instruction",
				log.Hex("literal", address),
				log.Hex("address", operand))
			return fmt.Errorf("%w: operand of literal at %04x overlaps instruction at %04x",
				ErrDecodeConflict, address, operand)
		}
		if literal, ok := dis.operands[operand]; ok && literal != address {
			dis.logger.Warn("Literal operand is shared by two literals",
				log.Hex("address", operand),
				log.Hex("literal", literal),
				log.Hex("other_literal", address))
			return fmt.Errorf("%w: operand at %04x is shared by literals at %04x and %04x",
				ErrDecodeConflict, operand, literal, address)
		}
		dis.operands[operand] = address
	}
	return nil
}

// processDeviceWrite checks whether a short device write stores a vector and adds
// the vector address loaded by the nearest preceding LIT2 as new entry point.
func (dis *Disasm) processDeviceWrite(cursor int) {
	port := dis.readMemory(cursor - 1)
	if !uxn.IsVectorPort(port) {
		return
	}

	target, ok := dis.scanBackForLiteral(cursor, func(code string) bool {
		return strings.HasPrefix(code, uxn.Lit2Name)
	})
	if !ok {
		dis.logger.Debug("No literal found for vector write",
			log.Hex("address", uint16(cursor)))
		return
	}

	device := uxn.DeviceName(port)
	dis.logger.Debug("Found vector",
		log.Hex("address", target),
		log.String("device", device))
	dis.addVectorToParse(target, "Vector for device "+device, program.VectorDestination)
}

// processSubroutineCall adds the call destination loaded by the nearest preceding
// plain LIT2 as new entry point.
func (dis *Disasm) processSubroutineCall(cursor int) {
	target, ok := dis.scanBackForLiteral(cursor, func(code string) bool {
		return code == uxn.Lit2Name
	})
	if !ok {
		dis.logger.Debug("No literal found for subroutine call",
			log.Hex("address", uint16(cursor)))
		return
	}

	dis.logger.Debug("Found subroutine", log.Hex("address", target))
	dis.addVectorToParse(target, "Subroutine", program.CallDestination)
}

// scanBackForLiteral searches already decoded addresses backwards, starting shortly before
// the cursor, for a literal matching the given function and returns its 16-bit operand.
// The result depends on the decoding order as only recorded literals are found.
func (dis *Disasm) scanBackForLiteral(cursor int, match func(code string) bool) (uint16, bool) {
	for pos := cursor - scanStartDistance; pos > scanLowerBound; pos-- {
		code, ok := dis.code[uint16(pos)]
		if ok && match(code) {
			return dis.readMemoryWord(pos + 1), true
		}
	}
	return 0, false
}

// addVectorToParse adds an entry point to the work-list and annotates it.
func (dis *Disasm) addVectorToParse(address uint16, comment string, typ program.OffsetType) {
	if address < uxn.ProgramStart {
		dis.logger.Warn("Ignoring entry point in zero page",
			log.Hex("address", address),
			log.String("comment", comment))
		return
	}
	if int(address) >= len(dis.memory) {
		dis.logger.Warn("Ignoring entry point outside of the rom",
			log.Hex("address", address),
			log.String("comment", comment))
		return
	}

	dis.comments[address] = comment
	dis.destinations[address] |= typ
	dis.vectorsToParse = append(dis.vectorsToParse, address)
}
