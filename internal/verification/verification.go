// Package verification verifies that the generated output file recreates the input.
package verification

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/uxndisasm/internal/assembler/uxnasm"
	"github.com/retroenv/uxndisasm/internal/options"
)

const debugOutputFile = "debug.rom"

// VerifyOutput verifies that the output file assembles to the exact input ROM.
// Trailing zero bytes are ignored as the assembler does not emit them.
func VerifyOutput(ctx context.Context, logger *log.Logger, options options.Program, rom []byte) error {
	if options.Output == "" {
		return errors.New("can not verify console output")
	}

	var (
		err        error
		outputFile *os.File
	)

	if options.Debug {
		outputFile, err = os.Create(debugOutputFile)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", debugOutputFile, err)
		}
	} else {
		outputFile, err = os.CreateTemp("", "uxndisasm.*.rom")
		if err != nil {
			return fmt.Errorf("creating temp file: %w", err)
		}
		defer func() {
			_ = os.Remove(outputFile.Name())
		}()
	}
	_ = outputFile.Close()

	if err := uxnasm.AssembleUsingExternalApp(ctx, options.Output, outputFile.Name()); err != nil {
		return fmt.Errorf("reassembling .rom file using %s failed: %w", uxnasm.AssemblerName, err)
	}

	destination, err := os.ReadFile(outputFile.Name())
	if err != nil {
		return fmt.Errorf("reading destination file for comparison: %w", err)
	}

	if err := checkBufferEqual(logger, trimTrailingZeros(rom), trimTrailingZeros(destination)); err != nil {
		return fmt.Errorf("rom mismatch: %w", err)
	}
	return nil
}

func trimTrailingZeros(data []byte) []byte {
	return bytes.TrimRight(data, "\x00")
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
