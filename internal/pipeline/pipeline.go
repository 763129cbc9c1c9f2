// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/uxndisasm/internal/colorize"
	"github.com/retroenv/uxndisasm/internal/disasm"
	"github.com/retroenv/uxndisasm/internal/loader"
	"github.com/retroenv/uxndisasm/internal/options"
	"github.com/retroenv/uxndisasm/internal/program"
	"github.com/retroenv/uxndisasm/internal/verification"
)

// OutputOpener opens the destination of the listing. It is only called after the
// disassembly succeeded so that no partial output is created.
type OutputOpener func() (io.WriteCloser, error)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	open OutputOpener) (*program.Program, error) {

	rom, name, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, filepath.Base(name), opts, disasmOpts, open)
}

// ExecuteWithROM runs the disassembly pipeline with a pre-loaded ROM.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, name string, opts options.Program,
	disasmOpts options.Disassembler, open OutputOpener) (*program.Program, error) {

	dis, err := disasm.New(p.logger, name, rom, disasmOpts)
	if err != nil {
		return nil, fmt.Errorf("creating disassembler: %w", err)
	}

	p.printInfo(opts, name, rom)

	var buf bytes.Buffer
	result, err := dis.Process(ctx, &buf)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	if err := p.writeOutput(opts, buf.String(), open); err != nil {
		return nil, err
	}

	stats := result.Stats()
	p.logger.Debug("Disassembly finished",
		log.Int("instructions", stats.Instructions),
		log.Int("vectors", stats.Vectors),
		log.Int("subroutines", stats.Subroutines),
		log.Int("data_bytes", stats.DataBytes),
	)

	// Verify output (if requested)
	if opts.AssembleTest {
		if err := verification.VerifyOutput(ctx, p.logger, opts, rom); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return result, nil
}

// writeOutput writes the rendered listing to the opened output, highlighted if requested.
func (p *Pipeline) writeOutput(opts options.Program, listing string, open OutputOpener) error {
	w, err := open()
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}

	if opts.Color {
		err = colorize.Write(w, listing)
	} else {
		_, err = io.WriteString(w, listing)
	}
	if err != nil {
		_ = w.Close()
		return fmt.Errorf("writing output: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, name string, rom []byte) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing Uxn ROM",
		log.String("file", name),
		log.Int("size", len(rom)),
	)
}

// NopCloser wraps an io.Writer to add a no-op Close method.
func NopCloser(w io.Writer) io.WriteCloser {
	return &nopCloser{w}
}

// nopCloser wraps an io.Writer to add a no-op Close method.
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
