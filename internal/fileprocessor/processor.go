// Package fileprocessor handles file processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/uxndisasm/internal/colorize"
	"github.com/retroenv/uxndisasm/internal/options"
	"github.com/retroenv/uxndisasm/internal/pipeline"
)

// OutputExtension is the file extension of generated listings.
const OutputExtension = ".tal"

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	opts.Color = useColor(opts, os.Stdout)

	pipe := pipeline.New(logger)
	if _, err := pipe.Execute(ctx, opts, disasmOptions, outputOpener(opts)); err != nil {
		return fmt.Errorf("processing file %s: %w", opts.Input, err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + OutputExtension
}

// useColor returns whether the listing should be highlighted. Highlighting is
// enabled automatically for console output on a terminal.
func useColor(opts options.Program, stdout io.Writer) bool {
	switch {
	case opts.NoColor:
		return false
	case opts.Color:
		return true
	default:
		return opts.Output == "" && colorize.IsTerminal(stdout)
	}
}

func outputOpener(opts options.Program) pipeline.OutputOpener {
	return func() (io.WriteCloser, error) {
		if opts.Output == "" {
			return pipeline.NopCloser(os.Stdout), nil
		}

		file, err := os.Create(opts.Output)
		if err != nil {
			return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
		}
		return file, nil
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := buildinfo.Version(version, commit, date)
	logger.Info("uxndisasm", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
