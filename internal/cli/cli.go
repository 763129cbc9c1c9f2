// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/uxndisasm/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	disasmOptions := options.NewDisassembler()
	readOptionFlags(flags, &opts)
	noOffsets, noComments := readDisasmOptionFlags(flags)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	// Apply inverse logic for offsets and comments
	disasmOptions.OffsetComments = !*noOffsets
	disasmOptions.VectorComments = !*noComments

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage message and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: uxndisasm [options] <rom to disassemble, - for stdin>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptionCombinations checks for option combinations that can not be used together
func validateOptionCombinations(opts options.Program) error {
	if opts.Color && opts.NoColor {
		return errors.New("the -color and -nocolor options can not be used together")
	}
	if opts.AssembleTest && opts.Color {
		return errors.New("highlighted output can not be verified, remove the -color option")
	}
	if opts.AssembleTest && opts.Output == "" && opts.Batch == "" {
		return errors.New("console output can not be verified, pass an output file using -o")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output .tal file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .tal file naming, for example *.rom")
	flags.BoolVar(&opts.Color, "color", false, "force syntax highlighting of the output")
	flags.BoolVar(&opts.NoColor, "nocolor", false, "disable syntax highlighting of console output")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the generated output by assembling with uxnasm and check if it matches the input")
}

func readDisasmOptionFlags(flags *flag.FlagSet) (noOffsets, noComments *bool) {
	noOffsets = flags.Bool("nooffsets", false, "do not output offsets in comments")
	noComments = flags.Bool("nocomments", false, "do not output vector and subroutine comments")
	return noOffsets, noComments
}
