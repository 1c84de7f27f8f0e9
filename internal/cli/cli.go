// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/retroenv/udisasm/internal/arch"
	"github.com/retroenv/udisasm/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(osArgs[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "" && !opts.Schema && !opts.Export) {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	disasmOptions := createDisasmOptions(opts)
	if err := validateOptionCombinations(opts, disasmOptions); err != nil {
		return opts, options.Disassembler{}, err
	}

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

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: udisasm [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.CPU = strings.ToLower(strings.TrimSpace(opts.CPU))
	if opts.CPU != "" {
		if _, err := arch.Lookup(opts.CPU); err != nil {
			return err
		}
	}

	// the address space of all supported CPUs is 16 bit
	opts.Address &= 0xffff

	if opts.Offset < 0 {
		return fmt.Errorf("invalid offset %d", opts.Offset)
	}
	if opts.Length < 0 {
		return fmt.Errorf("invalid length %d", opts.Length)
	}
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	return nil
}

// createDisasmOptions creates disassembler options based on program options
func createDisasmOptions(opts options.Program) options.Disassembler {
	disasmOptions := options.NewDisassembler(opts.CPU)
	disasmOptions.Undocumented = opts.Undocumented
	disasmOptions.NoList = opts.NoList
	disasmOptions.Invalid = opts.Invalid
	return disasmOptions
}

// validateOptionCombinations checks for options that can not be used together.
func validateOptionCombinations(opts options.Program, disasmOpts options.Disassembler) error {
	if opts.Profile != "" && disasmOpts.CPU != "" {
		return errors.New("a profile file and a CPU type can not be used together")
	}
	if opts.Export && opts.Profile == "" && disasmOpts.CPU == "" {
		return errors.New("exporting a profile requires a CPU type or profile file")
	}
	if opts.Schema && opts.Export {
		return errors.New("schema and profile export can not be used together")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input binary file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Profile, "p", "", "name of a JSON processor profile file to use instead of a built-in CPU")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.bin")
	flags.StringVar(&opts.CPU, "c", "", fmt.Sprintf("CPU type to disassemble for (%s) - if not auto-detected from file extension",
		strings.Join(arch.Names(), ", ")))
	flags.IntVar(&opts.Address, "a", 0, "decimal start address of the first disassembled byte")
	flags.IntVar(&opts.Offset, "offset", 0, "file offset of the first byte to disassemble")
	flags.IntVar(&opts.Length, "length", 0, "number of bytes to disassemble, 0 disassembles to the end of the file")
	flags.BoolVar(&opts.Undocumented, "u", false, "allow undocumented opcodes")
	flags.BoolVar(&opts.Verify, "verify", false, "verify that the disassembled instructions cover the input bytes exactly")
	flags.IntVar(&opts.Jobs, "j", runtime.NumCPU(), "number of files to process in parallel in batch mode")
	flags.BoolVar(&opts.Schema, "schema", false, "print the JSON schema of processor profile files and exit")
	flags.BoolVar(&opts.Export, "export", false, "print the selected processor profile as JSON and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.NoList, "n", false, "do not list addresses and instruction bytes, making the output suitable for an assembler")
	flags.BoolVar(&opts.Invalid, "invalid", false, "show invalid opcodes as ??? rather than .byte constants")
}
