// Package loader handles binary file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/udisasm/internal/disasm"
	"github.com/retroenv/udisasm/internal/options"
)

// ErrRange is returned when the selected window is not within the loaded file.
var ErrRange = errors.New("window out of file range")

// Input is a loaded byte stream and the window of it to disassemble.
type Input struct {
	Data   []byte
	Origin uint16       // address of the first byte of Data
	Range  disasm.Range // window of Data to disassemble
}

// Loader handles loading binary files from disk.
type Loader struct{}

// New creates a new binary loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file of the options and selects the disassembly window.
func (l *Loader) Load(opts options.Program) (*Input, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	return l.LoadFromBytes(data, opts)
}

// LoadFromBytes selects the disassembly window of an in memory byte stream.
// The start address of the options is the address of the first byte of data.
func (l *Loader) LoadFromBytes(data []byte, opts options.Program) (*Input, error) {
	if opts.Offset < 0 || opts.Offset > len(data) {
		return nil, fmt.Errorf("%w: offset %d, file size %d", ErrRange, opts.Offset, len(data))
	}
	if opts.Length < 0 || opts.Offset+opts.Length > len(data) {
		return nil, fmt.Errorf("%w: offset %d length %d, file size %d", ErrRange, opts.Offset, opts.Length, len(data))
	}

	return &Input{
		Data:   data,
		Origin: uint16(opts.Address),
		Range: disasm.Range{
			Offset: opts.Offset,
			Length: opts.Length,
		},
	}, nil
}

// Window returns the bytes of the disassembly window.
func (in *Input) Window() []byte {
	if in.Range.Length == 0 {
		return in.Data[in.Range.Offset:]
	}
	return in.Data[in.Range.Offset : in.Range.Offset+in.Range.Length]
}

// Start returns the address of the first byte of the window.
func (in *Input) Start() uint16 {
	return in.Origin + uint16(in.Range.Offset)
}
