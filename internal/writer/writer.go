// Package writer implements the listing output of disassembled records.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/udisasm/internal/disasm"
)

const dataDirective = ".byte"

// Options of the writer.
type Options struct {
	MaxInstructionLength int  // width of the instruction bytes column in bytes
	NoList               bool // omit addresses and instruction bytes
	Invalid              bool // output undecodable bytes as ??? instead of data directives
}

// Writer writes records as an assembly listing.
type Writer struct {
	options Options
	writer  io.Writer
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	if options.MaxInstructionLength < 1 {
		options.MaxInstructionLength = 1
	}
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write writes the complete listing of the records starting at the origin address.
func (w Writer) Write(origin uint16, records []disasm.Record) error {
	if err := w.WriteHeader(origin); err != nil {
		return err
	}

	end := origin
	for _, rec := range records {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
		end = rec.Address + uint16(rec.Len())
	}

	return w.WriteTrailer(end)
}

// WriteHeader writes the origin directive.
func (w Writer) WriteHeader(address uint16) error {
	var err error
	if w.options.NoList {
		_, err = fmt.Fprintf(w.writer, " .org   $%04X\n", address)
	} else {
		_, err = fmt.Fprintf(w.writer, "%04X%s.org   $%04X\n", address, w.padding(), address)
	}
	if err != nil {
		return fmt.Errorf("writing origin: %w", err)
	}
	return nil
}

// WriteTrailer writes the end directive with the address following the last record.
// Assembler ready output has no trailer.
func (w Writer) WriteTrailer(address uint16) error {
	if w.options.NoList {
		return nil
	}
	if _, err := fmt.Fprintf(w.writer, "%04X%send\n", address, w.padding()); err != nil {
		return fmt.Errorf("writing end: %w", err)
	}
	return nil
}

// WriteRecord writes a single record as listing line.
func (w Writer) WriteRecord(rec disasm.Record) error {
	mnemonic, operand := rec.Mnemonic, rec.Operand
	if !rec.Decoded() && !w.options.Invalid {
		mnemonic, operand = dataDirective, dataOperand(rec.Bytes[0])
	}

	buf := &strings.Builder{}
	if w.options.NoList {
		buf.WriteByte(' ')
	} else {
		fmt.Fprintf(buf, "%04X  %-*s  ", rec.Address, w.bytesWidth(), hexBytes(rec.Bytes))
	}

	if operand == "" {
		buf.WriteString(mnemonic)
	} else {
		fmt.Fprintf(buf, "%-5s  %s", mnemonic, operand)
	}

	if _, err := fmt.Fprintln(w.writer, buf.String()); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// bytesWidth returns the width of the instruction bytes column.
func (w Writer) bytesWidth() int {
	return w.options.MaxInstructionLength*3 - 1
}

// padding returns the spacing between the address and directives of header and trailer.
func (w Writer) padding() string {
	return strings.Repeat(" ", w.bytesWidth()+4)
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// dataOperand returns the operand of a data directive for an undecodable byte,
// printable characters are output as character constant.
func dataOperand(b byte) string {
	if b >= '@' && b <= '~' {
		return fmt.Sprintf("'%c'", b)
	}
	return fmt.Sprintf("$%02X", b)
}
