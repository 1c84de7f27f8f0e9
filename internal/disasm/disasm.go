// Package disasm implements a profile driven disassembler engine.
// The engine contains no architecture specific logic, all instruction set details
// are provided by the processor profile.
package disasm

import (
	"errors"
	"fmt"
	"slices"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/udisasm/internal/profile"
)

// ErrInvalidRange is returned for a range that is not within the byte stream.
var ErrInvalidRange = errors.New("invalid range")

// Options defines options to control the disassembler.
type Options struct {
	Undocumented bool // decode opcodes flagged as undocumented
}

// Range selects the part of the byte stream to disassemble.
type Range struct {
	Offset int // offset of the first byte to disassemble
	Length int // number of bytes to disassemble, 0 for the end of the stream
}

// Disassembler decodes byte streams using a processor profile.
// It holds no state of a run and can be used concurrently.
type Disassembler struct {
	logger  *log.Logger
	profile *profile.Profile
	options Options
}

// New returns a new disassembler for the given profile.
func New(logger *log.Logger, p *profile.Profile, options Options) *Disassembler {
	return &Disassembler{
		logger:  logger,
		profile: p,
		options: options,
	}
}

// Profile returns the processor profile of the disassembler.
func (d *Disassembler) Profile() *profile.Profile {
	return d.profile
}

// Iterate returns an iterator over the records of the selected range of data.
// The start address is the program counter of the first byte of data.
func (d *Disassembler) Iterate(data []byte, start uint16, r Range) (*Iterator, error) {
	end := len(data)
	if r.Length > 0 {
		end = r.Offset + r.Length
	}
	if r.Offset < 0 || r.Length < 0 || r.Offset > len(data) || end > len(data) {
		return nil, fmt.Errorf("%w: offset %d length %d for %d bytes", ErrInvalidRange, r.Offset, r.Length, len(data))
	}

	return &Iterator{
		dis:    d,
		data:   data[:end],
		cursor: r.Offset,
		pc:     start + uint16(r.Offset),
	}, nil
}

// Disassemble returns all records of the selected range of data.
func (d *Disassembler) Disassemble(data []byte, start uint16, r Range) ([]Record, error) {
	it, err := d.Iterate(data, start, r)
	if err != nil {
		return nil, err
	}

	var records []Record
	for it.Next() {
		records = append(records, it.Record())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Iterator walks a byte stream instruction by instruction. It is not restartable.
type Iterator struct {
	dis    *Disassembler
	data   []byte // stream limited to the end of the range
	cursor int
	pc     uint16
	record Record
	err    error
}

// Next decodes the next record and returns false when the range is exhausted or
// a malformed profile was detected.
func (it *Iterator) Next() bool {
	if it.err != nil || it.cursor >= len(it.data) {
		return false
	}

	record, err := it.dis.decode(it.data, it.cursor, it.pc)
	if err != nil {
		it.err = err
		return false
	}

	it.record = record
	it.cursor += record.Len()
	it.pc += uint16(record.Len())
	return true
}

// Record returns the record decoded by the last call to Next.
func (it *Iterator) Record() Record {
	return it.record
}

// Err returns the error that stopped the iteration.
func (it *Iterator) Err() error {
	return it.err
}

// Offset returns the offset of the next byte to decode.
func (it *Iterator) Offset() int {
	return it.cursor
}

// ProgramCounter returns the address of the next byte to decode.
func (it *Iterator) ProgramCounter() uint16 {
	return it.pc
}

func (d *Disassembler) decode(data []byte, offset int, pc uint16) (Record, error) {
	m := MatchAt(d.profile, data, offset)
	if m.Status == Decoded && m.Opcode.Flags.Has(profile.Undocumented) && !d.options.Undocumented {
		m.Status = UndocumentedOpcode
	}
	if m.Status != Decoded {
		d.logger.Debug("Undecodable byte",
			log.Hex("address", pc),
			log.Hex("value", data[offset]),
			log.String("reason", m.Status.String()))
		return unmatched(data, offset, pc, m.Status), nil
	}

	op := m.Opcode
	mode, ok := d.profile.Mode(op.Mode)
	if !ok {
		return Record{}, fmt.Errorf("%w: opcode $%02X references unknown addressing mode '%s'",
			profile.ErrMalformedProfile, op.Key(), op.Mode)
	}

	raw := slices.Clone(data[offset : offset+op.Length])
	operands := raw[op.KeyWidth():]

	record := Record{
		Address:  pc,
		Bytes:    raw,
		Mnemonic: op.Mnemonic,
		Status:   Decoded,
		Opcode:   op,
	}

	if op.Relative() {
		disp := displacement(mode.Displacement, operands)
		record.Target = ResolveTarget(pc, op.Length, SignExtend(disp, mode.Displacement.Width))
		record.HasTarget = true
	}

	operand, err := FormatOperand(mode, operands, record.Target, record.HasTarget)
	if err != nil {
		return Record{}, fmt.Errorf("formatting opcode $%02X at $%04X: %w", op.Key(), pc, err)
	}
	record.Operand = operand
	return record, nil
}

// unmatched returns a single byte record for a position that could not be decoded.
func unmatched(data []byte, offset int, pc uint16, status Status) Record {
	return Record{
		Address:  pc,
		Bytes:    []byte{data[offset]},
		Mnemonic: Unmatched,
		Status:   status,
	}
}
