// Package profile contains the processor profile types that describe an instruction set.
// A profile is built once by a Builder, validated, and is read-only afterwards so that
// it can be shared by any number of concurrent disassembly runs.
package profile

import (
	"maps"
	"slices"
	"strings"

	"github.com/retroenv/retrogolib/set"
)

// Flags defines optional opcode properties.
type Flags uint8

// opcode flags.
const (
	NoFlags  Flags = 0
	Relative Flags = 1 << iota // operand is a program counter relative displacement
	Undocumented               // opcode is not part of the official instruction set
)

// Has returns whether all bits of flag are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag && flag != 0
}

// Opcode describes one entry of the opcode table.
type Opcode struct {
	Length   int    // total length in bytes including lead-in and opcode bytes
	Mnemonic string // instruction name
	Mode     string // addressing mode name
	Flags    Flags

	lead     byte
	value    byte
	extended bool
}

// Key returns the numeric opcode key, lead-in byte << 8 | opcode byte for extended opcodes.
func (o *Opcode) Key() uint16 {
	if o.extended {
		return uint16(o.lead)<<8 | uint16(o.value)
	}
	return uint16(o.value)
}

// KeyWidth returns the number of bytes that form the opcode key.
func (o *Opcode) KeyWidth() int {
	if o.extended {
		return 2
	}
	return 1
}

// OperandCount returns the number of operand bytes following the opcode key.
func (o *Opcode) OperandCount() int {
	return o.Length - o.KeyWidth()
}

// Relative returns whether the opcode uses program counter relative addressing.
func (o *Opcode) Relative() bool {
	return o.Flags.Has(Relative)
}

// Displacement describes how the displacement of a relative addressing mode is stored.
// The displacement occupies the last Width operand bytes of the instruction.
type Displacement struct {
	Width    int  // 1 or 2 bytes
	LowFirst bool // byte order of 2 byte displacements
}

// AddressingMode describes the operand format of an addressing mode.
type AddressingMode struct {
	Name         string
	Template     Template
	Displacement Displacement
}

// Profile is the complete immutable description of one instruction set.
type Profile struct {
	name        string
	description string
	maxLength   int

	leadIns  set.Set[byte]
	modes    map[string]*AddressingMode
	single   map[byte]*Opcode
	extended map[byte]map[byte]*Opcode
}

// Name returns the short name of the profile, for example 6809.
func (p *Profile) Name() string {
	return p.name
}

// Description returns the human readable description of the profile.
func (p *Profile) Description() string {
	return p.description
}

// MaxInstructionLength returns the longest instruction length in bytes.
// It is only used for output padding.
func (p *Profile) MaxInstructionLength() int {
	return p.maxLength
}

// IsLeadIn returns whether b extends the opcode key into the following byte.
func (p *Profile) IsLeadIn(b byte) bool {
	return p.leadIns.Contains(b)
}

// LeadIns returns the sorted lead-in bytes of the profile.
func (p *Profile) LeadIns() []byte {
	leads := make([]byte, 0, len(p.leadIns))
	for b := range p.leadIns {
		leads = append(leads, b)
	}
	slices.Sort(leads)
	return leads
}

// Mode returns the addressing mode of the given name.
func (p *Profile) Mode(name string) (*AddressingMode, bool) {
	mode, ok := p.modes[name]
	return mode, ok
}

// Lookup returns the opcode for a single byte key.
func (p *Profile) Lookup(b byte) (*Opcode, bool) {
	op, ok := p.single[b]
	return op, ok
}

// LookupExtended returns the opcode for a 2 byte key that starts with a lead-in byte.
func (p *Profile) LookupExtended(lead, b byte) (*Opcode, bool) {
	table, ok := p.extended[lead]
	if !ok {
		return nil, false
	}
	op, ok := table[b]
	return op, ok
}

// Opcodes returns all opcodes of the profile sorted by key.
func (p *Profile) Opcodes() []*Opcode {
	ops := slices.Collect(maps.Values(p.single))
	for _, table := range p.extended {
		ops = slices.AppendSeq(ops, maps.Values(table))
	}
	slices.SortFunc(ops, func(a, b *Opcode) int {
		if a.KeyWidth() != b.KeyWidth() {
			return a.KeyWidth() - b.KeyWidth()
		}
		return int(a.Key()) - int(b.Key())
	})
	return ops
}

// Modes returns all addressing modes of the profile sorted by name.
func (p *Profile) Modes() []*AddressingMode {
	modes := slices.Collect(maps.Values(p.modes))
	slices.SortFunc(modes, func(a, b *AddressingMode) int {
		return strings.Compare(a.Name, b.Name)
	})
	return modes
}
