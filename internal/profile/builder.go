package profile

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// ErrMalformedProfile is returned for authoring defects in a profile.
var ErrMalformedProfile = errors.New("malformed profile")

type builderMode struct {
	name         string
	template     string
	displacement Displacement
}

// Builder collects the tables of a profile and validates them on Build.
type Builder struct {
	name        string
	description string
	maxLength   int
	leadIns     []byte
	modes       []builderMode
	opcodes     []*Opcode
}

// NewBuilder returns a new profile builder.
func NewBuilder(name string, maxInstructionLength int) *Builder {
	return &Builder{
		name:      name,
		maxLength: maxInstructionLength,
	}
}

// Description sets the human readable description.
func (b *Builder) Description(description string) *Builder {
	b.description = description
	return b
}

// LeadIns sets the bytes that extend the opcode key into the following byte.
func (b *Builder) LeadIns(leads ...byte) *Builder {
	b.leadIns = append(b.leadIns, leads...)
	return b
}

// Mode adds an addressing mode.
func (b *Builder) Mode(name, template string) *Builder {
	return b.RelativeMode(name, template, Displacement{Width: 1})
}

// RelativeMode adds an addressing mode with an explicit displacement layout, used by
// relative opcodes with 16 bit displacements.
func (b *Builder) RelativeMode(name, template string, displacement Displacement) *Builder {
	b.modes = append(b.modes, builderMode{
		name:         name,
		template:     template,
		displacement: displacement,
	})
	return b
}

// Opcode adds a single byte opcode.
func (b *Builder) Opcode(value byte, length int, mnemonic, mode string, flags Flags) *Builder {
	b.opcodes = append(b.opcodes, &Opcode{
		Length:   length,
		Mnemonic: mnemonic,
		Mode:     mode,
		Flags:    flags,
		value:    value,
	})
	return b
}

// Extended adds a 2 byte opcode that starts with the given lead-in byte.
func (b *Builder) Extended(lead, value byte, length int, mnemonic, mode string, flags Flags) *Builder {
	b.opcodes = append(b.opcodes, &Opcode{
		Length:   length,
		Mnemonic: mnemonic,
		Mode:     mode,
		Flags:    flags,
		lead:     lead,
		value:    value,
		extended: true,
	})
	return b
}

// Build validates the collected tables and returns the immutable profile.
// All found authoring defects are returned joined, each wrapping ErrMalformedProfile.
func (b *Builder) Build() (*Profile, error) {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrMalformedProfile, b.name, fmt.Sprintf(format, args...)))
	}

	if b.name == "" {
		fail("missing name")
	}
	if b.maxLength < 1 {
		fail("maximum instruction length %d is not positive", b.maxLength)
	}

	p := &Profile{
		name:        b.name,
		description: b.description,
		maxLength:   b.maxLength,
		leadIns:     set.New[byte](),
		modes:       make(map[string]*AddressingMode, len(b.modes)),
		single:      make(map[byte]*Opcode),
		extended:    make(map[byte]map[byte]*Opcode),
	}

	for _, lead := range b.leadIns {
		p.leadIns.Add(lead)
		p.extended[lead] = make(map[byte]*Opcode)
	}

	for _, m := range b.modes {
		if _, ok := p.modes[m.name]; ok {
			fail("duplicate addressing mode '%s'", m.name)
			continue
		}
		tmpl, err := ParseTemplate(m.template)
		if err != nil {
			errs = append(errs, fmt.Errorf("addressing mode '%s': %w", m.name, err))
			continue
		}
		if m.displacement.Width != 1 && m.displacement.Width != 2 {
			fail("addressing mode '%s' has invalid displacement width %d", m.name, m.displacement.Width)
			continue
		}
		p.modes[m.name] = &AddressingMode{
			Name:         m.name,
			Template:     tmpl,
			Displacement: m.displacement,
		}
	}

	for _, op := range b.opcodes {
		if err := p.addOpcode(op); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrMalformedProfile, b.name, err))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return p, nil
}

func (p *Profile) addOpcode(op *Opcode) error {
	key := fmt.Sprintf("$%0*X", op.KeyWidth()*2, op.Key())

	if err := p.validateOpcode(op); err != nil {
		return fmt.Errorf("opcode %s (%s): %w", key, op.Mnemonic, err)
	}

	if !op.extended {
		if existing, ok := p.single[op.value]; ok {
			return fmt.Errorf("duplicate opcode %s: '%s' and '%s'", key, existing.Mnemonic, op.Mnemonic)
		}
		p.single[op.value] = op
		return nil
	}

	table := p.extended[op.lead]
	if existing, ok := table[op.value]; ok {
		return fmt.Errorf("duplicate opcode %s: '%s' and '%s'", key, existing.Mnemonic, op.Mnemonic)
	}
	table[op.value] = op
	return nil
}

func (p *Profile) validateOpcode(op *Opcode) error {
	switch {
	case !op.extended && p.leadIns.Contains(op.value):
		return errors.New("single byte key collides with a lead-in byte")
	case op.extended && !p.leadIns.Contains(op.lead):
		return fmt.Errorf("lead-in byte $%02X is not declared", op.lead)
	case op.Mnemonic == "":
		return errors.New("missing mnemonic")
	case op.Length < op.KeyWidth() || op.Length > p.maxLength:
		return fmt.Errorf("length %d is outside of [%d, %d]", op.Length, op.KeyWidth(), p.maxLength)
	}

	mode, ok := p.modes[op.Mode]
	if !ok {
		return fmt.Errorf("addressing mode '%s' not found", op.Mode)
	}

	if highest := mode.Template.MaxIndex(); highest >= op.OperandCount() {
		return fmt.Errorf("template '%s' references operand byte %d but only %d operand bytes exist",
			mode.Template, highest, op.OperandCount())
	}

	if op.Relative() {
		if op.OperandCount() < mode.Displacement.Width {
			return fmt.Errorf("relative opcode has %d operand bytes for a %d byte displacement",
				op.OperandCount(), mode.Displacement.Width)
		}
	} else if mode.Template.HasTarget() {
		return fmt.Errorf("template '%s' renders a relative target but opcode is not relative", mode.Template)
	}

	return nil
}
