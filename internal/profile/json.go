package profile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
)

// File is the JSON representation of a processor profile.
type File struct {
	Name                 string       `json:"name" jsonschema:"title=Name,description=Short name used to select the profile"`
	Description          string       `json:"description,omitempty" jsonschema:"title=Description"`
	MaxInstructionLength int          `json:"maxInstructionLength" jsonschema:"title=Maximum instruction length,minimum=1,description=Longest instruction in bytes (output padding only)"`
	LeadIns              []int        `json:"leadIns,omitempty" jsonschema:"title=Lead-in bytes,description=Bytes that extend the opcode key into the following byte"`
	Modes                []ModeFile   `json:"modes" jsonschema:"title=Addressing modes"`
	Opcodes              []OpcodeFile `json:"opcodes" jsonschema:"title=Opcodes"`
}

// ModeFile is the JSON representation of an addressing mode.
type ModeFile struct {
	Name              string `json:"name" jsonschema:"title=Name"`
	Template          string `json:"template" jsonschema:"title=Operand template,description=Literal text with {index:02X} byte and {index:04X} target placeholders"`
	DisplacementWidth int    `json:"displacementWidth,omitempty" jsonschema:"title=Displacement width,enum=1,enum=2,description=Bytes of a relative displacement (default 1)"`
	LowFirst          bool   `json:"lowFirst,omitempty" jsonschema:"title=Low byte first,description=Byte order of 2 byte displacements"`
}

// OpcodeFile is the JSON representation of an opcode table entry.
type OpcodeFile struct {
	Lead         *int   `json:"lead,omitempty" jsonschema:"title=Lead-in byte,minimum=0,maximum=255"`
	Opcode       int    `json:"opcode" jsonschema:"title=Opcode byte,minimum=0,maximum=255"`
	Length       int    `json:"length" jsonschema:"title=Length,minimum=1,description=Total length including lead-in and opcode bytes"`
	Mnemonic     string `json:"mnemonic" jsonschema:"title=Mnemonic"`
	Mode         string `json:"mode" jsonschema:"title=Addressing mode"`
	Relative     bool   `json:"relative,omitempty" jsonschema:"title=Program counter relative"`
	Undocumented bool   `json:"undocumented,omitempty" jsonschema:"title=Undocumented opcode"`
}

// LoadJSON reads a JSON profile and builds it.
func LoadJSON(r io.Reader) (*Profile, error) {
	var f File
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return f.Build()
}

// Build converts the file representation into a validated profile.
func (f File) Build() (*Profile, error) {
	b := NewBuilder(f.Name, f.MaxInstructionLength).Description(f.Description)

	for _, lead := range f.LeadIns {
		value, err := toByte("lead-in", lead)
		if err != nil {
			return nil, err
		}
		b.LeadIns(value)
	}

	for _, m := range f.Modes {
		width := m.DisplacementWidth
		if width == 0 {
			width = 1
		}
		b.RelativeMode(m.Name, m.Template, Displacement{Width: width, LowFirst: m.LowFirst})
	}

	for _, op := range f.Opcodes {
		value, err := toByte("opcode", op.Opcode)
		if err != nil {
			return nil, err
		}

		var flags Flags
		if op.Relative {
			flags |= Relative
		}
		if op.Undocumented {
			flags |= Undocumented
		}

		if op.Lead == nil {
			b.Opcode(value, op.Length, op.Mnemonic, op.Mode, flags)
			continue
		}
		lead, err := toByte("lead-in", *op.Lead)
		if err != nil {
			return nil, err
		}
		b.Extended(lead, value, op.Length, op.Mnemonic, op.Mode, flags)
	}

	return b.Build()
}

// Export converts a profile into its file representation.
func Export(p *Profile) File {
	f := File{
		Name:                 p.Name(),
		Description:          p.Description(),
		MaxInstructionLength: p.MaxInstructionLength(),
	}

	for _, lead := range p.LeadIns() {
		f.LeadIns = append(f.LeadIns, int(lead))
	}

	for _, mode := range p.Modes() {
		m := ModeFile{
			Name:     mode.Name,
			Template: mode.Template.String(),
		}
		if mode.Displacement.Width > 1 {
			m.DisplacementWidth = mode.Displacement.Width
			m.LowFirst = mode.Displacement.LowFirst
		}
		f.Modes = append(f.Modes, m)
	}

	for _, op := range p.Opcodes() {
		entry := OpcodeFile{
			Opcode:       int(op.value),
			Length:       op.Length,
			Mnemonic:     op.Mnemonic,
			Mode:         op.Mode,
			Relative:     op.Flags.Has(Relative),
			Undocumented: op.Flags.Has(Undocumented),
		}
		if op.extended {
			lead := int(op.lead)
			entry.Lead = &lead
		}
		f.Opcodes = append(f.Opcodes, entry)
	}

	return f
}

// WriteJSON writes the file representation of a profile as indented JSON.
func WriteJSON(w io.Writer, p *Profile) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(Export(p)); err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return nil
}

// Schema returns the JSON schema of the profile file format.
func Schema() ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	data, err := json.MarshalIndent(reflector.Reflect(&File{}), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return data, nil
}

func toByte(name string, value int) (byte, error) {
	if value < 0 || value > 0xFF {
		return 0, fmt.Errorf("%w: %s value %d is not a byte", ErrMalformedProfile, name, value)
	}
	return byte(value), nil
}
