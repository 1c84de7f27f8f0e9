package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

const testProfileJSON = `{
  "name": "mini",
  "maxInstructionLength": 4,
  "leadIns": [16],
  "modes": [
    {"name": "inherent", "template": ""},
    {"name": "imm16", "template": "#${0:02X}{1:02X}"},
    {"name": "rel8", "template": "${0:04X}"},
    {"name": "rel16", "template": "${0:04X}", "displacementWidth": 2}
  ],
  "opcodes": [
    {"opcode": 18, "length": 1, "mnemonic": "nop", "mode": "inherent"},
    {"opcode": 32, "length": 2, "mnemonic": "bra", "mode": "rel8", "relative": true},
    {"lead": 16, "opcode": 131, "length": 4, "mnemonic": "cmpd", "mode": "imm16"},
    {"lead": 16, "opcode": 33, "length": 4, "mnemonic": "lbrn", "mode": "rel16", "relative": true},
    {"opcode": 0, "length": 1, "mnemonic": "hcf", "mode": "inherent", "undocumented": true}
  ]
}`

func TestLoadJSON(t *testing.T) {
	p, err := LoadJSON(strings.NewReader(testProfileJSON))
	assert.NoError(t, err)
	assert.Equal(t, "mini", p.Name())
	assert.True(t, p.IsLeadIn(0x10))

	op, ok := p.LookupExtended(0x10, 0x83)
	assert.True(t, ok)
	assert.Equal(t, "cmpd", op.Mnemonic)
	assert.Equal(t, 4, op.Length)

	op, ok = p.Lookup(0x20)
	assert.True(t, ok)
	assert.True(t, op.Relative())

	op, ok = p.Lookup(0x00)
	assert.True(t, ok)
	assert.True(t, op.Flags.Has(Undocumented))

	mode, ok := p.Mode("rel16")
	assert.True(t, ok)
	assert.Equal(t, 2, mode.Displacement.Width)
}

func TestLoadJSONErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		malformed bool
	}{
		{
			name: "invalid json",
			data: `{"name": `,
		},
		{
			name: "unknown field",
			data: `{"name": "x", "maxLength": 1}`,
		},
		{
			name:      "opcode out of range",
			data:      `{"name": "x", "maxInstructionLength": 1, "modes": [{"name": "i", "template": ""}], "opcodes": [{"opcode": 256, "length": 1, "mnemonic": "nop", "mode": "i"}]}`,
			malformed: true,
		},
		{
			name:      "lead-in out of range",
			data:      `{"name": "x", "maxInstructionLength": 1, "leadIns": [-1]}`,
			malformed: true,
		},
		{
			name:      "missing mode",
			data:      `{"name": "x", "maxInstructionLength": 1, "opcodes": [{"opcode": 1, "length": 1, "mnemonic": "nop", "mode": "i"}]}`,
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJSON(strings.NewReader(tt.data))
			assert.Error(t, err)
			assert.Equal(t, tt.malformed, errors.Is(err, ErrMalformedProfile))
		})
	}
}

func TestExportRoundTrip(t *testing.T) {
	p, err := LoadJSON(strings.NewReader(testProfileJSON))
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteJSON(&buf, p))
	assert.Contains(t, buf.String(), "\n  \"name\": \"mini\"")

	again, err := LoadJSON(&buf)
	assert.NoError(t, err)
	assert.Equal(t, Export(p), Export(again))
	assert.Len(t, again.Opcodes(), len(p.Opcodes()))
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	assert.NoError(t, err)

	var schema map[string]any
	assert.NoError(t, json.Unmarshal(data, &schema))
	assert.Contains(t, string(data), "maxInstructionLength")
	assert.Contains(t, string(data), "displacementWidth")
}
