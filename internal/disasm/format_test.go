package disasm

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/udisasm/internal/profile"
)

func mode(t *testing.T, template string) *profile.AddressingMode {
	t.Helper()
	tmpl, err := profile.ParseTemplate(template)
	assert.NoError(t, err)
	return &profile.AddressingMode{Name: "test", Template: tmpl}
}

func TestFormatOperand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		operands []byte
		target   uint16
		relative bool
		expected string
	}{
		{name: "empty", template: "", expected: ""},
		{name: "literal", template: "a,b", expected: "a,b"},
		{name: "immediate", template: "#${0:02X}", operands: []byte{0x0a}, expected: "#$0A"},
		{name: "big endian", template: "${0:02X}{1:02X}", operands: []byte{0x12, 0x34}, expected: "$1234"},
		{name: "little endian", template: "${1:02X}{0:02X}", operands: []byte{0x34, 0x12}, expected: "$1234"},
		{name: "nibble", template: "r{0:1X}", operands: []byte{0xab}, expected: "rB"},
		{name: "short nibble", template: "r{0:X}", operands: []byte{0x0f}, expected: "rF"},
		{name: "target", template: "${0:04X}", operands: []byte{0x05}, target: 0x1007, relative: true, expected: "$1007"},
		{name: "escaped braces", template: "{{${0:02X}}}", operands: []byte{0xff}, expected: "{$FF}"},
		{name: "repeated byte", template: "{0:02X}-{0:02X}", operands: []byte{0x01}, expected: "01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FormatOperand(mode(t, tt.template), tt.operands, tt.target, tt.relative)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestFormatOperandErrors(t *testing.T) {
	_, err := FormatOperand(mode(t, "${1:02X}"), []byte{0x01}, 0, false)
	assert.True(t, errors.Is(err, profile.ErrMalformedProfile))
	assert.ErrorContains(t, err, "operand byte 1 of 1")

	_, err = FormatOperand(mode(t, "${0:04X}"), []byte{0x01}, 0, false)
	assert.True(t, errors.Is(err, profile.ErrMalformedProfile))
}

func TestFormatOperandIdempotent(t *testing.T) {
	m := mode(t, "#${0:02X}{1:02X}")
	first, err := FormatOperand(m, []byte{0xbe, 0xef}, 0, false)
	assert.NoError(t, err)
	second, err := FormatOperand(m, []byte{0xbe, 0xef}, 0, false)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
