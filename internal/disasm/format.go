package disasm

import (
	"fmt"
	"strings"

	"github.com/retroenv/udisasm/internal/profile"
)

const hexDigits = "0123456789ABCDEF"

// FormatOperand renders the operand text of an instruction from the template of its
// addressing mode and the operand bytes that follow the opcode key. The target is only
// rendered by target placeholders and has to be resolved by the caller.
func FormatOperand(mode *profile.AddressingMode, operands []byte, target uint16, hasTarget bool) (string, error) {
	segments := mode.Template.Segments
	if len(segments) == 0 {
		return "", nil
	}

	var buf strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case profile.Literal:
			buf.WriteString(seg.Text)

		case profile.Byte:
			if seg.Index >= len(operands) {
				return "", fmt.Errorf("%w: addressing mode '%s' references operand byte %d of %d",
					profile.ErrMalformedProfile, mode.Name, seg.Index, len(operands))
			}
			writeHex(&buf, uint16(operands[seg.Index]), seg.Digits)

		case profile.Target:
			if !hasTarget {
				return "", fmt.Errorf("%w: addressing mode '%s' renders a target of a non relative instruction",
					profile.ErrMalformedProfile, mode.Name)
			}
			writeHex(&buf, target, seg.Digits)
		}
	}
	return buf.String(), nil
}

// writeHex writes the lowest digits nibbles of value as uppercase hex.
func writeHex(buf *strings.Builder, value uint16, digits int) {
	for shift := (digits - 1) * 4; shift >= 0; shift -= 4 {
		buf.WriteByte(hexDigits[(value>>shift)&0xF])
	}
}
