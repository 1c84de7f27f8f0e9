package disasm

import "github.com/retroenv/udisasm/internal/profile"

// SignExtend sign extends an 8 or 16 bit displacement.
func SignExtend(value uint16, width int) int {
	if width == 1 {
		return int(int8(value))
	}
	return int(int16(value))
}

// ResolveTarget returns the absolute target of a relative instruction. The displacement
// is relative to the address following the instruction, the address space wraps at 64K.
func ResolveTarget(pc uint16, length int, displacement int) uint16 {
	return uint16(int(pc) + length + displacement)
}

// displacement reads the raw displacement from the last operand bytes.
func displacement(d profile.Displacement, operands []byte) uint16 {
	disp := operands[len(operands)-d.Width:]
	if d.Width == 1 {
		return uint16(disp[0])
	}
	if d.LowFirst {
		return uint16(disp[1])<<8 | uint16(disp[0])
	}
	return uint16(disp[0])<<8 | uint16(disp[1])
}
