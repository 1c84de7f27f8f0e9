// Package m6801 provides the processor profile of the Motorola 6801/6803.
// The 6801 extends the 6800 instruction set by 16 bit accumulator D operations,
// multiplication and X register stack operations.
package m6801

import (
	"github.com/retroenv/udisasm/internal/profile"
)

// Name of the profile.
const Name = "6801"

// MaxInstructionLength is the longest instruction in bytes.
const MaxInstructionLength = 3

// New returns the 6801 processor profile.
func New() (*profile.Profile, error) {
	b := profile.NewBuilder(Name, MaxInstructionLength).
		Description("Motorola 6801/6803 8-bit microprocessor")

	for _, m := range modes {
		b.Mode(m.name, m.template)
	}
	for _, op := range opcodes {
		b.Opcode(op.value, op.length, op.mnemonic, op.mode, op.flags)
	}
	return b.Build()
}
