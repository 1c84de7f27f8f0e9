// Package m6809 provides the processor profile of the Motorola 6809.
//
// The 6809 multiplexes its extended instruction set behind the lead-in bytes $10
// and $11. Indexed addressing is decoded as a single post byte, the post byte
// variants with additional offset bytes are not distinguished.
package m6809

import (
	"github.com/retroenv/udisasm/internal/profile"
)

// Name of the profile.
const Name = "6809"

// MaxInstructionLength is the longest instruction in bytes.
const MaxInstructionLength = 4

// Lead-in bytes of the extended instruction pages.
const (
	Page2 = 0x10
	Page3 = 0x11
)

// New returns the 6809 processor profile.
func New() (*profile.Profile, error) {
	b := profile.NewBuilder(Name, MaxInstructionLength).
		Description("Motorola 6809 8-bit microprocessor").
		LeadIns(Page2, Page3).
		Mode(inherent, "").
		Mode(imm8, "#${0:02X}").
		Mode(imm16, "#${0:02X}{1:02X}").
		Mode(direct, "${0:02X}").
		Mode(indexed, "${0:02X},x").
		Mode(extended, "${0:02X}{1:02X}").
		Mode(rel8, "${0:04X}").
		RelativeMode(rel16, "${0:04X}", profile.Displacement{Width: 2}).
		Mode(registers, "${0:02X}")

	for _, op := range page1 {
		b.Opcode(op.value, op.length, op.mnemonic, op.mode, op.flags)
	}
	for _, op := range page2 {
		b.Extended(Page2, op.value, op.length, op.mnemonic, op.mode, op.flags)
	}
	for _, op := range page3 {
		b.Extended(Page3, op.value, op.length, op.mnemonic, op.mode, op.flags)
	}
	return b.Build()
}
