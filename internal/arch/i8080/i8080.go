// Package i8080 provides the processor profile of the Intel 8080.
// Register operands are encoded in the opcode byte, every register combination
// therefore has its own addressing mode with a literal template.
package i8080

import (
	"fmt"
	"strconv"

	"github.com/retroenv/udisasm/internal/profile"
)

// Name of the profile.
const Name = "8080"

// MaxInstructionLength is the longest instruction in bytes.
const MaxInstructionLength = 3

// addressing modes that are not register specific.
const (
	implied = "implied"
	imm8    = "imm8"
	direct  = "direct"
	port    = "port"
)

// registers in encoding order, m addresses memory through hl.
var registers = [8]string{"b", "c", "d", "e", "h", "l", "m", "a"}

// register pairs in encoding order.
var pairs = [4]string{"b", "d", "h", "sp"}

var (
	aluOps    = [8]string{"add", "adc", "sub", "sbb", "ana", "xra", "ora", "cmp"}
	aluImmOps = [8]string{"adi", "aci", "sui", "sbi", "ani", "xri", "ori", "cpi"}
	rotateOps = [8]string{"rlc", "rrc", "ral", "rar", "daa", "cma", "stc", "cmc"}
	// conditions in encoding order.
	conditions = [8]string{"nz", "z", "nc", "c", "po", "pe", "p", "m"}
)

// New returns the 8080 processor profile.
func New() (*profile.Profile, error) {
	b := profile.NewBuilder(Name, MaxInstructionLength).
		Description("Intel 8080 8-bit microprocessor").
		Mode(implied, "").
		Mode(imm8, "${0:02X}").
		Mode(direct, "${1:02X}{0:02X}").
		Mode(port, "${0:02X}").
		Mode("psw", "psw")

	addRegisterModes(b)
	addDataTransfer(b)
	addArithmetic(b)
	addControl(b)
	addUndocumented(b)
	return b.Build()
}

func addRegisterModes(b *profile.Builder) {
	for _, reg := range registers {
		b.Mode(reg, reg)
		b.Mode(immMode(reg), reg+",${0:02X}")
		for _, src := range registers {
			b.Mode(reg+","+src, reg+","+src)
		}
	}
	b.Mode("sp", "sp")
	for _, pair := range pairs {
		b.Mode(wordMode(pair), pair+",${1:02X}{0:02X}")
	}
	for i := range 8 {
		b.Mode(rstMode(i), strconv.Itoa(i))
	}
}

func addDataTransfer(b *profile.Builder) {
	for dst, d := range registers {
		for src, s := range registers {
			value := byte(0x40 | dst<<3 | src)
			if value == 0x76 {
				b.Opcode(value, 1, "hlt", implied, profile.NoFlags)
				continue
			}
			b.Opcode(value, 1, "mov", d+","+s, profile.NoFlags)
		}
		b.Opcode(byte(0x06|dst<<3), 2, "mvi", immMode(d), profile.NoFlags)
	}

	for i, pair := range pairs {
		rp := byte(i << 4)
		b.Opcode(0x01|rp, 3, "lxi", wordMode(pair), profile.NoFlags)
		if i < 2 {
			b.Opcode(0x02|rp, 1, "stax", pair, profile.NoFlags)
			b.Opcode(0x0a|rp, 1, "ldax", pair, profile.NoFlags)
		}
	}

	b.Opcode(0x22, 3, "shld", direct, profile.NoFlags)
	b.Opcode(0x2a, 3, "lhld", direct, profile.NoFlags)
	b.Opcode(0x32, 3, "sta", direct, profile.NoFlags)
	b.Opcode(0x3a, 3, "lda", direct, profile.NoFlags)
	b.Opcode(0xe3, 1, "xthl", implied, profile.NoFlags)
	b.Opcode(0xeb, 1, "xchg", implied, profile.NoFlags)
	b.Opcode(0xf9, 1, "sphl", implied, profile.NoFlags)
	b.Opcode(0xd3, 2, "out", port, profile.NoFlags)
	b.Opcode(0xdb, 2, "in", port, profile.NoFlags)

	for i, pair := range pairs {
		mode := pair
		if pair == "sp" {
			mode = "psw"
		}
		b.Opcode(byte(0xc1|i<<4), 1, "pop", mode, profile.NoFlags)
		b.Opcode(byte(0xc5|i<<4), 1, "push", mode, profile.NoFlags)
	}
}

func addArithmetic(b *profile.Builder) {
	for op, name := range aluOps {
		for src, s := range registers {
			b.Opcode(byte(0x80|op<<3|src), 1, name, s, profile.NoFlags)
		}
	}
	for op, name := range aluImmOps {
		b.Opcode(byte(0xc6|op<<3), 2, name, imm8, profile.NoFlags)
	}
	for dst, d := range registers {
		b.Opcode(byte(0x04|dst<<3), 1, "inr", d, profile.NoFlags)
		b.Opcode(byte(0x05|dst<<3), 1, "dcr", d, profile.NoFlags)
	}
	for i, pair := range pairs {
		rp := byte(i << 4)
		b.Opcode(0x03|rp, 1, "inx", pair, profile.NoFlags)
		b.Opcode(0x09|rp, 1, "dad", pair, profile.NoFlags)
		b.Opcode(0x0b|rp, 1, "dcx", pair, profile.NoFlags)
	}
	for i, name := range rotateOps {
		b.Opcode(byte(0x07|i<<3), 1, name, implied, profile.NoFlags)
	}
}

func addControl(b *profile.Builder) {
	b.Opcode(0x00, 1, "nop", implied, profile.NoFlags)
	b.Opcode(0xc3, 3, "jmp", direct, profile.NoFlags)
	b.Opcode(0xcd, 3, "call", direct, profile.NoFlags)
	b.Opcode(0xc9, 1, "ret", implied, profile.NoFlags)
	b.Opcode(0xe9, 1, "pchl", implied, profile.NoFlags)
	b.Opcode(0xf3, 1, "di", implied, profile.NoFlags)
	b.Opcode(0xfb, 1, "ei", implied, profile.NoFlags)

	for i, cond := range conditions {
		cc := byte(i << 3)
		b.Opcode(0xc0|cc, 1, "r"+cond, implied, profile.NoFlags)
		b.Opcode(0xc2|cc, 3, "j"+cond, direct, profile.NoFlags)
		b.Opcode(0xc4|cc, 3, "c"+cond, direct, profile.NoFlags)
		b.Opcode(0xc7|cc, 1, "rst", rstMode(i), profile.NoFlags)
	}
}

// addUndocumented adds the opcodes that alias documented instructions.
func addUndocumented(b *profile.Builder) {
	for i := 1; i < 8; i++ {
		b.Opcode(byte(i<<3), 1, "nop", implied, profile.Undocumented)
	}
	b.Opcode(0xcb, 3, "jmp", direct, profile.Undocumented)
	b.Opcode(0xd9, 1, "ret", implied, profile.Undocumented)
	for _, value := range []byte{0xdd, 0xed, 0xfd} {
		b.Opcode(value, 3, "call", direct, profile.Undocumented)
	}
}

func immMode(reg string) string {
	return reg + ",imm8"
}

func wordMode(pair string) string {
	return pair + ",imm16"
}

func rstMode(i int) string {
	return fmt.Sprintf("rst%d", i)
}
