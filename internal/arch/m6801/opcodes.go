package m6801

import "github.com/retroenv/udisasm/internal/profile"

// addressing modes.
const (
	implied    = "implied"
	immediate  = "immediate"
	immediatex = "immediatex"
	direct     = "direct"
	indexed    = "indexed"
	extended   = "extended"
	relative   = "relative"
)

var modes = []struct {
	name     string
	template string
}{
	{implied, ""},
	{immediate, "#${0:02X}"},
	{immediatex, "#${0:02X}{1:02X}"},
	{direct, "${0:02X}"},
	{indexed, "${0:02X},x"},
	{extended, "${0:02X}{1:02X}"},
	{relative, "${0:04X}"},
}

type opcode struct {
	value    byte
	length   int
	mnemonic string
	mode     string
	flags    profile.Flags
}

// opcodes contains the 6800 instruction set and the 6801/6803 additions
// abx, addd, asld, brn, jsr direct, ldd, lsrd, mul, pshx, pulx, std and subd.
var opcodes = []opcode{
	{0x01, 1, "nop", implied, profile.NoFlags},
	{0x04, 1, "lsrd", implied, profile.NoFlags},
	{0x05, 1, "asld", implied, profile.NoFlags},
	{0x06, 1, "tap", implied, profile.NoFlags},
	{0x07, 1, "tpa", implied, profile.NoFlags},
	{0x08, 1, "inx", implied, profile.NoFlags},
	{0x09, 1, "dex", implied, profile.NoFlags},
	{0x0A, 1, "clv", implied, profile.NoFlags},
	{0x0B, 1, "sev", implied, profile.NoFlags},
	{0x0C, 1, "clc", implied, profile.NoFlags},
	{0x0D, 1, "sec", implied, profile.NoFlags},
	{0x0E, 1, "cli", implied, profile.NoFlags},
	{0x0F, 1, "sei", implied, profile.NoFlags},
	{0x10, 1, "sba", implied, profile.NoFlags},
	{0x11, 1, "cba", implied, profile.NoFlags},
	{0x16, 1, "tab", implied, profile.NoFlags},
	{0x17, 1, "tba", implied, profile.NoFlags},
	{0x19, 1, "daa", implied, profile.NoFlags},
	{0x1B, 1, "aba", implied, profile.NoFlags},
	{0x20, 2, "bra", relative, profile.Relative},
	{0x21, 2, "brn", relative, profile.Relative},
	{0x22, 2, "bhi", relative, profile.Relative},
	{0x23, 2, "bls", relative, profile.Relative},
	{0x24, 2, "bcc", relative, profile.Relative},
	{0x25, 2, "bcs", relative, profile.Relative},
	{0x26, 2, "bne", relative, profile.Relative},
	{0x27, 2, "beq", relative, profile.Relative},
	{0x28, 2, "bvc", relative, profile.Relative},
	{0x29, 2, "bvs", relative, profile.Relative},
	{0x2A, 2, "bpl", relative, profile.Relative},
	{0x2B, 2, "bmi", relative, profile.Relative},
	{0x2C, 2, "bge", relative, profile.Relative},
	{0x2D, 2, "blt", relative, profile.Relative},
	{0x2E, 2, "bgt", relative, profile.Relative},
	{0x2F, 2, "ble", relative, profile.Relative},
	{0x30, 1, "tsx", implied, profile.NoFlags},
	{0x31, 1, "ins", implied, profile.NoFlags},
	{0x32, 1, "pula", implied, profile.NoFlags},
	{0x33, 1, "pulb", implied, profile.NoFlags},
	{0x34, 1, "des", implied, profile.NoFlags},
	{0x35, 1, "txs", implied, profile.NoFlags},
	{0x36, 1, "psha", implied, profile.NoFlags},
	{0x37, 1, "pshb", implied, profile.NoFlags},
	{0x38, 1, "pulx", implied, profile.NoFlags},
	{0x39, 1, "rts", implied, profile.NoFlags},
	{0x3A, 1, "abx", implied, profile.NoFlags},
	{0x3B, 1, "rti", implied, profile.NoFlags},
	{0x3C, 1, "pshx", implied, profile.NoFlags},
	{0x3D, 1, "mul", implied, profile.NoFlags},
	{0x3E, 1, "wai", implied, profile.NoFlags},
	{0x3F, 1, "swi", implied, profile.NoFlags},
	{0x40, 1, "nega", implied, profile.NoFlags},
	{0x43, 1, "coma", implied, profile.NoFlags},
	{0x44, 1, "lsra", implied, profile.NoFlags},
	{0x46, 1, "rora", implied, profile.NoFlags},
	{0x47, 1, "asra", implied, profile.NoFlags},
	{0x48, 1, "asla", implied, profile.NoFlags},
	{0x49, 1, "rola", implied, profile.NoFlags},
	{0x4A, 1, "deca", implied, profile.NoFlags},
	{0x4C, 1, "inca", implied, profile.NoFlags},
	{0x4D, 1, "tsta", implied, profile.NoFlags},
	{0x4F, 1, "clra", implied, profile.NoFlags},
	{0x50, 1, "negb", implied, profile.NoFlags},
	{0x53, 1, "comb", implied, profile.NoFlags},
	{0x54, 1, "lsrb", implied, profile.NoFlags},
	{0x56, 1, "rorb", implied, profile.NoFlags},
	{0x57, 1, "asrb", implied, profile.NoFlags},
	{0x58, 1, "aslb", implied, profile.NoFlags},
	{0x59, 1, "rolb", implied, profile.NoFlags},
	{0x5A, 1, "decb", implied, profile.NoFlags},
	{0x5C, 1, "incb", implied, profile.NoFlags},
	{0x5D, 1, "tstb", implied, profile.NoFlags},
	{0x5F, 1, "clrb", implied, profile.NoFlags},
	{0x60, 2, "neg", indexed, profile.NoFlags},
	{0x63, 2, "com", indexed, profile.NoFlags},
	{0x64, 2, "lsr", indexed, profile.NoFlags},
	{0x66, 2, "ror", indexed, profile.NoFlags},
	{0x67, 2, "asr", indexed, profile.NoFlags},
	{0x68, 2, "asl", indexed, profile.NoFlags},
	{0x69, 2, "rol", indexed, profile.NoFlags},
	{0x6A, 2, "dec", indexed, profile.NoFlags},
	{0x6C, 2, "inc", indexed, profile.NoFlags},
	{0x6D, 2, "tst", indexed, profile.NoFlags},
	{0x6E, 2, "jmp", indexed, profile.NoFlags},
	{0x6F, 2, "clr", indexed, profile.NoFlags},
	{0x70, 3, "neg", extended, profile.NoFlags},
	{0x73, 3, "com", extended, profile.NoFlags},
	{0x74, 3, "lsr", extended, profile.NoFlags},
	{0x76, 3, "ror", extended, profile.NoFlags},
	{0x77, 3, "asr", extended, profile.NoFlags},
	{0x78, 3, "asl", extended, profile.NoFlags},
	{0x79, 3, "rol", extended, profile.NoFlags},
	{0x7A, 3, "dec", extended, profile.NoFlags},
	{0x7C, 3, "inc", extended, profile.NoFlags},
	{0x7D, 3, "tst", extended, profile.NoFlags},
	{0x7E, 3, "jmp", extended, profile.NoFlags},
	{0x7F, 3, "clr", extended, profile.NoFlags},
	{0x80, 2, "suba", immediate, profile.NoFlags},
	{0x81, 2, "cmpa", immediate, profile.NoFlags},
	{0x82, 2, "sbca", immediate, profile.NoFlags},
	{0x83, 3, "subd", immediatex, profile.NoFlags},
	{0x84, 2, "anda", immediate, profile.NoFlags},
	{0x85, 2, "bita", immediate, profile.NoFlags},
	{0x86, 2, "ldaa", immediate, profile.NoFlags},
	{0x88, 2, "eora", immediate, profile.NoFlags},
	{0x89, 2, "adca", immediate, profile.NoFlags},
	{0x8A, 2, "oraa", immediate, profile.NoFlags},
	{0x8B, 2, "adda", immediate, profile.NoFlags},
	{0x8C, 3, "cpx", immediatex, profile.NoFlags},
	{0x8D, 2, "bsr", relative, profile.Relative},
	{0x8E, 3, "lds", immediatex, profile.NoFlags},
	{0x90, 2, "suba", direct, profile.NoFlags},
	{0x91, 2, "cmpa", direct, profile.NoFlags},
	{0x92, 2, "sbca", direct, profile.NoFlags},
	{0x93, 2, "subd", direct, profile.NoFlags},
	{0x94, 2, "anda", direct, profile.NoFlags},
	{0x95, 2, "bita", direct, profile.NoFlags},
	{0x96, 2, "ldaa", direct, profile.NoFlags},
	{0x97, 2, "staa", direct, profile.NoFlags},
	{0x98, 2, "eora", direct, profile.NoFlags},
	{0x99, 2, "adca", direct, profile.NoFlags},
	{0x9A, 2, "oraa", direct, profile.NoFlags},
	{0x9B, 2, "adda", direct, profile.NoFlags},
	{0x9C, 2, "cpx", direct, profile.NoFlags},
	{0x9D, 2, "jsr", direct, profile.NoFlags},
	{0x9E, 2, "lds", direct, profile.NoFlags},
	{0x9F, 2, "sts", direct, profile.NoFlags},
	{0xA0, 2, "suba", indexed, profile.NoFlags},
	{0xA1, 2, "cmpa", indexed, profile.NoFlags},
	{0xA2, 2, "sbca", indexed, profile.NoFlags},
	{0xA3, 2, "subd", indexed, profile.NoFlags},
	{0xA4, 2, "anda", indexed, profile.NoFlags},
	{0xA5, 2, "bita", indexed, profile.NoFlags},
	{0xA6, 2, "ldaa", indexed, profile.NoFlags},
	{0xA7, 2, "staa", indexed, profile.NoFlags},
	{0xA8, 2, "eora", indexed, profile.NoFlags},
	{0xA9, 2, "adca", indexed, profile.NoFlags},
	{0xAA, 2, "oraa", indexed, profile.NoFlags},
	{0xAB, 2, "adda", indexed, profile.NoFlags},
	{0xAC, 2, "cpx", indexed, profile.NoFlags},
	{0xAD, 2, "jsr", indexed, profile.NoFlags},
	{0xAE, 2, "lds", indexed, profile.NoFlags},
	{0xAF, 2, "sts", indexed, profile.NoFlags},
	{0xB0, 3, "suba", extended, profile.NoFlags},
	{0xB1, 3, "cmpa", extended, profile.NoFlags},
	{0xB2, 3, "sbca", extended, profile.NoFlags},
	{0xB3, 3, "subd", extended, profile.NoFlags},
	{0xB4, 3, "anda", extended, profile.NoFlags},
	{0xB5, 3, "bita", extended, profile.NoFlags},
	{0xB6, 3, "ldaa", extended, profile.NoFlags},
	{0xB7, 3, "staa", extended, profile.NoFlags},
	{0xB8, 3, "eora", extended, profile.NoFlags},
	{0xB9, 3, "adca", extended, profile.NoFlags},
	{0xBA, 3, "oraa", extended, profile.NoFlags},
	{0xBB, 3, "adda", extended, profile.NoFlags},
	{0xBC, 3, "cpx", extended, profile.NoFlags},
	{0xBD, 3, "jsr", extended, profile.NoFlags},
	{0xBE, 3, "lds", extended, profile.NoFlags},
	{0xBF, 3, "sts", extended, profile.NoFlags},
	{0xC0, 2, "subb", immediate, profile.NoFlags},
	{0xC1, 2, "cmpb", immediate, profile.NoFlags},
	{0xC2, 2, "sbcb", immediate, profile.NoFlags},
	{0xC3, 3, "addd", immediatex, profile.NoFlags},
	{0xC4, 2, "andb", immediate, profile.NoFlags},
	{0xC5, 2, "bitb", immediate, profile.NoFlags},
	{0xC6, 2, "ldab", immediate, profile.NoFlags},
	{0xC8, 2, "eorb", immediate, profile.NoFlags},
	{0xC9, 2, "adcb", immediate, profile.NoFlags},
	{0xCA, 2, "orab", immediate, profile.NoFlags},
	{0xCB, 2, "addb", immediate, profile.NoFlags},
	{0xCC, 3, "ldd", immediatex, profile.NoFlags},
	{0xCE, 3, "ldx", immediatex, profile.NoFlags},
	{0xD0, 2, "subb", direct, profile.NoFlags},
	{0xD1, 2, "cmpb", direct, profile.NoFlags},
	{0xD2, 2, "sbcb", direct, profile.NoFlags},
	{0xD3, 2, "addd", direct, profile.NoFlags},
	{0xD4, 2, "andb", direct, profile.NoFlags},
	{0xD5, 2, "bitb", direct, profile.NoFlags},
	{0xD6, 2, "ldab", direct, profile.NoFlags},
	{0xD7, 2, "stab", direct, profile.NoFlags},
	{0xD8, 2, "eorb", direct, profile.NoFlags},
	{0xD9, 2, "adcb", direct, profile.NoFlags},
	{0xDA, 2, "orab", direct, profile.NoFlags},
	{0xDB, 2, "addb", direct, profile.NoFlags},
	{0xDC, 2, "ldd", direct, profile.NoFlags},
	{0xDD, 2, "std", direct, profile.NoFlags},
	{0xDE, 2, "ldx", direct, profile.NoFlags},
	{0xDF, 2, "stx", direct, profile.NoFlags},
	{0xE0, 2, "subb", indexed, profile.NoFlags},
	{0xE1, 2, "cmpb", indexed, profile.NoFlags},
	{0xE2, 2, "sbcb", indexed, profile.NoFlags},
	{0xE3, 2, "addd", indexed, profile.NoFlags},
	{0xE4, 2, "andb", indexed, profile.NoFlags},
	{0xE5, 2, "bitb", indexed, profile.NoFlags},
	{0xE6, 2, "ldab", indexed, profile.NoFlags},
	{0xE7, 2, "stab", indexed, profile.NoFlags},
	{0xE8, 2, "eorb", indexed, profile.NoFlags},
	{0xE9, 2, "adcb", indexed, profile.NoFlags},
	{0xEA, 2, "orab", indexed, profile.NoFlags},
	{0xEB, 2, "addb", indexed, profile.NoFlags},
	{0xEC, 2, "ldd", indexed, profile.NoFlags},
	{0xED, 2, "std", indexed, profile.NoFlags},
	{0xEE, 2, "ldx", indexed, profile.NoFlags},
	{0xEF, 2, "stx", indexed, profile.NoFlags},
	{0xF0, 3, "subb", extended, profile.NoFlags},
	{0xF1, 3, "cmpb", extended, profile.NoFlags},
	{0xF2, 3, "sbcb", extended, profile.NoFlags},
	{0xF3, 3, "addd", extended, profile.NoFlags},
	{0xF4, 3, "andb", extended, profile.NoFlags},
	{0xF5, 3, "bitb", extended, profile.NoFlags},
	{0xF6, 3, "ldab", extended, profile.NoFlags},
	{0xF7, 3, "stab", extended, profile.NoFlags},
	{0xF8, 3, "eorb", extended, profile.NoFlags},
	{0xF9, 3, "adcb", extended, profile.NoFlags},
	{0xFA, 3, "orab", extended, profile.NoFlags},
	{0xFB, 3, "addb", extended, profile.NoFlags},
	{0xFC, 3, "ldd", extended, profile.NoFlags},
	{0xFD, 3, "std", extended, profile.NoFlags},
	{0xFE, 3, "ldx", extended, profile.NoFlags},
	{0xFF, 3, "stx", extended, profile.NoFlags},
}
