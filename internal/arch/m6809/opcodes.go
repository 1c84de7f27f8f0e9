package m6809

import "github.com/retroenv/udisasm/internal/profile"

// addressing modes.
const (
	inherent  = "inherent"
	imm8      = "imm8"
	imm16     = "imm16"
	direct    = "direct"
	indexed   = "indexed"
	extended  = "extended"
	rel8      = "rel8"
	rel16     = "rel16"
	registers = "r1,r2"
)

type opcode struct {
	value    byte
	length   int
	mnemonic string
	mode     string
	flags    profile.Flags
}

// page1 contains the opcodes without lead-in byte.
var page1 = []opcode{
	{0x00, 2, "neg", direct, profile.NoFlags},
	{0x03, 2, "com", direct, profile.NoFlags},
	{0x04, 2, "lsr", direct, profile.NoFlags},
	{0x06, 2, "ror", direct, profile.NoFlags},
	{0x07, 2, "asr", direct, profile.NoFlags},
	{0x08, 2, "asl", direct, profile.NoFlags},
	{0x09, 2, "rol", direct, profile.NoFlags},
	{0x0A, 2, "dec", direct, profile.NoFlags},
	{0x0C, 2, "inc", direct, profile.NoFlags},
	{0x0D, 2, "tst", direct, profile.NoFlags},
	{0x0E, 2, "jmp", direct, profile.NoFlags},
	{0x0F, 2, "clr", direct, profile.NoFlags},
	{0x12, 1, "nop", inherent, profile.NoFlags},
	{0x13, 1, "sync", inherent, profile.NoFlags},
	{0x16, 3, "lbra", rel16, profile.Relative},
	{0x17, 3, "lbsr", rel16, profile.Relative},
	{0x19, 1, "daa", inherent, profile.NoFlags},
	{0x1A, 2, "orcc", imm8, profile.NoFlags},
	{0x1C, 2, "andcc", imm8, profile.NoFlags},
	{0x1D, 1, "sex", inherent, profile.NoFlags},
	{0x1E, 2, "exg", registers, profile.NoFlags},
	{0x1F, 2, "tfr", registers, profile.NoFlags},
	{0x20, 2, "bra", rel8, profile.Relative},
	{0x21, 2, "brn", rel8, profile.Relative},
	{0x22, 2, "bhi", rel8, profile.Relative},
	{0x23, 2, "bls", rel8, profile.Relative},
	{0x24, 2, "bcc", rel8, profile.Relative},
	{0x25, 2, "bcs", rel8, profile.Relative},
	{0x26, 2, "bne", rel8, profile.Relative},
	{0x27, 2, "beq", rel8, profile.Relative},
	{0x28, 2, "bvc", rel8, profile.Relative},
	{0x29, 2, "bvs", rel8, profile.Relative},
	{0x2A, 2, "bpl", rel8, profile.Relative},
	{0x2B, 2, "bmi", rel8, profile.Relative},
	{0x2C, 2, "bge", rel8, profile.Relative},
	{0x2D, 2, "blt", rel8, profile.Relative},
	{0x2E, 2, "bgt", rel8, profile.Relative},
	{0x2F, 2, "ble", rel8, profile.Relative},
	{0x30, 2, "leax", indexed, profile.NoFlags},
	{0x31, 2, "leay", indexed, profile.NoFlags},
	{0x32, 2, "leas", indexed, profile.NoFlags},
	{0x33, 2, "leau", indexed, profile.NoFlags},
	{0x34, 2, "pshs", imm8, profile.NoFlags},
	{0x35, 2, "puls", imm8, profile.NoFlags},
	{0x36, 2, "pshu", imm8, profile.NoFlags},
	{0x37, 2, "pulu", imm8, profile.NoFlags},
	{0x39, 1, "rts", inherent, profile.NoFlags},
	{0x3A, 1, "abx", inherent, profile.NoFlags},
	{0x3B, 1, "rti", inherent, profile.NoFlags},
	{0x3C, 2, "cwai", imm8, profile.NoFlags},
	{0x3D, 1, "mul", inherent, profile.NoFlags},
	{0x3F, 1, "swi", inherent, profile.NoFlags},
	{0x40, 1, "nega", inherent, profile.NoFlags},
	{0x43, 1, "coma", inherent, profile.NoFlags},
	{0x44, 1, "lsra", inherent, profile.NoFlags},
	{0x46, 1, "rora", inherent, profile.NoFlags},
	{0x47, 1, "asra", inherent, profile.NoFlags},
	{0x48, 1, "asla", inherent, profile.NoFlags},
	{0x49, 1, "rola", inherent, profile.NoFlags},
	{0x4A, 1, "deca", inherent, profile.NoFlags},
	{0x4C, 1, "inca", inherent, profile.NoFlags},
	{0x4D, 1, "tsta", inherent, profile.NoFlags},
	{0x4F, 1, "clra", inherent, profile.NoFlags},
	{0x50, 1, "negb", inherent, profile.NoFlags},
	{0x53, 1, "comb", inherent, profile.NoFlags},
	{0x54, 1, "lsrb", inherent, profile.NoFlags},
	{0x56, 1, "rorb", inherent, profile.NoFlags},
	{0x57, 1, "asrb", inherent, profile.NoFlags},
	{0x58, 1, "aslb", inherent, profile.NoFlags},
	{0x59, 1, "rolb", inherent, profile.NoFlags},
	{0x5A, 1, "decb", inherent, profile.NoFlags},
	{0x5C, 1, "incb", inherent, profile.NoFlags},
	{0x5D, 1, "tstb", inherent, profile.NoFlags},
	{0x5F, 1, "clrb", inherent, profile.NoFlags},
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
	{0x80, 2, "suba", imm8, profile.NoFlags},
	{0x81, 2, "cmpa", imm8, profile.NoFlags},
	{0x82, 2, "sbca", imm8, profile.NoFlags},
	{0x83, 3, "subd", imm16, profile.NoFlags},
	{0x84, 2, "anda", imm8, profile.NoFlags},
	{0x85, 2, "bita", imm8, profile.NoFlags},
	{0x86, 2, "lda", imm8, profile.NoFlags},
	{0x88, 2, "eora", imm8, profile.NoFlags},
	{0x89, 2, "adca", imm8, profile.NoFlags},
	{0x8A, 2, "ora", imm8, profile.NoFlags},
	{0x8B, 2, "adda", imm8, profile.NoFlags},
	{0x8C, 3, "cmpx", imm16, profile.NoFlags},
	{0x8D, 2, "bsr", rel8, profile.Relative},
	{0x8E, 3, "ldx", imm16, profile.NoFlags},
	{0x90, 2, "suba", direct, profile.NoFlags},
	{0x91, 2, "cmpa", direct, profile.NoFlags},
	{0x92, 2, "sbca", direct, profile.NoFlags},
	{0x93, 2, "subd", direct, profile.NoFlags},
	{0x94, 2, "anda", direct, profile.NoFlags},
	{0x95, 2, "bita", direct, profile.NoFlags},
	{0x96, 2, "lda", direct, profile.NoFlags},
	{0x97, 2, "sta", direct, profile.NoFlags},
	{0x98, 2, "eora", direct, profile.NoFlags},
	{0x99, 2, "adca", direct, profile.NoFlags},
	{0x9A, 2, "ora", direct, profile.NoFlags},
	{0x9B, 2, "adda", direct, profile.NoFlags},
	{0x9C, 2, "cmpx", direct, profile.NoFlags},
	{0x9D, 2, "jsr", direct, profile.NoFlags},
	{0x9E, 2, "ldx", direct, profile.NoFlags},
	{0x9F, 2, "stx", direct, profile.NoFlags},
	{0xA0, 2, "suba", indexed, profile.NoFlags},
	{0xA1, 2, "cmpa", indexed, profile.NoFlags},
	{0xA2, 2, "sbca", indexed, profile.NoFlags},
	{0xA3, 2, "subd", indexed, profile.NoFlags},
	{0xA4, 2, "anda", indexed, profile.NoFlags},
	{0xA5, 2, "bita", indexed, profile.NoFlags},
	{0xA6, 2, "lda", indexed, profile.NoFlags},
	{0xA7, 2, "sta", indexed, profile.NoFlags},
	{0xA8, 2, "eora", indexed, profile.NoFlags},
	{0xA9, 2, "adca", indexed, profile.NoFlags},
	{0xAA, 2, "ora", indexed, profile.NoFlags},
	{0xAB, 2, "adda", indexed, profile.NoFlags},
	{0xAC, 2, "cmpx", indexed, profile.NoFlags},
	{0xAD, 2, "jsr", indexed, profile.NoFlags},
	{0xAE, 2, "ldx", indexed, profile.NoFlags},
	{0xAF, 2, "stx", indexed, profile.NoFlags},
	{0xB0, 3, "suba", extended, profile.NoFlags},
	{0xB1, 3, "cmpa", extended, profile.NoFlags},
	{0xB2, 3, "sbca", extended, profile.NoFlags},
	{0xB3, 3, "subd", extended, profile.NoFlags},
	{0xB4, 3, "anda", extended, profile.NoFlags},
	{0xB5, 3, "bita", extended, profile.NoFlags},
	{0xB6, 3, "lda", extended, profile.NoFlags},
	{0xB7, 3, "sta", extended, profile.NoFlags},
	{0xB8, 3, "eora", extended, profile.NoFlags},
	{0xB9, 3, "adca", extended, profile.NoFlags},
	{0xBA, 3, "ora", extended, profile.NoFlags},
	{0xBB, 3, "adda", extended, profile.NoFlags},
	{0xBC, 3, "cmpx", extended, profile.NoFlags},
	{0xBD, 3, "jsr", extended, profile.NoFlags},
	{0xBE, 3, "ldx", extended, profile.NoFlags},
	{0xBF, 3, "stx", extended, profile.NoFlags},
	{0xC0, 2, "subb", imm8, profile.NoFlags},
	{0xC1, 2, "cmpb", imm8, profile.NoFlags},
	{0xC2, 2, "sbcb", imm8, profile.NoFlags},
	{0xC3, 3, "addd", imm16, profile.NoFlags},
	{0xC4, 2, "andb", imm8, profile.NoFlags},
	{0xC5, 2, "bitb", imm8, profile.NoFlags},
	{0xC6, 2, "ldb", imm8, profile.NoFlags},
	{0xC8, 2, "eorb", imm8, profile.NoFlags},
	{0xC9, 2, "adcb", imm8, profile.NoFlags},
	{0xCA, 2, "orb", imm8, profile.NoFlags},
	{0xCB, 2, "addb", imm8, profile.NoFlags},
	{0xCC, 3, "ldd", imm16, profile.NoFlags},
	{0xCE, 3, "ldu", imm16, profile.NoFlags},
	{0xD0, 2, "subb", direct, profile.NoFlags},
	{0xD1, 2, "cmpb", direct, profile.NoFlags},
	{0xD2, 2, "sbcb", direct, profile.NoFlags},
	{0xD3, 2, "addd", direct, profile.NoFlags},
	{0xD4, 2, "andb", direct, profile.NoFlags},
	{0xD5, 2, "bitb", direct, profile.NoFlags},
	{0xD6, 2, "ldb", direct, profile.NoFlags},
	{0xD7, 2, "stb", direct, profile.NoFlags},
	{0xD8, 2, "eorb", direct, profile.NoFlags},
	{0xD9, 2, "adcb", direct, profile.NoFlags},
	{0xDA, 2, "orb", direct, profile.NoFlags},
	{0xDB, 2, "addb", direct, profile.NoFlags},
	{0xDC, 2, "ldd", direct, profile.NoFlags},
	{0xDD, 2, "std", direct, profile.NoFlags},
	{0xDE, 2, "ldu", direct, profile.NoFlags},
	{0xDF, 2, "stu", direct, profile.NoFlags},
	{0xE0, 2, "subb", indexed, profile.NoFlags},
	{0xE1, 2, "cmpb", indexed, profile.NoFlags},
	{0xE2, 2, "sbcb", indexed, profile.NoFlags},
	{0xE3, 2, "addd", indexed, profile.NoFlags},
	{0xE4, 2, "andb", indexed, profile.NoFlags},
	{0xE5, 2, "bitb", indexed, profile.NoFlags},
	{0xE6, 2, "ldb", indexed, profile.NoFlags},
	{0xE7, 2, "stb", indexed, profile.NoFlags},
	{0xE8, 2, "eorb", indexed, profile.NoFlags},
	{0xE9, 2, "adcb", indexed, profile.NoFlags},
	{0xEA, 2, "orb", indexed, profile.NoFlags},
	{0xEB, 2, "addb", indexed, profile.NoFlags},
	{0xEC, 2, "ldd", indexed, profile.NoFlags},
	{0xED, 2, "std", indexed, profile.NoFlags},
	{0xEE, 2, "ldu", indexed, profile.NoFlags},
	{0xEF, 2, "stu", indexed, profile.NoFlags},
	{0xF0, 3, "subb", extended, profile.NoFlags},
	{0xF1, 3, "cmpb", extended, profile.NoFlags},
	{0xF2, 3, "sbcb", extended, profile.NoFlags},
	{0xF3, 3, "addd", extended, profile.NoFlags},
	{0xF4, 3, "andb", extended, profile.NoFlags},
	{0xF5, 3, "bitb", extended, profile.NoFlags},
	{0xF6, 3, "ldb", extended, profile.NoFlags},
	{0xF7, 3, "stb", extended, profile.NoFlags},
	{0xF8, 3, "eorb", extended, profile.NoFlags},
	{0xF9, 3, "adcb", extended, profile.NoFlags},
	{0xFA, 3, "orb", extended, profile.NoFlags},
	{0xFB, 3, "addb", extended, profile.NoFlags},
	{0xFC, 3, "ldd", extended, profile.NoFlags},
	{0xFD, 3, "std", extended, profile.NoFlags},
	{0xFE, 3, "ldu", extended, profile.NoFlags},
	{0xFF, 3, "stu", extended, profile.NoFlags},
}

// page2 contains the opcodes following the lead-in byte $10.
var page2 = []opcode{
	{0x21, 4, "lbrn", rel16, profile.Relative},
	{0x22, 4, "lbhi", rel16, profile.Relative},
	{0x23, 4, "lbls", rel16, profile.Relative},
	{0x24, 4, "lbcc", rel16, profile.Relative},
	{0x25, 4, "lbcs", rel16, profile.Relative},
	{0x26, 4, "lbne", rel16, profile.Relative},
	{0x27, 4, "lbeq", rel16, profile.Relative},
	{0x28, 4, "lbvc", rel16, profile.Relative},
	{0x29, 4, "lbvs", rel16, profile.Relative},
	{0x2A, 4, "lbpl", rel16, profile.Relative},
	{0x2B, 4, "lbmi", rel16, profile.Relative},
	{0x2C, 4, "lbge", rel16, profile.Relative},
	{0x2D, 4, "lblt", rel16, profile.Relative},
	{0x2E, 4, "lbgt", rel16, profile.Relative},
	{0x2F, 4, "lble", rel16, profile.Relative},
	{0x3F, 2, "swi2", inherent, profile.NoFlags},
	{0x83, 4, "cmpd", imm16, profile.NoFlags},
	{0x8C, 4, "cmpy", imm16, profile.NoFlags},
	{0x8E, 4, "ldy", imm16, profile.NoFlags},
	{0x93, 3, "cmpd", direct, profile.NoFlags},
	{0x9C, 3, "cmpy", direct, profile.NoFlags},
	{0x9E, 3, "ldy", direct, profile.NoFlags},
	{0x9F, 3, "sty", direct, profile.NoFlags},
	{0xA3, 3, "cmpd", indexed, profile.NoFlags},
	{0xAC, 3, "cmpy", indexed, profile.NoFlags},
	{0xAE, 3, "ldy", indexed, profile.NoFlags},
	{0xAF, 3, "sty", indexed, profile.NoFlags},
	{0xB3, 4, "cmpd", extended, profile.NoFlags},
	{0xBC, 4, "cmpy", extended, profile.NoFlags},
	{0xBE, 4, "ldy", extended, profile.NoFlags},
	{0xBF, 4, "sty", extended, profile.NoFlags},
	{0xCE, 4, "lds", imm16, profile.NoFlags},
	{0xDE, 3, "lds", direct, profile.NoFlags},
	{0xDF, 3, "sts", direct, profile.NoFlags},
	{0xEE, 3, "lds", indexed, profile.NoFlags},
	{0xEF, 3, "sts", indexed, profile.NoFlags},
	{0xFE, 4, "lds", extended, profile.NoFlags},
	{0xFF, 4, "sts", extended, profile.NoFlags},
}

// page3 contains the opcodes following the lead-in byte $11.
var page3 = []opcode{
	{0x3F, 2, "swi3", inherent, profile.NoFlags},
	{0x83, 4, "cmpu", imm16, profile.NoFlags},
	{0x8C, 4, "cmps", imm16, profile.NoFlags},
	{0x93, 3, "cmpu", direct, profile.NoFlags},
	{0x9C, 3, "cmps", direct, profile.NoFlags},
	{0xA3, 3, "cmpu", indexed, profile.NoFlags},
	{0xAC, 3, "cmps", indexed, profile.NoFlags},
	{0xB3, 4, "cmpu", extended, profile.NoFlags},
	{0xBC, 4, "cmps", extended, profile.NoFlags},
}
