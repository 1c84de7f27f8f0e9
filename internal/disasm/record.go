package disasm

import "github.com/retroenv/udisasm/internal/profile"

// Unmatched is the mnemonic of records that could not be decoded.
const Unmatched = "???"

// Status defines the decoding result of a record.
type Status uint8

// decoding results.
const (
	Decoded            Status = iota // instruction decoded from the opcode table
	UnmatchedOpcode                  // no table entry for the byte(s)
	TruncatedOperand                 // declared length exceeds the remaining bytes
	InsufficientBytes                // lead-in byte without a following byte
	UndocumentedOpcode               // undocumented opcode while those are disabled
)

var statusNames = [...]string{
	Decoded:            "decoded",
	UnmatchedOpcode:    "unmatched opcode",
	TruncatedOperand:   "truncated operand",
	InsufficientBytes:  "insufficient bytes",
	UndocumentedOpcode: "undocumented opcode",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Record is one decoded or undecodable unit of the byte stream.
type Record struct {
	Address   uint16 // program counter at the start of the instruction
	Bytes     []byte // bytes consumed, 1 byte for undecodable units
	Mnemonic  string
	Operand   string // formatted operand, empty for modes without operand
	Target    uint16 // resolved target of relative instructions
	HasTarget bool
	Status    Status

	Opcode *profile.Opcode // matched opcode, nil for undecodable units
}

// Decoded returns whether the record contains a decoded instruction.
func (r Record) Decoded() bool {
	return r.Status == Decoded
}

// Len returns the number of bytes the record covers.
func (r Record) Len() int {
	return len(r.Bytes)
}
