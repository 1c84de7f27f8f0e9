package disasm

import "github.com/retroenv/udisasm/internal/profile"

// Match is the result of matching the bytes at an offset against an opcode table.
type Match struct {
	Opcode   *profile.Opcode // nil if no opcode matched
	Status   Status
	Consumed int // bytes read to determine the opcode key
}

// MatchAt identifies the opcode at the given offset of data. The offset has to be
// within data. Lead-in bytes are combined with the following byte into a 2 byte key,
// all other bytes are looked up directly. Matching never reads beyond data.
func MatchAt(p *profile.Profile, data []byte, offset int) Match {
	first := data[offset]

	var (
		op *profile.Opcode
		ok bool
	)

	if p.IsLeadIn(first) {
		if offset+1 >= len(data) {
			return Match{Status: InsufficientBytes, Consumed: 1}
		}
		op, ok = p.LookupExtended(first, data[offset+1])
		if !ok {
			return Match{Status: UnmatchedOpcode, Consumed: 2}
		}
	} else {
		op, ok = p.Lookup(first)
		if !ok {
			return Match{Status: UnmatchedOpcode, Consumed: 1}
		}
	}

	if offset+op.Length > len(data) {
		return Match{Opcode: op, Status: TruncatedOperand, Consumed: op.KeyWidth()}
	}
	return Match{Opcode: op, Status: Decoded, Consumed: op.KeyWidth()}
}
