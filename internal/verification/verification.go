// Package verification verifies that the disassembled records recreate the input.
package verification

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/udisasm/internal/disasm"
)

// VerifyOutput verifies that the records cover the input window exactly, each
// record starting at the address following the previous one.
func VerifyOutput(logger *log.Logger, input []byte, start uint16, records []disasm.Record) error {
	output := make([]byte, 0, len(input))
	address := start

	for _, rec := range records {
		if rec.Address != address {
			return fmt.Errorf("record address mismatch, expected $%04X but got $%04X", address, rec.Address)
		}
		output = append(output, rec.Bytes...)
		address += uint16(rec.Len())
	}

	if err := checkBufferEqual(logger, input, output); err != nil {
		return fmt.Errorf("segment mismatch: %w", err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
