// Package options contains the program options.
package options

import "strings"

// Parameters contains file path options.
type Parameters struct {
	Input   string `flag:"i" usage:"input binary file"`
	Output  string `flag:"o" usage:"output .asm file (default: stdout)"`
	Profile string `flag:"p" usage:"JSON processor profile file to use instead of a built-in CPU"`
	Batch   string `flag:"batch" usage:"batch process files matching pattern (e.g. *.bin)"`
}

// Flags contains behavior options.
type Flags struct {
	CPU          string `flag:"c" usage:"CPU type: 8080, 6801, 6809 (default: auto-detect)"`
	Address      int    `flag:"a" usage:"start address of the first disassembled byte"`
	Offset       int    `flag:"offset" usage:"file offset to start disassembling at"`
	Length       int    `flag:"length" usage:"number of bytes to disassemble (default: to end of file)"`
	Undocumented bool   `flag:"u" usage:"allow undocumented opcodes"`
	Verify       bool   `flag:"verify" usage:"verify that the instructions cover the input exactly"`
	Jobs         int    `flag:"j" usage:"number of files to process in parallel in batch mode"`
	Schema       bool   `flag:"schema" usage:"print the JSON schema of profile files and exit"`
	Export       bool   `flag:"export" usage:"print the selected CPU profile as JSON and exit"`
	Debug        bool   `flag:"debug" usage:"enable debug logging"`
	Quiet        bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoList  bool `flag:"n" usage:"do not list addresses and instruction bytes"`
	Invalid bool `flag:"invalid" usage:"show invalid opcodes as ??? instead of .byte constants"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	CPU          string // built-in CPU profile name
	Undocumented bool   // decode opcodes flagged as undocumented
	NoList       bool   // assembler ready output without addresses and bytes
	Invalid      bool   // output undecodable bytes as ??? instead of .byte
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler(cpu string) Disassembler {
	return Disassembler{
		CPU: strings.ToLower(cpu),
	}
}
