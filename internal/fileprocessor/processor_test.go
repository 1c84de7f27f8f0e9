package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/udisasm/internal/options"
)

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "game.asm", GenerateOutputFilename("game.com"))
	assert.Equal(t, "dir/rom.asm", GenerateOutputFilename("dir/rom.bin"))
	assert.Equal(t, "noext.asm", GenerateOutputFilename("noext"))
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.com", []byte{0x00})
	writeFile(t, dir, "b.com", []byte{0x00})
	writeFile(t, dir, "c.bin", []byte{0x00})

	opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.com")}}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	opts = &options.Program{Parameters: options.Parameters{Input: "single.bin"}}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"single.bin"}, files)

	opts = &options.Program{Parameters: options.Parameters{Batch: "[invalid"}}
	_, err = GetFilesToProcess(opts)
	assert.Error(t, err)
}

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "prog.com", []byte{0x00, 0x06, 0x2a, 0x0f})
	output := filepath.Join(dir, "prog.asm")

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: output},
		Flags:      options.Flags{Quiet: true, Verify: true},
	}
	assert.NoError(t, ProcessFile(context.Background(), logger, opts, options.Disassembler{NoList: true}))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, " .org   $0000\n nop\n mvi    b,$2A\n rrc\n", string(data))
}

func TestProcessFileOverwriteInput(t *testing.T) {
	logger := log.NewTestLogger(t)
	input := writeFile(t, t.TempDir(), "prog.asm", []byte{0x00})

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: input},
		Flags:      options.Flags{CPU: "8080", Quiet: true},
	}
	err := ProcessFile(context.Background(), logger, opts, options.Disassembler{CPU: "8080"})
	assert.ErrorContains(t, err, "overwrite")

	data, err := os.ReadFile(input)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00}, data)
}

func TestProcessFiles(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	var files []string
	for _, name := range []string{"a.ccc", "b.ccc", "c.ccc", "d.ccc"} {
		files = append(files, writeFile(t, dir, name, []byte{0x10, 0x83, 0x12, 0x34}))
	}

	opts := options.Program{Flags: options.Flags{Quiet: true, Jobs: 2}}
	assert.NoError(t, ProcessFiles(context.Background(), logger, opts, options.Disassembler{}, files))

	for _, file := range files {
		data, err := os.ReadFile(GenerateOutputFilename(file))
		assert.NoError(t, err)
		assert.Contains(t, string(data), "cmpd   #$1234")
	}
}

func TestProcessFilesPartialFailure(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	good := writeFile(t, dir, "good.com", []byte{0x00})
	unknown := writeFile(t, dir, "unknown.bin", []byte{0x00})

	opts := options.Program{Flags: options.Flags{Quiet: true, Jobs: 1}}
	err := ProcessFiles(context.Background(), logger, opts, options.Disassembler{}, []string{good, unknown})
	assert.ErrorContains(t, err, "unknown.bin")
	assert.False(t, strings.Contains(err.Error(), "good.com"))

	_, err = os.Stat(GenerateOutputFilename(good))
	assert.NoError(t, err)
}

func TestProcessFilesCancelled(t *testing.T) {
	logger := log.NewTestLogger(t)
	input := writeFile(t, t.TempDir(), "prog.com", []byte{0x00})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := options.Program{Flags: options.Flags{Quiet: true}}
	err := ProcessFiles(ctx, logger, opts, options.Disassembler{}, []string{input})
	assert.ErrorContains(t, err, "context canceled")
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}
