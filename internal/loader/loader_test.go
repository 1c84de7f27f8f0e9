package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/udisasm/internal/disasm"
	"github.com/retroenv/udisasm/internal/options"
)

func TestLoad(t *testing.T) {
	t.Run("load binary file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x01, 0x02, 0x03, 0x04})

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
			Flags:      options.Flags{Address: 0x100},
		}

		input, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, input.Data)
		assert.Equal(t, uint16(0x100), input.Origin)
		assert.Equal(t, disasm.Range{}, input.Range)
		assert.Equal(t, input.Data, input.Window())
		assert.Equal(t, uint16(0x100), input.Start())
	})

	t.Run("load empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		input, err := New().Load(options.Program{Parameters: options.Parameters{Input: tmpFile}})
		assert.NoError(t, err)
		assert.Len(t, input.Window(), 0)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: "/nonexistent/file.bin"},
		}

		_, err := loader.Load(opts)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestLoadFromBytes(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}

	t.Run("window with offset and length", func(t *testing.T) {
		opts := options.Program{Flags: options.Flags{Address: 0x8000, Offset: 2, Length: 3}}

		input, err := New().LoadFromBytes(data, opts)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x02, 0x03, 0x04}, input.Window())
		assert.Equal(t, uint16(0x8002), input.Start())
		assert.Equal(t, disasm.Range{Offset: 2, Length: 3}, input.Range)
	})

	t.Run("window to end of data", func(t *testing.T) {
		opts := options.Program{Flags: options.Flags{Offset: 4}}

		input, err := New().LoadFromBytes(data, opts)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x04, 0x05}, input.Window())
	})

	t.Run("start address wraps", func(t *testing.T) {
		opts := options.Program{Flags: options.Flags{Address: 0xffff, Offset: 2}}

		input, err := New().LoadFromBytes(data, opts)
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x0001), input.Start())
	})

	t.Run("errors", func(t *testing.T) {
		for _, flags := range []options.Flags{
			{Offset: 7},
			{Offset: -1},
			{Offset: 4, Length: 3},
			{Length: -2},
		} {
			_, err := New().LoadFromBytes(data, options.Program{Flags: flags})
			assert.True(t, errors.Is(err, ErrRange))
		}
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.bin")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
