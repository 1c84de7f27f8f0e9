package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/udisasm/internal/config"
	"github.com/retroenv/udisasm/internal/loader"
	"github.com/retroenv/udisasm/internal/options"
)

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	tmpFile := createTempFile(t, "prog.com", []byte{0x00, 0x06, 0x2a, 0x0f})
	opts := options.Program{
		Parameters: options.Parameters{Input: tmpFile},
		Flags:      options.Flags{Address: 0x1000, Verify: true, Quiet: true},
	}

	var buf bytes.Buffer
	result, err := p.Execute(context.Background(), opts, options.Disassembler{}, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "8080", result.Profile.Name())
	assert.Len(t, result.Records, 3)
	assert.Equal(t, 0, result.Undecodable)

	expected := "1000            .org   $1000\n" +
		"1000  00        nop\n" +
		"1001  06 2A     mvi    b,$2A\n" +
		"1003  0F        rrc\n" +
		"1004            end\n"
	assert.Equal(t, expected, buf.String())
}

func TestExecuteWithInput(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	tests := []struct {
		name       string
		data       []byte
		opts       options.Program
		disasmOpts options.Disassembler
		lines      []string
	}{
		{
			name:       "6809 extended opcode",
			data:       []byte{0x10, 0x83, 0x12, 0x34},
			disasmOpts: options.Disassembler{CPU: "6809"},
			lines:      []string{"0000  10 83 12 34  cmpd   #$1234"},
		},
		{
			name:       "relative branch with window",
			data:       []byte{0xff, 0xff, 0x20, 0xfe},
			opts:       options.Program{Flags: options.Flags{Address: 0x2000, Offset: 2}},
			disasmOpts: options.Disassembler{CPU: "6801"},
			lines:      []string{"2002            .org   $2002", "2002  20 FE     bra    $2002"},
		},
		{
			name:       "undecodable byte",
			data:       []byte{0x00},
			disasmOpts: options.Disassembler{CPU: "6801", NoList: true},
			lines:      []string{" .byte  $00"},
		},
		{
			name:       "undocumented opcode allowed",
			data:       []byte{0x08},
			disasmOpts: options.Disassembler{CPU: "8080", NoList: true, Undocumented: true},
			lines:      []string{" nop"},
		},
		{
			name:       "invalid opcode shown",
			data:       []byte{0x08},
			disasmOpts: options.Disassembler{CPU: "8080", NoList: true, Invalid: true},
			lines:      []string{" ???"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Quiet = true
			tt.opts.Verify = true
			input, err := loader.New().LoadFromBytes(tt.data, tt.opts)
			assert.NoError(t, err)

			var buf bytes.Buffer
			_, err = p.ExecuteWithInput(context.Background(), input, tt.opts, tt.disasmOpts, &buf)
			assert.NoError(t, err)
			for _, line := range tt.lines {
				assert.Contains(t, buf.String(), line+"\n")
			}
		})
	}
}

func TestExecuteWithProfileFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	profileFile := createTempFile(t, "tiny.json", []byte(`{
  "name": "tiny",
  "maxInstructionLength": 2,
  "modes": [{"name": "imm", "template": "#${0:02X}"}],
  "opcodes": [{"opcode": 1, "length": 2, "mnemonic": "ld", "mode": "imm"}]
}`))
	tmpFile := createTempFile(t, "prog.bin", []byte{0x01, 0x7f})
	opts := options.Program{
		Parameters:  options.Parameters{Input: tmpFile, Profile: profileFile},
		Flags:       options.Flags{Quiet: true},
		OutputFlags: options.OutputFlags{NoList: true},
	}

	var buf bytes.Buffer
	result, err := p.Execute(context.Background(), opts, options.Disassembler{NoList: true}, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "tiny", result.Profile.Name())
	assert.Equal(t, " .org   $0000\n ld     #$7F\n", buf.String())
}

func TestExecuteErrors(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	t.Run("cpu not detected", func(t *testing.T) {
		tmpFile := createTempFile(t, "prog.bin", []byte{0x00})
		opts := options.Program{Parameters: options.Parameters{Input: tmpFile}}

		_, err := p.Execute(context.Background(), opts, options.Disassembler{}, &bytes.Buffer{})
		assert.True(t, errors.Is(err, config.ErrNoProfile))
	})

	t.Run("window out of range", func(t *testing.T) {
		tmpFile := createTempFile(t, "prog.com", []byte{0x00})
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
			Flags:      options.Flags{Offset: 2},
		}

		_, err := p.Execute(context.Background(), opts, options.Disassembler{}, &bytes.Buffer{})
		assert.True(t, errors.Is(err, loader.ErrRange))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		input, err := loader.New().LoadFromBytes([]byte{0x00}, options.Program{})
		assert.NoError(t, err)

		_, err = p.ExecuteWithInput(ctx, input, options.Program{}, options.Disassembler{CPU: "8080"}, &bytes.Buffer{})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestExecuteLargeInput(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	data := bytes.Repeat([]byte{0x00}, 3*cancelCheckInterval)
	input, err := loader.New().LoadFromBytes(data, options.Program{Flags: options.Flags{Verify: true}})
	assert.NoError(t, err)

	var buf bytes.Buffer
	opts := options.Program{Flags: options.Flags{Quiet: true, Verify: true}}
	result, err := p.ExecuteWithInput(context.Background(), input, opts, options.Disassembler{CPU: "8080"}, &buf)
	assert.NoError(t, err)
	assert.Len(t, result.Records, len(data))
	assert.Equal(t, len(data)+2, strings.Count(buf.String(), "\n"))
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
