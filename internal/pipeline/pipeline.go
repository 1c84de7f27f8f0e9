// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/udisasm/internal/config"
	"github.com/retroenv/udisasm/internal/detector"
	"github.com/retroenv/udisasm/internal/disasm"
	"github.com/retroenv/udisasm/internal/loader"
	"github.com/retroenv/udisasm/internal/options"
	"github.com/retroenv/udisasm/internal/profile"
	"github.com/retroenv/udisasm/internal/verification"
	"github.com/retroenv/udisasm/internal/writer"
)

// number of records decoded between checks for a cancelled context
const cancelCheckInterval = 4096

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// Result contains the outcome of a pipeline run.
type Result struct {
	Profile     *profile.Profile
	Input       *loader.Input
	Records     []disasm.Record
	Undecodable int // number of records that could not be decoded
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, out io.Writer) (*Result, error) {
	if opts.Profile == "" {
		disasmOpts.CPU = p.detector.Detect(opts)
	}

	input, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}

	return p.ExecuteWithInput(ctx, input, opts, disasmOpts, out)
}

// ExecuteWithInput runs the disassembly pipeline with a pre-loaded input.
// This is useful for testing and programmatic usage where the input is already in memory.
func (p *Pipeline) ExecuteWithInput(ctx context.Context, input *loader.Input, opts options.Program,
	disasmOpts options.Disassembler, out io.Writer) (*Result, error) {

	prof, err := config.LoadProfile(opts.Profile, disasmOpts.CPU)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	dis := disasm.New(p.logger, prof, disasm.Options{
		Undocumented: disasmOpts.Undocumented,
	})

	p.printInfo(opts, prof, input)

	result, err := p.runDisassembly(ctx, dis, input)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	w := writer.New(out, writer.Options{
		MaxInstructionLength: prof.MaxInstructionLength(),
		NoList:               disasmOpts.NoList,
		Invalid:              disasmOpts.Invalid,
	})
	if err := w.Write(input.Start(), result.Records); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}

	// Verify output (if requested)
	if opts.Verify {
		if err := verification.VerifyOutput(p.logger, input.Window(), input.Start(), result.Records); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return result, nil
}

// runDisassembly decodes the input window and stops early when the context is cancelled.
func (p *Pipeline) runDisassembly(ctx context.Context, dis *disasm.Disassembler, input *loader.Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	it, err := dis.Iterate(input.Data, input.Origin, input.Range)
	if err != nil {
		return nil, fmt.Errorf("creating iterator: %w", err)
	}

	result := &Result{
		Profile: dis.Profile(),
		Input:   input,
	}

	for it.Next() {
		rec := it.Record()
		result.Records = append(result.Records, rec)
		if !rec.Decoded() {
			result.Undecodable++
		}

		if len(result.Records)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug("Disassembled input",
		log.Int("records", len(result.Records)),
		log.Int("undecodable", result.Undecodable))
	return result, nil
}

// printInfo prints information about the input being processed.
func (p *Pipeline) printInfo(opts options.Program, prof *profile.Profile, input *loader.Input) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing binary",
		log.String("file", opts.Input),
		log.String("cpu", prof.Name()),
		log.Int("size", len(input.Window())),
		log.Hex("address", input.Start()),
	)
}
