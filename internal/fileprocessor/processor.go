// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/udisasm/internal/options"
	"github.com/retroenv/udisasm/internal/pipeline"
	"golang.org/x/sync/errgroup"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	if opts.Output != "" && filepath.Clean(opts.Output) == filepath.Clean(opts.Input) {
		return fmt.Errorf("output file %s would overwrite the input file", opts.Output)
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok && writer != os.Stdout {
			_ = closer.Close()
		}
	}()

	pipe := pipeline.New(logger)
	if _, err := pipe.Execute(ctx, opts, disasmOptions, writer); err != nil {
		return err
	}
	return nil
}

// ProcessFiles processes all files in parallel, limited to the configured number of jobs.
// Each file is written to an output file named after the input file. Failing files
// are logged and do not stop the processing of the other files.
func ProcessFiles(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler, files []string) error {

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(opts.Jobs, 1))

	errs := make([]error, len(files))
	for i, file := range files {
		fileOpts := opts
		fileOpts.Input = file
		fileOpts.Output = GenerateOutputFilename(file)

		group.Go(func() error {
			err := ProcessFile(ctx, logger, fileOpts, disasmOptions)
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				return err
			}
			if err != nil {
				logger.Error("Disassembling failed", log.String("file", file), log.Err(err))
				errs[i] = fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("udisasm", log.String("version", buildinfo.Version(version, commit, date)))
}
