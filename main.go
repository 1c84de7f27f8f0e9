// Package main implements the main entry point for a profile driven 8-bit disassembler
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/udisasm/internal/cli"
	"github.com/retroenv/udisasm/internal/config"
	"github.com/retroenv/udisasm/internal/fileprocessor"
	"github.com/retroenv/udisasm/internal/options"
	"github.com/retroenv/udisasm/internal/profile"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, disasmOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	if opts.Schema || opts.Export {
		if err := printProfileData(opts, disasmOptions); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if opts.Batch != "" {
		err = fileprocessor.ProcessFiles(ctx, logger, opts, disasmOptions, files)
	} else {
		err = fileprocessor.ProcessFile(ctx, logger, opts, disasmOptions)
	}
	if err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

// printProfileData prints the profile file schema or the selected profile as JSON.
func printProfileData(opts options.Program, disasmOptions options.Disassembler) error {
	if opts.Schema {
		data, err := profile.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Println(string(data))
		return err
	}

	p, err := config.LoadProfile(opts.Profile, disasmOptions.CPU)
	if err != nil {
		return err
	}
	return profile.WriteJSON(os.Stdout, p)
}
