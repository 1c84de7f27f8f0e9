// Package detector handles CPU type detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/udisasm/internal/arch/i8080"
	"github.com/retroenv/udisasm/internal/arch/m6801"
	"github.com/retroenv/udisasm/internal/arch/m6809"
	"github.com/retroenv/udisasm/internal/options"
)

// Detector handles CPU type detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new CPU detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the CPU type from options or file auto-detection.
// It first checks if a CPU is explicitly specified in options, otherwise
// attempts to detect the CPU from the input filename extension. An empty
// result means that the CPU could not be detected.
func (d *Detector) Detect(opts options.Program) string {
	if opts.CPU != "" {
		return opts.CPU
	}

	cpu := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected CPU",
		log.String("cpu", cpu),
		log.String("file", opts.Input))
	return cpu
}

// detectFromFile determines the CPU type based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".com", ".8080":
		// CP/M executables
		return i8080.Name
	case ".6800", ".6801", ".6803":
		return m6801.Name
	case ".ccc", ".6809":
		// Color Computer cartridge images
		return m6809.Name
	default:
		return ""
	}
}
