// Package config handles application configuration and setup
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/udisasm/internal/arch"
	"github.com/retroenv/udisasm/internal/profile"
)

// ErrNoProfile is returned when neither a CPU type nor a profile file was selected.
var ErrNoProfile = errors.New("no CPU type or profile file selected")

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// LoadProfile returns the processor profile to disassemble with. A profile file
// takes precedence over the built-in profile of the CPU type.
func LoadProfile(profileFile, cpu string) (*profile.Profile, error) {
	if profileFile != "" {
		return loadProfileFile(profileFile)
	}
	if cpu == "" {
		return nil, ErrNoProfile
	}

	p, err := arch.Lookup(cpu)
	if err != nil {
		return nil, fmt.Errorf("selecting CPU: %w", err)
	}
	return p, nil
}

func loadProfileFile(name string) (*profile.Profile, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening profile file %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	p, err := profile.LoadJSON(file)
	if err != nil {
		return nil, fmt.Errorf("loading profile file %s: %w", name, err)
	}
	return p, nil
}
