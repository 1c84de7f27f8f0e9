// Package arch contains the registry of the built-in processor profiles.
// Each architecture package provides the tables of one instruction set, the
// profiles are built on first use and shared afterwards.
package arch

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/retroenv/udisasm/internal/arch/i8080"
	"github.com/retroenv/udisasm/internal/arch/m6801"
	"github.com/retroenv/udisasm/internal/arch/m6809"
	"github.com/retroenv/udisasm/internal/profile"
)

// ErrUnknownArchitecture is returned for an architecture that has no built-in profile.
var ErrUnknownArchitecture = errors.New("unknown architecture")

var profiles = map[string]func() (*profile.Profile, error){
	i8080.Name: sync.OnceValues(i8080.New),
	m6801.Name: sync.OnceValues(m6801.New),
	m6809.Name: sync.OnceValues(m6809.New),
}

// aliases maps alternative names to profile names.
var aliases = map[string]string{
	"i8080":     i8080.Name,
	"6803":      m6801.Name,
	"6801/6803": m6801.Name,
	"m6801":     m6801.Name,
	"m6809":     m6809.Name,
}

// Names returns the sorted names of the built-in profiles.
func Names() []string {
	return slices.Sorted(maps.Keys(profiles))
}

// Lookup returns the built-in profile of the given architecture name.
func Lookup(name string) (*profile.Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	constructor, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w '%s', supported: %s", ErrUnknownArchitecture, name, strings.Join(Names(), ", "))
	}

	p, err := constructor()
	if err != nil {
		return nil, fmt.Errorf("building profile %s: %w", name, err)
	}
	return p, nil
}
