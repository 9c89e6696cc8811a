// Package config loads the core's configuration from a TOML file, falling
// back to the fixed cache geometry and default memory size when none is
// given.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/sarchlab/remoulade/timing/cache"
)

// CacheConfig describes one cache's geometry. The instruction and data
// caches are fixed-size (256 sets, 4-way, 16-instruction/64-byte lines);
// this struct exists so a TOML file can assert that expectation explicitly
// and so Load can reject a file written against a different geometry,
// rather than silently ignoring it.
type CacheConfig struct {
	Sets     int `toml:"sets"`
	Ways     int `toml:"ways"`
	LineSize int `toml:"line_size"`
}

// CoreConfig is the core's full configuration.
type CoreConfig struct {
	MemSizeBytes     uint32      `toml:"mem_size_bytes"`
	InstructionCache CacheConfig `toml:"instruction_cache"`
	DataCache        CacheConfig `toml:"data_cache"`
}

// Default returns the configuration the core always runs with unless a
// file overrides it: 1 MiB of memory and the fixed cache geometry.
func Default() CoreConfig {
	return CoreConfig{
		MemSizeBytes: 1 << 20,
		InstructionCache: CacheConfig{
			Sets:     cache.Sets,
			Ways:     cache.Ways,
			LineSize: cache.InstructionBlockSize * 4,
		},
		DataCache: CacheConfig{
			Sets:     cache.Sets,
			Ways:     cache.Ways,
			LineSize: cache.DataBlockSize,
		},
	}
}

// Load reads a CoreConfig from a TOML file at path, filling any field left
// unset in the file with Default's value, then validates that the cache
// geometry fields (if given) match the fixed geometry the cache package
// actually implements.
func Load(path string) (CoreConfig, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return CoreConfig{}, fmt.Errorf("load config %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return CoreConfig{}, fmt.Errorf("load config %q: %w", path, err)
	}

	return cfg, nil
}

func (c CoreConfig) validate() error {
	want := Default()
	if c.InstructionCache != want.InstructionCache {
		return fmt.Errorf("instruction cache geometry %+v does not match the fixed %+v",
			c.InstructionCache, want.InstructionCache)
	}
	if c.DataCache != want.DataCache {
		return fmt.Errorf("data cache geometry %+v does not match the fixed %+v",
			c.DataCache, want.DataCache)
	}
	return nil
}
