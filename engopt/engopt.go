// Package engopt loads the engine's tunable options from an optional TOML
// file, per SPEC_FULL.md §10.2.
//
// Grounded on `github.com/BurntSushi/toml`, a dependency this task's
// retrieval pack shows in both frankkopp-FrankyGo's and Mgrdich-TermChess's
// go.mod files (see other_examples/manifests/) even though neither of the
// candidate teacher repos reads any configuration file at all — chego is a
// library with no CLI surface of its own.
package engopt

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable the UCI binary exposes, defaulting to values
// grounded on original_source/src/engine_constants.rs's HASH_ENTRY_MB and
// spec.md §5's single-threaded mandate.
type Config struct {
	// HashSizeMB sizes the transposition table (spec.md §3.7's "fixed
	// number of entries"); default matches original_source's HASH_ENTRY_MB.
	HashSizeMB int `toml:"hash_size_mb"`

	// Threads exists only to be validated and rejected if set above 1:
	// spec.md §5's single-threaded Non-goal is enforced at this
	// boundary, not silently ignored.
	Threads int `toml:"threads"`

	// UseSEE selects quiescence's capture filter: static exchange
	// evaluation when true, plain MVV/LVA-ordered delta pruning when
	// false (SPEC_FULL.md §9 Open Question 2).
	UseSEE bool `toml:"use_see"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// Default returns the engine's built-in option values, used when no config
// file is given and as the base any loaded file is merged onto.
func Default() Config {
	return Config{
		HashSizeMB: 128,
		Threads:    1,
		UseSEE:     true,
		LogLevel:   "info",
		LogFile:    "",
	}
}

// Load reads path as TOML into a copy of Default, returning an error rather
// than panicking since a malformed config file must not crash engine
// startup (spec.md §7).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("engopt: decoding %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations spec.md's Non-goals forbid.
func (c Config) Validate() error {
	if c.Threads > 1 {
		return fmt.Errorf("engopt: threads=%d not supported, engine is single-threaded", c.Threads)
	}
	if c.Threads < 1 {
		return fmt.Errorf("engopt: threads must be at least 1, got %d", c.Threads)
	}
	if c.HashSizeMB <= 0 {
		return fmt.Errorf("engopt: hash_size_mb must be positive, got %d", c.HashSizeMB)
	}
	return nil
}
