package madfa

import "github.com/ciuradfa/madfa/internal/transition"

// Layout selects which of the two on-disk transition-word encodings an
// automaton uses: List (linear sibling run, last-flag terminated) or Tree
// (implicit complete binary search tree over attr).
type Layout = transition.Layout

const (
	// List is the linear, last-flag-terminated sibling encoding. Smaller
	// per-state overhead for narrow alphabets; lookup is linear in the
	// number of siblings.
	List = transition.List
	// Tree is the complete-binary-search-tree sibling encoding.
	// Lookup is logarithmic in the number of siblings at the cost of one
	// extra bit per transition.
	Tree = transition.Tree
)

// Config controls automaton construction.
//
// Example:
//
//	config := madfa.DefaultConfig()
//	config.Layout = madfa.Tree
//	a, err := madfa.BuildFromReader(r, config)
type Config struct {
	// Layout selects the on-disk transition encoding.
	// Default: List
	Layout Layout

	// MaxStrLen bounds the length in bytes of any single lexicon entry.
	// Default: 300
	MaxStrLen int

	// HashTableHint sizes the construction-time register's bucket table.
	// Larger values reduce hash collisions for large lexicons at the cost
	// of memory during construction only; it has no effect on the
	// finished automaton.
	// Default: 1 << 20
	HashTableHint int

	// InitialArenaWords hints the arena's starting capacity, in words.
	// Purely a preallocation hint.
	// Default: 4096
	InitialArenaWords int

	// PrintStatistics asks the caller to report construction statistics.
	// The library itself never logs; cmd/madfa reads this field to decide
	// whether to print its statistics line after a build.
	// Default: true
	PrintStatistics bool
}

// DefaultConfig returns a configuration with sensible defaults for
// small-to-medium lexicons.
func DefaultConfig() Config {
	return Config{
		Layout:            List,
		MaxStrLen:         300,
		HashTableHint:     1 << 20,
		InitialArenaWords: 4096,
		PrintStatistics:   true,
	}
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "madfa: invalid config: " + e.Field + ": " + e.Message
}

// Validate checks that c's fields are within usable ranges.
func (c Config) Validate() error {
	if c.Layout != List && c.Layout != Tree {
		return &ConfigError{Field: "Layout", Message: "must be List or Tree"}
	}
	if c.MaxStrLen < 1 {
		return &ConfigError{Field: "MaxStrLen", Message: "must be at least 1"}
	}
	if c.HashTableHint < 1 {
		return &ConfigError{Field: "HashTableHint", Message: "must be at least 1"}
	}
	if c.InitialArenaWords < 1 {
		return &ConfigError{Field: "InitialArenaWords", Message: "must be at least 1"}
	}
	return nil
}
