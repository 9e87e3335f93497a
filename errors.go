package madfa

import (
	"errors"
	"fmt"

	"github.com/ciuradfa/madfa/internal/arena"
	"github.com/ciuradfa/madfa/internal/build"
	"github.com/ciuradfa/madfa/internal/lines"
	"github.com/ciuradfa/madfa/internal/persist"
)

// Sentinel errors returned (possibly wrapped) by this package's
// construction and loading operations. Use errors.Is to test for them.
var (
	// ErrUnsorted indicates the lexicon input was not in ascending byte
	// order. An exact repeat of the previous entry is not an error.
	ErrUnsorted = build.ErrUnsorted
	// ErrTooLong indicates a lexicon line exceeded Config.MaxStrLen.
	ErrTooLong = lines.ErrTooLong
	// ErrTooLarge indicates the automaton grew past its layout's
	// addressable state count.
	ErrTooLarge = arena.ErrTooLarge
	// ErrCorrupt indicates a loaded file failed structural validation.
	ErrCorrupt = persist.ErrCorrupt
	// ErrIO marks a failure to open or create a file in BuildFromFile,
	// SaveFile, and LoadFile. Read and write failures on an already open
	// stream are not marked with ErrIO: they wrap the underlying error
	// (BuildFromReader's read failures wrap internal/lines.ErrIO instead).
	ErrIO = errors.New("madfa: I/O error")
)

// BuildError reports a failure while adding a specific input line during
// construction.
type BuildError struct {
	// Line is the 1-based ordinal of the offending input line.
	Line int
	Err  error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("madfa: line %d: %v", e.Line, e.Err)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *BuildError) Unwrap() error { return e.Err }

// LoadError reports a failure while loading a persisted automaton.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("madfa: load %q: %v", e.Path, e.Err)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *LoadError) Unwrap() error { return e.Err }
