package toolchain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/tacogips/cconv/internal/debug"
)

// Staleness describes the timestamps behind a rebuild decision.
type Staleness struct {
	// SourceModTime is the source file's modification time.
	SourceModTime time.Time
	// ExecutableModTime is zero when the executable does not exist.
	ExecutableModTime time.Time
	// ExecutableExists reports whether the executable was found.
	ExecutableExists bool
}

// UpToDate reports whether compilation can be skipped: the executable exists
// and is not older than the source. Equal timestamps count as up to date, so
// an edit within one filesystem timestamp tick of the last build is missed.
func (s Staleness) UpToDate() bool {
	return s.ExecutableExists && !s.ExecutableModTime.Before(s.SourceModTime)
}

// CheckStaleness stats src and exe.
func CheckStaleness(src, exe string) (Staleness, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return Staleness{}, fmt.Errorf("failed to stat source %s: %w", src, err)
	}

	st := Staleness{SourceModTime: srcInfo.ModTime()}

	exeInfo, err := os.Stat(exe)
	switch {
	case err == nil:
		st.ExecutableExists = true
		st.ExecutableModTime = exeInfo.ModTime()
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Staleness{}, fmt.Errorf("failed to stat executable %s: %w", exe, err)
	}

	debug.DebugValue("source mtime", st.SourceModTime)
	debug.DebugValue("executable mtime", st.ExecutableModTime)
	return st, nil
}
