package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/cconv/internal/toolchain"
)

// resolveSource makes path absolute, checks that it exists and derives the
// executable path.
func resolveSource(path string) (src, exe string, err error) {
	src, err = filepath.Abs(path)
	if err != nil {
		return "", "", NewInvalidSourceError(path, err)
	}

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", NewSourceNotFoundError(src)
		}
		return "", "", NewInvalidSourceError(src, err)
	}
	if info.IsDir() {
		return "", "", NewInvalidSourceError(src, errors.New("is a directory"))
	}

	exe, err = toolchain.ResolveExecutable(src)
	if err != nil {
		return "", "", NewInvalidSourceError(src, err)
	}
	return src, exe, nil
}
