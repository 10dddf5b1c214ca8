package toolchain

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNoExtension is returned when a source path has no extension to strip,
// which would make the executable path collide with the source.
var ErrNoExtension = errors.New("source file has no extension")

// ExecutablePath strips the final extension from src. A base name that is
// only a leading-dot name (".bashrc") has no extension and is returned as is.
func ExecutablePath(src string) string {
	dir, base := filepath.Split(src)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 || idx == len(base)-1 {
		return src
	}
	return dir + base[:idx]
}

// ResolveExecutable returns the executable path for src, failing when it
// would be the source itself.
func ResolveExecutable(src string) (string, error) {
	exe := ExecutablePath(src)
	if exe == src {
		return "", ErrNoExtension
	}
	return exe, nil
}
