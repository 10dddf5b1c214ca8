package generator

import (
	"os"
	"path/filepath"

	"github.com/tacogips/cconv/internal/debug"
)

// Writer writes generated documents to the filesystem.
type Writer interface {
	// WriteFile writes content to path, replacing any existing file.
	WriteFile(path string, content []byte) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer with atomic temp-file-and-rename writes.
type FileWriter struct {
	mode os.FileMode
}

// NewFileWriter creates a FileWriter that creates files with mode 0644.
func NewFileWriter() Writer {
	return &FileWriter{mode: 0644}
}

// WriteFile writes content to path. Parent directories are created as needed.
// The content lands in path + ".tmp" first and is renamed into place.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	if path == "" {
		return newGeneratorError(GeneratorPathError, "output path cannot be empty", path, nil)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return newGeneratorError(GeneratorPathError, "output path is a directory", path, nil)
	}

	debug.Debug("[generator] Writing file: %s (size: %d bytes)", path, len(content))

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return newGeneratorError(GeneratorWriteFailed, "failed to create parent directory", path, err)
		}
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.mode)
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to create temporary file", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed, "failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed, "failed to close file", path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed, "failed to rename temporary file", path, err)
	}

	debug.Debug("[generator] File written successfully: %s", path)
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
