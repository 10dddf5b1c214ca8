package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriter(t *testing.T) {
	w := NewFileWriter()

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "main.c")

		if err := w.WriteFile(path, []byte("int main(void) {}\n")); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(data) != "int main(void) {}\n" {
			t.Errorf("unexpected content: %q", data)
		}
		if !w.Exists(path) {
			t.Error("Exists should report written file")
		}
		if w.Exists(path + ".tmp") {
			t.Error("temporary file should be renamed away")
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "main.c")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		if err := w.WriteFile(path, []byte("new")); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("expected overwrite, got %q", data)
		}
	})

	t.Run("rejects directory target", func(t *testing.T) {
		dir := t.TempDir()

		err := w.WriteFile(dir, []byte("x"))
		var genErr *GeneratorError
		if !errors.As(err, &genErr) {
			t.Fatalf("expected GeneratorError, got %v", err)
		}
		if genErr.Type != GeneratorPathError {
			t.Errorf("expected GeneratorPathError, got %v", genErr.Type)
		}
	})

	t.Run("rejects empty path", func(t *testing.T) {
		if err := w.WriteFile("", []byte("x")); err == nil {
			t.Fatal("expected error for empty path")
		}
	})
}
