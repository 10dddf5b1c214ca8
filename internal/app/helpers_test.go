package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fakeRunner records launches and returns scripted exit codes.
type fakeRunner struct {
	calls [][]string
	codes map[string]int
	errs  map[string]error
	// onRun runs before the exit code is returned, e.g. to create the executable.
	onRun func(argv []string)
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	argv := append([]string{name}, args...)
	f.calls = append(f.calls, argv)
	if f.onRun != nil {
		f.onRun(argv)
	}
	if err := f.errs[name]; err != nil {
		return 127, err
	}
	return f.codes[name], nil
}

// recordingReporter captures progress notices.
type recordingReporter struct {
	running [][]string
	skipped []string
}

func (r *recordingReporter) Running(argv []string)     { r.running = append(r.running, argv) }
func (r *recordingReporter) SkippedCompile(exe string) { r.skipped = append(r.skipped, exe) }

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	return path
}

func setModTime(t *testing.T, path string, mt time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mt, mt); err != nil {
		t.Fatalf("failed to set mtime: %v", err)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
}
