package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/tacogips/cconv/internal/process"
)

// requireCompiler skips tests that need a real C compiler.
func requireCompiler(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping compiler test in short mode")
	}
	if _, err := exec.LookPath("gcc"); err != nil {
		t.Skip("gcc not available")
	}
}

// copyFixtureToTemp copies a fixture program into tempDir and returns its path.
func copyFixtureToTemp(t *testing.T, fixtureName, tempDir string) string {
	t.Helper()

	fixturePath, err := filepath.Abs(filepath.Join("../fixtures/programs", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	destPath := filepath.Join(tempDir, fixtureName)
	if err := os.WriteFile(destPath, data, 0644); err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}
	return destPath
}

// capturingRunner returns an ExecRunner whose output lands in the returned buffer.
func capturingRunner() (*process.ExecRunner, *bytes.Buffer) {
	var out bytes.Buffer
	return &process.ExecRunner{Stdin: bytes.NewReader(nil), Stdout: &out, Stderr: &out}, &out
}

// progressLog records reporter notices in order.
type progressLog struct {
	events []string
}

func (p *progressLog) Running(argv []string) {
	p.events = append(p.events, "running "+argv[0])
}

func (p *progressLog) SkippedCompile(string) {
	p.events = append(p.events, "skipping compilation")
}
