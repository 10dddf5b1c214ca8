package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tacogips/cconv/internal/app"
	"github.com/tacogips/cconv/internal/template/model"
	"github.com/tacogips/cconv/internal/toolchain"
)

// TestE2E_TemplateCompileRun generates a skeleton, then runs it twice: the
// first run compiles, the second reuses the executable.
func TestE2E_TemplateCompileRun(t *testing.T) {
	requireCompiler(t)

	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "skeleton.c")

	// Step 1: Generate
	t.Log("Step 1: Generating template")
	_, err := app.GenerateTemplate(context.Background(), app.TemplateOptions{
		Tokens:     []string{"int:a", "long:b", "char:c", "str:s"},
		Options:    model.DefaultOptions(),
		OutputPath: src,
	})
	if err != nil {
		t.Fatalf("GenerateTemplate failed: %v", err)
	}

	runner, out := capturingRunner()
	progress := &progressLog{}
	opts := app.RunOptions{
		SourcePath: src,
		Args:       []string{"1", "2", "x", "hello"},
		Compiler:   toolchain.DefaultCompiler(),
		Runner:     runner,
		Reporter:   progress,
	}

	// Step 2: First run compiles
	t.Log("Step 2: First run")
	first, err := app.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Run failed: %v\n%s", err, out.String())
	}
	if !first.Compiled() || first.ExitCode != 0 {
		t.Fatalf("first run should compile and succeed: %+v\n%s", first, out.String())
	}

	exe := filepath.Join(tempDir, "skeleton")
	info, err := os.Stat(exe)
	if err != nil {
		t.Fatalf("executable not created: %v", err)
	}
	builtAt := info.ModTime()

	// Step 3: Second run skips compilation
	t.Log("Step 3: Second run")
	second, err := app.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if second.Compiled() {
		t.Error("second run should skip compilation")
	}
	if info, _ := os.Stat(exe); !info.ModTime().Equal(builtAt) {
		t.Error("executable should not be rebuilt")
	}

	want := []string{"running gcc", "running " + exe, "skipping compilation", "running " + exe}
	if strings.Join(progress.events, "|") != strings.Join(want, "|") {
		t.Errorf("progress = %v, want %v", progress.events, want)
	}

	// Step 4: Touching the source forces a rebuild
	t.Log("Step 4: Touching source")
	future := time.Now().Add(time.Minute)
	if err := os.Chtimes(src, future, future); err != nil {
		t.Fatal(err)
	}
	third, err := app.Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Run failed: %v", err)
	}
	if !third.Compiled() {
		t.Error("touching the source should force recompilation")
	}
}

func TestE2E_MathLinking(t *testing.T) {
	requireCompiler(t)

	src := copyFixtureToTemp(t, "hypot.c", t.TempDir())
	runner, out := capturingRunner()

	result, err := app.Run(context.Background(), app.RunOptions{
		SourcePath: src,
		Compiler:   toolchain.DefaultCompiler(),
		Runner:     runner,
	})
	if err != nil {
		t.Fatalf("Run failed: %v\n%s", err, out.String())
	}
	if !result.Compile.LinkedMath {
		t.Error("expected the math library to be linked")
	}
	if result.Compile.Command[1] != "-lm" {
		t.Errorf("math flag should follow the compiler name: %v", result.Compile.Command)
	}
	if result.ExitCode != 0 {
		t.Fatalf("exit code = %d\n%s", result.ExitCode, out.String())
	}
	if strings.TrimSpace(out.String()) != "5.0" {
		t.Errorf("output = %q, want 5.0", out.String())
	}
}

func TestE2E_ArgumentForwarding(t *testing.T) {
	requireCompiler(t)

	src := copyFixtureToTemp(t, "echo_args.c", t.TempDir())
	runner, out := capturingRunner()
	args := []string{"--verbose", "-n", "5", "two words", ""}

	result, err := app.Run(context.Background(), app.RunOptions{
		SourcePath: src,
		Args:       args,
		Compiler:   toolchain.DefaultCompiler(),
		Runner:     runner,
	})
	if err != nil {
		t.Fatalf("Run failed: %v\n%s", err, out.String())
	}
	if result.ExitCode != 0 {
		t.Fatalf("exit code = %d\n%s", result.ExitCode, out.String())
	}

	want := strings.Join(args, "\n") + "\n"
	if out.String() != want {
		t.Errorf("program saw %q, want %q", out.String(), want)
	}
}

func TestE2E_ExitCodePassthrough(t *testing.T) {
	requireCompiler(t)

	src := copyFixtureToTemp(t, "exit_code.c", t.TempDir())

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"zero", nil, 0},
		{"three", []string{"3"}, 3},
		{"large", []string{"201"}, 201},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, out := capturingRunner()
			result, err := app.Run(context.Background(), app.RunOptions{
				SourcePath: src,
				Args:       tt.args,
				Compiler:   toolchain.DefaultCompiler(),
				Runner:     runner,
			})
			if err != nil {
				t.Fatalf("Run failed: %v\n%s", err, out.String())
			}
			if !result.Executed {
				t.Fatal("program should have run")
			}
			if result.ExitCode != tt.want {
				t.Errorf("exit code = %d, want %d", result.ExitCode, tt.want)
			}
		})
	}
}

func TestE2E_CompileFailure(t *testing.T) {
	requireCompiler(t)

	tempDir := t.TempDir()
	src := copyFixtureToTemp(t, "broken.c", tempDir)
	runner, _ := capturingRunner()

	compiled, err := app.Compile(context.Background(), app.CompileOptions{
		SourcePath: src,
		Compiler:   toolchain.DefaultCompiler(),
		Runner:     runner,
	})
	if err != nil {
		t.Fatalf("compiler failure should be an exit code, not an error: %v", err)
	}
	if compiled.ExitCode == 0 {
		t.Error("expected non-zero compiler exit code")
	}

	result, err := app.Run(context.Background(), app.RunOptions{
		SourcePath: src,
		Compiler:   toolchain.DefaultCompiler(),
		Runner:     runner,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Executed {
		t.Error("program must not run after a failed compilation")
	}
	if result.ExitCode != compiled.ExitCode {
		t.Errorf("exit code = %d, want compiler's %d", result.ExitCode, compiled.ExitCode)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "broken")); !os.IsNotExist(err) {
		t.Error("no executable should be produced")
	}
}
