package app

import (
	"context"

	"github.com/tacogips/cconv/internal/debug"
	"github.com/tacogips/cconv/internal/process"
	"github.com/tacogips/cconv/internal/toolchain"
)

// RunOptions holds options for compiling (when stale) and running a C file.
type RunOptions struct {
	// SourcePath is the C source file, relative or absolute.
	SourcePath string
	// Args are forwarded verbatim to the compiled program.
	Args []string
	// Compiler is the compiler invocation contract.
	Compiler toolchain.Compiler
	// Runner launches both the compiler and the program.
	Runner process.Runner
	// Reporter receives progress notices. Optional.
	Reporter Reporter
}

// RunResult holds the outcome of a run.
type RunResult struct {
	// Executable is the program that was (or would have been) run.
	Executable string
	// Compile is nil when compilation was skipped.
	Compile *CompileResult
	// Executed reports whether the program was launched.
	Executed bool
	// ExitCode is the compiler's code when compilation failed, otherwise the program's.
	ExitCode int
}

// Compiled reports whether the compiler ran.
func (r *RunResult) Compiled() bool {
	return r.Compile != nil
}

// Run recompiles the source unless the executable is up to date, then runs
// the executable with opts.Args. A failed compilation aborts before running.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	debug.DebugSection("run")

	src, exe, err := resolveSource(opts.SourcePath)
	if err != nil {
		return nil, err
	}

	runner := opts.Runner
	if runner == nil {
		runner = process.NewExecRunner()
	}
	opts.Runner = runner
	reporter := reporterOrNop(opts.Reporter)

	st, err := toolchain.CheckStaleness(src, exe)
	if err != nil {
		return nil, NewInvalidSourceError(src, err)
	}

	result := &RunResult{Executable: exe}

	if st.UpToDate() {
		reporter.SkippedCompile(exe)
	} else {
		compiled, err := compile(ctx, src, exe, CompileOptions{
			SourcePath: src,
			Compiler:   opts.Compiler,
			Runner:     runner,
			Reporter:   reporter,
		})
		result.Compile = compiled
		if err != nil {
			if compiled != nil {
				result.ExitCode = compiled.ExitCode
			}
			return result, err
		}
		if compiled.ExitCode != 0 {
			result.ExitCode = compiled.ExitCode
			return result, nil
		}
	}

	argv := append([]string{exe}, opts.Args...)
	reporter.Running(argv)
	code, err := runner.Run(ctx, exe, opts.Args...)
	result.Executed = true
	result.ExitCode = code
	if err != nil {
		return result, NewProcessError(exe, err)
	}

	debug.DebugValue("program exit code", code)
	return result, nil
}
