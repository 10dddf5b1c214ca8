package app

import (
	"context"

	"github.com/tacogips/cconv/internal/debug"
	"github.com/tacogips/cconv/internal/process"
	"github.com/tacogips/cconv/internal/toolchain"
)

// CompileOptions holds options for compiling a single C source file.
type CompileOptions struct {
	// SourcePath is the C source file, relative or absolute.
	SourcePath string
	// Compiler is the compiler invocation contract.
	Compiler toolchain.Compiler
	// Runner launches the compiler. Defaults to process.NewExecRunner().
	Runner process.Runner
	// Reporter receives progress notices. Optional.
	Reporter Reporter
}

// CompileResult holds the outcome of a compilation.
type CompileResult struct {
	// Source is the absolute source path.
	Source string
	// Executable is the derived output path.
	Executable string
	// Command is the argv passed to the compiler.
	Command []string
	// LinkedMath reports whether the math flag was added.
	LinkedMath bool
	// ExitCode is the compiler's exit code.
	ExitCode int
}

// Compile compiles the source into the executable next to it and returns the
// compiler's exit code. A missing source fails before the compiler runs.
func Compile(ctx context.Context, opts CompileOptions) (*CompileResult, error) {
	debug.DebugSection("compile")

	src, exe, err := resolveSource(opts.SourcePath)
	if err != nil {
		return nil, err
	}

	return compile(ctx, src, exe, opts)
}

func compile(ctx context.Context, src, exe string, opts CompileOptions) (*CompileResult, error) {
	argv, linkMath, err := opts.Compiler.CommandFor(src, exe)
	if err != nil {
		return nil, NewInvalidSourceError(src, err)
	}
	debug.DebugJSON("compile command", argv)

	result := &CompileResult{
		Source:     src,
		Executable: exe,
		Command:    argv,
		LinkedMath: linkMath,
	}

	runner := opts.Runner
	if runner == nil {
		runner = process.NewExecRunner()
	}

	reporterOrNop(opts.Reporter).Running(argv)
	code, err := runner.Run(ctx, argv[0], argv[1:]...)
	result.ExitCode = code
	if err != nil {
		return result, NewProcessError(argv[0], err)
	}

	debug.DebugValue("compiler exit code", code)
	return result, nil
}
