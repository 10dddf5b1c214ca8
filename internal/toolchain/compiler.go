// Package toolchain describes how a single C source file is turned into an
// executable: the compiler invocation, the derived executable path and the
// staleness check that decides whether a rebuild is needed.
package toolchain

import (
	"bytes"
	"fmt"
	"os"
)

// Compiler is the external compiler contract. Flag spellings are configurable
// so a compiler with different syntax can be substituted.
type Compiler struct {
	// Command is the compiler executable, looked up on PATH.
	Command string `toml:"command"`
	// OutputFlag names the output file, followed by the executable path.
	OutputFlag string `toml:"output_flag"`
	// WarningFlags are placed after the output path.
	WarningFlags []string `toml:"warning_flags"`
	// MathFlag links the math library; inserted right after Command.
	MathFlag string `toml:"math_flag"`
	// MathMarker is the substring that makes a source need MathFlag.
	MathMarker string `toml:"math_marker"`
}

// DefaultCompiler returns the gcc invocation used when nothing is configured.
func DefaultCompiler() Compiler {
	return Compiler{
		Command:      "gcc",
		OutputFlag:   "--output",
		WarningFlags: []string{"-Wall"},
		MathFlag:     "-lm",
		MathMarker:   "<math.h>",
	}
}

// NeedsMath reports whether source contains the math marker.
func (c Compiler) NeedsMath(source []byte) bool {
	if c.MathFlag == "" || c.MathMarker == "" {
		return false
	}
	return bytes.Contains(source, []byte(c.MathMarker))
}

// Argv builds the argv for compiling src into exe:
//
//	<command> [<math flag>] <output flag> <exe> <warning flags...> <src>
func (c Compiler) Argv(src, exe string, linkMath bool) []string {
	argv := make([]string, 0, 5+len(c.WarningFlags))
	argv = append(argv, c.Command)
	if linkMath && c.MathFlag != "" {
		argv = append(argv, c.MathFlag)
	}
	argv = append(argv, c.OutputFlag, exe)
	argv = append(argv, c.WarningFlags...)
	argv = append(argv, src)
	return argv
}

// CommandFor reads src and builds its compile command, linking the math
// library when the source needs it.
func (c Compiler) CommandFor(src, exe string) ([]string, bool, error) {
	content, err := os.ReadFile(src)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read source %s: %w", src, err)
	}
	linkMath := c.NeedsMath(content)
	return c.Argv(src, exe, linkMath), linkMath, nil
}
