package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/cconv/internal/app"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile FILE",
	Short: "Compile a C source file",
	Long: `Compile a single C source file into an executable next to it.

The executable path is the source path without its extension. The math
library is linked automatically when the source includes <math.h>.
The exit status is the compiler's exit status.

Examples:
  cconv compile hello.c
  c-compile src/solver.c`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	result, err := app.Compile(cmd.Context(), app.CompileOptions{
		SourcePath: args[0],
		Compiler:   loadedConfig.Compiler,
		Reporter:   consoleReporter{},
	})
	if err != nil {
		code := 1
		if result != nil {
			code = result.ExitCode
		}
		return failWith(err, code)
	}

	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
