package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/cconv/internal/app"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run FILE [ARGS...]",
	Short: "Compile a C source file if needed and run it",
	Long: `Run the executable built from a C source file, compiling it first when
the executable is missing or older than the source.

Everything after FILE is passed to the program unchanged, including
arguments that look like flags. The exit status is the program's exit
status, or the compiler's when compilation fails.

Examples:
  cconv run hello.c
  cconv run sum.c 1 2 3
  c-run args.c --verbose -n 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	// Stop flag parsing at FILE so program flags are forwarded.
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	result, err := app.Run(cmd.Context(), app.RunOptions{
		SourcePath: args[0],
		Args:       args[1:],
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
