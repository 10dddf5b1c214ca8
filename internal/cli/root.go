package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/cconv/internal/build"
	"github.com/tacogips/cconv/internal/config"
	"github.com/tacogips/cconv/internal/debug"
)

// Version information, overridden from main via ldflags.
var (
	Version   = build.Version()
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// loadedConfig is populated before any subcommand runs.
var loadedConfig = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cconv",
	Short: "Convenience tools for single-file C programs",
	Long: `cconv compiles, runs and scaffolds single-file C programs.

  cconv compile prog.c        compile prog.c into ./prog
  cconv run prog.c [ARGS...]  recompile if prog.c changed, then run ./prog
  cconv template int:n str:s  print a main() skeleton decoding argv

The compiler invocation is configured in ~/.config/cconv/config.toml.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupGlobals,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(exitCode(rootCmd.Execute()))
}

// ExecuteAs runs a single subcommand with the process arguments, for the
// standalone c-compile, c-run and c-template binaries.
func ExecuteAs(subcommand string) {
	rootCmd.SetArgs(append([]string{subcommand}, os.Args[1:]...))
	Execute()
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupGlobals(cmd *cobra.Command, args []string) error {
	debug.SetDebug(globalDebug)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	loadedConfig = cfg

	configureOutput(globalNoColor || !cfg.Output.Color, globalQuiet || cfg.Output.Quiet)
	debug.SetNoColor(!colorEnabled)
	debug.DebugJSON("config", cfg)
	return nil
}

// loadConfig reads --config strictly, or the default path when it exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loader := config.NewLoader()

	if cmd.Flags().Changed(FlagConfig) {
		path, err := config.ExpandPath(globalConfig)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		return loader.Load(path)
	}
	return loader.LoadOrDefault(config.DefaultConfigPath())
}
