package cli

import (
	"github.com/spf13/pflag"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagOutput      = "output"
	FlagNoStdio     = "no-stdio"
	FlagNoStdbool   = "no-stdbool"
	FlagNoStr       = "no-str"
	FlagInteractive = "interactive"
	FlagConfig      = "config"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescOutput      = "Write the template to this file instead of stdout"
	DescNoStdio     = "Don't include stdio.h"
	DescNoStdbool   = "Don't include stdbool.h"
	DescNoStr       = "Don't emit the str typedef for char *"
	DescInteractive = "Prompt for parameters when none are given"
	DescConfig      = "Path to config file"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress informational output"
	DescDebug       = "Enable debug logging"
)

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&globalConfig, FlagConfig, "", DescConfig)
	fs.BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	fs.BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	fs.BoolVar(&globalDebug, FlagDebug, false, DescDebug)
}

func addTemplateFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&templateOutput, FlagOutput, "o", "", DescOutput)
	fs.BoolVar(&templateNoStdio, FlagNoStdio, false, DescNoStdio)
	fs.BoolVar(&templateNoStdbool, FlagNoStdbool, false, DescNoStdbool)
	fs.BoolVar(&templateNoStr, FlagNoStr, false, DescNoStr)
	fs.BoolVarP(&templateInteractive, FlagInteractive, "i", false, DescInteractive)
}
