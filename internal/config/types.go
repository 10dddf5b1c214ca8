package config

import "github.com/tacogips/cconv/internal/toolchain"

// Config represents the global cconv configuration.
type Config struct {
	// Compiler is the external compiler contract.
	Compiler toolchain.Compiler `toml:"compiler"`
	// Template holds defaults for template generation flags.
	Template TemplateConfig `toml:"template"`
	// Output configures console output.
	Output OutputConfig `toml:"output"`
}

// TemplateConfig represents template generation defaults.
type TemplateConfig struct {
	// NoStdio omits `#include <stdio.h>` unless overridden on the command line.
	NoStdio bool `toml:"no_stdio"`
	// NoStdbool omits `#include <stdbool.h>`.
	NoStdbool bool `toml:"no_stdbool"`
	// NoStr omits the `str` typedef and uses `char *`.
	NoStr bool `toml:"no_str"`
	// Indent is the main() body indentation in spaces.
	Indent int `toml:"indent"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `toml:"color"`
	// Quiet suppresses informational notices.
	Quiet bool `toml:"quiet"`
}
