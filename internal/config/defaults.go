package config

import (
	"os"
	"path/filepath"

	"github.com/tacogips/cconv/internal/template/model"
	"github.com/tacogips/cconv/internal/toolchain"
)

// EnvCompiler overrides compiler.command when set.
const EnvCompiler = "CCONV_COMPILER"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Compiler: toolchain.DefaultCompiler(),
		Template: TemplateConfig{
			Indent: model.DefaultIndent,
		},
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "cconv", "config.toml")
}
