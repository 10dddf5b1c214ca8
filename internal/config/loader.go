package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tacogips/cconv/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for TOML files.
type FileLoader struct {
	getenv func(string) string
}

// NewLoader creates a new FileLoader that reads overrides from the process environment.
func NewLoader() Loader {
	return &FileLoader{getenv: os.Getenv}
}

// fileConfig mirrors Config for decoding; only keys present in the file are
// applied on top of the defaults.
type fileConfig struct {
	Compiler struct {
		Command      string   `toml:"command"`
		OutputFlag   string   `toml:"output_flag"`
		WarningFlags []string `toml:"warning_flags"`
		MathFlag     string   `toml:"math_flag"`
		MathMarker   string   `toml:"math_marker"`
	} `toml:"compiler"`
	Template struct {
		NoStdio   bool `toml:"no_stdio"`
		NoStdbool bool `toml:"no_stdbool"`
		NoStr     bool `toml:"no_str"`
		Indent    int  `toml:"indent"`
	} `toml:"template"`
	Output struct {
		Color bool `toml:"color"`
		Quiet bool `toml:"quiet"`
	} `toml:"output"`
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML syntax", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		debug.Debug("[config] ignoring unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg := DefaultConfig()
	apply(cfg, &raw, meta)
	l.applyEnv(cfg)

	if err := l.Validate(cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = path
		}
		return nil, err
	}

	debug.Debug("[config] loaded %s", path)
	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		l.applyEnv(cfg)
		return cfg, l.Validate(cfg)
	}

	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] %s not found, using defaults", path)
			cfg = DefaultConfig()
			l.applyEnv(cfg)
			return cfg, l.Validate(cfg)
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	return Validate(config)
}

func (l *FileLoader) applyEnv(cfg *Config) {
	if l.getenv == nil {
		return
	}
	if v := strings.TrimSpace(l.getenv(EnvCompiler)); v != "" {
		debug.DebugValue(EnvCompiler, v)
		cfg.Compiler.Command = v
	}
}

// apply copies every key defined in the file onto cfg.
func apply(cfg *Config, raw *fileConfig, meta toml.MetaData) {
	if meta.IsDefined("compiler", "command") {
		cfg.Compiler.Command = strings.TrimSpace(raw.Compiler.Command)
	}
	if meta.IsDefined("compiler", "output_flag") {
		cfg.Compiler.OutputFlag = strings.TrimSpace(raw.Compiler.OutputFlag)
	}
	if meta.IsDefined("compiler", "warning_flags") {
		cfg.Compiler.WarningFlags = raw.Compiler.WarningFlags
	}
	if meta.IsDefined("compiler", "math_flag") {
		cfg.Compiler.MathFlag = strings.TrimSpace(raw.Compiler.MathFlag)
	}
	if meta.IsDefined("compiler", "math_marker") {
		cfg.Compiler.MathMarker = raw.Compiler.MathMarker
	}

	if meta.IsDefined("template", "no_stdio") {
		cfg.Template.NoStdio = raw.Template.NoStdio
	}
	if meta.IsDefined("template", "no_stdbool") {
		cfg.Template.NoStdbool = raw.Template.NoStdbool
	}
	if meta.IsDefined("template", "no_str") {
		cfg.Template.NoStr = raw.Template.NoStr
	}
	if meta.IsDefined("template", "indent") {
		cfg.Template.Indent = raw.Template.Indent
	}

	if meta.IsDefined("output", "color") {
		cfg.Output.Color = raw.Output.Color
	}
	if meta.IsDefined("output", "quiet") {
		cfg.Output.Quiet = raw.Output.Quiet
	}
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
