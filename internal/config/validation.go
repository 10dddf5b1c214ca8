package config

import (
	"fmt"
	"strings"
)

// maxIndent bounds template.indent.
const maxIndent = 16

// Validate validates the global configuration.
func Validate(config *Config) error {
	if config == nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "", "configuration cannot be nil")
	}

	c := config.Compiler
	if strings.TrimSpace(c.Command) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "compiler.command", "compiler command is required")
	}
	if strings.TrimSpace(c.OutputFlag) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "compiler.output_flag", "output flag is required")
	}
	for i, flag := range c.WarningFlags {
		if strings.TrimSpace(flag) == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "compiler.warning_flags",
				fmt.Sprintf("warning flags cannot contain empty entries (index %d)", i))
		}
	}
	if (c.MathFlag == "") != (c.MathMarker == "") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "compiler.math_flag",
			"math_flag and math_marker must be set together")
	}

	if config.Template.Indent < 0 || config.Template.Indent > maxIndent {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "template.indent",
			fmt.Sprintf("indent must be between 0 and %d", maxIndent))
	}

	return nil
}
