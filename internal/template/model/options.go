package model

// DefaultIndent is the number of spaces used for main() body lines.
const DefaultIndent = 4

// Options controls which optional groups the generated skeleton contains.
type Options struct {
	// IncludeStdbool emits `#include <stdbool.h>`.
	IncludeStdbool bool
	// IncludeStdio emits `#include <stdio.h>`.
	IncludeStdio bool
	// TypedefStr emits `typedef char *str;` and uses `str` for string params.
	TypedefStr bool
	// Indent is the body indentation width in spaces.
	Indent int
}

// DefaultOptions returns options with every optional group enabled.
func DefaultOptions() Options {
	return Options{
		IncludeStdbool: true,
		IncludeStdio:   true,
		TypedefStr:     true,
		Indent:         DefaultIndent,
	}
}

// StrType returns the spelling used for string declarations, including the
// separating space or pointer star ("str " or "char *").
func (o Options) StrType() string {
	if o.TypedefStr {
		return "str "
	}
	return "char *"
}
