package model

import (
	"sort"
	"strings"
)

// TypeTag is the C type spelling accepted in a `type:name` token.
type TypeTag string

const (
	// TypeInt decodes its argument with atoi.
	TypeInt TypeTag = "int"
	// TypeLong decodes its argument with atol.
	TypeLong TypeTag = "long"
	// TypeChar takes the first character of its argument.
	TypeChar TypeTag = "char"
	// TypeStr aliases the argument string without copying.
	TypeStr TypeTag = "str"
)

var allowedTypes = map[TypeTag]bool{
	TypeInt:  true,
	TypeLong: true,
	TypeChar: true,
	TypeStr:  true,
}

// AllowedTypes returns the accepted type tags in sorted order.
func AllowedTypes() []TypeTag {
	types := make([]TypeTag, 0, len(allowedTypes))
	for t := range allowedTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// AllowedTypesString formats the allow-list as "`char`, `int`, `long`, `str`".
func AllowedTypesString() string {
	types := AllowedTypes()
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = "`" + string(t) + "`"
	}
	return strings.Join(quoted, ", ")
}

// Valid reports whether t is in the allow-list.
func (t TypeTag) Valid() bool {
	return allowedTypes[t]
}

// IsNumeric reports whether t is decoded by a stdlib.h conversion function.
func (t TypeTag) IsNumeric() bool {
	return t == TypeInt || t == TypeLong
}

// Param is one typed main() parameter parsed from a `type:name` token.
type Param struct {
	// Type is the validated type tag.
	Type TypeTag
	// Name is the C variable name.
	Name string
}

// String renders the param back into its token form.
func (p Param) String() string {
	return string(p.Type) + ":" + p.Name
}

// NeedsStdlib reports whether any param requires `#include <stdlib.h>`.
func NeedsStdlib(params []Param) bool {
	for _, p := range params {
		if p.Type.IsNumeric() {
			return true
		}
	}
	return false
}
