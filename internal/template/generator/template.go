package generator

import (
	"fmt"
	"strings"

	"github.com/tacogips/cconv/internal/debug"
	"github.com/tacogips/cconv/internal/template/model"
)

// placeholderBody is appended to every main() after the parameter declarations.
var placeholderBody = []string{
	"/*",
	"",
	"sem doplnte svuj kod",
	"",
	"*/",
	"",
	"return 0;",
}

// Generate builds the C skeleton for params. params must already be validated
// by the parser; Generate never fails.
func Generate(params []model.Param, opts model.Options) *Document {
	doc := &Document{}

	if opts.IncludeStdbool {
		doc.Append("#include <stdbool.h>")
	}
	if opts.IncludeStdio {
		doc.Append("#include <stdio.h>")
	}
	if model.NeedsStdlib(params) {
		doc.Append("#include <stdlib.h>")
	}

	if opts.TypedefStr {
		doc.Separate()
		doc.Append("typedef char *str;")
	}

	doc.Separate()
	doc.Append(fmt.Sprintf("int main(%s) {", mainParams(params, opts)))

	indent := strings.Repeat(" ", opts.Indent)
	for _, line := range mainBody(params, opts) {
		if line == "" {
			doc.Append("")
			continue
		}
		doc.Append(indent + line)
	}
	doc.Append("}")

	debug.Debug("[generator] generated %d line(s) for %d parameter(s)", doc.Len(), len(params))
	return doc
}

func mainParams(params []model.Param, opts model.Options) string {
	if len(params) == 0 {
		return "void"
	}
	return "int argc, " + opts.StrType() + "argv[]"
}

func mainBody(params []model.Param, opts model.Options) []string {
	body := make([]string, 0, len(params)+1+len(placeholderBody))
	for i, p := range params {
		body = append(body, declaration(p, i+1, opts))
	}
	if len(body) > 0 {
		body = append(body, "")
	}
	return append(body, placeholderBody...)
}

// declaration renders the local variable for the param at argv[index].
func declaration(p model.Param, index int, opts model.Options) string {
	switch p.Type {
	case model.TypeInt, model.TypeLong:
		return fmt.Sprintf("%s %s = ato%c(argv[%d]);", p.Type, p.Name, p.Type[0], index)
	case model.TypeChar:
		return fmt.Sprintf("%s %s = argv[%d][0];", p.Type, p.Name, index)
	default:
		return fmt.Sprintf("%s%s = argv[%d];", opts.StrType(), p.Name, index)
	}
}
