package app

import (
	"context"
	"io"
	"os"

	"github.com/tacogips/cconv/internal/debug"
	"github.com/tacogips/cconv/internal/template/generator"
	"github.com/tacogips/cconv/internal/template/model"
	"github.com/tacogips/cconv/internal/template/parser"
)

// TemplateOptions holds options for generating a C main() skeleton.
type TemplateOptions struct {
	// Tokens are `type:name` parameter tokens in argv order.
	Tokens []string
	// Options selects the optional include/typedef groups.
	Options model.Options
	// OutputPath writes the skeleton to a file instead of Stdout when set.
	OutputPath string
	// Stdout receives the skeleton when OutputPath is empty. Defaults to os.Stdout.
	Stdout io.Writer
	// Writer writes OutputPath. Defaults to generator.NewFileWriter().
	Writer generator.Writer
}

// TemplateResult holds the generated skeleton.
type TemplateResult struct {
	// Params are the parsed parameters.
	Params []model.Param
	// Document is the generated source.
	Document *generator.Document
	// OutputPath is where the document was written; empty for Stdout.
	OutputPath string
}

// GenerateTemplate parses every token, then emits the skeleton to exactly one
// destination. When any token is invalid nothing is emitted and the returned
// AppError wraps a *parser.ParamErrors listing each failure.
func GenerateTemplate(ctx context.Context, opts TemplateOptions) (*TemplateResult, error) {
	debug.DebugSection("template")

	params, err := parser.ParseParams(opts.Tokens)
	if err != nil {
		return nil, NewValidationError("invalid template parameters", err)
	}

	doc := generator.Generate(params, opts.Options)
	result := &TemplateResult{
		Params:     params,
		Document:   doc,
		OutputPath: opts.OutputPath,
	}

	if opts.OutputPath != "" {
		w := opts.Writer
		if w == nil {
			w = generator.NewFileWriter()
		}
		if err := w.WriteFile(opts.OutputPath, doc.Bytes()); err != nil {
			return nil, NewOutputError("failed to write template", err)
		}
		return result, nil
	}

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	if _, err := out.Write(doc.Bytes()); err != nil {
		return nil, NewOutputError("failed to print template", err)
	}
	return result, nil
}
