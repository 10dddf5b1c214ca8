package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/cconv/internal/app"
	"github.com/tacogips/cconv/internal/template/generator"
	"github.com/tacogips/cconv/internal/template/model"
	"github.com/tacogips/cconv/internal/template/parser"
)

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:   "template [TYPE:NAME...]",
	Short: "Generate a C main() skeleton",
	Long: fmt.Sprintf(`Generate a compilable C program whose main() decodes argv into typed
local variables, one per TYPE:NAME argument, in order.

TYPE can be any of: %s.
int and long are converted with atoi/atol (and pull in stdlib.h), char
takes the first character and str aliases the argument string.

Examples:
  cconv template
  cconv template int:count str:name
  cconv template -o main.c --no-stdbool char:op long:a long:b
  cconv template -i

With --interactive and no TYPE:NAME arguments, parameters are prompted for.`, model.AllowedTypesString()),
	Args: cobra.ArbitraryArgs,
	RunE: runTemplate,
}

// Template command flags
var (
	templateOutput      string
	templateNoStdio     bool
	templateNoStdbool   bool
	templateNoStr       bool
	templateInteractive bool
)

func init() {
	addTemplateFlags(templateCmd.Flags())
}

func runTemplate(cmd *cobra.Command, args []string) error {
	tokens := args
	if templateInteractive && len(args) == 0 {
		if !isTerminal(os.Stdin) {
			return failWith(errors.New("interactive mode requires a terminal"), 1)
		}
		prompted, err := promptParams()
		if err != nil {
			return failWith(fmt.Errorf("prompt failed: %w", err), 1)
		}
		tokens = prompted
	}

	tc := loadedConfig.Template
	opts := model.Options{
		IncludeStdbool: !(templateNoStdbool || tc.NoStdbool),
		IncludeStdio:   !(templateNoStdio || tc.NoStdio),
		TypedefStr:     !(templateNoStr || tc.NoStr),
		Indent:         tc.Indent,
	}

	writer := generator.NewFileWriter()
	replacing := templateOutput != "" && writer.Exists(templateOutput)

	result, err := app.GenerateTemplate(cmd.Context(), app.TemplateOptions{
		Tokens:     tokens,
		Options:    opts,
		OutputPath: templateOutput,
		Stdout:     cmd.OutOrStdout(),
		Writer:     writer,
	})
	if err != nil {
		var paramErrs *parser.ParamErrors
		if errors.As(err, &paramErrs) {
			for _, e := range paramErrs.Errors {
				printErrorMsg(e.Error())
			}
			return &ExitError{Code: 1}
		}
		return failWith(err, 1)
	}

	if replacing {
		printWarning(fmt.Sprintf("overwrote %s", result.OutputPath))
	}
	if result.OutputPath != "" {
		printInfo(fmt.Sprintf("wrote %s", result.OutputPath))
	}
	return nil
}
