package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/tacogips/cconv/internal/template/model"
)

// promptDone ends the interactive parameter loop.
const promptDone = "(done)"

// promptParams asks for parameters until the user picks promptDone and
// returns them as `type:name` tokens.
func promptParams() ([]string, error) {
	var tokens []string

	for {
		typ, err := promptType(len(tokens) + 1)
		if err != nil {
			return nil, err
		}
		if typ == promptDone {
			return tokens, nil
		}

		name, err := promptName()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, model.Param{Type: model.TypeTag(typ), Name: name}.String())
	}
}

func typeOptions() []string {
	types := model.AllowedTypes()
	opts := make([]string, 0, len(types)+1)
	for _, t := range types {
		opts = append(opts, string(t))
	}
	return append(opts, promptDone)
}

func promptType(index int) (string, error) {
	var result string
	prompt := &survey.Select{
		Message: fmt.Sprintf("Type of argv[%d]:", index),
		Options: typeOptions(),
		Default: promptDone,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func promptName() (string, error) {
	var result string
	prompt := &survey.Input{
		Message: "Variable name:",
	}
	if err := survey.AskOne(prompt, &result, survey.WithValidator(validateParamName)); err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// validateParamName is a survey.Validator rejecting blank names.
func validateParamName(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a string, got %T", ans)
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("variable name cannot be empty")
	}
	return nil
}
