package parser

import (
	"fmt"
	"strings"

	"github.com/tacogips/cconv/internal/debug"
	"github.com/tacogips/cconv/internal/template/model"
)

// ParseParam parses a single `type:name` token.
//
// The token is split on the first `:` only. Checks run in a fixed order:
// separator, blank type, allow-listed type, blank name.
func ParseParam(token string) (model.Param, error) {
	p, err := parseParam(token)
	if err != nil {
		return model.Param{}, err
	}
	return p, nil
}

func parseParam(token string) (model.Param, *ParseError) {
	typ, name, found := strings.Cut(token, ":")
	if !found {
		return model.Param{}, newParseError(MissingSeparator, token,
			fmt.Sprintf("missing `:` between type and variable name in %q", token))
	}

	if strings.TrimSpace(typ) == "" {
		return model.Param{}, newParseError(MissingType, token,
			fmt.Sprintf("missing type in %q", token))
	}

	tag := model.TypeTag(typ)
	if !tag.Valid() {
		return model.Param{}, newParseError(UnknownType, token,
			fmt.Sprintf("unknown type `%s`, possible types are: %s", typ, model.AllowedTypesString()))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return model.Param{}, newParseError(MissingName, token,
			fmt.Sprintf("missing variable name in %q", token))
	}

	return model.Param{Type: tag, Name: name}, nil
}

// ParseParams parses every token before returning. When any token fails the
// returned error is a *ParamErrors holding all failures in input order and the
// params slice is nil.
func ParseParams(tokens []string) ([]model.Param, error) {
	params := make([]model.Param, 0, len(tokens))
	var errs []*ParseError

	for _, token := range tokens {
		p, err := parseParam(token)
		if err != nil {
			debug.Debug("[parser] rejected token %q: %v", token, err)
			errs = append(errs, err)
			continue
		}
		params = append(params, p)
	}

	if len(errs) > 0 {
		return nil, &ParamErrors{Errors: errs}
	}

	debug.Debug("[parser] parsed %d parameter(s)", len(params))
	return params, nil
}
