package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	jsv "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

// check runs the compiled contract and flattens every failure into violations,
// ordered by path.
func check(doc any) []Violation {
	err := contract().Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsv.ValidationError
	if !errors.As(err, &verr) {
		return []Violation{{Path: "/", Message: err.Error(), Keyword: KeywordType}}
	}

	var out []Violation
	flatten(verr, &out)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Field < out[j].Field
	})

	return out
}

func flatten(verr *jsv.ValidationError, out *[]Violation) {
	path := pointer(verr.InstanceLocation)
	add := func(keyword, field, message string) {
		*out = append(*out, Violation{
			Path:    path,
			Message: message,
			Keyword: keyword,
			Field:   field,
		})
	}

	switch k := verr.ErrorKind.(type) {
	case *kind.Schema, *kind.Group, *kind.Reference:
		for _, cause := range verr.Causes {
			flatten(cause, out)
		}
	case *kind.Required:
		for _, name := range k.Missing {
			add(KeywordRequired, name, fmt.Sprintf("must have required property '%s'", name))
		}
	case *kind.AdditionalProperties:
		names := append([]string(nil), k.Properties...)
		sort.Strings(names)
		for _, name := range names {
			add(KeywordAdditional, name, "must NOT have additional properties")
		}
	case *kind.Type:
		add(KeywordType, "", "must be "+strings.Join(k.Want, ","))
	case *kind.InvalidJsonValue:
		add(KeywordType, "", fmt.Sprintf("must be a JSON value, got %T", k.Value))
	case *kind.Pattern:
		add(KeywordPattern, "", fmt.Sprintf("must match pattern \"%s\"", k.Want))
	case *kind.Enum:
		add(KeywordEnum, "", "must be equal to one of the allowed values: "+strings.Join(lo.Map(k.Want, func(v any, _ int) string {
			return fmt.Sprint(v)
		}), ", "))
	default:
		keyword := "schema"
		if kw := verr.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		add(keyword, "", "must satisfy "+keyword)
	}
}
