package model

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every input type. Struct-level rules cover what tags
// cannot express (graph maps, cross-field requirements).
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)
	validate.RegisterStructValidation(validateGraphInput, GraphInput{})
	validate.RegisterStructValidation(validateRodCutting, RodCuttingInput{})
}

// ValidationError reports a rejected input before any strategy runs.
type ValidationError struct {
	Fields []string
	err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("invalid input: %v", e.err)
	}
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, "; "))
}

func (e *ValidationError) Unwrap() error { return e.err }

// NewLimitError rejects an input whose trace would need more than limit
// cells.
func NewLimitError(cells, limit int) *ValidationError {
	return &ValidationError{Fields: []string{fmt.Sprintf("input needs %d trace cells, limit is %d", cells, limit)}}
}

// Validate checks in against its validator tags and struct-level rules.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{err: err}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, describe(fe))
	}
	return &ValidationError{Fields: fields, err: err}
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), nsRoot(fe.Namespace()))
	if field == "" {
		field = fe.Field()
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

// nsRoot returns the leading "StructName." of a validator namespace.
func nsRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[:i+1]
	}
	return ""
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func validateGraphInput(sl validator.StructLevel) {
	in := sl.Current().Interface().(GraphInput)
	for u, nbrs := range in.Graph {
		if strings.TrimSpace(u) == "" {
			sl.ReportError(in.Graph, "graph", "Graph", "nodeid", "")
			return
		}
		for v, w := range nbrs {
			if strings.TrimSpace(v) == "" {
				sl.ReportError(in.Graph, "graph", "Graph", "nodeid", "")
				return
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				sl.ReportError(in.Graph, "graph", "Graph", "weight", fmt.Sprintf("%s->%s", u, v))
				return
			}
		}
	}
}

func validateRodCutting(sl validator.StructLevel) {
	in := sl.Current().Interface().(RodCuttingInput)
	if in.Length > 0 && len(in.Prices) == 0 {
		sl.ReportError(in.Prices, "prices", "Prices", "required_with_length", "")
	}
}
