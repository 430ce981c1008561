package mix

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError maps a JSON field name to a human-readable problem.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid mix: " + strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON names so API clients see the keys they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("curing_age", func(fl validator.FieldLevel) bool {
		return IsAgeOption(int(fl.Field().Int()))
	}); err != nil {
		panic(fmt.Sprintf("registering curing_age validation: %v", err))
	}
	return v
}

// Validate checks that every quantity is non-negative and the age is one of
// AgeOptions.
func Validate(in MixInputs) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating mix: %w", err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "gte":
			out.Fields[fe.Field()] = fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
		case "curing_age":
			out.Fields[fe.Field()] = fmt.Sprintf("must be one of %v days, got %v", AgeOptions, fe.Value())
		default:
			out.Fields[fe.Field()] = fmt.Sprintf("failed %q check", fe.Tag())
		}
	}
	return out
}
