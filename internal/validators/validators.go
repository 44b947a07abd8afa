// Package validators checks resource models before any remote call is made
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports every field of a model that failed validation
type ValidationError struct {
	Fields []FieldError
}

// FieldError is a single failed rule on a model field
type FieldError struct {
	Field string // CloudFormation property path, e.g. PosixProfile.Uid
	Rule  string
	Param string
}

func (e FieldError) String() string {
	if e.Param != "" {
		return fmt.Sprintf("%s failed '%s=%s'", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("%s failed '%s'", e.Field, e.Rule)
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "model validation failed: " + strings.Join(parts, "; ")
}

var (
	once     sync.Once
	validate *validator.Validate
)

// engine returns the shared validator with the Transfer rules registered.
// Field names in errors are taken from the json tag so they match the
// CloudFormation property names.
func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("register validation %q: %v", tag, err))
			}
		}
		validate = v
	})
	return validate
}

// Struct validates every field of model
func Struct(model interface{}) error {
	return convert(engine().Struct(model))
}

func convert(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// fieldPath drops the leading struct name from a validator namespace
func fieldPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}
