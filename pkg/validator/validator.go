package validator

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their wire name instead of the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("numeric_value", isNumericValue)
	_ = v.RegisterValidation("integer", isInteger)
	_ = v.RegisterValidation("min_value", hasMinValue)
	_ = v.RegisterValidation("max_value", hasMaxValue)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// Rule is a single check in a Schema. Tag uses validator tag syntax, for
// example "required" or "min=3".
type Rule struct {
	Tag     string
	Message string
}

// Field lists the rules for one input, evaluated in order. The first failing
// rule produces the field's error.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema declares how a set of string inputs is validated. Fields are checked
// in declaration order. An empty value of a field without a "required" rule
// is accepted without evaluating its other rules.
type Schema []Field

// ValidateSchema checks values against schema and returns field-scoped error
// messages. An empty map means the values are valid.
func (cv *CustomValidator) ValidateSchema(schema Schema, values map[string]string) map[string]string {
	errors := make(map[string]string)

	for _, field := range schema {
		value := values[field.Name]
		if value == "" && !field.required() {
			continue
		}
		for _, rule := range field.Rules {
			if err := cv.validator.Var(value, rule.Tag); err != nil {
				errors[field.Name] = rule.Message
				break
			}
		}
	}

	return errors
}

func (f Field) required() bool {
	for _, rule := range f.Rules {
		if rule.Tag == "required" {
			return true
		}
	}
	return false
}

func isNumericValue(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

func isInteger(fl validator.FieldLevel) bool {
	_, err := strconv.Atoi(fl.Field().String())
	return err == nil
}

func hasMinValue(fl validator.FieldLevel) bool {
	min, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return value.GreaterThanOrEqual(min)
}

func hasMaxValue(fl validator.FieldLevel) bool {
	max, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return value.LessThanOrEqual(max)
}
