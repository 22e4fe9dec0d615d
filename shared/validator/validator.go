package validator

import (
	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
}

// ValidateStruct performs validation on the struct using the validator
// package. The returned error carries a human-readable message; callers
// classify it into the failure taxonomy that fits their domain.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return message(err)
	}

	return nil
}

// ValidateVar validates a single value against a validation tag.
func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		return message(err)
	}

	return nil
}
