package validator

import (
	"strings"
	"unicode"

	val "github.com/go-playground/validator/v10"

	"frontdesk/shared/failure"
)

var validate *val.Validate

// registerPhoneValidation accepts bare national or +country prefixed
// numbers, optionally containing spaces or dashes, 7 to 15 digits.
func registerPhoneValidation(field val.FieldLevel) bool {
	phone, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	phone = strings.TrimPrefix(phone, "+")

	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-':
		default:
			return false
		}
	}

	return digits >= 7 && digits <= 15
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}
}

// ValidateStruct performs validation on the struct using the validator
// package. If the struct is invalid according to the validation rules, a
// validation failure is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.Validation(msg) //nolint:wrapcheck
	}

	return nil
}
