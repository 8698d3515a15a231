package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// FieldError is a single failed struct-tag rule.
type FieldError struct {
	Namespace string
	Field     string
	Tag       string
	Param     string
	Value     any
}

func ValidateStruct(s interface{}) error {
	fieldErrs, err := FieldErrors(s)
	if err != nil {
		return err
	}
	if len(fieldErrs) == 0 {
		return nil
	}

	var errMsgs []string
	for _, fe := range fieldErrs {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"Field: %s, Tag: %s, Param: %s", fe.Field, fe.Tag, fe.Param,
		))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}

// FieldErrors runs the struct-tag rules of s and returns every failure in
// declaration order. The error is non-nil only when s cannot be validated at all.
func FieldErrors(s interface{}) ([]FieldError, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Namespace: fe.StructNamespace(),
			Field:     fe.Field(),
			Tag:       fe.Tag(),
			Param:     fe.Param(),
			Value:     fe.Value(),
		})
	}
	return out, nil
}
