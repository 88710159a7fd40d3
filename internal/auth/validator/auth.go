package validator

import (
	"errors"
	"fmt"

	apperrors "arenaku/pkg/errors"
	"arenaku/pkg/model"

	"github.com/go-playground/validator/v10"
)

type AuthValidator struct {
	validate *validator.Validate
}

func NewAuthValidator() *AuthValidator {
	return &AuthValidator{validate: validator.New()}
}

func (v *AuthValidator) ValidateCredentials(creds *model.Credentials) error {
	return v.translate(v.validate.Struct(creds))
}

func (v *AuthValidator) ValidateRegistration(reg *model.Registration) error {
	return v.translate(v.validate.Struct(reg))
}

func (v *AuthValidator) translate(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "this field is required"
		case "email":
			details[fe.Field()] = "must be a valid email address"
		case "e164":
			details[fe.Field()] = "must be a phone number like +62812xxxxxxx"
		case "min":
			details[fe.Field()] = fmt.Sprintf("must be at least %s characters", fe.Param())
		case "max":
			details[fe.Field()] = fmt.Sprintf("must be at most %s characters", fe.Param())
		default:
			details[fe.Field()] = fmt.Sprintf("failed validation on '%s'", fe.Tag())
		}
	}
	return apperrors.Validation("request is invalid", details)
}
