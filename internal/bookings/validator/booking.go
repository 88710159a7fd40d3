package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"arenaku/pkg/logger"
	"arenaku/pkg/model"

	"github.com/go-playground/validator/v10"
)

var hhmmRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("hhmm", validateHHMM); err != nil {
		log.Fatal("Failed to register 'hhmm' validator",
			"error", err,
		)
	}

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}

func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}

	// Wall-clock HH:MM strings compare correctly as strings.
	if req.EndTime <= req.StartTime {
		return ValidationErrors{
			ValidationError{
				Field:   "EndTime",
				Message: "end_time must be after start_time",
			},
		}
	}

	if req.IsJoinable && req.MaxSlots < 2 {
		return ValidationErrors{
			ValidationError{
				Field:   "MaxSlots",
				Message: "a joinable booking needs at least 2 slots",
			},
		}
	}

	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors
	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = "this field is required"
		case "datetime":
			message = "must be a date in YYYY-MM-DD format"
		case "hhmm":
			message = "must be a time in HH:MM format"
		case "min":
			message = fmt.Sprintf("must be at least %s", err.Param())
		case "max":
			message = fmt.Sprintf("must be at most %s", err.Param())
		case "oneof":
			message = fmt.Sprintf("must be one of: %s", err.Param())
		default:
			message = fmt.Sprintf("failed validation on '%s'", err.Tag())
		}
		out = append(out, ValidationError{Field: err.Field(), Message: message})
	}
	return out
}
